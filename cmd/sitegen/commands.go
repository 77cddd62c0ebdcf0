package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/prosektorweb/sitegen/config"
	"github.com/prosektorweb/sitegen/pageplan"
	"github.com/prosektorweb/sitegen/pipeline"
	"github.com/prosektorweb/sitegen/stages"
)

func initCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the user config file with defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger()
			if err := config.NewLoader(logger).EnsureUserConfig(); err != nil {
				return err
			}
			fmt.Printf("User config ready. Project overrides go in %s.\n", config.ProjectConfigFile)
			return nil
		},
	}
}

func planCmd(opts *globalOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate the location page plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			gen, err := a.generator()
			if err != nil {
				return err
			}
			plan, err := gen.Generate(cmd.Context(), a.cfg.Site.HomeProvince)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(plan)
			}

			stats := plan.Stats()
			fmt.Printf("Plan for %s (%d)\n", plan.HomeProvince, plan.HomeProvinceID)
			fmt.Printf("  province pages: %d\n", stats.ProvincePages)
			fmt.Printf("  district pages: %d\n", stats.DistrictPages)
			fmt.Printf("  excluded:       %d\n", plan.Excluded)
			fmt.Printf("  total:          %d\n\n", stats.Total)
			for _, p := range plan.Pages {
				fmt.Printf("%-50s %s\n", p.Path, p.Title)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full plan as JSON")
	return cmd
}

func sitemapCmd(opts *globalOptions) *cobra.Command {
	var outDir, date string

	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Write sitemap files for the page plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			planDate, err := parsePlanDate(date)
			if err != nil {
				return err
			}
			gen, err := a.generator()
			if err != nil {
				return err
			}
			plan, err := gen.Generate(cmd.Context(), a.cfg.Site.HomeProvince)
			if err != nil {
				return err
			}

			entries := pageplan.SitemapEntries(plan, planDate)
			index, files, err := pageplan.WriteSitemaps(entries, a.cfg.Site.BaseURL, planDate)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			if index != nil {
				if err := writeArtifact(outDir, "sitemap.xml", index); err != nil {
					return err
				}
			}
			for _, f := range files {
				if err := writeArtifact(outDir, f.Filename, f.XML); err != nil {
					return err
				}
			}

			fmt.Printf("Wrote %d sitemap file(s) for %d urls to %s\n",
				len(files), len(entries), outDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "dist", "Output directory")
	cmd.Flags().StringVar(&date, "date", "", "lastmod date (YYYY-MM-DD, default today)")
	return cmd
}

func writeArtifact(dir, name string, data []byte) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func statsCmd(opts *globalOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Estimate page counts without generating",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			gen, err := a.generator()
			if err != nil {
				return err
			}

			if !all {
				est, err := gen.Estimate(a.cfg.Site.HomeProvince)
				if err != nil {
					return err
				}
				fmt.Printf("Estimated pages for province %d\n", a.cfg.Site.HomeProvince)
				fmt.Printf("  province pages: %d\n", est.ProvincePages)
				fmt.Printf("  district pages: %d\n", est.DistrictPages)
				fmt.Printf("  total:          %d\n", est.Total)
				return nil
			}

			estimates, err := gen.EstimateAll()
			if err != nil {
				return err
			}
			sort.Slice(estimates, func(i, j int) bool {
				return estimates[i].Pages > estimates[j].Pages
			})
			for _, e := range estimates {
				fmt.Printf("%-20s (%2d)  %5d pages\n", e.ProvinceName, e.ProvinceID, e.Pages)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Estimate every province in the dataset")
	return cmd
}

func runCmd(opts *globalOptions) *cobra.Command {
	var (
		date        string
		interactive bool
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full generation pipeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			planDate, err := parsePlanDate(date)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			runnerOpts := []pipeline.Option{pipeline.WithStore(pipeline.NewMemoryStore())}

			if a.cfg.NATS.URL != "" {
				nc, err := nats.Connect(a.cfg.NATS.URL, nats.Name(appName))
				if err != nil {
					return fmt.Errorf("connect to NATS: %w", err)
				}
				defer nc.Close()
				runnerOpts = append(runnerOpts, pipeline.WithPublisher(
					pipeline.NewNATSPublisher(nc,
						pipeline.WithSubjectPrefix(a.cfg.NATS.SubjectPrefix),
						pipeline.WithPublisherLogger(a.logger))))
			}

			reg := prometheus.NewRegistry()
			metrics := pipeline.NewMetrics(reg)
			runnerOpts = append(runnerOpts, pipeline.WithMetrics(metrics))

			addr := metricsAddr
			if addr == "" {
				addr = a.cfg.Metrics.Addr
			}
			if addr != "" {
				srv := &http.Server{Addr: addr, Handler: metricsHandler(reg)}
				go func() {
					if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
						a.logger.Warn("metrics server stopped", "error", err)
					}
				}()
				defer srv.Close()
				a.logger.Info("metrics endpoint listening", "addr", addr)
			}

			if interactive {
				runnerOpts = append(runnerOpts, pipeline.WithInteractive())
			}

			env := a.env(planDate)
			env.Metrics = metrics

			runner := pipeline.NewRunner(uuid.NewString(), runnerOpts...)
			if err := stages.Register(runner, env); err != nil {
				return err
			}

			start := time.Now()
			reader := bufio.NewReader(os.Stdin)
			for {
				if err := runner.Run(ctx); err != nil {
					return err
				}
				if runner.State().Done() {
					break
				}
				// Run paused before an interactive stage.
				pending := runner.State().Current
				fmt.Printf("\nSiradaki asama: %s (%s)\n",
					pipeline.StageInfo(pending).Name, pending)
				if prev := pending.Prev(); prev != "" {
					if rec, ok := runner.State().Results[prev]; ok && rec.Expectation != nil {
						fmt.Printf("Beklenti: %s\n", rec.Expectation.Summary())
					}
				}
				fmt.Print("Devam etmek icin Enter'a basin...")
				if _, err := reader.ReadString('\n'); err != nil {
					return err
				}
				if _, err := runner.Advance(ctx); err != nil {
					return err
				}
			}

			printRunReport(runner.State(), time.Since(start))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Plan date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pause before interactive stages")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Prometheus listen address (overrides config)")
	return cmd
}

func metricsHandler(reg *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return mux
}

func printRunReport(st *pipeline.State, elapsed time.Duration) {
	fmt.Printf("\nPipeline report (project %s)\n", st.ProjectID)
	for _, stage := range pipeline.Stages() {
		rec, ok := st.Results[stage]
		if !ok {
			continue
		}
		fmt.Printf("  %-10s %-10s %s\n", stage, rec.Status, rec.Duration.Round(time.Millisecond))
	}

	if review, ok := st.Output(pipeline.StageReview).(*pipeline.ReviewOutput); ok {
		fmt.Printf("\nReview: %.0f (%s), %d/%d checks passed\n",
			review.OverallScore, review.Grade, review.PassedChecks, review.TotalChecks)
		if review.Summary != "" {
			fmt.Println(review.Summary)
		}
	}
	if seo, ok := st.Output(pipeline.StageSEO).(*pipeline.SeoOutput); ok {
		fmt.Printf("Sitemap: %d urls\n", len(seo.SitemapURLs))
	}
	if publish, ok := st.Output(pipeline.StagePublish).(*pipeline.PublishOutput); ok {
		fmt.Printf("Published: %s (deployment %s)\n", publish.URL, publish.DeploymentID)
	}
	fmt.Printf("Elapsed: %s\n", elapsed.Round(time.Millisecond))
}
