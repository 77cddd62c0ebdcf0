package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/prosektorweb/sitegen/catalog"
	"github.com/prosektorweb/sitegen/config"
	"github.com/prosektorweb/sitegen/content"
	"github.com/prosektorweb/sitegen/geo"
	"github.com/prosektorweb/sitegen/pageplan"
	"github.com/prosektorweb/sitegen/pipeline"
	"github.com/prosektorweb/sitegen/stages"
)

// app bundles the loaded configuration with the reference data every
// command needs.
type app struct {
	cfg     *config.Config
	graph   *geo.Graph
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// loadApp resolves the config (explicit file or layered discovery) and
// builds the province graph and service catalog.
func loadApp(opts *globalOptions) (*app, error) {
	logger := opts.logger()

	var cfg *config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = config.LoadFromFile(opts.configPath)
		if err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
	} else {
		cfg, err = config.NewLoader(logger).Load()
		if err != nil {
			return nil, err
		}
	}

	var geoOpts []geo.Option
	if cfg.Geo.AllowAsymmetric {
		geoOpts = append(geoOpts, geo.AllowAsymmetric())
	}
	geoOpts = append(geoOpts, geo.WithLogger(logger))

	var graph *geo.Graph
	if cfg.Geo.Dataset != "" {
		graph, err = geo.LoadFile(cfg.Geo.Dataset, geoOpts...)
	} else {
		graph, err = geo.Default(geoOpts...)
	}
	if err != nil {
		return nil, fmt.Errorf("load province graph: %w", err)
	}

	return &app{
		cfg:     cfg,
		graph:   graph,
		catalog: catalog.Default(),
		logger:  logger,
	}, nil
}

// generator builds a page plan generator from the loaded config.
func (a *app) generator() (*pageplan.Generator, error) {
	genOpts := []pageplan.GeneratorOption{
		pageplan.WithBaseURL(a.cfg.Site.BaseURL),
		pageplan.WithCompany(a.companyInfo()),
		pageplan.WithGeneratorLogger(a.logger),
	}
	if len(a.cfg.Site.Services) > 0 {
		genOpts = append(genOpts, pageplan.WithServices(a.cfg.Site.Services...))
	}
	if len(a.cfg.Site.Exclude) > 0 {
		genOpts = append(genOpts, pageplan.WithExcludePatterns(a.cfg.Site.Exclude...))
	}
	if !a.cfg.IncludeDistricts() {
		genOpts = append(genOpts, pageplan.WithoutDistricts())
	}
	return pageplan.New(a.graph, a.catalog, genOpts...)
}

// env builds the stage handler environment from the loaded config.
func (a *app) env(planDate time.Time) *stages.Env {
	env := &stages.Env{
		Graph:           a.graph,
		Catalog:         a.catalog,
		HomeProvinceID:  a.cfg.Site.HomeProvince,
		BaseURL:         a.cfg.Site.BaseURL,
		ServiceIDs:      a.cfg.Site.Services,
		ExcludePatterns: a.cfg.Site.Exclude,
		NoDistricts:     !a.cfg.IncludeDistricts(),
		Company:         a.companyInfo(),
		Year:            a.cfg.Site.Year,
		PlanDate:        planDate,
		Logger:          a.logger,
	}
	env.Request = pipeline.InputRequest{
		CompanyName: a.cfg.Company.Name,
		Domain:      a.cfg.Company.Domain,
		Industry:    a.cfg.Company.Industry,
		Description: a.cfg.Company.Description,
	}
	return env
}

func (a *app) companyInfo() content.CompanyInfo {
	return content.CompanyInfo{
		Name:  a.cfg.Company.Name,
		Phone: a.cfg.Company.Phone,
		Email: a.cfg.Company.Email,
	}
}

// parsePlanDate reads the --date flag, defaulting to today.
func parsePlanDate(value string) (time.Time, error) {
	if value == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse --date: %w", err)
	}
	return t, nil
}
