// Package config provides configuration loading and management for sitegen.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete sitegen configuration
type Config struct {
	Company Company       `yaml:"company"`
	Site    SiteConfig    `yaml:"site"`
	Geo     GeoConfig     `yaml:"geo"`
	NATS    NATSConfig    `yaml:"nats"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// Company is the business profile stamped into generated content
type Company struct {
	// Name is the display name used in titles and contact sections
	Name string `yaml:"name"`
	// Phone and Email feed the CTA sections
	Phone string `yaml:"phone"`
	Email string `yaml:"email"`
	// Domain is the production domain (empty = preview URL only)
	Domain string `yaml:"domain"`
	// Industry seeds the research stage (default: is sagligi ve guvenligi)
	Industry string `yaml:"industry"`
	// Description is the free-form company blurb for the about page
	Description string `yaml:"description"`
}

// SiteConfig configures the page plan
type SiteConfig struct {
	// HomeProvince is the plate code of the province the business
	// operates from; the service area is this province plus its neighbors
	HomeProvince int `yaml:"home_province"`
	// BaseURL prefixes every canonical URL
	BaseURL string `yaml:"base_url"`
	// Services lists catalog service ids (empty = the mandatory set)
	Services []string `yaml:"services"`
	// Exclude holds glob patterns for page paths to drop from the plan
	Exclude []string `yaml:"exclude"`
	// Districts toggles district-level pages (default: true)
	Districts *bool `yaml:"districts"`
	// Year is the year written into generated content (never the clock)
	Year int `yaml:"year"`
}

// GeoConfig configures the province dataset
type GeoConfig struct {
	// Dataset is a path to a YAML province dataset (empty = embedded data)
	Dataset string `yaml:"dataset"`
	// AllowAsymmetric tolerates one-directional adjacency edges
	AllowAsymmetric bool `yaml:"allow_asymmetric"`
}

// NATSConfig configures the pipeline event publisher
type NATSConfig struct {
	// URL is the NATS server URL (empty = events disabled)
	URL string `yaml:"url"`
	// SubjectPrefix overrides the default pipeline.event subject prefix
	SubjectPrefix string `yaml:"subject_prefix"`
}

// MetricsConfig configures the Prometheus endpoint
type MetricsConfig struct {
	// Addr is the listen address for /metrics (empty = disabled)
	Addr string `yaml:"addr"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Company: Company{
			Name:     "Ornek OSGB",
			Industry: "is sagligi ve guvenligi",
		},
		Site: SiteConfig{
			HomeProvince: 16, // Bursa
			BaseURL:      "https://ornek-osgb.example",
			Year:         2026,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Company.Name == "" {
		return fmt.Errorf("company.name is required")
	}
	if c.Site.HomeProvince <= 0 {
		return fmt.Errorf("site.home_province is required")
	}
	if c.Site.BaseURL == "" {
		return fmt.Errorf("site.base_url is required")
	}
	u, err := url.Parse(c.Site.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("site.base_url must be an absolute URL")
	}
	if strings.HasSuffix(c.Site.BaseURL, "/") {
		return fmt.Errorf("site.base_url must not end with a slash")
	}
	return nil
}

// IncludeDistricts reports whether district pages are enabled.
func (c *Config) IncludeDistricts() bool {
	return c.Site.Districts == nil || *c.Site.Districts
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Company
	if other.Company.Name != "" {
		c.Company.Name = other.Company.Name
	}
	if other.Company.Phone != "" {
		c.Company.Phone = other.Company.Phone
	}
	if other.Company.Email != "" {
		c.Company.Email = other.Company.Email
	}
	if other.Company.Domain != "" {
		c.Company.Domain = other.Company.Domain
	}
	if other.Company.Industry != "" {
		c.Company.Industry = other.Company.Industry
	}
	if other.Company.Description != "" {
		c.Company.Description = other.Company.Description
	}

	// Site
	if other.Site.HomeProvince != 0 {
		c.Site.HomeProvince = other.Site.HomeProvince
	}
	if other.Site.BaseURL != "" {
		c.Site.BaseURL = other.Site.BaseURL
	}
	if len(other.Site.Services) > 0 {
		c.Site.Services = other.Site.Services
	}
	if len(other.Site.Exclude) > 0 {
		c.Site.Exclude = other.Site.Exclude
	}
	if other.Site.Districts != nil {
		c.Site.Districts = other.Site.Districts
	}
	if other.Site.Year != 0 {
		c.Site.Year = other.Site.Year
	}

	// Geo
	if other.Geo.Dataset != "" {
		c.Geo.Dataset = other.Geo.Dataset
	}
	if other.Geo.AllowAsymmetric {
		c.Geo.AllowAsymmetric = true
	}

	// NATS
	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}
	if other.NATS.SubjectPrefix != "" {
		c.NATS.SubjectPrefix = other.NATS.SubjectPrefix
	}

	// Metrics
	if other.Metrics.Addr != "" {
		c.Metrics.Addr = other.Metrics.Addr
	}
}
