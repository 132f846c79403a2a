package proc

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/oauth2"
	"google.golang.org/api/impersonate"
	"google.golang.org/api/option"

	"github.com/overmindtech/harvester/discovery"
	"github.com/overmindtech/harvester/sources/gcp/services"
	gcpshared "github.com/overmindtech/harvester/sources/gcp/shared"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// Config is the GCP part of the harvester configuration
type Config struct {
	ProjectID string

	// If set, every client authenticates as this service account using the
	// ambient credentials to impersonate it
	ImpersonationServiceAccountEmail string

	// Services to scan. Empty means every service
	Services []string
}

// ConfigFromViper reads the GCP configuration from viper
func ConfigFromViper() (*Config, error) {
	cfg := &Config{
		ProjectID:                        viper.GetString("gcp-project-id"),
		ImpersonationServiceAccountEmail: viper.GetString("impersonation-service-account-email"),
		Services:                         viper.GetStringSlice("services"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration can be used for a scan
func (c *Config) Validate() error {
	if c.ProjectID == "" {
		return errors.New("gcp-project-id must be set")
	}

	return nil
}

// ClientOptions returns the options shared by every GCP client
func ClientOptions(ctx context.Context, cfg *Config) ([]option.ClientOption, error) {
	opts := []option.ClientOption{}

	if cfg.ImpersonationServiceAccountEmail != "" {
		ts, err := impersonatedTokenSource(ctx, cfg.ImpersonationServiceAccountEmail)
		if err != nil {
			return nil, err
		}

		opts = append(opts, option.WithTokenSource(ts))
	}

	return opts, nil
}

func impersonatedTokenSource(ctx context.Context, email string) (oauth2.TokenSource, error) {
	ts, err := impersonate.CredentialsTokenSource(ctx, impersonate.CredentialsConfig{
		TargetPrincipal: email,
		Scopes:          []string{cloudPlatformScope},
	})
	if err != nil {
		return nil, fmt.Errorf("error creating impersonated token source for %v: %w", email, err)
	}

	log.WithFields(log.Fields{
		"ovm.gcp.impersonationServiceAccountEmail": email,
	}).Info("Using impersonated credentials")

	return ts, nil
}

// Modules returns every GCP discovery module. Clients are opened lazily when
// each module runs, so building the modules never contacts GCP
func Modules(projectID string, opts ...option.ClientOption) []discovery.Module {
	return []discovery.Module{
		services.NewBigQuery(gcpshared.BigQueryDatasetConnector(projectID, opts...)),
		services.NewFunctions(gcpshared.FunctionsConnector(opts...)),
		services.NewLogging(
			gcpshared.LoggingMetricsConnector(opts...),
			gcpshared.LoggingConfigConnector(opts...),
		),
		services.NewMonitoring(
			gcpshared.MonitoringGroupConnector(opts...),
			gcpshared.MonitoringAlertPolicyConnector(opts...),
			gcpshared.MonitoringServiceConnector(opts...),
		),
		services.NewResourceManager(
			gcpshared.OrganizationsConnector(opts...),
			gcpshared.ProjectsConnector(opts...),
		),
		services.NewTrace(gcpshared.TraceConnector(opts...)),
		services.NewTextToSpeech(gcpshared.TextToSpeechConnector(opts...)),
	}
}

// Initialize builds the registry of GCP modules selected by the config
func Initialize(ctx context.Context, cfg *Config, opts ...discovery.RegistryOption) (*discovery.Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clientOpts, err := ClientOptions(ctx, cfg)
	if err != nil {
		return nil, err
	}

	registry := discovery.NewRegistry(opts...)
	for _, m := range Modules(cfg.ProjectID, clientOpts...) {
		if err := registry.Register(m); err != nil {
			return nil, fmt.Errorf("error registering %v: %w", m.Service(), err)
		}
	}

	if len(cfg.Services) > 0 {
		registry, err = registry.Subset(cfg.Services...)
		if err != nil {
			return nil, fmt.Errorf("error selecting services: %w", err)
		}
	}

	log.WithFields(log.Fields{
		"ovm.gcp.projectID": cfg.ProjectID,
		"ovm.gcp.services":  registry.Services(),
	}).Info("Initialized GCP discovery")

	return registry, nil
}
