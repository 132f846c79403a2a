package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/overmindtech/harvester/sinks"
)

// Values accepted by --sink
const (
	sinkStdout = "stdout"
	sinkFile   = "file"
	sinkNATS   = "nats"
	sinkBolt   = "bolt"
	sinkSQLite = "sqlite"
)

// sinkConfig is the part of the configuration that selects and configures
// sinks
type sinkConfig struct {
	Kinds         []string
	Output        string
	NATSURL       []string
	SubjectPrefix string
	BoltPath      string
	SQLitePath    string
}

func sinkConfigFromViper() sinkConfig {
	return sinkConfig{
		Kinds:         viper.GetStringSlice("sink"),
		Output:        viper.GetString("output"),
		NATSURL:       viper.GetStringSlice("nats-url"),
		SubjectPrefix: viper.GetString("nats-subject-prefix"),
		BoltPath:      viper.GetString("bolt-path"),
		SQLitePath:    viper.GetString("sqlite-path"),
	}
}

// openSinks opens every configured sink. If one fails to open the ones
// already opened are closed again
func openSinks(ctx context.Context, cfg sinkConfig) (sinks.Multi, error) {
	if len(cfg.Kinds) == 0 {
		return nil, fmt.Errorf("at least one sink must be configured")
	}

	var err error
	for _, path := range []*string{&cfg.Output, &cfg.BoltPath, &cfg.SQLitePath} {
		if *path, err = expandPath(*path); err != nil {
			return nil, err
		}
	}

	var multi sinks.Multi
	for _, kind := range cfg.Kinds {
		s, err := openSink(ctx, kind, cfg)
		if err != nil {
			_ = multi.Close()
			return nil, fmt.Errorf("error opening %v sink: %w", kind, err)
		}

		multi = append(multi, s)
	}

	return multi, nil
}

func openSink(ctx context.Context, kind string, cfg sinkConfig) (sinks.Sink, error) {
	switch kind {
	case sinkStdout:
		return sinks.NewJSONLines(os.Stdout), nil
	case sinkFile:
		if cfg.Output == "" {
			return nil, fmt.Errorf("--output must be set")
		}
		return sinks.OpenJSONLinesFile(cfg.Output)
	case sinkNATS:
		if len(cfg.NATSURL) == 0 {
			return nil, fmt.Errorf("--nats-url must be set")
		}
		conn, err := sinks.NATSOptions{
			Servers:        cfg.NATSURL,
			ConnectionName: "harvester",
			NumRetries:     5,
		}.Connect(ctx)
		if err != nil {
			return nil, err
		}
		return sinks.NewNATS(conn, cfg.SubjectPrefix), nil
	case sinkBolt:
		if cfg.BoltPath == "" {
			return nil, fmt.Errorf("--bolt-path must be set")
		}
		return sinks.OpenBolt(cfg.BoltPath)
	case sinkSQLite:
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("--sqlite-path must be set")
		}
		return sinks.OpenSQLite(ctx, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown sink %q", kind)
	}
}

// expandPath expands environment variables and a leading ~ in a sink path
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	expanded, err := homedir.Expand(os.ExpandEnv(path))
	if err != nil {
		return "", fmt.Errorf("expanding path %v: %w", path, err)
	}

	return expanded, nil
}
