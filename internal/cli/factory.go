package cli

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/aretw0/teamtree"
	"github.com/aretw0/teamtree/internal/logging"
	"github.com/aretw0/teamtree/internal/metrics"
)

// Options are the persistent CLI settings shared by every command.
type Options struct {
	Store         string
	Dir           string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	LogLevel      string
	Metrics       bool

	// EncryptionKey is a base64-encoded AES-256 key. Empty disables encryption.
	EncryptionKey string
}

// EnvOr returns the environment variable key, or def when unset.
func EnvOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// EnvIntOr is EnvOr for integers; malformed values fall back to def.
func EnvIntOr(key string, def int) int {
	v, err := strconv.Atoi(EnvOr(key, ""))
	if err != nil {
		return def
	}
	return v
}

// OpenService initializes a Service with standard CLI conventions.
func OpenService(opts Options) (*teamtree.Service, *slog.Logger, error) {
	level, err := logging.ParseLevel(opts.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.New(level)

	svcOpts := []teamtree.Option{
		teamtree.WithStore(opts.Store),
		teamtree.WithDir(opts.Dir),
		teamtree.WithRedis(opts.RedisAddr, opts.RedisPassword, opts.RedisDB),
		teamtree.WithLogger(logger),
	}
	if opts.EncryptionKey != "" {
		key, err := base64.StdEncoding.DecodeString(opts.EncryptionKey)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid encryption key: %w", err)
		}
		svcOpts = append(svcOpts, teamtree.WithEncryption(key))
	}
	if opts.Metrics {
		svcOpts = append(svcOpts, teamtree.WithMetrics(metrics.New()))
	}

	svc, err := teamtree.Open(svcOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing service: %w", err)
	}
	return svc, logger, nil
}
