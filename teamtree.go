package teamtree

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/teamtree/internal/logging"
	"github.com/aretw0/teamtree/internal/metrics"
	"github.com/aretw0/teamtree/pkg/adapters/file"
	"github.com/aretw0/teamtree/pkg/adapters/memory"
	"github.com/aretw0/teamtree/pkg/adapters/redis"
	"github.com/aretw0/teamtree/pkg/domain"
	"github.com/aretw0/teamtree/pkg/persistence/middleware"
	"github.com/aretw0/teamtree/pkg/ports"
	"github.com/aretw0/teamtree/pkg/registry"
)

// Store kinds accepted by WithStore.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

// Service is the high-level entry point: a chart registry bound to a store,
// with logging and metrics attached.
type Service struct {
	*registry.Registry

	store   ports.ChartStore
	metrics *metrics.Recorder
	logger  *slog.Logger
	closers []func() error
}

type config struct {
	store         string
	dir           string
	redisAddr     string
	redisPassword string
	redisDB       int
	logger        *slog.Logger
	metrics       *metrics.Recorder
	customStore   ports.ChartStore
	encryption    *middleware.EncryptionConfig
}

// Option defines a functional option for configuring the Service.
type Option func(*config)

// WithStore selects the chart store: memory, file or redis.
func WithStore(kind string) Option {
	return func(c *config) {
		c.store = kind
	}
}

// WithDir sets the data directory used by the file store.
func WithDir(dir string) Option {
	return func(c *config) {
		c.dir = dir
	}
}

// WithRedis sets the connection used by the redis store. Redis-backed
// services also take a distributed lock around each chart edit.
func WithRedis(addr, password string, db int) Option {
	return func(c *config) {
		c.redisAddr = addr
		c.redisPassword = password
		c.redisDB = db
	}
}

// WithChartStore injects a custom store, bypassing WithStore.
func WithChartStore(store ports.ChartStore) Option {
	return func(c *config) {
		c.customStore = store
	}
}

// WithEncryption seals charts at rest with AES-GCM. Fallback keys are only
// used to read charts sealed before a key rotation.
func WithEncryption(activeKey []byte, fallbackKeys ...[]byte) Option {
	return func(c *config) {
		c.encryption = &middleware.EncryptionConfig{
			ActiveKey:    activeKey,
			FallbackKeys: fallbackKeys,
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMetrics records insert outcomes and chart sizes on rec.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(c *config) {
		c.metrics = rec
	}
}

// Open builds a Service from options. The default is an in-memory store.
func Open(opts ...Option) (*Service, error) {
	cfg := config{
		store:     StoreMemory,
		dir:       ".teamtree",
		redisAddr: "localhost:6379",
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	svc := &Service{
		metrics: cfg.metrics,
		logger:  cfg.logger,
	}

	var regOpts []registry.Option
	switch {
	case cfg.customStore != nil:
		svc.store = cfg.customStore
	case cfg.store == StoreMemory:
		svc.store = memory.NewStore()
	case cfg.store == StoreFile:
		svc.store = file.New(filepath.Join(cfg.dir, "charts"))
	case cfg.store == StoreRedis:
		rs := redis.New(cfg.redisAddr, cfg.redisPassword, cfg.redisDB)
		svc.store = rs
		svc.closers = append(svc.closers, rs.Close)
		regOpts = append(regOpts, registry.WithLocker(redis.NewLocker(rs.Client(), "teamtree:")))
	default:
		return nil, fmt.Errorf("unknown store %q (want memory, file or redis)", cfg.store)
	}

	if cfg.encryption != nil {
		if err := cfg.encryption.Validate(); err != nil {
			_ = svc.Close()
			return nil, err
		}
		svc.store = middleware.NewEncryptionMiddleware(*cfg.encryption)(svc.store)
	}

	regOpts = append(regOpts,
		registry.WithLogger(cfg.logger),
		registry.WithHooks(svc.hooks()),
	)
	svc.Registry = registry.New(svc.store, regOpts...)

	cfg.logger.Debug("service opened", "store", cfg.store)
	return svc, nil
}

func (s *Service) hooks() registry.Hooks {
	return registry.Hooks{
		OnCreate: func(ctx context.Context, chartID, root string) {
			if s.metrics != nil {
				s.metrics.SetNodes(chartID, 1)
			}
		},
		OnInsert: func(ctx context.Context, chartID string, out domain.Outcome, size int) {
			if s.metrics != nil {
				s.metrics.ObserveInsert(out)
				// Rejected inserts may name charts that do not exist.
				if out.Inserted() {
					s.metrics.SetNodes(chartID, size)
				}
			}
			if !out.Inserted() {
				s.logger.Info("insert rejected",
					"chart_id", chartID,
					"outcome", out.Kind,
					"error", out.Err(),
				)
			}
		},
	}
}

// Store returns the underlying chart store.
func (s *Service) Store() ports.ChartStore {
	return s.store
}

// Metrics returns the metrics recorder, or nil if none was configured.
func (s *Service) Metrics() *metrics.Recorder {
	return s.metrics
}

// Close releases store connections.
func (s *Service) Close() error {
	var firstErr error
	for _, c := range s.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
