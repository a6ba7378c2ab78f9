package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/teamtree/internal/logging"
	"github.com/aretw0/teamtree/pkg/domain"
	"github.com/aretw0/teamtree/pkg/hierarchy"
	"github.com/aretw0/teamtree/pkg/ports"
)

// DefaultLockTTL bounds how long a crashed holder can block a chart.
const DefaultLockTTL = 30 * time.Second

// Hooks receives notifications about chart changes.
type Hooks struct {
	OnInsert func(ctx context.Context, chartID string, out domain.Outcome, size int)
	OnCreate func(ctx context.Context, chartID string, root string)
}

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Registry orchestrates chart access, ensuring safe concurrent operations.
// Lock entries are reference counted and dropped once unused.
type Registry struct {
	store ports.ChartStore

	mu    sync.Mutex
	locks map[string]*lockEntry

	locker  ports.DistributedLocker
	lockTTL time.Duration
	hooks   Hooks
	logger  *slog.Logger
	now     func() time.Time
}

var _ ports.Charts = (*Registry)(nil)

// Option configures the Registry.
type Option func(*Registry)

// WithLocker enables distributed locking.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(r *Registry) {
		r.locker = locker
	}
}

// WithLockTTL overrides DefaultLockTTL.
func WithLockTTL(ttl time.Duration) Option {
	return func(r *Registry) {
		r.lockTTL = ttl
	}
}

// WithLogger configures a logger for the Registry.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithHooks registers change notifications.
func WithHooks(hooks Hooks) Option {
	return func(r *Registry) {
		r.hooks = hooks
	}
}

// New creates a Registry backed by the given store.
func New(store ports.ChartStore, opts ...Option) *Registry {
	r := &Registry{
		store:   store,
		locks:   make(map[string]*lockEntry),
		lockTTL: DefaultLockTTL,
		logger:  logging.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST Lock entry.mu, and then call release(id) after unlocking.
func (r *Registry) acquire(id string) *lockEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, exists := r.locks[id]
	if !exists {
		entry = &lockEntry{}
		r.locks[id] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches zero.
func (r *Registry) release(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, exists := r.locks[id]
	if !exists {
		return
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(r.locks, id)
	}
}

// WithLock executes fn while holding the lock for the chart.
func (r *Registry) WithLock(ctx context.Context, id string, fn func(context.Context) error) error {
	entry := r.acquire(id)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		r.release(id)
	}()

	if r.locker != nil {
		unlock, err := r.locker.Lock(ctx, id, r.lockTTL)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			if err := unlock(ctx); err != nil {
				r.logger.Warn("Failed to release distributed lock (will expire via TTL)",
					"chart_id", id,
					"err", err,
				)
			}
		}()
	}

	return fn(ctx)
}

// Create stores a new chart whose root is the given team lead.
// It fails with domain.ErrRootExists if the chart already has a root.
func (r *Registry) Create(ctx context.Context, id, root string) (*hierarchy.Tree, error) {
	var tree *hierarchy.Tree
	err := r.WithLock(ctx, id, func(ctx context.Context) error {
		var err error
		tree, err = r.load(ctx, id)
		if err != nil && !errors.Is(err, domain.ErrChartNotFound) {
			return err
		}
		if tree == nil {
			tree = hierarchy.New()
		}
		if err := tree.SetRoot(root); err != nil {
			return err
		}
		if err := r.save(ctx, id, tree); err != nil {
			return err
		}
		r.logger.Info("chart created", "chart_id", id, "root", root)
		if r.hooks.OnCreate != nil {
			r.hooks.OnCreate(ctx, id, root)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tree, nil
}

// Insert applies one insertion to the stored chart. A missing chart behaves as
// an empty tree. The chart is only written back when a node was added.
func (r *Registry) Insert(ctx context.Context, id, manager, employee string, side domain.Side) (domain.Outcome, error) {
	var out domain.Outcome
	err := r.WithLock(ctx, id, func(ctx context.Context) error {
		tree, err := r.load(ctx, id)
		switch {
		case errors.Is(err, domain.ErrChartNotFound):
			tree = hierarchy.New()
		case err != nil:
			return err
		}

		out = tree.Insert(manager, employee, side)
		r.logger.Debug("insert",
			"chart_id", id,
			"manager", manager,
			"employee", employee,
			"side", side,
			"outcome", out.Kind,
		)

		if out.Inserted() {
			if err := r.save(ctx, id, tree); err != nil {
				return err
			}
		}
		if r.hooks.OnInsert != nil {
			r.hooks.OnInsert(ctx, id, out, tree.Len())
		}
		return nil
	})
	return out, err
}

// Get loads the chart as a tree.
func (r *Registry) Get(ctx context.Context, id string) (*hierarchy.Tree, error) {
	var tree *hierarchy.Tree
	err := r.WithLock(ctx, id, func(ctx context.Context) error {
		var err error
		tree, err = r.load(ctx, id)
		return err
	})
	return tree, err
}

// Render loads the chart and materializes its pre-order rendering.
func (r *Registry) Render(ctx context.Context, id string) ([]hierarchy.Entry, error) {
	tree, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return tree.Entries(), nil
}

// Delete removes the chart from the store.
func (r *Registry) Delete(ctx context.Context, id string) error {
	return r.WithLock(ctx, id, func(ctx context.Context) error {
		return r.store.Delete(ctx, id)
	})
}

// List delegates to the store.
func (r *Registry) List(ctx context.Context) ([]string, error) {
	return r.store.List(ctx)
}

func (r *Registry) load(ctx context.Context, id string) (*hierarchy.Tree, error) {
	chart, err := r.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return hierarchy.FromChart(chart), nil
}

func (r *Registry) save(ctx context.Context, id string, tree *hierarchy.Tree) error {
	chart := tree.Snapshot(id)
	chart.UpdatedAt = r.now().UTC()
	if err := r.store.Save(ctx, chart); err != nil {
		return fmt.Errorf("failed to save chart %q: %w", id, err)
	}
	return nil
}
