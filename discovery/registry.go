package discovery

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/overmindtech/harvester/discovery"

var (
	ErrDuplicateService = errors.New("service already registered")
	ErrEmptyService     = errors.New("service name must not be empty")
	ErrUnknownService   = errors.New("unknown service")
	ErrNilSession       = errors.New("session must not be nil")
	ErrNilEmitter       = errors.New("emitter must not be nil")
	ErrNilReporter      = errors.New("reporter must not be nil")
)

// ModulePanic is the value a module panic is re-raised with. It records the
// service that panicked
type ModulePanic struct {
	Service string
	Value   any
}

func (p *ModulePanic) Error() string {
	return fmt.Sprintf("module %v panicked: %v", p.Service, p.Value)
}

func (p *ModulePanic) Unwrap() error {
	if err, ok := p.Value.(error); ok {
		return err
	}
	return nil
}

// PanicFields returns the log fields describing the panic
func (p *ModulePanic) PanicFields() log.Fields {
	return log.Fields{
		"ovm.discovery.service": p.Service,
	}
}

// Registry holds the discovery modules that take part in a scan, keyed by
// service name. Modules run in registration order when parallelism is 1
type Registry struct {
	parallelism int
	metrics     *Metrics

	mu      sync.RWMutex
	modules []Module
	byName  map[string]Module
}

// RegistryOption configures a Registry
type RegistryOption func(*Registry)

// WithParallelism sets the maximum number of modules that run at the same
// time. Values below 1 mean runtime.NumCPU()
func WithParallelism(n int) RegistryOption {
	return func(r *Registry) {
		r.parallelism = n
	}
}

// WithMetrics records per-module metrics
func WithMetrics(m *Metrics) RegistryOption {
	return func(r *Registry) {
		r.metrics = m
	}
}

func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		byName: make(map[string]Module),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.parallelism < 1 {
		r.parallelism = runtime.NumCPU()
	}

	return r
}

// Register adds a module. Service names must be unique
func (r *Registry) Register(m Module) error {
	if m == nil {
		panic("discovery: cannot register a nil module")
	}

	name := m.Service()
	if name == "" {
		return ErrEmptyService
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("%w: %v", ErrDuplicateService, name)
	}

	r.byName[name] = m
	r.modules = append(r.modules, m)

	return nil
}

// MustRegister registers all modules and panics on the first error
func (r *Registry) MustRegister(modules ...Module) {
	for _, m := range modules {
		if err := r.Register(m); err != nil {
			panic(err)
		}
	}
}

// Services returns the registered service names in registration order
func (r *Registry) Services() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.modules))
	for _, m := range r.modules {
		names = append(names, m.Service())
	}

	return names
}

// Module returns the module registered under a service name
func (r *Registry) Module(service string) (Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byName[service]

	return m, ok
}

// Subset returns a new registry with only the named services, in the order
// they were originally registered. Unknown names are an error
func (r *Registry) Subset(services ...string) (*Registry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]bool, len(services))
	for _, s := range services {
		if _, ok := r.byName[s]; !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnknownService, s)
		}
		wanted[s] = true
	}

	sub := NewRegistry(WithParallelism(r.parallelism), WithMetrics(r.metrics))
	for _, m := range r.modules {
		if wanted[m.Service()] {
			sub.MustRegister(m)
		}
	}

	return sub, nil
}

// RunAll runs every registered module exactly once against the project.
// Module failures are isolated: they are reported by the modules themselves
// and never stop the remaining modules, and failed modules are not retried.
// An error is returned only if the arguments are invalid.
//
// If a module panics the remaining modules still run to completion, after
// which the panic is re-raised
func (r *Registry) RunAll(ctx context.Context, projectID string, session *Session, emitter Emitter, reporter ErrorReporter) error {
	switch {
	case projectID == "":
		return ErrEmptyProjectID
	case session == nil:
		return ErrNilSession
	case emitter == nil:
		return ErrNilEmitter
	case reporter == nil:
		return ErrNilReporter
	}

	r.mu.RLock()
	modules := append([]Module(nil), r.modules...)
	r.mu.RUnlock()

	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "RunAll", trace.WithAttributes(
		attribute.String("ovm.discovery.projectID", projectID),
		attribute.String("ovm.discovery.sessionID", session.ID),
		attribute.Int("ovm.discovery.modules", len(modules)),
		attribute.Int("ovm.discovery.parallelism", r.parallelism),
	))
	defer span.End()

	start := time.Now()

	p := pool.New().WithMaxGoroutines(r.parallelism)
	for _, m := range modules {
		p.Go(func() {
			r.run(ctx, m, projectID, session, emitter, reporter)
		})
	}
	p.Wait()

	r.metrics.observeScan()

	log.WithContext(ctx).WithFields(log.Fields{
		"ovm.discovery.projectID": projectID,
		"ovm.discovery.sessionID": session.ID,
		"ovm.discovery.modules":   len(modules),
		"ovm.discovery.duration":  time.Since(start).String(),
	}).Info("Scan complete")

	return nil
}

func (r *Registry) run(ctx context.Context, m Module, projectID string, session *Session, emitter Emitter, reporter ErrorReporter) {
	service := m.Service()

	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "Discover", trace.WithAttributes(
		attribute.String("ovm.discovery.service", service),
	))
	defer span.End()

	var emitted, reported atomic.Int64
	start := time.Now()

	countingEmitter := EmitterFunc(func(ctx context.Context, envelope *VersionedEnvelope) {
		emitted.Add(1)
		r.metrics.observeEmit(service)
		emitter.Emit(ctx, envelope)
	})

	countingReporter := ReporterFunc(func(ctx context.Context, resourceType string, err error) {
		reported.Add(1)
		reporter.Report(ctx, resourceType, err)
	})

	defer func() {
		if v := recover(); v != nil {
			span.SetStatus(codes.Error, fmt.Sprint(v))
			panic(&ModulePanic{Service: service, Value: v})
		}
	}()

	m.Discover(ctx, projectID, session, countingEmitter, countingReporter)

	duration := time.Since(start)
	r.metrics.observeModule(service, duration)

	span.SetAttributes(
		attribute.Int64("ovm.discovery.emitted", emitted.Load()),
		attribute.Int64("ovm.discovery.errors", reported.Load()),
	)

	log.WithContext(ctx).WithFields(log.Fields{
		"ovm.discovery.service":  service,
		"ovm.discovery.emitted":  emitted.Load(),
		"ovm.discovery.errors":   reported.Load(),
		"ovm.discovery.duration": duration.String(),
	}).Debug("Module complete")
}
