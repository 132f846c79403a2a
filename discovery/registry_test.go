package discovery

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	log "github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/panics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testModule emits one envelope per item, or reports connectErr
type testModule struct {
	service      string
	subtype      string
	resourceType string
	items        []string
	connectErr   error
	panicWith    any
	delay        time.Duration

	calls atomic.Int32
}

func (m *testModule) Service() string {
	return m.service
}

func (m *testModule) Discover(ctx context.Context, projectID string, session *Session, emitter Emitter, reporter ErrorReporter) {
	m.calls.Add(1)

	if m.delay > 0 {
		time.Sleep(m.delay)
	}

	if m.panicWith != nil {
		panic(m.panicWith)
	}

	if m.connectErr != nil {
		reporter.Report(ctx, m.resourceType, ConnectionError(m.connectErr))
		return
	}

	for _, item := range m.items {
		r, err := NewResource(item, projectID, m.resourceType, map[string]string{"name": item})
		if err != nil {
			reporter.Report(ctx, m.resourceType, MappingError(err))
			return
		}

		env, err := Wrap(session, Classification(m.service, m.subtype), r)
		if err != nil {
			reporter.Report(ctx, m.resourceType, MappingError(err))
			return
		}

		emitter.Emit(ctx, env)
	}
}

func TestRegistryRegister(t *testing.T) {
	t.Run("duplicate service", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(&testModule{service: "logging"}))

		err := r.Register(&testModule{service: "logging"})
		if !errors.Is(err, ErrDuplicateService) {
			t.Errorf("expected ErrDuplicateService, got %v", err)
		}
	})

	t.Run("empty service", func(t *testing.T) {
		r := NewRegistry()
		err := r.Register(&testModule{})
		if !errors.Is(err, ErrEmptyService) {
			t.Errorf("expected ErrEmptyService, got %v", err)
		}
	})

	t.Run("nil module panics", func(t *testing.T) {
		r := NewRegistry()
		assert.Panics(t, func() {
			_ = r.Register(nil)
		})
	})

	t.Run("MustRegister panics on duplicates", func(t *testing.T) {
		r := NewRegistry()
		assert.Panics(t, func() {
			r.MustRegister(&testModule{service: "trace"}, &testModule{service: "trace"})
		})
	})

	t.Run("services keep registration order", func(t *testing.T) {
		r := NewRegistry()
		r.MustRegister(
			&testModule{service: "trace"},
			&testModule{service: "bigQuery"},
			&testModule{service: "logging"},
		)

		assert.Equal(t, []string{"trace", "bigQuery", "logging"}, r.Services())

		m, ok := r.Module("bigQuery")
		assert.True(t, ok)
		assert.Equal(t, "bigQuery", m.Service())

		_, ok = r.Module("nope")
		assert.False(t, ok)
	})
}

func TestRegistrySubset(t *testing.T) {
	r := NewRegistry(WithParallelism(3))
	r.MustRegister(
		&testModule{service: "trace"},
		&testModule{service: "bigQuery"},
		&testModule{service: "logging"},
	)

	sub, err := r.Subset("logging", "trace")
	require.NoError(t, err)
	assert.Equal(t, []string{"trace", "logging"}, sub.Services())

	_, err = r.Subset("logging", "compute")
	if !errors.Is(err, ErrUnknownService) {
		t.Errorf("expected ErrUnknownService, got %v", err)
	}
}

func TestRunAllFailureIsolation(t *testing.T) {
	for _, parallelism := range []int{1, 4} {
		t.Run(fmt.Sprintf("parallelism %v", parallelism), func(t *testing.T) {
			sinks := &testModule{
				service:      "logging",
				subtype:      "sink",
				resourceType: "GCP::Logging::Sink",
				items:        []string{"projects/p/sinks/a", "projects/p/sinks/b"},
			}
			traces := &testModule{
				service:      "trace",
				subtype:      "trace",
				resourceType: "GCP::Trace::Trace",
				connectErr:   errors.New("could not find default credentials"),
			}

			r := NewRegistry(WithParallelism(parallelism))
			r.MustRegister(sinks, traces)

			emitter := &CollectingEmitter{}
			reporter := &CollectingReporter{}

			err := r.RunAll(context.Background(), "p", NewSession("p", "test"), emitter, reporter)
			require.NoError(t, err)

			envelopes := emitter.Envelopes()
			require.Len(t, envelopes, 2)
			for _, e := range envelopes {
				assert.Equal(t, []string{"logging:sink"}, e.ClassificationPath)
			}

			assert.Equal(t, []string{"GCP::Trace::Trace"}, reporter.ResourceTypes())
			assert.Equal(t, CategoryConnection, CategoryOf(reporter.Reports()[0].Err))

			assert.EqualValues(t, 1, sinks.calls.Load())
			assert.EqualValues(t, 1, traces.calls.Load())
		})
	}
}

func TestRunAllZeroItems(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(&testModule{service: "textToSpeech", subtype: "voice", resourceType: "GCP::TextToSpeech::Voice"})

	emitter := &CollectingEmitter{}
	reporter := &CollectingReporter{}

	require.NoError(t, r.RunAll(context.Background(), "p", NewSession("p", "test"), emitter, reporter))

	assert.Empty(t, emitter.Envelopes())
	assert.Empty(t, reporter.Reports())
}

func TestRunAllEveryModuleOnce(t *testing.T) {
	var modules []*testModule
	r := NewRegistry(WithParallelism(3))

	for i := range 20 {
		m := &testModule{
			service:      fmt.Sprintf("service%v", i),
			subtype:      "thing",
			resourceType: "GCP::Test::Thing",
			items:        []string{"a", "b", "c"},
		}
		if i%4 == 0 {
			m.connectErr = errors.New("boom")
		}
		modules = append(modules, m)
		r.MustRegister(m)
	}

	emitter := &CollectingEmitter{}
	reporter := &CollectingReporter{}

	require.NoError(t, r.RunAll(context.Background(), "p", NewSession("p", "test"), emitter, reporter))

	for _, m := range modules {
		assert.EqualValues(t, 1, m.calls.Load(), m.service)
	}

	assert.Len(t, emitter.Envelopes(), 15*3)
	assert.Len(t, reporter.Reports(), 5)
}

func TestRunAllPreservesOrderWithinModule(t *testing.T) {
	items := []string{"z", "a", "m", "b"}
	r := NewRegistry(WithParallelism(2))
	r.MustRegister(
		&testModule{service: "logging", subtype: "sink", resourceType: "GCP::Logging::Sink", items: items},
		&testModule{service: "trace", subtype: "trace", resourceType: "GCP::Trace::Trace", items: []string{"1", "2"}},
	)

	emitter := &CollectingEmitter{}
	require.NoError(t, r.RunAll(context.Background(), "p", NewSession("p", "test"), emitter, &CollectingReporter{}))

	var got []string
	for _, e := range emitter.ByClassification()["logging:sink"] {
		got = append(got, e.Identity().ResourceID)
	}

	assert.Equal(t, items, got)
}

func TestRunAllParallelism(t *testing.T) {
	var running, maxRunning atomic.Int32
	var mu sync.Mutex

	r := NewRegistry(WithParallelism(2))
	for i := range 6 {
		r.MustRegister(&trackingModule{
			service: fmt.Sprintf("s%v", i),
			before: func() {
				n := running.Add(1)
				mu.Lock()
				if n > maxRunning.Load() {
					maxRunning.Store(n)
				}
				mu.Unlock()
				time.Sleep(10 * time.Millisecond)
			},
			after: func() {
				running.Add(-1)
			},
		})
	}

	require.NoError(t, r.RunAll(context.Background(), "p", NewSession("p", "test"), &CollectingEmitter{}, &CollectingReporter{}))

	assert.LessOrEqual(t, maxRunning.Load(), int32(2))
	assert.GreaterOrEqual(t, maxRunning.Load(), int32(1))
}

type trackingModule struct {
	service       string
	before, after func()
}

func (m *trackingModule) Service() string { return m.service }

func (m *trackingModule) Discover(context.Context, string, *Session, Emitter, ErrorReporter) {
	m.before()
	defer m.after()
}

func TestRunAllPanicIsRaisedAfterOthersFinish(t *testing.T) {
	slow := &testModule{
		service:      "logging",
		subtype:      "sink",
		resourceType: "GCP::Logging::Sink",
		items:        []string{"a"},
		delay:        20 * time.Millisecond,
	}
	broken := &testModule{service: "trace", panicWith: "broken module"}

	r := NewRegistry(WithParallelism(2))
	r.MustRegister(broken, slow)

	emitter := &CollectingEmitter{}

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		_ = r.RunAll(context.Background(), "p", NewSession("p", "test"), emitter, &CollectingReporter{})
	}()

	assert.EqualValues(t, 1, slow.calls.Load())
	assert.Len(t, emitter.Envelopes(), 1)

	rec, ok := recovered.(*panics.Recovered)
	require.True(t, ok, "expected a re-raised panic, got %T", recovered)

	var mp *ModulePanic
	require.ErrorAs(t, rec.AsError(), &mp)
	assert.Equal(t, "trace", mp.Service)
	assert.Equal(t, "broken module", mp.Value)
	assert.Equal(t, log.Fields{"ovm.discovery.service": "trace"}, mp.PanicFields())
}

func TestModulePanicUnwrap(t *testing.T) {
	cause := errors.New("nil pointer")

	assert.ErrorIs(t, &ModulePanic{Service: "trace", Value: cause}, cause)
	assert.NoError(t, (&ModulePanic{Service: "trace", Value: "text"}).Unwrap())
	assert.Equal(t, "module trace panicked: text", (&ModulePanic{Service: "trace", Value: "text"}).Error())
}

func TestRunAllInvalidArguments(t *testing.T) {
	r := NewRegistry()
	session := NewSession("p", "test")
	emitter := &CollectingEmitter{}
	reporter := &CollectingReporter{}
	ctx := context.Background()

	assert.ErrorIs(t, r.RunAll(ctx, "", session, emitter, reporter), ErrEmptyProjectID)
	assert.ErrorIs(t, r.RunAll(ctx, "p", nil, emitter, reporter), ErrNilSession)
	assert.ErrorIs(t, r.RunAll(ctx, "p", session, nil, reporter), ErrNilEmitter)
	assert.ErrorIs(t, r.RunAll(ctx, "p", session, emitter, nil), ErrNilReporter)
}

func TestRunAllMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := NewMetrics(reg)
	require.NoError(t, err)

	r := NewRegistry(WithMetrics(metrics))
	r.MustRegister(
		&testModule{service: "logging", subtype: "sink", resourceType: "GCP::Logging::Sink", items: []string{"a", "b"}},
		&testModule{service: "trace", subtype: "trace", resourceType: "GCP::Trace::Trace", connectErr: errors.New("nope")},
	)

	reporter := NewLogReporter(metrics)

	require.NoError(t, r.RunAll(context.Background(), "p", NewSession("p", "test"), &CollectingEmitter{}, reporter))

	assert.InDelta(t, 2, testutil.ToFloat64(metrics.envelopesEmitted.WithLabelValues("logging")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.errorsReported.WithLabelValues("GCP::Trace::Trace", string(CategoryConnection))), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.scansCompleted), 0)

	// Registering the same collectors twice must fail
	_, err = NewMetrics(reg)
	assert.Error(t, err)
}
