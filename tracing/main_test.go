package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/sourcegraph/conc/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func TestTracingResource(t *testing.T) {
	resource := tracingResource("test-component")
	if resource == nil {
		t.Error("Could not initialize tracing resource. Check the log!")
	}
}

func TestNatsHeaderPropagation(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	provider := sdktrace.NewTracerProvider()
	defer func() { _ = provider.Shutdown(context.Background()) }()

	ctx, span := provider.Tracer("test").Start(context.Background(), "publish")
	defer span.End()

	msg := &nats.Msg{Subject: "harvester.logging.sink"}
	InjectNatsHeaders(ctx, msg)

	require.NotEmpty(t, msg.Header.Get("traceparent"))

	extracted := trace.SpanContextFromContext(ExtractNatsHeaders(context.Background(), msg))
	assert.Equal(t, span.SpanContext().TraceID(), extracted.TraceID())
	assert.Contains(t, NewNatsHeaderCarrier(msg.Header).Keys(), "traceparent")
}

func TestLogRecoverToReturn(t *testing.T) {
	assert.NotPanics(t, func() {
		defer LogRecoverToReturn(context.Background(), "test")
		panic("boom")
	})
}

type servicePanic struct {
	service string
}

func (p servicePanic) Error() string { return "panic in " + p.service }

func (p servicePanic) PanicFields() log.Fields {
	return log.Fields{"ovm.discovery.service": p.service}
}

func TestHandleErrorPoolPanic(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	assert.NotPanics(t, func() {
		defer LogRecoverToReturn(context.Background(), "harvester.scan")

		p := pool.New()
		p.Go(func() {
			panic(servicePanic{service: "trace"})
		})
		p.Wait()
	})

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, log.ErrorLevel, entry.Level)
	assert.Equal(t, "harvester.scan", entry.Data["ovm.panic.loc"])
	assert.Equal(t, "trace", entry.Data["ovm.discovery.service"])
	assert.Contains(t, entry.Message, "panic in trace")
	assert.NotEmpty(t, entry.Data["ovm.panic.stack"])
}

func TestHandleErrorNilContext(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	//nolint:staticcheck // nil context is tolerated
	HandleError(nil, "harvester.metrics", errors.New("boom"), "stack")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "unhandled panic in harvester.metrics: boom", entry.Message)
}
