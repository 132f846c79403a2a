package tracing

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/panics"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// LogRecoverToReturn must be deferred. It reports a panic of the calling
// goroutine and lets the function return normally
func LogRecoverToReturn(ctx context.Context, loc string) {
	if v := recover(); v != nil {
		HandleError(ctx, loc, v, string(debug.Stack()))
	}
}

// LogRecoverToExit must be deferred. It reports a panic of the calling
// goroutine, flushes traces and exits with status 1
func LogRecoverToExit(ctx context.Context, loc string) {
	v := recover()
	if v == nil {
		return
	}

	HandleError(ctx, loc, v, string(debug.Stack()))
	ShutdownTracer(ctx)

	os.Exit(1)
}

// panicFields is implemented by panic values that describe where they came
// from, such as a discovery module
type panicFields interface {
	PanicFields() log.Fields
}

// HandleError reports a recovered panic value to Sentry, the log and the span
// in ctx. Panics re-raised by a conc pool are reported with the value and
// stack of the goroutine that originally panicked
func HandleError(ctx context.Context, loc string, v any, stack string) {
	if r, ok := v.(*panics.Recovered); ok {
		v = r.Value
		stack = string(r.Stack)
	}

	if ctx == nil {
		ctx = context.Background()
	}

	fields := log.Fields{
		"ovm.panic.loc":   loc,
		"ovm.panic.stack": stack,
	}
	if pf, ok := v.(panicFields); ok {
		for k, val := range pf.PanicFields() {
			fields[k] = val
		}
	}

	msg := fmt.Sprintf("unhandled panic in %v: %v", loc, v)

	if hub := sentry.CurrentHub(); hub != nil {
		hub.Recover(v)
	}

	log.WithContext(ctx).WithFields(fields).Error(msg)

	attrs := make([]attribute.KeyValue, 0, len(fields))
	for k, val := range fields {
		attrs = append(attrs, attribute.String(k, fmt.Sprint(val)))
	}

	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attrs...)
	span.SetStatus(codes.Error, msg)
}
