package discovery

import (
	"context"
	"errors"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/googleapis/gax-go/v2/apierror"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorCategory says at which stage of discovery a failure happened
type ErrorCategory string

const (
	// CategoryConnection means the provider client could not be created
	CategoryConnection ErrorCategory = "connection"
	// CategoryListing means a listing call failed, possibly mid-pagination
	CategoryListing ErrorCategory = "listing"
	// CategoryEnrichment means a supplementary lookup failed
	CategoryEnrichment ErrorCategory = "enrichment"
	// CategoryMapping means a provider object could not be normalised
	CategoryMapping ErrorCategory = "mapping"
	CategoryUnknown ErrorCategory = "unknown"
)

// Error is a discovery failure tagged with the stage it happened at
type Error struct {
	Category ErrorCategory
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v error: %v", e.Category, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(category ErrorCategory, err error) error {
	if err == nil {
		return nil
	}

	// Keep the innermost category
	var existing *Error
	if errors.As(err, &existing) {
		return err
	}

	return &Error{Category: category, Err: err}
}

func ConnectionError(err error) error { return newError(CategoryConnection, err) }
func ListingError(err error) error    { return newError(CategoryListing, err) }
func EnrichmentError(err error) error { return newError(CategoryEnrichment, err) }
func MappingError(err error) error    { return newError(CategoryMapping, err) }

// CategoryOf returns the category of a discovery error, or CategoryUnknown if
// the error was not created by this package
func CategoryOf(err error) ErrorCategory {
	var e *Error
	if errors.As(err, &e) {
		return e.Category
	}

	return CategoryUnknown
}

// ErrorReporter is the single place every module-level failure goes through.
// Report must never panic and must be safe for concurrent use
type ErrorReporter interface {
	Report(ctx context.Context, resourceType string, err error)
}

// ReporterFunc adapts a function to the ErrorReporter interface
type ReporterFunc func(ctx context.Context, resourceType string, err error)

func (f ReporterFunc) Report(ctx context.Context, resourceType string, err error) {
	f(ctx, resourceType, err)
}

// LogReporter reports discovery failures to the log, the active span, Sentry
// (if a client has been initialised) and optionally Prometheus
type LogReporter struct {
	Metrics *Metrics
}

// NewLogReporter returns a reporter. Metrics may be nil
func NewLogReporter(metrics *Metrics) *LogReporter {
	return &LogReporter{Metrics: metrics}
}

func (r *LogReporter) Report(ctx context.Context, resourceType string, err error) {
	if err == nil {
		return
	}

	category := CategoryOf(err)
	code := status.Code(err)

	fields := log.Fields{
		"ovm.discovery.resourceType":  resourceType,
		"ovm.discovery.errorCategory": string(category),
		"ovm.gcp.statusCode":          code.String(),
	}

	if ae, ok := apierror.FromError(err); ok {
		if ae.Reason() != "" {
			fields["ovm.gcp.reason"] = ae.Reason()
		}
		if ae.HTTPCode() > 0 {
			fields["ovm.gcp.httpCode"] = ae.HTTPCode()
		}
		if s := ae.GRPCStatus(); s != nil && code == codes.Unknown {
			code = s.Code()
			fields["ovm.gcp.statusCode"] = code.String()
		}
	}

	entry := log.WithContext(ctx).WithError(err).WithFields(fields)

	switch code {
	case codes.PermissionDenied, codes.NotFound, codes.Unimplemented:
		// Usually means the API is not enabled or we lack access
		entry.Warn("Discovery incomplete")
	default:
		entry.Error("Discovery failed")
	}

	span := trace.SpanFromContext(ctx)
	span.RecordError(err, trace.WithAttributes(
		attribute.String("ovm.discovery.resourceType", resourceType),
		attribute.String("ovm.discovery.errorCategory", string(category)),
	))
	span.SetStatus(otelcodes.Error, err.Error())

	// Modules report concurrently, so tags go on a clone of the hub
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	if hub.Client() != nil {
		hub = hub.Clone()
		hub.ConfigureScope(func(scope *sentry.Scope) {
			scope.SetTag("resource_type", resourceType)
			scope.SetTag("error_category", string(category))
			scope.SetTag("status_code", code.String())
		})
		hub.CaptureException(err)
	}

	r.Metrics.observeError(resourceType, category)
}
