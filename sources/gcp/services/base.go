package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/overmindtech/harvester/discovery"
	gcpshared "github.com/overmindtech/harvester/sources/gcp/shared"
)

// scan holds what every listing pass of one Discover call needs
type scan struct {
	projectID string
	session   *discovery.Session
	emitter   discovery.Emitter
	reporter  discovery.ErrorReporter
}

func newScan(projectID string, session *discovery.Session, emitter discovery.Emitter, reporter discovery.ErrorReporter) scan {
	return scan{
		projectID: projectID,
		session:   session,
		emitter:   emitter,
		reporter:  reporter,
	}
}

// report sends a failure to the reporter. Nil errors are dropped
func (s scan) report(ctx context.Context, resourceType string, err error) {
	if err == nil {
		return
	}

	s.reporter.Report(ctx, resourceType, err)
}

// kindPass describes how the items of one kind become envelopes
type kindPass[T any] struct {
	kind gcpshared.Kind

	// id returns the provider identifier of the item
	id func(item T) string

	// enrich is optional. It returns the supplementary configuration for the
	// item. Supplements returned alongside an error are still applied
	enrich func(ctx context.Context, item T) ([]discovery.Supplement, error)
}

// run drains the iterator and emits one envelope per item in provider order.
// Enrichment failures are reported and the item is emitted regardless. The
// first listing or mapping failure ends the pass and is returned categorised
func (p kindPass[T]) run(ctx context.Context, s scan, it gcpshared.Iterator[T]) error {
	path := p.kind.ClassificationPath()
	var count int

	err := gcpshared.ForEach(it, func(item T) error {
		resource, err := discovery.NewResource(p.id(item), s.projectID, p.kind.ResourceType, item)
		if err != nil {
			return discovery.MappingError(err)
		}

		if p.enrich != nil {
			supplements, err := p.enrich(ctx, item)
			if err != nil {
				s.report(ctx, p.kind.ResourceType, discovery.EnrichmentError(fmt.Errorf("%v: %w", resource.ResourceID, err)))
			}

			if err := resource.Apply(supplements...); err != nil {
				return discovery.MappingError(err)
			}
		}

		envelope, err := discovery.Wrap(s.session, path, resource)
		if err != nil {
			return discovery.MappingError(err)
		}

		s.emitter.Emit(ctx, envelope)
		count++

		return nil
	})

	log.WithContext(ctx).WithFields(log.Fields{
		"ovm.discovery.resourceType": p.kind.ResourceType,
		"ovm.discovery.count":        count,
	}).Debug("Listing pass complete")

	if err != nil && discovery.CategoryOf(err) == discovery.CategoryUnknown {
		return discovery.ListingError(err)
	}

	return err
}

// iamPolicy wraps a policy lookup as an enrichment returning the iamPolicy
// supplement
func iamPolicy[T any](lookup func(ctx context.Context, item T) (any, error)) func(ctx context.Context, item T) ([]discovery.Supplement, error) {
	return func(ctx context.Context, item T) ([]discovery.Supplement, error) {
		policy, err := lookup(ctx, item)
		if err != nil {
			return nil, err
		}

		return []discovery.Supplement{{Key: gcpshared.IAMPolicyField, Value: policy}}, nil
	}
}
