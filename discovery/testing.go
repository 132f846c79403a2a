package discovery

import (
	"context"
	"strings"
	"sync"
)

// CollectingEmitter stores every envelope it receives. It is intended for
// tests and is safe for concurrent use
type CollectingEmitter struct {
	mu        sync.Mutex
	envelopes []*VersionedEnvelope
}

func (c *CollectingEmitter) Emit(_ context.Context, envelope *VersionedEnvelope) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.envelopes = append(c.envelopes, envelope)
}

// Envelopes returns a copy of the received envelopes in arrival order
func (c *CollectingEmitter) Envelopes() []*VersionedEnvelope {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]*VersionedEnvelope(nil), c.envelopes...)
}

// ByClassification groups the received envelopes by their joined
// classification path
func (c *CollectingEmitter) ByClassification() map[string][]*VersionedEnvelope {
	grouped := make(map[string][]*VersionedEnvelope)
	for _, e := range c.Envelopes() {
		key := strings.Join(e.ClassificationPath, "/")
		grouped[key] = append(grouped[key], e)
	}

	return grouped
}

// Report is a single failure received by a CollectingReporter
type Report struct {
	ResourceType string
	Err          error
}

// CollectingReporter stores every report it receives. It is intended for
// tests and is safe for concurrent use
type CollectingReporter struct {
	mu      sync.Mutex
	reports []Report
}

func (c *CollectingReporter) Report(_ context.Context, resourceType string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reports = append(c.reports, Report{ResourceType: resourceType, Err: err})
}

// Reports returns a copy of the received reports in arrival order
func (c *CollectingReporter) Reports() []Report {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]Report(nil), c.reports...)
}

// ResourceTypes returns the resource types of the received reports
func (c *CollectingReporter) ResourceTypes() []string {
	reports := c.Reports()
	types := make([]string, 0, len(reports))
	for _, r := range reports {
		types = append(types, r.ResourceType)
	}

	return types
}
