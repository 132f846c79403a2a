package sinks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/overmindtech/harvester/discovery"
)

// JSONLines writes one versioned envelope per line
type JSONLines struct {
	mu     sync.Mutex
	enc    *json.Encoder
	closer io.Closer
}

// NewJSONLines writes to w. The writer is not closed by Close
func NewJSONLines(w io.Writer) *JSONLines {
	return &JSONLines{enc: json.NewEncoder(w)}
}

// OpenJSONLinesFile appends to the file at path, creating it if needed
func OpenJSONLinesFile(path string) (*JSONLines, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("error opening output file: %w", err)
	}

	return &JSONLines{
		enc:    json.NewEncoder(f),
		closer: f,
	}, nil
}

func (j *JSONLines) Emit(ctx context.Context, envelope *discovery.VersionedEnvelope) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := j.enc.Encode(envelope); err != nil {
		id := envelope.Identity()
		log.WithContext(ctx).WithError(err).WithFields(log.Fields{
			"ovm.discovery.resourceType": id.ResourceType,
			"ovm.discovery.resourceId":   id.ResourceID,
		}).Error("Error writing envelope")
	}
}

func (j *JSONLines) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closer == nil {
		return nil
	}

	return j.closer.Close()
}
