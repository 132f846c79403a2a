package discovery

import (
	"time"

	"github.com/google/uuid"
)

// Session describes one discovery run. It is created once per scan by the
// host and shared read-only by every envelope produced during that scan
type Session struct {
	ID            string    `json:"id"`
	ProjectID     string    `json:"projectId"`
	StartedAt     time.Time `json:"startedAt"`
	SourceVersion string    `json:"sourceVersion"`
}

// NewSession creates a session with a random ID, stamped with the current time
func NewSession(projectID, sourceVersion string) *Session {
	return &Session{
		ID:            uuid.New().String(),
		ProjectID:     projectID,
		StartedAt:     time.Now().UTC(),
		SourceVersion: sourceVersion,
	}
}
