package sinks

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/overmindtech/harvester/discovery"

	// SQLite driver
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS envelopes (
	session_id     TEXT NOT NULL,
	project_id     TEXT NOT NULL,
	resource_type  TEXT NOT NULL,
	resource_id    TEXT NOT NULL,
	classification TEXT NOT NULL,
	schema_version TEXT NOT NULL,
	payload        TEXT NOT NULL,
	PRIMARY KEY (session_id, project_id, resource_type, resource_id)
)`

const sqliteUpsert = `
INSERT INTO envelopes (session_id, project_id, resource_type, resource_id, classification, schema_version, payload)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(session_id, project_id, resource_type, resource_id) DO UPDATE SET
	classification = excluded.classification,
	schema_version = excluded.schema_version,
	payload = excluded.payload`

// SQLite stores one row per resource per session in the envelopes table. The
// payload column holds the serialised resource
type SQLite struct {
	mu sync.Mutex
	db *sql.DB
}

// OpenSQLite opens or creates the database at path and ensures the schema
// exists
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Writes are serialised anyway
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Emit(ctx context.Context, envelope *discovery.VersionedEnvelope) {
	id := envelope.Identity()

	s.mu.Lock()
	defer s.mu.Unlock()

	var sessionID string
	if envelope.Session != nil {
		sessionID = envelope.Session.ID
	}

	_, err := s.db.ExecContext(ctx, sqliteUpsert,
		sessionID,
		id.ProjectID,
		id.ResourceType,
		id.ResourceID,
		strings.Join(envelope.ClassificationPath, "/"),
		envelope.SchemaVersion,
		string(envelope.Payload),
	)
	if err != nil {
		log.WithContext(ctx).WithError(err).WithFields(log.Fields{
			"ovm.discovery.resourceType": id.ResourceType,
			"ovm.discovery.resourceId":   id.ResourceID,
		}).Error("Error storing envelope")
	}
}

// StoredResource is a single row of the envelopes table
type StoredResource struct {
	SessionID      string
	Identity       discovery.Identity
	Classification string
	SchemaVersion  string
	Payload        json.RawMessage
}

// Resources returns every row stored for a session ordered by project,
// resource type and resource id
func (s *SQLite) Resources(ctx context.Context, sessionID string) ([]StoredResource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `
SELECT project_id, resource_type, resource_id, classification, schema_version, payload
FROM envelopes
WHERE session_id = ?
ORDER BY project_id, resource_type, resource_id`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query envelopes: %w", err)
	}
	defer rows.Close()

	var resources []StoredResource
	for rows.Next() {
		r := StoredResource{SessionID: sessionID}
		var payload string
		err := rows.Scan(
			&r.Identity.ProjectID,
			&r.Identity.ResourceType,
			&r.Identity.ResourceID,
			&r.Classification,
			&r.SchemaVersion,
			&payload,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan envelope: %w", err)
		}
		r.Payload = json.RawMessage(payload)
		resources = append(resources, r)
	}

	return resources, rows.Err()
}

func (s *SQLite) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Close()
}
