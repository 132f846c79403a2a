package sinks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"go.etcd.io/bbolt"

	"github.com/overmindtech/harvester/discovery"
)

var sessionsBucketName = []byte("sessions")

// Bolt stores envelopes in a bbolt database. Each session gets its own
// bucket, named after the session ID, holding one key per resource in the
// form projectID/resourceType/resourceID. Re-discovering a resource within the
// same session overwrites the previous envelope. Session metadata is kept in
// the "sessions" bucket
type Bolt struct {
	db *bbolt.DB
}

// OpenBolt opens or creates the database at path
func OpenBolt(path string) (*Bolt, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{
		Timeout: 5 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(sessionsBucketName); err != nil {
			return fmt.Errorf("failed to create sessions bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Bolt{db: db}, nil
}

func (b *Bolt) Emit(ctx context.Context, envelope *discovery.VersionedEnvelope) {
	id := envelope.Identity()

	if err := b.put(envelope); err != nil {
		log.WithContext(ctx).WithError(err).WithFields(log.Fields{
			"ovm.discovery.resourceType": id.ResourceType,
			"ovm.discovery.resourceId":   id.ResourceID,
		}).Error("Error storing envelope")
	}
}

func (b *Bolt) put(envelope *discovery.VersionedEnvelope) error {
	if envelope.Session == nil {
		return fmt.Errorf("envelope for %v has no session", envelope.Identity().Key())
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to encode envelope: %w", err)
	}

	session, err := json.Marshal(envelope.Session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	sessionKey := []byte(envelope.Session.ID)

	return b.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(sessionsBucketName).Put(sessionKey, session); err != nil {
			return fmt.Errorf("failed to store session: %w", err)
		}

		bucket, err := tx.CreateBucketIfNotExists(sessionKey)
		if err != nil {
			return fmt.Errorf("failed to create session bucket: %w", err)
		}

		return bucket.Put([]byte(envelope.Identity().Key()), data)
	})
}

// Sessions returns the metadata of every session stored in the database
func (b *Bolt) Sessions() ([]*discovery.Session, error) {
	var sessions []*discovery.Session

	err := b.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(sessionsBucketName).ForEach(func(_, v []byte) error {
			var s discovery.Session
			if err := json.Unmarshal(v, &s); err != nil {
				return fmt.Errorf("failed to decode session: %w", err)
			}
			sessions = append(sessions, &s)
			return nil
		})
	})

	return sessions, err
}

// Envelopes returns every envelope stored for a session, ordered by key
func (b *Bolt) Envelopes(sessionID string) ([]*discovery.VersionedEnvelope, error) {
	var envelopes []*discovery.VersionedEnvelope

	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(sessionID))
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(_, v []byte) error {
			var e discovery.VersionedEnvelope
			if err := json.Unmarshal(v, &e); err != nil {
				return fmt.Errorf("failed to decode envelope: %w", err)
			}
			envelopes = append(envelopes, &e)
			return nil
		})
	})

	return envelopes, err
}

func (b *Bolt) Close() error {
	return b.db.Close()
}
