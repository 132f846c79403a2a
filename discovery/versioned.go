package discovery

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SchemaVersion is the revision of the envelope schema. It is owned by the
// dispatch layer, discovery modules never set it
const SchemaVersion = "1.0"

// VersionedEnvelope is the message handed to an Emitter. The payload is the
// serialised Resource, including the session metadata
type VersionedEnvelope struct {
	Session            *Session        `json:"session"`
	ClassificationPath []string        `json:"classificationPath"`
	SchemaVersion      string          `json:"schemaVersion"`
	Payload            json.RawMessage `json:"payload"`

	identity Identity
}

// Identity is the addressable part of a resource
type Identity struct {
	ProjectID    string
	ResourceType string
	ResourceID   string
}

// Key returns a stable key for the resource in the form
// projectID/resourceType/resourceID
func (i Identity) Key() string {
	return fmt.Sprintf("%v/%v/%v", i.ProjectID, i.ResourceType, i.ResourceID)
}

// Identity returns the identity of the wrapped resource so that sinks can key
// or route messages without parsing the payload
func (v *VersionedEnvelope) Identity() Identity {
	return v.identity
}

// UnmarshalJSON decodes an envelope written by a sink and restores its
// identity from the payload
func (v *VersionedEnvelope) UnmarshalJSON(data []byte) error {
	type envelope VersionedEnvelope

	var e envelope
	if err := json.Unmarshal(data, &e); err != nil {
		return err
	}

	*v = VersionedEnvelope(e)

	if len(v.Payload) == 0 || bytes.Equal(v.Payload, []byte("null")) {
		return nil
	}

	var id struct {
		ResourceID   string `json:"resourceId"`
		ProjectID    string `json:"projectId"`
		ResourceType string `json:"resourceType"`
	}

	if err := json.Unmarshal(v.Payload, &id); err != nil {
		return fmt.Errorf("error decoding payload identity: %w", err)
	}

	v.identity = Identity{
		ProjectID:    id.ProjectID,
		ResourceType: id.ResourceType,
		ResourceID:   id.ResourceID,
	}

	return nil
}

// Classification returns the classification path for a service and one of
// its resource subtypes, e.g. ["logging:sink"]
func Classification(service, subtype string) []string {
	return []string{service + ":" + subtype}
}

// Wrap stamps a resource with the session, a classification path and the
// current schema version. It does not modify its inputs and produces equal
// envelopes for equal inputs.
//
// An empty classification path, or one with an empty element, is a
// programming error and panics
func Wrap(session *Session, classificationPath []string, r *Resource) (*VersionedEnvelope, error) {
	if len(classificationPath) == 0 {
		panic("discovery: classification path must not be empty")
	}

	for _, p := range classificationPath {
		if p == "" {
			panic("discovery: classification path must not contain empty elements")
		}
	}

	if r == nil {
		panic("discovery: cannot wrap a nil resource")
	}

	stamped := *r
	stamped.Session = session

	payload, err := json.Marshal(&stamped)
	if err != nil {
		return nil, fmt.Errorf("error serialising %v %v: %w", r.ResourceType, r.ResourceID, err)
	}

	return &VersionedEnvelope{
		Session:            session,
		ClassificationPath: append([]string(nil), classificationPath...),
		SchemaVersion:      SchemaVersion,
		Payload:            payload,
		identity: Identity{
			ProjectID:    r.ProjectID,
			ResourceType: r.ResourceType,
			ResourceID:   r.ResourceID,
		},
	}, nil
}

// Resource decodes the payload back into a Resource
func (v *VersionedEnvelope) Resource() (*Resource, error) {
	var r Resource

	if err := json.Unmarshal(v.Payload, &r); err != nil {
		return nil, fmt.Errorf("error decoding payload: %w", err)
	}

	return &r, nil
}
