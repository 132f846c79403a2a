package discovery

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

var (
	ErrEmptyResourceID = errors.New("resource id must not be empty")
	ErrEmptyProjectID  = errors.New("project id must not be empty")
)

// Resource is the normalised record produced for every discovered item. The
// Configuration holds the full provider representation of the item, while
// SupplementaryConfiguration holds data that was fetched with additional calls
// such as an IAM policy
type Resource struct {
	ResourceID                 string                     `json:"resourceId"`
	ProjectID                  string                     `json:"projectId"`
	ResourceType               string                     `json:"resourceType"`
	Configuration              json.RawMessage            `json:"configuration"`
	SupplementaryConfiguration map[string]json.RawMessage `json:"supplementaryConfiguration"`

	// Set on the serialised copy by Wrap, never by the discovery module
	Session *Session `json:"discoverySessionMetadata,omitempty"`
}

// NewResource builds a Resource whose configuration is the JSON form of the
// supplied provider object.
//
// An empty resourceType is a programming error and panics. An empty resourceID
// or projectID usually means the provider returned something unexpected, so
// that is returned as an error for the caller to report
func NewResource(resourceID, projectID, resourceType string, provider any) (*Resource, error) {
	if resourceType == "" {
		panic("discovery: resource type must not be empty")
	}

	if resourceID == "" {
		return nil, fmt.Errorf("%w (type %v)", ErrEmptyResourceID, resourceType)
	}

	if projectID == "" {
		return nil, fmt.Errorf("%w (type %v)", ErrEmptyProjectID, resourceType)
	}

	config, err := AsJSON(provider)
	if err != nil {
		return nil, fmt.Errorf("error converting %v %v to JSON: %w", resourceType, resourceID, err)
	}

	return &Resource{
		ResourceID:                 resourceID,
		ProjectID:                  projectID,
		ResourceType:               resourceType,
		Configuration:              config,
		SupplementaryConfiguration: make(map[string]json.RawMessage),
	}, nil
}

// AddSupplementary sets a single supplementary field, overwriting any previous
// value stored under the same key. Other keys are left untouched
func (r *Resource) AddSupplementary(key string, value any) error {
	if key == "" {
		return errors.New("supplementary key must not be empty")
	}

	raw, err := AsJSON(value)
	if err != nil {
		return fmt.Errorf("error converting supplementary field %v to JSON: %w", key, err)
	}

	if r.SupplementaryConfiguration == nil {
		r.SupplementaryConfiguration = make(map[string]json.RawMessage)
	}

	r.SupplementaryConfiguration[key] = raw

	return nil
}

// Supplement is a named piece of supplementary configuration produced by an
// enrichment call. Enrichers return these rather than writing to the resource
// directly so that the discovery module stays the only owner of the resource
type Supplement struct {
	Key   string
	Value any
}

// Apply adds all supplements to the resource in order
func (r *Resource) Apply(supplements ...Supplement) error {
	for _, s := range supplements {
		if err := r.AddSupplementary(s.Key, s.Value); err != nil {
			return err
		}
	}

	return nil
}

// AsJSON converts an arbitrary provider object into a JSON document. Protobuf
// messages are converted with protojson so that oneofs, enums and well-known
// types keep their canonical form, everything else goes through
// encoding/json
func AsJSON(v any) (json.RawMessage, error) {
	if v == nil {
		return json.RawMessage("null"), nil
	}

	var raw []byte
	var err error

	switch value := v.(type) {
	case json.RawMessage:
		if !json.Valid(value) {
			return nil, errors.New("invalid raw JSON")
		}
		raw = value
	case proto.Message:
		raw, err = protojson.Marshal(value)
	default:
		raw, err = json.Marshal(value)
	}

	if err != nil {
		return nil, err
	}

	// protojson deliberately randomises whitespace
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
