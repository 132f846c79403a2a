package discovery

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession() *Session {
	return &Session{
		ID:            "6b1f2f8e-2f0c-4c43-9d59-2cbd0c3c8f55",
		ProjectID:     "p",
		StartedAt:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		SourceVersion: "test",
	}
}

func testResource(t *testing.T) *Resource {
	t.Helper()

	r, err := NewResource("projects/p/sinks/s", "p", "GCP::Logging::Sink", map[string]string{"name": "projects/p/sinks/s"})
	require.NoError(t, err)
	require.NoError(t, r.AddSupplementary("iamPolicy", map[string]string{"etag": "x"}))

	return r
}

func TestWrap(t *testing.T) {
	session := testSession()

	t.Run("is pure", func(t *testing.T) {
		r := testResource(t)
		path := Classification("logging", "sink")

		a, err := Wrap(session, path, r)
		require.NoError(t, err)
		b, err := Wrap(session, path, r)
		require.NoError(t, err)

		if !reflect.DeepEqual(a, b) {
			t.Errorf("expected equal envelopes, got %+v and %+v", a, b)
		}
	})

	t.Run("does not mutate inputs", func(t *testing.T) {
		r := testResource(t)
		before := *r
		path := []string{"logging:sink"}

		env, err := Wrap(session, path, r)
		require.NoError(t, err)

		assert.Nil(t, r.Session)
		assert.Equal(t, before, *r)
		assert.Equal(t, []string{"logging:sink"}, path)

		// The envelope must not share the caller's slice
		env.ClassificationPath[0] = "changed"
		assert.Equal(t, "logging:sink", path[0])
	})

	t.Run("stamps schema version and session", func(t *testing.T) {
		env, err := Wrap(session, Classification("logging", "sink"), testResource(t))
		require.NoError(t, err)

		assert.Equal(t, SchemaVersion, env.SchemaVersion)
		assert.Same(t, session, env.Session)
		assert.Equal(t, []string{"logging:sink"}, env.ClassificationPath)

		decoded, err := env.Resource()
		require.NoError(t, err)
		require.NotNil(t, decoded.Session)
		assert.Equal(t, session.ID, decoded.Session.ID)
		assert.True(t, session.StartedAt.Equal(decoded.Session.StartedAt))
		assert.Equal(t, "GCP::Logging::Sink", decoded.ResourceType)
		assert.JSONEq(t, `{"etag":"x"}`, string(decoded.SupplementaryConfiguration["iamPolicy"]))
	})

	t.Run("identity", func(t *testing.T) {
		env, err := Wrap(session, Classification("logging", "sink"), testResource(t))
		require.NoError(t, err)

		assert.Equal(t, Identity{
			ProjectID:    "p",
			ResourceType: "GCP::Logging::Sink",
			ResourceID:   "projects/p/sinks/s",
		}, env.Identity())
		assert.Equal(t, "p/GCP::Logging::Sink/projects/p/sinks/s", env.Identity().Key())
	})

	t.Run("identity survives json", func(t *testing.T) {
		env, err := Wrap(session, Classification("logging", "sink"), testResource(t))
		require.NoError(t, err)

		b, err := json.Marshal(env)
		require.NoError(t, err)

		var decoded VersionedEnvelope
		require.NoError(t, json.Unmarshal(b, &decoded))

		assert.Equal(t, env.Identity(), decoded.Identity())
		assert.Equal(t, env.ClassificationPath, decoded.ClassificationPath)
		assert.Equal(t, env.SchemaVersion, decoded.SchemaVersion)
		assert.Equal(t, session.ID, decoded.Session.ID)
		assert.JSONEq(t, string(env.Payload), string(decoded.Payload))
	})

	t.Run("decoding a bad payload", func(t *testing.T) {
		var decoded VersionedEnvelope
		assert.Error(t, json.Unmarshal([]byte(`{"schemaVersion":"1.0","payload":"not an object"}`), &decoded))
	})

	t.Run("decoding without a payload", func(t *testing.T) {
		var decoded VersionedEnvelope
		require.NoError(t, json.Unmarshal([]byte(`{"schemaVersion":"1.0"}`), &decoded))
		assert.Equal(t, Identity{}, decoded.Identity())
	})

	t.Run("payload field names", func(t *testing.T) {
		env, err := Wrap(session, Classification("logging", "sink"), testResource(t))
		require.NoError(t, err)

		var fields map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(env.Payload, &fields))

		for _, name := range []string{"resourceId", "projectId", "resourceType", "configuration", "supplementaryConfiguration", "discoverySessionMetadata"} {
			if _, ok := fields[name]; !ok {
				t.Errorf("expected payload field %v", name)
			}
		}
	})

	t.Run("empty classification path panics", func(t *testing.T) {
		assert.Panics(t, func() {
			_, _ = Wrap(session, nil, testResource(t))
		})
		assert.Panics(t, func() {
			_, _ = Wrap(session, []string{}, testResource(t))
		})
	})

	t.Run("empty classification element panics", func(t *testing.T) {
		assert.Panics(t, func() {
			_, _ = Wrap(session, []string{"logging:sink", ""}, testResource(t))
		})
	})

	t.Run("invalid configuration", func(t *testing.T) {
		r := testResource(t)
		r.Configuration = json.RawMessage(`{`)

		_, err := Wrap(session, Classification("logging", "sink"), r)
		assert.Error(t, err)
	})
}

func TestNewSession(t *testing.T) {
	a := NewSession("p", "v1")
	b := NewSession("p", "v1")

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "p", a.ProjectID)
	assert.Equal(t, "v1", a.SourceVersion)
	assert.Equal(t, time.UTC, a.StartedAt.Location())
}
