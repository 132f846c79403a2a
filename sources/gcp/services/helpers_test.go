package services_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/protobuf/proto"

	"github.com/overmindtech/harvester/discovery"
)

const projectID = "my-project-id"

var errNoCredentials = errors.New("could not find default credentials")

func connectTo[C io.Closer](client C) discovery.Connector[C] {
	return func(context.Context) (C, error) {
		return client, nil
	}
}

func failToConnect[C io.Closer]() discovery.Connector[C] {
	return func(context.Context) (C, error) {
		var zero C
		return zero, errNoCredentials
	}
}

type harness struct {
	session  *discovery.Session
	emitter  *discovery.CollectingEmitter
	reporter *discovery.CollectingReporter
}

func newHarness() *harness {
	return &harness{
		session:  discovery.NewSession(projectID, "test"),
		emitter:  &discovery.CollectingEmitter{},
		reporter: &discovery.CollectingReporter{},
	}
}

func (h *harness) discover(ctx context.Context, m discovery.Module) {
	m.Discover(ctx, projectID, h.session, h.emitter, h.reporter)
}

// resources returns the decoded resources emitted under the classification
// path, in emission order
func (h *harness) resources(t *testing.T, path string) []*discovery.Resource {
	t.Helper()

	var out []*discovery.Resource
	for _, e := range h.emitter.ByClassification()[path] {
		assert.Equal(t, discovery.SchemaVersion, e.SchemaVersion)
		assert.Same(t, h.session, e.Session)

		r, err := e.Resource()
		require.NoError(t, err)
		assert.Equal(t, projectID, r.ProjectID)
		require.NotNil(t, r.Session)
		assert.Equal(t, h.session.ID, r.Session.ID)

		out = append(out, r)
	}

	return out
}

func resourceIDs(resources []*discovery.Resource) []string {
	ids := make([]string, 0, len(resources))
	for _, r := range resources {
		ids = append(ids, r.ResourceID)
	}

	return ids
}

type protoMatcher struct {
	want proto.Message
}

func (m protoMatcher) Matches(x any) bool {
	got, ok := x.(proto.Message)
	return ok && proto.Equal(m.want, got)
}

func (m protoMatcher) String() string {
	return fmt.Sprintf("is equal to %v", m.want)
}

// protoEq matches requests by proto equality rather than reflection
func protoEq(want proto.Message) gomock.Matcher {
	return protoMatcher{want: want}
}
