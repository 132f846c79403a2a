package shared_test

import (
	"testing"

	gcpshared "github.com/overmindtech/harvester/sources/gcp/shared"
)

func TestParents(t *testing.T) {
	if got := gcpshared.ProjectParent("my-project"); got != "projects/my-project" {
		t.Errorf("expected projects/my-project, got %v", got)
	}

	if got := gcpshared.AllLocationsParent("my-project"); got != "projects/my-project/locations/-" {
		t.Errorf("expected projects/my-project/locations/-, got %v", got)
	}
}

func TestKinds(t *testing.T) {
	seen := make(map[string]bool)

	for _, k := range gcpshared.Kinds {
		if seen[k.ResourceType] {
			t.Errorf("duplicate resource type %v", k.ResourceType)
		}
		seen[k.ResourceType] = true

		path := k.ClassificationPath()
		if len(path) != 1 || path[0] != k.Service+":"+k.Subtype {
			t.Errorf("unexpected classification path %v for %v", path, k)
		}

		if k.String() != k.ResourceType {
			t.Errorf("expected %v, got %v", k.ResourceType, k.String())
		}
	}
}
