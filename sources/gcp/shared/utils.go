package shared

import "fmt"

// ProjectParent returns the parent string used by project-scoped list calls,
// e.g. "projects/my-project"
func ProjectParent(projectID string) string {
	return fmt.Sprintf("projects/%s", projectID)
}

// AllLocationsParent returns the parent string that lists across every
// location, e.g. "projects/my-project/locations/-"
func AllLocationsParent(projectID string) string {
	return fmt.Sprintf("projects/%s/locations/-", projectID)
}
