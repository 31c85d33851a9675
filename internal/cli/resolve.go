package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveProjectID resolves a project reference to a project UUID. The
// reference can be a job ID (case-insensitive), a full UUID, or a UUID
// prefix.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project reference is required")
	}

	projects, err := app.Projects.List(ctx, true)
	if err != nil {
		return "", err
	}

	// 1. Exact job ID match (case-insensitive)
	for _, p := range projects {
		if strings.EqualFold(p.JobID, input) {
			return p.ID, nil
		}
	}

	// 2. Exact UUID match
	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	// 3. UUID prefix match
	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project reference %q is ambiguous (%d matches)", input, len(matches))
	}
}
