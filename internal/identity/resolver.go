// Package identity enforces per-user uniqueness of resume titles with
// suffix disambiguation.
package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// MaxTitleAttempts bounds suffix generation. Past this many collisions
// something is wrong with the lookup, not the title.
const MaxTitleAttempts = 10

// ExistsFunc reports whether a title is already taken within the user's
// namespace.
type ExistsFunc func(ctx context.Context, userID uuid.UUID, title string) (bool, error)

// ExhaustedError indicates no free title variant was found within the
// attempt ceiling.
type ExhaustedError struct {
	Title    string
	Attempts int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("could not resolve a unique title for %q after %d attempts", e.Title, e.Attempts)
}

// ResolveTitle returns desiredTitle unchanged when it is unused, otherwise
// the first free variant with a numeric suffix: "Resume (2)", "Resume (3)",
// and so on.
//
// This check-then-use pattern is racy under concurrent requests for the
// same user and title; the storage layer's uniqueness constraint on
// (user_id, title) is the authoritative backstop. This pre-check reduces
// collision probability, it does not eliminate it.
func ResolveTitle(ctx context.Context, desiredTitle string, userID uuid.UUID, exists ExistsFunc) (string, error) {
	candidate := desiredTitle
	for attempt := 1; attempt <= MaxTitleAttempts; attempt++ {
		taken, err := exists(ctx, userID, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check title %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s (%d)", desiredTitle, attempt+1)
	}
	return "", &ExhaustedError{Title: desiredTitle, Attempts: MaxTitleAttempts}
}
