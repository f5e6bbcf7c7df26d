package fetcher

import (
	"fmt"
	"strings"
)

// AttemptError captures one failed strategy/profile attempt.
type AttemptError struct {
	Strategy string
	Profile  string
	Err      error
}

func (e AttemptError) String() string {
	name := e.Strategy
	if e.Profile != "" {
		name += "/" + e.Profile
	}
	if e.Err == nil {
		return name
	}
	return name + ": " + e.Err.Error()
}

// ExhaustedError is returned when every strategy/profile combination failed
// or came back insufficient and nothing was retained.
type ExhaustedError struct {
	Attempts []AttemptError
}

func (e *ExhaustedError) Error() string {
	if len(e.Attempts) == 0 {
		return "all acquisition strategies failed"
	}
	names := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		names = append(names, a.String())
	}
	return fmt.Sprintf("all acquisition strategies failed: %s", strings.Join(names, "; "))
}

// PlayabilityError indicates the player endpoint answered with an error
// status payload.
type PlayabilityError struct {
	Profile string
	Status  string
	Reason  string
}

func (e *PlayabilityError) Error() string {
	return fmt.Sprintf("unplayable status=%s profile=%s reason=%s", e.Status, e.Profile, e.Reason)
}

func (e *PlayabilityError) RequiresLogin() bool {
	s := strings.ToUpper(e.Status + " " + e.Reason)
	return strings.Contains(s, "LOGIN") || strings.Contains(s, "SIGN IN")
}

func (e *PlayabilityError) IsUnavailable() bool {
	s := strings.ToUpper(e.Status + " " + e.Reason)
	return strings.Contains(s, "UNAVAILABLE") ||
		strings.Contains(s, "PRIVATE") ||
		strings.Contains(s, "DELETED")
}
