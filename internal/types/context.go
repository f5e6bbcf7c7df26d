package types

import "context"

type contextKey string

const (
	// ProfileNameKey is the context key for the impersonation profile name (e.g. "android", "web").
	ProfileNameKey contextKey = "profileName"
)

// WithProfileName returns a new context with the profile name added.
func WithProfileName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, ProfileNameKey, name)
}

// ProfileNameFromContext returns the profile name from the context.
func ProfileNameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(ProfileNameKey).(string)
	return name, ok
}
