package environment

import "context"

// Environment represents the application build context.
type Environment string

const (
	// Development for development builds.
	Development Environment = "development"
	// Staging for staging builds.
	Staging Environment = "staging"
	// Production for production builds.
	Production Environment = "production"
)

type contextKey struct{}

// WithContext attaches the environment name to the context.
func WithContext(ctx context.Context, env string) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext retrieves the environment name from the context, or "" when
// none was attached.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(string)
	return env
}

// IsProduction reports whether the context carries the production environment.
func IsProduction(ctx context.Context) bool {
	env := FromContext(ctx)
	return env == string(Production) || env == "prod"
}

// IsDevelopment reports whether the context carries the development environment.
func IsDevelopment(ctx context.Context) bool {
	env := FromContext(ctx)
	return env == string(Development) || env == "dev"
}

// IsStaging reports whether the context carries the staging environment.
func IsStaging(ctx context.Context) bool {
	env := FromContext(ctx)
	return env == string(Staging) || env == "stage"
}
