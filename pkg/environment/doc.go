// Package environment propagates the embedding application's build context
// (development, staging, production) through context.Context.
//
// The guarded store uses it to decide whether diagnostics may be emitted:
// messages are logged only when the context carries an explicit
// non-production environment.
//
//	ctx := environment.WithContext(ctx, string(environment.Development))
//
//	if !environment.IsProduction(ctx) {
//	    // non-production behaviour
//	}
//
// LoggerExtractor adds the environment as a slog attribute on every record
// when wired into the pkg/logger factory.
//
// All helpers are allocation-free and never return errors; a missing value is
// simply the zero value ("").
package environment
