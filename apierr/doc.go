// Package apierr provides structured error types for calls to the Lucille
// Brain API.
//
// This package defines a closed set of error kinds and a structured Error
// type that carries the HTTP status, a retry-after hint, and the raw
// diagnostic body of a failed call. It integrates with Go's standard errors
// package for error wrapping and unwrapping.
//
// Every failure of an upstream call is classified into exactly one Kind, and
// every Kind renders to a deterministic guidance string via Guidance. The
// gateway never surfaces the underlying failure to the agent; it surfaces
// the guidance text instead.
package apierr
