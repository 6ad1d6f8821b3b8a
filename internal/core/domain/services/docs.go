// Package services provides domain services that implement business logic
// which doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - TraceTokenGenerator: derives the public trace token under which a
//     crop's provenance can be looked up by anyone holding the token
package services
