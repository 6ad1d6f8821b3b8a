// Package kernel contains the shared value objects of the domain model:
// identifiers (UUID), custody-chain roles, and the acting Party that every
// operation receives explicitly. All types in this package are immutable
// value objects constructed through validating factory functions.
package kernel
