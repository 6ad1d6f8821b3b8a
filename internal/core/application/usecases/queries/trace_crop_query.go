// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read the database directly and return plain response
// structs; they never load or mutate aggregates.
package queries

import (
	"errors"
	"regexp"
	"time"

	"agritrace/internal/pkg/errs"
	"agritrace/internal/pkg/guard"
)

var ErrTraceCropQueryIsNotConstructed = errors.New(
	"TraceCropQuery must be created via NewTraceCropQuery constructor",
)

var traceTokenPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// TraceCropQuery retrieves the public provenance view of a crop by its trace
// token. This is the anonymous consumer-facing lookup: no party context is
// required and no internal identifiers beyond the token are needed.
type TraceCropQuery struct {
	traceToken string

	guard guard.ConstructorGuard
}

// NewTraceCropQuery creates a query for a crop's public provenance view.
func NewTraceCropQuery(traceToken string) (TraceCropQuery, error) {
	if !traceTokenPattern.MatchString(traceToken) {
		return TraceCropQuery{}, errs.NewValueIsInvalidError("trace token")
	}

	return TraceCropQuery{
		traceToken: traceToken,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TraceCropQuery) Validate() error {
	return q.guard.Validate(ErrTraceCropQueryIsNotConstructed)
}

// TraceToken returns the token to look up.
func (q TraceCropQuery) TraceToken() string {
	return q.traceToken
}

// TraceEventResponse is one step of a crop's public history.
type TraceEventResponse struct {
	Action      string
	FromState   string
	ToState     string
	Description string
	RecordedAt  time.Time
}

// TraceCropQueryResponse is the public provenance view of one crop.
// It exposes the current owner's display identity but no party identifiers.
type TraceCropQueryResponse struct {
	TraceToken     string
	Name           string
	Quantity       float64
	HarvestDate    time.Time
	Location       string
	CertificateRef string
	State          string
	OwnerIdentity  string
	OwnerRole      string
	History        []TraceEventResponse
}
