package services

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/pkg/errs"
)

// TraceTokenGenerator is a domain service that derives the public trace token
// for a crop at registration time.
//
// The token is the lowercase hex SHA-256 digest of the crop's canonical
// registration fields. It is stable for the crop's whole lifetime: ownership
// transfers and state changes never alter it, so a label printed at harvest
// stays valid at the shelf.
//
// Key properties:
//   - Deterministic: the same registration inputs always produce the same token
//   - Opaque: the token reveals none of the inputs
//   - Collision-resistant across registrations via the registration ID
type TraceTokenGenerator struct{}

// NewTraceTokenGenerator creates a new TraceTokenGenerator instance.
func NewTraceTokenGenerator() TraceTokenGenerator {
	return TraceTokenGenerator{}
}

// Generate derives the trace token from the crop's canonical registration
// fields. The registration ID acts as a per-crop nonce so two identical
// harvests registered separately still get distinct tokens.
func (g TraceTokenGenerator) Generate(
	registrationID kernel.UUID,
	name string,
	harvestDate time.Time,
	location string,
	owner kernel.Party,
) (string, error) {
	if err := registrationID.Validate(); err != nil {
		return "", err
	}
	if name == "" {
		return "", errs.NewValueIsRequiredError("name")
	}
	if harvestDate.IsZero() {
		return "", errs.NewValueIsRequiredError("harvestDate")
	}
	if location == "" {
		return "", errs.NewValueIsRequiredError("location")
	}
	if err := owner.Validate(); err != nil {
		return "", err
	}

	canonical := strings.Join([]string{
		registrationID.String(),
		name,
		harvestDate.UTC().Format(time.RFC3339),
		location,
		owner.ID().String(),
	}, "|")

	digest := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(digest[:]), nil
}
