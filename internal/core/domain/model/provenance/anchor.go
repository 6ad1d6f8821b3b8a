package provenance

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/pkg/errs"
)

// ErrAnchorIsNotConstructed is returned when an Anchor instance was not
// created through NewAnchor or RestoreAnchor.
var ErrAnchorIsNotConstructed = errors.New("Anchor must be created via NewAnchor or RestoreAnchor")

// Anchor is a periodic checkpoint over a segment of the ledger. It stores
// the SHA-256 digest of the segment's entries so that later tampering with
// stored entries is detectable by recomputing the digest.
type Anchor struct {
	id         kernel.UUID
	digest     string
	entryCount int
	coversTo   time.Time
	createdAt  time.Time

	isConstructed bool
}

// NewAnchor computes the digest over the given entries and returns the
// checkpoint covering them. The entries must be in recording order; coversTo
// is the recording time of the last entry.
func NewAnchor(id kernel.UUID, entries []*Entry) (*Anchor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errs.NewValueIsRequiredError("entries")
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return nil, err
		}
		lines = append(lines, strings.Join([]string{
			entry.ID().String(),
			entry.CropID().String(),
			string(entry.Action()),
			entry.RecordedAt().Format(time.RFC3339Nano),
		}, "|"))
	}

	sum := sha256.Sum256([]byte(strings.Join(lines, "\n")))

	return &Anchor{
		id:            id,
		digest:        hex.EncodeToString(sum[:]),
		entryCount:    len(entries),
		coversTo:      entries[len(entries)-1].RecordedAt(),
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreAnchor reconstructs an Anchor from persistent storage.
func RestoreAnchor(
	id kernel.UUID,
	digest string,
	entryCount int,
	coversTo time.Time,
	createdAt time.Time,
) (*Anchor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if digest == "" {
		return nil, errs.NewValueIsRequiredError("digest")
	}
	if entryCount <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("entryCount", entryCount, 1, nil)
	}

	return &Anchor{
		id:            id,
		digest:        digest,
		entryCount:    entryCount,
		coversTo:      coversTo,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Anchor was properly constructed.
func (a *Anchor) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAnchorIsNotConstructed
	}
	return nil
}

// ID returns the anchor's unique identifier.
func (a *Anchor) ID() kernel.UUID {
	return a.id
}

// Digest returns the hex SHA-256 digest over the covered entries.
func (a *Anchor) Digest() string {
	return a.digest
}

// EntryCount returns how many entries the anchor covers.
func (a *Anchor) EntryCount() int {
	return a.entryCount
}

// CoversTo returns the recording time of the last covered entry.
// The next anchoring run picks up entries recorded after this instant.
func (a *Anchor) CoversTo() time.Time {
	return a.coversTo
}

// CreatedAt returns when the anchor was computed.
func (a *Anchor) CreatedAt() time.Time {
	return a.createdAt
}
