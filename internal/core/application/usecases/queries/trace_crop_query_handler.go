package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"agritrace/internal/pkg/errs"
)

// TraceCropQueryHandler serves the anonymous provenance lookup.
type TraceCropQueryHandler struct {
	db *gorm.DB
}

// NewTraceCropQueryHandler creates a handler for public trace lookups.
// Requires a GORM database connection for query execution.
func NewTraceCropQueryHandler(db *gorm.DB) TraceCropQueryHandler {
	return TraceCropQueryHandler{db: db}
}

// Handle resolves the token to a crop and returns its details together with
// the full ledger history, oldest entry first.
func (h TraceCropQueryHandler) Handle(
	ctx context.Context,
	query TraceCropQuery,
) (TraceCropQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TraceCropQueryResponse{}, err
	}

	var resp TraceCropQueryResponse
	var cropID string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			trace_token,
			name,
			quantity,
			harvest_date,
			location,
			certificate_ref,
			state,
			owner_identity,
			owner_role
		FROM crops
		WHERE trace_token = ?
	`, query.TraceToken()).Row()

	err := row.Scan(
		&cropID,
		&resp.TraceToken,
		&resp.Name,
		&resp.Quantity,
		&resp.HarvestDate,
		&resp.Location,
		&resp.CertificateRef,
		&resp.State,
		&resp.OwnerIdentity,
		&resp.OwnerRole,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return TraceCropQueryResponse{}, errs.NewObjectNotFoundError("trace token", query.TraceToken())
	}
	if err != nil {
		return TraceCropQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			action,
			from_state,
			to_state,
			recorded_at
		FROM provenance_entries
		WHERE crop_id = ?
		ORDER BY recorded_at, id
	`, cropID).Rows()
	if err != nil {
		return TraceCropQueryResponse{}, err
	}
	defer rows.Close()

	resp.History = make([]TraceEventResponse, 0)

	for rows.Next() {
		var event TraceEventResponse

		if err = rows.Scan(
			&event.Action,
			&event.FromState,
			&event.ToState,
			&event.RecordedAt,
		); err != nil {
			return TraceCropQueryResponse{}, err
		}

		event.Description = fmt.Sprintf("%s at %s", event.Action, event.RecordedAt.Format(time.RFC3339))
		resp.History = append(resp.History, event)
	}

	if err = rows.Err(); err != nil {
		return TraceCropQueryResponse{}, err
	}

	return resp, nil
}
