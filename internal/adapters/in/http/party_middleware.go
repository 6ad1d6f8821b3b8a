package http

import (
	"net/http"

	"agritrace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Header names carrying the caller's identity, set by the gateway in front
// of this service.
const (
	HeaderPartyID       = "X-Party-ID"
	HeaderPartyIdentity = "X-Party-Identity"
	HeaderPartyRole     = "X-Party-Role"
)

const partyContextKey = "party"

// PartyContext builds a kernel.Party from the identity headers and stores it
// on the request context. Requests with missing or malformed headers are
// rejected before reaching a handler.
func PartyContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			party, err := partyFromHeaders(ctx)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Missing or invalid party headers: " + err.Error(),
				})
			}

			ctx.Set(partyContextKey, party)
			return next(ctx)
		}
	}
}

func partyFromHeaders(ctx echo.Context) (kernel.Party, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderPartyID))
	if err != nil {
		return kernel.Party{}, err
	}

	role, err := kernel.RoleFromString(ctx.Request().Header.Get(HeaderPartyRole))
	if err != nil {
		return kernel.Party{}, err
	}

	return kernel.NewParty(id, ctx.Request().Header.Get(HeaderPartyIdentity), role)
}

// currentParty returns the party stored by PartyContext.
func currentParty(ctx echo.Context) kernel.Party {
	party, _ := ctx.Get(partyContextKey).(kernel.Party)
	return party
}
