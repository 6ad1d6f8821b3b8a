package kernel

import (
	"fmt"

	"agritrace/internal/pkg/errs"
)

// Role represents the position a party occupies in the custody chain.
// Roles are carried on crops (current owner role), ledger entries (acting
// party role), and acting parties themselves.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleFarmer registers crops and is their first owner.
	RoleFarmer

	// RoleDistributor buys crops from farmers and moves them downstream.
	RoleDistributor

	// RoleRetailer buys crops from distributors and sells to consumers.
	RoleRetailer

	// RoleConsumer is the final owner in the custody chain.
	RoleConsumer

	// RoleAdmin performs administrative actions such as dispute resolution.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:     "UNKNOWN",
		RoleFarmer:      "FARMER",
		RoleDistributor: "DISTRIBUTOR",
		RoleRetailer:    "RETAILER",
		RoleConsumer:    "CONSUMER",
		RoleAdmin:       "ADMIN",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleFarmer:      "FARMER",
		RoleDistributor: "DISTRIBUTOR",
		RoleRetailer:    "RETAILER",
		RoleConsumer:    "CONSUMER",
		RoleAdmin:       "ADMIN",
	}
}

// RoleFromString parses the persisted/transport representation of a role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role", fmt.Errorf("%q is not a valid role", s))
}

// String returns the persisted name of the role, or "UNKNOWN" for invalid
// values. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks if the Role value is valid.
// RoleUnknown (0) and any other values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// ErrPartyIsNotConstructed indicates a Party was not created via NewParty.
var ErrPartyIsNotConstructed = errs.NewValueIsRequiredError("Party must be created via NewParty")

// Party is the acting identity for an operation: who is "the farmer",
// "the buyer", "the admin". Identity resolution (authentication) is an
// external collaborator; the core only ever sees a Party that is threaded
// explicitly through operation parameters, never read from ambient state.
//
// Party is an immutable value object. Two parties are equal when their
// identifiers are equal.
type Party struct {
	id       UUID
	identity string
	role     Role
}

// NewParty creates a validated acting party.
// identity is the party's externally meaningful handle (an email in the
// reference deployment) and is what the public trace view exposes as the
// owner identity.
func NewParty(id UUID, identity string, role Role) (Party, error) {
	if err := id.Validate(); err != nil {
		return Party{}, err
	}
	if identity == "" {
		return Party{}, errs.NewValueIsRequiredError("identity")
	}
	if err := role.Validate(); err != nil {
		return Party{}, err
	}

	return Party{id: id, identity: identity, role: role}, nil
}

// ID returns the party's unique identifier.
func (p Party) ID() UUID {
	return p.id
}

// Identity returns the party's externally meaningful handle.
func (p Party) Identity() string {
	return p.identity
}

// Role returns the party's custody-chain role.
func (p Party) Role() Role {
	return p.role
}

// IsEqual compares two parties by identifier.
func (p Party) IsEqual(other Party) bool {
	return p.id.IsEqual(other.id)
}

// Validate checks that the party was created through NewParty.
func (p Party) Validate() error {
	if err := p.id.Validate(); err != nil {
		return ErrPartyIsNotConstructed
	}
	return nil
}
