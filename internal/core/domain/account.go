package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of account roles. The zero value is not a valid
// role, so an Actor or Account built without one fails ResolveOwner.
type Role uint8

const (
	RoleAdmin Role = iota + 1
	RoleDeveloper
	RoleViewer
)

// ParseRole converts the stored or claimed role name into a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "admin":
		return RoleAdmin, nil
	case "developer":
		return RoleDeveloper, nil
	case "viewer":
		return RoleViewer, nil
	default:
		return 0, fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleDeveloper:
		return "developer"
	case RoleViewer:
		return "viewer"
	default:
		return "invalid"
	}
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	return r >= RoleAdmin && r <= RoleViewer
}

// MarshalText encodes the role by name.
func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid role %d", r)
	}
	return []byte(r.String()), nil
}

// UnmarshalText decodes a role name.
func (r *Role) UnmarshalText(b []byte) error {
	parsed, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// SubscriptionStatus mirrors the status kept by the external billing flow.
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// Subscription is the billing state of an admin account. Start and End are
// optional; an unset bound is open.
type Subscription struct {
	Status SubscriptionStatus `json:"status"`
	Start  *time.Time         `json:"start,omitempty"`
	End    *time.Time         `json:"end,omitempty"`
}

// ActiveAt reports whether the subscription covers the instant now. Both
// bounds are inclusive.
func (s *Subscription) ActiveAt(now time.Time) bool {
	if s == nil || s.Status != SubscriptionActive {
		return false
	}
	if s.Start != nil && s.Start.After(now) {
		return false
	}
	if s.End != nil && s.End.Before(now) {
		return false
	}
	return true
}

// Account is a tenant admin or an operator (developer, viewer) acting under
// one. ParentID is set iff Role is not RoleAdmin.
type Account struct {
	ID           uuid.UUID
	Role         Role
	ParentID     *uuid.UUID
	Credits      int64
	Subscription *Subscription
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Actor is the authenticated caller handed to the core by the transport.
type Actor struct {
	ID       uuid.UUID
	Role     Role
	ParentID *uuid.UUID
}

// ResolveOwner returns the tenant that scopes everything the actor touches:
// an admin owns itself, an operator acts for its parent admin. The raw id of
// an operator is never a tenant.
func ResolveOwner(actor Actor) (uuid.UUID, error) {
	switch actor.Role {
	case RoleAdmin:
		if actor.ID == uuid.Nil {
			return uuid.Nil, ErrInvalidActor
		}
		return actor.ID, nil
	case RoleDeveloper, RoleViewer:
		if actor.ParentID == nil || *actor.ParentID == uuid.Nil {
			return uuid.Nil, ErrInvalidActor
		}
		return *actor.ParentID, nil
	default:
		return uuid.Nil, ErrInvalidActor
	}
}
