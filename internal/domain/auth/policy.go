package auth

import (
	"context"
	"errors"
	"strings"
)

// RoleSuperadmin is the only privileged role value. Comparison is
// case-insensitive everywhere.
const RoleSuperadmin = "superadmin"

type Operation string

const (
	OpList   Operation = "list"
	OpRead   Operation = "read"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
	OpExport Operation = "export"
)

var (
	// ErrIdentityNotFound means a valid token resolved to no stored
	// record, e.g. a deleted account with a still-live token.
	ErrIdentityNotFound = errors.New("caller record not found")

	ErrForbidden          = errors.New("not permitted")
	ErrSuperadminRequired = errors.New("superadmin authorization required")
)

// RoleLookup resolves the current role of an employee. The directory
// store satisfies it.
type RoleLookup interface {
	RoleOf(ctx context.Context, employeeID string) (string, error)
	ErrIsNotFound(err error) bool
}

type Policy struct {
	Roles RoleLookup
}

func NewPolicy(roles RoleLookup) *Policy {
	return &Policy{Roles: roles}
}

func IsSuperadmin(role string) bool {
	return strings.EqualFold(strings.TrimSpace(role), RoleSuperadmin)
}

// Authorize decides whether callerID may perform op on targetID.
// targetID is empty for list, create and export. The caller's role is
// fetched fresh per decision, never cached.
func (p *Policy) Authorize(ctx context.Context, callerID, targetID string, op Operation) error {
	role, err := p.Roles.RoleOf(ctx, callerID)
	if err != nil {
		if p.Roles.ErrIsNotFound(err) {
			return ErrIdentityNotFound
		}
		return err
	}

	if IsSuperadmin(role) {
		return nil
	}

	switch op {
	case OpRead, OpUpdate, OpDelete:
		if callerID == targetID {
			return nil
		}
		return ErrForbidden
	case OpList, OpCreate, OpExport:
		return ErrSuperadminRequired
	default:
		return ErrForbidden
	}
}
