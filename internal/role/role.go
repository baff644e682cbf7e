package role

import (
	"net/http"

	"github.com/simeongugl4-design/workforce-hub-png/internal/shared/apperror"
)

// Role is the closed set of labels a user can hold. A user may hold
// several at once (one user_roles row per held role); the single role
// that drives dashboards and permissions is derived via ResolvePrimary.
type Role string

const (
	CEO        Role = "ceo"
	Manager    Role = "manager"
	Accountant Role = "accountant"
	Supervisor Role = "supervisor"
	Worker     Role = "worker"
)

// priority is the fixed total order used to pick the primary role.
// Accountant sits above supervisor by priority but its write surface is
// a capability-set exception, see FinancialScopeFor.
var priority = []Role{CEO, Manager, Accountant, Supervisor, Worker}

var ErrUnknownRole = apperror.New(
	apperror.CodeInvalidInput,
	"unknown role label",
	http.StatusBadRequest,
)

func Parse(v string) (Role, error) {
	switch Role(v) {
	case CEO, Manager, Accountant, Supervisor, Worker:
		return Role(v), nil
	default:
		return "", ErrUnknownRole
	}
}

func (r Role) String() string { return string(r) }

// Valid reports whether r is a member of the closed enumeration.
func (r Role) Valid() bool {
	switch r {
	case CEO, Manager, Accountant, Supervisor, Worker:
		return true
	}
	return false
}

// ResolvePrimary returns the highest-priority role present in roles.
// It is total: an empty set resolves to Worker (no explicit assignment
// means a plain worker account), and duplicates or ordering of the
// input never change the result.
func ResolvePrimary(roles []Role) Role {
	for _, p := range priority {
		for _, r := range roles {
			if r == p {
				return p
			}
		}
	}
	return Worker
}

// ParseAll converts raw labels into roles, rejecting the first unknown one.
func ParseAll(labels []string) ([]Role, error) {
	roles := make([]Role, 0, len(labels))
	for _, l := range labels {
		r, err := Parse(l)
		if err != nil {
			return nil, err
		}
		roles = append(roles, r)
	}
	return roles, nil
}

// Strings converts roles back to their wire labels.
func Strings(roles []Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}
