package role_test

import (
	"testing"

	"github.com/simeongugl4-design/workforce-hub-png/internal/role"

	"github.com/stretchr/testify/assert"
)

func TestScopeFor(t *testing.T) {
	tests := []struct {
		name         string
		primary      role.Role
		actor        string
		owner        string
		supervisor   string
		wantRead     bool
		wantWrite    bool
	}{
		{"ceo reads and writes anything", role.CEO, "A", "B", "C", true, true},
		{"manager reads and writes anything", role.Manager, "A", "B", "C", true, true},
		{"accountant reads anything", role.Accountant, "A", "B", "C", true, false},
		{"accountant cannot write personal records", role.Accountant, "A", "A", "A", true, false},
		{"supervisor over direct report", role.Supervisor, "A", "B", "A", true, true},
		{"supervisor over someone else's report", role.Supervisor, "A", "B", "C", false, false},
		{"worker on own record", role.Worker, "A", "A", "B", true, true},
		{"worker on another record", role.Worker, "A", "B", "B", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := role.ScopeFor(tt.primary, tt.actor, tt.owner, tt.supervisor)
			assert.Equal(t, tt.wantRead, got.CanRead)
			assert.Equal(t, tt.wantWrite, got.CanWrite)
		})
	}
}

func TestScopeFor_Monotone(t *testing.T) {
	// Whatever a worker can do with its own record, every higher role
	// can do with that record too (accountant excepted on writes).
	workerScope := role.ScopeFor(role.Worker, "A", "A", "S")

	for _, higher := range []role.Role{role.Supervisor, role.Manager, role.CEO} {
		s := role.ScopeFor(higher, "S", "A", "S")
		if workerScope.CanRead {
			assert.True(t, s.CanRead, "role %s lost read", higher)
		}
		if workerScope.CanWrite {
			assert.True(t, s.CanWrite, "role %s lost write", higher)
		}
	}
}

func TestScopeFor_UnknownRolePanics(t *testing.T) {
	assert.Panics(t, func() {
		role.ScopeFor(role.Role("superadmin"), "A", "B", "C")
	})
	assert.Panics(t, func() {
		role.FinancialScopeFor(role.Role(""))
	})
}

func TestFinancialScopeFor(t *testing.T) {
	assert.Equal(t, role.Scope{CanRead: true, CanWrite: true}, role.FinancialScopeFor(role.Accountant))
	assert.Equal(t, role.Scope{CanRead: true, CanWrite: true}, role.FinancialScopeFor(role.Manager))
	assert.Equal(t, role.Scope{CanRead: true, CanWrite: true}, role.FinancialScopeFor(role.CEO))
	assert.Equal(t, role.Scope{}, role.FinancialScopeFor(role.Supervisor))
	assert.Equal(t, role.Scope{}, role.FinancialScopeFor(role.Worker))
}
