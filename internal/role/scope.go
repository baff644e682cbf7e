package role

import "fmt"

// Scope describes what the acting user may do with one target record.
type Scope struct {
	CanRead  bool
	CanWrite bool
}

// ScopeFor decides read/write access to a single personal or timesheet
// record, characterized by its owner and (if any) assigned supervisor.
// Rules apply in order, first match wins:
//
//  1. ceo/manager: full access to every record.
//  2. accountant: read everything, write nothing here (its write
//     surface is financial records only, see FinancialScopeFor).
//  3. supervisor: full access to records of direct reports.
//  4. worker: full access to own records only.
//
// An unrecognized role is a programming error: Role is a closed
// enumeration, so a value outside it means corruption upstream and we
// fail fast rather than guess at a permission.
func ScopeFor(primary Role, actingUserID, targetOwnerID, targetSupervisorID string) Scope {
	switch primary {
	case CEO, Manager:
		return Scope{CanRead: true, CanWrite: true}
	case Accountant:
		return Scope{CanRead: true, CanWrite: false}
	case Supervisor:
		if targetSupervisorID == actingUserID {
			return Scope{CanRead: true, CanWrite: true}
		}
		return Scope{}
	case Worker:
		if targetOwnerID == actingUserID {
			return Scope{CanRead: true, CanWrite: true}
		}
		return Scope{}
	default:
		panic(fmt.Sprintf("role: scope requested for unknown role %q", primary))
	}
}

// FinancialScopeFor decides access to financial-transaction and
// payment-status records. Accountant is the capability-set exception:
// it writes here despite being read-only on personal records.
func FinancialScopeFor(primary Role) Scope {
	switch primary {
	case CEO, Manager, Accountant:
		return Scope{CanRead: true, CanWrite: true}
	case Supervisor, Worker:
		return Scope{CanRead: false, CanWrite: false}
	default:
		panic(fmt.Sprintf("role: financial scope requested for unknown role %q", primary))
	}
}
