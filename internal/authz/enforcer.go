package authz

import (
	"github.com/simeongugl4-design/workforce-hub-png/internal/role"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const modelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// grant is one role's allowance on a resource surface.
type grant struct {
	role     role.Role
	resource string
	action   string
}

// The route-level permission table, derived from which dashboards and
// pages each role may reach. Record-level visibility (whose records)
// stays in role.ScopeFor inside the services; this table only gates
// whether a role may touch a surface at all.
var grants = []grant{
	// Everyone authenticated reaches their own profile and inbox.
	{role.Worker, "profile", "read"}, {role.Worker, "profile", "write"},
	{role.Worker, "timesheet", "read"},
	{role.Worker, "payslip", "read"},
	{role.Worker, "worksummary", "read"}, {role.Worker, "worksummary", "write"},
	{role.Worker, "message", "read"}, {role.Worker, "message", "write"},
	{role.Worker, "contract", "read"},

	// Supervisors enter and approve hours for their reports.
	{role.Supervisor, "timesheet", "write"},
	{role.Supervisor, "timesheet", "approve"},
	{role.Supervisor, "worksummary", "review"},
	{role.Supervisor, "worker", "read"},

	// Accountants own the money surfaces.
	{role.Accountant, "finance", "read"}, {role.Accountant, "finance", "write"},
	{role.Accountant, "payslip", "generate"}, {role.Accountant, "payslip", "pay"},
	{role.Accountant, "analytics", "read"},
	{role.Accountant, "worker", "read"},

	// Managers and the CEO get the full surface.
	{role.Manager, "timesheet", "write"}, {role.Manager, "timesheet", "approve"},
	{role.Manager, "worksummary", "review"},
	{role.Manager, "worker", "read"}, {role.Manager, "worker", "write"},
	{role.Manager, "account", "approve"},
	{role.Manager, "roleassignment", "write"},
	{role.Manager, "finance", "read"}, {role.Manager, "finance", "write"},
	{role.Manager, "payslip", "generate"}, {role.Manager, "payslip", "pay"},
	{role.Manager, "contract", "write"},
	{role.Manager, "analytics", "read"},
	{role.Manager, "message", "broadcast"},
}

// ceoExtra is what only the CEO surface adds on top of manager.
var ceoExtra = []grant{
	{role.CEO, "analytics", "executive"},
}

// NewEnforcer builds an in-memory casbin enforcer from the static role
// permission table. Policies are keyed by primary role, not user id:
// the resolver collapses a user's role set before enforcement.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, g := range grants {
		if _, err := e.AddPolicy(string(g.role), g.resource, g.action); err != nil {
			return nil, err
		}
	}

	// Scope is monotone in the priority order: supervisor inherits the
	// worker surface, manager inherits supervisor's, ceo inherits
	// manager's. Accountant inherits only the worker baseline, its
	// extra capability set is listed explicitly above.
	inherit := map[role.Role][]role.Role{
		role.Supervisor: {role.Worker},
		role.Accountant: {role.Worker},
		role.Manager:    {role.Supervisor, role.Worker, role.Accountant},
		role.CEO:        {role.Manager, role.Supervisor, role.Worker, role.Accountant},
	}
	for upper, lowers := range inherit {
		for _, lower := range lowers {
			for _, g := range grants {
				if g.role != lower {
					continue
				}
				if _, err := e.AddPolicy(string(upper), g.resource, g.action); err != nil {
					return nil, err
				}
			}
		}
	}

	for _, g := range ceoExtra {
		if _, err := e.AddPolicy(string(g.role), g.resource, g.action); err != nil {
			return nil, err
		}
	}

	return e, nil
}
