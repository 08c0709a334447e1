package authz

// Operation identifies a guarded service operation.
type Operation string

const (
	OpApplicationAdd     Operation = "application.add"
	OpApplicationUpdate  Operation = "application.update"
	OpApplicationDelete  Operation = "application.delete"
	OpApplicationGet     Operation = "application.get"
	OpApplicationSecret  Operation = "application.secret"
	OpApplicationList    Operation = "application.list"
	OpApplicationListAll Operation = "application.list_all"
	OpApplicationDiagram Operation = "application.diagram"
	OpUserAdd            Operation = "user.add"
	OpUserDelete         Operation = "user.delete"
)

// Decision is the outcome of an authorization check.
type Decision int

const (
	Deny Decision = iota
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// scopeRequirement says what relation the target must have to the caller's
// scope for a rule to match.
type scopeRequirement int

const (
	scopeAny      scopeRequirement = iota // target is irrelevant
	scopeMember                           // target must be in the caller's scope
	scopeNoTarget                         // rule only matches calls without a target
)

// rule is one row of the policy table: operations it covers, the role shape
// it applies to, the scope relation it requires, and the resulting decision.
type rule struct {
	applies  func(Identity) bool
	ops      []Operation
	scope    scopeRequirement
	decision Decision
}

// mutatingOps are the operations reserved for the root identity. A delegated
// administrator never gets write or secret rights, even inside its scope.
var mutatingOps = []Operation{
	OpApplicationAdd,
	OpApplicationUpdate,
	OpApplicationDelete,
	OpApplicationSecret,
	OpUserAdd,
	OpUserDelete,
}

// readOps are the scope-gated read operations available to delegated
// administrators.
var readOps = []Operation{
	OpApplicationGet,
	OpApplicationList,
	OpApplicationListAll,
	OpApplicationDiagram,
}

// rules is the policy, evaluated top to bottom; the first matching row wins
// and anything unmatched is a deny. Keep the ordering: root short-circuits
// first, the write/secret lockout comes before any scope consideration.
var rules = []rule{
	{applies: Identity.IsSuper, ops: nil, scope: scopeAny, decision: Allow},
	{applies: func(Identity) bool { return true }, ops: mutatingOps, scope: scopeAny, decision: Deny},
	{applies: Identity.isScopedAdmin, ops: readOps, scope: scopeMember, decision: Allow},
	{applies: Identity.isScopedAdmin, ops: []Operation{OpApplicationList, OpApplicationListAll}, scope: scopeNoTarget, decision: Allow},
}

// Decide evaluates the policy for a caller, an operation and a target
// application id (empty for untargeted operations such as listing). It is a
// pure function: callers must run it before touching any store so that a
// deny always precedes a not-found.
func Decide(caller Identity, op Operation, targetAppID string) Decision {
	for _, r := range rules {
		if !r.applies(caller) {
			continue
		}
		if !matchOp(r.ops, op) {
			continue
		}
		switch r.scope {
		case scopeMember:
			if targetAppID == "" || !caller.InScope(targetAppID) {
				continue
			}
		case scopeNoTarget:
			if targetAppID != "" {
				continue
			}
		}
		return r.decision
	}
	return Deny
}

// matchOp reports whether op is covered by the rule's operation set; a nil
// set covers every operation.
func matchOp(ops []Operation, op Operation) bool {
	if ops == nil {
		return true
	}
	for _, o := range ops {
		if o == op {
			return true
		}
	}
	return false
}
