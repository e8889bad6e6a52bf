package datamodel

import "fmt"

// Session is the minimal view of a running machine a Provider needs to
// evaluate In() and resolve guards. statecraft.Session satisfies this
// interface; it is declared here, in the consuming package, rather than
// imported from statecraft, so that datamodel never depends on the package
// that depends on it.
type Session interface {
	// Active returns the current active configuration, leaves first.
	Active() []string
	// Is reports whether name is a member of the active configuration.
	Is(name string) bool
}

// Provider evaluates guards and executes action content against a
// session's data environment (§4.3). Eval is used for transition guards;
// Exec runs action expressions (Assign right-hand sides, Script bodies,
// ForEach array expressions, If/ElseIf conditions reuse Eval).
type Provider interface {
	Eval(session Session, expr any) (bool, error)
	Exec(session Session, expr any) (any, error)
	Env() *Environment
	// RegisterIn installs the core's In("state") predicate. Called once by
	// the interpreter before the first Trigger.
	RegisterIn(fn func(name string) bool)
}

// ErrSourceStringsUnsupported is returned by Null when handed anything
// other than a callable or boolean literal.
var ErrSourceStringsUnsupported = fmt.Errorf("datamodel: source string expressions are not supported by the null provider")

// Null is the provider used when a session has no need for a data
// environment: it accepts only callables (func(Session) bool for guards,
// func(Session) (any, error) for actions) and boolean literals, and
// rejects every source string outright. Grounded in the teacher's own
// "no-op" extensibility stance — a config that never uses string
// expressions should not have to wire up an evaluator at all.
type Null struct {
	env *Environment
	in  func(string) bool
}

// NewNull creates a Null provider with an empty Environment.
func NewNull() *Null {
	return &Null{env: NewEnvironment()}
}

func (n *Null) Env() *Environment { return n.env }

func (n *Null) RegisterIn(fn func(name string) bool) { n.in = fn }

func (n *Null) Eval(session Session, expr any) (bool, error) {
	switch v := expr.(type) {
	case nil:
		return true, nil
	case bool:
		return v, nil
	case func(Session) bool:
		return v(session), nil
	default:
		return false, fmt.Errorf("datamodel: guard %v (%T): %w", expr, expr, ErrSourceStringsUnsupported)
	}
}

func (n *Null) Exec(session Session, expr any) (any, error) {
	switch v := expr.(type) {
	case nil:
		return nil, nil
	case func(Session) (any, error):
		return v(session)
	case func(Session):
		v(session)
		return nil, nil
	default:
		return nil, fmt.Errorf("datamodel: action %v (%T): %w", expr, expr, ErrSourceStringsUnsupported)
	}
}
