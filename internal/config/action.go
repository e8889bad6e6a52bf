package config

// ActionKind discriminates the closed set of executable content variants
// from §3.3. Modeled as a tagged struct rather than an interface hierarchy:
// the interpreter switches on Kind instead of dispatching through behavior
// attached to each variant, keeping action content pure data produced by a
// loader.
type ActionKind string

const (
	ActionAssign  ActionKind = "assign"
	ActionLog     ActionKind = "log"
	ActionRaise   ActionKind = "raise"
	ActionScript  ActionKind = "script"
	ActionIf      ActionKind = "if"
	ActionForEach ActionKind = "foreach"
)

// Action is one executable content node. Exactly one of the pointer fields
// matching Kind is populated; the rest are nil. A loader builds these
// directly (there is no XML/text syntax at this layer).
type Action struct {
	Kind ActionKind `json:"kind" yaml:"kind"`

	Assign  *AssignAction  `json:"assign,omitempty" yaml:"assign,omitempty"`
	Log     *LogAction     `json:"log,omitempty" yaml:"log,omitempty"`
	Raise   *RaiseAction   `json:"raise,omitempty" yaml:"raise,omitempty"`
	Script  *ScriptAction  `json:"script,omitempty" yaml:"script,omitempty"`
	If      *IfAction      `json:"if,omitempty" yaml:"if,omitempty"`
	ForEach *ForEachAction `json:"forEach,omitempty" yaml:"forEach,omitempty"`
}

// Expr is an evaluable expression handed to the datamodel: a boolean
// literal, a Go callable, or a source string whose semantics are
// provider-defined (§4.3). Guards (Cond) and action expressions (Expr)
// share this type.
type Expr any

// AssignAction binds Location in the datamodel to the evaluated Expr.
type AssignAction struct {
	Location string `json:"location" yaml:"location"`
	Expr     Expr   `json:"expr" yaml:"expr"`
}

// LogAction evaluates Expr and routes the result to the host log sink.
type LogAction struct {
	Expr  Expr   `json:"expr" yaml:"expr"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	Level string `json:"level,omitempty" yaml:"level,omitempty"` // debug|info|warn|error, default info
}

// RaiseAction enqueues an internal event for the owning session.
type RaiseAction struct {
	Event string `json:"event" yaml:"event"`
}

// ScriptAction executes a block — a callable or a source string — in the
// datamodel, discarding its result.
type ScriptAction struct {
	Src Expr `json:"src" yaml:"src"`
}

// IfAction is a grouped conditional: Cond/Body, then each ElseIf in order,
// then Else if present. Exactly the first branch whose condition is truthy
// runs (Else always matches).
type IfAction struct {
	Cond    Expr     `json:"cond" yaml:"cond"`
	Body    []Action `json:"body,omitempty" yaml:"body,omitempty"`
	ElseIf  []ElseIf `json:"elseIf,omitempty" yaml:"elseIf,omitempty"`
	Else    []Action `json:"else,omitempty" yaml:"else,omitempty"`
	hasElse bool      // set by SetElse when Else was explicitly provided (vs. no else branch)
}

// ElseIf is one elseif branch of an IfAction.
type ElseIf struct {
	Cond Expr     `json:"cond" yaml:"cond"`
	Body []Action `json:"body,omitempty" yaml:"body,omitempty"`
}

// HasElse reports whether an Else branch was configured: Else is non-empty,
// or SetElse was called, which distinguishes "else with an empty body" from
// "no else".
func (i *IfAction) HasElse() bool { return i.hasElse || len(i.Else) > 0 }

// SetElse records an (possibly empty) Else body and marks it present.
func (i *IfAction) SetElse(body []Action) {
	i.Else = body
	i.hasElse = true
}

// ForEachAction iterates ArrayExpr, binding Item (and optionally Index) for
// the duration of Body. Bindings do not leak past the action (§4.3.4).
type ForEachAction struct {
	ArrayExpr Expr     `json:"arrayExpr" yaml:"arrayExpr"`
	Item      string   `json:"item" yaml:"item"`
	Index     string   `json:"index,omitempty" yaml:"index,omitempty"`
	Body      []Action `json:"body,omitempty" yaml:"body,omitempty"`
}
