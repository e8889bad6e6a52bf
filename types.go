package statecraft

import (
	"github.com/comalice/statecraft/internal/config"
	"github.com/comalice/statecraft/internal/datamodel"
	"github.com/comalice/statecraft/internal/interp"
)

// Configuration types from internal/config, re-exported at the root so a
// host can build a MachineConfig and call New without ever importing an
// internal package — internal/config is unreachable from outside this
// module tree (§6.1 "loader-consumed config record").
type (
	MachineConfig    = config.MachineConfig
	StateConfig      = config.StateConfig
	TransitionConfig = config.TransitionConfig
	StateKind        = config.StateKind
	HistoryKind      = config.HistoryKind
	TransitionType   = config.TransitionType
	DataItem         = config.DataItem
	DatamodelConfig  = config.DatamodelConfig
	Action           = config.Action
	ActionKind       = config.ActionKind
	AssignAction     = config.AssignAction
	LogAction        = config.LogAction
	RaiseAction      = config.RaiseAction
	ScriptAction     = config.ScriptAction
	IfAction         = config.IfAction
	ElseIf           = config.ElseIf
	ForEachAction    = config.ForEachAction
	// Expr is an evaluable expression handed to a Provider: a boolean
	// literal, a Go callable, or a source string whose semantics are
	// provider-defined (§4.3). Guards and action expressions share it.
	Expr = config.Expr
)

// State kinds (§3.1).
const (
	Atomic    = config.Atomic
	Compound  = config.Compound
	Parallel  = config.Parallel
	Final     = config.Final
	History   = config.History
	Condition = config.Condition
)

// History pseudostate kinds (§4.6).
const (
	HistoryShallow = config.HistoryShallow
	HistoryDeep    = config.HistoryDeep
)

// Transition types (§3.2, §4.4).
const (
	External = config.External
	Internal = config.Internal
)

// Action kinds (§3.3).
const (
	ActionAssign  = config.ActionAssign
	ActionLog     = config.ActionLog
	ActionRaise   = config.ActionRaise
	ActionScript  = config.ActionScript
	ActionIf      = config.ActionIf
	ActionForEach = config.ActionForEach
)

// NewState creates a leaf StateConfig of the given kind (Atomic if
// omitted). Named NewState rather than New to leave New for Session
// construction.
func NewState(name string, kind ...StateKind) *StateConfig { return config.New(name, kind...) }

// WithGuard sets Cond on a TransitionConfig built via StateConfig.On.
var WithGuard = config.WithGuard

// WithContent appends action content to a TransitionConfig built via
// StateConfig.On.
var WithContent = config.WithContent

// WithType overrides a TransitionConfig's internal/external type.
var WithType = config.WithType

// LoadYAML decodes and validates a MachineConfig from YAML.
var LoadYAML = config.LoadYAML

// LoadJSON decodes and validates a MachineConfig from JSON.
var LoadJSON = config.LoadJSON

// LoadFile loads a MachineConfig from path, dispatching on its extension.
var LoadFile = config.LoadFile

// Provider evaluates guards and executes action content against a
// session's data environment (§4.3, §6.3 "host-registered provider").
// Implement it to plug in an expression language other than the
// stdlib-only default.
type Provider = datamodel.Provider

// DatamodelSession is the minimal view of a running Session a Provider
// needs: Active() and Is(name). *statecraft.Session satisfies it.
type DatamodelSession = datamodel.Session

// Environment is the data context a Provider evaluates expressions
// against (§4.3).
type Environment = datamodel.Environment

// NewEnvironment creates an empty data environment.
var NewEnvironment = datamodel.NewEnvironment

// NewDefaultProvider creates the stdlib-only expression evaluator used when
// no Provider is supplied via WithDatamodel.
var NewDefaultProvider = datamodel.NewDefault

// NewNullProvider creates a Provider that accepts only Go callables and
// boolean literals, rejecting every source-string expression outright.
var NewNullProvider = datamodel.NewNull

// StateInfo is the introspection record returned by Session.GetState
// (§6.2).
type StateInfo = interp.StateInfo
