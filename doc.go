// Package statecraft is a hierarchical statechart engine in the SCXML/Harel
// tradition: it loads a declarative description of states, transitions,
// guards, and executable content (MachineConfig), and drives a session
// through caller-supplied events.
//
// A session is constructed from a MachineConfig and driven with Trigger:
//
//	light := statecraft.NewState("light", statecraft.Compound).WithInitial("red")
//	light.AddState(statecraft.NewState("red").On("turn_green", "green"))
//	light.AddState(statecraft.NewState("green").On("turn_yellow", "yellow"))
//	light.AddState(statecraft.NewState("yellow").On("turn_red", "red"))
//
//	session, err := statecraft.New(statecraft.MachineConfig{ID: "light", Root: light})
//	if err != nil {
//	    // cfg failed validation — InvalidConfigError
//	}
//	if _, err := session.Trigger("turn_green", nil); err != nil {
//	    // InvalidTransitionError, GuardNotSatisfiedError, or an action error
//	}
//	fmt.Println(session.State())
//
// Guard and action expressions are evaluated by a pluggable Provider;
// statecraft.WithDatamodel selects one other than the stdlib-only default.
// A Session is not internally synchronized (§5 of the design) — Safe wraps
// one behind a mutex for hosts that need to reach it from more than one
// goroutine.
package statecraft
