package interp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/comalice/statecraft/internal/config"
	"github.com/comalice/statecraft/internal/datamodel"
)

// runActions executes an ordered list of action content against the
// session's provider (§3.3, §4.3). Actions run sequentially; the first
// error aborts the remaining actions, matching §4.4's "exceptions ...
// propagate to the caller; the engine does not attempt to roll back."
func (s *Session) runActions(actions []config.Action) error {
	for _, a := range actions {
		if err := s.runAction(a); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) runAction(a config.Action) error {
	switch a.Kind {
	case config.ActionAssign:
		return s.runAssign(a.Assign)
	case config.ActionLog:
		return s.runLog(a.Log)
	case config.ActionRaise:
		return s.runRaise(a.Raise)
	case config.ActionScript:
		return s.runScript(a.Script)
	case config.ActionIf:
		return s.runIf(a.If)
	case config.ActionForEach:
		return s.runForEach(a.ForEach)
	default:
		return &InvalidActionError{Err: fmt.Errorf("unknown action kind %q", a.Kind)}
	}
}

func (s *Session) runAssign(a *config.AssignAction) error {
	if a == nil {
		return &InvalidActionError{Err: fmt.Errorf("assign action is nil")}
	}
	v, err := s.provider.Exec(s, a.Expr)
	if err != nil {
		return &InvalidActionError{Err: err}
	}
	s.provider.Env().Set(a.Location, v)
	return nil
}

func (s *Session) runLog(a *config.LogAction) error {
	if a == nil {
		return &InvalidActionError{Err: fmt.Errorf("log action is nil")}
	}
	v, err := s.provider.Exec(s, a.Expr)
	if err != nil {
		return &InvalidActionError{Err: err}
	}
	level := slog.LevelInfo
	switch a.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	label := a.Label
	if label == "" {
		label = "log"
	}
	s.logger.Log(context.Background(), level, label, "value", v, "session", s.id)
	return nil
}

func (s *Session) runRaise(a *config.RaiseAction) error {
	if a == nil {
		return &InvalidActionError{Err: fmt.Errorf("raise action is nil")}
	}
	if a.Event == "" {
		return &InvalidActionError{Err: fmt.Errorf("raise action requires an event name")}
	}
	s.internalQueue = append(s.internalQueue, config.NewEvent(a.Event, nil))
	return nil
}

func (s *Session) runScript(a *config.ScriptAction) error {
	if a == nil {
		return &InvalidActionError{Err: fmt.Errorf("script action is nil")}
	}
	if _, err := s.provider.Exec(s, a.Src); err != nil {
		return &InvalidActionError{Err: err}
	}
	return nil
}

func (s *Session) runIf(a *config.IfAction) error {
	if a == nil {
		return &InvalidActionError{Err: fmt.Errorf("if action is nil")}
	}
	ok, err := s.provider.Eval(s, a.Cond)
	if err != nil {
		return &InvalidActionError{Err: err}
	}
	if ok {
		return s.runActions(a.Body)
	}
	for _, ei := range a.ElseIf {
		ok, err := s.provider.Eval(s, ei.Cond)
		if err != nil {
			return &InvalidActionError{Err: err}
		}
		if ok {
			return s.runActions(ei.Body)
		}
	}
	if a.HasElse() {
		return s.runActions(a.Else)
	}
	return nil
}

func (s *Session) runForEach(a *config.ForEachAction) error {
	if a == nil {
		return &InvalidActionError{Err: fmt.Errorf("foreach action is nil")}
	}
	arr, err := s.provider.Exec(s, a.ArrayExpr)
	if err != nil {
		return &InvalidActionError{Err: err}
	}
	items, err := toSlice(arr)
	if err != nil {
		return &InvalidActionError{Err: err}
	}
	env := s.provider.Env()
	prevItem, hadItem := env.Get(a.Item)
	prevIndex, hadIndex := env.Get(a.Index)
	defer func() {
		restore(env, a.Item, prevItem, hadItem)
		if a.Index != "" {
			restore(env, a.Index, prevIndex, hadIndex)
		}
	}()

	for i, item := range items {
		env.Set(a.Item, item)
		if a.Index != "" {
			env.Set(a.Index, i)
		}
		if err := s.runActions(a.Body); err != nil {
			return err
		}
	}
	return nil
}

func restore(env *datamodel.Environment, key string, prev any, had bool) {
	if key == "" {
		return
	}
	if had {
		env.Set(key, prev)
	} else {
		env.Delete(key)
	}
}

func toSlice(v any) ([]any, error) {
	switch arr := v.(type) {
	case []any:
		return arr, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("foreach: expression did not evaluate to a sequence, got %T", v)
	}
}
