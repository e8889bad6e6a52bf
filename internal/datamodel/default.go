package datamodel

import "fmt"

// Default is the stdlib-only provider generalizing the teacher's
// "key op value" ExpressionGuardEvaluator into compound boolean/arithmetic
// expressions over a data environment (§4.3, §9). No expression-evaluation
// library appears anywhere in the retrieved corpus, so Default is a small
// recursive-descent evaluator rather than an embedded scripting language;
// hosts that need one register their own Provider.
//
// Expressions passed to Eval/Exec may be:
//   - nil (Eval: always true; Exec: no-op)
//   - bool (Eval only, returned directly)
//   - func(Session) bool / func(Session) (any, error) / func(Session) (Eval/Exec escape hatches)
//   - a source string, parsed against the restricted grammar in lexer.go/parser.go
type Default struct {
	env   *Environment
	in    func(string) bool
	cache map[string]node
}

// NewDefault creates a Default provider with an empty Environment.
func NewDefault() *Default {
	return &Default{env: NewEnvironment(), cache: make(map[string]node)}
}

func (d *Default) Env() *Environment { return d.env }

func (d *Default) RegisterIn(fn func(name string) bool) { d.in = fn }

func (d *Default) compile(src string) (node, error) {
	if n, ok := d.cache[src]; ok {
		return n, nil
	}
	n, err := parseExpr(src)
	if err != nil {
		return nil, err
	}
	d.cache[src] = n
	return n, nil
}

func (d *Default) Eval(session Session, expr any) (bool, error) {
	switch v := expr.(type) {
	case nil:
		return true, nil
	case bool:
		return v, nil
	case func(Session) bool:
		return v(session), nil
	case string:
		n, err := d.compile(v)
		if err != nil {
			return false, err
		}
		result, err := n.evalNode(&evalCtx{env: d.env, in: d.in})
		if err != nil {
			return false, err
		}
		return truthy(result), nil
	default:
		return false, fmt.Errorf("datamodel: unsupported guard expression type %T", expr)
	}
}

func (d *Default) Exec(session Session, expr any) (any, error) {
	switch v := expr.(type) {
	case nil:
		return nil, nil
	case func(Session) (any, error):
		return v(session)
	case func(Session):
		v(session)
		return nil, nil
	case string:
		n, err := d.compile(v)
		if err != nil {
			return nil, err
		}
		return n.evalNode(&evalCtx{env: d.env, in: d.in})
	default:
		return nil, fmt.Errorf("datamodel: unsupported action expression type %T", expr)
	}
}
