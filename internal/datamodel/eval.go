package datamodel

import (
	"fmt"
	"reflect"
	"strings"
)

// evalCtx carries the environment and In() predicate through a single
// expression evaluation.
type evalCtx struct {
	env *Environment
	in  func(string) bool
}

// resolvePath resolves a dotted identifier against the environment: the
// first segment is an Environment lookup, later segments index into
// map[string]any or struct fields via reflection (§4.3 "dotted field/map
// access").
func resolvePath(ctx *evalCtx, path string) (any, error) {
	segs := strings.Split(path, ".")
	v, ok := ctx.env.Get(segs[0])
	if !ok {
		return nil, fmt.Errorf("datamodel: undefined identifier %q", segs[0])
	}
	for _, seg := range segs[1:] {
		next, err := accessField(v, seg)
		if err != nil {
			return nil, fmt.Errorf("datamodel: %q: %w", path, err)
		}
		v = next
	}
	return v, nil
}

func accessField(v any, field string) (any, error) {
	if m, ok := v.(map[string]any); ok {
		return m[field], nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("nil pointer accessing field %q", field)
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		fv := rv.FieldByName(field)
		if !fv.IsValid() {
			return nil, fmt.Errorf("no field %q on %s", field, rv.Type())
		}
		return fv.Interface(), nil
	case reflect.Map:
		mv := rv.MapIndex(reflect.ValueOf(field))
		if !mv.IsValid() {
			return nil, nil
		}
		return mv.Interface(), nil
	default:
		return nil, fmt.Errorf("cannot access field %q on %T", field, v)
	}
}

func truthy(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	default:
		return true
	}
}

func equal(a, b any) bool {
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if aok && bok {
		return af == bf
	}
	return a == b
}

func compare(op tokenKind, a, b any) (bool, error) {
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if aok && bok {
		switch op {
		case tokLt:
			return af < bf, nil
		case tokLte:
			return af <= bf, nil
		case tokGt:
			return af > bf, nil
		case tokGte:
			return af >= bf, nil
		}
	}
	as, aIsStr := a.(string)
	bs, bIsStr := b.(string)
	if aIsStr && bIsStr {
		switch op {
		case tokLt:
			return as < bs, nil
		case tokLte:
			return as <= bs, nil
		case tokGt:
			return as > bs, nil
		case tokGte:
			return as >= bs, nil
		}
	}
	return false, fmt.Errorf("datamodel: cannot compare %T and %T", a, b)
}

func arith(op tokenKind, a, b any) (any, error) {
	if op == tokPlus {
		if as, ok := a.(string); ok {
			bs, ok := b.(string)
			if !ok {
				return nil, fmt.Errorf("datamodel: cannot add string and %T", b)
			}
			return as + bs, nil
		}
	}
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if !aok || !bok {
		return nil, fmt.Errorf("datamodel: arithmetic requires numbers, got %T and %T", a, b)
	}
	switch op {
	case tokPlus:
		return af + bf, nil
	case tokMinus:
		return af - bf, nil
	case tokStar:
		return af * bf, nil
	case tokSlash:
		if bf == 0 {
			return nil, fmt.Errorf("datamodel: division by zero")
		}
		return af / bf, nil
	}
	return nil, fmt.Errorf("datamodel: unsupported arithmetic operator")
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
