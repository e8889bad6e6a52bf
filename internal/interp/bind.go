package interp

import "github.com/comalice/statecraft/internal/graph"

// bindData installs n's <datamodel> items into the provider's environment
// (§4.3 "Data binding timing"). Early items resolve now; late items are
// installed as a lazy binding resolved on first read. src is treated as a
// provider expression rather than a fetchable resource — the core has no
// network I/O (§1 Non-goals), so a host that wants real src="url" semantics
// registers a Provider whose Exec knows how to load one.
func (s *Session) bindData(n *graph.Node) error {
	for _, item := range n.Datamodel.Data {
		item := item
		switch {
		case item.Expr != nil:
			if item.Late {
				s.provider.Env().SetLazy(item.ID, func() (any, error) { return s.provider.Exec(s, item.Expr) })
				continue
			}
			v, err := s.provider.Exec(s, item.Expr)
			if err != nil {
				return &InvalidActionError{Err: err}
			}
			s.provider.Env().Set(item.ID, v)
		case item.Src != "":
			if item.Late {
				s.provider.Env().SetLazy(item.ID, func() (any, error) { return s.provider.Exec(s, item.Src) })
				continue
			}
			v, err := s.provider.Exec(s, item.Src)
			if err != nil {
				return &InvalidActionError{Err: err}
			}
			s.provider.Env().Set(item.ID, v)
		default:
			s.provider.Env().Set(item.ID, item.Value)
		}
	}
	return nil
}

func bindDataFor(s *Session, nodes []*graph.Node) error {
	for _, n := range nodes {
		if err := s.bindData(n); err != nil {
			return err
		}
	}
	return nil
}
