package interp

import (
	"github.com/comalice/statecraft/internal/config"
	"github.com/comalice/statecraft/internal/graph"
)

// historyStore remembers, per history pseudostate, the configuration its
// parent was in when last exited (§4.6). Shallow history remembers one
// direct child name; deep history remembers every active leaf beneath the
// parent at the moment of exit, which reproduces arbitrarily nested state
// (including nested parallel regions) on restore.
type historyStore struct {
	shallow map[string]string   // history node path -> remembered child name
	deep    map[string][]string // history node path -> remembered active leaf paths
}

func newHistoryStore() *historyStore {
	return &historyStore{shallow: make(map[string]string), deep: make(map[string][]string)}
}

// record captures parent's configuration for every history child it has,
// given the set of leaves that were active immediately before parent was
// exited.
func (h *historyStore) record(parent *graph.Node, oldLeaves []*graph.Node) {
	var directChild *graph.Node
	var leafPaths []string
	for _, leaf := range oldLeaves {
		if !descendsFrom(leaf, parent) {
			continue
		}
		leafPaths = append(leafPaths, leaf.Path)
		if directChild == nil {
			for n := leaf; n != nil && n != parent; n = n.Parent {
				if n.Parent == parent {
					directChild = n
				}
			}
		}
	}
	for _, child := range parent.ChildNodes() {
		if child.Kind != config.History {
			continue
		}
		if directChild != nil {
			h.shallow[child.Path] = directChild.Name
		}
		if leafPaths != nil {
			h.deep[child.Path] = append([]string(nil), leafPaths...)
		}
	}
}

func descendsFrom(n, ancestor *graph.Node) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}
