package graph

import "errors"

// ErrNotFound is wrapped by Resolve/Walk/Ascend failures; the interpreter
// translates it into the public InvalidStateError (§7).
var ErrNotFound = errors.New("graph: state not found")
