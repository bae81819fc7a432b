package widget

// Selector names a command type on the bus. Selectors are matched by value;
// the payload type is a convention between sender and receiver.
type Selector string

type targetKind int

const (
	targetAuto targetKind = iota
	targetNode
)

// Target is the delivery address of a Command: either a specific node id,
// or auto (bubbled toward the nearest interested ancestor).
type Target struct {
	kind targetKind
	node NodeID
}

// TargetNode addresses a command to a specific node.
func TargetNode(id NodeID) Target {
	return Target{kind: targetNode, node: id}
}

// TargetAuto addresses a command to the nearest ancestor that claims it.
func TargetAuto() Target {
	return Target{}
}

// Node returns the addressed node id and whether the target is a specific
// node at all.
func (t Target) Node() (NodeID, bool) {
	return t.node, t.kind == targetNode
}

// Command is the envelope travelling on the bus: a selector, an address and
// an arbitrary payload. Mutating payloads are wrapped in SingleUse so that
// accidental observation elsewhere is a no-op.
type Command struct {
	Selector Selector
	Target   Target
	Payload  any
}

// IsFor reports whether the command carries the given selector addressed to
// the given node.
func (c Command) IsFor(sel Selector, id NodeID) bool {
	if c.Selector != sel {
		return false
	}
	node, ok := c.Target.Node()
	return ok && node == id
}

// SingleUse wraps a payload that may be consumed by at most one recipient.
// Every observer after the first sees the container empty and must treat
// the command as not addressed to it.
type SingleUse[T any] struct {
	v *T
}

// NewSingleUse wraps v for exactly-once consumption.
func NewSingleUse[T any](v T) *SingleUse[T] {
	return &SingleUse[T]{v: &v}
}

// Take yields the payload to the first caller. Later calls observe
// emptiness, never an error.
func (s *SingleUse[T]) Take() (T, bool) {
	if s == nil || s.v == nil {
		var zero T
		return zero, false
	}
	v := *s.v
	s.v = nil
	return v, true
}

// Taken reports whether the payload has already been consumed.
func (s *SingleUse[T]) Taken() bool {
	return s == nil || s.v == nil
}

// CommandQueue holds commands submitted during a dispatch pass until the
// driver delivers them.
type CommandQueue struct {
	pending []Command
}

// Push appends a command.
func (q *CommandQueue) Push(cmd Command) {
	q.pending = append(q.pending, cmd)
}

// Pop removes and returns the oldest command.
func (q *CommandQueue) Pop() (Command, bool) {
	if len(q.pending) == 0 {
		return Command{}, false
	}
	cmd := q.pending[0]
	q.pending = q.pending[1:]
	return cmd, true
}

// Empty reports whether the queue has no pending commands.
func (q *CommandQueue) Empty() bool {
	return len(q.pending) == 0
}
