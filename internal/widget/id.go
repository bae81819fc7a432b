package widget

import "github.com/oklog/ulid/v2"

// NodeID is an opaque, process-wide unique identifier for a node in the
// widget tree. Leaf widgets that never participate in command addressing
// report the zero NodeID.
type NodeID string

// NewNodeID generates a fresh NodeID. IDs are assigned by whoever creates
// the node and are never reused while the node is live.
func NewNodeID() NodeID {
	return NodeID(ulid.Make().String())
}

// IsZero reports whether the id is the anonymous zero value.
func (id NodeID) IsZero() bool {
	return id == ""
}
