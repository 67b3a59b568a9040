package internal

import (
	"fmt"

	"github.com/osuushi/earcut/dbg"
)

// Nodes are stored in an arena owned by a single triangulation run and are
// addressed by handle rather than by pointer. The rings built from them are
// cyclic and get spliced constantly, so integer handles keep every splice a
// plain field rewrite.

type NodeID int32

// NilNode is the null handle. It terminates the Z-order list, which (unlike
// the polygon ring) is not circular.
const NilNode NodeID = -1

type Node struct {
	// Index of the vertex's first component in the flat coordinate array. This
	// is not unique: bridging and splitting duplicate nodes.
	I    int
	X, Y float64

	// Ring links
	Prev, Next NodeID

	// Z-order links and key. Z is -1 until the key has been computed.
	PrevZ, NextZ NodeID
	Z            int32

	// Steiner nodes only exist to bridge a single-point hole into the outer
	// ring, so they are never filtered out.
	Steiner bool
}

type Arena struct {
	Nodes []Node
}

func NewArena(capacity int) *Arena {
	return &Arena{Nodes: make([]Node, 0, capacity)}
}

func (a *Arena) Len() int {
	return len(a.Nodes)
}

// Get returns a pointer into the arena. It is only valid until the next call
// to newNode, since growing the arena may move it.
func (a *Arena) Get(id NodeID) *Node {
	return &a.Nodes[id]
}

func (a *Arena) newNode(i int, x, y float64) NodeID {
	a.Nodes = append(a.Nodes, Node{
		I:     i,
		X:     x,
		Y:     y,
		Prev:  NilNode,
		Next:  NilNode,
		PrevZ: NilNode,
		NextZ: NilNode,
		Z:     -1,
	})
	return NodeID(len(a.Nodes) - 1)
}

// Create a node and link it after last. If last is nil, the node becomes a
// ring of one.
func (a *Arena) insertNode(i int, x, y float64, last NodeID) NodeID {
	p := a.newNode(i, x, y)
	if last == NilNode {
		a.Nodes[p].Prev = p
		a.Nodes[p].Next = p
		return p
	}
	next := a.Nodes[last].Next
	a.Nodes[p].Next = next
	a.Nodes[p].Prev = last
	a.Nodes[next].Prev = p
	a.Nodes[last].Next = p
	return p
}

// Unlink a node from its ring and from the Z-order list. The removed node
// keeps its own links, so callers may still step from it to its old
// neighbors.
func (a *Arena) removeNode(p NodeID) {
	n := &a.Nodes[p]
	a.Nodes[n.Next].Prev = n.Prev
	a.Nodes[n.Prev].Next = n.Next
	if n.PrevZ != NilNode {
		a.Nodes[n.PrevZ].NextZ = n.NextZ
	}
	if n.NextZ != NilNode {
		a.Nodes[n.NextZ].PrevZ = n.PrevZ
	}
}

// Link two vertices with a bridge. If they are on the same ring, the ring is
// split in two. If one is on a hole ring, the two rings merge into one. Both
// endpoints are duplicated, and the duplicate of b is returned; it lies on the
// ring that does not contain a.
//
//	before:  ... ap -> a -> an ...      ... bp -> b -> bn ...
//	after:   ... ap -> a -> b -> bn ...  ... bp -> b2 -> a2 -> an ...
func (a *Arena) splitPolygon(p, q NodeID) NodeID {
	p2 := a.newNode(a.Nodes[p].I, a.Nodes[p].X, a.Nodes[p].Y)
	q2 := a.newNode(a.Nodes[q].I, a.Nodes[q].X, a.Nodes[q].Y)
	pn := a.Nodes[p].Next
	qp := a.Nodes[q].Prev

	a.Nodes[p].Next = q
	a.Nodes[q].Prev = p

	a.Nodes[p2].Next = pn
	a.Nodes[pn].Prev = p2

	a.Nodes[q2].Next = p2
	a.Nodes[p2].Prev = q2

	a.Nodes[qp].Next = q2
	a.Nodes[q2].Prev = qp

	return q2
}

// RingLen counts the nodes on the ring containing start.
func (a *Arena) RingLen(start NodeID) int {
	if start == NilNode {
		return 0
	}
	n := 0
	p := start
	for {
		n++
		p = a.Nodes[p].Next
		if p == start {
			return n
		}
	}
}

// Format a node for debug logs. Handles are meaningless to a human, so each
// one gets a readable name.
func (a *Arena) String(id NodeID) string {
	if id == NilNode {
		return "Ø"
	}
	n := a.Nodes[id]
	return fmt.Sprintf("%s#%d(%g, %g)", dbg.Name(dbgKey{a, id}), n.I, n.X, n.Y)
}

type dbgKey struct {
	arena *Arena
	id    NodeID
}
