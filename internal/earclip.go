package internal

import (
	"context"
	"log/slog"
)

// Recovery passes, in the order they are tried when ear slicing stalls.
const (
	passInitial = iota
	passFiltered
	passCured
)

// Main ear slicing loop. Ears are cut off one at a time until the ring is
// exhausted. When a full lap finds no ear, the next recovery pass runs on
// whatever is left.
func (t *triangulator) triangulateLinked(ear NodeID, pass int) {
	if ear == NilNode {
		return
	}
	a := t.arena

	if pass == passInitial && t.invSize != 0 {
		t.indexCurve(ear)
	}

	stop := ear
	for a.Nodes[ear].Prev != a.Nodes[ear].Next {
		prev, next := a.Nodes[ear].Prev, a.Nodes[ear].Next

		var isEar bool
		if t.invSize != 0 {
			isEar = t.isEarHashed(ear)
		} else {
			isEar = a.isEar(ear)
		}

		if isEar {
			t.emit(prev, ear, next)
			a.removeNode(ear)

			// Skipping the next vertex leads to fewer sliver triangles
			ear = a.Nodes[next].Next
			stop = ear
			continue
		}

		ear = next

		if ear == stop {
			// A full lap without an ear
			switch pass {
			case passInitial:
				t.escalate(passFiltered, ear)
				t.triangulateLinked(a.filterPoints(ear, NilNode), passFiltered)
			case passFiltered:
				t.escalate(passCured, ear)
				ear = t.cureLocalIntersections(a.filterPoints(ear, NilNode))
				t.triangulateLinked(ear, passCured)
			case passCured:
				t.escalate(passCured+1, ear)
				t.splitTriangulate(ear)
			}
			break
		}
	}
}

func (t *triangulator) emit(p, q, r NodeID) {
	a := t.arena
	t.triangles = append(t.triangles, a.Nodes[p].I/t.dim, a.Nodes[q].I/t.dim, a.Nodes[r].I/t.dim)
}

func (t *triangulator) escalate(pass int, at NodeID) {
	t.stats.Passes[pass-1]++
	if t.log.Enabled(context.Background(), slog.LevelDebug) {
		t.log.Debug("earcut: no ear found, escalating",
			"pass", pass,
			"node", t.arena.String(at),
			"remaining", t.arena.RingLen(at),
		)
	}
}

// Check whether a ring node forms a valid ear with its neighbors
func (a *Arena) isEar(ear NodeID) bool {
	pa := a.Nodes[ear].Prev
	pc := a.Nodes[ear].Next
	if a.area(pa, ear, pc) >= 0 {
		return false // reflex, can't be an ear
	}

	na, nb, nc := a.Nodes[pa], a.Nodes[ear], a.Nodes[pc]

	// Make sure no other reflex vertex lies inside the potential ear
	p := nc.Next
	for p != pa {
		n := &a.Nodes[p]
		if pointInTriangle(na.X, na.Y, nb.X, nb.Y, nc.X, nc.Y, n.X, n.Y) && a.area(n.Prev, p, n.Next) >= 0 {
			return false
		}
		p = n.Next
	}
	return true
}

// Same as isEar, but only the nodes whose Z key falls within the candidate
// triangle's bounding box are examined.
func (t *triangulator) isEarHashed(ear NodeID) bool {
	a := t.arena
	pa := a.Nodes[ear].Prev
	pc := a.Nodes[ear].Next
	if a.area(pa, ear, pc) >= 0 {
		return false // reflex, can't be an ear
	}

	na, nb, nc := a.Nodes[pa], a.Nodes[ear], a.Nodes[pc]

	// Triangle bounding box
	minTX := min(na.X, nb.X, nc.X)
	minTY := min(na.Y, nb.Y, nc.Y)
	maxTX := max(na.X, nb.X, nc.X)
	maxTY := max(na.Y, nb.Y, nc.Y)

	// Z-order range for the bounding box
	minZ := zOrder(minTX, minTY, t.minX, t.minY, t.invSize)
	maxZ := zOrder(maxTX, maxTY, t.minX, t.minY, t.invSize)

	blocks := func(p NodeID) bool {
		if p == pa || p == pc {
			return false
		}
		n := &a.Nodes[p]
		return pointInTriangle(na.X, na.Y, nb.X, nb.Y, nc.X, nc.Y, n.X, n.Y) && a.area(n.Prev, p, n.Next) >= 0
	}

	p := nb.PrevZ
	n := nb.NextZ

	// Look for points inside the triangle in both directions
	for p != NilNode && a.Nodes[p].Z >= minZ && n != NilNode && a.Nodes[n].Z <= maxZ {
		if blocks(p) {
			return false
		}
		p = a.Nodes[p].PrevZ

		if blocks(n) {
			return false
		}
		n = a.Nodes[n].NextZ
	}

	// Remaining points in decreasing Z order
	for p != NilNode && a.Nodes[p].Z >= minZ {
		if blocks(p) {
			return false
		}
		p = a.Nodes[p].PrevZ
	}

	// Remaining points in increasing Z order
	for n != NilNode && a.Nodes[n].Z <= maxZ {
		if blocks(n) {
			return false
		}
		n = a.Nodes[n].NextZ
	}

	return true
}
