package internal

import (
	"context"
	"log/slog"
)

// Go through all ring nodes and cure small local self-intersections. Where the
// edges prev->p and p.next->b cross, the triangle prev, p, b is cut off and both
// p and p.next are dropped, which removes the crossing.
func (t *triangulator) cureLocalIntersections(start NodeID) NodeID {
	a := t.arena
	p := start
	for {
		pa := a.Nodes[p].Prev
		pb := a.Nodes[a.Nodes[p].Next].Next

		if !a.equals(pa, pb) &&
			a.intersects(pa, p, a.Nodes[p].Next, pb) &&
			a.locallyInside(pa, pb) &&
			a.locallyInside(pb, pa) {

			t.emit(pa, p, pb)

			// Remove the two nodes involved
			a.removeNode(p)
			a.removeNode(a.Nodes[p].Next)

			t.stats.CuredIntersections++
			p = pb
			start = pb
		}
		p = a.Nodes[p].Next
		if p == start {
			break
		}
	}
	return a.filterPoints(p, NilNode)
}

// Last resort: look for any valid diagonal, split the ring in two along it and
// triangulate each half from scratch.
func (t *triangulator) splitTriangulate(start NodeID) {
	a := t.arena
	p := start
	for {
		q := a.Nodes[a.Nodes[p].Next].Next
		for q != a.Nodes[p].Prev {
			if a.Nodes[p].I != a.Nodes[q].I && a.isValidDiagonal(p, q) {
				if t.log.Enabled(context.Background(), slog.LevelDebug) {
					t.log.Debug("earcut: splitting polygon",
						slog.String("from", a.String(p)),
						slog.String("to", a.String(q)),
					)
				}
				t.stats.Splits++

				c := a.splitPolygon(p, q)

				// Filter collinear points around the cuts
				p = a.filterPoints(p, a.Nodes[p].Next)
				c = a.filterPoints(c, a.Nodes[c].Next)

				t.triangulateLinked(p, passInitial)
				t.triangulateLinked(c, passInitial)
				return
			}
			q = a.Nodes[q].Next
		}
		p = a.Nodes[p].Next
		if p == start {
			return
		}
	}
}
