package internal

import (
	"log/slog"
	"math"
	"sort"
)

// Link every hole into the outer ring, producing a single ring without holes.
// Holes are bridged in order of their leftmost x, which keeps each new bridge
// from crossing the ones made before it.
func (t *triangulator) eliminateHoles(data []float64, holeIndices []int, outer NodeID) NodeID {
	a := t.arena

	type queuedHole struct {
		ordinal  int
		leftmost NodeID
	}
	queue := make([]queuedHole, 0, len(holeIndices))

	for i, holeIndex := range holeIndices {
		start := holeIndex * t.dim
		end := len(data)
		if i < len(holeIndices)-1 {
			end = holeIndices[i+1] * t.dim
		}
		list := a.buildRing(data, start, end, t.dim, false)
		if list == NilNode {
			continue
		}
		if list == a.Nodes[list].Next {
			a.Nodes[list].Steiner = true
		}
		queue = append(queue, queuedHole{ordinal: i, leftmost: a.getLeftmost(list)})
	}

	sort.SliceStable(queue, func(i, j int) bool {
		return a.Nodes[queue[i].leftmost].X < a.Nodes[queue[j].leftmost].X
	})

	// Process holes from left to right
	for _, hole := range queue {
		var bridged bool
		outer, bridged = t.eliminateHole(hole.leftmost, outer)
		if !bridged {
			t.stats.DroppedHoles = append(t.stats.DroppedHoles, hole.ordinal)
			t.log.Warn("earcut: no bridge found for hole, dropping it",
				slog.Int("hole", hole.ordinal),
				slog.Float64("x", a.Nodes[hole.leftmost].X),
				slog.Float64("y", a.Nodes[hole.leftmost].Y),
			)
		}
		outer = a.filterPoints(outer, a.Nodes[outer].Next)
	}
	return outer
}

// Find a bridge between the hole and the outer ring and splice them together.
// Returns the (possibly replaced) outer anchor, and whether a bridge was made.
func (t *triangulator) eliminateHole(hole, outer NodeID) (NodeID, bool) {
	a := t.arena
	bridge := t.findHoleBridge(hole, outer)
	if bridge == NilNode {
		return outer, false
	}

	bridgeReverse := a.splitPolygon(bridge, hole)

	// Filter collinear points around the cuts
	filteredBridge := a.filterPoints(bridge, a.Nodes[bridge].Next)
	a.filterPoints(bridgeReverse, a.Nodes[bridgeReverse].Next)

	// The filter may have removed the outer anchor itself
	if outer == bridge {
		return filteredBridge, true
	}
	return outer, true
}

// David Eberly's algorithm for finding a bridge between a hole and the outer
// polygon: https://www.geometrictools.com/Documentation/TriangulationByEarClipping.pdf
func (t *triangulator) findHoleBridge(hole, outer NodeID) NodeID {
	a := t.arena
	hx := a.Nodes[hole].X
	hy := a.Nodes[hole].Y
	qx := -math.MaxFloat64
	m := NilNode

	// Find a segment intersected by a ray from the hole's leftmost point to the
	// left. The segment's endpoint with the lesser x is a potential connection
	// point.
	p := outer
	for {
		pn, nn := &a.Nodes[p], &a.Nodes[a.Nodes[p].Next]
		if hy <= pn.Y && hy >= nn.Y && nn.Y != pn.Y {
			x := pn.X + (hy-pn.Y)*(nn.X-pn.X)/(nn.Y-pn.Y)
			if x <= hx && x > qx {
				qx = x
				if x == hx {
					if hy == pn.Y {
						return p
					}
					if hy == nn.Y {
						return pn.Next
					}
				}
				if pn.X < nn.X {
					m = p
				} else {
					m = pn.Next
				}
			}
		}
		p = pn.Next
		if p == outer {
			break
		}
	}

	if m == NilNode {
		return NilNode
	}

	if hx == qx {
		return m // the hole touches the outer segment; pick the leftmost endpoint
	}

	// Look for points inside the triangle formed by the hole point, the segment
	// intersection and the endpoint. If there are none, the connection is
	// valid. Otherwise pick the point with the minimum angle to the ray.
	stop := m
	mx := a.Nodes[m].X
	my := a.Nodes[m].Y
	tanMin := math.MaxFloat64

	ax, cx := qx, hx
	if hy < my {
		ax, cx = hx, qx
	}

	p = m
	for {
		pn := &a.Nodes[p]
		if hx >= pn.X && pn.X >= mx && hx != pn.X &&
			pointInTriangle(ax, hy, mx, my, cx, hy, pn.X, pn.Y) {

			tan := math.Abs(hy-pn.Y) / (hx - pn.X) // tangential

			if a.locallyInside(p, hole) &&
				(tan < tanMin || (tan == tanMin && (pn.X > a.Nodes[m].X || (pn.X == a.Nodes[m].X && a.sectorContainsSector(m, p))))) {
				m = p
				tanMin = tan
			}
		}
		p = pn.Next
		if p == stop {
			break
		}
	}
	return m
}
