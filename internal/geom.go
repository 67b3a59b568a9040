package internal

// Geometric predicates over arena nodes. All comparisons are exact; nearly
// collinear or nearly coincident points are treated as distinct.

// Signed area of the triangle p, q, r. With the winding the rings are
// normalized to, a negative value means the corner at q is convex.
func (a *Arena) area(p, q, r NodeID) float64 {
	pn, qn, rn := &a.Nodes[p], &a.Nodes[q], &a.Nodes[r]
	return (qn.Y-pn.Y)*(rn.X-qn.X) - (qn.X-pn.X)*(rn.Y-qn.Y)
}

func (a *Arena) equals(p, q NodeID) bool {
	return a.Nodes[p].X == a.Nodes[q].X && a.Nodes[p].Y == a.Nodes[q].Y
}

// Check whether segment p1-q1 intersects segment p2-q2, including touching.
func (a *Arena) intersects(p1, q1, p2, q2 NodeID) bool {
	o1 := sign(a.area(p1, q1, p2))
	o2 := sign(a.area(p1, q1, q2))
	o3 := sign(a.area(p2, q2, p1))
	o4 := sign(a.area(p2, q2, q1))

	if o1 != o2 && o3 != o4 { // general case
		return true
	}

	// Collinear special cases: an endpoint lies on the other segment
	if o1 == 0 && a.onSegment(p1, p2, q1) {
		return true
	}
	if o2 == 0 && a.onSegment(p1, q2, q1) {
		return true
	}
	if o3 == 0 && a.onSegment(p2, p1, q2) {
		return true
	}
	if o4 == 0 && a.onSegment(p2, q1, q2) {
		return true
	}
	return false
}

// For collinear p, q, r, check whether q lies on segment p-r
func (a *Arena) onSegment(p, q, r NodeID) bool {
	pn, qn, rn := &a.Nodes[p], &a.Nodes[q], &a.Nodes[r]
	return qn.X <= max(pn.X, rn.X) &&
		qn.X >= min(pn.X, rn.X) &&
		qn.Y <= max(pn.Y, rn.Y) &&
		qn.Y >= min(pn.Y, rn.Y)
}

func sign(v float64) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

// Check if point p lies within (or on the boundary of) the triangle a, b, c
func pointInTriangle(ax, ay, bx, by, cx, cy, px, py float64) bool {
	return (cx-px)*(ay-py)-(ax-px)*(cy-py) >= 0 &&
		(ax-px)*(by-py)-(bx-px)*(ay-py) >= 0 &&
		(bx-px)*(cy-py)-(cx-px)*(by-py) >= 0
}

// Check whether the diagonal a-b leaves a into the polygon's interior, judged
// only from the corner at a.
func (a *Arena) locallyInside(p, q NodeID) bool {
	prev, next := a.Nodes[p].Prev, a.Nodes[p].Next
	if a.area(prev, p, next) < 0 {
		return a.area(p, q, next) >= 0 && a.area(p, prev, q) >= 0
	}
	return a.area(p, q, prev) < 0 || a.area(p, next, q) < 0
}

// Even-odd test of the midpoint of diagonal p-q against the ring containing p
func (a *Arena) middleInside(p, q NodeID) bool {
	inside := false
	px := (a.Nodes[p].X + a.Nodes[q].X) / 2
	py := (a.Nodes[p].Y + a.Nodes[q].Y) / 2
	n := p
	for {
		cur, next := &a.Nodes[n], &a.Nodes[a.Nodes[n].Next]
		if (cur.Y > py) != (next.Y > py) && next.Y != cur.Y &&
			px < (next.X-cur.X)*(py-cur.Y)/(next.Y-cur.Y)+cur.X {
			inside = !inside
		}
		n = cur.Next
		if n == p {
			return inside
		}
	}
}

// Check whether diagonal p-q crosses any edge of the ring. Edges that share a
// vertex index with the diagonal are ignored.
func (a *Arena) intersectsPolygon(p, q NodeID) bool {
	pi, qi := a.Nodes[p].I, a.Nodes[q].I
	n := p
	for {
		next := a.Nodes[n].Next
		ni, nexti := a.Nodes[n].I, a.Nodes[next].I
		if ni != pi && nexti != pi && ni != qi && nexti != qi && a.intersects(n, next, p, q) {
			return true
		}
		n = next
		if n == p {
			return false
		}
	}
}

// Check if a diagonal between two ring nodes is valid, i.e. it lies in the
// polygon's interior.
func (a *Arena) isValidDiagonal(p, q NodeID) bool {
	pn, qn := a.Nodes[p], a.Nodes[q]
	if a.Nodes[pn.Next].I == qn.I || a.Nodes[pn.Prev].I == qn.I {
		return false
	}
	if a.intersectsPolygon(p, q) {
		return false
	}

	locallyVisible := a.locallyInside(p, q) && a.locallyInside(q, p) && a.middleInside(p, q)
	// Reject diagonals that would create opposite-facing sectors
	if locallyVisible && (a.area(pn.Prev, p, qn.Prev) != 0 || a.area(p, qn.Prev, q) != 0) {
		return true
	}

	// Zero-length diagonal between two coincident convex corners
	return a.equals(p, q) && a.area(pn.Prev, p, pn.Next) > 0 && a.area(qn.Prev, q, qn.Next) > 0
}

// Whether the sector at m contains the sector at p, both at the same
// coordinates.
func (a *Arena) sectorContainsSector(m, p NodeID) bool {
	return a.area(a.Nodes[m].Prev, m, a.Nodes[p].Prev) < 0 && a.area(a.Nodes[p].Next, m, a.Nodes[m].Next) < 0
}

// Leftmost node of a ring, ties broken by smaller y
func (a *Arena) getLeftmost(start NodeID) NodeID {
	leftmost := start
	p := start
	for {
		pn, ln := &a.Nodes[p], &a.Nodes[leftmost]
		if pn.X < ln.X || (pn.X == ln.X && pn.Y < ln.Y) {
			leftmost = p
		}
		p = pn.Next
		if p == start {
			return leftmost
		}
	}
}

// Shoelace sum over the vertices in [start, end) of the flat array. The sign
// gives the winding; the magnitude is twice the area.
func SignedArea(data []float64, start, end, dim int) float64 {
	var sum float64
	j := end - dim
	for i := start; i < end; i += dim {
		sum += (data[j] - data[i]) * (data[i+1] + data[j+1])
		j = i
	}
	return sum
}
