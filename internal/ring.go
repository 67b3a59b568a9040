package internal

// Create a circular doubly linked list from the vertices in [start, end) of
// the flat array, in the requested winding. Rather than reversing afterwards,
// the vertices are inserted backwards when the input winds the other way.
//
// Returns the last inserted node, or NilNode for an empty range.
func (a *Arena) buildRing(data []float64, start, end, dim int, clockwise bool) NodeID {
	last := NilNode

	if clockwise == (SignedArea(data, start, end, dim) > 0) {
		for i := start; i < end; i += dim {
			last = a.insertNode(i, data[i], data[i+1], last)
		}
	} else {
		for i := end - dim; i >= start; i -= dim {
			last = a.insertNode(i, data[i], data[i+1], last)
		}
	}

	// A closed ring often repeats its first point at the end
	if last != NilNode && a.equals(last, a.Nodes[last].Next) {
		a.removeNode(last)
		last = a.Nodes[last].Next
	}
	return last
}

// Eliminate duplicate and collinear points between start and end (the whole
// ring when end is NilNode). Never reduces the ring below one node. The end
// anchor may itself be removed, so the surviving anchor is returned.
func (a *Arena) filterPoints(start, end NodeID) NodeID {
	if start == NilNode {
		return start
	}
	if end == NilNode {
		end = start
	}

	p := start
	for {
		again := false
		n := &a.Nodes[p]
		if !n.Steiner && (a.equals(p, n.Next) || a.area(n.Prev, p, n.Next) == 0) {
			a.removeNode(p)
			end = a.Nodes[p].Prev
			p = end
			if p == a.Nodes[p].Next {
				break
			}
			again = true
		} else {
			p = n.Next
		}
		if !again && p == end {
			break
		}
	}
	return end
}
