package internal

// Z-order curve spatial index. Nodes are threaded onto a second, non-circular
// list (PrevZ/NextZ) sorted by the interleaved bits of their quantized
// coordinates, so that every point within a bounding box has a key between
// the keys of the box's corners.

// Z-order key of a point, given the bounding box origin and the inverse of its
// longer side. Coordinates are quantized to 15 bits before interleaving.
func zOrder(x0, y0, minX, minY, invSize float64) int32 {
	x := int32(32767 * (x0 - minX) * invSize)
	y := int32(32767 * (y0 - minY) * invSize)

	x = (x | (x << 8)) & 0x00FF00FF
	x = (x | (x << 4)) & 0x0F0F0F0F
	x = (x | (x << 2)) & 0x33333333
	x = (x | (x << 1)) & 0x55555555

	y = (y | (y << 8)) & 0x00FF00FF
	y = (y | (y << 4)) & 0x0F0F0F0F
	y = (y | (y << 2)) & 0x33333333
	y = (y | (y << 1)) & 0x55555555

	return x | (y << 1)
}

// Link the ring's nodes in Z-order. Keys already computed by a previous pass
// are kept.
func (t *triangulator) indexCurve(start NodeID) {
	a := t.arena
	p := start
	for {
		n := &a.Nodes[p]
		if n.Z == -1 {
			n.Z = zOrder(n.X, n.Y, t.minX, t.minY, t.invSize)
		}
		n.PrevZ = n.Prev
		n.NextZ = n.Next
		p = n.Next
		if p == start {
			break
		}
	}

	// Open the loop so the list has ends
	a.Nodes[a.Nodes[p].PrevZ].NextZ = NilNode
	a.Nodes[p].PrevZ = NilNode

	a.sortLinked(p)
}

// Simon Tatham's linked list merge sort over the Z links, stable on Z.
// https://www.chiark.greenend.org.uk/~sgtatham/algorithms/listsort.html
func (a *Arena) sortLinked(list NodeID) NodeID {
	inSize := 1
	for {
		p := list
		list = NilNode
		tail := NilNode
		numMerges := 0

		for p != NilNode {
			numMerges++
			q := p
			pSize := 0
			for i := 0; i < inSize; i++ {
				pSize++
				q = a.Nodes[q].NextZ
				if q == NilNode {
					break
				}
			}
			qSize := inSize

			for pSize > 0 || (qSize > 0 && q != NilNode) {
				var e NodeID
				if pSize != 0 && (qSize == 0 || q == NilNode || a.Nodes[p].Z <= a.Nodes[q].Z) {
					e = p
					p = a.Nodes[p].NextZ
					pSize--
				} else {
					e = q
					q = a.Nodes[q].NextZ
					qSize--
				}

				if tail != NilNode {
					a.Nodes[tail].NextZ = e
				} else {
					list = e
				}
				a.Nodes[e].PrevZ = tail
				tail = e
			}
			p = q
		}

		a.Nodes[tail].NextZ = NilNode
		inSize *= 2

		if numMerges <= 1 {
			return list
		}
	}
}
