package pathtext

// minAnchors is the smallest anchor count a visible curve needs.
// Deletion requests that would go below it are ignored.
const minAnchors = 2

// Anchors is an ordered sequence of curve anchor points.
//
// The editing operations are pure: each returns a fresh sequence and
// leaves the receiver untouched, so a caller can hand the result to
// BuildCurve and keep the previous sequence for undo or comparison.
type Anchors []Point

// Move returns a copy of the sequence with the anchor at index i moved
// to pt. Any finite coordinate is accepted. An out-of-range index
// leaves the sequence unchanged.
func (a Anchors) Move(i int, pt Point) Anchors {
	out := a.clone()
	if i < 0 || i >= len(out) {
		return out
	}
	out[i] = pt
	return out
}

// Append returns a copy of the sequence with pt added at the end.
// Appending is always permitted.
func (a Anchors) Append(pt Point) Anchors {
	out := make(Anchors, len(a), len(a)+1)
	copy(out, a)
	return append(out, pt)
}

// Remove returns a copy of the sequence with the anchor at index i
// removed. The request is ignored when removal would leave fewer than
// two anchors, or when the index is out of range; the copy is then
// identical to the receiver.
func (a Anchors) Remove(i int) Anchors {
	out := a.clone()
	if len(out) <= minAnchors || i < 0 || i >= len(out) {
		return out
	}
	return append(out[:i], out[i+1:]...)
}

func (a Anchors) clone() Anchors {
	out := make(Anchors, len(a))
	copy(out, a)
	return out
}
