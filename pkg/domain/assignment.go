package domain

import "fmt"

// Assignment is a per-vertex ownership bit string: byte i is the owner of
// vertex i for one trial. Assignments are immutable once created and are
// applied to clones of the base graph, never to the graph itself.
type Assignment string

// Bit returns the owner bit of vertex i.
func (a Assignment) Bit(i int) (int, error) {
	switch a[i] {
	case '0':
		return 0, nil
	case '1':
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: assignment byte %q at %d", ErrParameter, a[i], i)
	}
}

// AssignmentFromIndex builds the n-bit assignment whose bits spell idx in
// binary, most significant bit first. Index 0 is "0...0", index 2^n-1 is
// "1...1"; iterating indices in order yields lexicographic bit strings.
func AssignmentFromIndex(idx uint64, n int) Assignment {
	buf := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		buf[i] = byte('0' + idx&1)
		idx >>= 1
	}
	return Assignment(buf)
}
