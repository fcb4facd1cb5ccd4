package textalign

import "sort"

// Block is a maximal run of equal elements: a[A:A+Size] == b[B:B+Size].
type Block struct {
	A, B, Size int
}

// OpKind classifies one step of an edit script.
type OpKind uint8

const (
	OpEqual OpKind = iota
	OpReplace
	OpDelete
	OpInsert
)

func (k OpKind) String() string {
	switch k {
	case OpEqual:
		return "equal"
	case OpReplace:
		return "replace"
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	}
	return "invalid"
}

// Opcode is one step of an edit script turning a into b: a[I1:I2] is kept,
// replaced by, or deleted in favor of b[J1:J2] depending on Kind.
type Opcode struct {
	Kind           OpKind
	I1, I2, J1, J2 int
}

// Blocks returns the matching blocks of a and b in ascending order, followed
// by a terminating Block{len(a), len(b), 0}. Adjacent blocks are merged.
//
// The longest common run wins at every recursion step. Among equally long
// runs the one starting earliest in a wins, then earliest in b; candidates
// are scanned in ascending position order and replace the current best only
// when strictly longer, which makes the result fully deterministic.
func Blocks[T comparable](a, b []T) []Block {
	b2j := make(map[T][]int, len(b))
	for j, el := range b {
		b2j[el] = append(b2j[el], j)
	}

	type window struct{ alo, ahi, blo, bhi int }
	queue := []window{{0, len(a), 0, len(b)}}
	var found []Block
	for len(queue) > 0 {
		w := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		m := longestMatch(a, b2j, w.alo, w.ahi, w.blo, w.bhi)
		if m.Size == 0 {
			continue
		}
		found = append(found, m)
		if w.alo < m.A && w.blo < m.B {
			queue = append(queue, window{w.alo, m.A, w.blo, m.B})
		}
		if m.A+m.Size < w.ahi && m.B+m.Size < w.bhi {
			queue = append(queue, window{m.A + m.Size, w.ahi, m.B + m.Size, w.bhi})
		}
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].A != found[j].A {
			return found[i].A < found[j].A
		}
		return found[i].B < found[j].B
	})

	out := make([]Block, 0, len(found)+1)
	var cur Block
	for _, m := range found {
		if cur.Size > 0 && cur.A+cur.Size == m.A && cur.B+cur.Size == m.B {
			cur.Size += m.Size
			continue
		}
		if cur.Size > 0 {
			out = append(out, cur)
		}
		cur = m
	}
	if cur.Size > 0 {
		out = append(out, cur)
	}
	return append(out, Block{len(a), len(b), 0})
}

// longestMatch finds the longest matching block within the window
// a[alo:ahi] x b[blo:bhi]. b2j maps each element of b to its ascending
// positions; the j2len map carries run lengths from the previous row.
func longestMatch[T comparable](a []T, b2j map[T][]int, alo, ahi, blo, bhi int) Block {
	besti, bestj, bestsize := alo, blo, 0
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}
	return Block{besti, bestj, bestsize}
}

// Opcodes returns the edit script turning a into b, derived from Blocks.
// The opcodes cover both sequences completely and in order; none is empty.
func Opcodes[T comparable](a, b []T) []Opcode {
	var ops []Opcode
	i, j := 0, 0
	for _, m := range Blocks(a, b) {
		switch {
		case i < m.A && j < m.B:
			ops = append(ops, Opcode{OpReplace, i, m.A, j, m.B})
		case i < m.A:
			ops = append(ops, Opcode{OpDelete, i, m.A, j, m.B})
		case j < m.B:
			ops = append(ops, Opcode{OpInsert, i, m.A, j, m.B})
		}
		if m.Size > 0 {
			ops = append(ops, Opcode{OpEqual, m.A, m.A + m.Size, m.B, m.B + m.Size})
		}
		i, j = m.A+m.Size, m.B+m.Size
	}
	return ops
}
