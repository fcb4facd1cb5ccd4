package textalign

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Gap marks a position inserted by alignment padding. It lies beyond the
// valid Unicode range, so no input string can ever contain it and padding is
// never mistaken for content.
const Gap rune = utf8.MaxRune + 1

// GapMark is the printable stand-in for Gap used by Aligned.String.
const GapMark rune = '␣'

// Aligned is a gap-padded rune sequence produced by Pair, PairPassenger or
// Triple.
type Aligned []rune

// String renders the sequence with Gap shown as GapMark.
func (s Aligned) String() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == Gap {
			r = GapMark
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Strip drops the gaps and returns the text that was aligned.
func (s Aligned) Strip() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r != Gap {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Pair aligns two strings character by character. The results have equal
// length and strip back to the inputs; positions present on only one side
// are padded with Gap on the other. A replaced segment keeps both sides'
// characters and right-pads the shorter one.
//
//	Pair("aabc", "abbcc") → aab␣c␣
//	                        ␣abbcc
func Pair(a, b string) (Aligned, Aligned) {
	alignedA, alignedB, _ := walk([]rune(a), []rune(b), nil)
	return alignedA, alignedB
}

// PairPassenger aligns a and b like Pair and re-indexes passenger with b's
// half of the edit script: passenger slices follow b's opcode bounds and
// passenger padding mirrors b's padding position for position. The rune
// length of passenger must equal that of b.
func PairPassenger(a, b, passenger string) (alignedA, alignedB, alignedPassenger Aligned, err error) {
	rb, rp := []rune(b), []rune(passenger)
	if len(rp) != len(rb) {
		return nil, nil, nil, fmt.Errorf("passenger length %d does not match sequence length %d", len(rp), len(rb))
	}
	alignedA, alignedB, alignedPassenger = walk([]rune(a), rb, rp)
	return alignedA, alignedB, alignedPassenger, nil
}

// Triple aligns three strings with a two-pass composition: a and b are
// aligned first, then c is aligned against the padded a while the padded b
// rides along as passenger. The result can be suboptimal for inputs where a
// true three-way optimum would pay off, but it is deterministic and cheap;
// an exact three-way alignment costs len(a)*len(b)*len(c) and is not worth
// it here.
//
// All three results have equal length and strip back to their inputs.
//
//	Triple("aabc", "abbcc", "ccdd") → aab␣c␣␣␣
//	                                  ␣abbcc␣␣
//	                                  ␣␣␣␣ccdd
func Triple(a, b, c string) (alignedA, alignedB, alignedC Aligned) {
	pa, pb, _ := walk([]rune(a), []rune(b), nil)
	alignedC, alignedA, alignedB = walk([]rune(c), pa, pb)
	return alignedA, alignedB, alignedC
}

// walk builds the gap-padded sequences from the edit script of a and b.
// passenger, when non-nil, must have the same length as b. Gaps introduced
// here are sentinels, so a second pass over an already padded sequence can
// never match new content against old padding.
func walk(a, b, passenger []rune) (Aligned, Aligned, Aligned) {
	outA := make(Aligned, 0, len(a)+len(b))
	outB := make(Aligned, 0, len(a)+len(b))
	var outP Aligned
	if passenger != nil {
		outP = make(Aligned, 0, len(a)+len(b))
	}
	for _, op := range Opcodes(a, b) {
		switch op.Kind {
		case OpEqual, OpReplace:
			outA = append(outA, a[op.I1:op.I2]...)
			outB = append(outB, b[op.J1:op.J2]...)
			if passenger != nil {
				outP = append(outP, passenger[op.J1:op.J2]...)
			}
			na, nb := op.I2-op.I1, op.J2-op.J1
			if na < nb {
				outA = appendGaps(outA, nb-na)
			} else if na > nb {
				outB = appendGaps(outB, na-nb)
				if passenger != nil {
					outP = appendGaps(outP, na-nb)
				}
			}
		case OpInsert:
			outA = appendGaps(outA, op.J2-op.J1)
			outB = append(outB, b[op.J1:op.J2]...)
			if passenger != nil {
				outP = append(outP, passenger[op.J1:op.J2]...)
			}
		case OpDelete:
			outA = append(outA, a[op.I1:op.I2]...)
			outB = appendGaps(outB, op.I2-op.I1)
			if passenger != nil {
				outP = appendGaps(outP, op.I2-op.I1)
			}
		}
	}
	return outA, outB, outP
}

func appendGaps(s Aligned, n int) Aligned {
	for ; n > 0; n-- {
		s = append(s, Gap)
	}
	return s
}
