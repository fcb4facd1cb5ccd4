// Package textalign aligns character sequences by padding them with gap
// sentinels so that corresponding positions line up.
//
// Usage:
//
//	a, b := textalign.Pair("aabc", "abbcc")
//	fmt.Println(a) // aab␣c␣
//	fmt.Println(b) // ␣abbcc
//	x, y, z := textalign.Triple(init, correct, predicted)
//
// Matching is exact: there is no junk filtering and no popularity heuristic,
// so highly repetitive inputs (whitespace runs, minified text) align the same
// way as any other input. All operations are deterministic; see Blocks for
// the tie-breaking rule.
//
// The gap sentinel lies outside the valid Unicode range, so it can never
// collide with input text. Aligned.String renders it as ␣ for display.
package textalign
