// Package diff compares two recorded response bodies line by line, used
// to spot what changed between executions of the same request.
package diff

import "strings"

// LineType classifies a diff line.
type LineType int

const (
	Same LineType = iota
	Added
	Removed
)

// Line is a single line of diff output.
type Line struct {
	Type    LineType
	Content string
	OldLine int // line number in the old body, -1 if added
	NewLine int // line number in the new body, -1 if removed
}

// Lines computes a line-based diff between two bodies using the Myers
// algorithm. Old is the earlier execution, new the later one.
func Lines(old, new string) []Line {
	a := splitLines(old)
	b := splitLines(new)
	return editsToLines(myersDiff(a, b), a, b)
}

// Render formats a diff as unified-style text with +/- markers.
func Render(lines []Line) string {
	var sb strings.Builder
	for _, l := range lines {
		switch l.Type {
		case Added:
			sb.WriteString("+ ")
		case Removed:
			sb.WriteString("- ")
		default:
			sb.WriteString("  ")
		}
		sb.WriteString(l.Content)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Changed reports whether the diff contains any addition or removal.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Type != Same {
			return true
		}
	}
	return false
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

type editOp int

const (
	opEqual editOp = iota
	opInsert
	opDelete
)

type edit struct {
	op   editOp
	aIdx int // index into a, -1 if insert
	bIdx int // index into b, -1 if delete
}

// myersDiff returns the shortest edit script between a and b.
func myersDiff(a, b []string) []edit {
	n := len(a)
	m := len(b)

	if n == 0 && m == 0 {
		return nil
	}
	if n == 0 {
		edits := make([]edit, m)
		for i := range b {
			edits[i] = edit{op: opInsert, aIdx: -1, bIdx: i}
		}
		return edits
	}
	if m == 0 {
		edits := make([]edit, n)
		for i := range a {
			edits[i] = edit{op: opDelete, aIdx: i, bIdx: -1}
		}
		return edits
	}

	limit := n + m
	v := make([]int, 2*limit+1)
	var trace [][]int

	for d := 0; d <= limit; d++ {
		snapshot := make([]int, len(v))
		copy(snapshot, v)
		trace = append(trace, snapshot)

		for k := -d; k <= d; k += 2 {
			var x int
			idx := k + limit
			if k == -d || (k != d && v[idx-1] < v[idx+1]) {
				x = v[idx+1]
			} else {
				x = v[idx-1] + 1
			}
			y := x - k

			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}

			v[idx] = x

			if x >= n && y >= m {
				return backtrack(trace, a, b, limit)
			}
		}
	}

	return backtrack(trace, a, b, limit)
}

// backtrack reconstructs the edit script from the search trace.
func backtrack(trace [][]int, a, b []string, limit int) []edit {
	n := len(a)
	m := len(b)

	type point struct{ x, y int }
	var path []point

	x, y := n, m
	for d := len(trace) - 1; d >= 0; d-- {
		v := trace[d]
		k := x - y
		idx := k + limit

		var prevK int
		if k == -d || (k != d && v[idx-1] < v[idx+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}

		prevX := v[prevK+limit]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			x--
			y--
			path = append(path, point{x, y})
		}

		if d > 0 {
			if x == prevX {
				y--
				path = append(path, point{-1, y})
			} else {
				x--
				path = append(path, point{x, -1})
			}
		}

		x = prevX
		y = prevY
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	edits := make([]edit, len(path))
	for i, p := range path {
		switch {
		case p.x == -1:
			edits[i] = edit{op: opInsert, aIdx: -1, bIdx: p.y}
		case p.y == -1:
			edits[i] = edit{op: opDelete, aIdx: p.x, bIdx: -1}
		default:
			edits[i] = edit{op: opEqual, aIdx: p.x, bIdx: p.y}
		}
	}
	return edits
}

func editsToLines(edits []edit, a, b []string) []Line {
	lines := make([]Line, 0, len(edits))
	for _, e := range edits {
		switch e.op {
		case opEqual:
			lines = append(lines, Line{Type: Same, Content: a[e.aIdx], OldLine: e.aIdx + 1, NewLine: e.bIdx + 1})
		case opInsert:
			lines = append(lines, Line{Type: Added, Content: b[e.bIdx], OldLine: -1, NewLine: e.bIdx + 1})
		case opDelete:
			lines = append(lines, Line{Type: Removed, Content: a[e.aIdx], OldLine: e.aIdx + 1, NewLine: -1})
		}
	}
	return lines
}
