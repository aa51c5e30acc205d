package extract

import (
	"math"
	"sort"

	"github.com/dgallion1/resumeparse/internal/bullets"
	"github.com/dgallion1/resumeparse/internal/layout"
)

// SplitBlocks divides a section body into repeated entry blocks. Blank lines
// are dropped from the output.
//
// When any line carries a date range, a dated line starts a new block once
// the current block already has one, and the title line just above it moves
// along. Otherwise a block starts at a line back at the base indentation
// after a blank line, a page change or a wide vertical gap.
func SplitBlocks(lines []layout.Line, cfg Config) [][]layout.Line {
	for _, l := range lines {
		if isDateLine(l) {
			return splitByDates(lines, cfg)
		}
	}
	return splitByGaps(lines, cfg)
}

func isDateLine(l layout.Line) bool {
	_, ok := MatchDateRange(l.Text)
	return ok
}

func splitByDates(lines []layout.Line, cfg Config) [][]layout.Line {
	blocks := [][]layout.Line{}
	var cur []layout.Line
	curDated := false
	datesLead := false
	first := true

	for _, l := range lines {
		if l.IsBlank() {
			continue
		}
		dated := isDateLine(l)
		if first {
			datesLead = dated
			first = false
		}
		if dated && curDated {
			var carry []layout.Line
			if !datesLead && len(cur) > 0 && pullsTitle(cur, l, cfg) {
				carry = []layout.Line{cur[len(cur)-1]}
				cur = cur[:len(cur)-1]
			}
			blocks = appendBlock(blocks, cur)
			cur = carry
			curDated = false
		}
		cur = append(cur, l)
		if dated {
			curDated = true
		}
	}
	return appendBlock(blocks, cur)
}

// pullsTitle decides whether the last line of the current block is really
// the title of the block that dateLine opens.
func pullsTitle(cur []layout.Line, dateLine layout.Line, cfg Config) bool {
	prev := cur[len(cur)-1]
	if bullets.IsBulleted(prev, cfg.Bullets) || isDateLine(prev) {
		return false
	}
	if prev.IsBold {
		return true
	}
	if !dateOnly(dateLine) {
		return false
	}
	bulletX, ok := minBulletX(cur[:len(cur)-1], cfg)
	if !ok {
		return true
	}
	return prev.X <= bulletX+cfg.Bullets.IndentTolerance
}

// dateOnly reports whether the line has no letters outside its date range.
func dateOnly(l layout.Line) bool {
	dr, ok := MatchDateRange(l.Text)
	if !ok {
		return false
	}
	return !isNameLike(cut(l.Text, dr.Raw, dr.Pos))
}

func minBulletX(lines []layout.Line, cfg Config) (float64, bool) {
	x, found := math.Inf(1), false
	for _, l := range lines {
		if bullets.IsBulleted(l, cfg.Bullets) {
			x = math.Min(x, l.X)
			found = true
		}
	}
	return x, found
}

func splitByGaps(lines []layout.Line, cfg Config) [][]layout.Line {
	baseX := math.Inf(1)
	for _, l := range lines {
		if !l.IsBlank() {
			baseX = math.Min(baseX, l.X)
		}
	}
	pitch := medianPitch(lines)

	blocks := [][]layout.Line{}
	var cur []layout.Line
	var prev layout.Line
	sawBlank := false

	for _, l := range lines {
		if l.IsBlank() {
			sawBlank = true
			continue
		}
		if len(cur) > 0 && l.X <= baseX+cfg.Bullets.IndentTolerance && !bullets.IsBulleted(l, cfg.Bullets) {
			gap := pitch > 0 && l.Page == prev.Page && l.Y-prev.Y > cfg.GapRatio*pitch
			if sawBlank || l.Page != prev.Page || gap {
				blocks = appendBlock(blocks, cur)
				cur = nil
			}
		}
		cur = append(cur, l)
		prev = l
		sawBlank = false
	}
	return appendBlock(blocks, cur)
}

// medianPitch is the median vertical distance between consecutive non-blank
// lines on the same page, or 0 when there is none.
func medianPitch(lines []layout.Line) float64 {
	var deltas []float64
	var prev *layout.Line
	for i := range lines {
		l := &lines[i]
		if l.IsBlank() {
			continue
		}
		if prev != nil && prev.Page == l.Page && l.Y > prev.Y {
			deltas = append(deltas, l.Y-prev.Y)
		}
		prev = l
	}
	if len(deltas) == 0 {
		return 0
	}
	sort.Float64s(deltas)
	mid := len(deltas) / 2
	if len(deltas)%2 == 0 {
		return (deltas[mid-1] + deltas[mid]) / 2
	}
	return deltas[mid]
}

func appendBlock(blocks [][]layout.Line, b []layout.Line) [][]layout.Line {
	if len(b) == 0 {
		return blocks
	}
	return append(blocks, b)
}
