package textutil

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const ellipsis = "…"

// DisplayWidth reports the printable width of text, measuring each grapheme
// cluster once so emoji sequences count as a single wide glyph.
func DisplayWidth(text string) int {
	width := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		width += clusterWidth(g.Str())
	}
	return width
}

// TruncateToCells shortens text so it takes at most cells canvas cells, one
// per rune, and at most cells terminal columns. Grapheme clusters are kept
// whole and an ellipsis marks the cut.
func TruncateToCells(text string, cells int) string {
	if cells <= 0 {
		return ""
	}
	if fitCost(text) <= cells {
		return text
	}

	ellipsisCost := clusterCost(ellipsis)
	if cells <= ellipsisCost {
		return ellipsis
	}

	target := cells - ellipsisCost
	var builder strings.Builder
	current := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		cost := clusterCost(cluster)
		if current+cost > target {
			break
		}
		builder.WriteString(cluster)
		current += cost
	}
	builder.WriteString(ellipsis)
	return builder.String()
}

func fitCost(text string) int {
	cost := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cost += clusterCost(g.Str())
	}
	return cost
}

// clusterCost is the larger of the cells a cluster fills on the canvas and
// the columns it fills on the terminal.
func clusterCost(cluster string) int {
	runes := utf8.RuneCountInString(cluster)
	if w := clusterWidth(cluster); w > runes {
		return w
	}
	return runes
}

func clusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = 1
	}
	if w > 2 {
		w = 2
	}
	return w
}
