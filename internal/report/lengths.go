package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"unicode/utf8"
)

// LengthCount is the number of words of one length.
type LengthCount struct {
	Length int
	Words  int
}

// LengthCounts groups words by length, longest first.
func LengthCounts(words []string) []LengthCount {
	counts := map[int]int{}
	for _, w := range words {
		counts[utf8.RuneCountInString(w)]++
	}
	out := make([]LengthCount, 0, len(counts))
	for length, n := range counts {
		out = append(out, LengthCount{Length: length, Words: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Length > out[j].Length })
	return out
}

// RenderLengthTable prints a Length/Words table for words.
func RenderLengthTable(w io.Writer, words []string) error {
	if len(words) == 0 {
		_, err := fmt.Fprintln(w, "No words found.")
		return err
	}
	tbl := newTable(
		column{header: "Length", align: alignRight},
		column{header: "Words", align: alignRight},
	)
	for _, c := range LengthCounts(words) {
		tbl.addRow(strconv.Itoa(c.Length), strconv.Itoa(c.Words))
	}
	return tbl.write(w)
}
