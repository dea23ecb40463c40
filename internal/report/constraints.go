package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/verte-zerg/wordhelp/internal/wordle"
)

const noLetter = "-"

// RenderConstraints prints the green and yellow letters per position
// (1-based) followed by the gray letters.
func RenderConstraints(w io.Writer, cs wordle.ConstraintSet) error {
	if cs.IsEmpty() {
		_, err := fmt.Fprintln(w, "No constraints.")
		return err
	}
	green := cs.Green()
	yellow := cs.Yellow()
	if positions := cs.Positions(); len(positions) > 0 {
		tbl := newTable(
			column{header: "Pos", align: alignRight},
			column{header: "Green"},
			column{header: "Yellow"},
		)
		for _, pos := range positions {
			tbl.addRow(strconv.Itoa(pos+1), letterCell(green, pos), letterCell(yellow, pos))
		}
		if err := tbl.write(w); err != nil {
			return err
		}
	}
	excluded := cs.Excluded()
	parts := make([]string, len(excluded))
	for i, r := range excluded {
		parts[i] = string(r)
	}
	label := strings.Join(parts, " ")
	if label == "" {
		label = noLetter
	}
	_, err := fmt.Fprintf(w, "Excluded: %s\n", label)
	return err
}

func letterCell(letters map[int]rune, pos int) string {
	if r, ok := letters[pos]; ok {
		return string(r)
	}
	return noLetter
}
