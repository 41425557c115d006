package site

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// WriteReport writes one aligned line per generated page.
func WriteReport(w io.Writer, pages []Page) error {
	rows := [][]string{{"SOURCE", "DESTINATION", "TITLE"}}
	for _, p := range pages {
		rows = append(rows, []string{p.Source, p.Dest, p.Title})
	}
	widths := make([]int, 2)
	for _, r := range rows {
		for i := range widths {
			if cw := runewidth.StringWidth(r[i]); cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	for _, r := range rows {
		line := runewidth.FillRight(r[0], widths[0]) + "  " +
			runewidth.FillRight(r[1], widths[1]) + "  " + r[2]
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}
