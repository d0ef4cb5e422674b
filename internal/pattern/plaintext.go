package pattern

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-life/internal/life"
)

// Plaintext (.cells) format:
//
//	!Name: Glider
//	!Any other comment line
//	.O.
//	..O
//	OOO
//
// 'O' (or '*') is alive and '.' is dead. Rows may omit trailing dead cells;
// they are padded to the widest row.

// ParsePlaintext parses a pattern in plaintext format.
func ParsePlaintext(data string) (Pattern, error) {
	var p Pattern
	var rows [][]life.Cell
	width := 0

	sc := bufio.NewScanner(strings.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(text, "!") {
			comment := strings.TrimSpace(text[1:])
			if name, ok := strings.CutPrefix(comment, "Name:"); ok {
				p.Name = strings.TrimSpace(name)
				continue
			}
			p.Comments = append(p.Comments, comment)
			continue
		}

		row := make([]life.Cell, 0, len(text))
		for col, r := range text {
			switch r {
			case 'O', 'o', '*':
				row = append(row, life.Alive)
			case '.':
				row = append(row, life.Dead)
			default:
				return Pattern{}, fmt.Errorf("pattern: line %d col %d: unexpected %q: %w", line, col+1, r, life.ErrMalformed)
			}
		}
		width = max(width, len(row))
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, fmt.Errorf("pattern: read: %w", err)
	}

	// Trailing blank lines are not part of the pattern.
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return Pattern{}, fmt.Errorf("pattern: no cells: %w", life.ErrEmptyGrid)
	}

	for y := range rows {
		rows[y] = append(rows[y], life.Fill(width-len(rows[y]), life.Dead)...)
	}
	g, err := life.FromRows(rows)
	if err != nil {
		return Pattern{}, fmt.Errorf("pattern: %w", err)
	}
	p.Cells = g
	return p, nil
}

// FormatPlaintext renders p in plaintext format. The name and comments are
// written as '!' lines ahead of the cells.
func FormatPlaintext(p Pattern) string {
	var sb strings.Builder
	if p.Name != "" {
		fmt.Fprintf(&sb, "!Name: %s\n", p.Name)
	}
	for _, c := range p.Comments {
		fmt.Fprintf(&sb, "!%s\n", c)
	}
	sb.WriteString(FormatCells(p.Cells))
	return sb.String()
}

// FormatCells renders only the cell rows, one line per row.
func FormatCells(g life.Grid) string {
	var sb strings.Builder
	sb.Grow((g.Width() + 1) * g.Height())
	for _, row := range g.Rows() {
		for _, cell := range row {
			if cell == life.Alive {
				sb.WriteByte('O')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
