// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package crosstable

import (
	"encoding/csv"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Format is a table markup which a Matrix can be rendered into.
type Format string

const (
	FormatLaTeX    Format = "latex"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
	FormatCSV      Format = "csv"
)

// Formats lists the supported formats.
var Formats = []Format{FormatLaTeX, FormatMarkdown, FormatText, FormatCSV}

// ParseFormat returns the Format with the given name.
func ParseFormat(name string) (Format, error) {
	for _, format := range Formats {
		if string(format) == name {
			return format, nil
		}
	}

	return "", fmt.Errorf("unknown format %q", name)
}

// Options configures the rendering of a Matrix.
type Options struct {
	Format    Format
	Precision int // digits after the decimal point

	// Names of the row and column fields, used to label the table.
	Columns Columns
}

// DefaultOptions renders a LaTeX table with one decimal digit.
func DefaultOptions() Options {
	return Options{
		Format:    FormatLaTeX,
		Precision: 1,
		Columns:   DefaultColumns,
	}
}

// Render renders the matrix as a table in the given format. Present results
// are written with opts.Precision decimal digits and missing ones as empty
// cells.
func Render(matrix *Matrix, opts Options) (string, error) {
	if opts.Precision < 0 {
		return "", fmt.Errorf("negative precision %d", opts.Precision)
	}

	opts.Columns = opts.Columns.orDefault()
	grid := newGrid(matrix, opts.Precision)

	switch opts.Format {
	case FormatLaTeX:
		return renderLaTeX(grid, opts.Columns), nil
	case FormatMarkdown:
		return renderMarkdown(grid, opts.Columns), nil
	case FormatText:
		return renderText(grid, opts.Columns), nil
	case FormatCSV:
		return renderCSV(grid, opts.Columns)
	default:
		return "", fmt.Errorf("unknown format %q", opts.Format)
	}
}

// grid is a Matrix with all its cells formatted.
type grid struct {
	rows    []string
	columns []string
	cells   [][]string
}

func newGrid(matrix *Matrix, precision int) grid {
	g := grid{
		rows:    matrix.Rows(),
		columns: matrix.Columns(),
	}

	g.cells = make([][]string, len(g.rows))
	for i, row := range g.rows {
		g.cells[i] = make([]string, len(g.columns))
		for j, column := range g.columns {
			g.cells[i][j] = matrix.Get(row, column).Format(precision)
		}
	}

	return g
}

var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

// renderLaTeX renders a booktabs tabular inside a table float pinned with
// the [H] placement of the float package.
func renderLaTeX(g grid, columns Columns) string {
	var b strings.Builder

	line := func(cells ...string) {
		b.WriteString(strings.Join(cells, " & "))
		b.WriteString(" \\\\\n")
	}

	b.WriteString("\\begin{table}[H]\n")
	fmt.Fprintf(&b, "\\begin{tabular}{l%s}\n", strings.Repeat("r", len(g.columns)))
	b.WriteString("\\toprule\n")

	header := []string{latexEscaper.Replace(columns.Column)}
	for _, column := range g.columns {
		header = append(header, latexEscaper.Replace(column))
	}
	line(header...)

	// The second header line names the row field.
	line(append([]string{latexEscaper.Replace(columns.Row)}, make([]string, len(g.columns))...)...)
	b.WriteString("\\midrule\n")

	for i, row := range g.rows {
		line(append([]string{latexEscaper.Replace(row)}, g.cells[i]...)...)
	}

	b.WriteString("\\bottomrule\n")
	b.WriteString("\\end{tabular}\n")
	b.WriteString("\\end{table}\n")
	return b.String()
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	`|`, `\|`,
	"\r\n", "<br>",
	"\n", "<br>",
	"\r", "<br>",
)

// textEscaper keeps every key of a boxed table on a single line.
var textEscaper = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

func renderMarkdown(g grid, columns Columns) string {
	var b strings.Builder

	line := func(cells ...string) {
		b.WriteString("| ")
		b.WriteString(strings.Join(cells, " | "))
		b.WriteString(" |\n")
	}

	header := []string{markdownEscaper.Replace(columns.Row) + ` \ ` + markdownEscaper.Replace(columns.Column)}
	align := []string{"---"}
	for _, column := range g.columns {
		header = append(header, markdownEscaper.Replace(column))
		align = append(align, "--:")
	}

	line(header...)
	line(align...)

	for i, row := range g.rows {
		line(append([]string{markdownEscaper.Replace(row)}, g.cells[i]...)...)
	}

	return b.String()
}

// renderText draws a boxed table like the ones of the tournament reports.
func renderText(g grid, columns Columns) string {
	g.rows = escapeAll(textEscaper, g.rows)
	g.columns = escapeAll(textEscaper, g.columns)
	columns.Row = textEscaper.Replace(columns.Row)

	widths := make([]int, len(g.columns)+1)
	widths[0] = utf8.RuneCountInString(columns.Row)
	for _, row := range g.rows {
		widths[0] = max(widths[0], utf8.RuneCountInString(row))
	}

	for j, column := range g.columns {
		widths[j+1] = utf8.RuneCountInString(column)
		for i := range g.rows {
			widths[j+1] = max(widths[j+1], utf8.RuneCountInString(g.cells[i][j]))
		}
	}

	inner := 0
	for _, width := range widths {
		inner += width + 3
	}
	inner -= 1

	var b strings.Builder

	line := func(key string, cells []string) {
		fmt.Fprintf(&b, "║ %-*s", widths[0], key)
		for j, cell := range cells {
			fmt.Fprintf(&b, "   %*s", widths[j+1], cell)
		}
		b.WriteString(" ║\n")
	}

	b.WriteString("╔" + strings.Repeat("═", inner) + "╗\n")
	line(columns.Row, g.columns)
	b.WriteString("╠" + strings.Repeat("═", inner) + "╣\n")
	for i, row := range g.rows {
		line(row, g.cells[i])
	}
	b.WriteString("╚" + strings.Repeat("═", inner) + "╝\n")

	return b.String()
}

// renderCSV writes the grid in the space separated format of results files,
// with the row field name in the corner cell.
func renderCSV(g grid, columns Columns) (string, error) {
	var b strings.Builder

	w := csv.NewWriter(&b)
	w.Comma = Separator

	if err := w.Write(append([]string{columns.Row}, g.columns...)); err != nil {
		return "", err
	}

	for i, row := range g.rows {
		if err := w.Write(append([]string{row}, g.cells[i]...)); err != nil {
			return "", err
		}
	}

	w.Flush()
	return b.String(), w.Error()
}

func escapeAll(escaper *strings.Replacer, keys []string) []string {
	escaped := make([]string, len(keys))
	for i, key := range keys {
		escaped[i] = escaper.Replace(key)
	}

	return escaped
}

func max(a, b int) int {
	if a > b {
		return a
	}

	return b
}
