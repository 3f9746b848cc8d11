package crosstable_test

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/crosstable/pkg/crosstable"
)

func exampleMatrix() *crosstable.Matrix {
	return crosstable.Pivot([]crosstable.Record{
		record("A", "B", 3),
		record("A", "C", 1),
		record("B", "A", 0),
	})
}

func render(t *testing.T, matrix *crosstable.Matrix, format crosstable.Format) string {
	t.Helper()

	opts := crosstable.DefaultOptions()
	opts.Format = format

	out, err := crosstable.Render(matrix, opts)
	require.NoError(t, err)
	return out
}

func TestRender_LaTeX(t *testing.T) {
	want := strings.Join([]string{
		`\begin{table}[H]`,
		`\begin{tabular}{lrrr}`,
		`\toprule`,
		`Player2 & B & C & A \\`,
		`Player1 &  &  &  \\`,
		`\midrule`,
		`A & 3.0 & 1.0 &  \\`,
		`B &  &  & 0.0 \\`,
		`\bottomrule`,
		`\end{tabular}`,
		`\end{table}`,
	}, "\n") + "\n"

	assert.Equal(t, want, render(t, exampleMatrix(), crosstable.FormatLaTeX))
}

func TestRender_LaTeXEscapes(t *testing.T) {
	matrix := crosstable.Pivot([]crosstable.Record{record("R&D_1", "50%", 1)})
	out := render(t, matrix, crosstable.FormatLaTeX)

	assert.Contains(t, out, `Player2 & 50\% \\`)
	assert.Contains(t, out, `R\&D\_1 & 1.0 \\`)
}

func TestRender_KeysStayOnOneLine(t *testing.T) {
	matrix := crosstable.Pivot([]crosstable.Record{
		record(`back\`, "two\nlines", 1),
		record("pipe|d", "two\nlines", 0),
	})

	t.Run("markdown", func(t *testing.T) {
		want := strings.Join([]string{
			`| Player1 \ Player2 | two<br>lines |`,
			`| --- | --: |`,
			`| back\\ | 1.0 |`,
			`| pipe\|d | 0.0 |`,
		}, "\n") + "\n"

		assert.Equal(t, want, render(t, matrix, crosstable.FormatMarkdown))
	})

	t.Run("latex", func(t *testing.T) {
		out := render(t, matrix, crosstable.FormatLaTeX)
		assert.Contains(t, out, `Player2 & two lines \\`)
		assert.Contains(t, out, `back\textbackslash{} & 1.0 \\`)
		assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 11)
	})

	t.Run("text", func(t *testing.T) {
		out := render(t, matrix, crosstable.FormatText)
		assert.Contains(t, out, "two lines")
		assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 6)
	})
}

func TestRender_Markdown(t *testing.T) {
	want := strings.Join([]string{
		`| Player1 \ Player2 | B | C | A |`,
		`| --- | --: | --: | --: |`,
		`| A | 3.0 | 1.0 |  |`,
		`| B |  |  | 0.0 |`,
	}, "\n") + "\n"

	assert.Equal(t, want, render(t, exampleMatrix(), crosstable.FormatMarkdown))
}

func TestRender_Text(t *testing.T) {
	border := strings.Repeat("═", 27)
	want := strings.Join([]string{
		"╔" + border + "╗",
		"║ Player1     B     C     A ║",
		"╠" + border + "╣",
		"║ A         3.0   1.0       ║",
		"║ B                     0.0 ║",
		"╚" + border + "╝",
	}, "\n") + "\n"

	assert.Equal(t, want, render(t, exampleMatrix(), crosstable.FormatText))
}

func TestRender_CSV(t *testing.T) {
	want := "Player1 B C A\nA 3.0 1.0 \nB   0.0\n"
	assert.Equal(t, want, render(t, exampleMatrix(), crosstable.FormatCSV))
}

func TestRender_EmptyMatrix(t *testing.T) {
	for _, format := range crosstable.Formats {
		t.Run(string(format), func(t *testing.T) {
			out := render(t, crosstable.Pivot(nil), format)
			assert.Contains(t, out, "Player1")
		})
	}
}

func TestRender_OneDecimal(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{3, "3.0"},
		{2.567, "2.6"},
		{0.5, "0.5"},
		{-1, "-1.0"},
		{12.04, "12.0"},
	}

	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			matrix := crosstable.Pivot([]crosstable.Record{record("A", "B", tc.value)})
			assert.Equal(t, "Player1 B\nA "+tc.want+"\n", render(t, matrix, crosstable.FormatCSV))
		})
	}
}

func TestRender_Precision(t *testing.T) {
	matrix := crosstable.Pivot([]crosstable.Record{record("A", "B", 2.567)})

	opts := crosstable.DefaultOptions()
	opts.Format = crosstable.FormatCSV
	opts.Precision = 2

	out, err := crosstable.Render(matrix, opts)
	require.NoError(t, err)
	assert.Equal(t, "Player1 B\nA 2.57\n", out)

	opts.Precision = -1
	_, err = crosstable.Render(matrix, opts)
	assert.Error(t, err)
}

func TestRender_UnknownFormat(t *testing.T) {
	opts := crosstable.DefaultOptions()
	opts.Format = "html"

	_, err := crosstable.Render(exampleMatrix(), opts)
	assert.Error(t, err)
}

func TestRender_NoMissingValueText(t *testing.T) {
	records, err := crosstable.Read(strings.NewReader("Player1 Player2 Result\nA B NaN\nB A 1\nC A nan\n"), crosstable.DefaultColumns)
	require.NoError(t, err)

	for _, format := range crosstable.Formats {
		out := render(t, crosstable.Pivot(records), format)
		assert.NotContains(t, strings.ToLower(out), "nan", "format %s", format)
	}
}

// TestRender_Properties checks cell formatting, missing cells and key order
// on randomly generated result sets.
func TestRender_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	decimal := regexp.MustCompile(`^-?\d+\.\d$`)

	for run := 0; run < 50; run++ {
		var records []crosstable.Record
		last := make(map[[2]string]crosstable.Score)
		var rowOrder, columnOrder []string
		seenRow, seenColumn := make(map[string]bool), make(map[string]bool)

		for i := rng.Intn(30); i >= 0; i-- {
			p1 := fmt.Sprintf("p%d", rng.Intn(6))
			p2 := fmt.Sprintf("q%d", rng.Intn(6))
			score := crosstable.Some(float64(rng.Intn(2000)-1000) / 7)
			if rng.Intn(5) == 0 {
				score = crosstable.Missing
			}

			records = append(records, crosstable.Record{Player1: p1, Player2: p2, Result: score})
			last[[2]string{p1, p2}] = score

			if !seenRow[p1] {
				seenRow[p1] = true
				rowOrder = append(rowOrder, p1)
			}
			if !seenColumn[p2] {
				seenColumn[p2] = true
				columnOrder = append(columnOrder, p2)
			}
		}

		out := render(t, crosstable.Pivot(records), crosstable.FormatCSV)
		r := csv.NewReader(strings.NewReader(out))
		r.Comma = crosstable.Separator
		grid, err := r.ReadAll()
		require.NoError(t, err)

		require.Equal(t, columnOrder, grid[0][1:])
		require.Len(t, grid, len(rowOrder)+1)

		for i, row := range grid[1:] {
			require.Equal(t, rowOrder[i], row[0])
			for j, cell := range row[1:] {
				score := last[[2]string{rowOrder[i], columnOrder[j]}]
				if !score.Valid {
					assert.Empty(t, cell)
					continue
				}

				assert.Regexp(t, decimal, cell)
				assert.Equal(t, strconv.FormatFloat(score.Value, 'f', 1, 64), cell)
			}
		}
	}
}

func TestRender_RoundTrip(t *testing.T) {
	players := []string{"Alice", "Bob", "Carol", "Dave"}
	want := make(map[[2]string]float64)

	var records []crosstable.Record
	for i, p1 := range players {
		for j, p2 := range players {
			value := float64((i*len(players)+j)%5) / 2
			want[[2]string{p1, p2}] = value
			records = append(records, record(p1, p2, value))
		}
	}

	out := render(t, crosstable.Pivot(records), crosstable.FormatCSV)

	r := csv.NewReader(strings.NewReader(out))
	r.Comma = crosstable.Separator
	grid, err := r.ReadAll()
	require.NoError(t, err)

	got := make(map[[2]string]float64)
	for _, row := range grid[1:] {
		for j, cell := range row[1:] {
			value, err := strconv.ParseFloat(cell, 64)
			require.NoError(t, err)
			got[[2]string{row[0], grid[0][j+1]}] = value
		}
	}

	assert.Equal(t, want, got)
}
