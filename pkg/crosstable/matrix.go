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
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"laptudirm.com/x/crosstable/internal/util"
)

// Matrix is a cross table of results, with one row for every distinct
// Player1 and one column for every distinct Player2. A Matrix is not
// modified after it has been built.
type Matrix struct {
	rows    []string
	columns []string

	cells map[pair]float64
}

type pair struct {
	row, column string
}

// Pivot builds the cross table of the given records. Rows and columns are
// ordered by the first appearance of their player. If a pair of players
// occurs more than once, the later record overwrites the earlier one, a
// missing result included.
func Pivot(records []Record) *Matrix {
	matrix := &Matrix{cells: make(map[pair]float64)}

	seenRows := make(map[string]bool)
	seenColumns := make(map[string]bool)

	for _, record := range records {
		if !seenRows[record.Player1] {
			seenRows[record.Player1] = true
			matrix.rows = append(matrix.rows, record.Player1)
		}

		if !seenColumns[record.Player2] {
			seenColumns[record.Player2] = true
			matrix.columns = append(matrix.columns, record.Player2)
		}

		key := pair{record.Player1, record.Player2}
		if _, found := matrix.cells[key]; found {
			logrus.Tracef("overwriting result of %s vs %s", record.Player1, record.Player2)
		}

		if record.Result.Valid {
			matrix.cells[key] = record.Result.Value
		} else {
			delete(matrix.cells, key)
		}
	}

	logrus.Debugf("pivoted into %d rows and %d columns", len(matrix.rows), len(matrix.columns))
	return matrix
}

// Rows returns the row keys of the matrix in order.
func (matrix *Matrix) Rows() []string {
	return append([]string(nil), matrix.rows...)
}

// Columns returns the column keys of the matrix in order.
func (matrix *Matrix) Columns() []string {
	return append([]string(nil), matrix.columns...)
}

// Get returns the result stored at the given row and column.
func (matrix *Matrix) Get(row, column string) Score {
	value, found := matrix.cells[pair{row, column}]
	if !found {
		return Missing
	}

	return Some(value)
}

// Order is an ordering of the keys of a Matrix.
type Order string

const (
	// OrderAppearance orders keys by their first appearance in the input.
	OrderAppearance Order = "appearance"

	// OrderNatural orders keys alphanumerically, comparing runs of digits
	// by their numeric value, so that "Player2" precedes "Player10".
	OrderNatural Order = "natural"
)

// ParseOrder returns the Order with the given name.
func ParseOrder(name string) (Order, error) {
	switch order := Order(name); order {
	case OrderAppearance, OrderNatural:
		return order, nil
	default:
		return "", fmt.Errorf("unknown order %q", name)
	}
}

// Sort returns a copy of the matrix with its keys in the given order.
func (matrix *Matrix) Sort(order Order) *Matrix {
	sorted := &Matrix{
		rows:    matrix.Rows(),
		columns: matrix.Columns(),
		cells:   matrix.cells,
	}

	if order == OrderNatural {
		sortNatural(sorted.rows)
		sortNatural(sorted.columns)
	}

	return sorted
}

func sortNatural(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		return util.NaturalLess(keys[i], keys[j])
	})
}
