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

import "strconv"

// Record represents a single line of a results file: the result of Player1
// playing against Player2.
type Record struct {
	Player1 string
	Player2 string
	Result  Score
}

// Score is an optional numeric match result.
type Score struct {
	Value float64
	Valid bool // false if the result was missing
}

// Some returns a present Score with the given value.
func Some(value float64) Score {
	return Score{Value: value, Valid: true}
}

// Missing is the absent Score.
var Missing = Score{}

// Format returns the score with the given number of digits after the decimal
// point, or the empty string if the score is missing.
func (score Score) Format(precision int) string {
	if !score.Valid {
		return ""
	}

	return strconv.FormatFloat(score.Value, 'f', precision, 64)
}

// String returns the score with a single decimal digit.
func (score Score) String() string {
	return score.Format(1)
}

// Columns names the header fields which hold each part of a Record.
type Columns struct {
	Row    string `yaml:"row"`    // Player1
	Column string `yaml:"column"` // Player2
	Value  string `yaml:"value"`  // Result
}

// DefaultColumns are the field names of a standard results file.
var DefaultColumns = Columns{
	Row:    "Player1",
	Column: "Player2",
	Value:  "Result",
}

// orDefault fills in the empty names with the default ones.
func (columns Columns) orDefault() Columns {
	if columns.Row == "" {
		columns.Row = DefaultColumns.Row
	}

	if columns.Column == "" {
		columns.Column = DefaultColumns.Column
	}

	if columns.Value == "" {
		columns.Value = DefaultColumns.Value
	}

	return columns
}
