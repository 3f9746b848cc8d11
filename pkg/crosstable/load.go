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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Separator is the field separator of a results file.
const Separator = ' '

// missingMarkers are the result texts which denote a missing result.
var missingMarkers = map[string]struct{}{
	"":     {},
	"NaN":  {},
	"nan":  {},
	"NA":   {},
	"N/A":  {},
	"null": {},
}

// Load reads the results file at the given path. The returned error matches
// ErrNotFound if the file does not exist, and is a *ParseError if the file
// is malformed.
func Load(path string, columns Columns) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}

		return nil, err
	}
	defer file.Close()

	records, err := Read(file, columns)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logrus.Debugf("loaded %d records from %s", len(records), path)
	return records, nil
}

// Read parses a space separated results table from the given reader. The
// first line must be a header containing the names in columns; empty names
// are replaced by the ones in DefaultColumns.
func Read(reader io.Reader, columns Columns) ([]Record, error) {
	columns = columns.orDefault()

	r := csv.NewReader(reader)
	r.Comma = Separator

	// The header fixes the number of fields every other line must have.
	r.FieldsPerRecord = 0

	header, err := r.Read()
	switch {
	case errors.Is(err, io.EOF):
		return nil, &ParseError{Line: 1, Err: ErrNoHeader}
	case err != nil:
		return nil, toParseError(err)
	}

	row, col, val := -1, -1, -1
	for i, name := range header {
		name = strings.TrimPrefix(name, "\ufeff")
		switch name {
		case columns.Row:
			row = i
		case columns.Column:
			col = i
		case columns.Value:
			val = i
		}
	}

	for _, column := range []struct {
		name  string
		index int
	}{
		{columns.Row, row},
		{columns.Column, col},
		{columns.Value, val},
	} {
		if column.index == -1 {
			line, _ := r.FieldPos(0)
			return nil, &ParseError{
				Line: line,
				Err:  fmt.Errorf("%w: %q", ErrMissingColumn, column.name),
			}
		}
	}

	var records []Record
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, toParseError(err)
		}

		line, _ := r.FieldPos(0)
		score, err := parseScore(fields[val])
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}

		logrus.Tracef("line %d: %s vs %s: %s", line, fields[row], fields[col], score)
		records = append(records, Record{
			Player1: fields[row],
			Player2: fields[col],
			Result:  score,
		})
	}

	return records, nil
}

func parseScore(field string) (Score, error) {
	field = strings.TrimSpace(field)
	if _, missing := missingMarkers[field]; missing {
		return Missing, nil
	}

	value, err := strconv.ParseFloat(field, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return Missing, fmt.Errorf("%w %q", ErrBadResult, field)
	}

	return Some(value), nil
}

// toParseError converts an error from the csv reader into a *ParseError.
func toParseError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Line: csvErr.Line, Err: csvErr.Err}
	}

	return err
}
