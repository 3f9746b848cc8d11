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
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by Load when the results file does not exist.
	ErrNotFound = errors.New("results file not found")

	// ErrNoHeader is returned for an input without a header line.
	ErrNoHeader = errors.New("missing header row")

	// ErrMissingColumn is returned when the header lacks a required field.
	ErrMissingColumn = errors.New("missing column in header")

	// ErrBadResult is returned for a result which is neither a finite
	// number nor a missing-value marker.
	ErrBadResult = errors.New("invalid result")
)

// ParseError reports a malformed line of a results file.
type ParseError struct {
	Line int // 1-indexed line number
	Err  error
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", err.Line, err.Err)
}

func (err *ParseError) Unwrap() error {
	return err.Err
}
