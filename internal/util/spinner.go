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

package util

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
)

// The spinner writes to stderr so that it never mixes with a table printed
// on stdout. It stays silent if stderr is not a terminal.
var workingSpinner = spinner.New(
	spinner.CharSets[11], 100*time.Millisecond,
	spinner.WithWriterFile(os.Stderr),
	spinner.WithSuffix(" loading results"),
)

// StartSpinner starts the ~working~ spinner. Trace output would be garbled
// by it, so it is not started at that logging level.
func StartSpinner() {
	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		return
	}

	workingSpinner.Start()
}

// PauseSpinner stops the spinner and clears its line.
func PauseSpinner() {
	workingSpinner.Stop()
}
