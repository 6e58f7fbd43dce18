// Copyright (c) 2025 The ui512mdProject contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint512

import "github.com/decred/slog"

// log is a logger that is initialized with no output filters. This means
// the package will not perform any logging by default until the caller
// requests it. The default amount of logging is none.
var log = slog.Disabled

// UseLogger uses a specified Logger to output package logging info. Div
// logs at Trace level when Knuth Algorithm D's add-back correction (D6)
// fires, a rare-path event useful for diagnosing pathological divisor
// inputs. The q-hat refinement loop (D3) is not logged.
func UseLogger(logger slog.Logger) {
	log = logger
}
