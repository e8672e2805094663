// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"io"
	"log/slog"
)

// newLogger creates the diagnostic logger of the tool. Diagnostics share
// the error stream with traces and statistics; the program output on the
// standard output stream stays untouched.
func newLogger(output io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: level})).With("tool", "ws")
}
