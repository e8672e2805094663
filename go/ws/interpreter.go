// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package ws

//go:generate mockgen -source interpreter.go -destination interpreter_mock.go -package ws

// Interpreter is a component capable of running Whitespace programs. To
// obtain an Interpreter instance, client code should use NewInterpreter()
// provided by the registry file in this package.
type Interpreter interface {
	// Run parses the source provided by the parameters and executes the
	// resulting program. The resulting error is nil whenever the program was
	// parsed and ran to completion. Parse failures and runtime faults are
	// reported as errors; any output produced before a runtime fault remains
	// written to the output sink.
	// Interpreters are required to be thread-safe. Thus, multiple runs may be
	// conducted in parallel.
	Run(Parameters) (Result, error)
}

// Input is the source of console input consumed by input instructions.
type Input interface {
	// ReadAll drains the input channel to its end and returns everything
	// read. Every call is independent; no read position is shared between
	// calls.
	ReadAll() (string, error)
}

// Output is the sink of console output produced by output instructions.
type Output interface {
	// WriteString writes the given string to the sink.
	WriteString(string) error
}

// Parameters summarizes the list of input parameters required for running a
// program.
type Parameters struct {
	Filename string // < used for error reporting only
	Source   string
	Input    Input
	Output   Output
}

// Result summarizes the outcome of a successful run.
type Result struct {
	Steps uint64 // < the number of executed instructions
}

// ProfilingInterpreter is an optional extension of an Interpreter collecting
// execution statistics across runs.
type ProfilingInterpreter interface {
	Interpreter
	// DumpProfile writes a human-readable summary of the collected profile.
	DumpProfile(Output) error
	// ResetProfile discards all collected data.
	ResetProfile()
}
