// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package examples

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Fantom-foundation/wsvm/go/ws"
)

// Example is an executable description of a program with a (int)->int
// signature. The argument is read from the console input, the result is
// printed as a number.
type Example struct {
	exampleSpec
}

// exampleSpec specifies a program and a reference implementation.
type exampleSpec struct {
	Name      string
	source    string        // Whitespace source of the program
	reference func(int) int // a reference function computing the same function
}

func (s exampleSpec) build() Example {
	return Example{exampleSpec: s}
}

type Result struct {
	Result int
	Steps  uint64
}

// Source returns the Whitespace source of this example.
func (e *Example) Source() string {
	return e.source
}

// RunOn runs this example on the given interpreter, using the given argument.
func (e *Example) RunOn(interpreter ws.Interpreter, argument int) (Result, error) {
	output := strings.Builder{}
	params := ws.Parameters{
		Filename: e.Name + ".ws",
		Source:   e.source,
		Input:    ws.NewReaderInput(strings.NewReader(encodeArgument(argument))),
		Output:   ws.NewWriterOutput(&output),
	}

	res, err := interpreter.Run(params)
	if err != nil {
		return Result{}, err
	}

	result, err := decodeOutput(output.String())
	if err != nil {
		return Result{}, err
	}
	return Result{
		Result: result,
		Steps:  res.Steps,
	}, nil
}

// RunReference runs the reference function of this example to produce the
// expected result.
func (e *Example) RunReference(argument int) int {
	return e.reference(argument)
}

func encodeArgument(arg int) string {
	return strconv.Itoa(arg) + "\n"
}

func decodeOutput(output string) (int, error) {
	res, err := strconv.Atoi(output)
	if err != nil {
		return 0, fmt.Errorf("unexpected output %q: %w", output, err)
	}
	return res, nil
}

// readArgument emits the code reading the argument into heap cell 0 and
// pushing it on the stack.
func readArgument(a *assembler) *assembler {
	return a.push(0).getn().push(0).retrieve()
}
