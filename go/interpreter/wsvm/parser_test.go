// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package wsvm

import (
	"errors"
	"math/big"
	"testing"

	"pgregory.net/rand"
)

func TestParser_ParseNumber(t *testing.T) {
	tests := map[string]struct {
		code string
		want int64
	}{
		"positive":      {S + T + S + L, 2},
		"negative":      {T + T + S + L, -2},
		"one":           {S + T + L, 1},
		"zero":          {S + S + L, 0},
		"negative zero": {T + S + L, 0},
		"leading zeros": {S + S + S + T + T + L, 3},
		"commentary":    {"x" + S + "y" + T + "z" + T + "!" + L, 3},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			parser := NewParser("", test.code)
			got, err := parser.ParseNumber()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if want := big.NewInt(test.want); want.Cmp(got) != 0 {
				t.Errorf("unexpected number, wanted %v, got %v", want, got)
			}
		})
	}
}

func TestParser_ParseNumber_Failures(t *testing.T) {
	tests := map[string]struct {
		code    string
		message string
	}{
		"no digits":        {S + L, "expected number"},
		"no sign":          {L, "expected sign"},
		"empty":            {"", "expected sign"},
		"unterminated":     {S + T + T, "expected numeric parameter end with a linefeed"},
		"only commentary":  {"abc", "expected sign"},
		"negative no data": {T + L, "expected number"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			parser := NewParser("file.ws", test.code)
			_, err := parser.ParseNumber()
			var parseError *ParseError
			if !errors.As(err, &parseError) {
				t.Fatalf("expected parse error, got %v", err)
			}
			if want, got := test.message, parseError.Message; want != got {
				t.Errorf("unexpected message, wanted %q, got %q", want, got)
			}
			if want, got := "file.ws", parseError.Filename; want != got {
				t.Errorf("unexpected filename, wanted %q, got %q", want, got)
			}
		})
	}
}

func TestParser_ParseNumber_RandomValuesAreDecoded(t *testing.T) {
	rnd := rand.New(0)
	for i := 0; i < 1000; i++ {
		value := new(big.Int).SetUint64(rnd.Uint64())
		value.Lsh(value, uint(rnd.Intn(80)))
		if rnd.Intn(2) == 1 {
			value.Neg(value)
		}
		parser := NewParser("", bigNumber(value))
		got, err := parser.ParseNumber()
		if err != nil {
			t.Fatalf("unexpected error for %v: %v", value, err)
		}
		if value.Cmp(got) != 0 {
			t.Fatalf("unexpected number, wanted %v, got %v", value, got)
		}
	}
}

func TestParser_ParseLabel(t *testing.T) {
	tests := map[string]struct {
		code string
		want Label
	}{
		"single space": {S + L, Label(" ")},
		"single tab":   {T + L, Label("\t")},
		"mixed":        {S + T + T + S + L, Label(" \t\t ")},
		"commentary":   {"a" + T + "b" + S + "c" + L, Label("\t ")},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			parser := NewParser("", test.code)
			got, err := parser.ParseLabel()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if want := test.want; want != got {
				t.Errorf("unexpected label, wanted %v, got %v", want, got)
			}
		})
	}
}

func TestParser_ParseLabel_Failures(t *testing.T) {
	tests := map[string]struct {
		code    string
		message string
	}{
		"empty label":  {L, "expected label"},
		"unterminated": {S + T, "expected label parameter end with a linefeed"},
		"empty source": {"", "expected label parameter end with a linefeed"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewParser("", test.code).ParseLabel()
			var parseError *ParseError
			if !errors.As(err, &parseError) {
				t.Fatalf("expected parse error, got %v", err)
			}
			if want, got := test.message, parseError.Message; want != got {
				t.Errorf("unexpected message, wanted %q, got %q", want, got)
			}
		})
	}
}

func TestParser_ParseAll_DecodesEveryInstruction(t *testing.T) {
	tests := map[string]struct {
		code string
		want Instruction
	}{
		"push":     {push(1), pushOp(1)},
		"dup":      {dup, Instruction{opcode: DUP}},
		"swap":     {swap, Instruction{opcode: SWAP}},
		"discard":  {discard, Instruction{opcode: DISCARD}},
		"add":      {add, Instruction{opcode: ADD}},
		"sub":      {sub, Instruction{opcode: SUB}},
		"mul":      {mul, Instruction{opcode: MUL}},
		"div":      {div, Instruction{opcode: DIV}},
		"mod":      {mod, Instruction{opcode: MOD}},
		"store":    {store, Instruction{opcode: STORE}},
		"retrieve": {retrieve, Instruction{opcode: RETRIEVE}},
		"putc":     {putc, Instruction{opcode: PUTC}},
		"putn":     {putn, Instruction{opcode: PUTN}},
		"getc":     {getc, Instruction{opcode: GETC}},
		"getn":     {getn, Instruction{opcode: GETN}},
		"mark":     {mark(T), labelOp(MARK, T)},
		"call":     {call(T), labelOp(CALL, T)},
		"jump":     {jump(T), labelOp(JUMP, T)},
		"jumpz":    {jumpZ(T), labelOp(JUMPZ, T)},
		"jumpn":    {jumpN(T), labelOp(JUMPN, T)},
		"ret":      {ret, Instruction{opcode: RET}},
		"end":      {end, Instruction{opcode: END}},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			program, err := NewParser("", test.code).ParseAll()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if want, got := (Code{test.want}), program.Code; !equalCode(want, got) {
				t.Errorf("unexpected code, wanted %v, got %v", want, got)
			}
		})
	}
}

func TestParser_ParseAll_SinglePush(t *testing.T) {
	program, err := NewParser("", "   \t\n").ParseAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want, got := (Code{pushOp(1)}), program.Code; !equalCode(want, got) {
		t.Errorf("unexpected code, wanted %v, got %v", want, got)
	}
	if len(program.Labels) != 0 {
		t.Errorf("unexpected labels: %v", program.Labels)
	}
}

func TestParser_ParseAll_Sequence(t *testing.T) {
	code := source(push(1), dup, swap, discard, end)
	program, err := NewParser("", code).ParseAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Code{
		pushOp(1),
		{opcode: DUP},
		{opcode: SWAP},
		{opcode: DISCARD},
		{opcode: END},
	}
	if !equalCode(want, program.Code) {
		t.Errorf("unexpected code, wanted\n%v got\n%v", want, program.Code)
	}
}

func TestParser_ParseAll_EmptySourceYieldsEmptyProgram(t *testing.T) {
	for _, code := range []string{"", "only-commentary", "x\ry"} {
		program, err := NewParser("", code).ParseAll()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(program.Code) != 0 {
			t.Errorf("expected empty code for %q, got %v", code, program.Code)
		}
	}
}

func TestParser_ParseAll_EndProgramMayAppearMidSequence(t *testing.T) {
	program, err := NewParser("", source(end, push(2), end, putn)).ParseAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Code{{opcode: END}, pushOp(2), {opcode: END}, {opcode: PUTN}}
	if !equalCode(want, program.Code) {
		t.Errorf("unexpected code, wanted %v, got %v", want, program.Code)
	}
}

func TestParser_ParseAll_MarkRegistersPositionAfterItself(t *testing.T) {
	code := source(push(1), push(2), mark(S+T), discard, mark(T+S), mark(S+T+S))
	program, err := NewParser("", code).ParseAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[Label]int{
		Label(S + T):     3,
		Label(T + S):     5,
		Label(S + T + S): 6,
	}
	if len(want) != len(program.Labels) {
		t.Fatalf("unexpected labels, wanted %v, got %v", want, program.Labels)
	}
	for label, pos := range want {
		if got, found := program.Labels[label]; !found || got != pos {
			t.Errorf("unexpected position for label %v, wanted %d, got %d", label, pos, got)
		}
	}
}

func TestParser_ParseAll_LaterMarkOverridesEarlierOne(t *testing.T) {
	code := source(mark(T), push(1), mark(T))
	program, err := NewParser("", code).ParseAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want, got := 3, program.Labels[Label(T)]; want != got {
		t.Errorf("unexpected label position, wanted %d, got %d", want, got)
	}
}

func TestParser_ParseAll_LabelsAreNotValidated(t *testing.T) {
	program, err := NewParser("", source(jump(T+T), call(S))).ParseAll()
	if err != nil {
		t.Fatalf("unresolved labels must not fail parsing: %v", err)
	}
	if len(program.Labels) != 0 {
		t.Errorf("unexpected labels: %v", program.Labels)
	}
}

func TestParser_ParseAll_IsIdempotent(t *testing.T) {
	code := source(push(5), mark(S+T), dup, push(-1), add, dup, jumpZ(T+S), jump(S+T), mark(T+S), end)
	parser := NewParser("", code)
	first, err := parser.ParseAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := parser.ParseAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalCode(first.Code, second.Code) {
		t.Errorf("code differs between runs:\n%v\n%v", first.Code, second.Code)
	}
	if len(first.Labels) != len(second.Labels) {
		t.Fatalf("labels differ between runs: %v vs %v", first.Labels, second.Labels)
	}
	for label, pos := range first.Labels {
		if second.Labels[label] != pos {
			t.Errorf("label %v differs between runs: %d vs %d", label, pos, second.Labels[label])
		}
	}
}

func TestParser_ParseAll_ReportsErrorsWithPosition(t *testing.T) {
	tests := map[string]struct {
		code    string
		message string
		line    int
		column  int
	}{
		"heap access": {
			code:    T + T + "X" + L,
			message: "expected heap access command",
			line:    2, column: 4,
		},
		"missing sign": {
			code:    S + S + L,
			message: "expected sign",
			line:    2, column: 3,
		},
		"incomplete family": {
			code:    T,
			message: "expected instruction modification parameters",
			line:    1, column: 1,
		},
		"stack manipulation": {
			code:    S + T,
			message: "expected stack manipulation command",
			line:    1, column: 2,
		},
		"arithmetic": {
			code:    T + S + T + L,
			message: "expected arithmetic command",
			line:    2, column: 4,
		},
		"io": {
			code:    T + L + L,
			message: "expected IO command",
			line:    3, column: 1,
		},
		"flow control": {
			code:    L + L + S,
			message: "expected flow control command",
			line:    3, column: 1,
		},
		"empty label": {
			code:    L + S + S + L,
			message: "expected label",
			line:    3, column: 3,
		},
		"second line": {
			code:    push(1) + "comment" + T + S + T + L,
			message: "expected arithmetic command",
			line:    3, column: 11,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewParser("prog.ws", test.code).ParseAll()
			var parseError *ParseError
			if !errors.As(err, &parseError) {
				t.Fatalf("expected parse error, got %v", err)
			}
			want := ParseError{
				Filename: "prog.ws",
				Line:     test.line,
				Column:   test.column,
				Message:  test.message,
			}
			if want != *parseError {
				t.Errorf("unexpected error, wanted %v, got %v", &want, parseError)
			}
		})
	}
}

func TestParseError_Error(t *testing.T) {
	err := &ParseError{Filename: "a.ws", Line: 3, Column: 7, Message: "expected label"}
	if want, got := "parse error: expected label at a.ws:3:7", err.Error(); want != got {
		t.Errorf("unexpected message, wanted %q, got %q", want, got)
	}
}

func FuzzParser(f *testing.F) {
	f.Add(source(push(1), dup, swap, discard, end))
	f.Add(source(push(-5), mark(T), call(S+T), ret, jumpN(T)))
	f.Add(T + T + "X" + L)
	f.Add("")

	f.Fuzz(func(t *testing.T, code string) {
		parser := NewParser("fuzz.ws", code)
		first, err := parser.ParseAll()
		if err != nil {
			var parseError *ParseError
			if !errors.As(err, &parseError) {
				t.Fatalf("unexpected error type: %v", err)
			}
			return
		}
		second, err := parser.ParseAll()
		if err != nil {
			t.Fatalf("second parse failed: %v", err)
		}
		if !equalCode(first.Code, second.Code) {
			t.Errorf("parsing is not deterministic:\n%v\n%v", first.Code, second.Code)
		}
		for label, pos := range first.Labels {
			if pos < 1 || pos > len(first.Code) {
				t.Errorf("label %v registered at invalid position %d", label, pos)
			}
			if first.Code[pos-1].opcode != MARK || first.Code[pos-1].label != label {
				t.Errorf("label %v does not follow a matching MARK", label)
			}
		}
	})
}
