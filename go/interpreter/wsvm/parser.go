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
	"math/big"
	"unicode/utf8"
)

// Parser decodes Whitespace source text into a Program. The grammar is a
// prefix code: one or two tokens select an instruction family, up to two
// more select the instruction, optionally followed by a number or label
// literal.
//
// A Parser is not thread-safe.
type Parser struct {
	filename string
	source   string

	// Scan position
	index   int  // byte offset of the next character to scan
	line    int  // incremented whenever a LineFeed token is produced
	column  int  // characters scanned since the last line boundary
	newLine bool // the last produced token was a LineFeed

	// Parse results
	code   Code
	labels map[Label]int
}

// NewParser creates a parser for the given source, positioned at its start.
// The filename is only used for error reporting.
func NewParser(filename, source string) *Parser {
	p := &Parser{filename: filename, source: source}
	p.reset()
	return p
}

func (p *Parser) reset() {
	p.index = 0
	p.line = 1
	p.column = 0
	p.newLine = false
	p.code = Code{}
	p.labels = map[Label]int{}
}

// ParseAll parses the complete source from its start. Repeated invocations
// yield identical programs.
func (p *Parser) ParseAll() (*Program, error) {
	p.reset()
	for {
		done, err := p.parseInstruction()
		if err != nil {
			return nil, err
		}
		if done {
			return &Program{Code: p.code, Labels: p.labels}, nil
		}
	}
}

// parseInstruction parses the next instruction and appends it to the code.
// It reports true if the end of the input was reached instead.
func (p *Parser) parseInstruction() (bool, error) {
	switch p.nextToken() {
	case Space:
		return false, p.parseStackManipulation()
	case Tab:
		switch p.nextToken() {
		case Space:
			return false, p.parseArithmetic()
		case Tab:
			return false, p.parseHeapAccess()
		case LineFeed:
			return false, p.parseIO()
		}
		return false, p.errorf("expected instruction modification parameters")
	case LineFeed:
		return false, p.parseFlowControl()
	}
	return true, nil
}

func (p *Parser) parseStackManipulation() error {
	switch p.nextToken() {
	case Space:
		value, err := p.ParseNumber()
		if err != nil {
			return err
		}
		p.code = append(p.code, Instruction{opcode: PUSH, value: value})
		return nil
	case LineFeed:
		switch p.nextToken() {
		case Space:
			return p.emit(DUP)
		case Tab:
			return p.emit(SWAP)
		case LineFeed:
			return p.emit(DISCARD)
		}
	}
	return p.errorf("expected stack manipulation command")
}

func (p *Parser) parseArithmetic() error {
	switch p.nextToken() {
	case Space:
		switch p.nextToken() {
		case Space:
			return p.emit(ADD)
		case Tab:
			return p.emit(SUB)
		case LineFeed:
			return p.emit(MUL)
		}
	case Tab:
		switch p.nextToken() {
		case Space:
			return p.emit(DIV)
		case Tab:
			return p.emit(MOD)
		}
	}
	return p.errorf("expected arithmetic command")
}

func (p *Parser) parseHeapAccess() error {
	switch p.nextToken() {
	case Space:
		return p.emit(STORE)
	case Tab:
		return p.emit(RETRIEVE)
	}
	return p.errorf("expected heap access command")
}

func (p *Parser) parseIO() error {
	switch p.nextToken() {
	case Space:
		switch p.nextToken() {
		case Space:
			return p.emit(PUTC)
		case Tab:
			return p.emit(PUTN)
		}
	case Tab:
		switch p.nextToken() {
		case Space:
			return p.emit(GETC)
		case Tab:
			return p.emit(GETN)
		}
	}
	return p.errorf("expected IO command")
}

func (p *Parser) parseFlowControl() error {
	switch p.nextToken() {
	case Space:
		switch p.nextToken() {
		case Space:
			return p.emitWithLabel(MARK)
		case Tab:
			return p.emitWithLabel(CALL)
		case LineFeed:
			return p.emitWithLabel(JUMP)
		}
	case Tab:
		switch p.nextToken() {
		case Space:
			return p.emitWithLabel(JUMPZ)
		case Tab:
			return p.emitWithLabel(JUMPN)
		case LineFeed:
			return p.emit(RET)
		}
	case LineFeed:
		if p.nextToken() == LineFeed {
			return p.emit(END)
		}
	}
	return p.errorf("expected flow control command")
}

func (p *Parser) emit(op OpCode) error {
	p.code = append(p.code, Instruction{opcode: op})
	return nil
}

func (p *Parser) emitWithLabel(op OpCode) error {
	label, err := p.ParseLabel()
	if err != nil {
		return err
	}
	if op == MARK {
		// The target is the position after the MARK instruction.
		p.labels[label] = len(p.code) + 1
	}
	p.code = append(p.code, Instruction{opcode: op, label: label})
	return nil
}

// ParseNumber parses a number literal starting at the current scan
// position: a sign (Space for +, Tab for -) followed by at least one binary
// digit (Space for 0, Tab for 1, most significant first) and a LineFeed.
func (p *Parser) ParseNumber() (*big.Int, error) {
	negative := false
	switch p.nextToken() {
	case Space:
	case Tab:
		negative = true
	default:
		return nil, p.errorf("expected sign")
	}

	value := new(big.Int)
	digits := 0
	for {
		switch p.nextToken() {
		case Space:
			value.Lsh(value, 1)
		case Tab:
			value.Lsh(value, 1)
			value.SetBit(value, 0, 1)
		case LineFeed:
			if digits == 0 {
				return nil, p.errorf("expected number")
			}
			if negative {
				value.Neg(value)
			}
			return value, nil
		default:
			return nil, p.errorf("expected numeric parameter end with a linefeed")
		}
		digits++
	}
}

// ParseLabel parses a label literal starting at the current scan position:
// at least one Space or Tab followed by a LineFeed.
func (p *Parser) ParseLabel() (Label, error) {
	tokens := []Token{}
	for {
		switch token := p.nextToken(); token {
		case Space, Tab:
			tokens = append(tokens, token)
		case LineFeed:
			if len(tokens) == 0 {
				return "", p.errorf("expected label")
			}
			return labelOf(tokens...), nil
		default:
			return "", p.errorf("expected label parameter end with a linefeed")
		}
	}
}

// nextToken advances to the next token, skipping commentary characters.
func (p *Parser) nextToken() Token {
	if p.newLine {
		p.newLine = false
		p.column = 0
	}
	for p.index < len(p.source) {
		r, size := utf8.DecodeRuneInString(p.source[p.index:])
		p.index += size
		p.column++
		if token, ok := tokenOf(r); ok {
			if token == LineFeed {
				p.line++
				p.newLine = true
			}
			return token
		}
	}
	return EndOfInput
}

func (p *Parser) errorf(message string) error {
	return &ParseError{
		Filename: p.filename,
		Line:     p.line,
		Column:   p.column,
		Message:  message,
	}
}
