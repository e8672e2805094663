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
	"strings"
	"unicode"
	"unicode/utf8"
)

// Values on the stack and in the heap are exact rationals. Push literals are
// integers, but division yields exact, non-truncated quotients. Values are
// never modified once created; every operation allocates its result.

func newValue(i *big.Int) *big.Rat {
	return new(big.Rat).SetInt(i)
}

func newValueFromInt64(i int64) *big.Rat {
	return new(big.Rat).SetInt64(i)
}

func quotient(a, b *big.Rat) (*big.Rat, error) {
	if b.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return new(big.Rat).Quo(a, b), nil
}

// remainder computes a - b*trunc(a/b). The result has the sign of a.
func remainder(a, b *big.Rat) (*big.Rat, error) {
	q, err := quotient(a, b)
	if err != nil {
		return nil, err
	}
	truncated := new(big.Int).Quo(q.Num(), q.Denom())
	product := new(big.Rat).Mul(b, new(big.Rat).SetInt(truncated))
	return new(big.Rat).Sub(a, product), nil
}

// fractionDigits is the number of decimal places printed for values that are
// not integers.
const fractionDigits = 16

// formatValue renders integers in decimal and other rationals rounded to
// fractionDigits decimal places, without trailing zeros.
func formatValue(v *big.Rat) string {
	if v.IsInt() {
		return v.Num().String()
	}
	res := strings.TrimRight(v.FloatString(fractionDigits), "0")
	res = strings.TrimSuffix(res, ".")
	if res == "-0" {
		return "0"
	}
	return res
}

// heapKey is the canonical representation of a value used to address the
// heap.
func heapKey(v *big.Rat) string {
	return v.RatString()
}

// toCharacter converts a value to the character with that code point.
func toCharacter(v *big.Rat) (string, error) {
	if !v.IsInt() || !v.Num().IsInt64() {
		return "", ErrInvalidCharacter
	}
	code := v.Num().Int64()
	if code < 0 || code > unicode.MaxRune || !utf8.ValidRune(rune(code)) {
		return "", ErrInvalidCharacter
	}
	return string(rune(code)), nil
}

// firstCharacter returns the code point of the first character of the
// input, or -1 for an empty input.
func firstCharacter(input string) *big.Rat {
	if input == "" {
		return newValueFromInt64(-1)
	}
	r, _ := utf8.DecodeRuneInString(input)
	return newValueFromInt64(int64(r))
}

// parseDecimal parses the decimal integer at the start of the input. Leading
// white space and a sign are accepted, anything after the digits is ignored.
func parseDecimal(input string) (*big.Rat, error) {
	s := strings.TrimLeftFunc(input, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && '0' <= s[end] && s[end] <= '9' {
		end++
	}
	if start == end {
		return nil, ErrInvalidNumber
	}
	value, ok := new(big.Int).SetString(s[:end], 10)
	if !ok {
		return nil, ErrInvalidNumber
	}
	return newValue(value), nil
}
