package veccalc

import (
	"errors"
	"regexp"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Literal patterns, tried in this order at each candidate position.
const (
	hexPat     = `0[xX][0-9a-fA-F]+`
	decimalPat = `-?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?`
	leadingPat = `-?\.[0-9]+([eE][+-]?[0-9]+)?`
	suffixPat  = `[fF]?`
)

var (
	hexRe          = anchored(hexPat)
	decimalRe      = anchored(decimalPat + suffixPat)
	decimalPlainRe = anchored(decimalPat)
	leadingRe      = anchored(leadingPat + suffixPat)
	leadingPlainRe = anchored(leadingPat)
)

// literal is a numeric literal matched in the source text.
type literal struct {
	Begin int     // Byte offset of the first character
	End   int     // Byte offset just past the last character
	Num   float64 // Numeric value
	Hex   bool    // Whether the literal was hexadecimal
}

// matchLiteral matches the longest numeric literal starting at text[i:].
// The literal must be followed by a non-alphanumeric character or end of input.
func matchLiteral(text string, i int, opt ParseOptions) (literal, bool) {
	rest := text[i:]

	if !opt.DisableHex {
		if loc := hexRe.FindStringIndex(rest); loc != nil {
			if !terminated(text, i+loc[1]) {
				return literal{}, false
			}
			lit := rest[:loc[1]]
			return literal{Begin: i, End: i + loc[1], Num: parseHexDigits(lit[2:]), Hex: true}, true
		}
	}

	decimal, leading := decimalRe, leadingRe
	if opt.DisableFloatSuffix {
		decimal, leading = decimalPlainRe, leadingPlainRe
	}

	loc := decimal.FindStringIndex(rest)
	if loc == nil && !opt.DisableLeadingDecimal {
		loc = leading.FindStringIndex(rest)
	}
	if loc == nil || !terminated(text, i+loc[1]) {
		return literal{}, false
	}

	lit := rest[:loc[1]]
	if n := len(lit); lit[n-1] == 'f' || lit[n-1] == 'F' {
		lit = lit[:n-1]
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return literal{}, false
	}

	return literal{Begin: i, End: i + loc[1], Num: f}, true
}

// terminated reports whether a literal ending at offset end is not glued to a word.
func terminated(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[end:])
	return !isAlnum(r)
}

// parseHexDigits converts hex digits of any length to a float64.
func parseHexDigits(digits string) float64 {
	if u, err := strconv.ParseUint(digits, 16, 64); err == nil {
		return float64(u)
	}

	var v float64
	for i := 0; i < len(digits); i++ {
		v = v*16 + float64(hexDigit(digits[i]))
	}

	return v
}

// isIdentStart checks if a character starts an identifier.
func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

// isAlnum checks if a character continues an identifier or a number.
func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// isNumberStart checks if a character can start a numeric literal.
func isNumberStart(r rune) bool {
	return (r >= '0' && r <= '9') || r == '-' || r == '.'
}

// anchored compiles a pattern that only matches at the start of the input.
func anchored(s string) *regexp.Regexp {
	return regexp.MustCompile("^(?:" + s + ")")
}

// hexDigit returns the value of a hex digit already validated by hexRe.
func hexDigit(c byte) int {
	switch {
	case c >= 'a':
		return int(c-'a') + 10
	case c >= 'A':
		return int(c-'A') + 10
	default:
		return int(c - '0')
	}
}
