// Package jslit encodes Go strings as single-quoted JavaScript string literals.
//
// The encoding is valid in both ES modules and CommonJS sources and is chosen so
// the literal never spans lines: every line terminator recognised by
// ECMAScript is escaped.
package jslit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// ErrEscapeFailure is returned when a string cannot be represented as a literal.
var ErrEscapeFailure = errors.New("escape failure")

// Quote returns s as a single-quoted JavaScript string literal.
// Strings containing NUL or invalid UTF-8 are rejected with ErrEscapeFailure.
func Quote(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("%w: invalid UTF-8 in %q", ErrEscapeFailure, truncate(s))
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')

	for i, r := range s {
		switch r {
		case 0:
			return "", fmt.Errorf("%w: NUL byte at offset %d", ErrEscapeFailure, i)
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}

	b.WriteByte('\'')
	return b.String(), nil
}

// Unquote interprets lit as a single- or double-quoted JavaScript string
// literal and returns the string value it denotes. It understands the escapes
// produced by Quote plus \b, \f, \v, \0, \uXXXX, \u{X...} and line
// continuations.
func Unquote(lit string) (string, error) {
	if len(lit) < 2 {
		return "", fmt.Errorf("invalid literal %q", lit)
	}
	quote := lit[0]
	if (quote != '\'' && quote != '"') || lit[len(lit)-1] != quote {
		return "", fmt.Errorf("invalid literal %q: unbalanced quotes", truncate(lit))
	}

	body := lit[1 : len(lit)-1]
	var b strings.Builder
	b.Grow(len(body))

	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == quote {
			return "", fmt.Errorf("invalid literal: unescaped quote at offset %d", i+1)
		}
		if c == '\n' || c == '\r' {
			return "", fmt.Errorf("invalid literal: raw line terminator at offset %d", i+1)
		}
		if c != '\\' {
			b.WriteByte(c)
			continue
		}

		i++
		if i >= len(body) {
			return "", fmt.Errorf("invalid literal: trailing backslash")
		}

		switch e := body[i]; e {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case '\n':
			// line continuation
		case 'x':
			if i+3 > len(body) {
				return "", fmt.Errorf("invalid literal: short \\x escape")
			}
			v, err := strconv.ParseUint(body[i+1:i+3], 16, 8)
			if err != nil {
				return "", fmt.Errorf("invalid literal: bad \\x escape: %w", err)
			}
			b.WriteRune(rune(v))
			i += 2
		case 'u':
			r, n, err := parseUnicodeEscape(body[i+1:])
			if err != nil {
				return "", err
			}
			i += n
			if utf16.IsSurrogate(r) && strings.HasPrefix(body[i+1:], `\u`) {
				if low, m, err := parseUnicodeEscape(body[i+3:]); err == nil {
					if pair := utf16.DecodeRune(r, low); pair != utf8.RuneError {
						r = pair
						i += 2 + m
					}
				}
			}
			b.WriteRune(r)
		default:
			b.WriteByte(e)
		}
	}

	return b.String(), nil
}

// parseUnicodeEscape decodes the part of a \u escape after the 'u' and
// reports how many bytes it consumed.
func parseUnicodeEscape(s string) (rune, int, error) {
	if strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 0 {
			return 0, 0, fmt.Errorf("invalid literal: unterminated \\u{ escape")
		}
		v, err := strconv.ParseUint(s[1:end], 16, 32)
		if err != nil || v > utf8.MaxRune {
			return 0, 0, fmt.Errorf("invalid literal: bad \\u{} escape %q", s[:end+1])
		}
		return rune(v), end + 1, nil
	}

	if len(s) < 4 {
		return 0, 0, fmt.Errorf("invalid literal: short \\u escape")
	}
	v, err := strconv.ParseUint(s[:4], 16, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid literal: bad \\u escape: %w", err)
	}
	return rune(v), 4, nil
}

func truncate(s string) string {
	const limit = 32
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
