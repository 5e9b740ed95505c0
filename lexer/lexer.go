package lexer

import (
	"strings"

	"github.com/pkg/errors"
)

type lexType uint8

const (
	IDENTIFIER lexType = iota
	KEYWORD
	NUMBER
	EOL
	EOF
)

func (t lexType) String() string {
	switch t {
	case IDENTIFIER:
		return "IDENTIFIER"
	case KEYWORD:
		return "KEYWORD"
	case NUMBER:
		return "NUMBER"
	case EOL:
		return "EOL"
	case EOF:
		return "EOF"
	}
	return "UNKNOWN"
}

type Item struct {
	Type lexType
	Val  string
	Line int
}

// Lex splits an IntList script into items. Every non-empty line is
// terminated by an EOL item, and the result always ends with EOF.
func Lex(inputFullSource string) ([]Item, error) {
	var res []Item

	for line, input := range strings.Split(inputFullSource, "\n") {

		line = line + 1 // 1-indexed, like editors
		lineStart := len(res)

		i := 0
		for i < len(input) {

			// Comment, until end of line
			if input[i] == '/' && i+1 < len(input) && input[i+1] == '/' {
				break
			}

			// NAME
			// Consists of a-z, A-Z, 0-9 and _, must start with a letter
			if isLetter(input[i]) {
				name := ""

				for i < len(input) && (isLetter(input[i]) || isDigit(input[i]) || input[i] == '_') {
					name += string(input[i])
					i++
				}

				if _, ok := keywords[name]; ok {
					res = append(res, Item{Type: KEYWORD, Val: name, Line: line})
				} else {
					res = append(res, Item{Type: IDENTIFIER, Val: name, Line: line})
				}

				continue
			}

			// NUMBER
			// 0-9, optionally prefixed by a minus sign
			if isDigit(input[i]) || (input[i] == '-' && i+1 < len(input) && isDigit(input[i+1])) {
				val := string(input[i])
				i++
				for i < len(input) && isDigit(input[i]) {
					val += string(input[i])
					i++
				}
				res = append(res, Item{Type: NUMBER, Val: val, Line: line})
				continue
			}

			// Whitespace (ignore)
			if isSpace(input[i]) {
				i++
				continue
			}

			return nil, errors.Errorf("line %d: unexpected char %q", line, input[i])
		}

		if len(res) > lineStart {
			res = append(res, Item{Type: EOL, Line: line})
		}
	}

	res = append(res, Item{Type: EOF})

	return res, nil
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
