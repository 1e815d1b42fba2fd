package ast

import (
	"fmt"

	multierror "github.com/hashicorp/go-multierror"
)

// ============================================================================
// This file contains:
// Lexing (string -> []token) for method selector expressions
// ============================================================================
//
// See parser.go for a formal grammar and external links.

type tokenKind int

const (
	colon tokenKind = iota // ':'
	comma                  // ','
	plus                   // '+'
	or                     // '|'

	bang // '!' on its own, prefix negation

	bangColon           // '!:'
	tildeColon          // '~:'
	bangTildeColon      // '!~:'
	startTildeColon     // '<~:'
	bangStartTildeColon // '!<~:'
	tildeEndColon       // '~>:'
	bangTildeEndColon   // '!~>:'
	matchTildeColon     // '=~:'
	bangMatchTildeColon // '!=~:'

	parenOpen  // '('
	parenClose // ')'

	str // '"foo"'

	filterField // 'name', 'returns'
	flagField   // 'public', 'static'
	identifier  // any other bare word

	eof
)

func (tk tokenKind) String() string {
	switch tk {
	case colon:
		return "colon"
	case comma:
		return "comma"
	case plus:
		return "plus"
	case or:
		return "or"
	case bang:
		return "bang"
	case bangColon:
		return "bangColon"
	case tildeColon:
		return "tildeColon"
	case bangTildeColon:
		return "bangTildeColon"
	case startTildeColon:
		return "startTildeColon"
	case bangStartTildeColon:
		return "bangStartTildeColon"
	case tildeEndColon:
		return "tildeEndColon"
	case bangTildeEndColon:
		return "bangTildeEndColon"
	case matchTildeColon:
		return "matchTildeColon"
	case bangMatchTildeColon:
		return "bangMatchTildeColon"
	case parenOpen:
		return "parenOpen"
	case parenClose:
		return "parenClose"
	case str:
		return "str"
	case filterField:
		return "filterField"
	case flagField:
		return "flagField"
	case identifier:
		return "identifier"
	case eof:
		return "eof"
	default:
		return fmt.Sprintf("Unspecified: %d", tk)
	}
}

// ============================================================================
// Lexer/Scanner
//
// Based on the Scanner class in Chapter 4: Scanning of Crafting Interpreters by
// Robert Nystrom
// ============================================================================

type token struct {
	kind tokenKind
	s    string
}

func (t token) String() string {
	return fmt.Sprintf("%s:%s", t.kind, t.s)
}

type scanner struct {
	source string
	tokens []token
	errors []error

	fields     map[string]*Field
	flagFields map[string]*Field

	lexemeStartByte int
	nextByte        int
}

func (s *scanner) scanTokens() {
	for !s.atEnd() {
		s.lexemeStartByte = s.nextByte
		s.scanToken()
	}

	s.tokens = append(s.tokens, token{kind: eof})
}

func (s scanner) atEnd() bool {
	return s.nextByte >= len(s.source)
}

// advance returns a byte because we only accept ASCII, which has to fit in a
// byte
func (s *scanner) advance() byte {
	b := s.source[s.nextByte]
	s.nextByte += 1
	return b
}

func (s *scanner) match(expected byte) bool {
	if s.atEnd() {
		return false
	}
	if s.source[s.nextByte] != expected {
		return false
	}
	s.nextByte += 1
	return true
}

func (s *scanner) addToken(kind tokenKind) {
	lexemeString := s.source[s.lexemeStartByte:s.nextByte]
	switch kind {
	// Eliminate surrounding " characters
	case str:
		lexemeString = lexemeString[1 : len(lexemeString)-1]
	}

	s.tokens = append(s.tokens, token{
		kind: kind,
		s:    lexemeString,
	})
}

func (s *scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.source[s.nextByte]
}

func (s *scanner) scanToken() {
	c := s.advance()
	switch c {
	case ':':
		s.addToken(colon)
	case ',':
		s.addToken(comma)
	case '+':
		s.addToken(plus)
	case '|':
		s.addToken(or)
	case '!':
		if s.match(':') {
			s.addToken(bangColon)
		} else if s.match('~') {
			if s.match(':') {
				s.addToken(bangTildeColon)
			} else if s.match('>') {
				if s.match(':') {
					s.addToken(bangTildeEndColon)
				} else {
					s.errors = append(s.errors, fmt.Errorf("Position %d: Unexpected '>'", s.nextByte-1))
				}
			} else {
				s.errors = append(s.errors, fmt.Errorf("Position %d: Unexpected '~'", s.nextByte-1))
			}
		} else if s.match('<') {
			if s.match('~') {
				if s.match(':') {
					s.addToken(bangStartTildeColon)
				} else {
					s.errors = append(s.errors, fmt.Errorf("Position %d: Unexpected '~'", s.nextByte-1))
				}
			} else {
				s.errors = append(s.errors, fmt.Errorf("Position %d: Unexpected '<'", s.nextByte-1))
			}
		} else if s.match('=') {
			if s.match('~') {
				if s.match(':') {
					s.addToken(bangMatchTildeColon)
				} else {
					s.errors = append(s.errors, fmt.Errorf("Position %d: Unexpected '~'", s.nextByte-1))
				}
			} else {
				s.errors = append(s.errors, fmt.Errorf("Position %d: Unexpected '='", s.nextByte-1))
			}
		} else {
			// A lone '!' is the negation prefix. Whether it is legal here
			// is the parser's call.
			s.addToken(bang)
		}
	case '(':
		s.addToken(parenOpen)
	case ')':
		s.addToken(parenClose)
	case '<':
		if s.match('~') {
			if s.match(':') {
				s.addToken(startTildeColon)
			} else {
				s.errors = append(s.errors, fmt.Errorf("Position %d: Unexpected '~'", s.nextByte-1))
			}
		} else {
			s.errors = append(s.errors, fmt.Errorf("Position %d: Unexpected '<'", s.nextByte-1))
		}
	case '~':
		if s.match(':') {
			s.addToken(tildeColon)
		} else if s.match('>') {
			if s.match(':') {
				s.addToken(tildeEndColon)
			} else {
				s.errors = append(s.errors, fmt.Errorf("Position %d: Unexpected '>'", s.nextByte-1))
			}
		} else {
			s.errors = append(s.errors, fmt.Errorf("Position %d: Unexpected '~'", s.nextByte-1))
		}
	case '=':
		if s.match('~') {
			if s.match(':') {
				s.addToken(matchTildeColon)
			} else {
				s.errors = append(s.errors, fmt.Errorf("Position %d: Unexpected '~'", s.nextByte-1))
			}
		} else {
			s.errors = append(s.errors, fmt.Errorf("Position %d: Unexpected '='", s.nextByte-1))
		}
	// strings
	case '"':
		s.string()
	// Ignore whitespace chars outside of "".
	case ' ', '\t', '\n', '\r':
		break
	default:
		// identifiers
		//
		// We can keep it simple and not _force_ the first character to be a
		// non-number because we don't need numbers in this language. Every
		// value, argcount included, is a quoted string.
		if isIdentifierChar(c) {
			s.identifier()
			break
		}

		s.errors = append(s.errors, fmt.Errorf("unexpected character/byte at position %d. Please avoid Unicode.", s.nextByte-1))
	}
}

// isIdentifierChar matches the characters of the bare words in the language:
// field names and flag keywords. Type and method names carrying richer
// characters ('.', '$', '<') always travel inside quoted strings.
func isIdentifierChar(b byte) bool {
	return (b >= '0' && b <= '9') || // 0-9
		(b >= 'A' && b <= 'Z') || // A-Z
		(b >= 'a' && b <= 'z') || // a-z
		b == '-' || // hyphens tolerated so near-miss words lex as one token
		b == '_'
}

func (s *scanner) string() {
	for s.peek() != '"' && !s.atEnd() {
		s.advance()
	}

	if s.atEnd() {
		s.errors = append(s.errors, fmt.Errorf("unterminated string starting at %d", s.lexemeStartByte))
		return
	}

	// Consume closing '"'
	s.advance()

	s.addToken(str)
}

func (s *scanner) identifier() {
	for isIdentifierChar(s.peek()) {
		s.advance()
	}

	tokenText := s.source[s.lexemeStartByte:s.nextByte]
	if _, ok := s.fields[tokenText]; ok {
		s.addToken(filterField)
	} else if _, ok := s.flagFields[tokenText]; ok {
		s.addToken(flagField)
	} else {
		s.addToken(identifier)
	}
}

// lex will generate a slice of tokens provided a raw string and the filter field definitions
func lex(raw string, fields map[string]*Field, flagFields map[string]*Field) ([]token, error) {
	s := scanner{
		source:     raw,
		fields:     fields,
		flagFields: flagFields,
	}
	s.scanTokens()

	if len(s.errors) > 0 {
		return s.tokens, multierror.Append(nil, s.errors...)
	}

	return s.tokens, nil
}
