package parse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// TokenType identifies a lexical token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenNumber
	TokenIdent
	TokenNull
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenLParen
	TokenRParen
	TokenComma
	TokenDotLParen // ".(" - broadcast call
)

// Token is one lexical token with its source position.
type Token struct {
	Type TokenType
	Text string
	Pos  int
}

// ParseError reports a lexical or syntactic problem with its byte
// offset in the input.
type ParseError struct {
	Pos     int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Message)
}

func errorf(pos int, format string, args ...any) *ParseError {
	return &ParseError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// lex tokenizes the whole input up front. Expressions are short; there is
// no need for a streaming lexer.
func lex(input string) ([]Token, error) {
	var tokens []Token
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '+':
			tokens = append(tokens, Token{TokenPlus, "+", i})
			i++
		case c == '-':
			tokens = append(tokens, Token{TokenMinus, "-", i})
			i++
		case c == '*':
			tokens = append(tokens, Token{TokenStar, "*", i})
			i++
		case c == '/':
			tokens = append(tokens, Token{TokenSlash, "/", i})
			i++
		case c == '(':
			tokens = append(tokens, Token{TokenLParen, "(", i})
			i++
		case c == ')':
			tokens = append(tokens, Token{TokenRParen, ")", i})
			i++
		case c == ',':
			tokens = append(tokens, Token{TokenComma, ",", i})
			i++
		case c == '.' && i+1 < len(input) && input[i+1] == '(':
			tokens = append(tokens, Token{TokenDotLParen, ".(", i})
			i += 2
		case c >= '0' && c <= '9' || c == '.':
			start := i
			for i < len(input) && (input[i] >= '0' && input[i] <= '9' || input[i] == '.') {
				i++
			}
			text := input[start:i]
			if _, err := strconv.ParseFloat(text, 64); err != nil {
				return nil, errorf(start, "bad number %q", text)
			}
			tokens = append(tokens, Token{TokenNumber, text, start})
		case isIdentStart(rune(c)):
			start := i
			for i < len(input) && isIdentPart(rune(input[i])) {
				i++
			}
			text := input[start:i]
			if strings.EqualFold(text, "null") {
				tokens = append(tokens, Token{TokenNull, text, start})
			} else {
				tokens = append(tokens, Token{TokenIdent, text, start})
			}
		default:
			return nil, errorf(i, "unexpected character %q", string(c))
		}
	}
	tokens = append(tokens, Token{TokenEOF, "", len(input)})
	return tokens, nil
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
