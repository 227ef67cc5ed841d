package parse

import (
	"strconv"

	"github.com/ghislainb/fieldexpr/internal/expr"
)

// Expression parses input and returns the built tree. Construction rules
// run during parsing, so sentinel algebra is already applied to the
// returned operand; errors are either ParseError (syntax) or BuildError
// (division by the sentinel, unknown call name, arity).
func Expression(input string) (expr.Operand, error) {
	tokens, err := lex(input)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	o, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Type != TokenEOF {
		return nil, errorf(tok.Pos, "unexpected trailing input %q", tok.Text)
	}
	return o, nil
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) peek() Token { return p.tokens[p.pos] }

func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Type != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expect(tt TokenType, what string) (Token, error) {
	tok := p.next()
	if tok.Type != tt {
		return Token{}, errorf(tok.Pos, "expected %s, got %q", what, tok.Text)
	}
	return tok, nil
}

func (p *parser) parseExpr() (expr.Operand, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().Type {
		case TokenPlus:
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = expr.Add(left, right)
		case TokenMinus:
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = expr.Sub(left, right)
		default:
			return left, nil
		}
	}
}

func (p *parser) parseTerm() (expr.Operand, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().Type {
		case TokenStar:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = expr.Mul(left, right)
		case TokenSlash:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left, err = expr.Div(left, right)
			if err != nil {
				return nil, err
			}
		default:
			return left, nil
		}
	}
}

func (p *parser) parseUnary() (expr.Operand, error) {
	switch p.peek().Type {
	case TokenPlus:
		p.next()
		o, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return expr.Pos(o), nil
	case TokenMinus:
		p.next()
		o, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return expr.Neg(o), nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (expr.Operand, error) {
	tok := p.next()
	switch tok.Type {
	case TokenNumber:
		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, errorf(tok.Pos, "bad number %q", tok.Text)
		}
		return expr.Wrap(f), nil
	case TokenNull:
		return expr.NullOperand, nil
	case TokenIdent:
		switch p.peek().Type {
		case TokenLParen:
			p.next()
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			return expr.Apply(tok.Text, args...)
		case TokenDotLParen:
			p.next()
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			return expr.Broadcast(tok.Text, args...)
		}
		// Bare identifier: symbol leaf, resolved by the materializer.
		return expr.Wrap(tok.Text), nil
	case TokenLParen:
		o, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen, `")"`); err != nil {
			return nil, err
		}
		return o, nil
	}
	return nil, errorf(tok.Pos, "unexpected token %q", tok.Text)
}

// parseArgs parses a comma-separated argument list up to the closing
// paren. The opening paren has already been consumed.
func (p *parser) parseArgs() ([]any, error) {
	var args []any
	if p.peek().Type == TokenRParen {
		p.next()
		return args, nil
	}
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		tok := p.next()
		switch tok.Type {
		case TokenComma:
			continue
		case TokenRParen:
			return args, nil
		default:
			return nil, errorf(tok.Pos, `expected "," or ")", got %q`, tok.Text)
		}
	}
}
