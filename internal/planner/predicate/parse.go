package predicate

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokWord tokenKind = iota
	tokString
	tokOp
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// Parse compiles a WHERE-style expression into a predicate.
//
//	latitude >= 60.0
//	country = 'Italy' AND temperature > 12
//	(country = Italy OR country = Sweden) AND NOT latitude < 50
//
// AND binds tighter than OR. Literals may be bare words, numbers or quoted strings.
func Parse(expr string) (PredicateFunc, error) {
	toks, err := tokenize(expr)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	pred, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, fmt.Errorf("unexpected %q at position %d", t.text, t.pos)
	}
	return pred, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) keyword(kw string) bool {
	t := p.peek()
	if t.kind == tokWord && strings.EqualFold(t.text, kw) {
		p.pos++
		return true
	}
	return false
}

func (p *parser) parseOr() (PredicateFunc, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	preds := []PredicateFunc{left}
	for p.keyword("OR") {
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		preds = append(preds, right)
	}
	if len(preds) == 1 {
		return left, nil
	}
	return Or(preds...), nil
}

func (p *parser) parseAnd() (PredicateFunc, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	preds := []PredicateFunc{left}
	for p.keyword("AND") {
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		preds = append(preds, right)
	}
	if len(preds) == 1 {
		return left, nil
	}
	return And(preds...), nil
}

func (p *parser) parseUnary() (PredicateFunc, error) {
	if p.keyword("NOT") {
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Not(inner), nil
	}

	if p.peek().kind == tokLParen {
		p.next()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if t := p.next(); t.kind != tokRParen {
			return nil, fmt.Errorf("expected ')' at position %d", t.pos)
		}
		return inner, nil
	}

	return p.parseComparison()
}

func (p *parser) parseComparison() (PredicateFunc, error) {
	col := p.next()
	if col.kind != tokWord && col.kind != tokString {
		return nil, fmt.Errorf("expected column name at position %d", col.pos)
	}
	op := p.next()
	if op.kind != tokOp {
		return nil, fmt.Errorf("expected comparison operator after %q", col.text)
	}
	lit := p.next()
	if lit.kind != tokWord && lit.kind != tokString {
		return nil, fmt.Errorf("expected value after %q", op.text)
	}
	return Compare(col.text, op.text, lit.text)
}

func tokenize(s string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n':
			i++
		case c == '(':
			toks = append(toks, token{tokLParen, "(", i})
			i++
		case c == ')':
			toks = append(toks, token{tokRParen, ")", i})
			i++
		case c == '\'' || c == '"':
			end := strings.IndexByte(s[i+1:], c)
			if end < 0 {
				return nil, fmt.Errorf("unterminated string at position %d", i)
			}
			toks = append(toks, token{tokString, s[i+1 : i+1+end], i})
			i += end + 2
		case isOpChar(c):
			start := i
			for i < len(s) && isOpChar(s[i]) {
				i++
			}
			toks = append(toks, token{tokOp, s[start:i], start})
		default:
			start := i
			for i < len(s) && !isDelim(s[i]) {
				i++
			}
			toks = append(toks, token{tokWord, s[start:i], start})
		}
	}
	toks = append(toks, token{tokEOF, "", len(s)})
	return toks, nil
}

func isOpChar(c byte) bool {
	return c == '=' || c == '!' || c == '<' || c == '>'
}

func isDelim(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '(' || c == ')' || c == '\'' || c == '"' || isOpChar(c)
}
