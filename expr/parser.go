// SPDX-License-Identifier: MIT

package expr

import "strings"

// Limits applied to untrusted input before and during parsing.
const (
	// MaxSourceLen bounds the formula length in bytes.
	MaxSourceLen = 4096

	// MaxDepth bounds nesting (parentheses, unary and power chains, calls) so that a
	// hostile formula cannot exhaust the stack.
	MaxDepth = 200
)

// parser is a recursive-descent parser over a lazily lexed token stream.
type parser struct {
	lex   lexer
	tok   token // current lookahead
	depth int
}

// parse converts src into a tree or returns the first *ParseError /
// *UnsafeExpressionError met in reading order.
func parse(src string) (Node, error) {
	if len(src) > MaxSourceLen {
		return nil, parseErrorf(MaxSourceLen, "expression longer than %d bytes", MaxSourceLen)
	}
	if strings.TrimSpace(src) == "" {
		return nil, parseErrorf(0, "empty expression")
	}

	p := &parser{lex: lexer{src: src}}
	if err := p.advance(); err != nil {
		return nil, err
	}
	root, err := p.comparison()
	if err != nil {
		return nil, err
	}
	switch p.tok.kind {
	case tokEOF:
		return root, nil
	case tokRParen:
		return nil, parseErrorf(p.tok.pos, "unbalanced parentheses: unexpected ')'")
	default:
		return nil, parseErrorf(p.tok.pos, "unexpected %q after complete expression", p.tok.text)
	}
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

// enter/leave track recursion depth.
func (p *parser) enter() error {
	p.depth++
	if p.depth > MaxDepth {
		return parseErrorf(p.tok.pos, "expression nested deeper than %d levels", MaxDepth)
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

func (p *parser) isOp(ops ...string) bool {
	if p.tok.kind != tokOp {
		return false
	}
	for _, op := range ops {
		if p.tok.text == op {
			return true
		}
	}
	return false
}

// comparison := additive (cmp additive)*
func (p *parser) comparison() (Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.additive()
	if err != nil {
		return nil, err
	}
	for p.isOp("<", "<=", ">", ">=", "==", "!=") {
		op := p.tok.text
		if err = p.advance(); err != nil {
			return nil, err
		}
		right, err := p.additive()
		if err != nil {
			return nil, err
		}
		left = comparison{op: op, l: left, r: right}
	}
	return left, nil
}

// additive := term (("+" | "-") term)*
func (p *parser) additive() (Node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.isOp("+", "-") {
		op := p.tok.text[0]
		if err = p.advance(); err != nil {
			return nil, err
		}
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = binary{op: op, l: left, r: right}
	}
	return left, nil
}

// term := unary (("*" | "/") unary)*
func (p *parser) term() (Node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.isOp("*", "/") {
		op := p.tok.text[0]
		if err = p.advance(); err != nil {
			return nil, err
		}
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = binary{op: op, l: left, r: right}
	}
	return left, nil
}

// unary := ("+" | "-") unary | power
func (p *parser) unary() (Node, error) {
	if !p.isOp("+", "-") {
		return p.power()
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	minus := p.tok.text == "-"
	if err := p.advance(); err != nil {
		return nil, err
	}
	arg, err := p.unary()
	if err != nil {
		return nil, err
	}
	if minus {
		return negation{arg: arg}, nil
	}
	return arg, nil
}

// power := primary (("^" | "**") unary)?
func (p *parser) power() (Node, error) {
	base, err := p.primary()
	if err != nil {
		return nil, err
	}
	if !p.isOp("^", "**") {
		return base, nil
	}
	if err = p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	if err = p.advance(); err != nil {
		return nil, err
	}
	exp, err := p.unary()
	if err != nil {
		return nil, err
	}
	return binary{op: '^', l: base, r: exp}, nil
}

// primary := number | name | call | "(" comparison ")"
func (p *parser) primary() (Node, error) {
	t := p.tok
	switch t.kind {
	case tokNumber:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return number{t.num}, nil
	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.comparison()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokRParen {
			return nil, parseErrorf(p.tok.pos, "unbalanced parentheses: missing ')' for '(' at column %d", t.pos+1)
		}
		if err = p.advance(); err != nil {
			return nil, err
		}
		return inner, nil
	case tokIdent:
		return p.name()
	case tokEOF:
		return nil, parseErrorf(t.pos, "unexpected end of expression")
	default:
		return nil, parseErrorf(t.pos, "unexpected %q", t.text)
	}
}

// name resolves an identifier against the allow-list. Unknown names are
// rejected before their arguments are even looked at.
func (p *parser) name() (Node, error) {
	t := p.tok
	name, ok := resolve(t.text)
	if !ok {
		return nil, &UnsafeExpressionError{Name: t.text, Column: t.pos + 1}
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	isCall := p.tok.kind == tokLParen

	switch {
	case name == nameVariable:
		if isCall {
			return nil, parseErrorf(p.tok.pos, "%s is not a function", name)
		}
		return variable{}, nil
	}
	if v, ok := constants[name]; ok {
		if isCall {
			return nil, parseErrorf(p.tok.pos, "%s is not a function", name)
		}
		return constant{name: name, v: v}, nil
	}

	// functions from here on
	if !isCall {
		return nil, parseErrorf(t.pos, "function %s must be called with arguments", name)
	}
	args, err := p.arguments()
	if err != nil {
		return nil, err
	}

	switch name {
	case namePow:
		if len(args) != 2 {
			return nil, parseErrorf(t.pos, "pow takes 2 arguments, got %d", len(args))
		}
		return binary{op: '^', l: args[0], r: args[1]}, nil
	case nameLog:
		switch len(args) {
		case 1:
			return call1(nameLog, args[0]), nil
		case 2:
			// log(u, base) = log(u) / log(base)
			return binary{op: '/', l: call1(nameLog, args[0]), r: call1(nameLog, args[1])}, nil
		}
		return nil, parseErrorf(t.pos, "log takes 1 or 2 arguments, got %d", len(args))
	}
	if len(args) != 1 {
		return nil, parseErrorf(t.pos, "%s takes 1 argument, got %d", name, len(args))
	}
	return call1(name, args[0]), nil
}

// arguments parses "(" comparison ("," comparison)* ")" with the lookahead on "(".
func (p *parser) arguments() ([]Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	open := p.tok.pos
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.tok.kind == tokRParen {
		return nil, parseErrorf(p.tok.pos, "empty argument list")
	}

	var args []Node
	for {
		arg, err := p.comparison()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		switch p.tok.kind {
		case tokComma:
			if err = p.advance(); err != nil {
				return nil, err
			}
		case tokRParen:
			if err = p.advance(); err != nil {
				return nil, err
			}
			return args, nil
		default:
			return nil, parseErrorf(p.tok.pos, "unbalanced parentheses: missing ')' for call at column %d", open+1)
		}
	}
}

// resolve strips an optional module qualifier and reports whether the
// remaining name is the variable, a constant, pow or an allow-listed function.
func resolve(ident string) (string, bool) {
	name := ident
	if i := strings.IndexByte(ident, '.'); i >= 0 {
		if !qualifiers[ident[:i]] {
			return "", false
		}
		name = ident[i+1:]
		if strings.IndexByte(name, '.') >= 0 {
			return "", false
		}
	}
	if name == nameVariable || name == namePow {
		return name, true
	}
	if _, ok := constants[name]; ok {
		return name, true
	}
	if _, ok := functions[name]; ok {
		return name, true
	}
	return "", false
}
