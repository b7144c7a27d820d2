package abbrev

import (
	"fmt"
	"unicode"
)

type attr struct {
	name  string
	value string
}

// node is one parsed abbreviation item. Groups only hold children.
type node struct {
	name      string
	id        string
	classes   []string
	attrs     []attr
	text      string
	hasText   bool
	repeat    int
	repeatPos int
	group     bool
	selfClose bool
	parent    *node
	children  []*node
}

func (n *node) isText() bool {
	return n.hasText && n.name == "" && n.id == "" && len(n.classes) == 0 && len(n.attrs) == 0
}

func (n *node) isEmpty() bool {
	return n.name == "" && n.id == "" && len(n.classes) == 0 && len(n.attrs) == 0 &&
		!n.hasText && !n.selfClose
}

type parser struct {
	abbr string
	src  []rune
	pos  int
}

func parse(abbr string) (*node, error) {
	p := &parser{abbr: abbr, src: []rune(abbr)}
	root, err := p.sequence(false)
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, p.errorf(p.pos, "unexpected %q", p.peek())
	}
	return root, nil
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) eat(r rune) bool {
	if !p.eof() && p.src[p.pos] == r {
		p.pos++
		return true
	}
	return false
}

func (p *parser) errorf(pos int, format string, args ...any) error {
	return &SyntaxError{Abbr: p.abbr, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// sequence parses items joined by '>', '+' and '^'. A nested sequence stops
// before ')'.
func (p *parser) sequence(nested bool) (*node, error) {
	root := &node{group: true}
	ctx := root
	for {
		item, err := p.item()
		if err != nil {
			return nil, err
		}
		item.parent = ctx
		ctx.children = append(ctx.children, item)

		if p.eof() || (nested && p.peek() == ')') {
			return root, nil
		}
		switch p.peek() {
		case '>':
			p.pos++
			ctx = item
		case '+':
			p.pos++
		case '^':
			for p.eat('^') {
				if ctx.parent != nil {
					ctx = ctx.parent
				}
			}
		default:
			return nil, p.errorf(p.pos, "unexpected %q", p.peek())
		}
	}
}

func (p *parser) item() (*node, error) {
	if p.peek() != '(' {
		return p.element()
	}

	start := p.pos
	p.pos++
	g, err := p.sequence(true)
	if err != nil {
		return nil, err
	}
	if !p.eat(')') {
		return nil, p.errorf(start, "unclosed group")
	}
	if p.peek() == '*' {
		if err := p.repeat(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (p *parser) element() (*node, error) {
	start := p.pos
	n := &node{name: p.ident(isNameRune)}
	for {
		switch p.peek() {
		case '.':
			p.pos++
			c := p.ident(isIdentRune)
			if c == "" {
				return nil, p.errorf(p.pos, "expected class name")
			}
			n.classes = append(n.classes, c)
		case '#':
			p.pos++
			id := p.ident(isIdentRune)
			if id == "" {
				return nil, p.errorf(p.pos, "expected id")
			}
			n.id = id
		case '[':
			if err := p.attributes(n); err != nil {
				return nil, err
			}
		case '{':
			if err := p.text(n); err != nil {
				return nil, err
			}
		case '*':
			if err := p.repeat(n); err != nil {
				return nil, err
			}
		case '/':
			p.pos++
			n.selfClose = true
		default:
			if n.isEmpty() {
				return nil, p.errorf(start, "expected element")
			}
			return n, nil
		}
	}
}

func (p *parser) ident(accept func(rune) bool) string {
	start := p.pos
	for !p.eof() && accept(p.peek()) {
		p.pos++
	}
	return string(p.src[start:p.pos])
}

func (p *parser) attributes(n *node) error {
	open := p.pos
	p.pos++
	for {
		for p.eat(' ') || p.eat('\t') {
		}
		if p.eof() {
			return p.errorf(open, "unclosed attribute list")
		}
		if p.eat(']') {
			return nil
		}

		name := p.ident(func(r rune) bool {
			return r != '=' && r != ']' && r != ' ' && r != '\t'
		})
		if name == "" {
			return p.errorf(p.pos, "expected attribute name")
		}
		a := attr{name: name}
		if p.eat('=') {
			v, err := p.attrValue()
			if err != nil {
				return err
			}
			a.value = v
		}
		n.attrs = append(n.attrs, a)
	}
}

func (p *parser) attrValue() (string, error) {
	q := p.peek()
	if q != '"' && q != '\'' {
		return p.ident(func(r rune) bool {
			return r != ']' && r != ' ' && r != '\t'
		}), nil
	}

	open := p.pos
	p.pos++
	start := p.pos
	for !p.eof() && p.peek() != q {
		p.pos++
	}
	if p.eof() {
		return "", p.errorf(open, "unterminated attribute value")
	}
	v := string(p.src[start:p.pos])
	p.pos++
	return v, nil
}

func (p *parser) text(n *node) error {
	open := p.pos
	p.pos++
	start := p.pos
	depth := 1
	for !p.eof() {
		switch p.peek() {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				n.text += string(p.src[start:p.pos])
				n.hasText = true
				p.pos++
				return nil
			}
		}
		p.pos++
	}
	return p.errorf(open, "unclosed text")
}

func (p *parser) repeat(n *node) error {
	star := p.pos
	p.pos++
	count := 0
	digits := 0
	for !p.eof() && p.peek() >= '0' && p.peek() <= '9' {
		count = count*10 + int(p.peek()-'0')
		digits++
		p.pos++
		if count > maxRepeat {
			return p.errorf(star, "repeat count over %d", maxRepeat)
		}
	}
	if digits == 0 {
		return p.errorf(p.pos, "expected repeat count")
	}
	if count == 0 {
		return p.errorf(star, "repeat count must be positive")
	}
	n.repeat = count
	n.repeatPos = star
	return nil
}

const maxRepeat = 1000

func isNameRune(r rune) bool {
	return r == '-' || r == ':' || r == '_' || r == '$' || r == '@' || r == '!' ||
		unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isIdentRune(r rune) bool {
	return r == '-' || r == ':' || r == '_' || r == '$' || r == '@' ||
		unicode.IsLetter(r) || unicode.IsDigit(r)
}
