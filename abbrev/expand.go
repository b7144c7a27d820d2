package abbrev

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/poke/field"
	"github.com/iw2rmb/poke/internal/log"
)

// Expander expands abbreviations with Expand. The zero value is ready to
// use.
type Expander struct{}

// Expand implements the editor's expander collaborator.
func (Expander) Expand(abbr string, opt Options) (string, error) {
	return Expand(abbr, opt)
}

// Expand turns abbr into markup. Snippets are tried first, then the
// abbreviation is parsed as element syntax: tag, .class, #id, [attr=value],
// {text}, '>' child, '+' sibling, '^' climb up, (group) and *N repetition
// with $ numbering. Empty attribute values and empty elements receive
// numbered fields rendered through opt.Field.
func Expand(abbr string, opt Options) (string, error) {
	abbr = strings.TrimSpace(abbr)
	if abbr == "" {
		return "", ErrNoAbbreviation
	}
	opt = opt.withDefaults()

	if body, ok := opt.snippet(abbr); ok {
		s, err := field.Parse(body)
		if err != nil {
			return "", fmt.Errorf("snippet %q: %w", abbr, err)
		}
		log.Debug(log.CatAbbrev, "snippet", "abbr", abbr, "fields", len(s.Fields))
		return field.Mark(s.Text, s.Fields, opt.Field), nil
	}

	root, err := parse(abbr)
	if err != nil {
		log.Debug(log.CatAbbrev, "parse failed", "abbr", abbr, "error", err)
		return "", err
	}

	if _, n := countNodes(root.children, maxNodes); n != nil {
		return "", &SyntaxError{Abbr: abbr, Pos: n.repeatPos, Msg: fmt.Sprintf("expands to over %d elements", maxNodes)}
	}

	r := &renderer{opt: opt}
	lines := r.nodes(expandNodes(root.children, 1, 1), "", 0)
	log.Debug(log.CatAbbrev, "expanded", "abbr", abbr, "lines", len(lines), "fields", r.next)
	return strings.Join(lines, "\n"), nil
}

const maxNodes = 10000

// countNodes returns how many elements nodes expand to. It stops at the
// first node that takes the count past limit and returns it.
func countNodes(nodes []*node, limit int) (int, *node) {
	total := 0
	for _, n := range nodes {
		sub, over := countNodes(n.children, limit)
		if over != nil {
			return sub, over
		}
		if !n.group {
			sub++
		}
		total += max(n.repeat, 1) * sub
		if total > limit {
			return total, n
		}
	}
	return total, nil
}

// expandNodes applies *N repetition and $ numbering, flattening groups.
// num and total come from the nearest repeated ancestor.
func expandNodes(nodes []*node, num, total int) []*node {
	var out []*node
	for _, n := range nodes {
		count := max(n.repeat, 1)
		for i := 1; i <= count; i++ {
			k, t := num, total
			if n.repeat > 0 {
				k, t = i, count
			}
			if n.group {
				out = append(out, expandNodes(n.children, k, t)...)
				continue
			}
			c := n.numbered(k, t)
			c.children = expandNodes(n.children, k, t)
			out = append(out, c)
		}
	}
	return out
}

func (n *node) numbered(k, total int) *node {
	c := &node{
		name:      number(n.name, k, total),
		id:        number(n.id, k, total),
		text:      number(n.text, k, total),
		hasText:   n.hasText,
		selfClose: n.selfClose,
	}
	for _, cls := range n.classes {
		c.classes = append(c.classes, number(cls, k, total))
	}
	for _, a := range n.attrs {
		c.attrs = append(c.attrs, attr{name: number(a.name, k, total), value: number(a.value, k, total)})
	}
	return c
}

// number replaces each run of '$' with k zero-padded to the run length.
// A run may be followed by @N to start counting at N and @- to count down.
func number(s string, k, total int) string {
	if !strings.Contains(s, "$") {
		return s
	}

	var sb strings.Builder
	rs := []rune(s)
	for i := 0; i < len(rs); {
		if rs[i] != '$' {
			sb.WriteRune(rs[i])
			i++
			continue
		}

		width := 0
		for i < len(rs) && rs[i] == '$' {
			width++
			i++
		}
		value, base, reverse := k, 1, false
		if i < len(rs) && rs[i] == '@' {
			j := i + 1
			if j < len(rs) && rs[j] == '-' {
				reverse = true
				j++
			}
			start := j
			for j < len(rs) && rs[j] >= '0' && rs[j] <= '9' {
				j++
			}
			if j > start {
				base, _ = strconv.Atoi(string(rs[start:j]))
			}
			i = j
		}
		if reverse {
			value = total - k + 1
		}
		value += base - 1

		digits := strconv.Itoa(value)
		if pad := width - len(digits); pad > 0 {
			sb.WriteString(strings.Repeat("0", pad))
		}
		sb.WriteString(digits)
	}
	return sb.String()
}

type renderer struct {
	opt  Options
	next int
}

func (r *renderer) field(placeholder string) string {
	r.next++
	return r.opt.Field(r.next, placeholder)
}

func (r *renderer) nodes(ns []*node, parent string, depth int) []string {
	var lines []string
	for _, n := range ns {
		lines = append(lines, r.node(n, parent, depth)...)
	}
	return lines
}

func (r *renderer) node(n *node, parent string, depth int) []string {
	ind := strings.Repeat(r.opt.Indent, depth)
	if n.isText() {
		return append([]string{ind + n.text}, r.nodes(n.children, parent, depth)...)
	}

	name := n.name
	if name == "" {
		name = implicitName(parent)
	}
	open := "<" + name + r.attributes(name, n)

	if len(n.children) == 0 && !n.hasText && (n.selfClose || voidElements[name]) {
		return []string{ind + open + r.opt.SelfClosing.closeVoid()}
	}
	closeTag := "</" + name + ">"

	if len(n.children) == 0 {
		inner := n.text
		if !n.hasText {
			inner = r.field("")
		}
		return []string{ind + open + ">" + inner + closeTag}
	}

	childInd := strings.Repeat(r.opt.Indent, depth+1)
	var body []string
	if n.hasText {
		body = append(body, childInd+n.text)
	}
	body = append(body, r.nodes(n.children, name, depth+1)...)

	if r.inline(n, body) {
		var sb strings.Builder
		for _, l := range body {
			sb.WriteString(strings.TrimPrefix(l, childInd))
		}
		return []string{ind + open + ">" + sb.String() + closeTag}
	}

	lines := make([]string, 0, len(body)+2)
	lines = append(lines, ind+open+">")
	lines = append(lines, body...)
	return append(lines, ind+closeTag)
}

// inline reports whether every child is inline-level and rendered on one
// line, in which case the element stays on a single line.
func (r *renderer) inline(n *node, body []string) bool {
	if len(body) != len(n.children)+boolInt(n.hasText) {
		return false
	}
	for _, c := range n.children {
		if c.isText() && len(c.children) == 0 {
			continue
		}
		if c.name == "" || !inlineElements[c.name] {
			return false
		}
	}
	width := 0
	for _, l := range body {
		width += utf8.RuneCountInString(l)
	}
	return width <= maxInlineWidth
}

const maxInlineWidth = 80

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (r *renderer) attributes(name string, n *node) string {
	var attrs []attr
	seen := map[string]int{}
	add := func(a attr) {
		if i, ok := seen[a.name]; ok {
			attrs[i] = a
			return
		}
		seen[a.name] = len(attrs)
		attrs = append(attrs, a)
	}

	for _, a := range defaultAttrs[name] {
		add(a)
	}
	if n.id != "" {
		add(attr{name: "id", value: n.id})
	}
	if len(n.classes) > 0 {
		add(attr{name: "class", value: strings.Join(n.classes, " ")})
	}
	for _, a := range n.attrs {
		add(a)
	}

	var sb strings.Builder
	for _, a := range attrs {
		value := a.value
		if value == "" {
			value = r.field("")
		}
		fmt.Fprintf(&sb, " %s=\"%s\"", a.name, value)
	}
	return sb.String()
}

func implicitName(parent string) string {
	switch parent {
	case "ul", "ol":
		return "li"
	case "table", "thead", "tbody", "tfoot":
		return "tr"
	case "tr":
		return "td"
	case "select", "optgroup":
		return "option"
	}
	if inlineElements[parent] {
		return "span"
	}
	return "div"
}

var voidElements = setOf(
	"area", "base", "br", "col", "embed", "hr", "img", "input",
	"link", "meta", "param", "source", "track", "wbr",
)

var inlineElements = setOf(
	"a", "abbr", "b", "bdi", "bdo", "br", "button", "cite", "code", "data",
	"dfn", "em", "i", "img", "input", "kbd", "label", "mark", "q", "s",
	"samp", "select", "small", "span", "strong", "sub", "sup", "textarea",
	"time", "u", "var",
)

var defaultAttrs = map[string][]attr{
	"a":      {{name: "href"}},
	"img":    {{name: "src"}, {name: "alt"}},
	"link":   {{name: "rel", value: "stylesheet"}, {name: "href"}},
	"form":   {{name: "action"}},
	"label":  {{name: "for"}},
	"input":  {{name: "type", value: "text"}},
	"iframe": {{name: "src"}},
}

func setOf(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}
