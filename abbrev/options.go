package abbrev

import (
	"strings"

	"github.com/iw2rmb/poke/field"
)

// Style selects how void elements such as <br> are closed.
type Style uint8

const (
	StyleHTML  Style = iota // <br>
	StyleXHTML              // <br />
	StyleXML                // <br/>
)

func (s Style) String() string {
	switch s {
	case StyleHTML:
		return "html"
	case StyleXHTML:
		return "xhtml"
	case StyleXML:
		return "xml"
	default:
		return "unknown"
	}
}

// ParseStyle maps a config name to a Style.
func ParseStyle(name string) (Style, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "html":
		return StyleHTML, true
	case "xhtml", "":
		return StyleXHTML, true
	case "xml":
		return StyleXML, true
	default:
		return StyleXHTML, false
	}
}

func (s Style) closeVoid() string {
	switch s {
	case StyleHTML:
		return ">"
	case StyleXML:
		return "/>"
	default:
		return " />"
	}
}

// Options controls expansion output.
type Options struct {
	// Field renders a tab stop. Defaults to field.CreateToken.
	Field field.TokenFunc
	// Indent is one nesting level. Defaults to two spaces.
	Indent      string
	SelfClosing Style
	// Snippets are matched against the whole abbreviation before it is
	// parsed. Bodies use ${N:placeholder} fields and may span lines. They
	// take precedence over the built-in snippets.
	Snippets map[string]string
}

func (o Options) withDefaults() Options {
	if o.Field == nil {
		o.Field = field.CreateToken
	}
	if o.Indent == "" {
		o.Indent = "  "
	}
	return o
}

var builtinSnippets = map[string]string{
	"!": strings.Join([]string{
		"<!DOCTYPE html>",
		`<html lang="${1:en}">`,
		"<head>",
		`  <meta charset="UTF-8">`,
		`  <meta name="viewport" content="width=device-width, initial-scale=1.0">`,
		"  <title>${2:Document}</title>",
		"</head>",
		"<body>",
		"  ${3}",
		"</body>",
		"</html>",
	}, "\n"),
	"lorem": "Lorem ipsum dolor sit amet, consectetur adipisicing elit.",
}

func (o Options) snippet(abbr string) (string, bool) {
	if s, ok := o.Snippets[abbr]; ok {
		return s, true
	}
	s, ok := builtinSnippets[abbr]
	return s, ok
}
