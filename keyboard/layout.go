package keyboard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/poke/internal/log"
)

// Built-in layout names.
const (
	LayoutPoke43       = "poke43"
	LayoutTextastic    = "textastic"
	LayoutEnUsQwerty   = "en_us_qwerty"
	LayoutBgBgPhonetic = "bg_bg_phonetic"
)

// KeyDef is the declarative form of a key, as written in layout files.
// Slot maps are keyed by direction number (0 = tap).
type KeyDef struct {
	Role     Role           `yaml:"role"`
	Text     map[int]string `yaml:"text,omitempty"`
	Command  map[int]string `yaml:"command,omitempty"`
	Hint     map[int]string `yaml:"hint,omitempty"`
	Dispatch string         `yaml:"dispatch,omitempty"`
	Hints    string         `yaml:"hints,omitempty"`
}

// Build resolves a definition into a Key, applying role defaults to the
// slots it leaves empty.
func (d KeyDef) Build() (Key, error) {
	k := Key{Role: d.Role}
	for _, slots := range []struct {
		src map[int]string
		dst *[NumDirections]string
		tag string
	}{
		{d.Text, &k.Text, "text"},
		{d.Command, &k.Command, "command"},
		{d.Hint, &k.Hint, "hint"},
	} {
		for i, v := range slots.src {
			if !Direction(i).Valid() {
				return Key{}, fmt.Errorf("%s key: %s slot %d out of range [0, %d]", d.Role, slots.tag, i, NumDirections-1)
			}
			slots.dst[i] = v
		}
	}

	st := d.Role.styles()
	k.Dispatch, k.Hints = st.dispatch, st.hints
	if d.Dispatch != "" {
		s, ok := ParseDispatchStyle(d.Dispatch)
		if !ok {
			return Key{}, fmt.Errorf("%s key: unknown dispatch style %q", d.Role, d.Dispatch)
		}
		k.Dispatch = s
	}
	if d.Hints != "" {
		s, ok := ParseHintStyle(d.Hints)
		if !ok {
			return Key{}, fmt.Errorf("%s key: unknown hint style %q", d.Role, d.Hints)
		}
		k.Hints = s
	}

	d.Role.applyDefaults(&k)
	return k, nil
}

// MarshalYAML writes the role by name.
func (r Role) MarshalYAML() (any, error) { return r.String(), nil }

// UnmarshalYAML reads the role by name.
func (r *Role) UnmarshalYAML(n *yaml.Node) error {
	var name string
	if err := n.Decode(&name); err != nil {
		return err
	}
	role, ok := ParseRole(name)
	if !ok {
		return fmt.Errorf("line %d: unknown key role %q", n.Line, name)
	}
	*r = role
	return nil
}

// Layout is a named block of key rows. Language layouts also carry SymRows,
// shown instead of Rows while the symbol block is hidden.
type Layout struct {
	Name    string     `yaml:"name"`
	Rows    [][]KeyDef `yaml:"rows"`
	SymRows [][]KeyDef `yaml:"sym_rows,omitempty"`
}

// Layouts is the full set a keyboard can switch between. Order is the
// cycling order.
type Layouts struct {
	Symbol []Layout   `yaml:"symbol,omitempty"`
	Lang   []Layout   `yaml:"lang,omitempty"`
	Custom [][]KeyDef `yaml:"custom,omitempty"`
}

// Merge overlays o: layouts with a known name replace the existing one in
// place, new names are appended, and a non-empty custom block replaces the
// current one.
func (l *Layouts) Merge(o Layouts) {
	l.Symbol = mergeLayouts(l.Symbol, o.Symbol)
	l.Lang = mergeLayouts(l.Lang, o.Lang)
	if len(o.Custom) > 0 {
		l.Custom = o.Custom
	}
}

func mergeLayouts(base, over []Layout) []Layout {
	out := append([]Layout(nil), base...)
	for _, o := range over {
		replaced := false
		for i := range out {
			if out[i].Name == o.Name {
				out[i] = o
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, o)
		}
	}
	return out
}

// index returns the position of name in ls, or -1.
func index(ls []Layout, name string) int {
	for i, l := range ls {
		if l.Name == name {
			return i
		}
	}
	return -1
}

// Has reports whether a symbol or language layout called name exists.
func (l Layouts) Has(name string) bool {
	return index(l.Symbol, name) >= 0 || index(l.Lang, name) >= 0
}

// ParseLayouts decodes a YAML layout file.
func ParseLayouts(data []byte) (Layouts, error) {
	var l Layouts
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layouts{}, fmt.Errorf("parsing layouts: %w", err)
	}
	for _, set := range [][]Layout{l.Symbol, l.Lang} {
		for i, lay := range set {
			if lay.Name == "" {
				return Layouts{}, fmt.Errorf("parsing layouts: layout %d has no name", i)
			}
		}
	}
	return l, nil
}

// LoadLayoutsFile returns the built-in layouts merged with those in path.
func LoadLayoutsFile(path string) (Layouts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layouts{}, fmt.Errorf("reading layouts: %w", err)
	}
	extra, err := ParseLayouts(data)
	if err != nil {
		return Layouts{}, err
	}
	l := DefaultLayouts()
	l.Merge(extra)
	log.Debug(log.CatKeyboard, "Loaded layouts", "path", path,
		"symbol", len(l.Symbol), "lang", len(l.Lang))
	return l, nil
}

// MarshalLayouts encodes l as YAML.
func MarshalLayouts(l Layouts) ([]byte, error) {
	return yaml.Marshal(l)
}

func buildRows(defs [][]KeyDef) ([][]Key, error) {
	rows := make([][]Key, 0, len(defs))
	for r, row := range defs {
		keys := make([]Key, 0, len(row))
		for c, d := range row {
			k, err := d.Build()
			if err != nil {
				return nil, fmt.Errorf("row %d key %d: %w", r, c, err)
			}
			keys = append(keys, k)
		}
		rows = append(rows, keys)
	}
	return rows, nil
}
