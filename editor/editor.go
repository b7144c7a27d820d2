package editor

import (
	"time"

	"github.com/iw2rmb/poke/abbrev"
	"github.com/iw2rmb/poke/buffer"
	"github.com/iw2rmb/poke/field"
)

// DefaultIndentUnit is inserted by smart space and smart newline.
const DefaultIndentUnit = "  "

// Config configures an Editor.
type Config struct {
	// Initial document text.
	Text string

	// IndentUnit is one indentation level. Default: DefaultIndentUnit.
	IndentUnit string

	// Forwarded to buffer.New.
	Buffer buffer.Options

	// Expansion options. Field is always replaced with field.CreateToken so
	// the result can be parsed back; an empty Indent takes IndentUnit.
	Abbrev abbrev.Options

	// EvalTimeout bounds a single script evaluation. Default:
	// DefaultEvalTimeout.
	EvalTimeout time.Duration
}

// Extractor locates an abbreviation that ends at col on line.
type Extractor interface {
	Extract(line string, col int) (abbrev.Abbreviation, bool)
}

// Expander expands an abbreviation into text with embedded field tokens.
type Expander interface {
	Expand(abbr string, opt abbrev.Options) (string, error)
}

// Option configures collaborators of an Editor.
type Option func(*Editor)

func WithRenderer(r Renderer) Option {
	return func(e *Editor) {
		if r != nil {
			e.r = r
		}
	}
}

func WithExtractor(x Extractor) Option {
	return func(e *Editor) {
		if x != nil {
			e.extractor = x
		}
	}
}

func WithExpander(x Expander) Option {
	return func(e *Editor) {
		if x != nil {
			e.expander = x
		}
	}
}

func WithEvaluator(ev Evaluator) Option {
	return func(e *Editor) {
		if ev != nil {
			e.evaluator = ev
		}
	}
}

func WithOutput(out Output) Option {
	return func(e *Editor) {
		if out != nil {
			e.out = out
		}
	}
}

// Editor applies editing commands to a buffer and reports what changed to
// its Renderer. It is not safe for concurrent use.
type Editor struct {
	cfg Config
	buf *buffer.Buffer
	r   Renderer

	extractor Extractor
	expander  Expander
	evaluator Evaluator
	out       Output
}

func New(cfg Config, opts ...Option) *Editor {
	if cfg.IndentUnit == "" {
		cfg.IndentUnit = DefaultIndentUnit
	}
	if cfg.Abbrev.Indent == "" {
		cfg.Abbrev.Indent = cfg.IndentUnit
	}
	cfg.Abbrev.Field = field.CreateToken
	if cfg.EvalTimeout <= 0 {
		cfg.EvalTimeout = DefaultEvalTimeout
	}

	e := &Editor{
		cfg:       cfg,
		buf:       buffer.New(cfg.Text, cfg.Buffer),
		r:         NopRenderer{},
		extractor: abbrev.Extractor{LookAhead: true},
		expander:  abbrev.Expander{},
		evaluator: LuaEvaluator{},
		out:       logOutput{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.r.RenderFully(e.buf.Lines(), e.buf.Caret())
	return e
}

// Buffer exposes the underlying document. Mutating it directly bypasses
// renderer notifications; call Rerender afterwards.
func (e *Editor) Buffer() *buffer.Buffer { return e.buf }

func (e *Editor) Renderer() Renderer { return e.r }

func (e *Editor) IndentUnit() string { return e.cfg.IndentUnit }

func (e *Editor) Caret() buffer.Caret { return e.buf.Caret() }

// Content joins all lines with '\n'.
func (e *Editor) Content() string { return e.buf.Content() }

// SetContent replaces the document, resets the caret to (0,0) and renders
// everything again.
func (e *Editor) SetContent(text string) {
	e.buf.SetContent(text)
	e.Rerender()
}

// Rerender sends the whole document to the renderer.
func (e *Editor) Rerender() {
	e.r.RenderFully(e.buf.Lines(), e.buf.Caret())
}

// MoveCaret places the caret, e.g. in response to a tap on the text.
func (e *Editor) MoveCaret(line, col int) error {
	if err := e.buf.MoveCaret(line, col); err != nil {
		return err
	}
	return e.renderCaretLine()
}

func (e *Editor) ShowCaret() { e.r.ShowCaret() }

func (e *Editor) HideCaret() { e.r.HideCaret() }

// renderCaretLine is used when the caret may have changed lines.
func (e *Editor) renderCaretLine() error {
	before, after := e.buf.CaretLineParts()
	return e.r.RenderCaretLine(e.buf.Caret().Line, before, after)
}

// updateCaretLine is used when the caret stayed on the rendered caret line.
func (e *Editor) updateCaretLine() error {
	before, after := e.buf.CaretLineParts()
	return e.r.UpdateCaretLine(e.buf.Caret().Line, before, after)
}
