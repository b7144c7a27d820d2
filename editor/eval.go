package editor

import (
	"context"
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	lua "github.com/yuin/gopher-lua"

	"github.com/iw2rmb/poke/internal/log"
)

// DefaultEvalTimeout bounds a single evaluation.
const DefaultEvalTimeout = 2 * time.Second

// NoResult is printed when a script produces no value or nil.
const NoResult = "✓"

const excerptLen = 101

// Evaluator runs a script and returns its value printed as a string.
type Evaluator interface {
	Eval(ctx context.Context, src string) (string, error)
}

// Output receives evaluation results together with a one-line excerpt of
// the evaluated source.
type Output interface {
	Print(value, excerpt string)
}

// OutputFunc adapts a function to Output.
type OutputFunc func(value, excerpt string)

func (f OutputFunc) Print(value, excerpt string) { f(value, excerpt) }

type logOutput struct{}

func (logOutput) Print(value, excerpt string) {
	log.Info(log.CatEval, "result", "value", value, "source", excerpt)
}

// EvalError is returned when a script fails. It carries the whole source.
type EvalError struct {
	Source string
	Err    error
}

func (e *EvalError) Error() string { return fmt.Sprintf("eval: %v", e.Err) }

func (e *EvalError) Unwrap() error { return e.Err }

// EvalScript evaluates the document and prints the result to the Output.
func (e *Editor) EvalScript() error {
	src := e.buf.Content()
	ctx, cancel := context.WithTimeout(context.Background(), e.cfg.EvalTimeout)
	defer cancel()

	value, err := e.evaluator.Eval(ctx, src)
	if err != nil {
		log.ErrorErr(log.CatEval, "evaluation failed", err)
		return &EvalError{Source: src, Err: err}
	}
	e.out.Print(value, Excerpt(src))
	return nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Excerpt collapses whitespace runs in src to single spaces and truncates
// the result to 101 characters followed by "...".
func Excerpt(src string) string {
	s := whitespaceRun.ReplaceAllString(src, " ")
	if utf8.RuneCountInString(s) <= excerptLen {
		return s
	}
	return string([]rune(s)[:excerptLen]) + "..."
}

// LuaEvaluator evaluates Lua in a fresh state with only the base, table,
// string and math libraries. An expression is evaluated as if prefixed with
// "return"; otherwise the source runs as a chunk and its first returned
// value, if any, is the result.
type LuaEvaluator struct{}

func (LuaEvaluator) Eval(ctx context.Context, src string) (value string, err error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibraries(L)
	L.SetContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()

	fn, err := L.LoadString("return " + src)
	if err != nil {
		fn, err = L.LoadString(src)
		if err != nil {
			return "", err
		}
	}

	top := L.GetTop()
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return "", err
	}
	if L.GetTop() == top {
		return NoResult, nil
	}
	res := L.Get(top + 1)
	L.SetTop(top)
	return luaString(res), nil
}

func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// luaString prints scalars as they are and everything else through the
// default conversion, e.g. "table: 0xc000123456".
func luaString(v lua.LValue) string {
	if v.Type() == lua.LTNil {
		return NoResult
	}
	return v.String()
}
