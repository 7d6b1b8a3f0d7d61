// Package script evaluates arithmetic expressions in a sandboxed Lua state
// whose only callable functions are the four arith operations.
//
// Chunks are checked before they run: number literals, unary minus, locals
// and calls to add, subtract, multiply and divide are allowed. Lua's own
// arithmetic operators and every library are not, so a zero divisor always
// goes through arith.CheckDivisor.
package script

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/ast"
	"github.com/yuin/gopher-lua/parse"

	"github.com/flarebyte/abacus/internal/arith"
)

// DefaultTimeout bounds a single evaluation.
const DefaultTimeout = time.Second

const chunkName = "<eval>"

var (
	// ErrEmpty is returned for a blank expression.
	ErrEmpty = errors.New("empty expression")
	// ErrTimeout is returned when the deadline expires or the context is
	// canceled during evaluation.
	ErrTimeout = errors.New("sandbox timeout")
	// ErrNotNumber is returned when the chunk yields a non-number.
	ErrNotNumber = errors.New("expression did not evaluate to a number")
	// ErrUnsupported is returned for any construct outside the allowed
	// subset, e.g. "1/0" or "math.sqrt(4)".
	ErrUnsupported = errors.New("unsupported expression")
)

// Options tunes the sandbox. A zero Timeout means DefaultTimeout; a negative
// one disables the deadline.
type Options struct {
	Timeout time.Duration
}

// Eval evaluates expr and returns its numeric result. expr may be a bare
// expression ("add(1, multiply(2, 3))") or a chunk of locals ending in a
// return.
func Eval(ctx context.Context, expr string, opts Options) (float64, error) {
	code := strings.TrimSpace(expr)
	if code == "" {
		return 0, ErrEmpty
	}
	if !strings.HasPrefix(code, "return ") && !strings.Contains(code, "\n") {
		code = "return " + code
	}

	chunk, err := parse.Parse(strings.NewReader(code), chunkName)
	if err != nil {
		return 0, fmt.Errorf("invalid expression: %v", err)
	}
	if err := checkChunk(chunk); err != nil {
		return 0, err
	}
	proto, err := lua.Compile(chunk, chunkName)
	if err != nil {
		return 0, fmt.Errorf("invalid expression: %v", err)
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	L := lua.NewState(lua.Options{
		SkipOpenLibs:    true,
		RegistrySize:    256,
		RegistryMaxSize: 1024,
	})
	defer L.Close()
	L.SetContext(ctx)

	var guardErr error
	for _, op := range arith.Ops() {
		L.SetGlobal(op.Name(), L.NewFunction(func(L *lua.LState) int {
			a := float64(L.CheckNumber(1))
			b := float64(L.CheckNumber(2))
			eq, err := arith.Compute(op, a, b)
			if err != nil {
				guardErr = err
				L.RaiseError("%s", err.Error())
				return 0
			}
			L.Push(lua.LNumber(eq.Result))
			return 1
		}))
	}

	L.Push(L.NewFunctionFromProto(proto))
	if err := L.PCall(0, 1, nil); err != nil {
		if guardErr != nil {
			return 0, guardErr
		}
		if isTimeoutError(ctx, err) {
			return 0, ErrTimeout
		}
		return 0, fmt.Errorf("eval: %v", err)
	}
	ret := L.Get(-1)
	L.Pop(1)
	n, ok := ret.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("%w: got %s", ErrNotNumber, ret.Type().String())
	}
	return float64(n), nil
}

func checkChunk(chunk []ast.Stmt) error {
	if len(chunk) == 0 {
		return fmt.Errorf("%w: no return value", ErrUnsupported)
	}
	for i, st := range chunk {
		last := i == len(chunk)-1
		switch s := st.(type) {
		case *ast.LocalAssignStmt:
			if last {
				return fmt.Errorf("%w: chunk must end with return", ErrUnsupported)
			}
			for _, e := range s.Exprs {
				if err := checkExpr(e); err != nil {
					return err
				}
			}
		case *ast.ReturnStmt:
			if !last || len(s.Exprs) != 1 {
				return fmt.Errorf("%w: return must be last and yield one value", ErrUnsupported)
			}
			if err := checkExpr(s.Exprs[0]); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: statement at line %d", ErrUnsupported, st.Line())
		}
	}
	return nil
}

func checkExpr(e ast.Expr) error {
	switch x := e.(type) {
	case *ast.NumberExpr, *ast.IdentExpr:
		return nil
	case *ast.UnaryMinusOpExpr:
		return checkExpr(x.Expr)
	case *ast.FuncCallExpr:
		fn, ok := x.Func.(*ast.IdentExpr)
		if !ok || x.Receiver != nil {
			return fmt.Errorf("%w: only %s can be called", ErrUnsupported, boundNames())
		}
		if _, err := arith.FromName(fn.Value); err != nil {
			return fmt.Errorf("%w: unknown function %q (allowed: %s)", ErrUnsupported, fn.Value, boundNames())
		}
		for _, a := range x.Args {
			if err := checkExpr(a); err != nil {
				return err
			}
		}
		return nil
	case *ast.ArithmeticOpExpr:
		return fmt.Errorf("%w: operator %q, use %s", ErrUnsupported, x.Operator, boundNames())
	default:
		return fmt.Errorf("%w: %T at line %d", ErrUnsupported, e, e.Line())
	}
}

func boundNames() string {
	names := make([]string, 0, 4)
	for _, op := range arith.Ops() {
		names = append(names, op.Name())
	}
	return strings.Join(names, ", ")
}

func isTimeoutError(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "deadline") || strings.Contains(msg, "context canceled")
}
