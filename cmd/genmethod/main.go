// Command genmethod emits the arity-indexed trampoline and adapter family
// (Func0..Func16, Method0..Method16, Function0..Function16 and Dispatch).
// Run via go generate from the package root.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strings"
)

const maxArity = 16

func main() {
	out := flag.String("out", "method_gen.go", "output file")
	flag.Parse()

	var b bytes.Buffer
	b.WriteString("// Code generated by genmethod. DO NOT EDIT.\n\n")
	b.WriteString("package gruby\n")

	for n := 0; n <= maxArity; n++ {
		genFunc(&b, n)
		genMethod(&b, n)
		genFunction(&b, n)
	}
	genDispatch(&b)

	if err := os.WriteFile(*out, b.Bytes(), 0644); err != nil {
		fmt.Fprintln(os.Stderr, "genmethod:", err)
		os.Exit(1)
	}
}

// join builds "A0, A1, .." style lists with the given format per index.
func join(n int, format string) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf(format, i)
	}
	return strings.Join(parts, ", ")
}

func plural(n int) string {
	if n == 1 {
		return "1 argument"
	}
	return fmt.Sprintf("%d arguments", n)
}

// raw returns the trailing raw handle parameters of a trampoline
// signature, and rawCall the matching call arguments.
func raw(n int) string {
	if n == 0 {
		return ""
	}
	return ", " + join(n, "v%d") + " Value"
}

func rawCall(n int) string {
	if n == 0 {
		return ""
	}
	return ", " + join(n, "v%d")
}

func genFunc(b *bytes.Buffer, n int) {
	fmt.Fprintf(b, `
// Func%[1]d is the raw arity %[1]d trampoline signature.
type Func%[1]d func(mrb *State, self Value%[2]s) Value

// Arity implements Method.
func (Func%[1]d) Arity() int { return %[1]d }
`, n, raw(n))
}

func genConverts(b *bytes.Buffer, n int) {
	for i := 0; i < n; i++ {
		fmt.Fprintf(b, "\ta%[1]d, err := convertArg[A%[1]d](mrb, v%[1]d, %[1]d)\n\tif err != nil {\n\t\treturn Value{}, err\n\t}\n", i)
	}
}

func genMethod(b *bytes.Buffer, n int) {
	tp := "RbSelf, Res"
	sig := "RbSelf"
	lamArgs := "s RbSelf"
	call := "s"
	if n > 0 {
		tp = "RbSelf, " + join(n, "A%d") + ", Res"
		sig = "RbSelf, " + join(n, "A%d")
		lamArgs = "s RbSelf, " + join(n, "a%[1]d A%[1]d")
		call = "s, " + join(n, "a%d")
	}
	fmt.Fprintf(b, `
// Method%[1]d wraps a Go function as a Ruby method taking self and
// %[2]s, with type conversions and error handling.
type Method%[1]d[%[3]s any] struct {
	fn func(%[4]s) (Res, error)
}

// NewMethod%[1]d wraps fn in a Method%[1]d adapter.
func NewMethod%[1]d[%[3]s any](fn func(%[4]s) Res) Method%[1]d[%[3]s] {
	return Method%[1]d[%[3]s]{fn: func(%[5]s) (Res, error) { return fn(%[6]s), nil }}
}

// NewMethodErr%[1]d wraps a fallible fn in a Method%[1]d adapter.
func NewMethodErr%[1]d[%[3]s any](fn func(%[4]s) (Res, error)) Method%[1]d[%[3]s] {
	return Method%[1]d[%[3]s]{fn: fn}
}

func (m Method%[1]d[%[3]s]) callConvertValue(mrb *State, self Value%[7]s) (Value, error) {
	s, err := convertArg[RbSelf](mrb, self, ArgSelf)
	if err != nil {
		return Value{}, err
	}
`, n, plural(n), tp, sig, lamArgs, call, raw(n))
	genConverts(b, n)
	fmt.Fprintf(b, `	res, err := m.fn(%[6]s)
	if err != nil {
		return Value{}, err
	}
	return intoReturnValue(mrb, res)
}

// CallHandleError invokes the wrapped function, trapping panics and
// raising conversion and user errors on the Ruby side.
func (m Method%[1]d[%[3]s]) CallHandleError(mrb *State, self Value%[7]s) Value {
	v, err := func() (v Value, err error) {
		defer panicHandler(&err)
		return m.callConvertValue(mrb, self%[8]s)
	}()
	if err != nil {
		return mrb.RaiseError(err)
	}
	return v
}

// BindMethod%[1]d returns the raw arity %[1]d trampoline for fn.
func BindMethod%[1]d[%[3]s any](fn func(%[4]s) Res) Func%[1]d {
	return func(mrb *State, self Value%[7]s) Value {
		return NewMethod%[1]d(fn).CallHandleError(mrb, self%[8]s)
	}
}

// BindMethodErr%[1]d returns the raw arity %[1]d trampoline for a fallible fn.
func BindMethodErr%[1]d[%[3]s any](fn func(%[4]s) (Res, error)) Func%[1]d {
	return func(mrb *State, self Value%[7]s) Value {
		return NewMethodErr%[1]d(fn).CallHandleError(mrb, self%[8]s)
	}
}
`, n, plural(n), tp, sig, lamArgs, call, raw(n), rawCall(n))
}

func genFunction(b *bytes.Buffer, n int) {
	tp := "Res"
	sig := ""
	lamArgs := ""
	call := ""
	if n > 0 {
		tp = join(n, "A%d") + ", Res"
		sig = join(n, "A%d")
		lamArgs = join(n, "a%[1]d A%[1]d")
		call = join(n, "a%d")
	}
	fmt.Fprintf(b, `
// Function%[1]d wraps a Go function as a Ruby method taking
// %[2]s and ignoring self.
type Function%[1]d[%[3]s any] struct {
	fn func(%[4]s) (Res, error)
}

// NewFunction%[1]d wraps fn in a Function%[1]d adapter.
func NewFunction%[1]d[%[3]s any](fn func(%[4]s) Res) Function%[1]d[%[3]s] {
	return Function%[1]d[%[3]s]{fn: func(%[5]s) (Res, error) { return fn(%[6]s), nil }}
}

// NewFunctionErr%[1]d wraps a fallible fn in a Function%[1]d adapter.
func NewFunctionErr%[1]d[%[3]s any](fn func(%[4]s) (Res, error)) Function%[1]d[%[3]s] {
	return Function%[1]d[%[3]s]{fn: fn}
}

func (m Function%[1]d[%[3]s]) callConvertValue(mrb *State%[7]s) (Value, error) {
`, n, plural(n), tp, sig, lamArgs, call, raw(n))
	genConverts(b, n)
	fmt.Fprintf(b, `	res, err := m.fn(%[6]s)
	if err != nil {
		return Value{}, err
	}
	return intoReturnValue(mrb, res)
}

// CallHandleError invokes the wrapped function, trapping panics and
// raising conversion and user errors on the Ruby side. The self slot is
// never converted.
func (m Function%[1]d[%[3]s]) CallHandleError(mrb *State%[7]s) Value {
	v, err := func() (v Value, err error) {
		defer panicHandler(&err)
		return m.callConvertValue(mrb%[8]s)
	}()
	if err != nil {
		return mrb.RaiseError(err)
	}
	return v
}

// BindFunction%[1]d returns the raw arity %[1]d trampoline for fn.
func BindFunction%[1]d[%[3]s any](fn func(%[4]s) Res) Func%[1]d {
	return func(mrb *State, self Value%[7]s) Value {
		return NewFunction%[1]d(fn).CallHandleError(mrb%[8]s)
	}
}

// BindFunctionErr%[1]d returns the raw arity %[1]d trampoline for a fallible fn.
func BindFunctionErr%[1]d[%[3]s any](fn func(%[4]s) (Res, error)) Func%[1]d {
	return func(mrb *State, self Value%[7]s) Value {
		return NewFunctionErr%[1]d(fn).CallHandleError(mrb%[8]s)
	}
}
`, n, plural(n), tp, sig, lamArgs, call, raw(n), rawCall(n))
}

func genDispatch(b *bytes.Buffer) {
	b.WriteString(`
// Dispatch calls m with the calling convention its arity selects, so call
// sites holding a raw argument vector need not switch on trampoline types
// themselves. A fixed arity mismatch raises ArgumentError before any
// conversion runs.
func Dispatch(mrb *State, m Method, self Value, args []Value) Value {
	if n := m.Arity(); n >= 0 && n != len(args) {
		return mrb.RaiseError(EArgumentError("wrong number of arguments (given %d, expected %d)", len(args), n))
	}
	switch fn := m.(type) {
	case FuncAry:
		return fn(mrb, self, mrb.host.AryValue(args))
	case FuncVar:
		return fn(mrb, self, args)
`)
	for n := 0; n <= maxArity; n++ {
		fmt.Fprintf(b, "\tcase Func%d:\n\t\treturn fn(mrb, self%s)\n", n, rawCall2(n))
	}
	b.WriteString(`	}
	return mrb.RaiseError(ETypeError("unknown method trampoline %T", m))
}
`)
}

func rawCall2(n int) string {
	if n == 0 {
		return ""
	}
	return ", " + join(n, "args[%d]")
}
