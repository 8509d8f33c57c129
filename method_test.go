package gruby

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sumMethods binds one summing method per fixed arity, each expecting a
// string receiver and int arguments, each counting its invocations.
func sumMethods(calls *int) []Method {
	type s = string
	c := func(sum int) int { *calls++; return sum }
	return []Method{
		BindMethod0(func(self s) int { return c(0) }),
		BindMethod1(func(self s, a0 int) int { return c(a0) }),
		BindMethod2(func(self s, a0, a1 int) int { return c(a0 + a1) }),
		BindMethod3(func(self s, a0, a1, a2 int) int { return c(a0 + a1 + a2) }),
		BindMethod4(func(self s, a0, a1, a2, a3 int) int { return c(a0 + a1 + a2 + a3) }),
		BindMethod5(func(self s, a0, a1, a2, a3, a4 int) int { return c(a0 + a1 + a2 + a3 + a4) }),
		BindMethod6(func(self s, a0, a1, a2, a3, a4, a5 int) int {
			return c(a0 + a1 + a2 + a3 + a4 + a5)
		}),
		BindMethod7(func(self s, a0, a1, a2, a3, a4, a5, a6 int) int {
			return c(a0 + a1 + a2 + a3 + a4 + a5 + a6)
		}),
		BindMethod8(func(self s, a0, a1, a2, a3, a4, a5, a6, a7 int) int {
			return c(a0 + a1 + a2 + a3 + a4 + a5 + a6 + a7)
		}),
		BindMethod9(func(self s, a0, a1, a2, a3, a4, a5, a6, a7, a8 int) int {
			return c(a0 + a1 + a2 + a3 + a4 + a5 + a6 + a7 + a8)
		}),
		BindMethod10(func(self s, a0, a1, a2, a3, a4, a5, a6, a7, a8, a9 int) int {
			return c(a0 + a1 + a2 + a3 + a4 + a5 + a6 + a7 + a8 + a9)
		}),
		BindMethod11(func(self s, a0, a1, a2, a3, a4, a5, a6, a7, a8, a9, a10 int) int {
			return c(a0 + a1 + a2 + a3 + a4 + a5 + a6 + a7 + a8 + a9 + a10)
		}),
		BindMethod12(func(self s, a0, a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11 int) int {
			return c(a0 + a1 + a2 + a3 + a4 + a5 + a6 + a7 + a8 + a9 + a10 + a11)
		}),
		BindMethod13(func(self s, a0, a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11, a12 int) int {
			return c(a0 + a1 + a2 + a3 + a4 + a5 + a6 + a7 + a8 + a9 + a10 + a11 + a12)
		}),
		BindMethod14(func(self s, a0, a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11, a12, a13 int) int {
			return c(a0 + a1 + a2 + a3 + a4 + a5 + a6 + a7 + a8 + a9 + a10 + a11 + a12 + a13)
		}),
		BindMethod15(func(self s, a0, a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11, a12, a13, a14 int) int {
			return c(a0 + a1 + a2 + a3 + a4 + a5 + a6 + a7 + a8 + a9 + a10 + a11 + a12 + a13 + a14)
		}),
		BindMethod16(func(self s, a0, a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11, a12, a13, a14, a15 int) int {
			return c(a0 + a1 + a2 + a3 + a4 + a5 + a6 + a7 + a8 + a9 + a10 + a11 + a12 + a13 + a14 + a15)
		}),
	}
}

func TestFixedArities(t *testing.T) {
	h, mrb := newMock()
	self := mrb.StringValue("recv")

	calls := 0
	for n, m := range sumMethods(&calls) {
		require.Equal(t, n, m.Arity())

		args := make([]Value, n)
		want := int64(0)
		for i := range args {
			args[i] = mrb.FixnumValue(i + 1)
			want += int64(i + 1)
		}

		before := calls
		v, raised := h.call(mrb, m, self, args)
		require.NoError(t, raised, "arity %d", n)
		assert.Equal(t, before+1, calls, "arity %d invoked once", n)
		got, ok := h.IntOf(v)
		require.True(t, ok)
		assert.Equal(t, want, got, "arity %d", n)
	}
}

func TestArgcMismatch(t *testing.T) {
	h, mrb := newMock()
	m := BindMethod2(func(self string, a, b int) int { return a + b })

	_, raised := h.call(mrb, m, mrb.StringValue("recv"), []Value{mrb.FixnumValue(1)})
	require.Error(t, raised)
	assert.Equal(t, "ArgumentError", ExceptionClass(raised))
	assert.EqualError(t, raised, "wrong number of arguments (given 1, expected 2)")
}

func TestArgConversionFailureIsPositional(t *testing.T) {
	h, mrb := newMock()
	m := BindMethod3(func(self string, a, b, c int) int { return a + b + c })

	args := []Value{mrb.FixnumValue(1), mrb.StringValue("two"), mrb.FixnumValue(3)}
	_, raised := h.call(mrb, m, mrb.StringValue("recv"), args)
	require.Error(t, raised)
	assert.Equal(t, "TypeError", ExceptionClass(raised))

	var ce *ConvertError
	require.True(t, errors.As(raised, &ce))
	assert.Equal(t, 1, ce.Index)
	assert.EqualError(t, raised, "argument 1: no implicit conversion of String into int")
}

func TestConversionShortCircuits(t *testing.T) {
	h, mrb := newMock()
	m := BindMethod3(func(self string, a, b, c int) int { return a + b + c })
	args := []Value{mrb.FixnumValue(1), mrb.StringValue("two"), mrb.FixnumValue(3)}

	h.intOfCalls = 0
	_, raised := h.call(mrb, m, mrb.StringValue("recv"), args)
	require.Error(t, raised)

	// Argument 0 converts, argument 1 probes and fails, argument 2 is
	// never touched.
	assert.Equal(t, 2, h.intOfCalls)
}

func TestReceiverConversionFailure(t *testing.T) {
	h, mrb := newMock()
	m := BindMethod0(func(self int) int { return self })

	_, raised := h.call(mrb, m, mrb.StringValue("recv"), nil)
	require.Error(t, raised)

	var ce *ConvertError
	require.True(t, errors.As(raised, &ce))
	assert.Equal(t, ArgSelf, ce.Index)
	assert.Contains(t, raised.Error(), "receiver")
}

func TestFunctionIgnoresSelf(t *testing.T) {
	h, mrb := newMock()
	// The receiver is an Integer, unconvertible to the string a Method
	// adapter would want; a Function never converts it.
	fn := BindFunction2(func(a, b int) int { return a * b })

	v, raised := h.call(mrb, fn, mrb.FixnumValue(99), []Value{mrb.FixnumValue(6), mrb.FixnumValue(7)})
	require.NoError(t, raised)
	got, _ := h.IntOf(v)
	assert.Equal(t, int64(42), got)
}

func TestErrResultRaises(t *testing.T) {
	h, mrb := newMock()
	m := BindMethodErr1(func(self string, i int) (int, error) {
		if i < 0 {
			return 0, EIndexError("index %d out of bounds", i)
		}
		return i * 2, nil
	})

	v, raised := h.call(mrb, m, mrb.StringValue("recv"), []Value{mrb.FixnumValue(4)})
	require.NoError(t, raised)
	got, _ := h.IntOf(v)
	assert.Equal(t, int64(8), got)

	_, raised = h.call(mrb, m, mrb.StringValue("recv"), []Value{mrb.FixnumValue(-3)})
	require.Error(t, raised)
	assert.Equal(t, "IndexError", ExceptionClass(raised))
	assert.EqualError(t, raised, "index -3 out of bounds")
}

func TestPanicBecomesFatal(t *testing.T) {
	h, mrb := newMock()
	m := BindMethod0(func(self string) int { panic("boom") })

	h.raiseCount = 0
	_, raised := h.call(mrb, m, mrb.StringValue("recv"), nil)
	require.Error(t, raised)
	assert.Equal(t, 1, h.raiseCount)
	assert.Equal(t, "fatal", ExceptionClass(raised))

	var pe *PanicError
	require.True(t, errors.As(raised, &pe))
	assert.Equal(t, "boom", pe.Error())
	assert.Equal(t, "boom", pe.Recovered())
}

func TestPanicWithErrorKeepsClass(t *testing.T) {
	h, mrb := newMock()
	m := BindMethod0(func(self string) int {
		panic(ERangeError("out of range"))
	})

	_, raised := h.call(mrb, m, mrb.StringValue("recv"), nil)
	require.Error(t, raised)
	assert.Equal(t, "RangeError", ExceptionClass(raised))
	assert.EqualError(t, raised, "out of range")
}

func TestMethodVar(t *testing.T) {
	h, mrb := newMock()
	m := BindMethodErrVar(func(self string, args RArgs) (int, error) {
		total := 0
		for i := 0; i < args.Len(); i++ {
			n, err := args.Int(i)
			if err != nil {
				return 0, err
			}
			total += n
		}
		return total, nil
	})
	require.Equal(t, -1, m.Arity())

	args := []Value{mrb.FixnumValue(10), mrb.FixnumValue(20), mrb.FixnumValue(12)}
	v, raised := h.call(mrb, m, mrb.StringValue("recv"), args)
	require.NoError(t, raised)
	got, _ := h.IntOf(v)
	assert.Equal(t, int64(42), got)

	// No arguments is a valid call at arity -1.
	v, raised = h.call(mrb, m, mrb.StringValue("recv"), nil)
	require.NoError(t, raised)
	got, _ = h.IntOf(v)
	assert.Equal(t, int64(0), got)
}

func TestMethodAry(t *testing.T) {
	h, mrb := newMock()
	m := BindMethodAry(func(self string, args []int) int {
		total := 0
		for _, n := range args {
			total += n
		}
		return total
	})
	require.Equal(t, -2, m.Arity())

	args := []Value{mrb.FixnumValue(3), mrb.FixnumValue(4)}
	v, raised := h.call(mrb, m, mrb.StringValue("recv"), args)
	require.NoError(t, raised)
	got, _ := h.IntOf(v)
	assert.Equal(t, int64(7), got)
}

func TestFunctionVarAndAry(t *testing.T) {
	h, mrb := newMock()

	fv := BindFunctionVar(func(args RArgs) int { return args.Len() })
	v, raised := h.call(mrb, fv, mrb.Nil(), []Value{mrb.Nil(), mrb.Nil()})
	require.NoError(t, raised)
	got, _ := h.IntOf(v)
	assert.Equal(t, int64(2), got)

	fa := BindFunctionAry(func(args []string) string {
		out := ""
		for _, s := range args {
			out += s
		}
		return out
	})
	v, raised = h.call(mrb, fa, mrb.Nil(), []Value{mrb.StringValue("a"), mrb.StringValue("b")})
	require.NoError(t, raised)
	s, _ := h.StrOf(v)
	assert.Equal(t, "ab", s)
}

func TestReturnShapes(t *testing.T) {
	h, mrb := newMock()
	self := mrb.StringValue("recv")

	// A Value result passes through untouched.
	want := mrb.StringValue("through")
	m := BindMethod0(func(self string) Value { return want })
	v, raised := h.call(mrb, m, self, nil)
	require.NoError(t, raised)
	assert.Equal(t, want, v)

	// A slice result materializes as an Array handle.
	ms := BindMethod0(func(self string) []int { return []int{1, 2, 3} })
	v, raised = h.call(mrb, ms, self, nil)
	require.NoError(t, raised)
	n, ok := h.AryLen(v)
	require.True(t, ok)
	assert.Equal(t, 3, n)

	// Nil error result raises nothing and returns the value.
	me := BindMethodErr0(func(self string) (bool, error) { return true, nil })
	v, raised = h.call(mrb, me, self, nil)
	require.NoError(t, raised)
	assert.True(t, mrb.Test(v))
}

func TestDefineMethodRoundTrip(t *testing.T) {
	h, mrb := newMock()
	klass := h.box(mockObj{typ: TypeClass})

	mrb.DefineMethod(klass, "double", BindMethod1(func(self string, n int) int { return n * 2 }))
	m, ok := h.methods["double"]
	require.True(t, ok)

	v, raised := h.call(mrb, m, mrb.StringValue("recv"), []Value{mrb.FixnumValue(21)})
	require.NoError(t, raised)
	got, _ := h.IntOf(v)
	assert.Equal(t, int64(42), got)
}

func TestBindInit(t *testing.T) {
	h, mrb := newMock()

	called := false
	BindInit(func(mrb *State) error {
		called = true
		return nil
	})(mrb)
	assert.True(t, called)

	func() {
		defer func() {
			r := recover()
			jump, ok := r.(hostJump)
			require.True(t, ok)
			assert.Equal(t, "NameError", ExceptionClass(jump.err))
		}()
		BindInit(func(mrb *State) error {
			return ENameError("uninitialized constant Foo")
		})(mrb)
	}()
	require.NotNil(t, h.raised)
}

func TestBindBlock(t *testing.T) {
	h, mrb := newMock()

	fn := BindBlock(func(args RArgs, block Value) int { return args.Len() })
	v := fn(mrb, []Value{mrb.Nil(), mrb.Nil(), mrb.Nil()}, mrb.Nil())
	got, _ := h.IntOf(v)
	assert.Equal(t, int64(3), got)

	blk := mrb.StringValue("blockish")
	seen := Value{}
	fn2 := BindBlockErr(func(args RArgs, block Value) (int, error) {
		seen = block
		return 0, nil
	})
	fn2(mrb, nil, blk)
	assert.Equal(t, blk, seen)
}
