package gruby

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryConvertScalars(t *testing.T) {
	_, mrb := newMock()

	n, err := TryConvert[int](mrb, mrb.FixnumValue(42))
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	f, err := TryConvert[float64](mrb, mrb.FloatValue(1.5))
	require.NoError(t, err)
	assert.Equal(t, 1.5, f)

	// Float conversion accepts Integer values.
	f, err = TryConvert[float64](mrb, mrb.FixnumValue(3))
	require.NoError(t, err)
	assert.Equal(t, 3.0, f)

	s, err := TryConvert[string](mrb, mrb.StringValue("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	// Symbols satisfy string conversion by name.
	s, err = TryConvert[string](mrb, mrb.Host().SymValue("sym"))
	require.NoError(t, err)
	assert.Equal(t, "sym", s)

	b, err := TryConvert[[]byte](mrb, mrb.StringValue("raw"))
	require.NoError(t, err)
	assert.Equal(t, []byte("raw"), b)

	v := mrb.StringValue("identity")
	got, err := TryConvert[Value](mrb, v)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestTryConvertBool(t *testing.T) {
	_, mrb := newMock()

	for _, v := range []Value{mrb.Nil(), mrb.False()} {
		b, err := TryConvert[bool](mrb, v)
		require.NoError(t, err)
		assert.False(t, b)
	}
	// Everything else is truthy, including zero and empty string.
	for _, v := range []Value{mrb.True(), mrb.FixnumValue(0), mrb.StringValue("")} {
		b, err := TryConvert[bool](mrb, v)
		require.NoError(t, err)
		assert.True(t, b)
	}
}

func TestTryConvertIntBounds(t *testing.T) {
	_, mrb := newMock()

	n8, err := TryConvert[int8](mrb, mrb.FixnumValue(127))
	require.NoError(t, err)
	assert.Equal(t, int8(127), n8)

	_, err = TryConvert[int8](mrb, mrb.FixnumValue(128))
	require.Error(t, err)
	assert.Equal(t, "RangeError", ExceptionClass(err))

	n8, err = TryConvert[int8](mrb, mrb.FixnumValue(-128))
	require.NoError(t, err)
	assert.Equal(t, int8(-128), n8)

	_, err = TryConvert[int8](mrb, mrb.FixnumValue(-129))
	require.Error(t, err)
	assert.Equal(t, "RangeError", ExceptionClass(err))

	u8, err := TryConvert[uint8](mrb, mrb.FixnumValue(255))
	require.NoError(t, err)
	assert.Equal(t, uint8(255), u8)

	_, err = TryConvert[uint8](mrb, mrb.FixnumValue(256))
	require.Error(t, err)
	assert.Equal(t, "RangeError", ExceptionClass(err))

	// Negative values never wrap into unsigned types.
	_, err = TryConvert[uint64](mrb, mrb.FixnumValue(-1))
	require.Error(t, err)
	assert.Equal(t, "RangeError", ExceptionClass(err))

	n64, err := TryConvert[int64](mrb, mrb.Host().IntValue(math.MaxInt64))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), n64)

	n64, err = TryConvert[int64](mrb, mrb.Host().IntValue(math.MinInt64))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), n64)
}

func TestTryConvertUintPlatformBound(t *testing.T) {
	_, mrb := newMock()

	// In range on every platform.
	u, err := TryConvert[uint](mrb, mrb.Host().IntValue(math.MaxInt32))
	require.NoError(t, err)
	assert.Equal(t, uint(math.MaxInt32), u)

	if uintMax < math.MaxInt64 {
		// 32-bit: one past the platform width fails instead of wrapping.
		_, err = TryConvert[uint](mrb, mrb.Host().IntValue(uintMax+1))
		require.Error(t, err)
		assert.Equal(t, "RangeError", ExceptionClass(err))
	} else {
		u, err := TryConvert[uint](mrb, mrb.Host().IntValue(math.MaxInt64))
		require.NoError(t, err)
		assert.Equal(t, uint(math.MaxInt64), u)
	}
}

func TestUintResultOverflowRaises(t *testing.T) {
	h, mrb := newMock()

	// A result above the host integer range raises instead of sign-wrapping
	// into a negative integer.
	m := BindMethod0(func(self string) uint64 { return math.MaxUint64 })
	_, raised := h.call(mrb, m, mrb.StringValue("recv"), nil)
	require.Error(t, raised)
	assert.Equal(t, "RangeError", ExceptionClass(raised))

	// The boundary value itself converts exactly.
	v, err := intoValue(mrb, uint64(math.MaxInt64))
	require.NoError(t, err)
	n, ok := h.IntOf(v)
	require.True(t, ok)
	assert.Equal(t, int64(math.MaxInt64), n)

	// Named unsigned types go through the reflection path and get the same
	// check.
	type counter uint64
	_, err = intoValue(mrb, counter(math.MaxUint64))
	require.Error(t, err)
	assert.Equal(t, "RangeError", ExceptionClass(err))
}

func TestConversionFailureNamesObjectClass(t *testing.T) {
	h, mrb := newMock()

	obj := h.box(mockObj{typ: TypeObject, s: "Widget"})
	_, err := TryConvert[int](mrb, obj)
	require.Error(t, err)
	assert.EqualError(t, err, "receiver: no implicit conversion of Widget into int")
}

func TestIntRoundTrip(t *testing.T) {
	h, mrb := newMock()

	for _, n := range []int64{0, -1, 1, math.MaxInt64, math.MinInt64} {
		v := h.IntValue(n)
		got, err := TryConvert[int64](mrb, v)
		require.NoError(t, err)

		back := mrb.Value(got)
		a, _ := h.IntOf(v)
		b, ok := h.IntOf(back)
		require.True(t, ok)
		assert.Equal(t, a, b)
	}
}

func TestTryConvertTypeMismatch(t *testing.T) {
	_, mrb := newMock()

	_, err := TryConvert[int](mrb, mrb.StringValue("nope"))
	require.Error(t, err)
	assert.Equal(t, "TypeError", ExceptionClass(err))
	assert.EqualError(t, err, "receiver: no implicit conversion of String into int")

	_, err = TryConvert[string](mrb, mrb.FixnumValue(1))
	require.Error(t, err)
	assert.Equal(t, "TypeError", ExceptionClass(err))
}

func TestTryConvertSlice(t *testing.T) {
	h, mrb := newMock()

	ary := h.AryValue([]Value{mrb.FixnumValue(1), mrb.FixnumValue(2), mrb.FixnumValue(3)})
	ns, err := TryConvert[[]int](mrb, ary)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ns)

	// Element failures propagate.
	bad := h.AryValue([]Value{mrb.FixnumValue(1), mrb.StringValue("x")})
	_, err = TryConvert[[]int](mrb, bad)
	require.Error(t, err)
	assert.Equal(t, "TypeError", ExceptionClass(err))

	// A handle slice would outlive the call; always rejected.
	_, err = TryConvert[[]Value](mrb, ary)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handles must not be stored on the heap")
}

func TestTryConvertMap(t *testing.T) {
	h, mrb := newMock()

	hash := h.HashValue([][2]Value{
		{mrb.StringValue("a"), mrb.FixnumValue(1)},
		{mrb.StringValue("b"), mrb.FixnumValue(2)},
	})
	m, err := TryConvert[map[string]int](mrb, hash)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, m)

	_, err = TryConvert[map[string]Value](mrb, hash)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handles must not be stored on the heap")
}

func TestTryConvertPointer(t *testing.T) {
	_, mrb := newMock()

	p, err := TryConvert[*int](mrb, mrb.Nil())
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = TryConvert[*int](mrb, mrb.FixnumValue(7))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 7, *p)
}

func TestTryConvertNamedType(t *testing.T) {
	_, mrb := newMock()

	type level int
	l, err := TryConvert[level](mrb, mrb.FixnumValue(3))
	require.NoError(t, err)
	assert.Equal(t, level(3), l)

	type tiny int8
	_, err = TryConvert[tiny](mrb, mrb.FixnumValue(1000))
	require.Error(t, err)
	assert.Equal(t, "RangeError", ExceptionClass(err))
}

func TestIntf(t *testing.T) {
	h, mrb := newMock()

	assert.Nil(t, mrb.Intf(mrb.Nil()))
	assert.Equal(t, true, mrb.Intf(mrb.True()))
	assert.Equal(t, int64(5), mrb.Intf(mrb.FixnumValue(5)))
	assert.Equal(t, 2.5, mrb.Intf(mrb.FloatValue(2.5)))
	assert.Equal(t, "s", mrb.Intf(mrb.StringValue("s")))
	assert.Equal(t, "sym", mrb.Intf(h.SymValue("sym")))

	ary := h.AryValue([]Value{mrb.FixnumValue(1), mrb.StringValue("two")})
	assert.Equal(t, []interface{}{int64(1), "two"}, mrb.Intf(ary))

	hash := h.HashValue([][2]Value{{mrb.StringValue("k"), mrb.FixnumValue(9)}})
	assert.Equal(t, map[interface{}]interface{}{"k": int64(9)}, mrb.Intf(hash))

	// Opaque objects stay handles.
	obj := h.box(mockObj{typ: TypeObject})
	assert.Equal(t, obj, mrb.Intf(obj))
}

func TestStateValue(t *testing.T) {
	h, mrb := newMock()

	v := mrb.Value(map[string]int{"n": 1})
	pairs, ok := h.HashPairs(v)
	require.True(t, ok)
	require.Len(t, pairs, 1)

	v = mrb.Value([]string{"a", "b"})
	n, ok := h.AryLen(v)
	require.True(t, ok)
	assert.Equal(t, 2, n)

	assert.True(t, mrb.NilP(mrb.Value(nil)))

	// Unconvertible Go types panic; inside a method the trampoline turns
	// this into a TypeError raise.
	assert.Panics(t, func() { mrb.Value(make(chan int)) })
	err := func() (err error) {
		defer panicHandler(&err)
		mrb.Value(make(chan int))
		return nil
	}()
	require.Error(t, err)
	assert.Equal(t, "TypeError", ExceptionClass(err))
}
