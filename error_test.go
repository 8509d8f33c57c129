package gruby

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExceptionClass(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ERuntimeError("x"), "RuntimeError"},
		{ETypeError("x"), "TypeError"},
		{EArgumentError("x"), "ArgumentError"},
		{EIndexError("x"), "IndexError"},
		{ERangeError("x"), "RangeError"},
		{ENameError("x"), "NameError"},
		{ENoMethodError("x"), "NoMethodError"},
		{ELocalJumpError("x"), "LocalJumpError"},
		{EFrozenError("x"), "FrozenError"},
		{ENotImplementedError("x"), "NotImplementedError"},
		{errors.New("plain"), "StandardError"},
		{&PanicError{val: "boom"}, "fatal"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExceptionClass(tt.err), tt.want)
	}

	// Wrapping keeps the class reachable.
	wrapped := fmt.Errorf("context: %w", ETypeError("inner"))
	assert.Equal(t, "TypeError", ExceptionClass(wrapped))
}

func TestRaisef(t *testing.T) {
	err := ERangeError("%d out of range", 99)
	assert.EqualError(t, err, "99 out of range")
	assert.ErrorIs(t, err, eRangeError)

	var re *RaiseError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "99 out of range", re.String())
}

func TestConvertErrorMessages(t *testing.T) {
	e := convError("int", "String")
	assert.EqualError(t, e, "receiver: no implicit conversion of String into int")

	e.Index = 2
	assert.EqualError(t, e, "argument 2: no implicit conversion of String into int")

	r := rangeError("int8", "integer 1000")
	r.Index = 0
	assert.EqualError(t, r, "argument 0: integer 1000 out of range for int8")
	assert.Equal(t, "RangeError", ExceptionClass(r))
}

func TestTagArgIndex(t *testing.T) {
	e := convError("int", "String")
	tagged := tagArgIndex(e, 4)
	assert.Same(t, error(e), tagged)
	assert.Equal(t, 4, e.Index)

	// Other errors pass through untagged and unchanged.
	plain := errors.New("boom")
	assert.Same(t, plain, tagArgIndex(plain, 4))
}

func TestPanicErrorMessages(t *testing.T) {
	assert.EqualError(t, &PanicError{val: "text"}, "text")
	assert.EqualError(t, &PanicError{val: errors.New("wrapped")}, "wrapped")
	assert.EqualError(t, &PanicError{val: 17}, "unhandled panic: 17")
}

func TestPanicHandler(t *testing.T) {
	// No panic leaves the slot alone.
	err := func() (err error) {
		defer panicHandler(&err)
		return nil
	}()
	assert.NoError(t, err)

	// Error payloads pass through so raising via panic keeps its class.
	want := EFrozenError("can't modify frozen String")
	err = func() (err error) {
		defer panicHandler(&err)
		panic(want)
	}()
	assert.Same(t, want, err)

	// Everything else is boxed.
	err = func() (err error) {
		defer panicHandler(&err)
		panic([]int{1})
	}()
	var pe *PanicError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, []int{1}, pe.Recovered())
}
