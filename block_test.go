package gruby

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countTo(n int, produced *int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 1; i <= n; i++ {
			*produced++
			if !yield(i) {
				return
			}
		}
	}
}

func TestYieldDrivesBlock(t *testing.T) {
	h, mrb := newMock()

	var got []int64
	h.blockGiven = true
	h.block = func(args []Value) (Value, error) {
		n, _ := h.IntOf(args[0])
		got = append(got, n)
		return mrb.Nil(), nil
	}

	produced := 0
	m := BindMethod0(func(self string) Yield[int] {
		return YieldIter(countTo(3, &produced))
	})

	v, raised := h.call(mrb, m, mrb.StringValue("recv"), nil)
	require.NoError(t, raised)
	assert.True(t, mrb.NilP(v))
	assert.Equal(t, []int64{1, 2, 3}, got)
	assert.Equal(t, 3, produced)
}

func TestYieldWithoutBlockReturnsEnumerator(t *testing.T) {
	h, mrb := newMock()
	h.blockGiven = false

	enum := h.enumerator()
	produced := 0
	m := BindMethod0(func(self string) Yield[int] {
		return YieldEnum(countTo(3, &produced), enum)
	})

	v, raised := h.call(mrb, m, mrb.StringValue("recv"), nil)
	require.NoError(t, raised)
	assert.Equal(t, enum, v)
	// The sequence is never driven.
	assert.Equal(t, 0, produced)
}

func TestYieldWithoutBlockRaises(t *testing.T) {
	h, mrb := newMock()
	h.blockGiven = false

	m := BindMethod0(func(self string) Yield[int] {
		return YieldIter(countTo(3, new(int)))
	})

	_, raised := h.call(mrb, m, mrb.StringValue("recv"), nil)
	require.Error(t, raised)
	assert.Equal(t, "LocalJumpError", ExceptionClass(raised))
	assert.EqualError(t, raised, "no block given (yield)")
}

func TestYieldBreakStopsIteration(t *testing.T) {
	h, mrb := newMock()

	calls := 0
	h.blockGiven = true
	h.block = func(args []Value) (Value, error) {
		calls++
		if calls == 2 {
			return Value{}, ELocalJumpError("break from proc-closure")
		}
		return mrb.Nil(), nil
	}

	produced := 0
	m := BindMethod0(func(self string) Yield[int] {
		return YieldIter(countTo(10, &produced))
	})

	_, raised := h.call(mrb, m, mrb.StringValue("recv"), nil)
	require.Error(t, raised)
	assert.Equal(t, "LocalJumpError", ExceptionClass(raised))
	// The jump lands at element two; the rest of the sequence is never
	// produced.
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, produced)
}

func TestYieldValues(t *testing.T) {
	h, mrb := newMock()

	var widths []int
	h.blockGiven = true
	h.block = func(args []Value) (Value, error) {
		widths = append(widths, len(args))
		return mrb.Nil(), nil
	}

	m := BindMethod0(func(self string) YieldValues[int] {
		return YieldValuesIter(func(yield func([]int) bool) {
			yield([]int{1, 2})
			yield([]int{3, 4, 5})
		})
	})

	v, raised := h.call(mrb, m, mrb.StringValue("recv"), nil)
	require.NoError(t, raised)
	assert.True(t, mrb.NilP(v))
	assert.Equal(t, []int{2, 3}, widths)
}

func TestYieldSplat(t *testing.T) {
	h, mrb := newMock()

	var got []int64
	h.blockGiven = true
	h.block = func(args []Value) (Value, error) {
		for _, a := range args {
			n, _ := h.IntOf(a)
			got = append(got, n)
		}
		return mrb.Nil(), nil
	}

	m := BindMethod0(func(self string) YieldSplat {
		return YieldSplatIter(func(yield func(Value) bool) {
			yield(h.AryValue([]Value{mrb.FixnumValue(1), mrb.FixnumValue(2)}))
			yield(h.AryValue([]Value{mrb.FixnumValue(3)}))
		})
	})

	v, raised := h.call(mrb, m, mrb.StringValue("recv"), nil)
	require.NoError(t, raised)
	assert.True(t, mrb.NilP(v))
	assert.Equal(t, []int64{1, 2, 3}, got)
}

func TestYieldValuesEnumFallback(t *testing.T) {
	h, mrb := newMock()
	h.blockGiven = false
	enum := h.enumerator()

	m := BindMethod0(func(self string) YieldValues[int] {
		return YieldValuesEnum(func(yield func([]int) bool) {
			t.Fatal("sequence driven without a block")
		}, enum)
	})

	v, raised := h.call(mrb, m, mrb.StringValue("recv"), nil)
	require.NoError(t, raised)
	assert.Equal(t, enum, v)
}
