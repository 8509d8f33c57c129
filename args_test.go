package gruby

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRArgsItem(t *testing.T) {
	_, mrb := newMock()
	args := RArgs{mrb: mrb, items: []Value{
		mrb.FixnumValue(10),
		mrb.StringValue("mid"),
		mrb.FixnumValue(30),
	}}

	assert.Equal(t, 3, args.Len())
	assert.Len(t, args.Slice(), 3)

	n, err := args.Int(0)
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	s, err := args.String(1)
	require.NoError(t, err)
	assert.Equal(t, "mid", s)

	// Negative indexes count from the end.
	n, err = args.Int(-1)
	require.NoError(t, err)
	assert.Equal(t, 30, n)

	// Out of range is nil, not a fault.
	assert.True(t, mrb.NilP(args.Item(5)))
	assert.True(t, mrb.NilP(args.Item(-4)))
}

func TestRArgsItemDef(t *testing.T) {
	_, mrb := newMock()
	def := mrb.FixnumValue(7)
	args := RArgs{mrb: mrb, items: []Value{mrb.Nil(), mrb.FixnumValue(1)}}

	assert.Equal(t, def, args.ItemDef(0, def))
	assert.Equal(t, def, args.ItemDef(2, def))
	assert.Equal(t, args.Item(1), args.ItemDef(1, def))
}

func TestRArgsTypedAccessors(t *testing.T) {
	_, mrb := newMock()
	args := RArgs{mrb: mrb, items: []Value{
		mrb.FloatValue(2.5),
		mrb.Nil(),
		mrb.StringValue("nope"),
	}}

	f, err := args.Float(0)
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	assert.False(t, args.Bool(1))
	assert.True(t, args.Bool(0))

	// Failures carry the argument position.
	_, err = args.Int(2)
	require.Error(t, err)
	var ce *ConvertError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 2, ce.Index)
}
