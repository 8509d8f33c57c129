package gruby

import "iter"

// Yield marks a method result as block driven. When the call carries a
// block the sequence is fed to it one element at a time and the method
// returns nil; when it does not, the enumerator handle set with YieldEnum
// is returned instead, so callers get lazy iteration for free.
//
// A block side jump (break, or an exception in the block) surfaces as an
// error from the host, stops the iteration at that element and propagates.
type Yield[T any] struct {
	seq     iter.Seq[T]
	enum    Value
	hasEnum bool
}

// YieldIter builds a Yield with no enumerator fallback. Calling the method
// without a block raises LocalJumpError.
func YieldIter[T any](seq iter.Seq[T]) Yield[T] {
	return Yield[T]{seq: seq}
}

// YieldEnum builds a Yield that returns enum when no block is given.
func YieldEnum[T any](seq iter.Seq[T], enum Value) Yield[T] {
	return Yield[T]{seq: seq, enum: enum, hasEnum: true}
}

func (y Yield[T]) intoReturnValue(mrb *State) (Value, error) {
	if !mrb.BlockGiven() {
		if y.hasEnum {
			return y.enum, nil
		}
		return Value{}, ELocalJumpError("no block given (yield)")
	}
	for item := range y.seq {
		v, err := intoValue(mrb, item)
		if err != nil {
			return Value{}, err
		}
		if _, err := mrb.host.Yield(v); err != nil {
			return Value{}, err
		}
	}
	return mrb.Nil(), nil
}

// YieldValues is Yield for blocks taking multiple arguments: each element
// of the sequence is a slice whose items become the block's positional
// arguments.
type YieldValues[T any] struct {
	seq     iter.Seq[[]T]
	enum    Value
	hasEnum bool
}

// YieldValuesIter builds a YieldValues with no enumerator fallback.
func YieldValuesIter[T any](seq iter.Seq[[]T]) YieldValues[T] {
	return YieldValues[T]{seq: seq}
}

// YieldValuesEnum builds a YieldValues that returns enum when no block is
// given.
func YieldValuesEnum[T any](seq iter.Seq[[]T], enum Value) YieldValues[T] {
	return YieldValues[T]{seq: seq, enum: enum, hasEnum: true}
}

func (y YieldValues[T]) intoReturnValue(mrb *State) (Value, error) {
	if !mrb.BlockGiven() {
		if y.hasEnum {
			return y.enum, nil
		}
		return Value{}, ELocalJumpError("no block given (yield)")
	}
	for items := range y.seq {
		vals := make([]Value, len(items))
		for i, item := range items {
			v, err := intoValue(mrb, item)
			if err != nil {
				return Value{}, err
			}
			vals[i] = v
		}
		if _, err := mrb.host.YieldValues(vals); err != nil {
			return Value{}, err
		}
	}
	return mrb.Nil(), nil
}

// YieldSplat is Yield over pre-built Array handles, each splatted into the
// block's arguments.
type YieldSplat struct {
	seq     iter.Seq[Value]
	enum    Value
	hasEnum bool
}

// YieldSplatIter builds a YieldSplat with no enumerator fallback.
func YieldSplatIter(seq iter.Seq[Value]) YieldSplat {
	return YieldSplat{seq: seq}
}

// YieldSplatEnum builds a YieldSplat that returns enum when no block is
// given.
func YieldSplatEnum(seq iter.Seq[Value], enum Value) YieldSplat {
	return YieldSplat{seq: seq, enum: enum, hasEnum: true}
}

func (y YieldSplat) intoReturnValue(mrb *State) (Value, error) {
	if !mrb.BlockGiven() {
		if y.hasEnum {
			return y.enum, nil
		}
		return Value{}, ELocalJumpError("no block given (yield)")
	}
	for ary := range y.seq {
		if _, err := mrb.host.YieldSplat(ary); err != nil {
			return Value{}, err
		}
	}
	return mrb.Nil(), nil
}
