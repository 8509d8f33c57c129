package gruby

// RArgs wraps the borrowed argument vector of a variable arity call. It is
// valid only for the duration of the call; do not store it or its items.
type RArgs struct {
	mrb   *State
	items []Value
}

// Len returns the number of arguments passed.
func (args RArgs) Len() int { return len(args.items) }

// Slice returns the underlying argument vector, still borrowed.
func (args RArgs) Slice() []Value { return args.items }

// Item returns the argument at index i. Negative indexes count from the
// end. Out of range indexes return nil value.
func (args RArgs) Item(i int) Value {
	if i < 0 {
		i += len(args.items)
	}
	if i < 0 || i >= len(args.items) {
		return args.mrb.Nil()
	}
	return args.items[i]
}

// ItemDef returns the argument at index i, or def if it was not passed or
// is nil.
func (args RArgs) ItemDef(i int, def Value) Value {
	if i < 0 || i >= len(args.items) {
		return def
	}
	v := args.items[i]
	if args.mrb.NilP(v) {
		return def
	}
	return v
}

// Bool returns the truthiness of the argument at index i.
func (args RArgs) Bool(i int) bool { return args.mrb.Test(args.Item(i)) }

// Int returns the argument at index i converted to int.
func (args RArgs) Int(i int) (int, error) {
	n, err := TryConvert[int](args.mrb, args.Item(i))
	if err != nil {
		return 0, tagArgIndex(err, i)
	}
	return n, nil
}

// Float returns the argument at index i converted to float64.
func (args RArgs) Float(i int) (float64, error) {
	f, err := TryConvert[float64](args.mrb, args.Item(i))
	if err != nil {
		return 0, tagArgIndex(err, i)
	}
	return f, nil
}

// String returns the argument at index i converted to string.
func (args RArgs) String(i int) (string, error) {
	s, err := TryConvert[string](args.mrb, args.Item(i))
	if err != nil {
		return "", tagArgIndex(err, i)
	}
	return s, nil
}
