package gruby

// State wraps a host runtime connection and is the base for all binding
// calls. Obtain one with NewState and thread it through; there is no
// process-global state.
type State struct {
	host Host
}

// NewState wraps a host runtime in a State.
func NewState(host Host) *State {
	return &State{host: host}
}

// Host returns the wrapped host runtime.
func (mrb *State) Host() Host { return mrb.host }

// Nil returns the nil value handle.
func (mrb *State) Nil() Value { return mrb.host.NilValue() }

// False returns the false value handle.
func (mrb *State) False() Value { return mrb.host.BoolValue(false) }

// True returns the true value handle.
func (mrb *State) True() Value { return mrb.host.BoolValue(true) }

// BoolValue converts a bool to a value handle.
func (mrb *State) BoolValue(b bool) Value { return mrb.host.BoolValue(b) }

// FixnumValue converts an int to a value handle.
func (mrb *State) FixnumValue(n int) Value { return mrb.host.IntValue(int64(n)) }

// FloatValue converts a float to a value handle.
func (mrb *State) FloatValue(f float64) Value { return mrb.host.FloatValue(f) }

// StringValue converts a string to a value handle.
func (mrb *State) StringValue(s string) Value { return mrb.host.StrValue(s) }

// DefineMethod enters the trampoline m into the method table of recv
// (a class or module handle) under name. The trampoline is the only
// artifact handed to the runtime; everything else stays on the Go side.
func (mrb *State) DefineMethod(recv Value, name string, m Method) {
	mrb.host.DefineMethod(recv, name, m)
}

// BlockGiven reports whether the current method call carries a block.
func (mrb *State) BlockGiven() bool { return mrb.host.BlockGiven() }

// Yield calls the block of the current method call with one argument.
func (mrb *State) Yield(arg Value) (Value, error) { return mrb.host.Yield(arg) }

// YieldValues calls the block of the current method call with multiple
// arguments.
func (mrb *State) YieldValues(args []Value) (Value, error) { return mrb.host.YieldValues(args) }

// YieldSplat calls the block of the current method call splatting the
// array handle ary.
func (mrb *State) YieldSplat(ary Value) (Value, error) { return mrb.host.YieldSplat(ary) }

// RaiseError converts err to a Ruby exception and raises it in the host
// runtime. It never returns; the Value result only exists to satisfy
// trampoline signatures, as in:
//
//	return mrb.RaiseError(err)
func (mrb *State) RaiseError(err error) Value {
	mrb.host.Raise(err)
	// The host Raise contract is to transfer control and never return.
	panic("gruby: host Raise returned")
}
