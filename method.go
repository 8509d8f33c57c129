package gruby

//go:generate go run ./cmd/genmethod -out method_gen.go

// Method is implemented by the raw trampoline signatures the host's method
// table accepts. Values of these types are what DefineMethod hands to the
// runtime; everything else in this package exists to construct them.
//
// Arity selects the calling convention:
//
//	| Arity | Signature                                         |
//	|-------|---------------------------------------------------|
//	|    -2 | FuncAry:  self + args collected in an Array handle |
//	|    -1 | FuncVar:  self + borrowed argument vector          |
//	|  0..16| FuncN:    self + exactly N positional handles      |
//
// Trampolines are not meant to be written by hand; use the BindMethod and
// BindFunction constructors so calls get conversion and error handling.
type Method interface {
	Arity() int
}

// FuncAry is the raw arity -2 trampoline signature: the runtime passes all
// positional arguments pre-collected in a single Array handle.
type FuncAry func(mrb *State, self Value, args Value) Value

// Arity implements Method.
func (FuncAry) Arity() int { return -2 }

// FuncVar is the raw arity -1 trampoline signature: the runtime passes the
// argument vector as a borrowed slice, valid only for the duration of the
// call.
type FuncVar func(mrb *State, self Value, args []Value) Value

// Arity implements Method.
func (FuncVar) Arity() int { return -1 }

// returnValuer is implemented by the return shapes that need more than a
// plain Go-to-Ruby conversion (the Yield family).
type returnValuer interface {
	intoReturnValue(mrb *State) (Value, error)
}

// intoReturnValue normalizes everything a bound function may return into a
// handle or an error for the raise path.
func intoReturnValue(mrb *State, res interface{}) (Value, error) {
	if rv, ok := res.(returnValuer); ok {
		return rv.intoReturnValue(mrb)
	}
	return intoValue(mrb, res)
}

// convertArg converts one positional handle, tagging conversion failures
// with the argument index.
func convertArg[T any](mrb *State, v Value, index int) (T, error) {
	t, err := TryConvert[T](mrb, v)
	if err != nil {
		return t, tagArgIndex(err, index)
	}
	return t, nil
}

// MethodAry wraps a Go function as a Ruby method taking self and a Ruby
// array of arguments, with type conversions and error handling. The
// aggregate is converted as one unit; per-element conversion is up to the
// wrapped function.
type MethodAry[RbSelf, Args, Res any] struct {
	fn func(RbSelf, Args) (Res, error)
}

// NewMethodAry wraps fn in a MethodAry adapter.
func NewMethodAry[RbSelf, Args, Res any](fn func(RbSelf, Args) Res) MethodAry[RbSelf, Args, Res] {
	return MethodAry[RbSelf, Args, Res]{fn: func(s RbSelf, a Args) (Res, error) { return fn(s, a), nil }}
}

// NewMethodErrAry wraps a fallible fn in a MethodAry adapter.
func NewMethodErrAry[RbSelf, Args, Res any](fn func(RbSelf, Args) (Res, error)) MethodAry[RbSelf, Args, Res] {
	return MethodAry[RbSelf, Args, Res]{fn: fn}
}

func (m MethodAry[RbSelf, Args, Res]) callConvertValue(mrb *State, self, args Value) (Value, error) {
	s, err := convertArg[RbSelf](mrb, self, ArgSelf)
	if err != nil {
		return Value{}, err
	}
	a, err := convertArg[Args](mrb, args, 0)
	if err != nil {
		return Value{}, err
	}
	res, err := m.fn(s, a)
	if err != nil {
		return Value{}, err
	}
	return intoReturnValue(mrb, res)
}

// CallHandleError invokes the wrapped function, trapping panics and raising
// conversion and user errors on the Ruby side.
func (m MethodAry[RbSelf, Args, Res]) CallHandleError(mrb *State, self, args Value) Value {
	v, err := func() (v Value, err error) {
		defer panicHandler(&err)
		return m.callConvertValue(mrb, self, args)
	}()
	if err != nil {
		return mrb.RaiseError(err)
	}
	return v
}

// BindMethodAry returns the raw arity -2 trampoline for fn.
func BindMethodAry[RbSelf, Args, Res any](fn func(RbSelf, Args) Res) FuncAry {
	return func(mrb *State, self Value, args Value) Value {
		return NewMethodAry(fn).CallHandleError(mrb, self, args)
	}
}

// BindMethodErrAry returns the raw arity -2 trampoline for a fallible fn.
func BindMethodErrAry[RbSelf, Args, Res any](fn func(RbSelf, Args) (Res, error)) FuncAry {
	return func(mrb *State, self Value, args Value) Value {
		return NewMethodErrAry(fn).CallHandleError(mrb, self, args)
	}
}

// FunctionAry wraps a Go function as a Ruby method taking a Ruby array of
// arguments and ignoring self.
type FunctionAry[Args, Res any] struct {
	fn func(Args) (Res, error)
}

// NewFunctionAry wraps fn in a FunctionAry adapter.
func NewFunctionAry[Args, Res any](fn func(Args) Res) FunctionAry[Args, Res] {
	return FunctionAry[Args, Res]{fn: func(a Args) (Res, error) { return fn(a), nil }}
}

// NewFunctionErrAry wraps a fallible fn in a FunctionAry adapter.
func NewFunctionErrAry[Args, Res any](fn func(Args) (Res, error)) FunctionAry[Args, Res] {
	return FunctionAry[Args, Res]{fn: fn}
}

func (m FunctionAry[Args, Res]) callConvertValue(mrb *State, args Value) (Value, error) {
	a, err := convertArg[Args](mrb, args, 0)
	if err != nil {
		return Value{}, err
	}
	res, err := m.fn(a)
	if err != nil {
		return Value{}, err
	}
	return intoReturnValue(mrb, res)
}

// CallHandleError invokes the wrapped function, trapping panics and raising
// conversion and user errors on the Ruby side. The self slot is never
// converted.
func (m FunctionAry[Args, Res]) CallHandleError(mrb *State, args Value) Value {
	v, err := func() (v Value, err error) {
		defer panicHandler(&err)
		return m.callConvertValue(mrb, args)
	}()
	if err != nil {
		return mrb.RaiseError(err)
	}
	return v
}

// BindFunctionAry returns the raw arity -2 trampoline for fn.
func BindFunctionAry[Args, Res any](fn func(Args) Res) FuncAry {
	return func(mrb *State, self Value, args Value) Value {
		return NewFunctionAry(fn).CallHandleError(mrb, args)
	}
}

// BindFunctionErrAry returns the raw arity -2 trampoline for a fallible fn.
func BindFunctionErrAry[Args, Res any](fn func(Args) (Res, error)) FuncAry {
	return func(mrb *State, self Value, args Value) Value {
		return NewFunctionErrAry(fn).CallHandleError(mrb, args)
	}
}

// MethodVar wraps a Go function as a Ruby method taking self and a
// variable argument list, with type conversions and error handling. The
// wrapped function receives the raw argument vector wrapped in RArgs
// without copying.
type MethodVar[RbSelf, Res any] struct {
	fn func(RbSelf, RArgs) (Res, error)
}

// NewMethodVar wraps fn in a MethodVar adapter.
func NewMethodVar[RbSelf, Res any](fn func(RbSelf, RArgs) Res) MethodVar[RbSelf, Res] {
	return MethodVar[RbSelf, Res]{fn: func(s RbSelf, a RArgs) (Res, error) { return fn(s, a), nil }}
}

// NewMethodErrVar wraps a fallible fn in a MethodVar adapter.
func NewMethodErrVar[RbSelf, Res any](fn func(RbSelf, RArgs) (Res, error)) MethodVar[RbSelf, Res] {
	return MethodVar[RbSelf, Res]{fn: fn}
}

func (m MethodVar[RbSelf, Res]) callConvertValue(mrb *State, self Value, args []Value) (Value, error) {
	s, err := convertArg[RbSelf](mrb, self, ArgSelf)
	if err != nil {
		return Value{}, err
	}
	res, err := m.fn(s, RArgs{mrb: mrb, items: args})
	if err != nil {
		return Value{}, err
	}
	return intoReturnValue(mrb, res)
}

// CallHandleError invokes the wrapped function, trapping panics and raising
// conversion and user errors on the Ruby side.
func (m MethodVar[RbSelf, Res]) CallHandleError(mrb *State, self Value, args []Value) Value {
	v, err := func() (v Value, err error) {
		defer panicHandler(&err)
		return m.callConvertValue(mrb, self, args)
	}()
	if err != nil {
		return mrb.RaiseError(err)
	}
	return v
}

// BindMethodVar returns the raw arity -1 trampoline for fn.
func BindMethodVar[RbSelf, Res any](fn func(RbSelf, RArgs) Res) FuncVar {
	return func(mrb *State, self Value, args []Value) Value {
		return NewMethodVar(fn).CallHandleError(mrb, self, args)
	}
}

// BindMethodErrVar returns the raw arity -1 trampoline for a fallible fn.
func BindMethodErrVar[RbSelf, Res any](fn func(RbSelf, RArgs) (Res, error)) FuncVar {
	return func(mrb *State, self Value, args []Value) Value {
		return NewMethodErrVar(fn).CallHandleError(mrb, self, args)
	}
}

// FunctionVar wraps a Go function as a Ruby method taking a variable
// argument list and ignoring self.
type FunctionVar[Res any] struct {
	fn func(RArgs) (Res, error)
}

// NewFunctionVar wraps fn in a FunctionVar adapter.
func NewFunctionVar[Res any](fn func(RArgs) Res) FunctionVar[Res] {
	return FunctionVar[Res]{fn: func(a RArgs) (Res, error) { return fn(a), nil }}
}

// NewFunctionErrVar wraps a fallible fn in a FunctionVar adapter.
func NewFunctionErrVar[Res any](fn func(RArgs) (Res, error)) FunctionVar[Res] {
	return FunctionVar[Res]{fn: fn}
}

func (m FunctionVar[Res]) callConvertValue(mrb *State, args []Value) (Value, error) {
	res, err := m.fn(RArgs{mrb: mrb, items: args})
	if err != nil {
		return Value{}, err
	}
	return intoReturnValue(mrb, res)
}

// CallHandleError invokes the wrapped function, trapping panics and raising
// conversion and user errors on the Ruby side. The self slot is never
// converted.
func (m FunctionVar[Res]) CallHandleError(mrb *State, args []Value) Value {
	v, err := func() (v Value, err error) {
		defer panicHandler(&err)
		return m.callConvertValue(mrb, args)
	}()
	if err != nil {
		return mrb.RaiseError(err)
	}
	return v
}

// BindFunctionVar returns the raw arity -1 trampoline for fn.
func BindFunctionVar[Res any](fn func(RArgs) Res) FuncVar {
	return func(mrb *State, self Value, args []Value) Value {
		return NewFunctionVar(fn).CallHandleError(mrb, args)
	}
}

// BindFunctionErrVar returns the raw arity -1 trampoline for a fallible fn.
func BindFunctionErrVar[Res any](fn func(RArgs) (Res, error)) FuncVar {
	return func(mrb *State, self Value, args []Value) Value {
		return NewFunctionErrVar(fn).CallHandleError(mrb, args)
	}
}

// InitFn is the signature of an extension entry point after wrapping.
type InitFn func(mrb *State)

// BindInit wraps an extension init function with error and panic handling.
// Conversion is not involved; an error or panic raises in the runtime just
// as from a method.
func BindInit(fn func(mrb *State) error) InitFn {
	return func(mrb *State) {
		var err error
		func() {
			defer panicHandler(&err)
			err = fn(mrb)
		}()
		if err != nil {
			mrb.RaiseError(err)
		}
	}
}

// BlockFn is the raw signature of a Go function used as a Ruby block: the
// borrowed argument vector plus the handle of a block passed to the block
// itself (nil value if none).
type BlockFn func(mrb *State, args []Value, block Value) Value

// Block wraps a Go function for use as a Ruby block, with result
// conversion and error handling.
type Block[Res any] struct {
	fn func(RArgs, Value) (Res, error)
}

// NewBlock wraps fn in a Block adapter.
func NewBlock[Res any](fn func(args RArgs, block Value) Res) Block[Res] {
	return Block[Res]{fn: func(a RArgs, b Value) (Res, error) { return fn(a, b), nil }}
}

// NewBlockErr wraps a fallible fn in a Block adapter.
func NewBlockErr[Res any](fn func(args RArgs, block Value) (Res, error)) Block[Res] {
	return Block[Res]{fn: fn}
}

func (b Block[Res]) callConvertValue(mrb *State, args []Value, block Value) (Value, error) {
	res, err := b.fn(RArgs{mrb: mrb, items: args}, block)
	if err != nil {
		return Value{}, err
	}
	return intoReturnValue(mrb, res)
}

// CallHandleError invokes the wrapped function, trapping panics and raising
// errors on the Ruby side.
func (b Block[Res]) CallHandleError(mrb *State, args []Value, block Value) Value {
	v, err := func() (v Value, err error) {
		defer panicHandler(&err)
		return b.callConvertValue(mrb, args, block)
	}()
	if err != nil {
		return mrb.RaiseError(err)
	}
	return v
}

// BindBlock returns the raw block trampoline for fn.
func BindBlock[Res any](fn func(args RArgs, block Value) Res) BlockFn {
	return func(mrb *State, args []Value, block Value) Value {
		return NewBlock(fn).CallHandleError(mrb, args, block)
	}
}

// BindBlockErr returns the raw block trampoline for a fallible fn.
func BindBlockErr[Res any](fn func(args RArgs, block Value) (Res, error)) BlockFn {
	return func(mrb *State, args []Value, block Value) Value {
		return NewBlockErr(fn).CallHandleError(mrb, args, block)
	}
}
