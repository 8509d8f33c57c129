package gruby

// Host is the surface of the Ruby runtime the dispatch core calls into.
//
// Everything the core knows about values goes through these primitives:
// tagging, scalar and container construction, the block protocol, the
// method table, and exception raising. An embedding implements Host over
// its runtime; the core never assumes anything about how handles are
// represented beyond what Host reports.
//
// Host methods are called on the runtime's own thread, synchronously,
// during a method call the runtime itself initiated. None of them may be
// called from another goroutine.
type Host interface {
	// TypeOf reports the type tag of v (one of the Type constants).
	TypeOf(v Value) int
	// ClassNameOf returns the Ruby class name of v, for diagnostics.
	ClassNameOf(v Value) string

	NilValue() Value
	BoolValue(b bool) Value
	IntValue(i int64) Value
	// IntOf returns the integer behind v, or false if v is not an Integer.
	IntOf(v Value) (int64, bool)
	FloatValue(f float64) Value
	// FloatOf returns the float behind v, or false if v is not a Float.
	FloatOf(v Value) (float64, bool)
	StrValue(s string) Value
	// StrOf returns the bytes behind v, or false if v is not a String.
	StrOf(v Value) (string, bool)
	SymValue(name string) Value
	// SymOf returns the name behind v, or false if v is not a Symbol.
	SymOf(v Value) (string, bool)
	AryValue(items []Value) Value
	// AryLen returns the length of v, or false if v is not an Array.
	AryLen(v Value) (int, bool)
	AryRef(v Value, i int) Value
	HashValue(pairs [][2]Value) Value
	// HashPairs returns the key/value pairs of v, or false if v is not a
	// Hash.
	HashPairs(v Value) ([][2]Value, bool)

	// DefineMethod enters m into the method table of recv under name.
	// recv is a class or module handle. The runtime calls m back with the
	// calling convention selected by m.Arity; Dispatch is the shim for
	// call sites that hold a raw argument vector.
	DefineMethod(recv Value, name string, m Method)

	// BlockGiven reports whether the current method call carries a block.
	BlockGiven() bool
	// Yield calls the current block with one argument. A returned error
	// is a host-side jump (break, runtime exception) that must stop any
	// iteration in progress and be re-raised unchanged.
	Yield(arg Value) (Value, error)
	// YieldValues calls the current block with multiple arguments.
	YieldValues(args []Value) (Value, error)
	// YieldSplat calls the current block splatting the array handle ary.
	YieldSplat(ary Value) (Value, error)

	// Raise converts err to an exception object and transfers control
	// back into the runtime's exception handling. It never returns; the
	// trampoline that called it performs no further work. ExceptionClass
	// reports the class to instantiate for err.
	Raise(err error)
}
