// Package gruby exposes Go functions as Ruby methods.
//
// The package is the dispatch core of a Ruby binding: it turns typed Go
// functions into the raw, fixed-signature trampolines a Ruby runtime's
// method table accepts, handling argument conversion, result conversion,
// and error translation on every call.
//
// The runtime itself (object layout, tagging, garbage collection, class
// hierarchy) lives behind the Host interface. An embedding supplies a Host,
// wraps it in a State, and from then on binds methods:
//
//	mrb := gruby.NewState(host)
//
//	mrb.DefineMethod(class, "distance", gruby.BindMethod2(
//		func(self, x, y float64) float64 {
//			return self * math.Hypot(x, y)
//		}))
//
// Ruby calls the method with plain value handles; the trampoline converts
// self and each positional argument to the Go parameter types, calls the
// function, and converts the result back. A failed conversion or an error
// returned by the function is raised as a Ruby exception. A panic inside
// the function is caught at the trampoline boundary and raised the same
// way; no panic ever propagates past a trampoline into the runtime.
//
// Methods are bound per arity. BindMethod0 through BindMethod16 cover
// fixed argument counts, BindMethodVar takes all arguments as a slice, and
// BindMethodAry takes them pre-collected in a Ruby array. The BindFunction
// variants drop the receiver for module functions. The arity family in
// method_gen.go is produced by cmd/genmethod; regenerate it with go
// generate rather than editing it.
//
// Value handles are only valid during the call that produced them. Do not
// store them in heap structures that outlive the call; conversions that
// would do so (such as []Value) are rejected.
package gruby
