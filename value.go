package gruby

import "fmt"

// Value is an opaque handle to a value owned by the host runtime.
//
// A Value is copyable and non-owning: the runtime's memory manager keeps the
// referenced object alive for the duration of the method call that produced
// the handle, and no longer. Keep handles on the stack; storing one in a
// heap structure that outlives the call is not safe, which is why
// conversions like TryConvert to []Value are rejected.
//
// The raw representation (tagging, inlined immediates) belongs to the host
// and is never inspected here.
type Value struct {
	raw uintptr
}

// Type tags reported by the host for a Value.
const (
	TypeNil = iota
	TypeFalse
	TypeTrue
	TypeInteger
	TypeFloat
	TypeSymbol
	TypeString
	TypeArray
	TypeHash
	TypeObject
	TypeClass
	TypeModule
	TypeProc
	TypeException
	TypeEnumerator
	TypeData
)

// Type returns the host type tag of v.
func (mrb *State) Type(v Value) int { return mrb.host.TypeOf(v) }

// NilP checks if value is nil.
func (mrb *State) NilP(v Value) bool { return mrb.host.TypeOf(v) == TypeNil }

// Test checks if value is not nil or false.
func (mrb *State) Test(v Value) bool {
	t := mrb.host.TypeOf(v)
	return t != TypeNil && t != TypeFalse
}

// ArrayP checks if value is an Array.
func (mrb *State) ArrayP(v Value) bool { return mrb.host.TypeOf(v) == TypeArray }

// HashP checks if value is a Hash.
func (mrb *State) HashP(v Value) bool { return mrb.host.TypeOf(v) == TypeHash }

// StringP checks if value is a String.
func (mrb *State) StringP(v Value) bool { return mrb.host.TypeOf(v) == TypeString }

// FixnumP checks if value is an Integer.
func (mrb *State) FixnumP(v Value) bool { return mrb.host.TypeOf(v) == TypeInteger }

// FloatP checks if value is a Float.
func (mrb *State) FloatP(v Value) bool { return mrb.host.TypeOf(v) == TypeFloat }

// classOf names v for conversion diagnostics, asking the host for the
// exact class of values the tag alone cannot name.
func (mrb *State) classOf(v Value) string {
	switch mrb.host.TypeOf(v) {
	case TypeObject, TypeData, TypeException:
		return mrb.host.ClassNameOf(v)
	}
	return mrb.TypeName(v)
}

// TypeName returns the Ruby-side name for the type of v.
func (mrb *State) TypeName(v Value) string {
	switch mrb.host.TypeOf(v) {
	case TypeNil:
		return "NilClass"
	case TypeFalse:
		return "FalseClass"
	case TypeTrue:
		return "TrueClass"
	case TypeInteger:
		return "Integer"
	case TypeFloat:
		return "Float"
	case TypeSymbol:
		return "Symbol"
	case TypeString:
		return "String"
	case TypeArray:
		return "Array"
	case TypeHash:
		return "Hash"
	case TypeObject:
		return "Object"
	case TypeClass:
		return "Class"
	case TypeModule:
		return "Module"
	case TypeProc:
		return "Proc"
	case TypeException:
		return "Exception"
	case TypeEnumerator:
		return "Enumerator"
	case TypeData:
		return "Data"
	default:
		return fmt.Sprintf("(unknown type %v)", mrb.host.TypeOf(v))
	}
}
