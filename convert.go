package gruby

import (
	"fmt"
	"math"
	"reflect"
)

// TryConvert converts a value handle to the Go type T.
//
// Scalars convert by value: integers are range-checked against the width of
// T and fail with a RangeError rather than wrapping, floats accept Integer
// values, bool follows Ruby truthiness and never fails. Pointers map nil to
// a nil pointer, slices and maps convert from Array and Hash element-wise.
// Named types and compound types go through a reflection fallback.
//
// Conversions that would put handles on the heap ([]Value, Value-keyed or
// Value-valued maps) are rejected; handles must not outlive the call.
func TryConvert[T any](mrb *State, v Value) (T, error) {
	var t T
	switch p := any(&t).(type) {
	case *Value:
		*p = v
	case *bool:
		*p = mrb.Test(v)
	case *int:
		i, err := tryInt(mrb, v, "int", math.MinInt, math.MaxInt)
		if err != nil {
			return t, err
		}
		*p = int(i)
	case *int8:
		i, err := tryInt(mrb, v, "int8", math.MinInt8, math.MaxInt8)
		if err != nil {
			return t, err
		}
		*p = int8(i)
	case *int16:
		i, err := tryInt(mrb, v, "int16", math.MinInt16, math.MaxInt16)
		if err != nil {
			return t, err
		}
		*p = int16(i)
	case *int32:
		i, err := tryInt(mrb, v, "int32", math.MinInt32, math.MaxInt32)
		if err != nil {
			return t, err
		}
		*p = int32(i)
	case *int64:
		i, err := tryInt(mrb, v, "int64", math.MinInt64, math.MaxInt64)
		if err != nil {
			return t, err
		}
		*p = i
	case *uint:
		i, err := tryInt(mrb, v, "uint", 0, uintMax)
		if err != nil {
			return t, err
		}
		*p = uint(i)
	case *uint8:
		i, err := tryInt(mrb, v, "uint8", 0, math.MaxUint8)
		if err != nil {
			return t, err
		}
		*p = uint8(i)
	case *uint16:
		i, err := tryInt(mrb, v, "uint16", 0, math.MaxUint16)
		if err != nil {
			return t, err
		}
		*p = uint16(i)
	case *uint32:
		i, err := tryInt(mrb, v, "uint32", 0, math.MaxUint32)
		if err != nil {
			return t, err
		}
		*p = uint32(i)
	case *uint64:
		i, err := tryInt(mrb, v, "uint64", 0, math.MaxInt64)
		if err != nil {
			return t, err
		}
		*p = uint64(i)
	case *float32:
		f, err := tryFloat(mrb, v, "float32")
		if err != nil {
			return t, err
		}
		*p = float32(f)
	case *float64:
		f, err := tryFloat(mrb, v, "float64")
		if err != nil {
			return t, err
		}
		*p = f
	case *string:
		s, ok := mrb.host.StrOf(v)
		if !ok {
			if sym, symOk := mrb.host.SymOf(v); symOk {
				*p = sym
				return t, nil
			}
			return t, convError("string", mrb.classOf(v))
		}
		*p = s
	case *[]byte:
		s, ok := mrb.host.StrOf(v)
		if !ok {
			return t, convError("[]byte", mrb.classOf(v))
		}
		*p = []byte(s)
	case *interface{}:
		*p = mrb.Intf(v)
	default:
		if err := convertReflect(mrb, v, reflect.ValueOf(&t).Elem()); err != nil {
			return t, err
		}
	}
	return t, nil
}

// uintMax is the largest host integer a uint can hold: the int64 host
// range, narrowed further on 32-bit platforms.
var uintMax = func() int64 {
	if m := uint64(^uint(0)); m < math.MaxInt64 {
		return int64(m)
	}
	return math.MaxInt64
}()

func tryInt(mrb *State, v Value, expected string, min, max int64) (int64, error) {
	i, ok := mrb.host.IntOf(v)
	if !ok {
		return 0, convError(expected, mrb.classOf(v))
	}
	if i < min || i > max {
		return 0, rangeError(expected, fmt.Sprintf("integer %d", i))
	}
	return i, nil
}

func tryFloat(mrb *State, v Value, expected string) (float64, error) {
	if f, ok := mrb.host.FloatOf(v); ok {
		return f, nil
	}
	if i, ok := mrb.host.IntOf(v); ok {
		return float64(i), nil
	}
	return 0, convError(expected, mrb.classOf(v))
}

var valueType = reflect.TypeOf(Value{})

// convertReflect handles pointer, slice, map and named types. rv must be
// addressable.
func convertReflect(mrb *State, v Value, rv reflect.Value) error {
	rt := rv.Type()

	if rt == valueType {
		rv.Set(reflect.ValueOf(v))
		return nil
	}

	switch rt.Kind() {
	case reflect.Ptr:
		if mrb.NilP(v) {
			rv.SetZero()
			return nil
		}
		elem := reflect.New(rt.Elem())
		if err := convertReflect(mrb, v, elem.Elem()); err != nil {
			return err
		}
		rv.Set(elem)
		return nil

	case reflect.Slice:
		if rt.Elem() == valueType {
			return convError(rt.String(), "Array; handles must not be stored on the heap")
		}
		n, ok := mrb.host.AryLen(v)
		if !ok {
			return convError(rt.String(), mrb.classOf(v))
		}
		out := reflect.MakeSlice(rt, n, n)
		for i := 0; i < n; i++ {
			if err := convertReflect(mrb, mrb.host.AryRef(v, i), out.Index(i)); err != nil {
				return err
			}
		}
		rv.Set(out)
		return nil

	case reflect.Map:
		if rt.Key() == valueType || rt.Elem() == valueType {
			return convError(rt.String(), "Hash; handles must not be stored on the heap")
		}
		pairs, ok := mrb.host.HashPairs(v)
		if !ok {
			return convError(rt.String(), mrb.classOf(v))
		}
		out := reflect.MakeMapWithSize(rt, len(pairs))
		for _, pair := range pairs {
			key := reflect.New(rt.Key()).Elem()
			if err := convertReflect(mrb, pair[0], key); err != nil {
				return err
			}
			val := reflect.New(rt.Elem()).Elem()
			if err := convertReflect(mrb, pair[1], val); err != nil {
				return err
			}
			out.SetMapIndex(key, val)
		}
		rv.Set(out)
		return nil

	case reflect.Bool:
		rv.SetBool(mrb.Test(v))
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, ok := mrb.host.IntOf(v)
		if !ok {
			return convError(rt.String(), mrb.classOf(v))
		}
		if rv.OverflowInt(i) {
			return rangeError(rt.String(), fmt.Sprintf("integer %d", i))
		}
		rv.SetInt(i)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, ok := mrb.host.IntOf(v)
		if !ok {
			return convError(rt.String(), mrb.classOf(v))
		}
		if i < 0 || rv.OverflowUint(uint64(i)) {
			return rangeError(rt.String(), fmt.Sprintf("integer %d", i))
		}
		rv.SetUint(uint64(i))
		return nil

	case reflect.Float32, reflect.Float64:
		f, err := tryFloat(mrb, v, rt.String())
		if err != nil {
			return err
		}
		rv.SetFloat(f)
		return nil

	case reflect.String:
		s, ok := mrb.host.StrOf(v)
		if !ok {
			return convError(rt.String(), mrb.classOf(v))
		}
		rv.SetString(s)
		return nil

	case reflect.Interface:
		if rt.NumMethod() == 0 {
			rv.Set(reflect.ValueOf(mrb.Intf(v)))
			return nil
		}
	}
	return convError(rt.String(), mrb.classOf(v))
}

// Intf converts a value handle to a plain Go interface value: nil, bool,
// int64, float64, string (strings and symbols), []interface{} for arrays
// and map[interface{}]interface{} for hashes. Other types stay as Value.
func (mrb *State) Intf(v Value) interface{} {
	switch mrb.host.TypeOf(v) {
	case TypeNil:
		return nil
	case TypeFalse:
		return false
	case TypeTrue:
		return true
	case TypeInteger:
		i, _ := mrb.host.IntOf(v)
		return i
	case TypeFloat:
		f, _ := mrb.host.FloatOf(v)
		return f
	case TypeString:
		s, _ := mrb.host.StrOf(v)
		return s
	case TypeSymbol:
		s, _ := mrb.host.SymOf(v)
		return s
	case TypeArray:
		n, _ := mrb.host.AryLen(v)
		arry := make([]interface{}, n)
		for i := range arry {
			arry[i] = mrb.Intf(mrb.host.AryRef(v, i))
		}
		return arry
	case TypeHash:
		pairs, _ := mrb.host.HashPairs(v)
		hash := make(map[interface{}]interface{}, len(pairs))
		for _, pair := range pairs {
			hash[mrb.Intf(pair[0])] = mrb.Intf(pair[1])
		}
		return hash
	default:
		return v
	}
}

// intoValue converts a Go value to a handle. The output contract assumes
// the caller is on the happy path and will not re-enter a failure branch;
// unsupported types report a TypeError that the trampoline raises.
func intoValue(mrb *State, v interface{}) (Value, error) {
	switch x := v.(type) {
	case nil:
		return mrb.Nil(), nil
	case Value:
		return x, nil
	case bool:
		return mrb.host.BoolValue(x), nil
	case int:
		return mrb.host.IntValue(int64(x)), nil
	case int8:
		return mrb.host.IntValue(int64(x)), nil
	case int16:
		return mrb.host.IntValue(int64(x)), nil
	case int32:
		return mrb.host.IntValue(int64(x)), nil
	case int64:
		return mrb.host.IntValue(x), nil
	case uint:
		return uintValue(mrb, uint64(x))
	case uint8:
		return mrb.host.IntValue(int64(x)), nil
	case uint16:
		return mrb.host.IntValue(int64(x)), nil
	case uint32:
		return mrb.host.IntValue(int64(x)), nil
	case uint64:
		return uintValue(mrb, x)
	case float32:
		return mrb.host.FloatValue(float64(x)), nil
	case float64:
		return mrb.host.FloatValue(x), nil
	case string:
		return mrb.host.StrValue(x), nil
	case []byte:
		return mrb.host.StrValue(string(x)), nil
	case error:
		return mrb.host.StrValue(x.Error()), nil
	}
	return intoValueReflect(mrb, reflect.ValueOf(v))
}

// uintValue converts an unsigned Go value to an integer handle. Host
// integers are int64, so values above MaxInt64 fail rather than sign-wrap.
func uintValue(mrb *State, u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return mrb.Nil(), Raisef(eRangeError, "integer %d too big to convert", u)
	}
	return mrb.host.IntValue(int64(u)), nil
}

func intoValueReflect(mrb *State, rv reflect.Value) (Value, error) {
	if rv.Type() == valueType {
		return rv.Interface().(Value), nil
	}
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return mrb.Nil(), nil
		}
		return intoValue(mrb, rv.Elem().Interface())
	case reflect.Bool:
		return mrb.host.BoolValue(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return mrb.host.IntValue(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return uintValue(mrb, rv.Uint())
	case reflect.Float32, reflect.Float64:
		return mrb.host.FloatValue(rv.Float()), nil
	case reflect.String:
		return mrb.host.StrValue(rv.String()), nil
	case reflect.Slice, reflect.Array:
		items := make([]Value, rv.Len())
		for i := range items {
			item, err := intoValue(mrb, rv.Index(i).Interface())
			if err != nil {
				return mrb.Nil(), err
			}
			items[i] = item
		}
		return mrb.host.AryValue(items), nil
	case reflect.Map:
		pairs := make([][2]Value, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key, err := intoValue(mrb, iter.Key().Interface())
			if err != nil {
				return mrb.Nil(), err
			}
			val, err := intoValue(mrb, iter.Value().Interface())
			if err != nil {
				return mrb.Nil(), err
			}
			pairs = append(pairs, [2]Value{key, val})
		}
		return mrb.host.HashValue(pairs), nil
	}
	return mrb.Nil(), Raisef(eTypeError, "can't convert %s to Ruby value", rv.Type())
}

// Value converts a Go value to a handle, panicking on unsupported types.
// Inside a bound method the panic is caught at the trampoline boundary and
// raised as a TypeError.
func (mrb *State) Value(v interface{}) Value {
	val, err := intoValue(mrb, v)
	if err != nil {
		panic(err)
	}
	return val
}
