package gruby

// Test host: a tiny boxed-object runtime, just enough surface for the
// dispatch and conversion paths. Raising is modeled the way a pure Go
// runtime does it, with a private panic recovered at the call entry.

type mockObj struct {
	typ   int
	i     int64
	f     float64
	s     string
	items []Value
	pairs [][2]Value
}

type mockHost struct {
	objects []mockObj
	methods map[string]Method

	blockGiven bool
	block      func(args []Value) (Value, error)

	intOfCalls int
	raised     error
	raiseCount int
}

type hostJump struct {
	err error
}

func newMock() (*mockHost, *State) {
	h := &mockHost{methods: map[string]Method{}}
	return h, NewState(h)
}

// box stores o and returns its handle. Handle 0 stays nil so the zero
// Value behaves like nil, as it does in the tagged runtimes.
func (h *mockHost) box(o mockObj) Value {
	h.objects = append(h.objects, o)
	return Value{raw: uintptr(len(h.objects))}
}

func (h *mockHost) obj(v Value) mockObj {
	if v.raw == 0 {
		return mockObj{typ: TypeNil}
	}
	return h.objects[v.raw-1]
}

func (h *mockHost) TypeOf(v Value) int { return h.obj(v).typ }

func (h *mockHost) ClassNameOf(v Value) string {
	// Plain objects carry their class name in the string slot.
	if o := h.obj(v); o.s != "" {
		return o.s
	}
	return "Object"
}

func (h *mockHost) NilValue() Value { return Value{} }

func (h *mockHost) BoolValue(b bool) Value {
	if b {
		return h.box(mockObj{typ: TypeTrue})
	}
	return h.box(mockObj{typ: TypeFalse})
}

func (h *mockHost) IntValue(i int64) Value { return h.box(mockObj{typ: TypeInteger, i: i}) }

func (h *mockHost) IntOf(v Value) (int64, bool) {
	h.intOfCalls++
	o := h.obj(v)
	if o.typ != TypeInteger {
		return 0, false
	}
	return o.i, true
}

func (h *mockHost) FloatValue(f float64) Value { return h.box(mockObj{typ: TypeFloat, f: f}) }

func (h *mockHost) FloatOf(v Value) (float64, bool) {
	o := h.obj(v)
	if o.typ != TypeFloat {
		return 0, false
	}
	return o.f, true
}

func (h *mockHost) StrValue(s string) Value { return h.box(mockObj{typ: TypeString, s: s}) }

func (h *mockHost) StrOf(v Value) (string, bool) {
	o := h.obj(v)
	if o.typ != TypeString {
		return "", false
	}
	return o.s, true
}

func (h *mockHost) SymValue(name string) Value { return h.box(mockObj{typ: TypeSymbol, s: name}) }

func (h *mockHost) SymOf(v Value) (string, bool) {
	o := h.obj(v)
	if o.typ != TypeSymbol {
		return "", false
	}
	return o.s, true
}

func (h *mockHost) AryValue(items []Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return h.box(mockObj{typ: TypeArray, items: cp})
}

func (h *mockHost) AryLen(v Value) (int, bool) {
	o := h.obj(v)
	if o.typ != TypeArray {
		return 0, false
	}
	return len(o.items), true
}

func (h *mockHost) AryRef(v Value, i int) Value {
	o := h.obj(v)
	if o.typ != TypeArray || i < 0 || i >= len(o.items) {
		return Value{}
	}
	return o.items[i]
}

func (h *mockHost) HashValue(pairs [][2]Value) Value {
	cp := make([][2]Value, len(pairs))
	copy(cp, pairs)
	return h.box(mockObj{typ: TypeHash, pairs: cp})
}

func (h *mockHost) HashPairs(v Value) ([][2]Value, bool) {
	o := h.obj(v)
	if o.typ != TypeHash {
		return nil, false
	}
	return o.pairs, true
}

func (h *mockHost) DefineMethod(recv Value, name string, m Method) {
	h.methods[name] = m
}

func (h *mockHost) BlockGiven() bool { return h.blockGiven }

func (h *mockHost) Yield(arg Value) (Value, error) { return h.block([]Value{arg}) }

func (h *mockHost) YieldValues(args []Value) (Value, error) { return h.block(args) }

func (h *mockHost) YieldSplat(ary Value) (Value, error) {
	o := h.obj(ary)
	return h.block(o.items)
}

func (h *mockHost) Raise(err error) {
	h.raised = err
	h.raiseCount++
	panic(hostJump{err: err})
}

// call invokes a trampoline the way the runtime would, materializing a
// raised exception as an error instead of unwinding the test.
func (h *mockHost) call(mrb *State, m Method, self Value, args []Value) (v Value, raised error) {
	defer func() {
		if r := recover(); r != nil {
			jump, ok := r.(hostJump)
			if !ok {
				panic(r)
			}
			raised = jump.err
		}
	}()
	return Dispatch(mrb, m, self, args), nil
}

func (h *mockHost) enumerator() Value { return h.box(mockObj{typ: TypeEnumerator}) }
