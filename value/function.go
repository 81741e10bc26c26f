package value

// Call invokes a function value. this is the receiver; newTarget is non-nil
// for construction. A non-nil error carries the thrown host value.
type Call func(this any, args []any, newTarget *Function) (any, error)

// Function is a host-callable value produced by the callback trampoline or
// by napi_define_class. Functions are objects: they carry their own
// property table for statics and expandos.
type Function struct {
	Name string
	Fn   Call

	// Prototype is the template instances of a class constructor inherit
	// from; nil for plain functions until first accessed.
	Prototype *Object

	props *Object
}

// NewFunction creates a named callable.
func NewFunction(name string, fn Call) *Function {
	return &Function{Name: name, Fn: fn}
}

// Invoke calls the function as a plain call.
func (f *Function) Invoke(this any, args []any) (any, error) {
	return f.Fn(this, args, nil)
}

// Construct calls the function as a constructor: a fresh object inheriting
// from the prototype becomes the receiver, and the call's new-target is the
// function itself. A non-object return is discarded in favor of the
// receiver, per constructor semantics.
func (f *Function) Construct(args []any) (any, error) {
	instance := NewObject()
	instance.SetProto(f.EnsurePrototype())
	ret, err := f.Fn(instance, args, f)
	if err != nil {
		return nil, err
	}
	if ret != nil && !IsUndefined(ret) {
		if obj, ok := ret.(*Object); ok {
			return obj, nil
		}
	}
	return instance, nil
}

// EnsurePrototype returns the prototype object, allocating it on first use.
func (f *Function) EnsurePrototype() *Object {
	if f.Prototype == nil {
		f.Prototype = NewObject()
		f.Prototype.Define("constructor", &Property{
			Value: f, Writable: true, Configurable: true,
		})
	}
	return f.Prototype
}

// Props returns the function's own property table, allocating it on first
// use. Static class members live here.
func (f *Function) Props() *Object {
	if f.props == nil {
		f.props = NewObject()
	}
	return f.props
}
