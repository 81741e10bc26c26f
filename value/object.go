package value

import "math"

// Getter reads a computed property. this is the receiver. A non-nil error
// carries a thrown host value (see Thrown).
type Getter func(this any) (any, error)

// Setter writes a computed property.
type Setter func(this, v any) error

// Property is one slot in an object. Either Value is stored data or
// Get/Set make it an accessor.
type Property struct {
	Value        any
	Get          Getter
	Set          Setter
	Writable     bool
	Enumerable   bool
	Configurable bool
}

// Accessor reports whether the property is an accessor pair.
func (p *Property) Accessor() bool { return p.Get != nil || p.Set != nil }

// Object is the host representation of a plain JavaScript object: ordered
// string/symbol keyed properties with attribute bits. Arrays, errors,
// functions and buffers are separate types that carry an Object where they
// need expando properties.
type Object struct {
	props  map[any]*Property
	order  []any
	proto  *Object
	frozen bool
	sealed bool

	// binding is the per-object slot the environment uses for wrap and
	// type-tag association. Owned by package env.
	binding any
}

// NewObject creates an empty object.
func NewObject() *Object {
	return &Object{props: make(map[any]*Property)}
}

// NewGlobal creates the global object singleton contents.
func NewGlobal() *Object {
	g := NewObject()
	g.Set("undefined", Undefined)
	g.Set("NaN", math.NaN())
	g.Set("Infinity", math.Inf(1))
	g.Set("globalThis", g)
	return g
}

// Proto returns the prototype object, if any.
func (o *Object) Proto() *Object { return o.proto }

// SetProto sets the prototype object.
func (o *Object) SetProto(p *Object) { o.proto = p }

// Get returns the property value for key, walking the prototype chain.
// Accessors are invoked with o as the receiver.
func (o *Object) Get(key any) (any, bool, error) {
	for cur := o; cur != nil; cur = cur.proto {
		if p, ok := cur.props[key]; ok {
			if p.Accessor() {
				if p.Get == nil {
					return Undefined, true, nil
				}
				v, err := p.Get(o)
				return v, true, err
			}
			return p.Value, true, nil
		}
	}
	return Undefined, false, nil
}

// Set stores a data property with default attributes, or routes through an
// existing setter. Writes to frozen objects and to non-writable properties
// are silently dropped, matching non-strict assignment.
func (o *Object) Set(key, v any) error {
	for cur := o; cur != nil; cur = cur.proto {
		if p, ok := cur.props[key]; ok {
			if p.Accessor() {
				if p.Set == nil {
					return nil
				}
				return p.Set(o, v)
			}
			if cur != o {
				break // own shadow below
			}
			if !p.Writable || o.frozen {
				return nil
			}
			p.Value = v
			return nil
		}
	}
	if o.frozen || o.sealed {
		return nil
	}
	o.define(key, &Property{Value: v, Writable: true, Enumerable: true, Configurable: true})
	return nil
}

// Define installs a property with explicit attributes, replacing any
// existing slot.
func (o *Object) Define(key any, p *Property) {
	if o.frozen {
		return
	}
	if o.sealed {
		if _, ok := o.props[key]; !ok {
			return
		}
	}
	o.define(key, p)
}

func (o *Object) define(key any, p *Property) {
	if _, ok := o.props[key]; !ok {
		o.order = append(o.order, key)
	}
	o.props[key] = p
}

// Has reports whether key resolves on o or its prototype chain.
func (o *Object) Has(key any) bool {
	for cur := o; cur != nil; cur = cur.proto {
		if _, ok := cur.props[key]; ok {
			return true
		}
	}
	return false
}

// HasOwn reports whether key is an own property.
func (o *Object) HasOwn(key any) bool {
	_, ok := o.props[key]
	return ok
}

// Delete removes an own property. Returns false when the property exists
// but is non-configurable.
func (o *Object) Delete(key any) bool {
	p, ok := o.props[key]
	if !ok {
		return true
	}
	if !p.Configurable || o.frozen || o.sealed {
		return false
	}
	delete(o.props, key)
	for i, k := range o.order {
		if k == key {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns own enumerable string keys in insertion order.
func (o *Object) Keys() []string {
	var keys []string
	for _, k := range o.order {
		s, isStr := k.(string)
		if !isStr {
			continue
		}
		if p := o.props[k]; p != nil && p.Enumerable {
			keys = append(keys, s)
		}
	}
	return keys
}

// OwnKeys returns all own string keys in insertion order, enumerable or not.
func (o *Object) OwnKeys() []string {
	var keys []string
	for _, k := range o.order {
		if s, ok := k.(string); ok {
			keys = append(keys, s)
		}
	}
	return keys
}

// Freeze makes all properties non-writable and non-configurable and forbids
// additions.
func (o *Object) Freeze() {
	o.frozen = true
	o.sealed = true
	for _, p := range o.props {
		p.Writable = false
		p.Configurable = false
	}
}

// Seal forbids additions and deletions but keeps values writable.
func (o *Object) Seal() {
	o.sealed = true
	for _, p := range o.props {
		p.Configurable = false
	}
}

// Frozen reports whether Freeze was called.
func (o *Object) Frozen() bool { return o.frozen }

// Sealed reports whether Seal or Freeze was called.
func (o *Object) Sealed() bool { return o.sealed }

// Binding returns the environment's per-object association slot.
func (o *Object) Binding() any { return o.binding }

// SetBinding stores the environment's per-object association slot.
func (o *Object) SetBinding(b any) { o.binding = b }

// Array is the host representation of a JavaScript array. Dense storage;
// holes are nil.
type Array struct {
	Elems []any

	// expando holds non-index properties, allocated on first use.
	expando *Object
}

// NewArray creates an array of the given length with undefined elements.
func NewArray(length int) *Array {
	a := &Array{}
	if length > 0 {
		a.Elems = make([]any, length)
		for i := range a.Elems {
			a.Elems[i] = Undefined
		}
	}
	return a
}

// GetIndex returns the element at i, or undefined past the end.
func (a *Array) GetIndex(i int) any {
	if i < 0 || i >= len(a.Elems) {
		return Undefined
	}
	return a.Elems[i]
}

// SetIndex stores v at i, growing the array with undefined holes.
func (a *Array) SetIndex(i int, v any) {
	if i < 0 {
		return
	}
	for len(a.Elems) <= i {
		a.Elems = append(a.Elems, Undefined)
	}
	a.Elems[i] = v
}

// DeleteIndex replaces the element at i with undefined.
func (a *Array) DeleteIndex(i int) {
	if i >= 0 && i < len(a.Elems) {
		a.Elems[i] = Undefined
	}
}

// Expando returns the array's property object, allocating it on first use.
func (a *Array) Expando() *Object {
	if a.expando == nil {
		a.expando = NewObject()
	}
	return a.expando
}
