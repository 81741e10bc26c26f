package api

import (
	"github.com/wippyai/napi-runtime/env"
	"github.com/wippyai/napi-runtime/napi"
	"github.com/wippyai/napi-runtime/value"
)

// GetProperty implements napi_get_property.
func (a *API) GetProperty(envID napi.Env, object, key napi.Value, result *napi.Value) napi.Status {
	e, status := a.scriptEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	holder, status := objectOf(e, object)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	k, status := keyFor(e, key)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	// Numeric string keys address array elements.
	if arr, ok := holder.Raw().(*value.Array); ok {
		if idx, ok := arrayIndex(k); ok {
			h, status := addValue(e, arr.GetIndex(idx))
			if status != napi.OK {
				return e.SetLastError(status)
			}
			*result = h
			return napi.OK
		}
	}
	v, _, err := holder.Table().Get(k)
	if err != nil {
		return throwInto(e, err)
	}
	h, status := addValue(e, v)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	*result = h
	return napi.OK
}

// SetProperty implements napi_set_property.
func (a *API) SetProperty(envID napi.Env, object, key, val napi.Value) napi.Status {
	e, status := a.scriptEnv(envID)
	if status != napi.OK {
		return status
	}
	holder, status := objectOf(e, object)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	k, status := keyFor(e, key)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	v, status := valueOf(e, val)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	if arr, ok := holder.Raw().(*value.Array); ok {
		if idx, ok := arrayIndex(k); ok {
			arr.SetIndex(idx, v)
			return napi.OK
		}
	}
	if err := holder.Table().Set(k, v); err != nil {
		return throwInto(e, err)
	}
	return napi.OK
}

// HasProperty implements napi_has_property.
func (a *API) HasProperty(envID napi.Env, object, key napi.Value, result *bool) napi.Status {
	e, status := a.scriptEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	holder, status := objectOf(e, object)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	k, status := keyFor(e, key)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	if arr, ok := holder.Raw().(*value.Array); ok {
		if idx, ok := arrayIndex(k); ok {
			*result = idx < len(arr.Elems)
			return napi.OK
		}
	}
	*result = holder.Table().Has(k)
	return napi.OK
}

// HasOwnProperty implements napi_has_own_property.
func (a *API) HasOwnProperty(envID napi.Env, object, key napi.Value, result *bool) napi.Status {
	e, status := a.scriptEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	holder, status := objectOf(e, object)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	k, status := keyFor(e, key)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	*result = holder.Table().HasOwn(k)
	return napi.OK
}

// DeleteProperty implements napi_delete_property.
func (a *API) DeleteProperty(envID napi.Env, object, key napi.Value, result *bool) napi.Status {
	e, status := a.scriptEnv(envID)
	if status != napi.OK {
		return status
	}
	holder, status := objectOf(e, object)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	k, status := keyFor(e, key)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	deleted := true
	if arr, ok := holder.Raw().(*value.Array); ok {
		if idx, ok := arrayIndex(k); ok {
			arr.DeleteIndex(idx)
		} else {
			deleted = holder.Table().Delete(k)
		}
	} else {
		deleted = holder.Table().Delete(k)
	}
	if result != nil {
		*result = deleted
	}
	return napi.OK
}

// GetNamedProperty implements napi_get_named_property.
func (a *API) GetNamedProperty(envID napi.Env, object napi.Value, name string, result *napi.Value) napi.Status {
	e, status := a.scriptEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	holder, status := objectOf(e, object)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	v, _, err := holder.Table().Get(name)
	if err != nil {
		return throwInto(e, err)
	}
	h, status := addValue(e, v)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	*result = h
	return napi.OK
}

// SetNamedProperty implements napi_set_named_property.
func (a *API) SetNamedProperty(envID napi.Env, object napi.Value, name string, val napi.Value) napi.Status {
	e, status := a.scriptEnv(envID)
	if status != napi.OK {
		return status
	}
	holder, status := objectOf(e, object)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	v, status := valueOf(e, val)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	if err := holder.Table().Set(name, v); err != nil {
		return throwInto(e, err)
	}
	return napi.OK
}

// HasNamedProperty implements napi_has_named_property.
func (a *API) HasNamedProperty(envID napi.Env, object napi.Value, name string, result *bool) napi.Status {
	e, status := a.scriptEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	holder, status := objectOf(e, object)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	*result = holder.Table().Has(name)
	return napi.OK
}

// GetElement implements napi_get_element.
func (a *API) GetElement(envID napi.Env, object napi.Value, index uint32, result *napi.Value) napi.Status {
	e, status := a.scriptEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	v, status := valueOf(e, object)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	var out any = value.Undefined
	switch x := v.(type) {
	case *value.Array:
		out = x.GetIndex(int(index))
	case *value.Object:
		got, _, err := x.Get(indexKey(index))
		if err != nil {
			return throwInto(e, err)
		}
		out = got
	default:
		return e.SetLastError(napi.ObjectExpected)
	}
	h, status := addValue(e, out)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	*result = h
	return napi.OK
}

// SetElement implements napi_set_element.
func (a *API) SetElement(envID napi.Env, object napi.Value, index uint32, val napi.Value) napi.Status {
	e, status := a.scriptEnv(envID)
	if status != napi.OK {
		return status
	}
	v, status := valueOf(e, val)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	target, status := valueOf(e, object)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	switch x := target.(type) {
	case *value.Array:
		x.SetIndex(int(index), v)
	case *value.Object:
		if err := x.Set(indexKey(index), v); err != nil {
			return throwInto(e, err)
		}
	default:
		return e.SetLastError(napi.ObjectExpected)
	}
	return napi.OK
}

// HasElement implements napi_has_element.
func (a *API) HasElement(envID napi.Env, object napi.Value, index uint32, result *bool) napi.Status {
	e, status := a.scriptEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	v, status := valueOf(e, object)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	switch x := v.(type) {
	case *value.Array:
		*result = int(index) < len(x.Elems) && !value.IsUndefined(x.GetIndex(int(index)))
	case *value.Object:
		*result = x.Has(indexKey(index))
	default:
		return e.SetLastError(napi.ObjectExpected)
	}
	return napi.OK
}

// DeleteElement implements napi_delete_element.
func (a *API) DeleteElement(envID napi.Env, object napi.Value, index uint32, result *bool) napi.Status {
	e, status := a.scriptEnv(envID)
	if status != napi.OK {
		return status
	}
	v, status := valueOf(e, object)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	deleted := true
	switch x := v.(type) {
	case *value.Array:
		x.DeleteIndex(int(index))
	case *value.Object:
		deleted = x.Delete(indexKey(index))
	default:
		return e.SetLastError(napi.ObjectExpected)
	}
	if result != nil {
		*result = deleted
	}
	return napi.OK
}

// GetArrayLength implements napi_get_array_length.
func (a *API) GetArrayLength(envID napi.Env, object napi.Value, result *uint32) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	v, status := valueOf(e, object)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	arr, ok := v.(*value.Array)
	if !ok {
		return e.SetLastError(napi.ArrayExpected)
	}
	*result = uint32(len(arr.Elems))
	return napi.OK
}

// GetPropertyNames implements napi_get_property_names: own enumerable
// string keys.
func (a *API) GetPropertyNames(envID napi.Env, object napi.Value, result *napi.Value) napi.Status {
	return a.GetAllPropertyNames(envID, object,
		napi.KeyOwnOnly, napi.KeyEnumerable, napi.KeyNumbersToStrings, result)
}

// GetAllPropertyNames implements napi_get_all_property_names over the own
// table; the host model has flat prototype chains, so include-prototypes
// walks them.
func (a *API) GetAllPropertyNames(envID napi.Env, object napi.Value,
	mode napi.KeyCollectionMode, filter napi.KeyFilter, conversion napi.KeyConversion,
	result *napi.Value) napi.Status {

	e, status := a.scriptEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	holder, status := objectOf(e, object)
	if status != napi.OK {
		return e.SetLastError(status)
	}

	out := value.NewArray(0)
	seen := map[string]bool{}

	add := func(o *value.Object) {
		var keys []string
		if filter&napi.KeyEnumerable != 0 {
			keys = o.Keys()
		} else {
			keys = o.OwnKeys()
		}
		for _, k := range keys {
			if filter&napi.KeySkipStrings != 0 {
				continue
			}
			if !seen[k] {
				seen[k] = true
				out.Elems = append(out.Elems, k)
			}
		}
	}

	if arr, ok := holder.Raw().(*value.Array); ok {
		for i := range arr.Elems {
			out.Elems = append(out.Elems, value.FormatNumber(float64(i)))
		}
	}
	add(holder.Table())
	if mode == napi.KeyIncludePrototypes {
		for p := holder.Table().Proto(); p != nil; p = p.Proto() {
			add(p)
		}
	}

	h, status := addValue(e, out)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	*result = h
	return napi.OK
}

// DefineProperties implements napi_define_properties.
func (a *API) DefineProperties(envID napi.Env, object napi.Value, props []napi.PropertyDescriptor) napi.Status {
	e, status := a.scriptEnv(envID)
	if status != napi.OK {
		return status
	}
	holder, status := objectOf(e, object)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	for i := range props {
		if status := a.defineOne(e, holder.Table(), &props[i]); status != napi.OK {
			return e.SetLastError(status)
		}
	}
	return napi.OK
}

// defineOne installs one descriptor into a property table.
func (a *API) defineOne(e *env.Env, table *value.Object, d *napi.PropertyDescriptor) napi.Status {
	var key any
	switch {
	case d.UTF8Name != "":
		key = d.UTF8Name
	case d.Name != napi.HandleHole:
		k, status := keyFor(e, d.Name)
		if status != napi.OK {
			return status
		}
		key = k
	default:
		return napi.NameExpected
	}

	prop := &value.Property{
		Writable:     d.Attributes&napi.Writable != 0,
		Enumerable:   d.Attributes&napi.Enumerable != 0,
		Configurable: d.Attributes&napi.Configurable != 0,
	}

	switch {
	case d.Getter != nil || d.Setter != nil:
		if d.Getter != nil {
			getter := a.bindCallback(e, "get "+value.ToString(key), d.Getter, d.Data)
			prop.Get = func(this any) (any, error) {
				return getter.Invoke(this, nil)
			}
		}
		if d.Setter != nil {
			setter := a.bindCallback(e, "set "+value.ToString(key), d.Setter, d.Data)
			prop.Set = func(this, v any) error {
				_, err := setter.Invoke(this, []any{v})
				return err
			}
		}
	case d.Method != nil:
		prop.Value = a.bindCallback(e, value.ToString(key), d.Method, d.Data)
	default:
		v, status := valueOf(e, d.Value)
		if status != napi.OK {
			return status
		}
		prop.Value = v
	}

	table.Define(key, prop)
	return napi.OK
}

// ObjectFreeze implements napi_object_freeze.
func (a *API) ObjectFreeze(envID napi.Env, object napi.Value) napi.Status {
	e, status := a.scriptEnv(envID)
	if status != napi.OK {
		return status
	}
	holder, status := objectOf(e, object)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	holder.Table().Freeze()
	return napi.OK
}

// ObjectSeal implements napi_object_seal.
func (a *API) ObjectSeal(envID napi.Env, object napi.Value) napi.Status {
	e, status := a.scriptEnv(envID)
	if status != napi.OK {
		return status
	}
	holder, status := objectOf(e, object)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	holder.Table().Seal()
	return napi.OK
}

// GetPrototype implements napi_get_prototype.
func (a *API) GetPrototype(envID napi.Env, object napi.Value, result *napi.Value) napi.Status {
	e, status := a.scriptEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	holder, status := objectOf(e, object)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	var proto any
	if p := holder.Table().Proto(); p != nil {
		proto = p
	}
	h, status := addValue(e, proto)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	*result = h
	return napi.OK
}

// TypeTagObject implements napi_type_tag_object. Tagging twice fails.
func (a *API) TypeTagObject(envID napi.Env, object napi.Value, tag *napi.TypeTag) napi.Status {
	e, status := a.scriptEnv(envID)
	if status != napi.OK {
		return status
	}
	if tag == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	obj, status := plainObjectOf(e, object)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	b := bindingOf(obj)
	if b.Tag != nil {
		return e.SetLastError(napi.InvalidArg)
	}
	copied := *tag
	b.Tag = &copied
	return napi.OK
}

// CheckObjectTypeTag implements napi_check_object_type_tag.
func (a *API) CheckObjectTypeTag(envID napi.Env, object napi.Value, tag *napi.TypeTag, result *bool) napi.Status {
	e, status := a.scriptEnv(envID)
	if status != napi.OK {
		return status
	}
	if tag == nil || result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	obj, status := plainObjectOf(e, object)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	b := bindingOf(obj)
	*result = b.Tag != nil && *b.Tag == *tag
	return napi.OK
}

// plainObjectOf requires an actual *value.Object (wrap and type-tag need
// the binding slot).
func plainObjectOf(e *env.Env, h napi.Value) (*value.Object, napi.Status) {
	v, status := valueOf(e, h)
	if status != napi.OK {
		return nil, status
	}
	obj, ok := v.(*value.Object)
	if !ok {
		return nil, napi.ObjectExpected
	}
	return obj, napi.OK
}

// bindingOf returns the env.Binding for an object, allocating it.
func bindingOf(o *value.Object) *env.Binding {
	if b, ok := o.Binding().(*env.Binding); ok {
		return b
	}
	b := &env.Binding{}
	o.SetBinding(b)
	return b
}

// arrayIndex converts a property key to an array index when it looks like
// one.
func arrayIndex(k any) (int, bool) {
	s, ok := k.(string)
	if !ok || s == "" {
		return 0, false
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
		if n > 1<<31 {
			return 0, false
		}
	}
	return n, true
}

func indexKey(index uint32) string {
	return value.FormatNumber(float64(index))
}
