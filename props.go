package xtween

import (
	"math"
	"reflect"
	"strings"
	"sync"
)

// Props is a property tree naming the values a tween animates. Leaves are
// numbers of any Go numeric kind; inner nodes are nested Props (or any
// map[string]any, or a struct value whose exported numeric fields become
// leaves). Leaves of any other type are ignored.
//
//	xtween.To(sprite, 0.5, xtween.Props{"X": 120, "Color": xtween.Props{"A": 0}})
type Props map[string]any

// Tweenable lets a target expose its properties without reflection. Nested
// records are returned as values and written back through SetTweenProperty
// after their leaves change, so an implementation can mark itself dirty.
type Tweenable interface {
	TweenProperty(key string) (any, bool)
	SetTweenProperty(key string, value any)
}

// clone returns a deep copy of p.
func (p Props) clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		if sub, ok := v.(Props); ok {
			out[k] = sub.clone()
			continue
		}
		out[k] = v
	}
	return out
}

// normalizeProps converts a caller-supplied tree into canonical form: float64
// leaves and Props inner nodes. Unsupported leaves are dropped.
func normalizeProps(p Props) Props {
	out := make(Props, len(p))
	for k, v := range p {
		if n, ok := normalizeValue(v); ok {
			out[k] = n
		}
	}
	return out
}

func normalizeValue(v any) (any, bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case float64:
		return x, true
	case Props:
		return normalizeProps(x), true
	case map[string]any:
		return normalizeProps(Props(x)), true
	}

	rv := reflect.ValueOf(v)
	if n, ok := numberOf(rv); ok {
		return n, true
	}
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		out := make(Props, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			if n, ok := normalizeValue(iter.Value().Interface()); ok {
				out[iter.Key().String()] = n
			}
		}
		return out, true
	case reflect.Struct:
		out := Props{}
		for _, f := range reflect.VisibleFields(rv.Type()) {
			if !f.IsExported() || f.Anonymous {
				continue
			}
			fv, err := rv.FieldByIndexErr(f.Index)
			if err != nil {
				continue
			}
			if n, ok := normalizeValue(fv.Interface()); ok {
				out[f.Name] = n
			}
		}
		return out, true
	}
	return nil, false
}

// numberOf reads v as a float64 if it holds a numeric kind.
func numberOf(v reflect.Value) (float64, bool) {
	for v.Kind() == reflect.Interface {
		if v.IsNil() {
			return 0, false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	}
	return 0, false
}

// numberAs converts f to typ, rounding for integer kinds.
func numberAs(f float64, typ reflect.Type) (reflect.Value, bool) {
	out := reflect.New(typ).Elem()
	switch typ.Kind() {
	case reflect.Float32, reflect.Float64:
		out.SetFloat(f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		out.SetInt(int64(math.Round(f)))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		out.SetUint(uint64(math.Max(0, math.Round(f))))
	default:
		return reflect.Value{}, false
	}
	return out, true
}

// record is a live container on a target: an addressable struct, a
// string-keyed map or a Tweenable.
type record struct {
	v  reflect.Value
	tw Tweenable
}

var tweenableType = reflect.TypeFor[Tweenable]()

// recordOf resolves v to a record, dereferencing pointers and interfaces.
func recordOf(v reflect.Value) (record, bool) {
	for {
		if !v.IsValid() {
			return record{}, false
		}
		if v.Type().Implements(tweenableType) && (v.Kind() != reflect.Pointer || !v.IsNil()) {
			return record{tw: v.Interface().(Tweenable)}, true
		}
		if v.CanAddr() && reflect.PointerTo(v.Type()).Implements(tweenableType) {
			return record{tw: v.Addr().Interface().(Tweenable)}, true
		}
		if v.Kind() != reflect.Pointer && v.Kind() != reflect.Interface {
			break
		}
		if v.IsNil() {
			return record{}, false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Struct:
		return record{v: v}, true
	case reflect.Map:
		if v.Type().Key().Kind() == reflect.String && !v.IsNil() {
			return record{v: v}, true
		}
	}
	return record{}, false
}

// targetRecord resolves the root target of a tween.
func targetRecord(target any) (record, bool) {
	return recordOf(reflect.ValueOf(target))
}

// get returns the current value stored under key.
func (r record) get(key string) (reflect.Value, bool) {
	if r.tw != nil {
		x, ok := r.tw.TweenProperty(key)
		if !ok || x == nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(x), true
	}
	switch r.v.Kind() {
	case reflect.Struct:
		f, ok := structField(r.v, key)
		return f, ok
	case reflect.Map:
		k, ok := r.mapKey(key)
		if !ok {
			return reflect.Value{}, false
		}
		mv := r.v.MapIndex(k)
		if mv.Kind() == reflect.Interface {
			if mv.IsNil() {
				return reflect.Value{}, false
			}
			mv = mv.Elem()
		}
		return mv, true
	}
	return reflect.Value{}, false
}

// set stores val under an existing key. Unsettable keys are ignored.
func (r record) set(key string, val reflect.Value) {
	if r.tw != nil {
		r.tw.SetTweenProperty(key, val.Interface())
		return
	}
	switch r.v.Kind() {
	case reflect.Struct:
		f, ok := structField(r.v, key)
		if ok && f.CanSet() && val.Type().AssignableTo(f.Type()) {
			f.Set(val)
		}
	case reflect.Map:
		k, ok := r.mapKey(key)
		if !ok {
			return
		}
		if val.Type().AssignableTo(r.v.Type().Elem()) {
			r.v.SetMapIndex(k, val)
		}
	}
}

// mapKey finds the stored key matching key, exactly or case-insensitively.
func (r record) mapKey(key string) (reflect.Value, bool) {
	k := reflect.ValueOf(key).Convert(r.v.Type().Key())
	if r.v.MapIndex(k).IsValid() {
		return k, true
	}
	iter := r.v.MapRange()
	for iter.Next() {
		if strings.EqualFold(iter.Key().String(), key) {
			return iter.Key(), true
		}
	}
	return reflect.Value{}, false
}

// number reads the numeric value stored under key.
func (r record) number(key string) (float64, bool) {
	v, ok := r.get(key)
	if !ok {
		return 0, false
	}
	return numberOf(v)
}

// setNumber writes f under key, converted to the stored value's type.
func (r record) setNumber(key string, f float64) {
	if r.tw != nil {
		r.tw.SetTweenProperty(key, f)
		return
	}
	cur, ok := r.get(key)
	if !ok {
		return
	}
	typ := cur.Type()
	if r.v.Kind() == reflect.Struct {
		if !cur.CanSet() {
			return
		}
		switch typ.Kind() {
		case reflect.Float32, reflect.Float64:
			cur.SetFloat(f)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			cur.SetInt(int64(math.Round(f)))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			cur.SetUint(uint64(math.Max(0, math.Round(f))))
		case reflect.Interface:
			if cur.IsNil() {
				return
			}
			if v, ok := numberAs(f, cur.Elem().Type()); ok {
				cur.Set(v)
			}
		}
		return
	}
	if v, ok := numberAs(f, typ); ok {
		r.set(key, v)
	}
}

// enter resolves key to a nested record. commit writes the nested value back
// onto r; map values are not addressable, so structs held in maps are edited
// on a copy that commit stores.
func (r record) enter(key string) (child record, commit func(), ok bool) {
	cur, ok := r.get(key)
	if !ok {
		return record{}, nil, false
	}
	val := cur
	if val.Kind() == reflect.Struct && !val.CanAddr() {
		tmp := reflect.New(val.Type()).Elem()
		tmp.Set(val)
		val = tmp
	}
	child, ok = recordOf(val)
	if !ok {
		return record{}, nil, false
	}
	return child, func() { r.set(key, val) }, true
}

// structInfo indexes the exported fields of a struct type by name, by
// `tween` tag and by lower-case name.
type structInfo struct {
	byName  map[string][]int
	byTag   map[string][]int
	byLower map[string][]int
}

var structCache sync.Map // reflect.Type -> *structInfo

func structInfoOf(t reflect.Type) *structInfo {
	if info, ok := structCache.Load(t); ok {
		return info.(*structInfo)
	}
	info := &structInfo{
		byName:  map[string][]int{},
		byTag:   map[string][]int{},
		byLower: map[string][]int{},
	}
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() {
			continue
		}
		if _, dup := info.byName[f.Name]; !dup {
			info.byName[f.Name] = f.Index
		}
		if tag := f.Tag.Get("tween"); tag != "" && tag != "-" {
			info.byTag[tag] = f.Index
		}
		lower := strings.ToLower(f.Name)
		if _, dup := info.byLower[lower]; !dup {
			info.byLower[lower] = f.Index
		}
	}
	actual, _ := structCache.LoadOrStore(t, info)
	return actual.(*structInfo)
}

func structField(v reflect.Value, key string) (reflect.Value, bool) {
	info := structInfoOf(v.Type())
	idx, ok := info.byName[key]
	if !ok {
		idx, ok = info.byTag[key]
	}
	if !ok {
		idx, ok = info.byLower[strings.ToLower(key)]
	}
	if !ok {
		return reflect.Value{}, false
	}
	f, err := v.FieldByIndexErr(idx)
	if err != nil {
		return reflect.Value{}, false
	}
	return f, true
}

// setupProperties captures transform(current) for every numeric leaf of end
// into start, creating nested trees in start as needed.
func setupProperties(r record, start, end Props, transform func(float64) float64) {
	for key, ev := range end {
		cur, ok := r.get(key)
		if !ok {
			continue
		}
		if n, ok := numberOf(cur); ok {
			start[key] = transform(n)
			continue
		}
		sub, ok := ev.(Props)
		if !ok {
			continue
		}
		child, _, ok := r.enter(key)
		if !ok {
			continue
		}
		s, _ := start[key].(Props)
		if s == nil {
			s = Props{}
			start[key] = s
		}
		setupProperties(child, s, sub, transform)
	}
}

// updateProperties writes every numeric leaf of end through lerp. Leaves
// without a captured start value are skipped.
func updateProperties(r record, start, end Props, ratio float64, lerp lerpFunc, progress ProgressFunc) {
	for key, ev := range end {
		switch e := ev.(type) {
		case Props:
			sub, _ := start[key].(Props)
			if sub == nil {
				continue
			}
			child, commit, ok := r.enter(key)
			if !ok {
				continue
			}
			updateProperties(child, sub, e, ratio, lerp, progress)
			commit()
		case float64:
			from, ok := start[key].(float64)
			if !ok {
				continue
			}
			lerp(r, key, start, from, e, ratio, progress)
		}
	}
}

// identity keeps the current value as the start value.
func identity(v float64) float64 { return v }

// zero starts relative tweens from no displacement.
func zero(float64) float64 { return 0 }
