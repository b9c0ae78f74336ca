package memstore

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/klipach/traveloracle/docstore"
)

// The codec keeps documents in the value space firestore uses: nil, bool,
// int64, float64, string, []byte, time.Time, []any and map[string]any.
// Struct fields follow `firestore` tags with the omitempty, serverTimestamp
// and "-" options.

var timeType = reflect.TypeOf(time.Time{})

type fieldTag struct {
	name            string
	omitEmpty       bool
	serverTimestamp bool
	skip            bool
}

func parseTag(f reflect.StructField) fieldTag {
	tag, ok := f.Tag.Lookup("firestore")
	if !ok {
		return fieldTag{name: f.Name}
	}
	if tag == "-" {
		return fieldTag{skip: true}
	}
	parts := strings.Split(tag, ",")
	ft := fieldTag{name: parts[0]}
	if ft.name == "" {
		ft.name = f.Name
	}
	for _, opt := range parts[1:] {
		switch opt {
		case "omitempty":
			ft.omitEmpty = true
		case "serverTimestamp":
			ft.serverTimestamp = true
		}
	}
	return ft
}

// encodeDoc turns a struct, struct pointer or map into a document.
func encodeDoc(data any, now time.Time) (map[string]any, error) {
	v, err := encodeValue(reflect.ValueOf(data), now)
	if err != nil {
		return nil, err
	}
	doc, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("cannot use %T as document data", data)
	}
	return doc, nil
}

func encodeValue(rv reflect.Value, now time.Time) (any, error) {
	if !rv.IsValid() {
		return nil, nil
	}
	if rv.CanInterface() {
		switch x := rv.Interface().(type) {
		case time.Time:
			return x.UTC(), nil
		case []byte:
			return append([]byte(nil), x...), nil
		}
		if docstore.IsServerTimestamp(rv.Interface()) {
			return now, nil
		}
		if _, ok := docstore.ArrayUnionValues(rv.Interface()); ok {
			return nil, fmt.Errorf("array union is only valid in updates")
		}
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return encodeValue(rv.Elem(), now)
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil, nil
		}
		out := make([]any, rv.Len())
		for i := range out {
			v, err := encodeValue(rv.Index(i), now)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("map key must be string, got %s", rv.Type().Key())
		}
		if rv.IsNil() {
			return nil, nil
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			v, err := encodeValue(iter.Value(), now)
			if err != nil {
				return nil, err
			}
			out[iter.Key().String()] = v
		}
		return out, nil
	case reflect.Struct:
		return encodeStruct(rv, now)
	}
	return nil, fmt.Errorf("cannot encode value of type %s", rv.Type())
}

func encodeStruct(rv reflect.Value, now time.Time) (map[string]any, error) {
	out := make(map[string]any, rv.NumField())
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := parseTag(f)
		if tag.skip {
			continue
		}
		fv := rv.Field(i)
		if tag.serverTimestamp && f.Type == timeType && fv.IsZero() {
			out[tag.name] = now
			continue
		}
		if tag.omitEmpty && fv.IsZero() {
			continue
		}
		v, err := encodeValue(fv, now)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		out[tag.name] = v
	}
	return out, nil
}

// decodeDoc fills p, a pointer to a struct or map, from doc. Unknown
// document fields are ignored, type mismatches are errors.
func decodeDoc(doc map[string]any, p any) error {
	rv := reflect.ValueOf(p)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("decode target must be a non-nil pointer, got %T", p)
	}
	return decodeValue(rv.Elem(), doc)
}

func decodeValue(dst reflect.Value, src any) error {
	if src == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}
	if dst.Type() == timeType {
		t, ok := src.(time.Time)
		if !ok {
			return mismatch(src, dst)
		}
		dst.Set(reflect.ValueOf(t))
		return nil
	}

	switch dst.Kind() {
	case reflect.Pointer:
		elem := reflect.New(dst.Type().Elem())
		if err := decodeValue(elem.Elem(), src); err != nil {
			return err
		}
		dst.Set(elem)
		return nil
	case reflect.Interface:
		dst.Set(reflect.ValueOf(clone(src)))
		return nil
	case reflect.Bool:
		b, ok := src.(bool)
		if !ok {
			return mismatch(src, dst)
		}
		dst.SetBool(b)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := src.(int64)
		if !ok {
			return mismatch(src, dst)
		}
		if dst.OverflowInt(n) {
			return fmt.Errorf("value %d overflows %s", n, dst.Type())
		}
		dst.SetInt(n)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := src.(int64)
		if !ok || n < 0 {
			return mismatch(src, dst)
		}
		if dst.OverflowUint(uint64(n)) {
			return fmt.Errorf("value %d overflows %s", n, dst.Type())
		}
		dst.SetUint(uint64(n))
		return nil
	case reflect.Float32, reflect.Float64:
		switch n := src.(type) {
		case float64:
			dst.SetFloat(n)
		case int64:
			dst.SetFloat(float64(n))
		default:
			return mismatch(src, dst)
		}
		return nil
	case reflect.String:
		s, ok := src.(string)
		if !ok {
			return mismatch(src, dst)
		}
		dst.SetString(s)
		return nil
	case reflect.Slice:
		if dst.Type().Elem().Kind() == reflect.Uint8 {
			b, ok := src.([]byte)
			if !ok {
				return mismatch(src, dst)
			}
			dst.SetBytes(append([]byte(nil), b...))
			return nil
		}
		arr, ok := src.([]any)
		if !ok {
			return mismatch(src, dst)
		}
		out := reflect.MakeSlice(dst.Type(), len(arr), len(arr))
		for i, v := range arr {
			if err := decodeValue(out.Index(i), v); err != nil {
				return err
			}
		}
		dst.Set(out)
		return nil
	case reflect.Map:
		m, ok := src.(map[string]any)
		if !ok || dst.Type().Key().Kind() != reflect.String {
			return mismatch(src, dst)
		}
		out := reflect.MakeMapWithSize(dst.Type(), len(m))
		for k, v := range m {
			elem := reflect.New(dst.Type().Elem()).Elem()
			if err := decodeValue(elem, v); err != nil {
				return err
			}
			out.SetMapIndex(reflect.ValueOf(k).Convert(dst.Type().Key()), elem)
		}
		dst.Set(out)
		return nil
	case reflect.Struct:
		m, ok := src.(map[string]any)
		if !ok {
			return mismatch(src, dst)
		}
		t := dst.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			tag := parseTag(f)
			if tag.skip {
				continue
			}
			v, present := m[tag.name]
			if !present {
				continue
			}
			if err := decodeValue(dst.Field(i), v); err != nil {
				return fmt.Errorf("field %s: %w", tag.name, err)
			}
		}
		return nil
	}
	return fmt.Errorf("cannot decode into %s", dst.Type())
}

func mismatch(src any, dst reflect.Value) error {
	return fmt.Errorf("cannot decode %T into %s", src, dst.Type())
}

// clone deep copies a value of the document value space.
func clone(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = clone(val)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = clone(val)
		}
		return out
	case []byte:
		return append([]byte(nil), x...)
	}
	return v
}
