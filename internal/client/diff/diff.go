// Package diff computes field-level changes between two values of the same
// json-tagged struct type. Edit actions send only what changed.
package diff

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Changes returns the fields of after that differ from before, keyed by
// their json names. Fields tagged json:"-" are ignored. Fields tagged
// omitempty are skipped when after holds the zero value, so an empty form
// field means "leave unchanged".
//
// before and after must be structs (or pointers to structs) of one type.
func Changes(before, after any) (map[string]any, error) {
	bv, av := indirect(reflect.ValueOf(before)), indirect(reflect.ValueOf(after))
	if !bv.IsValid() || !av.IsValid() {
		return nil, fmt.Errorf("diff: nil value")
	}
	if bv.Type() != av.Type() {
		return nil, fmt.Errorf("diff: type mismatch %s vs %s", bv.Type(), av.Type())
	}
	if bv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("diff: %s is not a struct", bv.Type())
	}

	out := map[string]any{}
	t := bv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		name, omitEmpty, skip := jsonName(f)
		if skip {
			continue
		}

		a := av.Field(i)
		if omitEmpty && a.IsZero() {
			continue
		}
		if !cmp.Equal(bv.Field(i).Interface(), a.Interface()) {
			out[name] = a.Interface()
		}
	}
	return out, nil
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func jsonName(f reflect.StructField) (name string, omitEmpty, skip bool) {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = f.Name
	}
	for _, o := range strings.Split(opts, ",") {
		if o == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty, false
}
