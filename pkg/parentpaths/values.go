package parentpaths

import (
	"fmt"
	"reflect"
)

// Fragments converts a loosely typed value, such as one decoded from YAML
// or JSON, into a fragment list. It accepts []string and []any holding only
// strings. Empty lists of any element type yield an empty list; nil is not
// a list and is rejected.
func Fragments(v any) ([]string, error) {
	switch vals := v.(type) {
	case []string:
		return append([]string{}, vals...), nil
	case []any:
		out := make([]string, 0, len(vals))
		for i, e := range vals {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("%w: fragments must be an array of strings. Element %d: `%v`", ErrInvalidArgument, i, e)
			}
			out = append(out, s)
		}
		return out, nil
	}
	if isEmptyList(v) {
		return []string{}, nil
	}
	return nil, fmt.Errorf("%w: fragments must be an array of strings. Value: `%v`", ErrInvalidArgument, v)
}

func isEmptyList(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len() == 0
	}
	return false
}

// ParseOptions converts a loosely typed options value into Options. It
// accepts nil, Options, *Options and any string-keyed map with optional
// "dir" and "mode" entries. A present entry must hold a string. Other keys
// are ignored.
func ParseOptions(v any) (*Options, error) {
	switch o := v.(type) {
	case nil:
		return validated(&Options{})
	case Options:
		return validated(&o)
	case *Options:
		if o == nil {
			return validated(&Options{})
		}
		c := *o
		return validated(&c)
	case map[string]any:
		return optionsFromMap(o)
	}
	if m, ok := stringKeyedMap(v); ok {
		return optionsFromMap(m)
	}
	return nil, fmt.Errorf("%w: options argument must be an object. Value: `%v`", ErrInvalidOption, v)
}

func validated(o *Options) (*Options, error) {
	mode, err := ParseMode(string(o.Mode))
	if err != nil {
		return nil, err
	}
	o.Mode = mode
	return o, nil
}

// stringKeyedMap copies a map with string keys, such as map[string]string,
// into a map[string]any. String-kinded values are stored as plain strings.
func stringKeyedMap(v any) (map[string]any, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		val := iter.Value()
		if val.Kind() == reflect.Interface && !val.IsNil() {
			val = val.Elem()
		}
		if val.Kind() == reflect.String {
			m[iter.Key().String()] = val.String()
			continue
		}
		m[iter.Key().String()] = val.Interface()
	}
	return m, true
}

func optionsFromMap(m map[string]any) (*Options, error) {
	opts := &Options{}
	if v, ok := m["dir"]; ok {
		dir, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: `dir` option must be a string. Value: `%v`", ErrInvalidOption, v)
		}
		opts.Dir = dir
	}
	if v, ok := m["mode"]; ok {
		name, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: `mode` option must be a string. Value: `%v`", ErrInvalidOption, v)
		}
		opts.Mode = Mode(name)
	}
	return validated(opts)
}

// ResolveValues validates loosely typed fragments and options and then
// calls Resolve. An empty fragment list returns an empty result before
// options are examined.
func ResolveValues(fragments, options any) ([]string, error) {
	if isEmptyList(fragments) {
		return []string{}, nil
	}
	frags, err := Fragments(fragments)
	if err != nil {
		return nil, err
	}
	opts, err := ParseOptions(options)
	if err != nil {
		return nil, err
	}
	return Resolve(frags, opts)
}
