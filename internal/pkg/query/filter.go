package query

import (
	"math"
	"net/url"
	"reflect"
	"sort"
)

// Filter is a set of field-value equality predicates.
type Filter map[string]any

// BuildFilter copies every allow-listed field that has a truthy value in params.
// Fields outside allowedFields never reach the result.
func BuildFilter(params map[string]any, allowedFields []string) Filter {
	filter := make(Filter)
	for _, field := range allowedFields {
		value, ok := params[field]
		if !ok || !truthy(value) {
			continue
		}
		filter[field] = value
	}
	return filter
}

// BuildFilterFromQuery is BuildFilter over the first value of each query key.
func BuildFilterFromQuery(values url.Values, allowedFields []string) Filter {
	params := make(map[string]any, len(values))
	for key := range values {
		params[key] = values.Get(key)
	}
	return BuildFilter(params, allowedFields)
}

// Keys returns the filter's field names in sorted order.
func (f Filter) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// With returns a copy of f with key set to value.
func (f Filter) With(key string, value any) Filter {
	out := make(Filter, len(f)+1)
	for k, v := range f {
		out[k] = v
	}
	out[key] = value
	return out
}

func truthy(value any) bool {
	if value == nil {
		return false
	}
	switch v := value.(type) {
	case string:
		return v != ""
	case bool:
		return v
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}
