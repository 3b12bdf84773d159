package nasa

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/google/go-querystring/query"
)

// Values is a flat query mapping: one wire-level key per logical parameter.
type Values map[string]string

// Validator is implemented by params types with cross-field constraints.
type Validator interface {
	Validate() error
}

// Encode converts a params value into a query mapping.
//
// Params are structs whose `url` tags carry the endpoint's wire-level
// names. Optional fields are pointers tagged omitempty and are left out
// when nil; present values are formatted by type (Date as YYYY-MM-DD,
// bools as true/false, numbers in plain decimal, string enums as-is). A
// nil pointer encodes as an empty mapping. A Values argument is copied
// unchanged. Encode is pure.
func Encode(params interface{}) (Values, error) {
	switch p := params.(type) {
	case nil:
		return Values{}, nil
	case Values:
		return p.Clone(), nil
	case map[string]string:
		return Values(p).Clone(), nil
	}

	rv := reflect.ValueOf(params)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Values{}, nil
		}

		rv = rv.Elem()
	}

	if v, ok := params.(Validator); ok {
		err := v.Validate()
		if err != nil {
			return nil, err
		}
	}

	raw, err := query.Values(params)
	if err != nil {
		return nil, fmt.Errorf("encoding %T: %w", params, err)
	}

	values := make(Values, len(raw))

	for key, vals := range raw {
		if len(vals) != 1 {
			return nil, fmt.Errorf("%w: %q has %d values", ErrDuplicateQueryKey, key, len(vals))
		}

		values[key] = vals[0]
	}

	formatFloats(rv, values)

	return values, nil
}

// formatFloats rewrites float fields in shortest plain decimal form;
// go-querystring would emit exponents such as 1e-05.
func formatFloats(rv reflect.Value, values Values) {
	if rv.Kind() != reflect.Struct {
		return
	}

	rt := rv.Type()

	for i := range rt.NumField() {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		name, _, _ := strings.Cut(field.Tag.Get("url"), ",")
		if name == "-" {
			continue
		}

		fv := rv.Field(i)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				continue
			}

			fv = fv.Elem()
		}

		if field.Anonymous && name == "" && fv.Kind() == reflect.Struct {
			formatFloats(fv, values)

			continue
		}

		if name == "" {
			name = field.Name
		}

		if _, ok := values[name]; !ok {
			continue
		}

		switch fv.Kind() {
		case reflect.Float32:
			values[name] = strconv.FormatFloat(fv.Float(), 'f', -1, 32)
		case reflect.Float64:
			values[name] = strconv.FormatFloat(fv.Float(), 'f', -1, 64)
		}
	}
}

// Clone returns a copy of v.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for key, value := range v {
		out[key] = value
	}

	return out
}

// Keys returns the keys of v in sorted order.
func (v Values) Keys() []string {
	keys := make([]string, 0, len(v))
	for key := range v {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// Encode renders v as key=value pairs joined by '&', percent-encoding
// keys and values. Pairs are emitted in key order. An empty mapping
// renders as "".
func (v Values) Encode() string {
	if len(v) == 0 {
		return ""
	}

	var b strings.Builder

	for i, key := range v.Keys() {
		if i > 0 {
			b.WriteByte('&')
		}

		b.WriteString(url.QueryEscape(key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(v[key]))
	}

	return b.String()
}

// ParseValues is the inverse of Values.Encode: it splits on '&', then on
// the first '=', and unescapes both sides. Repeated keys are rejected.
func ParseValues(s string) (Values, error) {
	values := Values{}
	if s == "" {
		return values, nil
	}

	for _, pair := range strings.Split(s, "&") {
		err := values.addPair(pair)
		if err != nil {
			return nil, err
		}
	}

	return values, nil
}

// ParsePairs builds a mapping from "key=value" arguments, unescaped.
func ParsePairs(pairs []string) (Values, error) {
	values := Values{}

	for _, pair := range pairs {
		err := values.addPair(pair)
		if err != nil {
			return nil, err
		}
	}

	return values, nil
}

func (v Values) addPair(pair string) error {
	rawKey, rawValue, found := strings.Cut(pair, "=")
	if !found || rawKey == "" {
		return fmt.Errorf("%w: %q", ErrInvalidQueryPair, pair)
	}

	key, err := url.QueryUnescape(rawKey)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidQueryPair, pair, err)
	}

	value, err := url.QueryUnescape(rawValue)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidQueryPair, pair, err)
	}

	if _, exists := v[key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateQueryKey, key)
	}

	v[key] = value

	return nil
}
