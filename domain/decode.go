package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeLayout is the wire format for order timestamps. The API emits
// second-precision timestamps without a timezone designator.
const TimeLayout = "2006-01-02 15:04:05"

// DecodeError lists every missing or mistyped key found while decoding an
// entity map. Nested entity problems are reported with a dotted path, e.g.
// "product_variant.product.slug".
type DecodeError struct {
	Entity string
	Fields []string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: invalid or missing fields: %s", e.Entity, strings.Join(e.Fields, ", "))
}

// decoder reads fields out of a generic JSON object and accumulates problems
// so a single decode pass reports all of them at once.
type decoder struct {
	entity string
	m      map[string]any
	bad    []string
}

func newDecoder(entity string, m map[string]any) *decoder {
	return &decoder{entity: entity, m: m}
}

func (d *decoder) fail(key string) {
	d.bad = append(d.bad, key)
}

// nested merges a child entity's decode failure into this decoder under the
// given key prefix.
func (d *decoder) nested(key string, err error) {
	var de *DecodeError
	if errors.As(err, &de) {
		for _, field := range de.Fields {
			d.bad = append(d.bad, key+"."+field)
		}
		return
	}
	d.fail(key)
}

func (d *decoder) err() error {
	if len(d.bad) == 0 {
		return nil
	}
	return &DecodeError{Entity: d.entity, Fields: d.bad}
}

func (d *decoder) intField(key string) int64 {
	v, ok := d.m[key]
	if !ok || v == nil {
		d.fail(key)
		return 0
	}
	n, ok := asInt(v)
	if !ok {
		d.fail(key)
	}
	return n
}

func (d *decoder) intOrZero(key string) int64 {
	v, ok := d.m[key]
	if !ok || v == nil {
		return 0
	}
	n, ok := asInt(v)
	if !ok {
		d.fail(key)
	}
	return n
}

func (d *decoder) floatField(key string) float64 {
	v, ok := d.m[key]
	if !ok || v == nil {
		d.fail(key)
		return 0
	}
	f, ok := asFloat(v)
	if !ok {
		d.fail(key)
	}
	return f
}

func (d *decoder) floatOrZero(key string) float64 {
	v, ok := d.m[key]
	if !ok || v == nil {
		return 0
	}
	f, ok := asFloat(v)
	if !ok {
		d.fail(key)
	}
	return f
}

func (d *decoder) stringField(key string) string {
	v, ok := d.m[key]
	if !ok || v == nil {
		d.fail(key)
		return ""
	}
	s, ok := v.(string)
	if !ok {
		d.fail(key)
	}
	return s
}

func (d *decoder) optString(key string) *string {
	v, ok := d.m[key]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		d.fail(key)
		return nil
	}
	return &s
}

// attrMap reads an optional free-form object, defaulting to an empty map.
func (d *decoder) attrMap(key string) map[string]any {
	v, ok := d.m[key]
	if !ok || v == nil {
		return map[string]any{}
	}
	m, ok := v.(map[string]any)
	if !ok {
		d.fail(key)
		return map[string]any{}
	}
	return m
}

// optMap reads an optional object, staying nil when the key is absent.
func (d *decoder) optMap(key string) map[string]any {
	v, ok := d.m[key]
	if !ok || v == nil {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		d.fail(key)
		return nil
	}
	return m
}

// mapField reads a required nested object.
func (d *decoder) mapField(key string) (map[string]any, bool) {
	v, ok := d.m[key]
	if !ok || v == nil {
		d.fail(key)
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		d.fail(key)
		return nil, false
	}
	return m, true
}

// mapSlice reads an optional sequence of objects, preserving input order.
// An absent or null sequence decodes to an empty slice.
func (d *decoder) mapSlice(key string) []map[string]any {
	v, ok := d.m[key]
	if !ok || v == nil {
		return []map[string]any{}
	}
	switch seq := v.(type) {
	case []map[string]any:
		return seq
	case []any:
		out := make([]map[string]any, 0, len(seq))
		for _, el := range seq {
			m, ok := el.(map[string]any)
			if !ok {
				d.fail(key)
				return []map[string]any{}
			}
			out = append(out, m)
		}
		return out
	default:
		d.fail(key)
		return []map[string]any{}
	}
}

func (d *decoder) optTime(key string) *time.Time {
	v, ok := d.m[key]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		d.fail(key)
		return nil
	}
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			d.fail(key)
			return nil
		}
	}
	return &t
}

// asInt coerces the JSON representations of an id/quantity/stock value.
// encoding/json hands numbers over as float64, while servers occasionally
// serialize numeric columns as strings.
func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	case string:
		parsed, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// asFloat coerces price and total values to float64 whether the wire carried
// a float, an integer, or a numeric string.
func asFloat(v any) (float64, bool) {
	switch f := v.(type) {
	case float64:
		return f, true
	case int64:
		return float64(f), true
	case int:
		return float64(f), true
	case string:
		parsed, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func formatTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(TimeLayout)
}

func stringValue(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
