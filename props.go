package cssvariants

import (
	"fmt"
	"iter"
	"strconv"
)

// Reserved property keys.
const (
	// ClassNameKey carries a caller-supplied class list into the resolver and
	// the final class string out of it.
	ClassNameKey = "className"
)

// Props is an insertion-ordered set of component properties.
//
// Order matters: variant styles are appended in the order their keys were
// inserted, and Set on an existing key keeps its original position.
// The zero value is an empty, ready to use Props.
type Props struct {
	keys   []string
	values map[string]any
}

// NewProps builds Props from alternating key/value arguments:
//
//	NewProps("size", "big", "primary", true)
//
// A non-string key is formatted with fmt.Sprint. A trailing key without a
// value is stored with a nil value.
func NewProps(keyvals ...any) Props {
	var p Props
	for i := 0; i < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = fmt.Sprint(keyvals[i])
		}
		var value any
		if i+1 < len(keyvals) {
			value = keyvals[i+1]
		}
		p.Set(key, value)
	}
	return p
}

// Set stores value under key. A new key is appended to the iteration order.
func (p *Props) Set(key string, value any) {
	if p.values == nil {
		p.values = make(map[string]any)
	}
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Delete removes key, keeping the relative order of the remaining keys.
func (p *Props) Delete(key string) {
	if _, exists := p.values[key]; !exists {
		return
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i:i], p.keys[i+1:]...)
			break
		}
	}
}

// Get returns the value stored under key.
func (p Props) Get(key string) (any, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Has reports whether key is present, whatever its value.
func (p Props) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Value returns the serialized value stored under key, or "" when absent.
func (p Props) Value(key string) string {
	return FormatValue(p.values[key])
}

// Len returns the number of keys.
func (p Props) Len() int {
	return len(p.keys)
}

// Keys returns the keys in iteration order.
func (p Props) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// All iterates key/value pairs in insertion order.
func (p Props) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range p.keys {
			if !yield(k, p.values[k]) {
				return
			}
		}
	}
}

// Clone returns an independent copy.
func (p Props) Clone() Props {
	c := Props{
		keys:   make([]string, len(p.keys)),
		values: make(map[string]any, len(p.values)),
	}
	copy(c.keys, p.keys)
	for k, v := range p.values {
		c.values[k] = v
	}
	return c
}

// Map returns the props as a plain map. Order is lost.
func (p Props) Map() map[string]any {
	m := make(map[string]any, len(p.values))
	for k, v := range p.values {
		m[k] = v
	}
	return m
}

// Merge layers over on top of base, the way an object spread
// {...base, ...over} does: base keys keep their order and position, keys of
// over that are new are appended in over's order, and over's values win
// whenever a key is present in over, even if the value is empty or nil.
func Merge(base, over Props) Props {
	merged := base.Clone()
	for k, v := range over.All() {
		merged.Set(k, v)
	}
	return merged
}

// FormatValue serializes a property or option value for comparison:
// strings as-is, booleans as "true"/"false", numbers in their shortest
// decimal form, Stringers through String, nil as "".
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int8:
		return strconv.FormatInt(int64(t), 10)
	case int16:
		return strconv.FormatInt(int64(t), 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint8:
		return strconv.FormatUint(uint64(t), 10)
	case uint16:
		return strconv.FormatUint(uint64(t), 10)
	case uint32:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case CSS:
		return t.String()
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}
