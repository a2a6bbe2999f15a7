package domain

import "encoding/json"

// Optional is a presence-aware JSON field for partial update payloads.
// Omitting a key, sending it as null, and sending a value are three
// distinct states:
//
//	absent        → Set=false              → field left untouched
//	explicit null → Set=true,  Value=nil   → field reset to its default
//	value         → Set=true,  Value=&v    → field overwritten
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns an Optional that was explicitly provided as null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON is only invoked by encoding/json when the key is present,
// so Set becomes true for both null and concrete values.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// Or returns the held value, or fallback when the field is null or absent.
func (o Optional[T]) Or(fallback T) T {
	if o.Value == nil {
		return fallback
	}
	return *o.Value
}
