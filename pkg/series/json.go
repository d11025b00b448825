package series

import (
	"github.com/bytedance/sonic"
)

// MarshalJSON encodes a present observation as its number and a missing
// one as null, matching the usual tabular-column representation.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return sonic.Marshal(v.Float64)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Value{}
		return nil
	}
	var f float64
	if err := sonic.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = Value{Float64: f, Valid: true}
	return nil
}

// DecodeColumn parses a JSON array of numbers and nulls, the shape a
// tabular dataset column arrives in, into a Series.
func DecodeColumn(data []byte) (Series, error) {
	var s Series
	if err := sonic.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return s, nil
}

// EncodeColumn serializes the series back to a JSON array.
func (s Series) EncodeColumn() ([]byte, error) {
	return sonic.Marshal(s)
}
