package records

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// instant is a timestamp as backends send it: ISO-8601 text with an
// optional trailing "Z", or a bare Unix-seconds number when the backend
// already serialized a native instant.
type instant struct {
	time.Time
}

func (t *instant) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		// A trailing Z is normalized to an explicit UTC offset before
		// parsing so both spellings decode identically.
		if strings.HasSuffix(s, "Z") {
			s = strings.TrimSuffix(s, "Z") + "+00:00"
		}
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("invalid timestamp %q: %w", s, err)
		}
		t.Time = parsed
		return nil
	}

	// Already an instant: Unix seconds, no text parsing involved.
	// Integral values stay on the int64 path so large epochs are exact;
	// only fractional input goes through a float.
	var secs json.Number
	if err := json.Unmarshal(data, &secs); err != nil {
		return err
	}
	if i, err := secs.Int64(); err == nil {
		t.Time = time.Unix(i, 0).UTC()
		return nil
	}
	f, err := secs.Float64()
	if err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", secs, err)
	}
	sec := int64(f)
	nsec := int64((f - float64(sec)) * float64(time.Second))
	t.Time = time.Unix(sec, nsec).UTC()
	return nil
}

// money is a monetary amount. It is constructed from the textual form of
// whatever JSON value was received (number or quoted string) so the value
// never passes through a binary float.
type money struct {
	decimal.Decimal
}

func (m *money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	text := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		text = s
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", text, err)
	}
	m.Decimal = d
	return nil
}

// required unwraps a pointer-typed wire field, failing with the field
// name when the backend omitted it.
func required[T any](field string, v *T) (T, error) {
	if v == nil {
		var zero T
		return zero, fmt.Errorf("missing required field %q", field)
	}
	return *v, nil
}
