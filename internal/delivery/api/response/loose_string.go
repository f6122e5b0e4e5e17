package response

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// LooseString is a request field that accepts a JSON string, number, boolean or null.
// Clients send PINs and IDs both as strings and as numbers.
type LooseString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *LooseString) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw any
	if err := decoder.Decode(&raw); err != nil {
		return errors.WithStack(err)
	}

	switch v := raw.(type) {
	case nil:
		*s = ""
	case string:
		*s = LooseString(v)
	case json.Number:
		*s = LooseString(v.String())
	case bool:
		*s = LooseString(strconv.FormatBool(v))
	default:
		return errors.Errorf("expected a scalar, got %s", data)
	}

	return nil
}

// String returns the decoded value.
func (s LooseString) String() string {
	return string(s)
}
