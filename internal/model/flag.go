package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Flag is a boolean that also accepts the numbers and strings older admin
// clients send: any non-zero number or non-empty string is true. It always
// marshals as true/false.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "true":
		*f = true
		return nil
	case "false", "null":
		*f = false
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("flag: %w", err)
		}
		*f = s != ""
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flag: expected boolean or number, got %s", data)
	}
	*f = n != 0
	return nil
}
