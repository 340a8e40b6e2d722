package types

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FlexString accepts a JSON string, number, boolean or null and keeps its text form.
// POS payloads are inconsistent about scalar types (prices arrive as "120.00" or 120).
// Objects and arrays decode to the empty string instead of failing the whole payload.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*f = ""
		return nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*f = FlexString(s)
	case '{', '[':
		*f = ""
	default:
		*f = FlexString(trimmed)
	}
	return nil
}

func (f FlexString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

func (f FlexString) String() string {
	return string(f)
}

// FlexList accepts either a JSON array of scalars or a single comma-separated string.
type FlexList []string

func (f *FlexList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*f = nil
		return nil
	}
	if trimmed[0] == '[' {
		var items []FlexString
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s := strings.TrimSpace(item.String()); s != "" {
				out = append(out, s)
			}
		}
		*f = out
		return nil
	}
	var single FlexString
	if err := single.UnmarshalJSON(trimmed); err != nil {
		return err
	}
	var out []string
	for _, part := range strings.Split(single.String(), ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	*f = out
	return nil
}
