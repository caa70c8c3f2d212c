package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Text is a string field the backend sometimes sends as a JSON number
// (zip codes, house numbers, offer ids). Numbers keep their literal form.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("models: text: want string or number, got %s", data)
	}
	*t = Text(n.String())
	return nil
}

func (t Text) String() string { return string(t) }
