package dto

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// FlexibleID accepts a JSON number or a numeric string.
type FlexibleID uint

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}

	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	} else {
		raw = string(data)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		*id = 0
		return nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", raw)
	}
	*id = FlexibleID(n)
	return nil
}

func (id FlexibleID) Uint() uint { return uint(id) }

// Truthy decodes any JSON scalar into a strict boolean.
type Truthy bool

func (t *Truthy) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*t = Truthy(truthy(v))
	return nil
}

func (t Truthy) Bool() bool { return bool(t) }

func truthy(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		s := strings.TrimSpace(x)
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
		return s != ""
	default:
		return true
	}
}
