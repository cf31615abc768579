// Package normalize maps upstream JSON shapes onto the domain records. Every
// function here is pure. Absent optional fields become zero values, never errors.
package normalize

import (
	"bytes"
	"encoding/json"
	"strconv"
)

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func i32(p *int32) int32 {
	if p == nil {
		return 0
	}
	return *p
}

func f64(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func boolean(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}

// i32String renders an optional integer id the way clubs carry ids: "0" when absent.
func i32String(p *int32) string {
	return strconv.FormatInt(int64(i32(p)), 10)
}

// looseString accepts a JSON string, number or boolean. The provider is not
// consistent about zip codes, hole ids and acknowledgement flags.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = looseString(v)
		return nil
	}
	if bytes.Equal(data, []byte("true")) || bytes.Equal(data, []byte("false")) {
		*s = looseString(data)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = looseString(n.String())
	return nil
}

func loose(p *looseString) string {
	if p == nil {
		return ""
	}
	return string(*p)
}

// Gender folds the provider's gender spellings onto "Male" and "Female".
func Gender(g string) string {
	switch g {
	case "M", "m", "Male", "male":
		return "Male"
	case "F", "f", "Female", "female":
		return "Female"
	default:
		return ""
	}
}
