package handlers

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// isDateField matches the JSON keys that carry timestamps.
func isDateField(key string) bool {
	k := strings.ToLower(key)
	return strings.HasSuffix(k, "date") || strings.HasSuffix(k, "maintenance")
}

// coerceDates rewrites date-like string values in a JSON object (or a list
// of objects) to RFC 3339 so they bind to time.Time. Values that do not
// parse are left alone for binding to reject. Bodies that are not JSON
// are returned unchanged.
func coerceDates(body []byte) []byte {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return body
	}

	changed := false
	switch v := doc.(type) {
	case map[string]interface{}:
		changed = coerceObject(v)
	case []interface{}:
		for _, item := range v {
			if obj, ok := item.(map[string]interface{}); ok {
				changed = coerceObject(obj) || changed
			}
		}
	}
	if !changed {
		return body
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return body
	}
	return out
}

func coerceObject(obj map[string]interface{}) bool {
	changed := false
	for key, value := range obj {
		s, ok := value.(string)
		if !ok || !isDateField(key) {
			continue
		}
		if strings.TrimSpace(s) == "" {
			obj[key] = nil
			changed = true
			continue
		}
		if t, ok := parseDate(s); ok {
			obj[key] = t.Format(time.RFC3339Nano)
			changed = true
		}
	}
	return changed
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	if t, err := now.Parse(s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
