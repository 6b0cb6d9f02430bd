package utils

import "encoding/json"

// MapToJSON marshals v, swallowing errors; for log and cache payloads only.
func MapToJSON(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func JSONToMap(s string, out any) error {
	return json.Unmarshal([]byte(s), out)
}
