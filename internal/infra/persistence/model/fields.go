// Package model maps Firestore documents to domain entities.
// Documents are decoded from their raw field maps so legacy records with
// loosely typed fields (numeric PINs, missing profile data) still load.
package model

import (
	"strconv"
)

// stringField reads a field as a string. Numbers are formatted in their shortest
// decimal form; other types and missing fields yield ok == false.
func stringField(data map[string]any, key string) (value string, ok bool) {
	raw, present := data[key]
	if !present || raw == nil {
		return "", present
	}

	switch v := raw.(type) {
	case string:
		return v, true
	case int64:
		return strconv.FormatInt(v, 10), true
	case int:
		return strconv.Itoa(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", true
	}
}

func stringValue(data map[string]any, key string) string {
	value, _ := stringField(data, key)

	return value
}

func boolValue(data map[string]any, key string) bool {
	value, _ := data[key].(bool)

	return value
}

func mapValue(data map[string]any, key string) map[string]any {
	value, _ := data[key].(map[string]any)

	return value
}
