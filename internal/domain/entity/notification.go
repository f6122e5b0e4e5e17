// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	// companyTopicPrefix must match the prefix subscribing clients use.
	companyTopicPrefix = "c_"
)

// TopicNotification is a push notification addressed to every subscriber of a topic.
type TopicNotification struct {
	Topic string            `json:"topic"` // Messaging topic, see CompanyTopic.
	Title string            `json:"title"` // Notification title shown to the user.
	Body  string            `json:"body"`  // Notification body, may be empty.
	Data  map[string]string `json:"data"`  // Key-value payload delivered with the notification.
}

// CompanyTopic derives the topic clients of a company subscribe to for one event,
// e.g. ("Acme Co", "lowStock") becomes "c_Acme_Co_lowStock".
func CompanyTopic(companyID, event string) string {
	return companyTopicPrefix + strings.ReplaceAll(companyID, " ", "_") + "_" + event
}

// StringifyData converts a loosely typed payload to the string map push data requires.
// Strings pass through, numbers use their shortest decimal form, booleans become
// "true"/"false", null becomes "" and objects or arrays are rendered as JSON.
func StringifyData(payload map[string]any) map[string]string {
	data := make(map[string]string, len(payload))
	for key, value := range payload {
		data[key] = stringifyValue(value)
	}

	return data
}

func stringifyValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case json.Number:
		return v.String()
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}

		return string(raw)
	}
}
