package utils

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// IsJSONArray reports whether raw holds a JSON array.
func IsJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '[' && json.Valid(trimmed)
}

// IsTruthy treats absent, null, false, zero and "" as false, every other JSON
// value as true.
func IsTruthy(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false
	}

	switch string(trimmed) {
	case "null", "false", `""`:
		return false
	}

	switch trimmed[0] {
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		n, err := strconv.ParseFloat(string(trimmed), 64)
		return err != nil || n != 0
	}
	return true
}
