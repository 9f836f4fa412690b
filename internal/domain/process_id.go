package domain

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

var processIDKeys = []string{"pid", "process_id", "processId", "processID"}

// ParseProcessID extracts a process id from a launch result. The result may be
// a raw number, a string (plain digits or a JSON document), raw JSON bytes, a
// map, or a struct with a pid field.
func ParseProcessID(result any) (int, bool) {
	switch value := result.(type) {
	case nil:
		return 0, false
	case int:
		return positive(int64(value))
	case int32:
		return positive(int64(value))
	case int64:
		return positive(value)
	case uint32:
		return positive(int64(value))
	case uint64:
		if value > math.MaxInt64 {
			return 0, false
		}
		return positive(int64(value))
	case float64:
		if value != math.Trunc(value) {
			return 0, false
		}
		return positive(int64(value))
	case json.Number:
		parsed, err := value.Int64()
		if err != nil {
			return 0, false
		}
		return positive(parsed)
	case string:
		return parseProcessIDString(value)
	case json.RawMessage:
		return parseProcessIDString(string(value))
	case []byte:
		return parseProcessIDString(string(value))
	case map[string]any:
		for _, key := range processIDKeys {
			if nested, ok := value[key]; ok {
				return ParseProcessID(nested)
			}
		}
		return 0, false
	}

	return parseProcessIDStruct(result)
}

func parseProcessIDString(raw string) (int, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	if parsed, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return positive(parsed)
	}

	decoder := json.NewDecoder(strings.NewReader(trimmed))
	decoder.UseNumber()
	var decoded any
	if err := decoder.Decode(&decoded); err != nil {
		return 0, false
	}
	return ParseProcessID(decoded)
}

func parseProcessIDStruct(result any) (int, bool) {
	value := reflect.ValueOf(result)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return 0, false
		}
		value = value.Elem()
	}
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return positive(value.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if value.Uint() > math.MaxInt64 {
			return 0, false
		}
		return positive(int64(value.Uint()))
	case reflect.String:
		return parseProcessIDString(value.String())
	case reflect.Struct:
	default:
		return 0, false
	}

	for _, name := range []string{"ProcessID", "PID", "Pid"} {
		field := value.FieldByName(name)
		if !field.IsValid() || !field.CanInterface() {
			continue
		}
		return ParseProcessID(field.Interface())
	}

	return 0, false
}

func positive(value int64) (int, bool) {
	if value <= 0 || value > math.MaxInt32 {
		return 0, false
	}

	return int(value), true
}
