package fields

import (
	"fmt"
	"strings"
)

// FieldType is the Datadog custom-field category that determines how a value
// must be encoded in an incident update.
type FieldType string

const (
	Dropdown     FieldType = "dropdown"
	Autocomplete FieldType = "autocomplete"
	Multiselect  FieldType = "multiselect"
	Textbox      FieldType = "textbox"
)

// fieldTypes maps the known field names to their categories. Anything not
// listed here is a textbox.
var fieldTypes = map[string]FieldType{
	"severity":         Dropdown,
	"state":            Dropdown,
	"detection_method": Dropdown,
	"teams":            Autocomplete,
	"services":         Autocomplete,
	"trigger":          Multiselect,
	"root_cause_type":  Multiselect,
	"impact_type":      Multiselect,
}

// TypeOf returns the field category for a custom-field name.
func TypeOf(key string) FieldType {
	if t, ok := fieldTypes[key]; ok {
		return t
	}
	return Textbox
}

// Encode converts a raw string value into the {type, value} record the
// incident update API expects. Multiselect values become single-element lists,
// autocomplete values become single-element lists unless the raw value already
// looks like a list, and empty values become null.
func Encode(key, value string) map[string]any {
	fieldType := TypeOf(key)

	var fieldValue any
	switch {
	case fieldType == Multiselect:
		if value != "" {
			fieldValue = []string{value}
		}
	case fieldType == Autocomplete && value != "":
		if strings.HasPrefix(value, "[") {
			fieldValue = value
		} else {
			fieldValue = []string{value}
		}
	default:
		if value != "" {
			fieldValue = value
		}
	}

	return map[string]any{"type": string(fieldType), "value": fieldValue}
}

// Parse converts repeated key=value arguments into the custom-field map for
// an incident update. Arguments without an "=" are rejected; values containing
// "=" are kept intact past the first one.
func Parse(args []string) (map[string]any, error) {
	parsed := map[string]any{}

	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			return nil, fmt.Errorf("invalid field format: %s. Use key=value format", arg)
		}
		parsed[key] = Encode(key, value)
	}

	return parsed, nil
}
