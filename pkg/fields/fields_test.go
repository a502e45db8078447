package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeOf(t *testing.T) {
	tests := []struct {
		key      string
		expected FieldType
	}{
		{"severity", Dropdown},
		{"state", Dropdown},
		{"detection_method", Dropdown},
		{"teams", Autocomplete},
		{"services", Autocomplete},
		{"trigger", Multiselect},
		{"root_cause_type", Multiselect},
		{"impact_type", Multiselect},
		{"anything_else", Textbox},
		{"", Textbox},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, TypeOf(tt.key))
		})
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		expected map[string]any
	}{
		{
			name:     "dropdown value",
			key:      "severity",
			value:    "SEV-1",
			expected: map[string]any{"type": "dropdown", "value": "SEV-1"},
		},
		{
			name:     "dropdown empty value is null",
			key:      "severity",
			value:    "",
			expected: map[string]any{"type": "dropdown", "value": nil},
		},
		{
			name:     "autocomplete wraps value in a list",
			key:      "teams",
			value:    "infra",
			expected: map[string]any{"type": "autocomplete", "value": []string{"infra"}},
		},
		{
			name:     "autocomplete passes a preformatted list through",
			key:      "teams",
			value:    `["infra","db"]`,
			expected: map[string]any{"type": "autocomplete", "value": `["infra","db"]`},
		},
		{
			name:     "autocomplete empty value is null",
			key:      "services",
			value:    "",
			expected: map[string]any{"type": "autocomplete", "value": nil},
		},
		{
			name:     "multiselect wraps value in a list",
			key:      "trigger",
			value:    "outage",
			expected: map[string]any{"type": "multiselect", "value": []string{"outage"}},
		},
		{
			name:     "multiselect empty value is null",
			key:      "trigger",
			value:    "",
			expected: map[string]any{"type": "multiselect", "value": nil},
		},
		{
			name:     "unknown key is a textbox",
			key:      "summary",
			value:    "all broken",
			expected: map[string]any{"type": "textbox", "value": "all broken"},
		},
		{
			name:     "textbox empty value is null",
			key:      "summary",
			value:    "",
			expected: map[string]any{"type": "textbox", "value": nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Encode(tt.key, tt.value))
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("parses multiple fields", func(t *testing.T) {
		parsed, err := Parse([]string{"severity=SEV-1", "teams=infra"})
		require.NoError(t, err)

		assert.Equal(t, map[string]any{
			"severity": map[string]any{"type": "dropdown", "value": "SEV-1"},
			"teams":    map[string]any{"type": "autocomplete", "value": []string{"infra"}},
		}, parsed)
	})

	t.Run("splits on the first equals sign only", func(t *testing.T) {
		parsed, err := Parse([]string{"summary=a=b=c"})
		require.NoError(t, err)

		assert.Equal(t, map[string]any{
			"summary": map[string]any{"type": "textbox", "value": "a=b=c"},
		}, parsed)
	})

	t.Run("rejects arguments without equals sign", func(t *testing.T) {
		_, err := Parse([]string{"malformed"})
		require.Error(t, err)
		assert.ErrorContains(t, err, "invalid field format")
	})

	t.Run("empty input yields empty map", func(t *testing.T) {
		parsed, err := Parse(nil)
		require.NoError(t, err)
		assert.Empty(t, parsed)
	})
}
