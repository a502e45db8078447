package cmd

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestValidateAppKey(t *testing.T) {
	tests := []struct {
		name     string
		appKey   string
		expected string
	}{
		{
			name:     "no app key set falls back to the placeholder",
			appKey:   "",
			expected: "unused",
		},
		{
			name:     "configured app key wins",
			appKey:   "real-app-key",
			expected: "real-app-key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Set("app_key", tt.appKey)
			t.Cleanup(func() { viper.Set("app_key", "") })

			assert.Equal(t, tt.expected, validateAppKey())
		})
	}
}

func TestValidateOutput(t *testing.T) {
	tests := []struct {
		name     string
		data     map[string]any
		expected map[string]any
	}{
		{
			name:     "empty response keeps the default status",
			data:     map[string]any{},
			expected: map[string]any{"status": 200},
		},
		{
			name:     "response fields merge alongside the status",
			data:     map[string]any{"valid": true},
			expected: map[string]any{"status": 200, "valid": true},
		},
		{
			name:     "a status in the response overrides the default",
			data:     map[string]any{"status": "ok", "valid": true},
			expected: map[string]any{"status": "ok", "valid": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validateOutput(tt.data))
		})
	}
}
