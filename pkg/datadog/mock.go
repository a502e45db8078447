package datadog

import (
	"fmt"
)

var ErrMockError = fmt.Errorf("datadog.Mock(): mock error") // Used to mock errors in unit tests

// MockDatadogClient mocks the Datadog client for unit tests. Methods return
// canned responses, or errors when called with the id "err".
type MockDatadogClient struct {
	DatadogClient
}

func (m *MockDatadogClient) GetIncident(id string, include string) (map[string]any, error) {
	if id == "err" {
		return map[string]any{}, ErrMockError
	}
	// Incidents will always come back with the same ID as the request
	return map[string]any{
		"data": map[string]any{
			"type": "incidents",
			"id":   id,
			"attributes": map[string]any{
				"title":              "mock incident",
				"incident_type_uuid": "00000000-0000-0000-0000-000000000000",
			},
		},
	}, nil
}

func (m *MockDatadogClient) GetIncidentType(uuid string) (map[string]any, error) {
	if uuid == "err" {
		return map[string]any{}, ErrMockError
	}
	return map[string]any{
		"data": map[string]any{
			"type": "incident_types",
			"id":   uuid,
		},
	}, nil
}

func (m *MockDatadogClient) GetIncidentIntegrations(id string) (map[string]any, error) {
	if id == "err" {
		return map[string]any{}, ErrMockError
	}
	return map[string]any{
		"data": []any{
			map[string]any{
				"type": "incident_integrations",
				"id":   "QABCDEFG1234567",
			},
		},
	}, nil
}

func (m *MockDatadogClient) UpdateIncident(id string, attributes map[string]any) (map[string]any, error) {
	if id == "err" {
		return map[string]any{}, ErrMockError
	}
	return map[string]any{
		"data": map[string]any{
			"type":       "incidents",
			"id":         id,
			"attributes": attributes,
		},
	}, nil
}

func (m *MockDatadogClient) Validate() (map[string]any, error) {
	return map[string]any{"valid": true}, nil
}
