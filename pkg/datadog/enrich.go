package datadog

import (
	"errors"
	"fmt"
)

// DatadogClientInterface is an interface that defines the methods used by the
// enrichment and pagination helpers and makes it easier to mock calls to
// Datadog in tests
type DatadogClientInterface interface {
	GetIncident(id string, include string) (map[string]any, error)
	GetIncidentType(uuid string) (map[string]any, error)
	GetIncidentIntegrations(id string) (map[string]any, error)
	UpdateIncident(id string, attributes map[string]any) (map[string]any, error)
	SearchLogs(opts SearchLogsOptions) (map[string]any, error)
	Validate() (map[string]any, error)
}

// DatadogClient implements DatadogClientInterface and is used to make calls to
// Datadog. This allows for mocking calls that would usually use the Client struct
type DatadogClient interface {
	DatadogClientInterface
}

// Enrich augments a fetched incident in place with the incident type
// configuration and integration metadata, both fetched independently.
// Enrichment is best-effort: an APIError from either auxiliary fetch skips
// only that piece, while any other failure aborts the remainder of the
// enrichment and is recorded under enrichment.errors. The primary incident
// data is never disturbed.
func Enrich(client DatadogClient, data map[string]any) {
	if typeUUID := incidentTypeUUID(data); typeUUID != "" {
		typeData, err := client.GetIncidentType(typeUUID)
		switch {
		case err == nil:
			enrichment(data)["incident_type"] = typeData
		case !isAPIError(err):
			enrichment(data)["errors"] = fmt.Sprintf("Enrichment failed: %v", err)
			return
		}
		// Don't fail if the type lookup fails
	}

	if id := incidentID(data); id != "" {
		integrations, err := client.GetIncidentIntegrations(id)
		switch {
		case err == nil:
			enrichment(data)["integrations"] = integrations
		case !isAPIError(err):
			enrichment(data)["errors"] = fmt.Sprintf("Enrichment failed: %v", err)
		}
		// Don't fail if the integrations lookup fails
	}
}

func isAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// enrichment returns the incident's enrichment object, creating it on first use.
func enrichment(data map[string]any) map[string]any {
	if e, ok := data["enrichment"].(map[string]any); ok {
		return e
	}
	e := map[string]any{}
	data["enrichment"] = e
	return e
}

func incidentTypeUUID(data map[string]any) string {
	d, ok := data["data"].(map[string]any)
	if !ok {
		return ""
	}
	attrs, ok := d["attributes"].(map[string]any)
	if !ok {
		return ""
	}
	uuid, _ := attrs["incident_type_uuid"].(string)
	return uuid
}

func incidentID(data map[string]any) string {
	d, ok := data["data"].(map[string]any)
	if !ok {
		return ""
	}
	id, _ := d["id"].(string)
	return id
}
