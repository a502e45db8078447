package datadog

// MaxSearchPages caps how many pages SearchAllLogs will fetch in one run.
const MaxSearchPages = 50

// SearchAllLogs fetches up to maxPages pages of log search results, following
// the meta.page.after cursor from each page, and returns the accumulated log
// entries. Each page must complete before the next is requested; the loop
// stops early as soon as a response carries no cursor. Entries fetched before
// a failing page are returned alongside the error.
func SearchAllLogs(client DatadogClient, opts SearchLogsOptions, maxPages int) ([]any, error) {
	// Non-nil so an empty result renders as [] rather than null
	logs := []any{}

	for page := 0; page < maxPages; page++ {
		data, err := client.SearchLogs(opts)
		if err != nil {
			return logs, err
		}

		if entries, ok := data["data"].([]any); ok {
			logs = append(logs, entries...)
		}

		cursor := nextCursor(data)
		if cursor == "" {
			break
		}
		opts.Cursor = cursor
	}

	return logs, nil
}

// nextCursor digs meta.page.after out of a search response.
func nextCursor(data map[string]any) string {
	meta, ok := data["meta"].(map[string]any)
	if !ok {
		return ""
	}
	page, ok := meta["page"].(map[string]any)
	if !ok {
		return ""
	}
	after, _ := page["after"].(string)
	return after
}
