package datadog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagedSearchClient mocks a paginated log search. Each call returns the next
// canned page; calls past the end return an empty page with no cursor.
type pagedSearchClient struct {
	MockDatadogClient
	pages   []map[string]any
	calls   int
	cursors []string
}

func (m *pagedSearchClient) SearchLogs(opts SearchLogsOptions) (map[string]any, error) {
	m.cursors = append(m.cursors, opts.Cursor)
	if m.calls >= len(m.pages) {
		m.calls++
		return map[string]any{"data": []any{}}, nil
	}
	page := m.pages[m.calls]
	m.calls++
	return page, nil
}

func page(entries []any, cursor string) map[string]any {
	p := map[string]any{"data": entries}
	if cursor != "" {
		p["meta"] = map[string]any{"page": map[string]any{"after": cursor}}
	}
	return p
}

func TestSearchAllLogs(t *testing.T) {
	t.Run("accumulates pages in order", func(t *testing.T) {
		client := &pagedSearchClient{pages: []map[string]any{
			page([]any{"log1", "log2"}, "cursor-1"),
			page([]any{"log3"}, "cursor-2"),
			page([]any{"log4"}, ""),
		}}

		logs, err := SearchAllLogs(client, SearchLogsOptions{Query: "env:prod"}, MaxSearchPages)
		require.NoError(t, err)

		assert.Equal(t, []any{"log1", "log2", "log3", "log4"}, logs)
		assert.Equal(t, 3, client.calls)
		// Each page's cursor feeds the next request
		assert.Equal(t, []string{"", "cursor-1", "cursor-2"}, client.cursors)
	})

	t.Run("stops when a response has no cursor", func(t *testing.T) {
		client := &pagedSearchClient{pages: []map[string]any{
			page([]any{"log1"}, ""),
			page([]any{"log2"}, "never-requested"),
		}}

		logs, err := SearchAllLogs(client, SearchLogsOptions{Query: "env:prod"}, MaxSearchPages)
		require.NoError(t, err)

		assert.Equal(t, []any{"log1"}, logs)
		assert.Equal(t, 1, client.calls)
	})

	t.Run("never exceeds the page cap", func(t *testing.T) {
		client := &endlessSearchClient{}

		logs, err := SearchAllLogs(client, SearchLogsOptions{Query: "env:prod"}, MaxSearchPages)
		require.NoError(t, err)

		assert.Equal(t, MaxSearchPages, client.calls)
		assert.Len(t, logs, MaxSearchPages)
	})

	t.Run("single page when maxPages is one", func(t *testing.T) {
		client := &endlessSearchClient{}

		logs, err := SearchAllLogs(client, SearchLogsOptions{Query: "env:prod"}, 1)
		require.NoError(t, err)

		assert.Equal(t, 1, client.calls)
		assert.Len(t, logs, 1)
	})

	t.Run("empty result is an empty list, not null", func(t *testing.T) {
		client := &pagedSearchClient{}

		logs, err := SearchAllLogs(client, SearchLogsOptions{Query: "env:prod"}, 1)
		require.NoError(t, err)

		assert.NotNil(t, logs)
		assert.Empty(t, logs)
	})

	t.Run("error returns logs accumulated so far", func(t *testing.T) {
		client := &failingSearchClient{failOn: 2, pages: []map[string]any{
			page([]any{"log1"}, "cursor-1"),
		}}

		logs, err := SearchAllLogs(client, SearchLogsOptions{Query: "env:prod"}, MaxSearchPages)
		require.ErrorIs(t, err, ErrMockError)

		assert.Equal(t, []any{"log1"}, logs)
	})
}

// endlessSearchClient always returns one entry and another cursor
type endlessSearchClient struct {
	MockDatadogClient
	calls int
}

func (m *endlessSearchClient) SearchLogs(opts SearchLogsOptions) (map[string]any, error) {
	m.calls++
	return page([]any{"log"}, "more"), nil
}

// failingSearchClient returns canned pages until failOn, then an error
type failingSearchClient struct {
	MockDatadogClient
	pages  []map[string]any
	calls  int
	failOn int
}

func (m *failingSearchClient) SearchLogs(opts SearchLogsOptions) (map[string]any, error) {
	m.calls++
	if m.calls >= m.failOn {
		return map[string]any{}, ErrMockError
	}
	return m.pages[m.calls-1], nil
}
