package cmd

import (
	"fmt"
	"slices"

	"github.com/clcollins/sredd/pkg/datadog"
	"github.com/spf13/cobra"
)

var storageTiers = []string{"indexes", "online-archives", "flex"}

// searchLogsCmd represents the search-logs command
var searchLogsCmd = &cobra.Command{
	Use:   "search-logs QUERY",
	Short: "Search logs with Datadog query syntax",
	Long: `Search logs with Datadog query syntax.

Example: sredd search-logs 'env:prod service:(svc1 OR svc2) order-123'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		storageTier, _ := flags.GetString("storage-tier")
		if storageTier != "" && !slices.Contains(storageTiers, storageTier) {
			return fmt.Errorf("invalid storage tier %q; must be one of %v", storageTier, storageTiers)
		}

		from, _ := flags.GetString("from")
		to, _ := flags.GetString("to")
		limit, _ := flags.GetInt("limit")
		indexes, _ := flags.GetStringArray("index")
		allPages, _ := flags.GetBool("all-pages")

		maxPages := 1
		if allPages {
			maxPages = datadog.MaxSearchPages
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		cmd.SilenceUsage = true

		logs, err := datadog.SearchAllLogs(client, datadog.SearchLogsOptions{
			Query:       args[0],
			From:        from,
			To:          to,
			Limit:       limit,
			Indexes:     indexes,
			StorageTier: storageTier,
		}, maxPages)
		if err != nil {
			return renderError(err)
		}

		return printJSON(cmd, map[string]any{"data": logs, "count": len(logs)})
	},
}

func init() {
	rootCmd.AddCommand(searchLogsCmd)

	searchLogsCmd.Flags().String("from", "now-15m", "Start time (e.g., now-1h, now-15m)")
	searchLogsCmd.Flags().String("to", "now", "End time (e.g., now)")
	searchLogsCmd.Flags().Int("limit", 100, "Max logs per page")
	searchLogsCmd.Flags().String("storage-tier", "", "Storage tier to search (indexes, online-archives, flex)")
	searchLogsCmd.Flags().StringArray("index", nil, "Index to search (can be used multiple times; default is all indexes)")
	searchLogsCmd.Flags().Bool("all-pages", false, "Fetch all pages (up to 50)")
}
