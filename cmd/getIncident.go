package cmd

import (
	"github.com/clcollins/sredd/pkg/datadog"
	"github.com/spf13/cobra"
)

// getIncidentCmd represents the get-incident command
var getIncidentCmd = &cobra.Command{
	Use:   "get-incident INCIDENT_ID",
	Short: "Get the details of an incident by ID and print JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		cmd.SilenceUsage = true

		include, _ := cmd.Flags().GetString("include")
		data, err := client.GetIncident(args[0], include)
		if err != nil {
			return renderError(err)
		}

		if enrich, _ := cmd.Flags().GetBool("enrich"); enrich {
			datadog.Enrich(client, data)
		}

		return printJSON(cmd, data)
	},
}

func init() {
	rootCmd.AddCommand(getIncidentCmd)

	getIncidentCmd.Flags().String("include", "", "Comma-separated related objects to include")
	getIncidentCmd.Flags().Bool("enrich", false, "Fetch additional details (incident type, integrations)")
}
