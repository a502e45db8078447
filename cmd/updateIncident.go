package cmd

import (
	"errors"

	"github.com/clcollins/sredd/pkg/fields"
	"github.com/spf13/cobra"
)

// updateOptions carries the update-incident flag values. Nil pointers mean
// the flag was not given, which is distinct from an explicit empty or false
// value.
type updateOptions struct {
	title               *string
	severity            *string
	state               *string
	customerImpacted    *bool
	customerImpactScope *string
	fieldArgs           []string
}

// updateIncidentCmd represents the update-incident command
var updateIncidentCmd = &cobra.Command{
	Use:   "update-incident INCIDENT_ID",
	Short: "Update an incident by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		attributes, err := buildUpdateAttributes(updateOptionsFromFlags(cmd))
		if err != nil {
			return err
		}

		if len(attributes) == 0 {
			return errors.New("no updates specified; use --help to see available options")
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		cmd.SilenceUsage = true

		data, err := client.UpdateIncident(args[0], attributes)
		if err != nil {
			return renderError(err)
		}

		return printJSON(cmd, data)
	},
}

func init() {
	rootCmd.AddCommand(updateIncidentCmd)

	updateIncidentCmd.Flags().String("title", "", "Update incident title")
	updateIncidentCmd.Flags().String("severity", "", "Update incident severity (e.g., SEV-1, SEV-2)")
	updateIncidentCmd.Flags().String("state", "", "Update incident state (active, stable, resolved)")
	updateIncidentCmd.Flags().Bool("customer-impacted", false, "Update customer impact flag")
	updateIncidentCmd.Flags().String("customer-impact-scope", "", "Update customer impact description")
	updateIncidentCmd.Flags().StringArray("field", nil, "Update custom field (format: key=value, can be used multiple times)")
}

// updateOptionsFromFlags reads the update-incident flags, keeping only the
// ones explicitly set on the command line.
func updateOptionsFromFlags(cmd *cobra.Command) updateOptions {
	var opts updateOptions
	flags := cmd.Flags()

	stringFlag := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}

	opts.title = stringFlag("title")
	opts.severity = stringFlag("severity")
	opts.state = stringFlag("state")
	opts.customerImpactScope = stringFlag("customer-impact-scope")

	if flags.Changed("customer-impacted") {
		v, _ := flags.GetBool("customer-impacted")
		opts.customerImpacted = &v
	}

	opts.fieldArgs, _ = flags.GetStringArray("field")

	return opts
}

// buildUpdateAttributes assembles the attributes object for the incident
// PATCH from the given flag values. Custom fields are encoded per their
// field-type categories.
func buildUpdateAttributes(opts updateOptions) (map[string]any, error) {
	attributes := map[string]any{}

	if opts.title != nil {
		attributes["title"] = *opts.title
	}
	if opts.severity != nil {
		attributes["severity"] = *opts.severity
	}
	if opts.state != nil {
		attributes["state"] = *opts.state
	}
	if opts.customerImpacted != nil {
		attributes["customer_impacted"] = *opts.customerImpacted
	}
	if opts.customerImpactScope != nil {
		attributes["customer_impact_scope"] = *opts.customerImpactScope
	}

	if len(opts.fieldArgs) > 0 {
		parsed, err := fields.Parse(opts.fieldArgs)
		if err != nil {
			return nil, err
		}
		if len(parsed) > 0 {
			attributes["fields"] = parsed
		}
	}

	return attributes, nil
}
