/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/clcollins/sredd/pkg/deprecation"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	exampleConfig = `
# Example sredd configuration file
---
# This is an example configuration file for sredd.  It is intended to be used
# as a reference for the configuration options available to the user.  The
# configuration file is located at ~/.config/sredd/sredd.yaml
#
# Every option may also be provided by environment variable (DD_API_KEY,
# DD_APP_KEY, DD_SITE), which takes precedence over the config file.

# Required configuration options

# Datadog API key
api_key: <Datadog API key>

# Datadog application key
app_key: <Datadog application key>

# Optional configuration options

# Datadog site to send requests to
site: us3.datadoghq.com

# HTTP request timeout in seconds
timeout: 15`
)

const description = `The config command is used to create or validate the sredd config file.
The config file is located at ~/.config/sredd/sredd.yaml and is used to store
the configuration options for the sredd application.`

var (
	requiredKeys = map[string]string{
		"api_key": "Datadog API key",
		"app_key": "Datadog application key",
	}
	defaultOptionalKeys = map[string]string{
		"site":    defaultSite,
		"timeout": fmt.Sprintf("%d", defaultTimeoutSeconds),
	}
	optionalKeys = map[string]string{
		"site":    fmt.Sprintf("Datadog site to send requests to (default: %v)", defaultOptionalKeys["site"]),
		"timeout": fmt.Sprintf("HTTP request timeout in seconds (default: %v)", defaultOptionalKeys["timeout"]),
	}
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:          "config",
	Short:        "Create or validate the sredd config file",
	Long:         description + "\n\n" + exampleConfig,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case cmd.Flag("create").Value.String() == "true":
			fmt.Println(exampleConfig)
			return nil
		case cmd.Flag("validate").Value.String() == "true":
			err := validateConfig()
			if err != nil {
				return err
			}
			fmt.Printf("Config file is valid\n")
			return nil
		default:
			err := cmd.Usage()
			return err
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().BoolP("create", "c", false, "print a sample config file")
	configCmd.Flags().BoolP("validate", "v", false, "validate the config file")
	configCmd.MarkFlagsMutuallyExclusive("create", "validate")
}

// validateConfig prints the viper info passed into the program
func validateConfig() error {
	errs := []error{}
	settings := viper.GetViper().AllSettings()
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if deprecation.Deprecated(k) {
			log.Info("Found deprecated key; you may remove this from your config", "key_name", k)
			continue
		}

		var v string

		v = fmt.Sprintf("%v", settings[k])
		if strings.Contains(k, "key") {
			v = "*****"
		}

		log.Debug("Found key", k, v)

	}

	for k, v := range requiredKeys {
		if value, ok := settings[k]; !ok || value == "" {
			errs = append(errs, fmt.Errorf("missing required key: %s ", k))
			log.Error("Missing required key", "key_name", k, "key_description", v)
		}
	}

	for k := range optionalKeys {
		_, ok := settings[k]
		if !ok {
			log.Warn("missing optional key: " + k + "; using default value " + defaultOptionalKeys[k])
			viper.Set(k, defaultOptionalKeys[k])
		}
	}

	return errors.Join(errs...)
}
