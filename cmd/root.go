/*
Copyright © 2023 Chris Collins 'collins.christopher@gmail.com'

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/clcollins/sredd/pkg/datadog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const cfgFile = "sredd.yaml"
const cfgFilePath = ".config/sredd/"
const defaultSite = "us3.datadoghq.com"
const defaultTimeoutSeconds = 15

var debug bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sredd",
	Short: "CLI for Datadog incidents and log search",
	Long: `'sredd' is a small CLI for the Datadog incident-management
and log-search APIs.  It is intended to be used by SREs to fetch
and update incidents and to search logs during an investigation,
printing JSON results suitable for piping to jq.  It is not
intended to be a full-featured Datadog client, or kitchen sink,
but rather a simple tool to make incident work easier.`,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			log.SetLevel(log.DebugLevel)
			for k, v := range viper.GetViper().AllSettings() {
				if k == "api_key" || k == "app_key" {
					v = "*****"
				}
				log.Debug("Found key", "key", k, "value", v)
			}
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debugging output")
	rootCmd.PersistentFlags().String("site", "", "Datadog site, e.g., us3.datadoghq.com (default is `$DD_SITE` or "+defaultSite+")")
	rootCmd.PersistentFlags().Int("timeout", defaultTimeoutSeconds, "HTTP request timeout in seconds")

	cobra.CheckErr(viper.BindPFlag("site", rootCmd.PersistentFlags().Lookup("site")))
	cobra.CheckErr(viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout")))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Find home directory.
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	viper.AddConfigPath(home + "/" + cfgFilePath)
	viper.SetConfigName(cfgFile)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv() // read in environment variables that match

	// The standard Datadog environment variables; an empty value is
	// equivalent to unset
	cobra.CheckErr(viper.BindEnv("api_key", "DD_API_KEY"))
	cobra.CheckErr(viper.BindEnv("app_key", "DD_APP_KEY"))
	cobra.CheckErr(viper.BindEnv("site", "DD_SITE"))

	viper.SetDefault("site", defaultSite)
	viper.SetDefault("timeout", defaultTimeoutSeconds)

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Debug("Config file not found: " + err.Error())
		} else {
			fmt.Fprintln(os.Stderr, "Config file error: "+err.Error())
		}
	}
}

// newClient builds a Datadog client from the discovered settings, or returns
// a usage error when the credentials are missing.
func newClient() (*datadog.Client, error) {
	apiKey := viper.GetString("api_key")
	appKey := viper.GetString("app_key")

	if apiKey == "" || appKey == "" {
		return nil, errors.New("DD_API_KEY and DD_APP_KEY must be set. The v2 APIs require both")
	}

	return datadog.NewWithTimeout(siteSetting(), apiKey, appKey, timeoutSetting()), nil
}

func siteSetting() string {
	site := viper.GetString("site")
	if site == "" {
		site = defaultSite
	}
	return site
}

func timeoutSetting() time.Duration {
	seconds := viper.GetInt("timeout")
	if seconds <= 0 {
		seconds = defaultTimeoutSeconds
	}
	return time.Duration(seconds) * time.Second
}

// renderError turns an APIError into a cobra error whose message is the
// {error, status, body} JSON object; anything else passes through untouched.
func renderError(err error) error {
	var apiErr *datadog.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	out, jsonErr := json.MarshalIndent(map[string]any{
		"error":  apiErr.Error(),
		"status": apiErr.StatusCode,
		"body":   apiErr.Body,
	}, "", "  ")
	if jsonErr != nil {
		return err
	}

	return errors.New(string(out))
}

// printJSON renders a command result to stdout, indented with two spaces.
func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
