// Package main is the entry point for the authroute CLI, a small tool for
// building and inspecting HTTP Authorization header values.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	credentialsFile string
	verbose         bool
)

var rootCmd = &cobra.Command{
	Use:   "authroute",
	Short: "Build and inspect HTTP Authorization headers",
	Long: `authroute builds Authorization header values for Basic and Bearer
authentication, and parses existing header values back into their parts.
Credentials can be given as flags or read from a named profile in a YAML
credentials file.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&credentialsFile, "credentials", "",
		"credentials file path (default: ~/.config/authroute/credentials.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
}

func main() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}
