package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omarluq/authroute/cmd/authroute/di"
	"github.com/omarluq/authroute/credential"
	"github.com/omarluq/authroute/internal/profiles"
)

var (
	encodeUsername string
	encodePassword string
	encodeToken    string
	encodeProfile  string
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Build an Authorization header value",
	Long: `Build an Authorization header value from a named profile in the
credentials file. Use the basic or bearer subcommands to encode from flags
instead.`,
	RunE: runEncodeProfile,
}

var encodeBasicCmd = &cobra.Command{
	Use:   "basic",
	Short: "Build a Basic Authorization header value",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cred := credential.NewBasic(encodeUsername, encodePassword)
		fmt.Fprintln(cmd.OutOrStdout(), cred.HeaderValue())
		return nil
	},
}

var encodeBearerCmd = &cobra.Command{
	Use:   "bearer",
	Short: "Build a Bearer Authorization header value",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cred, err := credential.NewBearer(encodeToken)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), cred.HeaderValue())
		return nil
	},
}

func init() {
	encodeCmd.Flags().StringVar(&encodeProfile, "profile", "", "credential profile name")
	encodeBasicCmd.Flags().StringVarP(&encodeUsername, "username", "u", "", "username")
	encodeBasicCmd.Flags().StringVarP(&encodePassword, "password", "p", "", "password")
	encodeBearerCmd.Flags().StringVarP(&encodeToken, "token", "t", "", "bearer token")

	_ = encodeBearerCmd.MarkFlagRequired("token")

	encodeCmd.AddCommand(encodeBasicCmd)
	encodeCmd.AddCommand(encodeBearerCmd)
	rootCmd.AddCommand(encodeCmd)
}

func runEncodeProfile(cmd *cobra.Command, _ []string) error {
	if encodeProfile == "" {
		return fmt.Errorf("either --profile or a basic/bearer subcommand is required")
	}

	container := di.NewContainer(credentialsFile, verbose)
	defer func() { _ = container.Shutdown() }()

	store, err := di.Invoke[*profiles.Store](container)
	if err != nil {
		return err
	}

	cred, err := store.Credential(encodeProfile)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cred.HeaderValue())
	return nil
}
