package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/omarluq/authroute/credential"
)

var decodeReveal bool

var decodeCmd = &cobra.Command{
	Use:   "decode <header-value>",
	Short: "Parse an Authorization header value",
	Long: `Parse an Authorization header value and print the recovered credential
as JSON. Secrets are redacted unless --reveal is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := decodeHeaderValue(args[0], decodeReveal)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	decodeCmd.Flags().BoolVar(&decodeReveal, "reveal", false,
		"include secrets in the output instead of redacting them")
	rootCmd.AddCommand(decodeCmd)
}

// decodeHeaderValue tries each scheme codec in turn and renders the first
// successful parse as a JSON document.
func decodeHeaderValue(value string, reveal bool) (string, error) {
	if bearer, err := credential.ParseBearer(value); err == nil {
		return renderBearer(bearer, reveal)
	}

	basic, err := credential.ParseBasic(value)
	if err != nil {
		var decodeErr *credential.DecodeError
		if errors.As(err, &decodeErr) {
			return "", fmt.Errorf("value matches no known scheme: %w", err)
		}
		return "", err
	}
	return renderBasic(basic, reveal)
}

func renderBearer(bearer credential.Bearer, reveal bool) (string, error) {
	out, err := sjson.Set("", "scheme", string(credential.SchemeBearer))
	if err != nil {
		return "", err
	}

	token := "****"
	if reveal {
		token = bearer.Token
	}
	return sjson.Set(out, "token", token)
}

func renderBasic(basic credential.Basic, reveal bool) (string, error) {
	out, err := sjson.Set("", "scheme", string(credential.SchemeBasic))
	if err != nil {
		return "", err
	}

	out, err = sjson.Set(out, "username", basic.Username)
	if err != nil {
		return "", err
	}

	password := "****"
	if reveal {
		password = basic.Password
	}
	return sjson.Set(out, "password", password)
}
