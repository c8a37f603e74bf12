package commands

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jask/revenda/internal/auth"
	"github.com/jask/revenda/internal/config"
)

// passwdCmd stores a bcrypt hash in the config file, closing the open login gate.
func passwdCmd(opts *options) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Set the login password (read from stdin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			password := strings.TrimRight(line, "\r\n")
			if password == "" {
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				return errors.New("empty password")
			}

			hash, err := auth.HashPassword(password)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			if err := config.SaveAuth(opts.configPath, config.AuthConfig{Email: email, PasswordHash: hash}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "password updated")
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "restrict login to this e-mail")
	return cmd
}
