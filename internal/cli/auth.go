package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nhle/devdesign-studio/internal/credential"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage stored credentials",
	}
	cmd.AddCommand(newAuthRedisCmd())
	return cmd
}

func newAuthRedisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redis",
		Short: "Redis backend password (" + credential.RedisPasswordEnv + " takes precedence)",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set",
		Short: "Read the password from stdin and store it in the keyring",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if line == "" && err != nil {
				return writeErr(cmd, fmt.Errorf("reading password: %w", err))
			}
			if err := credential.SetRedisPassword(line); err != nil {
				return writeErr(cmd, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "stored redis password")
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove the stored password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := credential.ClearRedisPassword(); err != nil {
				return writeErr(cmd, err)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "removed redis password")
			return err
		},
	})

	return cmd
}
