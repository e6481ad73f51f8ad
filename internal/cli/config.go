package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nhle/devdesign-studio/internal/model"
)

func newConfigCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}
	cmd.AddCommand(newConfigInitCmd(a))
	cmd.AddCommand(newConfigShowCmd(a))
	return cmd
}

func newConfigInitCmd(a *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(a.ConfigPath); err == nil && !force {
				return writeErr(cmd, fmt.Errorf("%s already exists (use --force to overwrite)", a.ConfigPath))
			}
			if err := model.SaveConfig(a.ConfigPath, model.DefaultAppConfig()); err != nil {
				return writeErr(cmd, err)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", a.ConfigPath)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func newConfigShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return writeErr(cmd, err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config:          %s\n", a.ConfigPath)
			fmt.Fprintf(out, "storage.driver:  %s\n", cfg.Storage.Driver)
			if cfg.Storage.Driver == model.DriverRedis {
				fmt.Fprintf(out, "storage.redis:   %s/%d\n", cfg.Storage.RedisAddr, cfg.Storage.RedisDB)
			} else {
				fmt.Fprintf(out, "storage.path:    %s\n", cfg.Storage.Path)
			}
			fmt.Fprintf(out, "storage.key:     %s\n", cfg.Storage.Key)
			fmt.Fprintf(out, "export.dir:      %s\n", cfg.Export.Dir)
			_, err = fmt.Fprintf(out, "log:             %s (%s)\n", cfg.Log.File, cfg.Log.Level)
			return err
		},
	}
}
