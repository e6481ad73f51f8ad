package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCmd(a *App) *cobra.Command {
	var out string
	var stdout bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a dated JSON backup of all projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.load(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			if stdout {
				return t.Export(cmd.OutOrStdout())
			}
			dir := out
			if dir == "" {
				dir = a.cfg.Export.Dir
			}
			path, err := t.ExportFile(dir)
			if err != nil {
				return writeErr(cmd, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Directory for the backup file (default: export.dir from config)")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Print the backup instead of writing a file")
	return cmd
}

func newImportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace all projects with a JSON backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.load(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := t.ImportFile(cmd.Context(), args[0]); err != nil {
				return writeErr(cmd, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d projects\n", len(t.Projects()))
			return err
		},
	}
}
