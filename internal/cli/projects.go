package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nhle/devdesign-studio/internal/media"
	"github.com/nhle/devdesign-studio/internal/model"
	"github.com/nhle/devdesign-studio/internal/snapshot"
	"github.com/nhle/devdesign-studio/internal/tracker"
)

// resolveProject finds a project by ID, or by case-insensitive name when
// the name is unique.
func resolveProject(t *tracker.Tracker, ref string) (model.Project, error) {
	ref = strings.TrimSpace(ref)
	if p, ok := t.Project(model.ID(ref)); ok {
		return p, nil
	}

	var matches []model.Project
	for _, p := range t.Projects() {
		if strings.EqualFold(p.Name, ref) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return model.Project{}, fmt.Errorf("project %q not found", ref)
	case 1:
		return matches[0], nil
	default:
		return model.Project{}, fmt.Errorf("project name %q is ambiguous, use the ID", ref)
	}
}

func newListCmd(a *App) *cobra.Command {
	var archived, all, asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.load(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}

			var projects []model.Project
			switch {
			case all:
				projects = t.Projects()
			case archived:
				projects = t.Archived()
			default:
				projects = t.Active()
			}

			if asJSON {
				data, err := snapshot.Encode(projects)
				if err != nil {
					return writeErr(cmd, err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tPROGRESS\tSTATUS")
			for _, p := range projects {
				status := "active"
				if p.Archived {
					status = "archived"
				}
				fmt.Fprintf(tw, "%s\t%s\t%d%%\t%s\n", p.ID, p.Name, p.Progress(), status)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&archived, "archived", false, "List archived projects only")
	cmd.Flags().BoolVar(&all, "all", false, "List every project")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the projects as JSON")
	return cmd
}

func newNewCmd(a *App) *cobra.Command {
	var figma, website string

	cmd := &cobra.Command{
		Use:   "new NAME",
		Short: "Create a project with the default checklists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.load(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			p, ok := t.CreateProject(cmd.Context(), args[0], figma, website)
			if !ok {
				return writeErr(cmd, fmt.Errorf("project name must not be empty"))
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", p.Name, p.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&figma, "figma", "", "Figma file URL")
	cmd.Flags().StringVar(&website, "website", "", "Website URL")
	return cmd
}

func newArchiveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive PROJECT",
		Short: "Archive a project, or restore an archived one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.load(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			p, err := resolveProject(t, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			t.ToggleArchived(cmd.Context(), p.ID)
			verb := "archived"
			if p.Archived {
				verb = "restored"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", verb, p.Name)
			return err
		},
	}
}

func newDeleteCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete PROJECT",
		Short: "Delete a project with its checklists and to-dos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.load(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			p, err := resolveProject(t, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			t.DeleteProject(cmd.Context(), p.ID)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", p.Name)
			return err
		},
	}
}

func newLinksCmd(a *App) *cobra.Command {
	var figma, website string

	cmd := &cobra.Command{
		Use:   "links PROJECT",
		Short: "Show or update the Figma and website links",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.load(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			p, err := resolveProject(t, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}

			flags := cmd.Flags()
			if flags.Changed("figma") || flags.Changed("website") {
				if !flags.Changed("figma") {
					figma = p.FigmaURL
				}
				if !flags.Changed("website") {
					website = p.WebsiteURL
				}
				t.UpdateLinks(cmd.Context(), p.ID, figma, website)
				p, _ = t.Project(p.ID)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "figma:   %s\n", p.FigmaURL)
			_, err = fmt.Fprintf(out, "website: %s\n", p.WebsiteURL)
			return err
		},
	}

	cmd.Flags().StringVar(&figma, "figma", "", "New Figma URL (empty clears it)")
	cmd.Flags().StringVar(&website, "website", "", "New website URL (empty clears it)")
	return cmd
}

func newImageCmd(a *App) *cobra.Command {
	var clearImage bool

	cmd := &cobra.Command{
		Use:   "image PROJECT [FILE]",
		Short: "Set or clear the project's profile image",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !clearImage && len(args) != 2 {
				return writeErr(cmd, fmt.Errorf("an image FILE is required unless --clear is set"))
			}
			t, err := a.load(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			p, err := resolveProject(t, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}

			if clearImage {
				t.SetProfileImage(cmd.Context(), p.ID, "")
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "cleared image of %s\n", p.Name)
				return err
			}

			data, err := media.EncodeImageFile(args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			t.SetProfileImage(cmd.Context(), p.ID, data)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "set image of %s\n", p.Name)
			return err
		},
	}

	cmd.Flags().BoolVar(&clearImage, "clear", false, "Remove the stored image")
	return cmd
}

func newProgressCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress PROJECT",
		Short: "Show completion per section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.load(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			p, err := resolveProject(t, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "Guidelines\t%d/%d\t%d%%\n", model.CountChecked(p.Guidelines), len(p.Guidelines), model.Progress(p.Guidelines))
			fmt.Fprintf(tw, "Workflow\t%d/%d\t%d%%\n", model.CountChecked(p.Workflow), len(p.Workflow), model.Progress(p.Workflow))
			fmt.Fprintf(tw, "To-Dos\t%d/%d\t%d%%\n", model.CountTodosChecked(p.Todos), len(p.Todos), model.TodoProgress(p.Todos))
			fmt.Fprintf(tw, "Total\t\t%d%%\n", p.Progress())
			return tw.Flush()
		},
	}
}
