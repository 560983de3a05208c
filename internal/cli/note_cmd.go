package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/progressmate/internal/service"
)

func newNoteCmd(app *App, flags *displayFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Write and search markdown notes",
	}
	cmd.AddCommand(
		newNoteAddCmd(app, flags),
		newNoteEditCmd(app, flags),
		newNoteRemoveCmd(app),
		newNoteListCmd(app, flags),
		newNoteShowCmd(app, flags),
	)
	return cmd
}

func newNoteAddCmd(app *App, flags *displayFlags) *cobra.Command {
	var fields noteFields

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a note (opens a form when run interactively without --title/--content)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (fields.title == "" || fields.content == "") && app.interactive() {
				if err := noteForm(flags.formatter(app).Palette, &fields).Run(); err != nil {
					return err
				}
			}
			n, err := app.Notes.Create(cmd.Context(), service.NoteInput{
				Title:   fields.title,
				Content: fields.content,
				Tags:    splitTags(fields.tags),
				TaskID:  fields.taskID,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created note %s (%s)\n", n.Title, n.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&fields.title, "title", "", "Note title")
	cmd.Flags().StringVar(&fields.content, "content", "", "Note body (markdown)")
	cmd.Flags().StringVar(&fields.tags, "tags", "", "Comma separated tags")
	cmd.Flags().StringVar(&fields.taskID, "task", "", "Task ID to link the note to")
	return cmd
}

func newNoteEditCmd(app *App, flags *displayFlags) *cobra.Command {
	var fields noteFields

	cmd := &cobra.Command{
		Use:   "edit <note-id>",
		Short: "Change a note; unset flags keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveNoteID(app.Store.State(), args[0])
			if err != nil {
				return err
			}
			current, err := app.Notes.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			merged := noteFields{
				title:   current.Title,
				content: current.Content,
				tags:    strings.Join(current.Tags, ", "),
				taskID:  current.TaskID,
			}
			changed := false
			for name, dst := range map[string]*string{
				"title": &merged.title, "content": &merged.content, "tags": &merged.tags, "task": &merged.taskID,
			} {
				if cmd.Flags().Changed(name) {
					changed = true
					*dst = *flagTarget(&fields, name)
				}
			}
			if !changed && app.interactive() {
				if err := noteForm(flags.formatter(app).Palette, &merged).Run(); err != nil {
					return err
				}
			}

			n, err := app.Notes.Update(cmd.Context(), id, service.NoteInput{
				Title:    merged.title,
				Content:  merged.content,
				Tags:     splitTags(merged.tags),
				TaskID:   merged.taskID,
				Template: current.Template,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated note %s\n", n.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&fields.title, "title", "", "New title")
	cmd.Flags().StringVar(&fields.content, "content", "", "New body (markdown)")
	cmd.Flags().StringVar(&fields.tags, "tags", "", "Comma separated tags, replacing the current ones")
	cmd.Flags().StringVar(&fields.taskID, "task", "", "Task ID to link, empty to unlink")
	return cmd
}

func flagTarget(f *noteFields, name string) *string {
	switch name {
	case "title":
		return &f.title
	case "content":
		return &f.content
	case "tags":
		return &f.tags
	default:
		return &f.taskID
	}
}

func newNoteRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <note-id>",
		Aliases: []string{"delete"},
		Short:   "Delete a note",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveNoteID(app.Store.State(), args[0])
			if err != nil {
				return err
			}
			return app.Notes.Delete(cmd.Context(), id)
		},
	}
}

func newNoteListCmd(app *App, flags *displayFlags) *cobra.Command {
	var search, taskID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := app.Notes.Search(cmd.Context(), search)
			if err != nil {
				return err
			}
			if taskID != "" {
				filtered := notes[:0]
				for _, n := range notes {
					if n.TaskID == taskID {
						filtered = append(filtered, n)
					}
				}
				notes = filtered
			}
			fmt.Fprint(cmd.OutOrStdout(), flags.formatter(app).FormatNoteList(notes))
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Match title, content or tags")
	cmd.Flags().StringVar(&taskID, "task", "", "Only notes linked to this task")
	return cmd
}

func newNoteShowCmd(app *App, flags *displayFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <note-id>",
		Short: "Render a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveNoteID(app.Store.State(), args[0])
			if err != nil {
				return err
			}
			n, err := app.Notes.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), flags.formatter(app).FormatNote(*n))
			return nil
		},
	}
}
