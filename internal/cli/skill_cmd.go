package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/progressmate/internal/domain"
	"github.com/alexanderramin/progressmate/internal/service"
)

func newSkillCmd(app *App, flags *displayFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skill",
		Short: "Track proficiency across security skills",
	}
	cmd.AddCommand(
		newSkillListCmd(app, flags),
		newSkillAddCmd(app, flags),
		newSkillSetCmd(app),
		newSkillSeedCmd(app),
	)
	return cmd
}

func newSkillListCmd(app *App, flags *displayFlags) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List skills grouped by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			skills, err := app.Skills.List(cmd.Context(), category)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), flags.formatter(app).FormatSkills(skills))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Only skills in this category")
	return cmd
}

func newSkillAddCmd(app *App, flags *displayFlags) *cobra.Command {
	var fields skillFields
	var notes string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a skill (opens a form when run interactively without --name)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fields.name == "" && app.interactive() {
				if err := skillForm(flags.formatter(app).Palette, &fields).Run(); err != nil {
					return err
				}
			}
			sk, err := app.Skills.Add(cmd.Context(), service.SkillInput{
				Name:        fields.name,
				Category:    fields.category,
				Proficiency: parseProficiency(fields.proficiency),
				Notes:       notes,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", sk.Name, sk.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&fields.name, "name", "", "Skill name")
	cmd.Flags().StringVar(&fields.category, "category", "", "Category, e.g. "+strings.Join(domain.SkillCategories[:3], ", "))
	cmd.Flags().StringVar(&fields.proficiency, "level", "", "Beginner, Intermediate, Advanced or Expert")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	return cmd
}

func newSkillSetCmd(app *App) *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "set <skill-id|name> [level]",
		Short: "Change the proficiency or notes of a skill",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveSkillID(app.Store.State(), args[0])
			if err != nil {
				return err
			}
			if len(args) == 1 && !cmd.Flags().Changed("notes") {
				return fmt.Errorf("nothing to change: give a level or --notes")
			}
			if len(args) == 2 {
				if err := app.Skills.SetProficiency(cmd.Context(), id, parseProficiency(args[1])); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("notes") {
				if err := app.Skills.SetNotes(cmd.Context(), id, notes); err != nil {
					return err
				}
			}
			sk, _ := app.Store.State().FindSkill(id)
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", sk.Name, sk.Proficiency)
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Replace the skill's notes")
	return cmd
}

func newSkillSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Add the predefined skill list when no skills exist yet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Skills.SeedDefaults(cmd.Context())
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Skills already exist; nothing seeded.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d skills\n", n)
			return nil
		},
	}
}

// parseProficiency matches a level case-insensitively. Unknown input is
// passed through so the service can reject it.
func parseProficiency(s string) domain.Proficiency {
	for _, lvl := range domain.ProficiencyLevels {
		if strings.EqualFold(string(lvl), s) {
			return lvl
		}
	}
	return domain.Proficiency(s)
}
