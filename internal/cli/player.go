package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Roster management commands",
	}

	cmd.AddCommand(newPlayerCheckInCmd())
	cmd.AddCommand(newPlayerUpdateCmd())
	cmd.AddCommand(newPlayerRemoveCmd())

	return cmd
}

func newPlayerCheckInCmd() *cobra.Command {
	var (
		position string
		skill    int
		ageGroup string
		tier     string
	)

	cmd := &cobra.Command{
		Use:   "checkin <session-id> <name>",
		Short: "Check a player in to a session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name":        args[1],
				"position":    position,
				"skill_level": skill,
				"age_group":   ageGroup,
				"tier":        tier,
			}

			var result Player

			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/players", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&position, "position", "", "Position: defense, midfield, attack (required)")
	cmd.Flags().IntVar(&skill, "skill", 0, "Skill level 1-5 (required)")
	cmd.Flags().StringVar(&ageGroup, "age-group", "", "Age group: under_21, 21_30, 31_40, 41_50, over_50 (required)")
	cmd.Flags().StringVar(&tier, "tier", "recurring", "Membership tier: recurring, drop_in")
	_ = cmd.MarkFlagRequired("position")
	_ = cmd.MarkFlagRequired("skill")
	_ = cmd.MarkFlagRequired("age-group")

	return cmd
}

func newPlayerUpdateCmd() *cobra.Command {
	var (
		position string
		skill    int
		ageGroup string
		tier     string
	)

	cmd := &cobra.Command{
		Use:   "update <session-id> <player-id>",
		Short: "Update a player's attributes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if cmd.Flags().Changed("position") {
				req["position"] = position
			}
			if cmd.Flags().Changed("skill") {
				req["skill_level"] = skill
			}
			if cmd.Flags().Changed("age-group") {
				req["age_group"] = ageGroup
			}
			if cmd.Flags().Changed("tier") {
				req["tier"] = tier
			}
			if len(req) == 0 {
				return fmt.Errorf("no attributes to update")
			}

			var result Player

			if err := client.Patch(fmt.Sprintf("/api/v1/sessions/%s/players/%s", args[0], args[1]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&position, "position", "", "Position: defense, midfield, attack")
	cmd.Flags().IntVar(&skill, "skill", 0, "Skill level 1-5")
	cmd.Flags().StringVar(&ageGroup, "age-group", "", "Age group")
	cmd.Flags().StringVar(&tier, "tier", "", "Membership tier: recurring, drop_in")

	return cmd
}

func newPlayerRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <session-id> <player-id>",
		Short: "Remove a player from a session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/sessions/%s/players/%s", args[0], args[1])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Removed player %s", args[1]))
			return nil
		},
	}
}
