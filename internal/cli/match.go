package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match rotation commands",
	}

	cmd.AddCommand(newMatchGenerateCmd())
	cmd.AddCommand(newMatchGetCmd())
	cmd.AddCommand(newMatchFinishCmd())
	cmd.AddCommand(newMatchGoalCmd())
	cmd.AddCommand(newMatchDeleteCmd())

	return cmd
}

func newMatchGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate <session-id>",
		Short: "Generate the next match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Match

			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/matches", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <session-id> <match-id>",
		Short: "Get match details",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Match

			if err := client.Get(fmt.Sprintf("/api/v1/sessions/%s/matches/%s", args[0], args[1]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchFinishCmd() *cobra.Command {
	var winner string

	cmd := &cobra.Command{
		Use:   "finish <session-id> <match-id>",
		Short: "Finish a match and record the winner",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"winner_team_id": winner}
			var result Match

			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/matches/%s/finish", args[0], args[1]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&winner, "winner", "", "Winning team id: A or B (required)")
	_ = cmd.MarkFlagRequired("winner")

	return cmd
}

func newMatchGoalCmd() *cobra.Command {
	var (
		playerID string
		teamID   string
	)

	cmd := &cobra.Command{
		Use:   "goal <session-id> <match-id>",
		Short: "Record a goal in the current match",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"player_id": playerID,
				"team_id":   teamID,
			}
			var result Match

			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/matches/%s/goals", args[0], args[1]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerID, "player", "", "Scoring player id (required)")
	cmd.Flags().StringVar(&teamID, "team", "", "Team id: A or B (required)")
	_ = cmd.MarkFlagRequired("player")
	_ = cmd.MarkFlagRequired("team")

	return cmd
}

func newMatchDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <session-id> <match-id>",
		Short: "Delete the most recent match",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/sessions/%s/matches/%s", args[0], args[1])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Deleted match %s", args[1]))
			return nil
		},
	}
}
