package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session management commands",
	}

	cmd.AddCommand(newSessionCreateCmd())
	cmd.AddCommand(newSessionListCmd())
	cmd.AddCommand(newSessionGetCmd())
	cmd.AddCommand(newSessionDeleteCmd())
	cmd.AddCommand(newSessionConfigCmd())

	return cmd
}

func newSessionCreateCmd() *cobra.Command {
	var (
		date           string
		matchSize      int
		priorityCutoff string
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"name": args[0]}
			if date != "" {
				req["date"] = date
			}
			if matchSize > 0 {
				req["match_size"] = matchSize
			}
			if priorityCutoff != "" {
				req["priority_cutoff"] = priorityCutoff
			}

			var result Session

			if err := client.Post("/api/v1/sessions", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Session date (YYYY-MM-DD, default: today)")
	cmd.Flags().IntVar(&matchSize, "match-size", 0, "Players per match (default: server default)")
	cmd.Flags().StringVar(&priorityCutoff, "cutoff", "", "Priority cutoff time (HH:MM)")

	return cmd
}

func newSessionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SessionList

			if err := client.Get("/api/v1/sessions", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <session-id>",
		Short: "Get session details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Get(fmt.Sprintf("/api/v1/sessions/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <session-id>",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/sessions/%s", args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Deleted session %s", args[0]))
			return nil
		},
	}
}

func newSessionConfigCmd() *cobra.Command {
	var (
		matchSize      int
		priorityCutoff string
	)

	cmd := &cobra.Command{
		Use:   "config <session-id>",
		Short: "Update session configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if matchSize == 0 || priorityCutoff == "" {
				return fmt.Errorf("--match-size and --cutoff are required")
			}

			req := map[string]any{
				"match_size":      matchSize,
				"priority_cutoff": priorityCutoff,
			}
			var result Session

			if err := client.Patch(fmt.Sprintf("/api/v1/sessions/%s/config", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&matchSize, "match-size", 0, "Players per match (required)")
	cmd.Flags().StringVar(&priorityCutoff, "cutoff", "", "Priority cutoff time (HH:MM, required)")

	return cmd
}
