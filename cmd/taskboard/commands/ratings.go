package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskboard/taskboard/pkg/api/v1/handlers"
)

const flagScore = "score"

func (c *cli) newRatingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "ratings",
		Short:             "Rate projects",
		PersistentPreRunE: c.initClient,
	}

	rateCmd := &cobra.Command{
		Use:   "rate [project-id]",
		Short: "Rate a project from 1 to 5",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString(flagEmail)
			score, _ := cmd.Flags().GetInt(flagScore)
			params := handlers.RatingParams{Email: email, Score: score}
			if err := params.Validate(); err != nil {
				return err
			}
			ratings, err := c.apiClient.RateProject(cmd.Context(), args[0], params)
			if err != nil {
				return fmt.Errorf("failed to rate project: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), ratings)
		},
	}
	rateCmd.Flags().String(flagEmail, "", "Rater email")
	rateCmd.Flags().Int(flagScore, 0, "Score from 1 to 5")
	_ = rateCmd.MarkFlagRequired(flagEmail)
	_ = rateCmd.MarkFlagRequired(flagScore)

	listCmd := &cobra.Command{
		Use:   "list [project-id]",
		Short: "Show the ratings of a project and their average",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ratings, err := c.apiClient.ListRatings(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list ratings: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), ratings)
		},
	}

	cmd.AddCommand(rateCmd, listCmd)
	return cmd
}
