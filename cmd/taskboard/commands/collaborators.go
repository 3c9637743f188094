package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskboard/taskboard/pkg/api/v1/handlers"
)

const flagEmail = "email"

func (c *cli) newCollaboratorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "collaborators",
		Short:             "Manage who is reminded about a project",
		PersistentPreRunE: c.initClient,
	}

	addCmd := &cobra.Command{
		Use:   "add [project-id]",
		Short: "Invite an email to a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString(flagEmail)
			params := handlers.CollaboratorCreateParams{Email: email}
			if err := params.Validate(); err != nil {
				return err
			}
			collaborator, err := c.apiClient.CreateCollaborator(cmd.Context(), args[0], params)
			if err != nil {
				return fmt.Errorf("failed to add collaborator: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), collaborator)
		},
	}
	addCmd.Flags().String(flagEmail, "", "Collaborator email")
	_ = addCmd.MarkFlagRequired(flagEmail)

	listCmd := &cobra.Command{
		Use:   "list [project-id]",
		Short: "List the collaborators of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			collaborators, err := c.apiClient.ListCollaborators(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list collaborators: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), collaborators)
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove [project-id] [collaborator-id]",
		Short: "Remove a collaborator from a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.apiClient.DeleteCollaborator(cmd.Context(), args[0], args[1]); err != nil {
				return fmt.Errorf("failed to remove collaborator: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Collaborator %s removed\n", args[1])
			return nil
		},
	}

	cmd.AddCommand(addCmd, listCmd, removeCmd)
	return cmd
}
