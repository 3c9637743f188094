package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskboard/taskboard/pkg/api/v1/handlers"
)

const flagTitle = "title"

func (c *cli) newTasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "tasks",
		Short:             "Manage the task checklist of a project",
		PersistentPreRunE: c.initClient,
	}

	addCmd := &cobra.Command{
		Use:   "add [project-id]",
		Short: "Add a task to a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, _ := cmd.Flags().GetString(flagTitle)
			params := handlers.TaskCreateParams{Title: title}
			if err := params.Validate(); err != nil {
				return err
			}
			change, err := c.apiClient.CreateTask(cmd.Context(), args[0], params)
			if err != nil {
				return fmt.Errorf("failed to add task: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), change)
		},
	}
	addCmd.Flags().String(flagTitle, "", "Task title")
	_ = addCmd.MarkFlagRequired(flagTitle)

	toggleCmd := &cobra.Command{
		Use:   "toggle [project-id] [task-id]",
		Short: "Flip the completed flag of a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			change, err := c.apiClient.ToggleTask(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to toggle task: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), change)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [project-id] [task-id]",
		Short: "Remove a task from a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			change, err := c.apiClient.DeleteTask(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to delete task: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), change)
		},
	}

	cmd.AddCommand(addCmd, toggleCmd, deleteCmd)
	return cmd
}
