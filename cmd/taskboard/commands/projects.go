package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskboard/taskboard/internal/db/models"
	"github.com/taskboard/taskboard/pkg/api/v1/handlers"
)

// Flag names
const (
	flagName        = "name"
	flagDescription = "description"
	flagDate        = "date"
	flagTask        = "task"
	flagStatus      = "status"
	flagClearDate   = "clear-date"
	flagPage        = "page"
)

func (c *cli) newProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "projects",
		Short:             "Manage projects",
		PersistentPreRunE: c.initClient,
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString(flagName)
			description, _ := cmd.Flags().GetString(flagDescription)
			tasks, _ := cmd.Flags().GetStringArray(flagTask)

			params := handlers.ProjectCreateParams{
				Name:        name,
				Description: description,
				Tasks:       tasks,
			}
			if raw, _ := cmd.Flags().GetString(flagDate); raw != "" {
				date, err := models.ParseDate(raw)
				if err != nil {
					return fmt.Errorf("invalid --%s: %w", flagDate, err)
				}
				params.RealizationDate = &date
			}
			if err := params.Validate(); err != nil {
				return err
			}

			project, err := c.apiClient.CreateProject(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("failed to create project: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), project)
		},
	}
	createCmd.Flags().String(flagName, "", "Project name")
	createCmd.Flags().String(flagDescription, "", "Project description")
	createCmd.Flags().String(flagDate, "", "Realization date (YYYY-MM-DD)")
	createCmd.Flags().StringArray(flagTask, nil, "Initial task title (repeatable)")
	_ = createCmd.MarkFlagRequired(flagName)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, _ := cmd.Flags().GetInt(flagPage)
			projects, err := c.apiClient.ListProjects(cmd.Context(), page)
			if err != nil {
				return fmt.Errorf("failed to list projects: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), projects)
		},
	}
	listCmd.Flags().Int(flagPage, 1, "Page number")

	getCmd := &cobra.Command{
		Use:   "get [project-id]",
		Short: "Show a project with its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := c.apiClient.GetProject(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get project: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), project)
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update [project-id]",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var params handlers.ProjectUpdateParams
			if cmd.Flags().Changed(flagName) {
				name, _ := cmd.Flags().GetString(flagName)
				params.Name = &name
			}
			if cmd.Flags().Changed(flagDescription) {
				description, _ := cmd.Flags().GetString(flagDescription)
				params.Description = &description
			}
			if cmd.Flags().Changed(flagStatus) {
				raw, _ := cmd.Flags().GetString(flagStatus)
				status, err := models.ParseProjectStatus(raw)
				if err != nil {
					return err
				}
				params.Status = &status
			}
			if cmd.Flags().Changed(flagDate) {
				raw, _ := cmd.Flags().GetString(flagDate)
				date, err := models.ParseDate(raw)
				if err != nil {
					return fmt.Errorf("invalid --%s: %w", flagDate, err)
				}
				params.RealizationDate = &date
			}
			params.ClearRealizationDate, _ = cmd.Flags().GetBool(flagClearDate)
			if params.ClearRealizationDate && params.RealizationDate != nil {
				return fmt.Errorf("--%s and --%s are mutually exclusive", flagDate, flagClearDate)
			}
			if err := params.Validate(); err != nil {
				return err
			}

			project, err := c.apiClient.UpdateProject(cmd.Context(), args[0], params)
			if err != nil {
				return fmt.Errorf("failed to update project: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), project)
		},
	}
	updateCmd.Flags().String(flagName, "", "New project name")
	updateCmd.Flags().String(flagDescription, "", "New project description")
	updateCmd.Flags().String(flagStatus, "", "New status (not_started, in_progress, completed)")
	updateCmd.Flags().String(flagDate, "", "New realization date (YYYY-MM-DD)")
	updateCmd.Flags().Bool(flagClearDate, false, "Remove the realization date")

	deleteCmd := &cobra.Command{
		Use:   "delete [project-id]",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.apiClient.DeleteProject(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete project: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Project %s deleted\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(createCmd, listCmd, getCmd, updateCmd, deleteCmd)
	return cmd
}
