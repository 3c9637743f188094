package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) newRemindersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "reminders",
		Short:             "Trigger reminder emails on a running server",
		PersistentPreRunE: c.initClient,
	}

	dispatchCmd := &cobra.Command{
		Use:   "dispatch",
		Short: "Email the collaborators of every project starting within the look-ahead window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := c.apiClient.DispatchReminders(cmd.Context())
			if resp.Summary != nil || resp.Message != "" || resp.Error != "" {
				if perr := printJSON(cmd.OutOrStdout(), resp); perr != nil {
					return perr
				}
			}
			if err != nil {
				return fmt.Errorf("failed to dispatch reminders: %w", err)
			}
			return nil
		},
	}

	cmd.AddCommand(dispatchCmd)
	return cmd
}
