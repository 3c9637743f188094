// Package commands implements the taskboard command line
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskboard/taskboard/pkg/api/v1/client"
	"github.com/taskboard/taskboard/pkg/api/v1/routes"
)

// flag names
const (
	flagServerAddress = "server-address"
)

// environment variable names
const (
	envServerAddress = "TASKBOARD_SERVER_ADDRESS"
)

// clientFactory builds the API client used by the remote commands
type clientFactory func(opts *client.Options) (client.Client, error)

// cli is the state shared by the commands of one invocation
type cli struct {
	serverAddress string
	newClient     clientFactory
	apiClient     client.Client
}

// Execute runs the taskboard command line
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	return newRootCmd(client.NewClient)
}

func newRootCmd(newClient clientFactory) *cobra.Command {
	c := &cli{newClient: newClient}

	root := &cobra.Command{
		Use:   "taskboard",
		Short: "taskboard - project tracking with start-date reminders",
		Long: `taskboard tracks projects, their task checklists and collaborators, and emails every
collaborator shortly before a project starts.

Server commands (serve, dispatch, migrate) read their configuration from the environment, an
optional .env file and the YAML file named by TASKBOARD_CONFIG_PATH. The other commands talk to a
running server.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&c.serverAddress, flagServerAddress, "s", routes.DefaultBaseURL,
		"Address of the taskboard API server (env: "+envServerAddress+")")

	root.AddCommand(newServeCmd())
	root.AddCommand(newDispatchCmd())
	root.AddCommand(newMigrateCmd())

	root.AddCommand(c.newProjectsCmd())
	root.AddCommand(c.newTasksCmd())
	root.AddCommand(c.newCollaboratorsCmd())
	root.AddCommand(c.newRatingsCmd())
	root.AddCommand(c.newRemindersCmd())
	return root
}

// initClient creates the API client. Flag > env var > default.
func (c *cli) initClient(cmd *cobra.Command, _ []string) error {
	if !cmd.Flags().Changed(flagServerAddress) {
		if envAddr := os.Getenv(envServerAddress); envAddr != "" {
			c.serverAddress = envAddr
		}
	}
	if c.serverAddress == "" {
		return fmt.Errorf("server address cannot be empty")
	}

	opts := client.DefaultOptions()
	opts.BaseURL = c.serverAddress

	var err error
	c.apiClient, err = c.newClient(opts)
	return err
}

// printJSON pretty prints v to w
func printJSON(w io.Writer, v interface{}) error {
	prettyJSON, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error formatting response: %w", err)
	}
	_, err = fmt.Fprintln(w, string(prettyJSON))
	return err
}
