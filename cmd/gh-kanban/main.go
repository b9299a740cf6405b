package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/naag/gh-kanban/internal/auth"
	"github.com/naag/gh-kanban/internal/config"
	"github.com/naag/gh-kanban/internal/project"
	"github.com/naag/gh-kanban/internal/repo"
	"github.com/naag/gh-kanban/internal/runner"
	"github.com/naag/gh-kanban/internal/workflow"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "gh-kanban",
	Short:        "Drive a GitHub Projects kanban board from the repository you work in",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Configure logging based on verbose level
		var level slog.Level
		switch verboseLevel {
		case 0:
			level = slog.LevelInfo
		default:
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
	},
}

var newIdeaCmd = &cobra.Command{
	Use:   "new-idea <title...>",
	Short: "Add a draft idea to the Backlog column",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnvironment(cmd.Context(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		return env.workflow.NewIdea(cmd.Context(), workflow.Title(args))
	},
}

var newTaskCmd = &cobra.Command{
	Use:   "new-task <title...>",
	Short: "Open an issue and queue it in the Todo column",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnvironment(cmd.Context(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		return env.workflow.NewTask(cmd.Context(), workflow.Title(args))
	},
}

var nextTaskCmd = &cobra.Command{
	Use:   "next-task",
	Short: "Move the first Todo task to In Progress and create a branch for it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnvironment(cmd.Context(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		return env.workflow.NextTask(cmd.Context())
	},
}

var verboseLevel int

func init() {
	rootCmd.AddCommand(newIdeaCmd, newTaskCmd, nextTaskCmd, useProjectCmd, initProjectCmd)

	rootCmd.PersistentFlags().CountVarP(&verboseLevel, "verbose", "v", "Verbosity level (-v for debug logs, -vv for debug logs and HTTP traffic)")
	initProjectCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Create the project without asking for confirmation")
}

// environment holds the repository, clients and services of one invocation
type environment struct {
	repo     *repo.Repository
	resolver *project.Resolver
	workflow *workflow.Service
}

func newEnvironment(ctx context.Context, out io.Writer) (*environment, error) {
	r := runner.Exec{}

	repository, err := repo.Locate(ctx, r)
	if err != nil {
		return nil, err
	}
	if err := config.LoadEnv(repository.Root); err != nil {
		return nil, err
	}

	session := auth.NewSession(r, verboseLevel >= 2)
	if err := session.EnsureScope(ctx, auth.ProjectScope); err != nil {
		return nil, err
	}
	clients, err := session.Clients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize GitHub clients: %w", err)
	}

	resolver := project.NewResolver(clients.GraphQL, config.NewStore(repository.Root), repository.Remote.Owner, out)
	service := workflow.NewService(
		clients.GraphQL,
		clients.REST,
		resolver,
		repository,
		workflow.Repository{Owner: repository.Remote.Owner, Name: repository.Remote.Name},
		out,
	)

	return &environment{
		repo:     repository,
		resolver: resolver,
		workflow: service,
	}, nil
}
