package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/naag/gh-kanban/internal/config"
	"github.com/naag/gh-kanban/internal/github"
)

var assumeYes bool

var useProjectCmd = &cobra.Command{
	Use:   "use-project [number]",
	Short: "Select the project board for this repository",
	Long: `Select the project board for this repository and store it in ` + config.FileName + `.

Without a number, the open projects of the repository owner are offered for
selection when running in a terminal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		env, err := newEnvironment(ctx, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		var number int
		if len(args) == 1 {
			number, err = strconv.Atoi(args[0])
			if err != nil || number <= 0 {
				return fmt.Errorf("invalid project number %q", args[0])
			}
		} else {
			projects, err := env.resolver.OpenProjects(ctx)
			if err != nil {
				return err
			}
			number, err = selectProject(projects)
			if err != nil {
				return err
			}
		}

		selected, err := env.resolver.Use(ctx, number)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Using project #%d %s\n", selected.Number, selected.Title)
		return nil
	},
}

var initProjectCmd = &cobra.Command{
	Use:   "init-project <title...>",
	Short: "Create a project board with Status columns and select it",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		title := strings.Join(args, " ")

		env, err := newEnvironment(ctx, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		if !assumeYes {
			if !isTerminal() {
				return errors.New("refusing to create a project without confirmation, pass --yes")
			}
			confirmed := false
			prompt := fmt.Sprintf("Create project %q for %s?", title, env.repo.Remote.String())
			if err := huh.NewConfirm().Title(prompt).Value(&confirmed).Run(); err != nil {
				return err
			}
			if !confirmed {
				return errors.New("aborted")
			}
		}

		created, missing, err := env.resolver.Create(ctx, env.repo.Remote.Name, title)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Created project #%d %s\n", created.Number, created.URL)
		if len(missing) > 0 {
			fmt.Fprintf(out, "Add these options to the %s field in the project settings: %s\n",
				github.StatusFieldName, strings.Join(missing, ", "))
		}
		return nil
	},
}

// selectProject asks the user to pick one of projects
func selectProject(projects []github.Project) (int, error) {
	if len(projects) == 0 {
		return 0, errors.New("no open projects found, create one with 'gh-kanban init-project <title>'")
	}
	if !isTerminal() {
		return 0, errors.New("no project number given and not running in a terminal")
	}

	options := make([]huh.Option[int], 0, len(projects))
	for _, p := range projects {
		options = append(options, huh.NewOption(fmt.Sprintf("#%d %s", p.Number, p.Title), p.Number))
	}

	var number int
	err := huh.NewSelect[int]().
		Title("Project board for this repository").
		Options(options...).
		Value(&number).
		Run()
	if err != nil {
		return 0, err
	}
	return number, nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
