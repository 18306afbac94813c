package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tabula/internal/definition"
	"github.com/alexisbeaulieu97/tabula/internal/tui/browser"
)

// runProgram is replaced in tests.
var runProgram = func(model tea.Model, cmd *cobra.Command) error {
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err := program.Run()
	return err
}

func newBrowseCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse <definition>",
		Short: "Browse a table definition interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, rootFlags, args[0])
		},
	}

	return cmd
}

func runBrowse(cmd *cobra.Command, rootFlags *rootFlags, path string) error {
	app, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}

	def, err := definition.Read(path)
	if err != nil {
		return newCommandError("browse", fmt.Sprintf("loading definition %s", path), err, "Check the definition's YAML.")
	}

	model := browser.NewModel(app.newEngine(def), browser.Options{
		Title:        def.Title,
		Description:  def.Description,
		Context:      app.renderContext(cmd.OutOrStdout()),
		MaxCellWidth: app.settings.MaxCellWidth,
		Loader:       def.ResolveRecords,
		Logger:       app.log,
	})

	if err := runProgram(model, cmd); err != nil {
		return newCommandError("browse", "running the browser", err, "Run 'tabula browse' from an interactive terminal.")
	}
	return nil
}
