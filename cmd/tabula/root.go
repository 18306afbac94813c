package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	configFile string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tabula",
		Short:         "Tabula sorts, filters and pages tables described in YAML",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "Settings file (default searches the user config dir and .)")
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().String("theme", "", "Theme: default, dark or plain")
	cmd.PersistentFlags().String("unicode", "", "Box drawing glyphs: auto, always or never")
	cmd.PersistentFlags().Int("page-size", 0, "Rows per page, overriding the definition")
	cmd.PersistentFlags().Int("max-width", 0, "Maximum width of auto-sized columns")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
