package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/envwiz/cmd/envwiz/commands"
	"github.com/walteh/envwiz/cmd/envwiz/opts"
	"github.com/walteh/envwiz/pkg/log"
	"github.com/walteh/envwiz/pkg/store"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	storePath string
	debug     bool
	quiet     bool
)

// NewRootCmd builds the envwiz command tree
func NewRootCmd() *cobra.Command {
	o := &opts.RootOpts{}

	root := &cobra.Command{
		Use:           "envwiz",
		Short:         "Configuration wizard for self-hosted n8n",
		Long:          "envwiz assembles, validates and diffs an n8n environment configuration,\nthen renders it into an env file, docker-compose file, docker run command\nor kubernetes manifest.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()

			path := storePath
			if path == "" {
				var err error
				path, err = store.DefaultPath()
				if err != nil {
					return errors.Errorf("resolving template store path: %w", err)
				}
			}
			st, err := store.New(path)
			if err != nil {
				return errors.Errorf("opening template store: %w", err)
			}

			level := zerolog.InfoLevel
			if debug {
				level = zerolog.DebugLevel
			}
			logger := log.New(os.Stdout, level)
			logger.SetQuiet(quiet)

			o.Logger = logger
			o.Store = st
			o.WizardVersion = GetVersionInfo().Version
			return nil
		},
	}

	addRootFlags(root)

	root.AddCommand(
		commands.NewValidateCmd(o),
		commands.NewDiffCmd(o),
		commands.NewGenerateCmd(o),
		commands.NewTemplateCmd(o),
		commands.NewImportCmd(o),
		newVersionCmd(),
	)

	return root
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&storePath, "store", "", "template store path (default ~/.envwiz/templates.json)")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress console output")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print(FormatVersion())
		},
	}
}
