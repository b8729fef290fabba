package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/envwiz/cmd/envwiz/opts"
	"github.com/walteh/envwiz/pkg/importer"
	"github.com/walteh/envwiz/pkg/validate"
	"gitlab.com/tozd/go/errors"
)

// NewValidateCmd creates a new validate command
func NewValidateCmd(o *opts.RootOpts) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a configuration file",
		Long: `Validate runs every field rule plus the cross-field dependency checks
against a configuration file and reports the findings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "validate").Logger().WithContext(ctx)

			config, err := importer.Load(ctx, file)
			if err != nil {
				return errors.Errorf("loading configuration: %w", err)
			}

			res := validate.Config(config)
			if res.Valid {
				o.Logger.Successf("%s is valid (%d keys checked)", file, len(config))
				return nil
			}

			o.Logger.Header("validation findings")
			for _, f := range res.Errors {
				o.Logger.LogFinding(f)
			}
			for _, f := range res.Warnings {
				o.Logger.LogFinding(f)
			}
			o.Logger.Newline()

			return errors.Errorf("%d validation error(s) in %s", len(res.Errors), file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", ".env", "configuration file to validate")

	return cmd
}
