package commands

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/envwiz/cmd/envwiz/opts"
	"github.com/walteh/envwiz/pkg/importer"
	"github.com/walteh/envwiz/pkg/render"
	"gitlab.com/tozd/go/errors"
)

// NewImportCmd creates a new import command
func NewImportCmd(o *opts.RootOpts) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Normalize a foreign configuration file to env format",
		Long: `Import parses an env, docker-compose, json or hcl file (or stdin, with
format sniffing) into a flat configuration and prints it in env format.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "import").Logger().WithContext(ctx)

			var config map[string]string
			if file == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return errors.Errorf("reading stdin: %w", err)
				}
				config, err = importer.Sniff(data).Parse(ctx, data)
				if err != nil {
					return errors.Errorf("parsing stdin: %w", err)
				}
			} else {
				var err error
				config, err = importer.Load(ctx, file)
				if err != nil {
					return errors.Errorf("importing: %w", err)
				}
			}

			out, err := render.Generate(config, render.Options{
				Format:        render.FormatEnv,
				WizardVersion: o.WizardVersion,
			})
			if err != nil {
				return errors.Errorf("rendering env output: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "file to import, - for stdin")

	return cmd
}
