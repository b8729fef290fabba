package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/envwiz/cmd/envwiz/opts"
	"github.com/walteh/envwiz/pkg/diff"
	"github.com/walteh/envwiz/pkg/importer"
	"github.com/walteh/envwiz/pkg/render"
	"gitlab.com/tozd/go/errors"
)

// NewDiffCmd creates a new diff command
func NewDiffCmd(o *opts.RootOpts) *cobra.Command {
	var (
		file        string
		templateID  string
		revertField string
		revertAll   bool
	)

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Compare a configuration against a template's defaults",
		Long: `Diff classifies every key that differs from the template baseline as
added, modified or removed. With --revert-field or --revert-all the
reverted configuration is printed in env format instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "diff").Logger().WithContext(ctx)

			config, err := importer.Load(ctx, file)
			if err != nil {
				return errors.Errorf("loading configuration: %w", err)
			}

			name, defaults, err := resolveTemplate(ctx, o, templateID)
			if err != nil {
				return err
			}

			// revert modes print the resulting config and stop
			if revertAll || revertField != "" {
				var reverted map[string]string
				if revertAll {
					reverted = diff.RevertAll(config, defaults)
				} else {
					reverted = diff.RevertField(revertField, config, defaults)
				}
				out, err := render.Generate(reverted, render.Options{
					Format:        render.FormatEnv,
					WizardVersion: o.WizardVersion,
				})
				if err != nil {
					return errors.Errorf("rendering reverted configuration: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}

			res := diff.Compute(config, defaults)
			if !res.HasChanges {
				o.Logger.Successf("no changes against template %q", name)
				return nil
			}

			o.Logger.Header(fmt.Sprintf("changes against template %q", name))
			lastCategory := ""
			for _, e := range res.Entries {
				if e.Category != lastCategory {
					o.Logger.CategoryHeader(e.Category)
					lastCategory = e.Category
				}
				o.Logger.LogDiffEntry(e)
			}
			o.Logger.Newline()
			o.Logger.Infof("%d change(s)", res.TotalChanges)

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", ".env", "configuration file to diff")
	cmd.Flags().StringVarP(&templateID, "template", "t", "quick-start", "template id to diff against")
	cmd.Flags().StringVar(&revertField, "revert-field", "", "print the configuration with one field reverted to the template value")
	cmd.Flags().BoolVar(&revertAll, "revert-all", false, "print the template defaults (reset to template)")

	return cmd
}
