package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/envwiz/cmd/envwiz/opts"
	"github.com/walteh/envwiz/pkg/importer"
	"github.com/walteh/envwiz/pkg/render"
	"github.com/walteh/envwiz/pkg/validate"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// artifactNames maps each format to its conventional output filename.
var artifactNames = map[render.Format]string{
	render.FormatEnv:        ".env",
	render.FormatCompose:    "docker-compose.yml",
	render.FormatDockerRun:  "docker-run.sh",
	render.FormatKubernetes: "n8n-kubernetes.yaml",
}

// NewGenerateCmd creates a new generate command
func NewGenerateCmd(o *opts.RootOpts) *cobra.Command {
	var (
		file            string
		format          string
		output          string
		all             bool
		maskSecrets     bool
		composeVersion  string
		includeComments bool
		force           bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render a configuration into a deployment artifact",
		Long: `Generate validates the configuration and renders it into the chosen
format. With --all every format is written into the output directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "generate").Logger().WithContext(ctx)

			config, err := importer.Load(ctx, file)
			if err != nil {
				return errors.Errorf("loading configuration: %w", err)
			}

			if res := validate.Config(config); !res.Valid {
				if !force {
					for _, f := range res.Errors {
						o.Logger.LogFinding(f)
					}
					return errors.Errorf("configuration has %d validation error(s), use --force to render anyway", len(res.Errors))
				}
				o.Logger.Warningf("rendering despite %d validation error(s)", len(res.Errors))
			}

			baseOpts := render.Options{
				ComposeVersion:  composeVersion,
				MaskSecrets:     maskSecrets,
				IncludeComments: &includeComments,
				WizardVersion:   o.WizardVersion,
			}
			if !cmd.Flags().Changed("include-comments") {
				baseOpts.IncludeComments = nil
			}

			if all {
				outDir := output
				if outDir == "" {
					outDir = "."
				}
				if err := os.MkdirAll(outDir, 0o755); err != nil {
					return errors.Errorf("creating output directory: %w", err)
				}

				g, gctx := errgroup.WithContext(ctx)
				for _, f := range render.Formats() {
					f := f
					g.Go(func() error {
						opts := baseOpts
						opts.Format = f
						out, err := render.Generate(config, opts)
						if err != nil {
							return errors.Errorf("rendering %s: %w", f, err)
						}
						path := filepath.Join(outDir, artifactNames[f])
						if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
							return errors.Errorf("writing %s: %w", path, err)
						}
						zerolog.Ctx(gctx).Debug().Str("path", path).Str("format", string(f)).Msg("artifact written")
						return nil
					})
				}
				if err := g.Wait(); err != nil {
					return err
				}
				o.Logger.Successf("wrote %d artifacts to %s", len(render.Formats()), outDir)
				return nil
			}

			baseOpts.Format = render.Format(format)
			out, err := render.Generate(config, baseOpts)
			if err != nil {
				return errors.Errorf("rendering %s: %w", format, err)
			}

			if output == "" {
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}
			if err := os.WriteFile(output, []byte(out), 0o644); err != nil {
				return errors.Errorf("writing %s: %w", output, err)
			}
			o.Logger.Successf("wrote %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", ".env", "configuration file to render")
	cmd.Flags().StringVar(&format, "format", string(render.FormatEnv), "output format: env, docker-compose, docker-run or kubernetes")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (or directory with --all); default stdout")
	cmd.Flags().BoolVar(&all, "all", false, "render every format into the output directory")
	cmd.Flags().BoolVar(&maskSecrets, "mask-secrets", false, "replace sensitive values with a placeholder")
	cmd.Flags().StringVar(&composeVersion, "compose-version", "", "compose file version: 3.7, 3.8 or 3.9")
	cmd.Flags().BoolVar(&includeComments, "include-comments", true, "include generated header comments")
	cmd.Flags().BoolVar(&force, "force", false, "render even when validation fails")

	return cmd
}
