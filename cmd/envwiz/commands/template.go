package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/envwiz/cmd/envwiz/opts"
	"github.com/walteh/envwiz/pkg/importer"
	"github.com/walteh/envwiz/pkg/log"
	"github.com/walteh/envwiz/pkg/render"
	"github.com/walteh/envwiz/pkg/schema"
	"github.com/walteh/envwiz/pkg/store"
	"gitlab.com/tozd/go/errors"
)

// NewTemplateCmd creates the template command group
func NewTemplateCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage configuration templates",
	}

	cmd.AddCommand(
		newTemplateListCmd(o),
		newTemplateShowCmd(o),
		newTemplateCreateCmd(o),
		newTemplateDeleteCmd(o),
	)

	return cmd
}

func newTemplateListCmd(o *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in and custom templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			o.Logger.Header("built-in templates")
			for _, t := range schema.Templates() {
				o.Logger.Infof("%s — %s (%d presets)", t.ID, t.Name, len(t.Presets))
			}

			custom, err := o.Store.List(ctx)
			if err != nil {
				return errors.Errorf("listing custom templates: %w", err)
			}
			if len(custom) == 0 {
				return nil
			}

			o.Logger.Header("custom templates")
			for _, t := range custom {
				o.Logger.Infof("%s — %s (%d presets, updated %s)",
					t.ID, t.Name, len(t.Presets), t.UpdatedAt.Format("2006-01-02"))
			}
			return nil
		},
	}
}

func newTemplateShowCmd(o *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a template's presets in env format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			_, presets, err := resolveTemplate(ctx, o, args[0])
			if err != nil {
				return err
			}

			out, err := render.Generate(presets, render.Options{
				Format:        render.FormatEnv,
				WizardVersion: o.WizardVersion,
			})
			if err != nil {
				return errors.Errorf("rendering template: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newTemplateCreateCmd(o *opts.RootOpts) *cobra.Command {
	var (
		name        string
		description string
		icon        string
		categories  []string
		fromFile    string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a custom template from a configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "template create").Logger().WithContext(ctx)
			feedback := log.NewFeedback(ctx)

			presets := map[string]string{}
			if fromFile != "" {
				var err error
				presets, err = importer.Load(ctx, fromFile)
				if err != nil {
					return errors.Errorf("loading presets: %w", err)
				}
			}

			tpl, err := o.Store.Create(ctx, store.CreateInput{
				Name:        name,
				Description: description,
				Icon:        icon,
				Categories:  categories,
				Presets:     presets,
			})
			if err != nil {
				feedback.LogTemplateChange(log.TemplateChange{Type: log.TemplateError, Name: name, Err: err})
				return errors.Errorf("creating template: %w", err)
			}

			feedback.LogTemplateChange(log.TemplateChange{
				Type:        log.TemplateCreated,
				Name:        tpl.Name,
				Description: tpl.ID,
			})
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "template name (required)")
	cmd.Flags().StringVar(&description, "description", "", "template description")
	cmd.Flags().StringVar(&icon, "icon", "bookmark", "template icon")
	cmd.Flags().StringSliceVar(&categories, "categories", nil, "category ids the template covers")
	cmd.Flags().StringVar(&fromFile, "from-file", "", "configuration file to take presets from")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newTemplateDeleteCmd(o *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a custom template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			feedback := log.NewFeedback(ctx)

			if err := o.Store.Delete(ctx, args[0]); err != nil {
				feedback.LogTemplateChange(log.TemplateChange{Type: log.TemplateError, Name: args[0], Err: err})
				return errors.Errorf("deleting template: %w", err)
			}

			feedback.LogTemplateChange(log.TemplateChange{Type: log.TemplateDeleted, Name: args[0]})
			return nil
		},
	}
}
