package commands

import (
	"context"

	"github.com/walteh/envwiz/cmd/envwiz/opts"
	"github.com/walteh/envwiz/pkg/schema"
	"gitlab.com/tozd/go/errors"
)

// resolveTemplate finds a template by id, checking the built-ins first and
// the custom-template store second. Returns the template name and its
// preset map.
func resolveTemplate(ctx context.Context, o *opts.RootOpts, id string) (string, map[string]string, error) {
	if t := schema.TemplateByID(id); t != nil {
		return t.Name, t.Presets, nil
	}

	custom, err := o.Store.Get(ctx, id)
	if err != nil {
		return "", nil, errors.Errorf("template %q not found among built-ins or custom templates: %w", id, err)
	}
	return custom.Name, custom.Presets, nil
}
