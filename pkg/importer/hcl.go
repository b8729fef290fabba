package importer

import (
	"context"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"gitlab.com/tozd/go/errors"
)

// 🔧 HCLParser implements Parser for HCL files of flat top-level attributes
type HCLParser struct{}

func init() {
	Register(&HCLParser{})
}

func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

func (p *HCLParser) Parse(_ context.Context, data []byte) (map[string]string, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "import.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	attrs, diags := hclFile.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, errors.Errorf("reading HCL attributes: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	out := make(map[string]string, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(evalCtx)
		if diags.HasErrors() {
			return nil, errors.Errorf("evaluating %s: %s", name, diags.Error())
		}
		str, err := convert.Convert(val, cty.String)
		if err != nil {
			return nil, errors.Errorf("attribute %s is not a scalar value: %w", name, err)
		}
		if str.IsNull() {
			out[name] = ""
			continue
		}
		out[name] = str.AsString()
	}

	return out, nil
}
