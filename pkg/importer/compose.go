package importer

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔧 ComposeParser implements Parser for docker-compose files, extracting
// every service's environment section
type ComposeParser struct{}

func init() {
	Register(&ComposeParser{})
}

func (p *ComposeParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

// composeFile is the subset of the compose schema we care about. The
// environment section may be either a map or a list of K=V strings, so it
// decodes into a raw node first.
type composeFile struct {
	Services map[string]struct {
		Environment yaml.Node `yaml:"environment"`
	} `yaml:"services"`
}

func (p *ComposeParser) Parse(_ context.Context, data []byte) (map[string]string, error) {
	var cf composeFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	if len(cf.Services) == 0 {
		return nil, errors.Errorf("no services section found")
	}

	out := map[string]string{}

	// deterministic merge order across services
	names := make([]string, 0, len(cf.Services))
	for name := range cf.Services {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		env := cf.Services[name].Environment
		switch env.Kind {
		case 0:
			// service has no environment section
		case yaml.MappingNode:
			var m map[string]string
			if err := env.Decode(&m); err != nil {
				// tolerate non-string scalars (ports, booleans) by decoding loosely
				var loose map[string]interface{}
				if err2 := env.Decode(&loose); err2 != nil {
					return nil, errors.Errorf("service %s: decoding environment map: %w", name, err)
				}
				m = map[string]string{}
				for k, v := range loose {
					m[k] = fmt.Sprintf("%v", v)
				}
			}
			for k, v := range m {
				out[k] = v
			}
		case yaml.SequenceNode:
			var list []string
			if err := env.Decode(&list); err != nil {
				return nil, errors.Errorf("service %s: decoding environment list: %w", name, err)
			}
			for _, item := range list {
				k, v, _ := strings.Cut(item, "=")
				out[strings.TrimSpace(k)] = strings.TrimSpace(v)
			}
		default:
			return nil, errors.Errorf("service %s: unsupported environment shape", name)
		}
	}

	return out, nil
}
