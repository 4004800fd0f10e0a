package registry

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"ctypemap/dtype"
	"ctypemap/errors"
	"ctypemap/platform"
)

// AliasFile is the YAML form of a list of extra registrations:
//
//	types:
//	  - names: [real_t]
//	    type: float64
//	  - names: [index_t, "size_type"]
//	    type: uintp
//	  - names: [my_uint]
//	    type: unsigned int
type AliasFile struct {
	Types []AliasSpec `yaml:"types"`
}

// AliasSpec registers Names against Type. Type is a runtime spelling
// ("float64"), a host-dependent one ("intp", "uintp", "clongdouble"), or a
// C spelling already present in the registry.
type AliasSpec struct {
	Names []string `yaml:"names"`
	Type  string   `yaml:"type"`
}

// LoadAliases parses data and registers every entry in order. The first
// failing entry aborts the load.
func LoadAliases(r *Registry, host platform.Host, data []byte) error {
	var file AliasFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return errors.New(errors.InvalidAliasFile, "malformed alias file: %v", err).Build()
	}

	for i, spec := range file.Types {
		if len(spec.Names) == 0 {
			return fmt.Errorf("alias entry %d: %w", i, errors.New(errors.EmptyNameSet, "no names for type '%s'", spec.Type).Build())
		}
		t, err := resolveSpelling(r, host, spec.Type)
		if err != nil {
			return fmt.Errorf("alias entry %d: %w", i, err)
		}
		if _, err := r.Register(Names(spec.Names), t); err != nil {
			return fmt.Errorf("alias entry %d: %w", i, err)
		}
	}
	log.Infof("loaded %d alias entries", len(file.Types))
	return nil
}

func resolveSpelling(r *Registry, host platform.Host, spelling string) (dtype.Scalar, error) {
	spelling = strings.Join(strings.Fields(spelling), " ")
	switch spelling {
	case "intp":
		return host.Intp(), nil
	case "uintp":
		return host.Uintp(), nil
	case "clongdouble":
		return host.CLongDouble(), nil
	}

	if t, ok := r.Resolve(spelling); ok {
		return *t, nil
	}
	return dtype.Parse(spelling)
}
