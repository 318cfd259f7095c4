package solver

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/winfrac-dev/winfrac/pkg/domain"
	"gopkg.in/yaml.v3"
)

// instancePlaceholder in an argument template is replaced by the trial's
// instance file path.
const instancePlaceholder = "{instance}"

// Entry configures the external solver for one game kind.
type Entry struct {
	Command string         `yaml:"command"`
	Args    []string       `yaml:"args"`
	Decoder string         `yaml:"decoder"` // "region" or "csv"
	Options map[string]any `yaml:"options"` // free-form decoder tuning
}

// Registry maps game kinds to solver entries.
type Registry map[domain.Kind]Entry

type registryFile struct {
	Solvers map[string]Entry `yaml:"solvers"`
}

// DefaultRegistry returns the built-in solver commands, matching the
// reference solver suite.
func DefaultRegistry() Registry {
	return Registry{
		domain.KindEnergy: {
			Command: "egsolver",
			Args:    []string{"solve", instancePlaceholder},
			Decoder: "region",
		},
		domain.KindParity: {
			Command: "priority_promotion_solver",
			Args:    []string{"-i", instancePlaceholder, "--csv"},
			Decoder: "csv",
		},
		domain.KindReach: {
			Command: "ggg_reachability",
			Args:    []string{"-i", instancePlaceholder, "--csv"},
			Decoder: "csv",
		},
	}
}

// LoadRegistry reads a solvers.yaml and overlays it on the defaults. A
// missing file means "no overrides" and yields the defaults untouched.
func LoadRegistry(path string) (Registry, error) {
	reg := DefaultRegistry()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return reg, nil
		}
		return nil, fmt.Errorf("read solver registry: %w", err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse solver registry: %w", err)
	}
	for name, entry := range file.Solvers {
		kind := domain.Kind(name)
		if !kind.Valid() {
			return nil, fmt.Errorf("%w: unknown solver kind %q", domain.ErrParameter, name)
		}
		if entry.Command == "" {
			return nil, fmt.Errorf("%w: solver %q has no command", domain.ErrParameter, name)
		}
		reg[kind] = entry
	}
	return reg, nil
}

// BuildDecoder constructs the verdict decoder the entry names, applying any
// free-form options on top of the decoder's defaults.
func (e Entry) BuildDecoder() (Decoder, error) {
	switch e.Decoder {
	case "region", "":
		d := RegionDecoder{}
		if e.Options != nil {
			if err := mapstructure.Decode(e.Options, &d); err != nil {
				return nil, fmt.Errorf("%w: region decoder options: %v", domain.ErrParameter, err)
			}
		}
		return d, nil
	case "csv":
		d := DefaultCSVDecoder()
		if e.Options != nil {
			if err := mapstructure.Decode(e.Options, &d); err != nil {
				return nil, fmt.Errorf("%w: csv decoder options: %v", domain.ErrParameter, err)
			}
		}
		return d, nil
	default:
		return nil, fmt.Errorf("%w: unknown decoder %q", domain.ErrParameter, e.Decoder)
	}
}

// CommandLine renders the entry's argv for one instance file. An entry with
// no placeholder gets the path appended, so bare commands still work.
func (e Entry) CommandLine(instancePath string) (string, []string) {
	args := make([]string, 0, len(e.Args)+1)
	replaced := false
	for _, a := range e.Args {
		if strings.Contains(a, instancePlaceholder) {
			a = strings.ReplaceAll(a, instancePlaceholder, instancePath)
			replaced = true
		}
		args = append(args, a)
	}
	if !replaced {
		args = append(args, instancePath)
	}
	return e.Command, args
}
