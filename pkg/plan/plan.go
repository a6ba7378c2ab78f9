// Package plan loads scripted chart builds from YAML or JSON files and replays
// them against a tree.
package plan

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/aretw0/teamtree/pkg/domain"
	"github.com/aretw0/teamtree/pkg/hierarchy"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demoPlan []byte

// Step is one scripted insertion.
type Step struct {
	Manager  string      `mapstructure:"manager" json:"manager" yaml:"manager"`
	Employee string      `mapstructure:"employee" json:"employee" yaml:"employee"`
	Side     domain.Side `mapstructure:"side" json:"side" yaml:"side"`
}

// Plan is a root plus an ordered list of insertions. Root may be empty, in
// which case every step reports an empty tree.
type Plan struct {
	Name    string `mapstructure:"name" json:"name,omitempty" yaml:"name,omitempty"`
	Root    string `mapstructure:"root" json:"root,omitempty" yaml:"root,omitempty"`
	Inserts []Step `mapstructure:"inserts" json:"inserts" yaml:"inserts"`
}

// Result pairs a step with its outcome.
type Result struct {
	Step    Step
	Outcome domain.Outcome
}

// stepAliases maps accepted shorthand keys onto Step fields.
var stepAliases = map[string]string{
	"under":  "manager",
	"boss":   "manager",
	"name":   "employee",
	"report": "employee",
	"to":     "side",
}

// Load reads a plan file. Files ending in .json are parsed as JSON, anything
// else as YAML.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}
	format := "yaml"
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		format = "json"
	}
	return Parse(data, format)
}

// Demo returns the built-in sample plan.
func Demo() *Plan {
	p, err := Parse(demoPlan, "yaml")
	if err != nil {
		panic(fmt.Sprintf("embedded demo plan is invalid: %v", err))
	}
	return p
}

// Parse decodes a plan from raw bytes in the given format ("yaml" or "json").
func Parse(data []byte, format string) (*Plan, error) {
	var raw map[string]any
	switch format {
	case "json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse plan json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse plan yaml: %w", err)
		}
	}
	return Decode(raw)
}

// Decode builds a Plan from a generic map, accepting the step key aliases and
// weakly typed values.
func Decode(raw map[string]any) (*Plan, error) {
	if steps, ok := raw["inserts"].([]any); ok {
		normalized := make([]any, len(steps))
		for i, st := range steps {
			normalized[i] = st
			if m, ok := st.(map[string]any); ok {
				step, err := normalizeStep(m)
				if err != nil {
					return nil, fmt.Errorf("invalid plan: step %d: %w", i+1, err)
				}
				normalized[i] = step
			}
		}
		copied := make(map[string]any, len(raw))
		for k, v := range raw {
			copied[k] = v
		}
		copied["inserts"] = normalized
		raw = copied
	}

	var p Plan
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       sideHook,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &p,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}

	for i, s := range p.Inserts {
		if s.Manager == "" || s.Employee == "" {
			return nil, fmt.Errorf("invalid plan: step %d needs both manager and employee", i+1)
		}
	}
	return &p, nil
}

func normalizeStep(m map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(m))
	for k, v := range m {
		key := strings.ToLower(k)
		if canonical, ok := stepAliases[key]; ok {
			key = canonical
		}
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("%q is set more than once (check aliases)", key)
		}
		out[key] = v
	}
	return out, nil
}

// sideHook canonicalizes side strings. Invalid sides are kept so that Apply
// reports them as outcomes rather than failing the whole plan.
func sideHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(domain.Side("")) || from.Kind() != reflect.String {
		return data, nil
	}
	return domain.ParseSide(reflect.ValueOf(data).String()), nil
}

// CheckRoot reports whether a plan can run on a chart led by root. Plans
// without a root fit any chart.
func CheckRoot(p *Plan, root string) error {
	if p.Root == "" || p.Root == root {
		return nil
	}
	return fmt.Errorf("plan root %q does not match chart root %q: %w", p.Root, root, domain.ErrRootExists)
}

// Apply replays the plan on tree. If the plan names a root and the tree is
// empty, the root is set first. Every step runs regardless of earlier outcomes.
func Apply(tree *hierarchy.Tree, p *Plan) ([]Result, error) {
	if p.Root != "" {
		if tree.Empty() {
			if err := tree.SetRoot(p.Root); err != nil {
				return nil, err
			}
		} else if err := CheckRoot(p, tree.RootName()); err != nil {
			return nil, err
		}
	}

	results := make([]Result, 0, len(p.Inserts))
	for _, s := range p.Inserts {
		results = append(results, Result{
			Step:    s,
			Outcome: tree.Insert(s.Manager, s.Employee, s.Side),
		})
	}
	return results, nil
}
