package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// OperatorFile is the YAML document read from Config.OperatorFile:
//
//	overwrite: false
//	operators:
//	  - token: "^"
//	    starlark: "lambda exp, base: math.pow(base, exp)"
//	  - token: sqrt
//	    starlark: math.sqrt
//	    arity: 1
type OperatorFile struct {
	Overwrite bool          `yaml:"overwrite"`
	Operators []OperatorDef `yaml:"operators"`
}

// OperatorDef defines one operator. Arity is only needed when it cannot be read
// from the Starlark function's parameters.
type OperatorDef struct {
	Token    string `yaml:"token"`
	Starlark string `yaml:"starlark"`
	Arity    int    `yaml:"arity,omitempty"`
}

// LoadOperatorFile reads and checks an operator file.
func LoadOperatorFile(path string) (*OperatorFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read operator file: %w", err)
	}
	return ParseOperatorFile(data)
}

// ParseOperatorFile decodes an operator file from YAML.
func ParseOperatorFile(data []byte) (*OperatorFile, error) {
	f := &OperatorFile{}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("failed to parse operator file: %w", err)
	}

	for i, def := range f.Operators {
		if def.Token == "" {
			return nil, fmt.Errorf("operator %d: token is required", i)
		}
		if def.Starlark == "" {
			return nil, fmt.Errorf("operator %q: starlark source is required", def.Token)
		}
		if def.Arity < 0 {
			return nil, fmt.Errorf("operator %q: arity must be positive", def.Token)
		}
	}
	return f, nil
}
