package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the only configuration version understood.
const CurrentVersion = "1"

// Config is the root structure of a configuration file.
type Config struct {
	// Version is the schema version (default "1").
	Version string `yaml:"version"`
	// StrictTemporal makes malformed temporal values fail the row.
	StrictTemporal bool `yaml:"strict_temporal,omitempty"`
	// ExactNames disables normalized key matching.
	ExactNames bool `yaml:"exact_names,omitempty"`
	// Categories lists the allowed conversion categories (default "default").
	Categories StringOrArray `yaml:"categories,omitempty"`
	// Aliases maps document keys to record field names.
	Aliases map[string]string `yaml:"aliases,omitempty"`
	// Types overrides the kind of named columns.
	Types map[string]string `yaml:"types,omitempty"`
	// Fields declares the record rows are decoded into, in order.
	Fields []FieldConfig `yaml:"fields,omitempty"`
}

// FieldConfig declares one record field.
type FieldConfig struct {
	Name string `yaml:"name"`
	// Type is a primitive kind name such as "int64", "time" or "decimal".
	Type     string `yaml:"type"`
	Optional bool   `yaml:"optional,omitempty"`
}

// StringOrArray represents a field that can be either a single string or an array.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array", node.Line)
	}
}
