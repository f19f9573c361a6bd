// Package yamlenv provides yaml config values that can be overridden
// through environment variables using the ${VAR} syntax.
package yamlenv

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Env wraps a config value of type T. A scalar yaml node is expanded with
// os.ExpandEnv before conversion, so `conn: ${PG_CONN}` picks up the
// environment at load time.
type Env[T any] struct {
	Value T
}

func (e *Env[T]) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		// non-scalar node, decode directly into T
		return node.Decode(&e.Value)
	}

	expanded := os.ExpandEnv(raw)

	switch out := any(&e.Value).(type) {
	case *string:
		*out = expanded
	case *int:
		n, err := strconv.Atoi(expanded)
		if err != nil {
			return fmt.Errorf("yamlenv: parse int %q: %w", expanded, err)
		}
		*out = n
	case *bool:
		b, err := strconv.ParseBool(expanded)
		if err != nil {
			return fmt.Errorf("yamlenv: parse bool %q: %w", expanded, err)
		}
		*out = b
	default:
		return yaml.Unmarshal([]byte(expanded), &e.Value)
	}

	return nil
}
