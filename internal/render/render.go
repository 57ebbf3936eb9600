// Package render converts a compiled value.Value into the serialised
// output formats jason's CLI supports: JSON, YAML, and TOML. Output
// serialisation is kept out of the language core itself, but the CLI
// surface needs somewhere to render a compiled value, and this is it.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"

	"github.com/alexandermeade/jason-rs/internal/value"
)

// JSON renders v as pretty-printed JSON.
func JSON(v *value.Value) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// YAML renders v as YAML. goccy/go-yaml marshals native Go values rather
// than value.Value directly, so this round-trips through v's own ordered
// JSON rendering first.
func YAML(v *value.Value) ([]byte, error) {
	raw, err := JSON(v)
	if err != nil {
		return nil, err
	}
	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	return yaml.Marshal(generic)
}

// TOML renders v as TOML. v must be an Object at the top level; TOML has
// no bare-scalar or bare-array document form.
func TOML(v *value.Value) ([]byte, error) {
	raw, err := JSON(v)
	if err != nil {
		return nil, err
	}
	var generic map[string]interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("render: TOML output requires an object value: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(generic); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
