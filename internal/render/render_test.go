package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexandermeade/jason-rs/internal/value"
)

func sampleObject() *value.Value {
	obj := value.Object()
	obj.Set("name", value.String("alex"))
	obj.Set("age", value.Int(20))
	obj.Set("tags", value.Array(value.String("a"), value.String("b")))
	return obj
}

func TestJSONRendersIndented(t *testing.T) {
	out, err := JSON(sampleObject())
	require.NoError(t, err)
	assert.Contains(t, string(out), `"name": "alex"`)
	assert.Contains(t, string(out), `"age": 20`)
}

func TestYAMLRendersObjectKeys(t *testing.T) {
	out, err := YAML(sampleObject())
	require.NoError(t, err)
	assert.Contains(t, string(out), "name: alex")
	assert.Contains(t, string(out), "age: 20")
}

func TestTOMLRendersObjectKeys(t *testing.T) {
	out, err := TOML(sampleObject())
	require.NoError(t, err)
	assert.Contains(t, string(out), `name = "alex"`)
	assert.Contains(t, string(out), "age = 20")
}

func TestTOMLRejectsNonObjectTopLevel(t *testing.T) {
	_, err := TOML(value.Array(value.Int(1), value.Int(2)))
	assert.Error(t, err)
}

func TestJSONRendersNull(t *testing.T) {
	out, err := JSON(value.Null())
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}
