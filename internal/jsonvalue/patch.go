// Package jsonvalue backs the CLI's `jason query` debug command: gjson
// path-querying and sjson path-patching of a compiled value's raw JSON
// rendering, without round-tripping through a generic interface{} tree.
package jsonvalue

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Query runs a gjson path against raw JSON bytes.
func Query(rawJSON []byte, path string) gjson.Result {
	return gjson.GetBytes(rawJSON, path)
}

// Patch sets path to newValue within rawJSON, returning the patched
// document. Used by `jason query --set` to probe a compiled value without
// recompiling the whole source.
func Patch(rawJSON []byte, path string, newValue interface{}) ([]byte, error) {
	return sjson.SetBytes(rawJSON, path, newValue)
}
