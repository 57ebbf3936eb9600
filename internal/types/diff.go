package types

import (
	"fmt"
	"sort"
	"strings"
)

// Diff produces a human-readable summary of how two Object types differ —
// missing keys, extra keys, and key-wise type mismatches, each listed in
// sorted key order. Used to enrich TypeError
// messages for assignment and template-result verification.
func Diff(want, got *Object) string {
	var missing, extra, mismatched []string

	for k := range want.Fields {
		if _, ok := got.Fields[k]; !ok {
			missing = append(missing, k)
		}
	}
	for k := range got.Fields {
		if _, ok := want.Fields[k]; !ok {
			extra = append(extra, k)
		}
	}
	for k, wt := range want.Fields {
		if gt, ok := got.Fields[k]; ok && wt.String() != gt.String() {
			mismatched = append(mismatched, fmt.Sprintf("%s: want %s, got %s", k, wt.String(), gt.String()))
		}
	}

	sort.Strings(missing)
	sort.Strings(extra)
	sort.Strings(mismatched)

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "missing keys: "+strings.Join(missing, ", "))
	}
	if len(extra) > 0 {
		parts = append(parts, "extra keys: "+strings.Join(extra, ", "))
	}
	if len(mismatched) > 0 {
		parts = append(parts, "mismatched: "+strings.Join(mismatched, "; "))
	}
	if len(parts) == 0 {
		return "no differences"
	}
	return strings.Join(parts, "; ")
}
