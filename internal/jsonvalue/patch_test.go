package jsonvalue

import "testing"

func TestQueryExistingPath(t *testing.T) {
	raw := []byte(`{"servers":[{"host":"a"},{"host":"b"}]}`)
	res := Query(raw, "servers.1.host")
	if !res.Exists() {
		t.Fatalf("expected servers.1.host to exist")
	}
	if res.String() != "b" {
		t.Errorf("got %q, want %q", res.String(), "b")
	}
}

func TestQueryMissingPath(t *testing.T) {
	raw := []byte(`{"a":1}`)
	res := Query(raw, "b")
	if res.Exists() {
		t.Errorf("expected 'b' not to exist")
	}
}

func TestPatchSetsScalar(t *testing.T) {
	raw := []byte(`{"a":1}`)
	patched, err := Patch(raw, "a", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Query(patched, "a").Int() != 2 {
		t.Errorf("got %v, want 2", Query(patched, "a"))
	}
}

func TestPatchAddsNewKey(t *testing.T) {
	raw := []byte(`{"a":1}`)
	patched, err := Patch(raw, "b", "new")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Query(patched, "b").String() != "new" {
		t.Errorf("got %v", Query(patched, "b"))
	}
}
