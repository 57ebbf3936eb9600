package evaluator

// ImportChain tracks the set of files currently being imported, by
// resolved path, so a cycle can be detected and reported instead of
// recursing forever.
// A single ImportChain is shared by pointer across every Context created
// while compiling one document tree.
type ImportChain struct {
	active map[string]bool
}

// NewImportChain returns an empty chain.
func NewImportChain() *ImportChain {
	return &ImportChain{active: map[string]bool{}}
}

// Enter reports whether path can be entered (true), marking it active; it
// reports false, leaving the chain unchanged, if path is already active
// (a cycle).
func (c *ImportChain) Enter(path string) bool {
	if c.active[path] {
		return false
	}
	c.active[path] = true
	return true
}

// Leave marks path no longer active.
func (c *ImportChain) Leave(path string) {
	delete(c.active, path)
}
