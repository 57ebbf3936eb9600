package loader

import "os"

// FS is the default Loader, backed by the local filesystem.
type FS struct{}

// Read implements Loader.
func (FS) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}
