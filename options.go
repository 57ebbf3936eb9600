package jason

import (
	"github.com/rs/zerolog"

	"github.com/alexandermeade/jason-rs/internal/loader"
)

// Option configures a Builder before it compiles anything.
type Option func(*Builder)

// WithLoader overrides how import/include file bytes are fetched. The
// default is the local filesystem (internal/loader.FS).
func WithLoader(l loader.Loader) Option {
	return func(b *Builder) { b.loader = l }
}

// WithScriptingSource preloads source into the shared Lua base environment
// every compiled file's scripting calls see, before any per-file scripting
// source runs.
func WithScriptingSource(source string) Option {
	return func(b *Builder) { b.scriptingSource = source }
}

// WithImportRoots adds additional base directories import/include search
// when a path does not resolve relative to the importing file.
func WithImportRoots(roots ...string) Option {
	return func(b *Builder) { b.importRoots = append(b.importRoots, roots...) }
}

// WithMaxImportDepth caps the import chain's depth, guarding against a
// cycle that somehow evades detection. Defaults to 64.
func WithMaxImportDepth(depth int) Option {
	return func(b *Builder) { b.maxImportDepth = depth }
}

// WithLogger attaches a zerolog.Logger that info/infoT statements write
// to. Defaults to a discard logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(b *Builder) { b.logger = &logger }
}
