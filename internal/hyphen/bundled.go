package hyphen

import "embed"

// bundled holds the pattern files compiled into the binary. They are used
// only when no installed file covers the language.
//
//go:embed dictionaries/*.dic
var bundled embed.FS

const (
	bundledDir    = "dictionaries"
	bundledPrefix = "bundled:"
)
