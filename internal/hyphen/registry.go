package hyphen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// ErrLanguageUnavailable is returned when no pattern file exists for a
// language.
var ErrLanguageUnavailable = errors.New("hyphenation language unavailable")

// DefaultDirs are searched for hyph_*.dic files, in order. Distribution
// packages (hyphen-hu and friends) install into /usr/share/hyphen.
var DefaultDirs = []string{
	"dictionaries",
	"/usr/share/hyphen",
	"/usr/share/myspell/dicts",
}

// Registry maps language tags to pattern files found on disk, backed by
// the patterns bundled into the binary.
type Registry struct {
	files map[string]source
}

// source is a pattern file inside fsys; path is what gets reported.
type source struct {
	fsys fs.FS
	name string
	path string
}

// NewRegistry scans dirs for hyph_<lang>.dic files. Missing directories are
// ignored; a language found in an earlier directory wins. The bundled
// patterns are registered last, so any installed file overrides them.
func NewRegistry(dirs ...string) *Registry {
	r := &Registry{files: make(map[string]source)}
	var found []source
	for _, dir := range dirs {
		matches, err := filepath.Glob(filepath.Join(dir, "hyph_*.dic"))
		if err != nil {
			continue
		}
		sort.Strings(matches)
		for _, file := range matches {
			found = append(found, source{fsys: os.DirFS(dir), name: filepath.Base(file), path: file})
		}
	}

	matches, err := fs.Glob(bundled, bundledDir+"/hyph_*.dic")
	if err != nil {
		panic(fmt.Errorf("hyphen: invalid bundled patterns: %w", err))
	}
	for _, name := range matches {
		found = append(found, source{fsys: bundled, name: name, path: bundledPrefix + path.Base(name)})
	}

	for _, src := range found {
		tag, err := parseTag(langOf(src.name))
		if err != nil {
			continue
		}
		if _, ok := r.files[tag.String()]; !ok {
			r.files[tag.String()] = src
		}
	}
	// Short aliases ("hu" for "hu-HU") point at the first regional file.
	for _, src := range found {
		tag, err := parseTag(langOf(src.name))
		if err != nil {
			continue
		}
		base, _ := tag.Base()
		if _, ok := r.files[base.String()]; !ok {
			r.files[base.String()] = src
		}
	}
	return r
}

func langOf(name string) string {
	return strings.TrimSuffix(strings.TrimPrefix(path.Base(name), "hyph_"), ".dic")
}

func parseTag(name string) (language.Tag, error) {
	return language.Parse(strings.ReplaceAll(name, "_", "-"))
}

// Languages lists the registered tags, sorted.
func (r *Registry) Languages() []string {
	out := make([]string, 0, len(r.files))
	for k := range r.files {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (r *Registry) find(lang string) (source, error) {
	tag, err := parseTag(lang)
	if err != nil {
		return source{}, fmt.Errorf("%w: %s is not supported / not installed", ErrLanguageUnavailable, lang)
	}
	if src, ok := r.files[tag.String()]; ok {
		return src, nil
	}
	base, _ := tag.Base()
	if src, ok := r.files[base.String()]; ok {
		return src, nil
	}
	return source{}, fmt.Errorf("%w: %s is not supported / not installed", ErrLanguageUnavailable, lang)
}

// Lookup returns the pattern file for lang ("hu_HU", "hu-HU" or "hu"),
// falling back to the base language. Bundled files are reported with a
// "bundled:" prefix.
func (r *Registry) Lookup(lang string) (string, error) {
	src, err := r.find(lang)
	if err != nil {
		return "", err
	}
	return src.path, nil
}

// Open looks up and parses the patterns for lang.
func (r *Registry) Open(lang string) (*Dictionary, error) {
	src, err := r.find(lang)
	if err != nil {
		return nil, err
	}
	f, err := src.fsys.Open(src.name)
	if err != nil {
		return nil, fmt.Errorf("open hyphenation patterns: %w", err)
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", src.path, err)
	}
	return d, nil
}
