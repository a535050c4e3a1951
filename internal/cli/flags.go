package cli

import (
	"codeberg.org/snonux/meixner/internal/anki"
	"codeberg.org/snonux/meixner/internal/dictionary"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	Verbose    bool
	LogFormat  string
	ListLevels bool

	// Practice flags
	Level      int
	Count      int
	Dictionary string

	// Hyphenation flags
	Lang      string
	HyphenDir string

	// Anki flags
	GenerateAnki bool
	AnkiCSV      bool
	DeckName     string
	OutputPath   string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		LogFormat:  "text",
		Count:      5,
		Dictionary: dictionary.DefaultPath,
		Lang:       "hu_HU",
		DeckName:   anki.DefaultDeckName,
	}
}

// Exporting reports whether any flashcard export was requested
func (f *Flags) Exporting() bool {
	return f.GenerateAnki || f.AnkiCSV
}

// ExportPath returns the configured export path, or one derived from the
// deck name
func (f *Flags) ExportPath() string {
	if f.OutputPath != "" {
		return f.OutputPath
	}
	return anki.DefaultOutputPath(f.DeckName, f.AnkiCSV)
}
