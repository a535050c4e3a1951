package processor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"codeberg.org/snonux/meixner/internal/anki"
	"codeberg.org/snonux/meixner/internal/cli"
	"codeberg.org/snonux/meixner/internal/curriculum"
	"codeberg.org/snonux/meixner/internal/dictionary"
	"codeberg.org/snonux/meixner/internal/hyphen"
	"codeberg.org/snonux/meixner/internal/syllable"
	"codeberg.org/snonux/meixner/internal/words"
)

// Processor runs one practice session
type Processor struct {
	flags  *cli.Flags
	out    io.Writer
	logger *slog.Logger
	source rand.Source
}

// NewProcessor creates a new practice processor writing words to out
func NewProcessor(flags *cli.Flags, out io.Writer, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Processor{
		flags:  flags,
		out:    out,
		logger: logger,
	}
}

// WithSource makes sampling deterministic. A nil source seeds from the clock.
func (p *Processor) WithSource(src rand.Source) *Processor {
	p.source = src
	return p
}

// Run resolves the letter pool, prints up to flags.Count hyphenated words
// and exports them when requested. Configuration and resource errors are
// returned before the dictionary is read.
func (p *Processor) Run(ctx context.Context) error {
	if p.flags.ListLevels {
		return ListLevels(p.out)
	}

	pool, err := curriculum.Resolve(p.flags.Level)
	if err != nil {
		return err
	}
	p.logger.Debug("resolved letter pool", "pool", pool.String())

	engine, err := p.openPatterns()
	if err != nil {
		return err
	}

	dict, err := dictionary.Load(p.flags.Dictionary)
	if err != nil {
		return err
	}

	candidates := words.Filter(dict, pool)
	p.logger.Debug("filtered dictionary",
		"path", p.flags.Dictionary, "words", len(dict), "candidates", len(candidates))

	picked := words.NewSampler(p.source).Sample(candidates, p.flags.Count)
	if len(picked) < p.flags.Count {
		p.logger.Debug("fewer words than requested", "requested", p.flags.Count, "found", len(picked))
	}

	corrector := syllable.NewCorrector(engine)
	hyphenated := make([]string, 0, len(picked))
	for _, word := range picked {
		if err := ctx.Err(); err != nil {
			return err
		}
		hyphenated = append(hyphenated, corrector.Hyphenate(word))
	}

	if err := Present(p.out, hyphenated); err != nil {
		return err
	}

	if p.flags.Exporting() {
		if _, err := p.export(picked, hyphenated); err != nil {
			return err
		}
	}
	return nil
}

func (p *Processor) openPatterns() (*hyphen.Dictionary, error) {
	dirs := hyphen.DefaultDirs
	if p.flags.HyphenDir != "" {
		dirs = append([]string{p.flags.HyphenDir}, dirs...)
	}

	registry := hyphen.NewRegistry(dirs...)
	path, err := registry.Lookup(p.flags.Lang)
	if err != nil {
		p.logger.Debug("hyphenation languages available", "languages", registry.Languages())
		return nil, err
	}
	p.logger.Debug("loading hyphenation patterns", "lang", p.flags.Lang, "path", path)

	return registry.Open(p.flags.Lang)
}

// export writes the practised words to an Anki package or CSV file and
// returns its path
func (p *Processor) export(plain, hyphenated []string) (string, error) {
	outputPath := p.flags.ExportPath()
	gen := anki.NewGenerator(&anki.GeneratorOptions{
		OutputPath:     outputPath,
		DeckName:       p.flags.DeckName,
		IncludeHeaders: true,
	})
	for i, word := range plain {
		gen.AddCard(anki.Card{
			Word:      word,
			Syllables: hyphenated[i],
			Level:     p.flags.Level,
		})
	}

	if p.flags.AnkiCSV {
		if err := gen.GenerateCSV(); err != nil {
			return "", fmt.Errorf("failed to generate CSV: %w", err)
		}
	} else {
		if err := gen.GenerateAPKG(); err != nil {
			return "", fmt.Errorf("failed to generate APKG: %w", err)
		}
	}

	total, withBreaks := gen.Stats()
	p.logger.Info("anki export written", "path", outputPath, "cards", total, "with_breaks", withBreaks)
	return outputPath, nil
}
