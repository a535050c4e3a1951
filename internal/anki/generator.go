package anki

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gosimple/slug"

	"codeberg.org/snonux/meixner/internal/syllable"
)

// DefaultDeckName is used when no deck name is configured
const DefaultDeckName = "Meixner olvasás"

// Card represents a single reading practice flashcard
type Card struct {
	Word      string // The plain word
	Syllables string // The word with syllable breaks
	Level     int    // Curriculum level the word was drawn at, <= 0 for all
}

// LevelField formats the level for the Level note field
func (c Card) LevelField() string {
	if c.Level <= 0 {
		return "all"
	}
	return strconv.Itoa(c.Level)
}

// GeneratorOptions configures the Anki export
type GeneratorOptions struct {
	OutputPath     string // Output file path
	DeckName       string // Deck the cards are filed under
	IncludeHeaders bool   // Include CSV headers
}

// DefaultGeneratorOptions returns sensible defaults
func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		DeckName:       DefaultDeckName,
		OutputPath:     DefaultOutputPath(DefaultDeckName, false),
		IncludeHeaders: true,
	}
}

// DefaultOutputPath derives the export file name from the deck name, e.g.
// "Meixner olvasás" becomes "meixner-olvasas.apkg".
func DefaultOutputPath(deckName string, csvFormat bool) string {
	ext := ".apkg"
	if csvFormat {
		ext = ".csv"
	}
	name := slug.Make(deckName)
	if name == "" {
		name = "meixner"
	}
	return name + ext
}

// Generator creates Anki-compatible import files
type Generator struct {
	options *GeneratorOptions
	cards   []Card
}

// NewGenerator creates a new Anki generator
func NewGenerator(options *GeneratorOptions) *Generator {
	if options == nil {
		options = DefaultGeneratorOptions()
	}
	if options.DeckName == "" {
		options.DeckName = DefaultDeckName
	}
	return &Generator{
		options: options,
		cards:   make([]Card, 0),
	}
}

// AddCard adds a card to the collection
func (g *Generator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// GenerateCSV creates a CSV file for Anki import
func (g *Generator) GenerateCSV() error {
	file, err := os.Create(g.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if g.options.IncludeHeaders {
		headers := []string{"Word", "Syllables", "Level"}
		if err := writer.Write(headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, card := range g.cards {
		record := []string{card.Word, card.Syllables, card.LevelField()}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return file.Close()
}

// GenerateAPKG creates a proper .apkg file for Anki import
func (g *Generator) GenerateAPKG() error {
	apkgGen := NewAPKGGenerator(g.options.DeckName)
	for _, card := range g.cards {
		apkgGen.AddCard(card)
	}
	return apkgGen.GenerateAPKG(g.options.OutputPath)
}

// Stats returns the number of cards and how many of them have at least one
// syllable break
func (g *Generator) Stats() (totalCards, withBreaks int) {
	totalCards = len(g.cards)
	for _, card := range g.cards {
		if strings.Contains(card.Syllables, syllable.Hyphen) {
			withBreaks++
		}
	}
	return
}
