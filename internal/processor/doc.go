// Package processor contains the core practice pipeline. It resolves the
// letter pool for the requested level, opens the hyphenation patterns,
// loads and filters the word list, samples words, splits them into
// syllables and prints them, optionally exporting them to Anki. This
// package serves as the main coordinator between all other components.
package processor
