// Package words selects practice words: it keeps dictionary entries spelled
// only with unlocked letters and draws a random sample from them.
package words
