// Package dictionary loads newline-delimited word lists.
package dictionary
