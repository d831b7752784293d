// Package grapheme wraps rivo/uniseg for the grapheme-cluster operations the
// buffer and editor need.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	out := make([]string, 0, len(text))
	state := -1
	for text != "" {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		out = append(out, cluster)
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates clusters.
func Join(clusters []string) string {
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return clusters[0]
	}
	n := 0
	for _, c := range clusters {
		n += len(c)
	}
	var sb strings.Builder
	sb.Grow(n)
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// Width returns the terminal cell width of a single cluster. Tabs are not
// handled here; callers expand them.
func Width(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		return 0
	}
	return w
}

// Class groups clusters for word movement.
type Class uint8

const (
	ClassSpace Class = iota
	ClassPunct
	ClassWord
)

// Classify reports the word-movement class of cluster. A cluster counts as
// space or punctuation only if every rune in it does. Underscore is a word
// character so identifiers move as one word.
func Classify(cluster string) Class {
	if cluster == "" {
		return ClassSpace
	}
	space, punct := true, true
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			space = false
		}
		if r == '_' || (!unicode.IsPunct(r) && !unicode.IsSymbol(r)) {
			punct = false
		}
	}
	switch {
	case space:
		return ClassSpace
	case punct:
		return ClassPunct
	default:
		return ClassWord
	}
}
