package shared

import (
	"fmt"
	"strings"
	"unicode"
)

// KindName holds the display forms of one resource kind.
type KindName struct {
	Singular string
	Plural   string
}

// Vocabulary maps kind indices to display names. The exploration core
// never looks at names; they exist so the presentation layer can vary
// the domain wording without touching the core.
type Vocabulary struct {
	names [KindCount]KindName
}

// NewVocabulary creates a vocabulary with validation. Every kind needs a
// singular form; a missing plural defaults to singular + "s".
func NewVocabulary(names [KindCount]KindName) (Vocabulary, error) {
	var v Vocabulary
	for i, name := range names {
		if name.Singular == "" {
			return Vocabulary{}, NewValidationError("kinds", fmt.Sprintf("kind %d needs a singular name", i))
		}
		if name.Plural == "" {
			name.Plural = name.Singular + "s"
		}
		v.names[i] = name
	}
	return v, nil
}

// DefaultVocabulary returns the stock egg/worm/cake/fish/meat naming.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{names: [KindCount]KindName{
		{Singular: "egg", Plural: "eggs"},
		{Singular: "worm", Plural: "worms"},
		{Singular: "cake", Plural: "cakes"},
		{Singular: "fish", Plural: "fishes"},
		{Singular: "meat", Plural: "meats"},
	}}
}

// Name returns the display name of a kind for the given count
// (singular iff count == 1). Out-of-range indices yield "".
func (v Vocabulary) Name(index, count int) string {
	if index < 0 || index >= KindCount {
		return ""
	}
	if count == 1 {
		return v.names[index].Singular
	}
	return v.names[index].Plural
}

// Initial returns the lowercase first rune of a kind's singular name,
// used for the compact trade entry syntax ("eee" = three eggs).
func (v Vocabulary) Initial(index int) rune {
	if index < 0 || index >= KindCount {
		return 0
	}
	for _, r := range v.names[index].Singular {
		return unicode.ToLower(r)
	}
	return 0
}

// KindByInitial resolves a kind index from its initial letter. The first
// kind wins when two kinds share an initial.
func (v Vocabulary) KindByInitial(r rune) (int, bool) {
	r = unicode.ToLower(r)
	for i := 0; i < KindCount; i++ {
		if v.Initial(i) == r {
			return i, true
		}
	}
	return 0, false
}

// FormatBasket renders a basket as "<count> <name>" pairs, comma-joined.
// Zero counters are skipped unless includeZeros is set.
func (v Vocabulary) FormatBasket(b Basket, includeZeros bool) string {
	parts := make([]string, 0, KindCount)
	for i := 0; i < KindCount; i++ {
		count := b.Count(i)
		if count == 0 && !includeZeros {
			continue
		}
		parts = append(parts, fmt.Sprintf("%d %s", count, v.Name(i, count)))
	}
	return strings.Join(parts, ", ")
}
