// Package normalize contains the pure coercion helpers used when a draft is
// turned into a submission payload: numeric parsing, accent-insensitive text
// comparison, difficulty-bucket mapping and the derived gas consumption.
// None of these functions ever return an error; unusable input maps to the
// zero answer (nil pointer, empty string, empty slice).
package normalize

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/reeflog/reeflog/internal/client/models"
)

// stripAccents decomposes to NFD, drops combining marks and recomposes,
// so "média" and "media" compare equal.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Number parses a numeric-looking string into a float. Empty or non-numeric
// input yields nil, never an error.
func Number(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &n
}

// Strings turns heterogeneous tag input into an ordered slice: a slice is
// returned as-is, a TagSet in insertion order, a single string as a
// one-element slice, nil as an empty slice.
func Strings(v any) []string {
	switch t := v.(type) {
	case nil:
		return []string{}
	case []string:
		if t == nil {
			return []string{}
		}
		return t
	case *models.TagSet:
		if t == nil {
			return []string{}
		}
		return t.Items()
	case models.TagSet:
		return t.Items()
	case string:
		if t == "" {
			return []string{}
		}
		return []string{t}
	default:
		return []string{}
	}
}

// Text lower-cases, trims and strips diacritics for case- and
// accent-insensitive comparison.
func Text(s string) string {
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// difficulty labels as they appear in the source vocabularies, already
// normalized through Text.
var difficultyBuckets = map[string]models.Difficulty{
	"small":   models.DifficultyLow,
	"pequena": models.DifficultyLow,
	"medium":  models.DifficultyModerate,
	"media":   models.DifficultyModerate,
	"large":   models.DifficultyHigh,
	"grande":  models.DifficultyHigh,
}

// DifficultyBucket maps a free-text difficulty label onto the fixed
// three-bucket scale. Unrecognized labels map to the empty Difficulty,
// not an error.
func DifficultyBucket(label string) models.Difficulty {
	return difficultyBuckets[Text(label)]
}

// UsedGas derives gas consumption from the cylinder pressure readings.
// It returns initial-final only when both readings are present, neither is
// negative and initial >= final; every other combination yields nil.
func UsedGas(initial, final *float64) *float64 {
	if initial == nil || final == nil {
		return nil
	}
	if *initial < 0 || *final < 0 || *initial < *final {
		return nil
	}
	used := *initial - *final
	return &used
}
