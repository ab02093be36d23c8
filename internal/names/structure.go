package names

import (
	"strings"
	"unicode"
	"unicode/utf16"
)

// Profile holds the countable features of a name that every other part of
// the report is derived from.
type Profile struct {
	Length         int    `json:"length" yaml:"length"`
	VowelCount     int    `json:"vowel_count" yaml:"vowel_count"`
	ConsonantCount int    `json:"consonant_count" yaml:"consonant_count"`
	StartsWith     string `json:"starts_with" yaml:"starts_with"`
	EndsWith       string `json:"ends_with" yaml:"ends_with"`
	HasAccent      bool   `json:"has_accent" yaml:"has_accent"`
	Ending         string `json:"ending" yaml:"ending"`
	Syllables      int    `json:"syllables" yaml:"syllables"`
}

// Analyze extracts the structural profile of name. The caller trims it and
// guarantees it is not empty.
func Analyze(name string) Profile {
	p := Profile{
		Length:    len(codeUnits(name)),
		HasAccent: strings.ContainsAny(name, "áéíóú"),
		Ending:    CommonEnding(name),
		Syllables: EstimateSyllables(name),
	}
	for _, r := range name {
		switch {
		case isVowel(unicode.ToLower(r)):
			p.VowelCount++
		case isConsonant(unicode.ToLower(r)):
			p.ConsonantCount++
		}
	}
	if first, ok := firstRune(name); ok {
		p.StartsWith = string(unicode.ToLower(first))
	}
	if last, ok := lastRune(name); ok {
		p.EndsWith = string(unicode.ToLower(last))
	}
	return p
}

// CommonEnding classifies name by its trailing characters. Two-character
// suffixes take precedence over single characters.
func CommonEnding(name string) string {
	lower := strings.ToLower(name)
	for _, size := range []int{2, 1} {
		for _, e := range endings {
			if len([]rune(e.suffix)) == size && strings.HasSuffix(lower, e.suffix) {
				return e.category
			}
		}
	}
	return CategoryUnknown
}

// EstimateSyllables counts vowel groups of at most two letters, so a run of
// five vowels counts as three syllables. The result is never below 1.
func EstimateSyllables(name string) int {
	count, run := 0, 0
	for _, r := range strings.ToLower(name) {
		if !isSyllableRune(r) {
			continue
		}
		if isVowel(r) {
			if run%2 == 0 {
				count++
			}
			run++
			continue
		}
		run = 0
	}
	return max(1, count)
}

func isVowel(r rune) bool {
	return strings.ContainsRune("aeiouáéíóú", r)
}

func isConsonant(r rune) bool {
	return strings.ContainsRune("bcdfghjklmnñpqrstvwxyz", r)
}

func isSyllableRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || strings.ContainsRune("áéíóú", r)
}

// codeUnits returns the UTF-16 encoding of s. Index arithmetic over names
// uses these units so selections stay stable for every input.
func codeUnits(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// codeAt returns the code unit at i, wrapping around the name's length.
func codeAt(units []uint16, i int) int {
	return int(units[i%len(units)])
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}

func lastRune(s string) (rune, bool) {
	rs := []rune(s)
	if len(rs) == 0 {
		return 0, false
	}
	return rs[len(rs)-1], true
}

func lowerInitial(name string) rune {
	r, _ := firstRune(name)
	return unicode.ToLower(r)
}
