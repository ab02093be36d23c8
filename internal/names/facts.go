package names

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"
)

const maxFacts = 4

var melodicPattern = regexp.MustCompile(`(?i)[aeiou]{3,}`)

// FunFacts picks up to four distinct curiosities about name. A probe that
// lands on an already chosen fact is skipped, not retried.
func (g *Generator) FunFacts(name string) []string {
	units := codeUnits(name)
	facts := g.factTemplates(name, units)

	picked := make([]string, 0, maxFacts)
	for i := 0; i < maxFacts; i++ {
		f := facts[codeAt(units, i)%len(facts)]
		if !slices.Contains(picked, f) {
			picked = append(picked, f)
		}
	}
	return picked
}

func (g *Generator) factTemplates(name string, units []uint16) []string {
	first, _ := firstRune(name)

	popularity := "poco común"
	if g.rng.Float64() > 0.5 {
		popularity = "muy popular"
	}
	size := "un nombre directo y memorable"
	if len(units) > 6 {
		size = "un nombre con presencia"
	}
	combination := "única y distintiva"
	if melodicPattern.MatchString(name) {
		combination = "muy melódica"
	}

	return []string{
		fmt.Sprintf("El nombre %s tiene %d sílabas", name, EstimateSyllables(name)),
		fmt.Sprintf("Comienza con %s, letra asociada a %s", strings.ToUpper(string(first)), LetterMeaning(first)),
		fmt.Sprintf("En algunos países, es %s", popularity),
		fmt.Sprintf("Famosos con este nombre: %s", FamousExample(name)),
		fmt.Sprintf("Tiene %d letras, lo que sugiere %s", len(units), size),
		fmt.Sprintf("La combinación de letras es %s", combination),
		fmt.Sprintf("En el alfabeto fonético: %s", PhoneticSpelling(name)),
	}
}

// LetterMeaning returns what a letter is associated with.
func LetterMeaning(letter rune) string {
	if m, ok := letterMeanings[unicode.ToLower(letter)]; ok {
		return m
	}
	return defaultLetterMeaning
}

// FamousExample names a profession of famous bearers, with the article
// chosen by a lowercase trailing "a".
func FamousExample(name string) string {
	category, ok := professions[lowerInitial(name)]
	if !ok {
		category = defaultProfession
	}
	article := "un famoso "
	if strings.HasSuffix(name, "a") {
		article = "una famosa "
	}
	return name + " " + article + category
}

// PhoneticSpelling spells name with the NATO alphabet, keeping characters
// it has no word for.
func PhoneticSpelling(name string) string {
	words := make([]string, 0, len(name))
	for _, r := range name {
		if w, ok := phoneticAlphabet[unicode.ToLower(r)]; ok {
			words = append(words, w)
			continue
		}
		words = append(words, string(r))
	}
	return strings.Join(words, " ")
}

// Personality returns the personality trait associated with name.
func Personality(name string) string {
	return personalityTraits[seedOf(name)%len(personalityTraits)]
}
