package names

import (
	"fmt"
	"strings"
)

// MeaningInfo is the origin line plus the multi-paragraph meaning block.
type MeaningInfo struct {
	Origin OriginInfo `json:"origin" yaml:"origin"`
	Text   string     `json:"text" yaml:"text"`
}

// Origin resolves the origin of a name from its ending category.
func Origin(p Profile) OriginInfo {
	if info, ok := origins[p.Ending]; ok {
		return info
	}
	return unknownOrigin
}

// LiteralMeaning derives a root meaning from the initial letter.
func LiteralMeaning(name string, p Profile) string {
	initial, ok := initialMeanings[lowerInitial(name)]
	if !ok {
		initial = defaultInitialMeaning
	}
	clause := "Su estructura simple sugiere un origen moderno o adaptado."
	if p.HasAccent {
		clause = "La tilde indica énfasis en la pronunciación y posible origen antiguo."
	}
	return fmt.Sprintf("🔤 Literalmente, podría derivar de raíces que significan %s. %s", initial, clause)
}

// SymbolicTraits picks two traits from the list chosen by the vowel and
// consonant balance and the length of the name. Both picks may coincide.
func SymbolicTraits(name string, p Profile) []string {
	ratio := float64(p.VowelCount) / float64(max(p.ConsonantCount, 1))

	var traits []string
	switch {
	case ratio > 1.5:
		traits = append(traits, highVowelTraits...)
	case ratio < 0.67:
		traits = append(traits, highConsonantTraits...)
	default:
		traits = append(traits, balancedTraits...)
	}
	if p.Length <= 4 {
		traits = append(traits, shortTraits...)
	} else if p.Length >= 7 {
		traits = append(traits, longTraits...)
	}

	seed := seedOf(name)
	picked := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		picked = append(picked, traits[(seed+i)%len(traits)])
	}
	return picked
}

// SymbolicMeaning renders the symbolic paragraph: traits, numerology and color.
func SymbolicMeaning(name string, p Profile) string {
	return fmt.Sprintf("✨ Simbólicamente, %s representa %s. En numerología, %s. Color asociado: %s.",
		name, strings.Join(SymbolicTraits(name, p), " y "), Numerology(name), Color(name))
}

// Color returns the color associated with name.
func Color(name string) string {
	return colors[seedOf(name)%len(colors)]
}

// Interpretation summarizes the weight of a name from its syllable count.
func Interpretation(p Profile) string {
	if p.Syllables > 3 {
		return "Nombre con gran peso y presencia, sugiere profundidad y carácter"
	}
	return "Nombre dinámico y memorable, fácil de pronunciar"
}

// Meaning composes the origin and the literal, symbolic and interpretation
// paragraphs.
func Meaning(name string, p Profile) MeaningInfo {
	text := LiteralMeaning(name, p) + "\n\n" +
		SymbolicMeaning(name, p) + "\n\n" +
		"💡 Interpretación: " + Interpretation(p)
	return MeaningInfo{Origin: Origin(p), Text: text}
}

// seedOf is the first code unit plus the length of the name.
func seedOf(name string) int {
	units := codeUnits(name)
	return codeAt(units, 0) + len(units)
}
