package names

import "fmt"

// Fallback composes the short report shown when the detailed one fails.
// Single-character names wrap to their only character for the second code.
func (g *Generator) Fallback(name string) (string, error) {
	if name == "" {
		return "", ErrInvalidInput
	}
	return fmt.Sprintf("🔎 Significado del nombre %s\n\n"+
		"No encontramos información precisa, pero podemos decir que:\n\n"+
		"- Es un nombre de posible origen %s\n"+
		"- Podría significar %s\n"+
		"- Personalidad asociada: %s\n\n"+
		"📚 Sugerimos investigar en diccionarios etimológicos especializados",
		name, ProbableOrigin(name), GenericMeaning(name), Personality(name)), nil
}

// ProbableOrigin guesses an origin family for name.
func ProbableOrigin(name string) string {
	return probableOrigins[seedOf(name)%len(probableOrigins)]
}

// GenericMeaning guesses a broad meaning from the second character of name.
func GenericMeaning(name string) string {
	units := codeUnits(name)
	return genericMeanings[(codeAt(units, 1)+len(units))%len(genericMeanings)]
}
