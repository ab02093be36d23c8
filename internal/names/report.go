package names

import (
	"fmt"
	"strings"
)

// Analysis is the structured form of a detailed report.
type Analysis struct {
	Name        string           `json:"name" yaml:"name"`
	Profile     Profile          `json:"profile" yaml:"profile"`
	Origin      OriginInfo       `json:"origin" yaml:"origin"`
	Meaning     string           `json:"meaning" yaml:"meaning"`
	Numerology  NumerologyResult `json:"numerology" yaml:"numerology"`
	History     string           `json:"history" yaml:"history"`
	Personality string           `json:"personality" yaml:"personality"`
	Variants    []string         `json:"variants" yaml:"variants"`
	FunFacts    []string         `json:"fun_facts" yaml:"fun_facts"`
	Report      string           `json:"report" yaml:"report"`
}

// History describes the era and the cultural influence of a name.
func History(name string, p Profile) string {
	era := "moderno"
	if p.Length > 6 {
		era = "antiguo"
	}
	influence, ok := influences[p.Ending]
	if !ok {
		influence = defaultInfluence
	}
	structure := "son apreciados por su sonoridad y facilidad de pronunciación"
	if p.HasAccent {
		structure = "suelen ser considerados especiales o con significado profundo"
	}
	return fmt.Sprintf("El nombre %s tiene características de un nombre %s con influencia %s. "+
		"En diversas culturas, nombres con esta estructura %s.", name, era, influence, structure)
}

// Analyze runs the whole pipeline for name. Panics raised while composing
// are reported as ErrSynthesis.
func (g *Generator) Analyze(name string) (a Analysis, err error) {
	if name == "" {
		return Analysis{}, ErrInvalidInput
	}
	defer func() {
		if r := recover(); r != nil {
			a = Analysis{}
			err = fmt.Errorf("%w: %v", ErrSynthesis, r)
		}
	}()

	p := Analyze(name)
	meaning := Meaning(name, p)
	a = Analysis{
		Name:        name,
		Profile:     p,
		Origin:      meaning.Origin,
		Meaning:     meaning.Text,
		Numerology:  Numerology(name),
		History:     History(name, p),
		Personality: Personality(name),
		Variants:    Variants(name),
		FunFacts:    g.FunFacts(name),
	}
	a.Report = a.render()
	return a, nil
}

// Report composes the detailed multi-section report for name.
func (g *Generator) Report(name string) (string, error) {
	a, err := g.Analyze(name)
	if err != nil {
		return "", err
	}
	return a.Report, nil
}

// Describe returns the detailed report, substituting the fallback report
// when synthesis fails. The boolean reports whether the fallback was used.
// Errors from the fallback itself are returned as is.
func (g *Generator) Describe(name string) (string, bool, error) {
	report, err := g.Report(name)
	if err == nil {
		return report, false, nil
	}
	fallback, ferr := g.Fallback(name)
	if ferr != nil {
		return "", true, ferr
	}
	return fallback, true, nil
}

func (a Analysis) render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔎 Significado detallado del nombre %s\n\n", a.Name)
	fmt.Fprintf(&b, "🌟 Origen: %s\n\n", a.Origin.Text)
	fmt.Fprintf(&b, "📖 Significado: %s\n\n", a.Meaning)
	fmt.Fprintf(&b, "📜 Contexto histórico/cultural:\n%s\n\n", a.History)
	fmt.Fprintf(&b, "🎭 Personalidad asociada: %s\n\n", a.Personality)
	fmt.Fprintf(&b, "🌍 Variantes internacionales: %s\n\n", FormatVariants(a.Variants))
	fmt.Fprintf(&b, "📊 Datos curiosos: %s\n\n", strings.Join(a.FunFacts, "\n- "))
	b.WriteString("📚 Fuentes consultadas:")
	for _, s := range sources {
		b.WriteString("\n- " + s)
	}
	return b.String()
}
