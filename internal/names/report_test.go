package names

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const anaReport = `🔎 Significado detallado del nombre Ana

🌟 Origen: internacional (femenino)

📖 Significado: 🔤 Literalmente, podría derivar de raíces que significan Armonía, amor o alegría (del griego "agape"). Su estructura simple sugiere un origen moderno o adaptado.

✨ Simbólicamente, Ana representa dinamismo y energía. En numerología, 7 (espiritualidad y análisis). Color asociado: dorado (riqueza y éxito).

💡 Interpretación: Nombre dinámico y memorable, fácil de pronunciar

📜 Contexto histórico/cultural:
El nombre Ana tiene características de un nombre moderno con influencia cosmopolita moderna. En diversas culturas, nombres con esta estructura son apreciados por su sonoridad y facilidad de pronunciación.

🎭 Personalidad asociada: Ambición y perseverancia

🌍 Variantes internacionales: Anaie (inglés diminutivo), Ania (italiano femenino), Anie (francés femenino), entre otras

📊 Datos curiosos: En algunos países, es muy popular
- La combinación de letras es única y distintiva
- En el alfabeto fonético: Alpha November Alpha

📚 Fuentes consultadas:
- Análisis lingüístico automatizado
- Patrones etimológicos universales
- Base de datos de raíces onomásticas
- Estudios antroponímicos`

const anaFallback = `🔎 Significado del nombre Ana

No encontramos información precisa, pero podemos decir que:

- Es un nombre de posible origen francés
- Podría significar conceptos abstractos como libertad o esperanza
- Personalidad asociada: Ambición y perseverancia

📚 Sugerimos investigar en diccionarios etimológicos especializados`

type panicRandom struct{}

func (panicRandom) Float64() float64 { panic("entropy exhausted") }

func TestReportAna(t *testing.T) {
	g := NewGenerator(WithRandom(FixedRandom(0.9)))
	got, err := g.Report("Ana")
	require.NoError(t, err)
	assert.Equal(t, anaReport, got)
}

func TestReportSections(t *testing.T) {
	got, err := Report("Ana")
	require.NoError(t, err)
	assert.Contains(t, got, "Significado detallado del nombre Ana")
	assert.Contains(t, got, "Origen:")
	assert.Contains(t, got, "Significado:")
	assert.True(t, strings.HasSuffix(got, "Estudios antroponímicos"))
}

func TestReportKristopher(t *testing.T) {
	g := NewGenerator(WithRandom(FixedRandom(0.1)))
	got, err := g.Report("Kristopher")
	require.NoError(t, err)
	assert.Contains(t, got, "🌟 Origen: germánico/inglés\n\n")
	assert.Contains(t, got, "El nombre Kristopher tiene características de un nombre antiguo con influencia anglosajona y vikinga.")
	assert.Contains(t, got, "📊 Datos curiosos: La combinación de letras es única y distintiva\n- En algunos países, es poco común\n- El nombre Kristopher tiene 3 sílabas\n- Famosos con este nombre: Kristopher un famoso reyes o líderes\n\n")
}

func TestReportAccentedHistory(t *testing.T) {
	got, err := Report("Sebastián")
	require.NoError(t, err)
	assert.Contains(t, got, "nombre antiguo con influencia variada y multicultural. En diversas culturas, nombres con esta estructura suelen ser considerados especiales o con significado profundo.")
}

func TestReportDeterministicExceptPopularity(t *testing.T) {
	stripPopularity := func(s string) string {
		var keep []string
		for _, line := range strings.Split(s, "\n") {
			if strings.Contains(line, "En algunos países, es") {
				continue
			}
			keep = append(keep, line)
		}
		return strings.Join(keep, "\n")
	}
	for _, name := range []string{"Ana", "Maria", "José", "Valentina", "Li", "X"} {
		first, err := Report(name)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := Report(name)
			require.NoError(t, err)
			assert.Equal(t, stripPopularity(first), stripPopularity(again), name)
		}
	}
}

func TestReportEmptyName(t *testing.T) {
	_, err := Report("")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestReportRecoversPanics(t *testing.T) {
	g := NewGenerator(WithRandom(panicRandom{}))
	_, err := g.Report("Ana")
	assert.ErrorIs(t, err, ErrSynthesis)
}

func TestFallback(t *testing.T) {
	got, err := Fallback("Ana")
	require.NoError(t, err)
	assert.Equal(t, anaFallback, got)
}

func TestFallbackSingleCharacterWraps(t *testing.T) {
	got, err := Fallback("A")
	require.NoError(t, err)
	assert.Contains(t, got, "- Es un nombre de posible origen eslavo\n")
	assert.Contains(t, got, "- Podría significar virtudes humanas como honor y lealtad\n")
	assert.Contains(t, got, "- Personalidad asociada: Elegancia y refinamiento\n")
}

func TestFallbackEmptyName(t *testing.T) {
	_, err := Fallback("")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDescribe(t *testing.T) {
	report, usedFallback, err := NewGenerator(WithRandom(FixedRandom(0.9))).Describe("Ana")
	require.NoError(t, err)
	assert.False(t, usedFallback)
	assert.Equal(t, anaReport, report)

	report, usedFallback, err = NewGenerator(WithRandom(panicRandom{})).Describe("Ana")
	require.NoError(t, err)
	assert.True(t, usedFallback)
	assert.Equal(t, anaFallback, report)

	_, _, err = Describe("")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAnalyzeStructured(t *testing.T) {
	a, err := NewGenerator(WithRandom(FixedRandom(0.9))).Analyze("Ana")
	require.NoError(t, err)
	assert.Equal(t, "Ana", a.Name)
	assert.Equal(t, 7, a.Numerology.Digit)
	assert.Equal(t, "Ambición y perseverancia", a.Personality)
	assert.Len(t, a.Variants, 3)
	assert.Len(t, a.FunFacts, 3)
	assert.Equal(t, anaReport, a.Report)
}
