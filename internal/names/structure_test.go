package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name string
		want Profile
	}{
		{"Ana", Profile{Length: 3, VowelCount: 2, ConsonantCount: 1, StartsWith: "a", EndsWith: "a", Ending: "femenino internacional", Syllables: 2}},
		{"José", Profile{Length: 4, VowelCount: 2, ConsonantCount: 2, StartsWith: "j", EndsWith: "é", HasAccent: true, Ending: CategoryUnknown, Syllables: 2}},
		{"Sebastián", Profile{Length: 9, VowelCount: 4, ConsonantCount: 5, StartsWith: "s", EndsWith: "n", HasAccent: true, Ending: CategoryUnknown, Syllables: 3}},
		{"Kristopher", Profile{Length: 10, VowelCount: 3, ConsonantCount: 7, StartsWith: "k", EndsWith: "r", Ending: "germánico o inglés", Syllables: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Analyze(tt.name))
		})
	}
}

func TestAnalyzeCountsEnye(t *testing.T) {
	p := Analyze("Ñuño")
	assert.Equal(t, 2, p.ConsonantCount)
	assert.Equal(t, 2, p.VowelCount)
}

func TestCommonEndingTwoCharsWin(t *testing.T) {
	assert.Equal(t, "femenino clásico", CommonEnding("Maria"))
	assert.Equal(t, "femenino clásico", CommonEnding("LIDIA"))
	assert.Equal(t, "femenino español", CommonEnding("Eva"))
	assert.Equal(t, "masculino griego", CommonEnding("Carlos"))
	assert.Equal(t, "español patronímico", CommonEnding("Martinez"))
	assert.Equal(t, CategoryUnknown, CommonEnding("Xyz"))
}

func TestEstimateSyllables(t *testing.T) {
	assert.Equal(t, 3, EstimateSyllables("aeiou"))
	assert.Equal(t, 1, EstimateSyllables("Li"))
	assert.Equal(t, 1, EstimateSyllables("xyz"))
	assert.Equal(t, 1, EstimateSyllables("123"))
	// stripped characters do not split a vowel run
	assert.Equal(t, 1, EstimateSyllables("a-e"))
	assert.Equal(t, 4, EstimateSyllables("Valentina"))
}
