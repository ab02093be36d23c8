package names

import (
	"fmt"
	"strings"
)

// NumerologyResult is the reduced number of a name and what it stands for.
type NumerologyResult struct {
	Digit   int    `json:"digit" yaml:"digit"`
	Meaning string `json:"meaning" yaml:"meaning"`
}

func (n NumerologyResult) String() string {
	return fmt.Sprintf("%d (%s)", n.Digit, n.Meaning)
}

// Numerology sums the letter values of name and reduces the sum digit by
// digit until it is a single digit or one of the master numbers 11 and 22.
func Numerology(name string) NumerologyResult {
	sum := 0
	for _, r := range strings.ToLower(name) {
		sum += letterValues[r]
	}
	for sum > 9 && sum != 11 && sum != 22 {
		sum = sum/10 + sum%10
	}
	meaning, ok := numerologyMeanings[sum]
	if !ok {
		meaning = defaultNumerologyMeaning
	}
	return NumerologyResult{Digit: sum, Meaning: meaning}
}
