package names

import (
	"slices"
	"strings"
)

const maxVariants = 5

// variantCandidates lists every culturally flavoured respelling of name, in
// a fixed order that Variants indexes into.
func variantCandidates(name string) []string {
	rs := []rune(name)
	base := string(rs[:len(rs)-1])
	last := strings.ToLower(string(rs[len(rs)-1]))

	var out []string
	if last != "a" && last != "o" && last != "e" {
		out = append(out, name+"a (femenino español)", name+"o (masculino español)")
	}
	if last != "e" {
		out = append(out, base+"e (francés)", base+"ie (francés femenino)")
	}
	out = append(out,
		base+"ia (italiano femenino)",
		base+"io (italiano masculino)",
		name+"y (inglés moderno)",
		name+"ie (inglés diminutivo)",
	)
	if last != "a" && last != "v" {
		out = append(out, base+"a (ruso femenino)", base+"ov (ruso masculino)")
	}
	out = append(out,
		name+"ah (árabe/hebreo femenino)",
		name+"el (hebreo/bíblico)",
		name+"e (alemán)",
		name+"er (alemán masculino)",
	)
	if len(codeUnits(name)) <= 4 {
		out = append(out, name+"ko (japonés femenino)", name+"shi (japonés masculino)")
	}
	return out
}

// Variants selects up to five distinct international variants of name. The
// i-th probe indexes the candidate list by the code of the name's character
// at i (wrapping), so colliding codes can leave the list shorter than five.
func Variants(name string) []string {
	candidates := variantCandidates(name)
	units := codeUnits(name)

	picked := make([]string, 0, maxVariants)
	for i := 0; i < len(candidates) && len(picked) < maxVariants; i++ {
		v := candidates[codeAt(units, i)%len(candidates)]
		if !slices.Contains(picked, v) {
			picked = append(picked, v)
		}
	}
	return picked
}

// FormatVariants renders a variant list the way the report prints it.
func FormatVariants(variants []string) string {
	return strings.Join(variants, ", ") + ", entre otras"
}
