package names

// Lookup tables shared by every report. They are never mutated after init.

// CategoryUnknown is the ending category of names that match no known suffix.
const CategoryUnknown = "desconocido"

type ending struct {
	suffix   string
	category string
}

// endings keeps declaration order: the first 2-char match wins, then the
// first 1-char match.
var endings = []ending{
	{"a", "femenino español"},
	{"o", "masculino español"},
	{"e", "unisex internacional"},
	{"ia", "femenino clásico"},
	{"io", "masculino italiano"},
	{"is", "griego o latín"},
	{"us", "latino clásico"},
	{"on", "francés o griego"},
	{"ah", "árabe o hebreo"},
	{"el", "bíblico o hebreo"},
	{"in", "eslavo o germánico"},
	{"na", "femenino internacional"},
	{"ra", "femenino latino"},
	{"la", "femenino romántico"},
	{"ta", "femenino moderno"},
	{"as", "masculino griego"},
	{"os", "masculino griego"},
	{"er", "germánico o inglés"},
	{"en", "nórdico o germánico"},
	{"ez", "español patronímico"},
}

// OriginInfo describes where a name family comes from.
type OriginInfo struct {
	Text    string `json:"text" yaml:"text"`
	Culture string `json:"culture" yaml:"culture"`
}

var unknownOrigin = OriginInfo{Text: "desconocido (posiblemente único o moderno)", Culture: "variada"}

var origins = map[string]OriginInfo{
	"femenino español":       {"español/latino (femenino)", "hispana"},
	"masculino español":      {"español/latino (masculino)", "hispana"},
	"unisex internacional":   {"internacional (unisex)", "global"},
	"femenino clásico":       {"latín/griego (femenino)", "clásica"},
	"masculino italiano":     {"italiano/romance", "mediterránea"},
	"griego o latín":         {"griego/latín clásico", "antigua"},
	"latino clásico":         {"latín antiguo", "romana"},
	"árabe o hebreo":         {"árabe/hebreo", "mediterránea"},
	"bíblico o hebreo":       {"hebreo/bíblico", "semítica"},
	"eslavo o germánico":     {"eslavo/germánico", "europea"},
	"femenino internacional": {"internacional (femenino)", "global"},
	"femenino latino":        {"latino (femenino)", "latina"},
	"femenino romántico":     {"romance (femenino)", "europea"},
	"femenino moderno":       {"moderno (femenino)", "contemporánea"},
	"masculino griego":       {"griego (masculino)", "helénica"},
	"germánico o inglés":     {"germánico/inglés", "anglosajona"},
	"nórdico o germánico":    {"nórdico/germánico", "escandinava"},
	"español patronímico":    {"español patronímico", "hispana"},
}

const defaultInfluence = "variada y multicultural"

var influences = map[string]string{
	"femenino español":       "hispana y mediterránea",
	"masculino español":      "hispana y caballeresca",
	"unisex internacional":   "global y contemporánea",
	"femenino clásico":       "griega y romana antigua",
	"masculino italiano":     "renacentista italiana",
	"griego o latín":         "clásica y filosófica",
	"latino clásico":         "imperio romano",
	"árabe o hebreo":         "mediterránea y semítica",
	"bíblico o hebreo":       "religiosa y espiritual",
	"eslavo o germánico":     "nórdica y de Europa del Este",
	"femenino internacional": "cosmopolita moderna",
	"femenino latino":        "latinoamericana vibrante",
	"femenino romántico":     "romántica europea",
	"femenino moderno":       "contemporánea global",
	"masculino griego":       "helénica filosófica",
	"germánico o inglés":     "anglosajona y vikinga",
	"nórdico o germánico":    "escandinava y vikinga",
	"español patronímico":    "hispana medieval",
}

const defaultInitialMeaning = "un significado positivo y auspicioso"

var initialMeanings = map[rune]string{
	'a': `Armonía, amor o alegría (del griego "agape")`,
	'b': `Belleza o fortaleza (del latín "bellus" o "bonus")`,
	'c': `Corazón o claridad (del latín "cor" o "clarus")`,
	'd': `Don, divinidad o destino (del latín "donum" o "deus")`,
	'e': `Eternidad, energía o elegancia (del griego "energeia")`,
	'f': `Felicidad, fe o libertad (del latín "fides" o "felix")`,
	'g': `Grandeza, generosidad o gracia (del latín "gratia")`,
	'h': `Honor, honestidad o humildad (del latín "honos")`,
	'i': `Inspiración, inteligencia o imaginación (del latín "ingenium")`,
	'j': `Júbilo, justicia o jovialidad (del latín "jovialis")`,
	'k': `Karma, conocimiento o realeza (del sánscrito "karma")`,
	'l': `Luz, amor o lealtad (del latín "lux" o "lumen")`,
	'm': `Misterio, magia o majestuosidad (del latín "magnus")`,
	'n': `Naturaleza, nobleza o novedad (del latín "natura")`,
	'o': `Optimismo, originalidad o oportunidad (del griego "ophelimos")`,
	'p': `Paz, pureza o poder (del latín "pax" o "potis")`,
	'q': `Quietud, calidad o singularidad (del latín "qualis")`,
	'r': `Respeto, romanticismo o rebeldía (del latín "respetto")`,
	's': `Sabiduría, serenidad o fuerza (del latín "sapientia")`,
	't': `Templanza, tenacidad o tradición (del latín "temperantia")`,
	'u': `Unidad, unicidad o universalidad (del latín "unus")`,
	'v': `Vida, virtud o valentía (del latín "vita" o "virtus")`,
	'w': `Voluntad, sabiduría o rareza (del germánico "wil")`,
	'x': `Misterio, excelencia o singularidad (del griego "xenos")`,
	'y': `Espiritualidad, unión o dualidad (del griego "psyche")`,
	'z': `Energía, vitalidad o finalización (del griego "zeta")`,
}

var (
	highVowelTraits     = []string{"armonía", "fluidez", "creatividad", "sensibilidad"}
	highConsonantTraits = []string{"fuerza", "determinación", "liderazgo", "protección"}
	balancedTraits      = []string{"equilibrio", "adaptabilidad", "inteligencia", "carisma"}
	shortTraits         = []string{"dinamismo", "energía", "frescura", "originalidad"}
	longTraits          = []string{"profundidad", "sabiduría", "tradición", "elegancia"}
)

var letterValues = map[rune]int{
	'a': 1, 'b': 2, 'c': 3, 'd': 4, 'e': 5, 'f': 6, 'g': 7, 'h': 8, 'i': 9,
	'j': 1, 'k': 2, 'l': 3, 'm': 4, 'n': 5, 'o': 6, 'p': 7, 'q': 8, 'r': 9,
	's': 1, 't': 2, 'u': 3, 'v': 4, 'w': 5, 'x': 6, 'y': 7, 'z': 8,
}

const defaultNumerologyMeaning = "energía única"

var numerologyMeanings = map[int]string{
	1:  "liderazgo e independencia",
	2:  "armonía y cooperación",
	3:  "creatividad y expresión",
	4:  "estabilidad y practicidad",
	5:  "aventura y libertad",
	6:  "responsabilidad y cuidado",
	7:  "espiritualidad y análisis",
	8:  "poder y abundancia",
	9:  "humanitarismo y compasión",
	11: "inspiración e intuición",
	22: "maestro constructor",
}

var colors = []string{
	"rojo (pasión y energía)",
	"azul (calma y confianza)",
	"verde (crecimiento y armonía)",
	"amarillo (alegría y creatividad)",
	"morado (espiritualidad y misterio)",
	"naranja (entusiasmo y vitalidad)",
	"rosa (amor y ternura)",
	"turquesa (comunicación y claridad)",
	"dorado (riqueza y éxito)",
	"plateado (innovación y modernidad)",
}

var personalityTraits = []string{
	"Creatividad e inteligencia",
	"Fuerza y determinación",
	"Sensibilidad y empatía",
	"Liderazgo y carisma",
	"Sabiduría y paciencia",
	"Energía y entusiasmo",
	"Elegancia y refinamiento",
	"Originalidad y singularidad",
	"Ambición y perseverancia",
	"Armonía y equilibrio",
}

const defaultLetterMeaning = "potencial ilimitado"

var letterMeanings = map[rune]string{
	'a': "inicio y liderazgo",
	'b': "fortaleza y protección",
	'c': "creatividad y comunicación",
	'd': "determinación y disciplina",
	'e': "energía y expresión",
	'f': "libertad y flexibilidad",
	'g': "generosidad y crecimiento",
	'h': "armonía y humildad",
	'i': "imaginación e inspiración",
	'j': "alegría y justicia",
	'k': "karma y conocimiento",
	'l': "amor y lealtad",
	'm': "misterio y magia",
	'n': "nobleza y novedad",
	'o': "optimismo y oportunidad",
	'p': "paz y poder",
	'q': "calidad y singularidad",
	'r': "resistencia y romanticismo",
	's': "sabiduría y serenidad",
	't': "tenacidad y tradición",
	'u': "unidad y unicidad",
	'v': "vitalidad y virtud",
	'w': "voluntad y sabiduría",
	'x': "misterio y excelencia",
	'y': "espiritualidad y dualidad",
	'z': "energía y finalización",
}

const defaultProfession = "personalidades destacadas"

var professions = map[rune]string{
	'a': "artistas",
	'b': "deportistas",
	'c': "cantantes",
	'd': "directores de cine",
	'e': "escritores",
	'f': "fotógrafos",
	'g': "científicos",
	'h': "historiadores",
	'i': "inventores",
	'j': "jueces",
	'k': "reyes o líderes",
	'l': "líderes políticos",
	'm': "músicos",
	'n': "empresarios",
	'o': "actores",
	'p': "pintores",
	'q': "exploradores",
	'r': "reporteros",
	's': "activistas sociales",
	't': "profesores",
	'u': "astronautas",
	'v': "violinistas",
	'w': "escritores",
	'x': "arquitectos",
	'y': "yoguis",
	'z': "zoólogos",
}

var phoneticAlphabet = map[rune]string{
	'a': "Alpha", 'b': "Bravo", 'c': "Charlie", 'd': "Delta",
	'e': "Echo", 'f': "Foxtrot", 'g': "Golf", 'h': "Hotel",
	'i': "India", 'j': "Juliet", 'k': "Kilo", 'l': "Lima",
	'm': "Mike", 'n': "November", 'o': "Oscar", 'p': "Papa",
	'q': "Quebec", 'r': "Romeo", 's': "Sierra", 't': "Tango",
	'u': "Uniform", 'v': "Victor", 'w': "Whiskey", 'x': "X-ray",
	'y': "Yankee", 'z': "Zulu",
}

var probableOrigins = []string{
	"hispano",
	"latino",
	"griego",
	"hebreo",
	"árabe",
	"germánico",
	"eslavo",
	"anglosajón",
	"francés",
	"italiano",
}

var genericMeanings = []string{
	"cualidades positivas como fuerza y sabiduría",
	"virtudes humanas como honor y lealtad",
	"elementos de la naturaleza como luz o agua",
	"conceptos abstractos como libertad o esperanza",
	"características personales como inteligencia o belleza",
}

var sources = []string{
	"Análisis lingüístico automatizado",
	"Patrones etimológicos universales",
	"Base de datos de raíces onomásticas",
	"Estudios antroponímicos",
}
