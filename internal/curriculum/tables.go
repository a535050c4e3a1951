package curriculum

// Level is a group of letters introduced together. Multi-letter graphs
// (sz, gy, dzs, ...) are single tokens.
type Level []string

// vowelLevels is the Meixner vowel order. Level 7 is intentionally empty so
// that ű and ü arrive one step later than é.
var vowelLevels = []Level{
	{"a", "i", "ó"},
	{"e", "ú"},
	{"o", "u"},
	{"í", "á"},
	{"ő", "ö"},
	{"é"},
	{},
	{"ű", "ü"},
}

var consonantLevels = []Level{
	{"m", "t", "s"},
	{"v", "l"},
	{"p", "c"},
	{"k", "f"},
	{"h", "z"},
	{"d", "j"},
	{"n", "sz"},
	{"g", "r"},
	{"b", "gy"},
	{"cs", "ny"},
	{"zs", "ty"},
	{"ly", "dz"},
	{"x", "dzs"},
	{"y", "w"},
	{"q"},
}

// graphs are the multi-letter consonants a single-rune check cannot see.
var graphs = []string{"sz", "gy", "cs", "ny", "zs", "ty", "ly", "dz", "dzs"}

// VowelLevels returns a copy of the vowel table.
func VowelLevels() []Level {
	return copyLevels(vowelLevels)
}

// ConsonantLevels returns a copy of the consonant table.
func ConsonantLevels() []Level {
	return copyLevels(consonantLevels)
}

// Vowels returns every Hungarian vowel in curriculum order.
func Vowels() []string {
	var out []string
	for _, level := range vowelLevels {
		out = append(out, level...)
	}
	return out
}

// Graphs returns the digraphs and trigraphs that must be unlocked
// explicitly.
func Graphs() []string {
	out := make([]string, len(graphs))
	copy(out, graphs)
	return out
}

// MaxLevel is the highest level Resolve accepts.
func MaxLevel() int {
	return max(len(vowelLevels), len(consonantLevels))
}

func copyLevels(levels []Level) []Level {
	out := make([]Level, len(levels))
	for i, level := range levels {
		out[i] = append(Level{}, level...)
	}
	return out
}
