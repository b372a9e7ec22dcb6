package domain

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// PreferenceRecord holds the user's naming filters. All fields are optional;
// empty fields render as "Any"/"None" in the prompt. StartWith and Rashi are
// mutually exclusive in the front end, but nothing here depends on that.
type PreferenceRecord struct {
	Gender          string `json:"gender"`
	Origin          string `json:"origin"`
	Religion        string `json:"religion"`
	Numerology      string `json:"numerology"`
	StartWith       string `json:"startWith"`
	Rashi           string `json:"rashi"`
	RashiLetters    string `json:"rashiLetters"`
	Deity           string `json:"deity"`
	MeaningCategory string `json:"meaningCategory"`
}

// NameEntry is one parsed (name, meaning) pair from a completion.
type NameEntry struct {
	Name    string `json:"name"`
	Meaning string `json:"meaning"`
}

// ModelCandidate describes one upstream model option. Candidates are tried
// strictly in list order: the order encodes a cost policy (free models first,
// paid fallback last) and is never re-sorted.
type ModelCandidate struct {
	ID        string `yaml:"id" json:"id"`
	Label     string `yaml:"label" json:"label"`
	MaxTokens int    `yaml:"max_tokens" json:"max_tokens"`
}
