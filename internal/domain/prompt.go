package domain

import (
	"fmt"
	"strings"
)

// BuildPrompt assembles the generation prompt from prefs and a per-request
// nonce. The nonce discourages the model from repeating prior output for
// identical inputs. The format block at the end is a contract ParseNames
// depends on; changing one requires changing the other.
func BuildPrompt(prefs PreferenceRecord, nonce int) string {
	var b strings.Builder

	b.WriteString("Generate 10 beautiful and meaningful baby names with their meanings based on the following details (unique output each time you generate, even with same inputs):\n")
	fmt.Fprintf(&b, "Random seed: %d\n", nonce)
	fmt.Fprintf(&b, "- Gender: %s\n", orAny(prefs.Gender))
	fmt.Fprintf(&b, "- Origin: %s\n", orAny(prefs.Origin))
	fmt.Fprintf(&b, "- Religion: %s\n", orAny(prefs.Religion))
	fmt.Fprintf(&b, "- Numerology: %s\n", orAny(prefs.Numerology))
	fmt.Fprintf(&b, "- Start With: %s\n", startWithValue(prefs))
	fmt.Fprintf(&b, "- Rashi: %s\n", orDefault(prefs.Rashi, "None selected"))
	fmt.Fprintf(&b, "- Associated Deity: %s\n", orAny(prefs.Deity))
	fmt.Fprintf(&b, "- Meaning Category: %s\n", orAny(prefs.MeaningCategory))

	if prefs.RashiLetters != "" {
		fmt.Fprintf(&b, "\nEvery name MUST start with one of these letters: %s.\n", prefs.RashiLetters)
	}

	b.WriteString(`
Output exactly 10 lines, numbered 1 to 10, each formatted as:
1. Name - Meaning
2. Name - Meaning
(and so on)

Do not include any introduction, explanation, headings, or bold/markdown formatting. Respond with the 10 lines only.`)

	return b.String()
}

func startWithValue(prefs PreferenceRecord) string {
	switch {
	case prefs.StartWith != "":
		return prefs.StartWith
	case prefs.Rashi != "":
		return "Letters from " + prefs.Rashi
	default:
		return "Any"
	}
}

func orAny(v string) string {
	return orDefault(v, "Any")
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
