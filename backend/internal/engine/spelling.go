package engine

import "strings"

// Spelling is an opt-in, non-core helper hosts may call to flag
// syllables that cannot be valid Vietnamese, e.g. to decide whether to
// offer a correction suggestion alongside the IME's output. The core
// OnKey path never consults it: the engine is purely rule-based and
// transforms every trigger key the rule tables recognize, valid
// syllable or not.

// validInitials are valid Vietnamese initial consonants (phụ âm đầu).
var validInitials = map[string]bool{
	"b": true, "c": true, "d": true, "đ": true, "g": true, "h": true,
	"k": true, "l": true, "m": true, "n": true, "p": true, "q": true,
	"r": true, "s": true, "t": true, "v": true, "x": true,

	"ch": true, "gh": true, "gi": true, "kh": true, "ng": true,
	"nh": true, "ph": true, "qu": true, "th": true, "tr": true,

	"ngh": true,
}

// validFinals are valid Vietnamese final consonants (phụ âm cuối).
var validFinals = map[string]bool{
	"c": true, "m": true, "n": true, "p": true, "t": true,
	"ch": true, "ng": true, "nh": true,
	"i": true, "y": true, "o": true, "u": true,
}

// spellingRules maps an invalid onset+nucleus-head combination to the
// spelling Vietnamese orthography actually uses instead.
var spellingRules = map[string]string{
	"ce": "ke", "ci": "ki", "cy": "ky",
	"ka": "ca", "ko": "co", "ku": "cu",
	"ge": "ghe",
	"nge": "nghe", "ngi": "nghi",
	"gha": "ga", "gho": "go", "ghu": "gu",
	"ngha": "nga", "ngho": "ngo", "nghu": "ngu",
}

// ValidationResult is the outcome of ValidateCells.
type ValidationResult struct {
	Valid        bool
	Reason       string
	HasVowel     bool
	InitialValid bool
	FinalValid   bool
	SpellingOK   bool
}

// ValidateCells checks whether the cells in [start, end) of b form a
// structurally valid Vietnamese syllable, splitting the span into
// onset/nucleus/coda the same way the analyzer does (VowelSpan) rather
// than requiring the caller to have already parsed one out. A host can
// use this to flag the buffer's composed word as "not Vietnamese" and
// suppress further transformation of its own accord; the core engine
// never calls it.
func ValidateCells(b *Buffer, start, end int) ValidationResult {
	result := ValidationResult{Valid: true}

	nucleusStart, nucleusEnd, closed := vowelSpanWithin(b, start, end)
	if nucleusStart == -1 {
		result.Valid = false
		result.Reason = "no_vowel"
		return result
	}
	result.HasVowel = true

	onset := cellSpanString(b, start, nucleusStart)
	if onset != "" {
		onsetKey := strings.ReplaceAll(onset, "đ", "d")
		if !isValidInitial(onsetKey) {
			result.Valid = false
			result.Reason = "invalid_initial"
			return result
		}
	}
	result.InitialValid = true

	var coda string
	if closed {
		coda = cellSpanString(b, nucleusEnd+1, end)
	}
	if coda != "" {
		if !validFinals[coda] {
			result.Valid = false
			result.Reason = "invalid_final"
			return result
		}
	}
	result.FinalValid = true

	if onset != "" {
		combined := onset + string(b.Cell(nucleusStart).Letter)
		if _, invalid := spellingRules[combined]; invalid {
			result.Valid = false
			result.Reason = "spelling_rule_violation"
			return result
		}
	}
	result.SpellingOK = true

	return result
}

// cellSpanString renders cells [from, to) as their lowercase original
// letters (composed, so a stroke-marked 'd' cell reads as đ).
func cellSpanString(b *Buffer, from, to int) string {
	var sb strings.Builder
	for i := from; i < to; i++ {
		sb.WriteRune(b.Cell(i).Composed())
	}
	return strings.ToLower(sb.String())
}

func isValidInitial(s string) bool {
	if s == "" {
		return true
	}
	if validInitials[s] {
		return true
	}
	if len(s) == 1 {
		switch []rune(s)[0] {
		case 'b', 'c', 'd', 'g', 'h', 'k', 'l', 'm', 'n', 'p', 'q', 'r', 's', 't', 'v', 'x':
			return true
		}
	}
	return false
}

// QuickValidate does a fast check of whether a raw typed string could
// plausibly be Vietnamese, before any heavier parsing — a cheap
// pre-filter a host can run over its own buffered text, not part of
// the core transform path.
func QuickValidate(raw string) bool {
	if raw == "" {
		return false
	}

	runes := []rune(strings.ToLower(raw))

	for _, r := range runes {
		switch r {
		case 's', 'f', 'r', 'x', 'j', 'z', 'w':
			continue
		}
		if !isValidVietnameseLetter(r) {
			return false
		}
	}

	hasVowel := false
	for _, r := range runes {
		if isVowelLetter(r) || isVietnameseVowelRune(r) || r == 'w' {
			hasVowel = true
			break
		}
	}
	return hasVowel
}

func isValidVietnameseLetter(r rune) bool {
	switch r {
	case 'a', 'ă', 'â', 'e', 'ê', 'i', 'o', 'ô', 'ơ', 'u', 'ư', 'y':
		return true
	}
	switch r {
	case 'b', 'c', 'd', 'đ', 'g', 'h', 'k', 'l', 'm', 'n', 'p', 'q', 'r', 's', 't', 'v', 'x':
		return true
	}
	switch r {
	case 'f', 'j', 'w', 'z':
		return true
	}
	return false
}

// isVietnameseVowelRune reports whether r is a Vietnamese vowel in the
// supported subset, plain or diacritic- and/or tone-bearing (for plain
// ASCII vowels it agrees with isVowelLetter in buffer.go).
func isVietnameseVowelRune(r rune) bool {
	base, _, _, _, ok := decompose(r)
	return ok && isVowelLetter(base)
}
