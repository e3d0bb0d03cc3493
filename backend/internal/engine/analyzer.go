package engine

// cellKind classifies a cell for vowel-cluster analysis.
type cellKind int

const (
	kindOther cellKind = iota
	kindVowel
	kindConsonant
)

func kindOf(c Cell) cellKind {
	switch {
	case isVowelLetter(c.Letter):
		return kindVowel
	case c.Letter >= 'a' && c.Letter <= 'z':
		return kindConsonant
	default:
		return kindOther
	}
}

// VowelSpan locates the maximal contiguous run of vowel cells that
// forms the nucleus of the syllable currently at the end of the
// buffer: trailing consonant cells are skipped first (they are a
// potential coda), then the contiguous vowel run immediately before
// them is the span. Returns start==end==-1 if the cell just before the
// trailing consonants is not a vowel (an empty nucleus), which covers a
// buffer with no vowel at all and one whose last non-consonant cell is
// a digit. closed reports whether one or more consonant cells followed
// the span.
func VowelSpan(b *Buffer) (start, end int, closed bool) {
	return vowelSpanWithin(b, 0, b.Len())
}

// vowelSpanWithin is VowelSpan restricted to the cell range [from, to)
// instead of the whole buffer, so callers that validate a span the
// host names (e.g. spelling.go's ValidateCells) can reuse the same
// scan without the buffer itself being scoped to one syllable.
func vowelSpanWithin(b *Buffer, from, to int) (start, end int, closed bool) {
	i := to - 1
	codaEnd := i
	for i >= from && kindOf(b.Cell(i)) == kindConsonant {
		i--
	}
	closed = i < codaEnd
	if i < from || kindOf(b.Cell(i)) != kindVowel {
		return -1, -1, closed
	}
	end = i
	for i >= from && kindOf(b.Cell(i)) == kindVowel {
		i--
	}
	start = i + 1
	return start, end, closed
}

// isOpenPair reports whether the two-vowel cluster (lowercase letters)
// is one of the style-sensitive pairs oa/oe/uy, whose tone placement
// depends on the active modern/old style.
func isOpenPair(first, second rune) bool {
	switch {
	case first == 'o' && second == 'a':
		return true
	case first == 'o' && second == 'e':
		return true
	case first == 'u' && second == 'y':
		return true
	}
	return false
}

// MainVowelIndex picks which cell in the vowel span [start, end]
// receives the tone mark, in order of priority:
//  1. a single vowel always takes it;
//  2. a vowel already carrying a diacritic wins (rightmost if more
//     than one), since a marked vowel is always the nucleus;
//  3. a closed syllable (one ending in a consonant coda) places the
//     tone on the last vowel;
//  4. an open two-vowel cluster from the style-sensitive set oa/oe/uy
//     places it on the first or second vowel depending on the active
//     style;
//  5. any other open two-vowel cluster places it on the first vowel;
//  6. an open three-vowel cluster places it on the middle vowel.
func MainVowelIndex(b *Buffer, start, end int, closed bool, modern bool) int {
	n := end - start + 1
	if n <= 0 {
		return -1
	}
	if n == 1 {
		return start // rule 1
	}

	// Rule 2: a vowel in the span already carries a diacritic -> that
	// one, rightmost if more than one.
	for i := end; i >= start; i-- {
		if b.Cell(i).Diacritic != DiacriticNone {
			return i
		}
	}

	if closed {
		return end // rule 3: closed syllable -> last vowel
	}

	if n == 2 {
		first := b.Cell(start).Letter
		second := b.Cell(start + 1).Letter
		if isOpenPair(first, second) {
			if modern {
				return start + 1 // rule 4, modern
			}
			return start // rule 4, old style
		}
		return start // rule 5: any other open pair -> first vowel
	}

	// rule 6: open syllable, 3 vowels -> middle vowel (rule 2 already
	// handled the marked-vowel cases, e.g. iê/uô/ươ, above).
	return start + 1
}

// FindDiacriticTarget searches the buffer from the end for the nearest
// cell whose original letter is in bases and whose diacritic slot is
// empty. Returns -1 if none match.
func FindDiacriticTarget(b *Buffer, bases []rune) int {
	for i := b.Len() - 1; i >= 0; i-- {
		c := b.Cell(i)
		if c.Diacritic != DiacriticNone {
			continue
		}
		if containsRune(bases, c.Letter) {
			return i
		}
	}
	return -1
}

// FindRevertTarget searches the buffer from the end for the nearest
// cell whose original letter is in bases, ignoring whether its
// diacritic slot is empty — used only to test whether a trigger key
// would be re-applying to a cell that already bears its own mark, the
// discriminator behind the double-key revert rule.
func FindRevertTarget(b *Buffer, bases []rune) int {
	for i := b.Len() - 1; i >= 0; i-- {
		c := b.Cell(i)
		if containsRune(bases, c.Letter) {
			return i
		}
	}
	return -1
}

func containsRune(set []rune, r rune) bool {
	for _, s := range set {
		if s == r {
			return true
		}
	}
	return false
}
