package engine

// BufferCapacity bounds the composition buffer, chosen generously above
// any real Vietnamese syllable so overflow only ever happens on
// pathological non-Vietnamese runs, forcing a break.
const BufferCapacity = 32

// Cell is one logical syllable position: the original letter as typed,
// its active diacritic and tone slots, and the key that triggered each
// slot (needed by the double-key revert rule).
type Cell struct {
	Letter rune // original ASCII letter or digit, lowercase
	Caps   bool

	Diacritic      Diacritic
	DiacriticKey   KeyCode
	DiacriticIsSet bool

	Tone    Tone
	ToneKey KeyCode
	ToneSet bool
}

// Composed returns the cell's current composed codepoint.
func (c Cell) Composed() rune {
	if !isBaseLetter(c.Letter) {
		// Digits and any other literal cell compose to themselves.
		letter := c.Letter
		if c.Caps {
			letter = toUpperASCII(letter)
		}
		return letter
	}
	r := compose(c.Letter, c.Diacritic, c.Tone, c.Caps)
	if r == 0 {
		// Should not happen for letters reachable through Append/Apply*,
		// but fall back to the raw letter rather than emit a NUL.
		if c.Caps {
			return toUpperASCII(c.Letter)
		}
		return c.Letter
	}
	return r
}

func toUpperASCII(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 32
	}
	return r
}

func isBaseLetter(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y', 'd':
		return true
	}
	return false
}

func isVowelLetter(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// Buffer is the bounded, ordered sequence of cells the engine composes
// into. It is array-backed so OnKey never allocates beyond a fixed
// bound.
type Buffer struct {
	cells  [BufferCapacity]Cell
	length int
}

// Len returns the number of cells currently in the buffer.
func (b *Buffer) Len() int { return b.length }

// Full reports whether the buffer is at capacity.
func (b *Buffer) Full() bool { return b.length >= BufferCapacity }

// Cell returns the cell at i. i must be in [0, Len()).
func (b *Buffer) Cell(i int) Cell { return b.cells[i] }

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.length = 0
}

// Append adds a new literal cell (letter or digit) to the end of the
// buffer. Reports false if the buffer was full; the caller must Clear
// first and retry.
func (b *Buffer) Append(letter rune, caps bool) bool {
	if b.Full() {
		return false
	}
	b.cells[b.length] = Cell{Letter: letter, Caps: caps}
	b.length++
	return true
}

// ApplyDiacritic sets the diacritic slot and trigger on the cell at pos.
func (b *Buffer) ApplyDiacritic(pos int, d Diacritic, trigger KeyCode) {
	b.cells[pos].Diacritic = d
	b.cells[pos].DiacriticKey = trigger
	b.cells[pos].DiacriticIsSet = true
}

// ClearDiacriticAt removes the diacritic slot on the cell at pos.
func (b *Buffer) ClearDiacriticAt(pos int) {
	b.cells[pos].Diacritic = DiacriticNone
	b.cells[pos].DiacriticKey = 0
	b.cells[pos].DiacriticIsSet = false
}

// ApplyTone sets the tone slot and trigger on the cell at pos, clearing
// any tone elsewhere first: a buffer carries at most one tone mark.
func (b *Buffer) ApplyTone(pos int, t Tone, trigger KeyCode) {
	b.ClearTone()
	b.cells[pos].Tone = t
	b.cells[pos].ToneKey = trigger
	b.cells[pos].ToneSet = true
}

// ClearTone removes the tone slot from whichever cell currently holds one.
func (b *Buffer) ClearTone() {
	for i := 0; i < b.length; i++ {
		if b.cells[i].Tone != ToneNone {
			b.cells[i].Tone = ToneNone
			b.cells[i].ToneKey = 0
			b.cells[i].ToneSet = false
		}
	}
}

// ToneCellIndex returns the index of the cell currently carrying a
// tone, or -1 if none does. At most one cell ever carries one.
func (b *Buffer) ToneCellIndex() int {
	for i := 0; i < b.length; i++ {
		if b.cells[i].Tone != ToneNone {
			return i
		}
	}
	return -1
}

// Snapshot returns the composed string of the whole buffer. It
// allocates (string conversion always does) so OnKey never calls it
// directly for delta construction; use FillComposed there instead.
func (b *Buffer) Snapshot() string {
	return b.SnapshotFrom(0)
}

// SnapshotFrom returns the composed string of cells [from, Len()).
func (b *Buffer) SnapshotFrom(from int) string {
	if from < 0 {
		from = 0
	}
	runes := make([]rune, 0, b.length-from)
	for i := from; i < b.length; i++ {
		runes = append(runes, b.cells[i].Composed())
	}
	return string(runes)
}

// FillComposed writes the composed runes of cells [from, Len()) into
// dst starting at dst[0] and returns how many were written. dst must
// be large enough (a MaxDeltaChars-sized array backing always is); no
// heap allocation occurs when the caller passes a slice of a
// stack/struct-embedded array, which is why OnKey uses this instead of
// Snapshot.
func (b *Buffer) FillComposed(from int, dst []rune) int {
	if from < 0 {
		from = 0
	}
	n := 0
	for i := from; i < b.length; i++ {
		dst[n] = b.cells[i].Composed()
		n++
	}
	return n
}
