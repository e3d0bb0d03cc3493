package engine

// appendLiteralCell appends letter as a plain cell, forcing a break
// (clearing the buffer first) if it was already at capacity.
func appendLiteralCell(b *Buffer, letter rune, caps bool) {
	if b.Full() {
		b.Clear()
	}
	b.Append(letter, caps)
}

// handleTrigger is the transform engine's single entry point for a
// non-break, non-ctrl key once the engine facade has already
// classified it: it realizes or reverts a tone/diacritic transform, or
// appends a plain literal.
func handleTrigger(b *Buffer, method Method, modern bool, key KeyCode, letter rune, caps bool) EditResult {
	intent, ok := RuleFor(method, letter)
	if !ok {
		appendLiteralCell(b, letter, caps)
		return noneResult()
	}

	switch intent.Kind {
	case IntentTone:
		return realizeTone(b, modern, intent.Tone, key, letter, caps)
	case IntentDiacritic:
		return realizeDiacritic(b, method, intent, key, letter, caps)
	default:
		appendLiteralCell(b, letter, caps)
		return noneResult()
	}
}

// realizeTone applies a tone mark to the buffer's main vowel, or
// reverts one already placed by this same trigger key.
func realizeTone(b *Buffer, modern bool, tone Tone, key KeyCode, letter rune, caps bool) EditResult {
	start, end, closed := VowelSpan(b)
	if start == -1 {
		// No vowel to carry a tone: the key falls back to a literal.
		appendLiteralCell(b, letter, caps)
		return noneResult()
	}

	target := MainVowelIndex(b, start, end, closed, modern)
	cell := b.Cell(target)
	before := b.Len() - target

	if tone != ToneNone && cell.ToneSet && cell.Tone == tone && cell.ToneKey == key {
		// Same trigger key would re-apply the tone it already placed here: revert it.
		b.ClearTone()
		appendLiteralCell(b, letter, caps)
		return sendResult(b, before, target)
	}

	if tone == ToneNone {
		if !cell.ToneSet {
			// Nothing to clear, so there is no transform to perform: fall back to a literal.
			appendLiteralCell(b, letter, caps)
			return noneResult()
		}
		b.ClearTone()
		return sendResult(b, before, target)
	}

	b.ApplyTone(target, tone, key)
	return sendResult(b, before, target)
}

// diacriticMark resolves the actual Diacritic a trigger realizes on a
// matched base. Every trigger maps to exactly one mark except Telex
// 'w', whose mark depends on which base it landed on (breve on 'a',
// horn on 'o'/'u').
func diacriticMark(method Method, letter rune, base rune, fallback Diacritic) Diacritic {
	if method == MethodTelex && letter == 'w' {
		return telexWBaseDiacritic(base)
	}
	return fallback
}

// realizeDiacritic applies a diacritic mark to its nearest matching
// base, or reverts one already placed by this same trigger key; revert
// is checked first so it always wins over a fresh apply.
func realizeDiacritic(b *Buffer, method Method, intent Intent, key KeyCode, letter rune, caps bool) EditResult {
	if idx := FindRevertTarget(b, intent.Bases); idx != -1 {
		cell := b.Cell(idx)
		want := diacriticMark(method, letter, cell.Letter, intent.Diacritic)
		if cell.DiacriticIsSet && cell.Diacritic == want && cell.DiacriticKey == key {
			before := b.Len() - idx
			b.ClearDiacriticAt(idx)
			appendLiteralCell(b, letter, caps)
			return sendResult(b, before, idx)
		}
	}

	idx := FindDiacriticTarget(b, intent.Bases)
	if idx == -1 {
		appendLiteralCell(b, letter, caps)
		return noneResult()
	}

	cell := b.Cell(idx)
	mark := diacriticMark(method, letter, cell.Letter, intent.Diacritic)
	before := b.Len() - idx
	b.ApplyDiacritic(idx, mark, key)
	return sendResult(b, before, idx)
}
