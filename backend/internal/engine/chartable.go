package engine

import "unicode"

// Diacritic is the non-tonal mark slot of a cell.
type Diacritic int

const (
	DiacriticNone Diacritic = iota
	DiacriticCircumflex
	DiacriticBreve
	DiacriticHorn
	DiacriticStroke
)

// Tone is the tone-mark slot of a cell.
type Tone int

const (
	ToneNone Tone = iota
	ToneAcute
	ToneGrave
	ToneHook
	ToneTilde
	ToneDot
)

// diacriticTable maps a base letter (lowercase) and diacritic to the
// lowercase diacritic-bearing letter.
var diacriticTable = map[rune]map[Diacritic]rune{
	'a': {DiacriticBreve: 'ă', DiacriticCircumflex: 'â'},
	'e': {DiacriticCircumflex: 'ê'},
	'o': {DiacriticCircumflex: 'ô', DiacriticHorn: 'ơ'},
	'u': {DiacriticHorn: 'ư'},
	'd': {DiacriticStroke: 'đ'},
}

// diacriticTableReverse maps a lowercase diacritic-bearing letter back
// to (base, diacritic).
var diacriticTableReverse = func() map[rune][2]rune {
	rev := make(map[rune][2]rune)
	for base, marks := range diacriticTable {
		for mark, letter := range marks {
			rev[letter] = [2]rune{base, rune(mark)}
		}
	}
	return rev
}()

// toneTable maps a lowercase base or diacritic-bearing vowel and a tone
// to the final lowercase composed letter.
var toneTable = map[rune]map[Tone]rune{
	'a': {ToneNone: 'a', ToneAcute: 'á', ToneGrave: 'à', ToneHook: 'ả', ToneTilde: 'ã', ToneDot: 'ạ'},
	'ă': {ToneNone: 'ă', ToneAcute: 'ắ', ToneGrave: 'ằ', ToneHook: 'ẳ', ToneTilde: 'ẵ', ToneDot: 'ặ'},
	'â': {ToneNone: 'â', ToneAcute: 'ấ', ToneGrave: 'ầ', ToneHook: 'ẩ', ToneTilde: 'ẫ', ToneDot: 'ậ'},
	'e': {ToneNone: 'e', ToneAcute: 'é', ToneGrave: 'è', ToneHook: 'ẻ', ToneTilde: 'ẽ', ToneDot: 'ẹ'},
	'ê': {ToneNone: 'ê', ToneAcute: 'ế', ToneGrave: 'ề', ToneHook: 'ể', ToneTilde: 'ễ', ToneDot: 'ệ'},
	'i': {ToneNone: 'i', ToneAcute: 'í', ToneGrave: 'ì', ToneHook: 'ỉ', ToneTilde: 'ĩ', ToneDot: 'ị'},
	'o': {ToneNone: 'o', ToneAcute: 'ó', ToneGrave: 'ò', ToneHook: 'ỏ', ToneTilde: 'õ', ToneDot: 'ọ'},
	'ô': {ToneNone: 'ô', ToneAcute: 'ố', ToneGrave: 'ồ', ToneHook: 'ổ', ToneTilde: 'ỗ', ToneDot: 'ộ'},
	'ơ': {ToneNone: 'ơ', ToneAcute: 'ớ', ToneGrave: 'ờ', ToneHook: 'ở', ToneTilde: 'ỡ', ToneDot: 'ợ'},
	'u': {ToneNone: 'u', ToneAcute: 'ú', ToneGrave: 'ù', ToneHook: 'ủ', ToneTilde: 'ũ', ToneDot: 'ụ'},
	'ư': {ToneNone: 'ư', ToneAcute: 'ứ', ToneGrave: 'ừ', ToneHook: 'ử', ToneTilde: 'ữ', ToneDot: 'ự'},
	'y': {ToneNone: 'y', ToneAcute: 'ý', ToneGrave: 'ỳ', ToneHook: 'ỷ', ToneTilde: 'ỹ', ToneDot: 'ỵ'},
}

// toneTableReverse maps a lowercase toned vowel back to (plain vowel, tone).
var toneTableReverse = func() map[rune][2]rune {
	rev := make(map[rune][2]rune)
	for plain, tones := range toneTable {
		for tone, letter := range tones {
			rev[letter] = [2]rune{plain, rune(tone)}
		}
	}
	return rev
}()

// compose builds the composed codepoint for (base, diacritic, tone,
// upper). base must be one of a,e,i,o,u,y,d (lowercase). Returns 0 if
// the combination is not defined (e.g. a tone on 'd', or a diacritic a
// base does not admit).
func compose(base rune, diacritic Diacritic, tone Tone, upper bool) rune {
	letter := base
	if diacritic != DiacriticNone {
		marks, ok := diacriticTable[base]
		if !ok {
			return 0
		}
		letter, ok = marks[diacritic]
		if !ok {
			return 0
		}
	}
	if base == 'd' {
		if tone != ToneNone {
			return 0
		}
		if upper {
			return unicode.ToUpper(letter)
		}
		return letter
	}
	tones, ok := toneTable[letter]
	if !ok {
		return 0
	}
	result, ok := tones[tone]
	if !ok {
		return 0
	}
	if upper {
		return unicode.ToUpper(result)
	}
	return result
}

// decompose splits a composed Vietnamese codepoint back into its base
// letter, diacritic, tone and case. ok is false for any rune outside
// the supported subset.
func decompose(r rune) (base rune, diacritic Diacritic, tone Tone, upper bool, ok bool) {
	upper = unicode.IsUpper(r)
	lower := r
	if upper {
		lower = unicode.ToLower(r)
	}

	if lower == 'đ' {
		return 'd', DiacriticStroke, ToneNone, upper, true
	}
	if lower == 'd' {
		return 'd', DiacriticNone, ToneNone, upper, true
	}

	plain := lower
	tone = ToneNone
	if pair, found := toneTableReverse[lower]; found {
		plain, tone = pair[0], Tone(pair[1])
	} else if _, found := toneTable[lower]; !found {
		return 0, 0, 0, false, false
	}

	base = plain
	diacritic = DiacriticNone
	if pair, found := diacriticTableReverse[plain]; found {
		base, diacritic = pair[0], Diacritic(pair[1])
	}
	return base, diacritic, tone, upper, true
}

