package engine

// VNI rule table: digit keys map to the tone or diacritic they carry.
// 6 circumflex (a|e|o), 7 breve (a), 8 horn (o|u), 9 stroke (d); see
// DESIGN.md for why this ordering was chosen over the alternative
// 7=horn/8=breve convention some VNI layouts use.
var vniRules = map[rune]Intent{
	'1': {Kind: IntentTone, Tone: ToneAcute},
	'2': {Kind: IntentTone, Tone: ToneGrave},
	'3': {Kind: IntentTone, Tone: ToneHook},
	'4': {Kind: IntentTone, Tone: ToneTilde},
	'5': {Kind: IntentTone, Tone: ToneDot},
	'0': {Kind: IntentTone, Tone: ToneNone},

	'6': {Kind: IntentDiacritic, Diacritic: DiacriticCircumflex, Bases: []rune{'a', 'e', 'o'}},
	'7': {Kind: IntentDiacritic, Diacritic: DiacriticBreve, Bases: []rune{'a'}},
	'8': {Kind: IntentDiacritic, Diacritic: DiacriticHorn, Bases: []rune{'o', 'u'}},
	'9': {Kind: IntentDiacritic, Diacritic: DiacriticStroke, Bases: []rune{'d'}},
}
