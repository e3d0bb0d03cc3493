package engine

// Method selects the active rule table.
type Method int

const (
	MethodTelex Method = 0
	MethodVNI   Method = 1
)

// IntentKind distinguishes what an Intent asks the transform engine to do.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentTone
	IntentDiacritic
)

// Intent is what a trigger key asks for under the active method's rule
// table. The transform engine is the same code for both methods; only
// the table lookup in RuleFor differs, keeping the Telex/VNI split
// confined to the rule tables instead of leaking into the transform
// logic.
type Intent struct {
	Kind      IntentKind
	Tone      Tone
	Diacritic Diacritic
	// Bases lists which original (lowercase) letters this diacritic can
	// land on, searched nearest-first from the end of the buffer. Tone
	// intents ignore Bases: the target is resolved by the vowel-cluster
	// analyzer over the whole vowel span, not by letter identity.
	Bases []rune
}

// RuleFor looks up the intent for key under method; trigger-key
// recognition ignores case entirely, the caller folds caps into the
// composed output separately. ok is false when the key is not a
// recognized trigger for this method, in which case the caller treats
// it as a plain literal append.
func RuleFor(method Method, key rune) (Intent, bool) {
	switch method {
	case MethodVNI:
		intent, ok := vniRules[key]
		return intent, ok
	default:
		intent, ok := telexRules[key]
		return intent, ok
	}
}
