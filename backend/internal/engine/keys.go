package engine

// KeyCode is an opaque key code in the X11-keysym low range: ASCII
// letters and digits map directly, the rest are named constants below.
// Case is carried out-of-band by the caller's caps bit, not by the code.
type KeyCode uint16

// Key codes the core recognizes. Anything outside this set is an
// unrecognized code and is treated as a break key.
const (
	KeyBackspace KeyCode = 0xff08
	KeyReturn    KeyCode = 0xff0d
	KeyEscape    KeyCode = 0xff1b
	KeySpace     KeyCode = 0x0020
	KeyTab       KeyCode = 0xff09
	KeyDelete    KeyCode = 0xffff

	KeyHome     KeyCode = 0xff50
	KeyLeft     KeyCode = 0xff51
	KeyUp       KeyCode = 0xff52
	KeyRight    KeyCode = 0xff53
	KeyDown     KeyCode = 0xff54
	KeyPageUp   KeyCode = 0xff55
	KeyPageDown KeyCode = 0xff56
	KeyEnd      KeyCode = 0xff57

	// KeyA..KeyZ span the 26 lowercase letter codes (0x61-0x7a).
	KeyA KeyCode = 0x0061
	KeyZ KeyCode = 0x007a

	// Key0..Key9 span the 10 digit codes (0x30-0x39).
	Key0 KeyCode = 0x0030
	Key9 KeyCode = 0x0039
)

// IsLetter reports whether k is one of the 26 recognized letter codes.
func (k KeyCode) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// IsDigit reports whether k is one of the 10 recognized digit codes.
func (k KeyCode) IsDigit() bool {
	return k >= Key0 && k <= Key9
}

// IsBreak reports whether k terminates composition: space, enter, tab,
// punctuation, navigation, delete/backspace, or any unrecognized code.
func (k KeyCode) IsBreak() bool {
	if k.IsLetter() || k.IsDigit() {
		return false
	}
	switch k {
	case KeySpace, KeyReturn, KeyTab, KeyEscape,
		KeyBackspace, KeyDelete,
		KeyHome, KeyEnd, KeyLeft, KeyRight, KeyUp, KeyDown, KeyPageUp, KeyPageDown:
		return true
	}
	// Printable ASCII punctuation (0x21-0x2f, 0x3a-0x40, 0x5b-0x60, 0x7b-0x7e).
	if k >= 0x21 && k <= 0x7e {
		return true
	}
	// Anything else is an unrecognized code, also treated as a break.
	return true
}

// Letter returns the rune for a letter key code: lowercase, or
// uppercase when caps is set.
func (k KeyCode) Letter(caps bool) (r rune, ok bool) {
	if !k.IsLetter() {
		return 0, false
	}
	r = rune(k)
	if caps {
		r = r - 'a' + 'A'
	}
	return r, true
}

// Digit returns the rune for a digit key code ('0'-'9').
func (k KeyCode) Digit() (r rune, ok bool) {
	if !k.IsDigit() {
		return 0, false
	}
	return rune(k), true
}

// IsModifierCleared reports whether the event should be treated as a
// break-and-passthrough because ctrl (or an equivalent modifier the
// caller folds into ctrl, e.g. alt) is held.
func IsModifierCleared(ctrl bool) bool {
	return ctrl
}
