package engine

import "testing"

func TestKeyCodeIsLetter(t *testing.T) {
	for k := KeyA; k <= KeyZ; k++ {
		if !k.IsLetter() {
			t.Errorf("KeyCode(%#x).IsLetter() = false, want true", uint16(k))
		}
	}
	if KeyCode('0').IsLetter() {
		t.Error("digit key classified as letter")
	}
	if KeySpace.IsLetter() {
		t.Error("space key classified as letter")
	}
}

func TestKeyCodeIsDigit(t *testing.T) {
	for k := Key0; k <= Key9; k++ {
		if !k.IsDigit() {
			t.Errorf("KeyCode(%#x).IsDigit() = false, want true", uint16(k))
		}
	}
	if KeyA.IsDigit() {
		t.Error("letter key classified as digit")
	}
}

func TestKeyCodeIsBreak(t *testing.T) {
	breaks := []KeyCode{KeySpace, KeyReturn, KeyTab, KeyEscape, KeyBackspace, KeyDelete, KeyLeft, KeyCode('.'), KeyCode('!')}
	for _, k := range breaks {
		if !k.IsBreak() {
			t.Errorf("KeyCode(%#x).IsBreak() = false, want true", uint16(k))
		}
	}

	nonBreaks := []KeyCode{KeyA, KeyZ, Key0, Key9}
	for _, k := range nonBreaks {
		if k.IsBreak() {
			t.Errorf("KeyCode(%#x).IsBreak() = true, want false", uint16(k))
		}
	}
}

func TestKeyCodeLetter(t *testing.T) {
	r, ok := KeyA.Letter(false)
	if !ok || r != 'a' {
		t.Errorf("KeyA.Letter(false) = %q, %v, want 'a', true", r, ok)
	}
	r, ok = KeyA.Letter(true)
	if !ok || r != 'A' {
		t.Errorf("KeyA.Letter(true) = %q, %v, want 'A', true", r, ok)
	}
	if _, ok := Key0.Letter(false); ok {
		t.Error("Key0.Letter() reported ok for a digit code")
	}
}

func TestKeyCodeDigit(t *testing.T) {
	r, ok := KeyCode('7').Digit()
	if !ok || r != '7' {
		t.Errorf("Digit() = %q, %v, want '7', true", r, ok)
	}
	if _, ok := KeyA.Digit(); ok {
		t.Error("KeyA.Digit() reported ok for a letter code")
	}
}

func TestIsModifierCleared(t *testing.T) {
	if !IsModifierCleared(true) {
		t.Error("IsModifierCleared(true) = false, want true")
	}
	if IsModifierCleared(false) {
		t.Error("IsModifierCleared(false) = true, want false")
	}
}
