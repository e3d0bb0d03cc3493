package engine

import "testing"

func typeLetters(e *Engine, s string) (last EditResult) {
	for _, r := range s {
		caps := r >= 'A' && r <= 'Z'
		last = e.OnKey(KeyCode(toLowerLetter(r)), caps, false)
	}
	return last
}

func typeDigits(e *Engine, s string) (last EditResult) {
	for _, r := range s {
		last = e.OnKey(KeyCode(r), false, false)
	}
	return last
}

func wantChars(t *testing.T, got EditResult, backspace uint8, chars string) {
	t.Helper()
	if got.Action != ActionSend {
		t.Fatalf("Action = %v, want ActionSend", got.Action)
	}
	if got.Backspace != backspace {
		t.Errorf("Backspace = %d, want %d", got.Backspace, backspace)
	}
	want := []rune(chars)
	if int(got.Count) != len(want) {
		t.Fatalf("Count = %d, want %d (chars=%q)", got.Count, len(want), string(got.Chars[:got.Count]))
	}
	for i, r := range want {
		if got.Chars[i] != r {
			t.Errorf("Chars[%d] = %q, want %q", i, got.Chars[i], r)
		}
	}
}

// TestMandatoryScenario1 covers spec scenario "aas" -> "ấ".
func TestMandatoryScenario1(t *testing.T) {
	e := New()
	result := typeLetters(e, "aas")
	wantChars(t, result, 1, "ấ")
	if e.Preedit() != "ấ" {
		t.Errorf("Preedit() = %q, want %q", e.Preedit(), "ấ")
	}
}

// TestMandatoryScenario2 covers spec scenario "chaof" -> "chào".
func TestMandatoryScenario2(t *testing.T) {
	e := New()
	result := typeLetters(e, "chaof")
	wantChars(t, result, 2, "ào")
	if e.Preedit() != "chào" {
		t.Errorf("Preedit() = %q, want %q", e.Preedit(), "chào")
	}
}

// TestMandatoryScenario3 covers spec scenario "nguwowif" -> "người".
func TestMandatoryScenario3(t *testing.T) {
	e := New()
	typeLetters(e, "nguwowif")
	if e.Preedit() != "người" {
		t.Errorf("Preedit() = %q, want %q", e.Preedit(), "người")
	}
}

// TestMandatoryScenario4 covers spec scenario "khuyeenr" -> "khuyển".
func TestMandatoryScenario4(t *testing.T) {
	e := New()
	typeLetters(e, "khuyeenr")
	if e.Preedit() != "khuyển" {
		t.Errorf("Preedit() = %q, want %q", e.Preedit(), "khuyển")
	}
}

// TestMandatoryScenario5 covers spec scenario "toi61" (VNI) -> "tối".
func TestMandatoryScenario5(t *testing.T) {
	e := New()
	e.SetMethod(MethodVNI)
	typeLetters(e, "toi")
	result := typeDigits(e, "61")
	wantChars(t, result, 2, "ối")
	if e.Preedit() != "tối" {
		t.Errorf("Preedit() = %q, want %q", e.Preedit(), "tối")
	}
}

// TestMandatoryScenario6 covers spec scenario "a11" (VNI) -> literal "a1".
func TestMandatoryScenario6(t *testing.T) {
	e := New()
	e.SetMethod(MethodVNI)
	typeLetters(e, "a")
	result := typeDigits(e, "11")
	wantChars(t, result, 1, "a1")
	if e.Preedit() != "a1" {
		t.Errorf("Preedit() = %q, want %q", e.Preedit(), "a1")
	}
}

// TestMandatoryScenario7 covers spec scenario "hoaf" under the old
// tone-placement style -> "hòa" (grave lands on the 'o', not the 'a').
func TestMandatoryScenario7(t *testing.T) {
	e := New()
	e.SetModern(false)
	result := typeLetters(e, "hoaf")
	wantChars(t, result, 2, "òa")
	if e.Preedit() != "hòa" {
		t.Errorf("Preedit() = %q, want %q", e.Preedit(), "hòa")
	}
}

// TestMandatoryScenario8 covers spec scenario "Chaof" -> "Chào",
// confirming caps on the initial letter survive transformation.
func TestMandatoryScenario8(t *testing.T) {
	e := New()
	result := typeLetters(e, "Chaof")
	wantChars(t, result, 2, "ào")
	if e.Preedit() != "Chào" {
		t.Errorf("Preedit() = %q, want %q", e.Preedit(), "Chào")
	}
}

func TestEngineBreakKeyClearsBuffer(t *testing.T) {
	e := New()
	typeLetters(e, "chao")
	e.OnKey(KeySpace, false, false)
	if e.Preedit() != "" {
		t.Errorf("Preedit() after space = %q, want empty", e.Preedit())
	}
}

func TestEngineCtrlClearsBuffer(t *testing.T) {
	e := New()
	typeLetters(e, "cha")
	e.OnKey(KeyCode('o'), false, true)
	if e.Preedit() != "" {
		t.Errorf("Preedit() after ctrl+key = %q, want empty", e.Preedit())
	}
}

func TestEngineDisabledPassesThrough(t *testing.T) {
	e := New()
	e.SetEnabled(false)
	result := e.OnKey(KeyCode('a'), false, false)
	if result.Action != ActionNone {
		t.Errorf("Action while disabled = %v, want ActionNone", result.Action)
	}
}

func TestEngineSetMethodClearsBuffer(t *testing.T) {
	e := New()
	typeLetters(e, "cha")
	e.SetMethod(MethodVNI)
	if e.Preedit() != "" {
		t.Errorf("Preedit() after SetMethod = %q, want empty", e.Preedit())
	}
	if e.Method() != MethodVNI {
		t.Error("Method() did not switch to VNI")
	}
}

func TestEngineSetMethodRejectsUnknownValue(t *testing.T) {
	e := New()
	e.SetMethod(Method(99))
	if e.Method() != MethodTelex {
		t.Errorf("Method() = %v after invalid SetMethod, want unchanged MethodTelex", e.Method())
	}
}

func TestEngineBufferOverflowForcesBreak(t *testing.T) {
	e := New()
	for i := 0; i < BufferCapacity; i++ {
		e.OnKey(KeyCode('b'), false, false)
	}
	result := e.OnKey(KeyCode('b'), false, false)
	if result.Action != ActionNone {
		t.Errorf("Action on overflowing append = %v, want ActionNone (plain literal)", result.Action)
	}
	if e.Preedit() != "b" {
		t.Errorf("Preedit() after overflow = %q, want %q (buffer cleared then one letter appended)", e.Preedit(), "b")
	}
}

// Real-world words beyond the mandatory scenarios.
func TestEngineRealWorldWords(t *testing.T) {
	cases := []struct {
		typed string
		want  string
	}{
		{"xoas", "xoá"},
		{"nghiax", "nghĩa"},
		{"thoar", "thoả"},
		{"tooi", "tôi"},
		{"muwa", "mưa"},
		{"bow", "bơ"},
		{"vieetj", "việt"},
		{"tieengs", "tiếng"},
		{"cacs", "các"},
		{"banj", "bạn"},
	}
	for _, c := range cases {
		e := New()
		typeLetters(e, c.typed)
		if got := e.Preedit(); got != c.want {
			t.Errorf("typing %q = %q, want %q", c.typed, got, c.want)
		}
	}
}
