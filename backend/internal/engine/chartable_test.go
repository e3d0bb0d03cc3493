package engine

import (
	"testing"

	"golang.org/x/text/unicode/norm"
)

func TestComposeBasic(t *testing.T) {
	cases := []struct {
		base      rune
		diacritic Diacritic
		tone      Tone
		upper     bool
		want      rune
	}{
		{'a', DiacriticNone, ToneNone, false, 'a'},
		{'a', DiacriticCircumflex, ToneAcute, false, 'ấ'},
		{'a', DiacriticBreve, ToneGrave, false, 'ằ'},
		{'o', DiacriticHorn, ToneDot, false, 'ợ'},
		{'u', DiacriticHorn, ToneTilde, false, 'ữ'},
		{'d', DiacriticStroke, ToneNone, false, 'đ'},
		{'d', DiacriticStroke, ToneNone, true, 'Đ'},
		{'e', DiacriticCircumflex, ToneHook, true, 'Ể'},
	}
	for _, c := range cases {
		got := compose(c.base, c.diacritic, c.tone, c.upper)
		if got != c.want {
			t.Errorf("compose(%q, %v, %v, %v) = %q, want %q", c.base, c.diacritic, c.tone, c.upper, got, c.want)
		}
	}
}

func TestComposeRejectsToneOnD(t *testing.T) {
	if got := compose('d', DiacriticStroke, ToneAcute, false); got != 0 {
		t.Errorf("compose('d', stroke, acute) = %q, want 0", got)
	}
}

func TestComposeRejectsInvalidDiacritic(t *testing.T) {
	if got := compose('i', DiacriticCircumflex, ToneNone, false); got != 0 {
		t.Errorf("compose('i', circumflex, none) = %q, want 0", got)
	}
}

func TestDecomposeRoundTrip(t *testing.T) {
	letters := []rune{'a', 'ă', 'â', 'á', 'ắ', 'ấ', 'ằ', 'ầ', 'ẳ', 'ẩ', 'ẵ', 'ẫ', 'ặ', 'ậ',
		'e', 'ê', 'é', 'ế', 'è', 'ề', 'ẻ', 'ể', 'ẽ', 'ễ', 'ẹ', 'ệ',
		'i', 'í', 'ì', 'ỉ', 'ĩ', 'ị',
		'o', 'ô', 'ơ', 'ó', 'ố', 'ớ', 'ò', 'ồ', 'ờ', 'ỏ', 'ổ', 'ở', 'õ', 'ỗ', 'ỡ', 'ọ', 'ộ', 'ợ',
		'u', 'ư', 'ú', 'ứ', 'ù', 'ừ', 'ủ', 'ử', 'ũ', 'ữ', 'ụ', 'ự',
		'y', 'ý', 'ỳ', 'ỷ', 'ỹ', 'ỵ',
		'd', 'đ'}

	for _, want := range letters {
		base, diacritic, tone, upper, ok := decompose(want)
		if !ok {
			t.Errorf("decompose(%q) reported ok=false", want)
			continue
		}
		got := compose(base, diacritic, tone, upper)
		if got != want {
			t.Errorf("round trip for %q: compose(decompose(%q)) = %q", want, want, got)
		}
	}
}

func TestDecomposeUppercase(t *testing.T) {
	base, diacritic, tone, upper, ok := decompose('Ữ')
	if !ok || base != 'u' || diacritic != DiacriticHorn || tone != ToneTilde || !upper {
		t.Errorf("decompose('Ữ') = (%q, %v, %v, %v, %v)", base, diacritic, tone, upper, ok)
	}
}

func TestDecomposeRejectsUnknown(t *testing.T) {
	if _, _, _, _, ok := decompose('z'); ok {
		t.Error("decompose('z') reported ok=true for a non-vowel letter")
	}
	if _, _, _, _, ok := decompose('5'); ok {
		t.Error("decompose('5') reported ok=true for a digit")
	}
}

// TestComposedFormIsNFC asserts that every composed letter
// chartable.go can produce is already a single NFC-normalized
// codepoint, never a base letter plus combining marks.
func TestComposedFormIsNFC(t *testing.T) {
	bases := []rune{'a', 'e', 'i', 'o', 'u', 'y', 'd'}
	diacritics := []Diacritic{DiacriticNone, DiacriticCircumflex, DiacriticBreve, DiacriticHorn, DiacriticStroke}
	tones := []Tone{ToneNone, ToneAcute, ToneGrave, ToneHook, ToneTilde, ToneDot}

	checked := 0
	for _, b := range bases {
		for _, d := range diacritics {
			for _, tn := range tones {
				for _, upper := range []bool{false, true} {
					r := compose(b, d, tn, upper)
					if r == 0 {
						continue
					}
					s := string(r)
					if !norm.NFC.IsNormalString(s) {
						t.Errorf("compose(%q,%v,%v,%v) = %q, not NFC-normalized", b, d, tn, upper, s)
					}
					checked++
				}
			}
		}
	}
	if checked == 0 {
		t.Fatal("no combination produced a non-zero rune; table may be empty")
	}
}
