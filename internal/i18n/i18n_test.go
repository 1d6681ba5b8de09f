package i18n

import "testing"

func TestTInterpolates(t *testing.T) {
	got := T(En, "vsopen.desc", Vars{"hero": "BB", "villain": "BTN"})
	want := "BB. BTN opens to 2.5bb."
	if got != want {
		t.Fatalf("T() = %q, want %q", got, want)
	}
}

func TestTFallsBackToEnglishThenKey(t *testing.T) {
	if got := T(Ja, "verdict.correct", nil); got != "正解！" {
		t.Fatalf("ja lookup = %q", got)
	}
	if got := T(Locale("fr"), "verdict.correct", nil); got != "Correct!" {
		t.Fatalf("unknown locale should fall back to English, got %q", got)
	}
	if got := T(En, "no.such.key", nil); got != "no.such.key" {
		t.Fatalf("missing key should echo the key, got %q", got)
	}
}

func TestParse(t *testing.T) {
	if loc, ok := Parse("ja_JP"); !ok || loc != Ja {
		t.Fatalf("Parse(ja_JP) = %v %v", loc, ok)
	}
	if loc, ok := Parse("en-US"); !ok || loc != En {
		t.Fatalf("Parse(en-US) = %v %v", loc, ok)
	}
	if _, ok := Parse("zz"); ok {
		t.Fatal("Parse(zz) should fail")
	}
}

func TestDetect(t *testing.T) {
	t.Setenv("LC_ALL", "ja_JP.UTF-8")
	if Detect() != Ja {
		t.Fatal("ja_JP should detect as ja")
	}
	t.Setenv("LC_ALL", "en_US.UTF-8")
	if Detect() != En {
		t.Fatal("en_US should detect as en")
	}
}

// Both locales must cover the same key surface so nothing renders as a raw
// key in one language only.
func TestLocalesCoverSameKeys(t *testing.T) {
	for key := range tables[En] {
		if _, ok := tables[Ja][key]; !ok {
			t.Errorf("ja table missing %q", key)
		}
	}
	for key := range tables[Ja] {
		if _, ok := tables[En][key]; !ok {
			t.Errorf("en table missing %q", key)
		}
	}
}
