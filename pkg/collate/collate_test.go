package collate

import (
	"testing"

	"github.com/dtnitsch/ssort/models"
)

func TestCompare_BackwardOrder(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"a", "a", 0},
		{"abc", "abc", 0},
		// Last character decides first.
		{"za", "ab", -1}, // 'a' < 'b'
		{"b", "za", 1},   // 'b' > 'a'
		{"ac", "ab", 1},  // 'c' > 'b'
		// Matching tails: shorter sorts first.
		{"a", "aa", -1},
		{"aa", "ba", -1}, // tails equal one deep, then 'a' < 'b'
		{"ing", "sorting", -1},
		{"sorting", "ing", 1},
		{"", "a", -1},
		// Multibyte runes compare by code point.
		{"é", "z", 1},  // U+00E9 > 'z'
		{"aé", "bé", -1},
	}

	for _, tt := range tests {
		if got := Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

// The order must be antisymmetric and transitive to be usable by any sort,
// parallel merges included.
func TestCompare_TotalOrder(t *testing.T) {
	keys := []string{"", "a", "aa", "ba", "za", "b", "ab", "ac", "bc", "z", "az", "bz", "zz", "é", "aé"}

	for _, a := range keys {
		for _, b := range keys {
			ab, ba := Compare(a, b), Compare(b, a)
			if ab != -ba {
				t.Errorf("Compare(%q, %q) = %d but Compare(%q, %q) = %d, want negation", a, b, ab, b, a, ba)
			}
			for _, c := range keys {
				if Compare(a, b) <= 0 && Compare(b, c) <= 0 && Compare(a, c) > 0 {
					t.Errorf("transitivity violated: %q <= %q <= %q but Compare(%q, %q) = %d", a, b, c, a, c, Compare(a, c))
				}
			}
		}
	}
}

func TestCompare_InvalidUTF8(t *testing.T) {
	// Distinct invalid sequences must still order consistently.
	a, b := "x\xff", "x\xfe"
	if got, rev := Compare(a, b), Compare(b, a); got == 0 || got != -rev {
		t.Errorf("invalid UTF-8 order inconsistent: Compare = %d, reversed = %d", got, rev)
	}
	if got := Compare("x\xff", "x\xff"); got != 0 {
		t.Errorf("Compare of identical invalid sequences = %d, want 0", got)
	}
}

func TestSortKey_CaseFold(t *testing.T) {
	cfg := models.SortConfig{IgnoreCase: true}
	if got, want := SortKey("Apple", cfg), SortKey("apple", cfg); got != want {
		t.Errorf("folded keys differ: %q vs %q", got, want)
	}
	if got := SortKey("Apple", models.SortConfig{}); got != "Apple" {
		t.Errorf("SortKey without ignore-case = %q, want unchanged", got)
	}
}

func TestSortKey_NFC(t *testing.T) {
	precomposed := "café" // é as one code point
	combining := "café"  // e + combining acute
	cfg := models.SortConfig{Normalize: true}

	if Compare(SortKey(precomposed, cfg), SortKey(combining, cfg)) != 0 {
		t.Error("NFC-normalized keys should compare equal")
	}
	if Compare(precomposed, combining) == 0 {
		t.Error("un-normalized keys should differ, test inputs are broken")
	}
}

func TestSortKey_NormalizeBeforeFold(t *testing.T) {
	cfg := models.SortConfig{Normalize: true, IgnoreCase: true}
	// E + combining acute vs precomposed é: must fold to the same key.
	if SortKey("CAFÉ", cfg) != SortKey("café", cfg) {
		t.Errorf("SortKey(%q) = %q, SortKey(%q) = %q, want equal",
			"CAFÉ", SortKey("CAFÉ", cfg), "café", SortKey("café", cfg))
	}
}

func TestComparer_Reverse(t *testing.T) {
	keys := []string{"a", "aa", "b", "ab", "", "z", "é"}
	fwd := Comparer(models.SortConfig{})
	rev := Comparer(models.SortConfig{Reverse: true})

	for _, a := range keys {
		for _, b := range keys {
			f, r := fwd(a, b), rev(a, b)
			if f != -r {
				t.Errorf("reverse comparer not an exact inversion for (%q, %q): %d vs %d", a, b, f, r)
			}
			if f == 0 && r != 0 {
				t.Errorf("equal keys (%q, %q) became unequal under reverse", a, b)
			}
		}
	}
}

func TestComparer_IgnoreCase(t *testing.T) {
	cmp := Comparer(models.SortConfig{IgnoreCase: true})
	if got := cmp("Apple", "apple"); got != 0 {
		t.Errorf("cmp(Apple, apple) = %d, want 0 with ignore-case", got)
	}
}
