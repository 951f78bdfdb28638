// Package collate implements the inverse (suffix-first) lexicographic order
// and the comparison-key normalization that feeds it.
package collate

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/dtnitsch/ssort/models"
)

// SortKey produces the comparison-only form of an extracted key. NFC
// normalization runs before case folding because folding results can depend
// on canonical form. Invalid UTF-8 passes through untouched; normalization
// never fails.
func SortKey(key string, cfg models.SortConfig) string {
	if cfg.Normalize {
		key = norm.NFC.String(key)
	}
	if cfg.IgnoreCase {
		key = strings.ToLower(key)
	}
	return key
}

// Compare orders two already-normalized keys by comparing runes from the
// last toward the first. The first differing rune decides, by code point.
// When one key runs out, the shorter key sorts first, so a key that matches
// the tail of a longer key precedes it. Returns -1, 0 or +1.
func Compare(a, b string) int {
	for len(a) > 0 && len(b) > 0 {
		ra, na := utf8.DecodeLastRuneInString(a)
		rb, nb := utf8.DecodeLastRuneInString(b)
		if ra != rb {
			if ra < rb {
				return -1
			}
			return 1
		}
		// Distinct invalid byte sequences both decode to RuneError;
		// order those bytewise so the order stays total.
		if ra == utf8.RuneError {
			ta, tb := a[len(a)-na:], b[len(b)-nb:]
			if ta != tb {
				if ta < tb {
					return -1
				}
				return 1
			}
		}
		a = a[:len(a)-na]
		b = b[:len(b)-nb]
	}
	switch {
	case len(a) == 0 && len(b) == 0:
		return 0
	case len(a) == 0:
		return -1
	default:
		return 1
	}
}

// Comparer returns a standalone comparison function over raw string keys,
// capturing only the config. It applies the configured normalization to
// both arguments before the backward comparison and inverts non-equal
// results when Reverse is set. The returned function is a consistent total
// order, safe to hand to any sorting primitive, sequential or parallel.
func Comparer(cfg models.SortConfig) func(a, b string) int {
	return func(a, b string) int {
		c := Compare(SortKey(a, cfg), SortKey(b, cfg))
		if cfg.Reverse {
			c = -c
		}
		return c
	}
}
