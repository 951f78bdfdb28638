// Package extract derives sort keys from raw input lines.
package extract

import (
	"unicode"
	"unicode/utf8"

	"github.com/dtnitsch/ssort/models"
)

// Key is one extraction result. Start and Width are rune positions within
// the line; Start is -1 when no word was found.
type Key struct {
	Text  string
	Found bool
	Start int
	Width int
}

// FromLine derives the sort key for a single line. It is a pure function of
// the line and the config:
//
//   - UseEntireLine: the key is the whole line; found iff non-empty.
//   - DictionaryOrder: the key is the first maximal run of letters, skipping
//     leading non-letter runes.
//   - otherwise: the key is the first whitespace-delimited token.
func FromLine(line string, cfg models.SortConfig) Key {
	if cfg.UseEntireLine {
		return Key{
			Text:  line,
			Found: line != "",
			Start: 0,
			Width: utf8.RuneCountInString(line),
		}
	}
	if cfg.DictionaryOrder {
		return dictionaryWord(line)
	}
	return whitespaceToken(line)
}

// dictionaryWord finds the first run of alphabetic runes in line.
func dictionaryWord(line string) Key {
	col := 0
	start := -1
	startByte := 0
	for i, r := range line {
		if unicode.IsLetter(r) {
			start = col
			startByte = i
			break
		}
		col++
	}
	if start == -1 {
		return Key{Start: -1}
	}

	width := 0
	endByte := len(line)
	for i, r := range line[startByte:] {
		if !unicode.IsLetter(r) {
			endByte = startByte + i
			break
		}
		width++
	}

	return Key{
		Text:  line[startByte:endByte],
		Found: true,
		Start: start,
		Width: width,
	}
}

// whitespaceToken finds the first whitespace-delimited token in line.
func whitespaceToken(line string) Key {
	col := 0
	start := -1
	startByte := 0
	for i, r := range line {
		if !unicode.IsSpace(r) {
			start = col
			startByte = i
			break
		}
		col++
	}
	if start == -1 {
		return Key{Start: -1}
	}

	width := 0
	endByte := len(line)
	for i, r := range line[startByte:] {
		if unicode.IsSpace(r) {
			endByte = startByte + i
			break
		}
		width++
	}

	return Key{
		Text:  line[startByte:endByte],
		Found: true,
		Start: start,
		Width: width,
	}
}
