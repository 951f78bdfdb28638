// Package render projects ordered ProcessedLines into final output strings.
package render

import (
	"strings"

	"github.com/dtnitsch/ssort/models"
)

// Project formats one output string per processed line, in order.
//
//   - default: the original line, unchanged
//   - WordOnly: just the original-case key (with UseEntireLine the key
//     already is the whole line, so output matches the default)
//   - RightAlign: the key column is left-padded with spaces to pad.MaxWidth;
//     in the dictionary-order end-position mode, whole lines are padded so
//     first words end on the same column, and lines with no word print
//     unpadded
//
// Alignment is cosmetic only; order is untouched.
func Project(processed []models.ProcessedLine, pad *models.PaddingInfo, cfg models.SortConfig) []string {
	out := make([]string, 0, len(processed))
	for _, p := range processed {
		out = append(out, projectLine(p, pad, cfg))
	}
	return out
}

func projectLine(p models.ProcessedLine, pad *models.PaddingInfo, cfg models.SortConfig) string {
	if cfg.WordOnly && !cfg.UseEntireLine {
		if pad != nil {
			return leftPad(p.Key, pad.MaxWidth-p.WordWidth)
		}
		return p.Key
	}

	if pad == nil {
		return p.Original
	}

	if pad.UseEndPos {
		if !p.HasWord {
			return p.Original
		}
		return leftPad(p.Original, pad.MaxWidth-(p.WordStart+p.WordWidth))
	}
	return leftPad(p.Original, pad.MaxWidth-p.WordWidth)
}

func leftPad(s string, n int) string {
	if n <= 0 {
		return s
	}
	return strings.Repeat(" ", n) + s
}
