// Package pipeline runs raw input lines through key extraction,
// normalization and the inverse sort, producing the ordered result set.
package pipeline

import (
	"runtime"
	"sync"

	"github.com/dtnitsch/ssort/models"
	"github.com/dtnitsch/ssort/pkg/collate"
	"github.com/dtnitsch/ssort/pkg/extract"
	"github.com/dtnitsch/ssort/pkg/sorter"
)

// chunk is one worker job: a contiguous slice of the input.
type chunk struct {
	start int
	lines []string
}

// Process turns lines into an ordered slice of ProcessedLine. Extraction
// and normalization run per line across workers; lines whose extractor
// found no word are dropped when ExcludeNoWord is set, before sorting.
// PaddingInfo is non-nil only when RightAlign is set. workers <= 0 means
// one worker per CPU.
func Process(cfg models.SortConfig, lines []string, workers int) ([]models.ProcessedLine, *models.PaddingInfo) {
	processed := processLines(cfg, lines, workers)

	var pad *models.PaddingInfo
	if cfg.RightAlign {
		pad = paddingInfo(cfg, processed)
	}

	sorter.Sort(processed, keyComparator(cfg), cfg.Stable, workers)

	return processed, pad
}

// keyComparator orders ProcessedLines by their precomputed SortKeys, so the
// normalization cost is paid once per line rather than once per comparison.
// Equal keys carry no tiebreak here; the driver's stable merge keeps input
// order when Stable is set, and tie order is unspecified otherwise.
func keyComparator(cfg models.SortConfig) func(a, b models.ProcessedLine) int {
	return func(a, b models.ProcessedLine) int {
		c := collate.Compare(a.SortKey, b.SortKey)
		if cfg.Reverse {
			c = -c
		}
		return c
	}
}

// processLines fans the input out to a pool of workers, one contiguous
// chunk per job, and reassembles the surviving lines in input order.
func processLines(cfg models.SortConfig, lines []string, workers int) []models.ProcessedLine {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(lines) {
		workers = len(lines)
	}
	if workers <= 1 {
		return processChunk(cfg, chunk{start: 0, lines: lines})
	}

	size := (len(lines) + workers - 1) / workers
	chunks := make([]chunk, 0, workers)
	for start := 0; start < len(lines); start += size {
		end := start + size
		if end > len(lines) {
			end = len(lines)
		}
		chunks = append(chunks, chunk{start: start, lines: lines[start:end]})
	}

	// Results are keyed by chunk index, not worker, so the concatenation
	// below restores input order no matter which worker ran which chunk.
	results := make([][]models.ProcessedLine, len(chunks))
	jobs := make(chan int, len(chunks))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = processChunk(cfg, chunks[i])
			}
		}()
	}
	for i := range chunks {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	out := make([]models.ProcessedLine, 0, len(lines))
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}

// processChunk extracts and normalizes one contiguous run of lines.
func processChunk(cfg models.SortConfig, c chunk) []models.ProcessedLine {
	out := make([]models.ProcessedLine, 0, len(c.lines))
	for i, line := range c.lines {
		k := extract.FromLine(line, cfg)
		if cfg.ExcludeNoWord && !k.Found {
			continue
		}
		out = append(out, models.ProcessedLine{
			Original:  line,
			Key:       k.Text,
			SortKey:   collate.SortKey(k.Text, cfg),
			Index:     c.start + i,
			HasWord:   k.Found,
			WordStart: k.Start,
			WordWidth: k.Width,
		})
	}
	return out
}

// paddingInfo computes the alignment target for right-aligned output over
// the whole surviving set. Dictionary-order extraction (without whole-line
// keys or word-only output) aligns on the end column of each first word;
// every other mode aligns on key width.
func paddingInfo(cfg models.SortConfig, processed []models.ProcessedLine) *models.PaddingInfo {
	pad := &models.PaddingInfo{
		UseEndPos: cfg.DictionaryOrder && !cfg.UseEntireLine && !cfg.WordOnly,
	}
	for _, p := range processed {
		var w int
		if pad.UseEndPos {
			if !p.HasWord {
				continue
			}
			w = p.WordStart + p.WordWidth
		} else {
			w = p.WordWidth
		}
		if w > pad.MaxWidth {
			pad.MaxWidth = w
		}
	}
	return pad
}
