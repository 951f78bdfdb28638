// Package sorter provides a parallel sort driver that works with any
// comparison function.
package sorter

import (
	"runtime"
	"slices"
	"sync"
)

// serialThreshold is the slice length below which the parallel machinery
// costs more than it saves.
const serialThreshold = 4096

// Sort orders items in place using cmp. With stable set, elements that
// compare equal keep their original relative order regardless of the worker
// count; without it, tie order is unspecified and the per-chunk sorts take
// the faster unstable path. workers <= 0 means one worker per CPU.
func Sort[T any](items []T, cmp func(a, b T) int, stable bool, workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers == 1 || len(items) < serialThreshold {
		sortChunk(items, cmp, stable)
		return
	}

	// Split into contiguous chunks, sort each concurrently, then merge
	// pairwise. Chunks stay in input order and the merge takes the left
	// side on ties, so the combined result is stable whenever the chunk
	// sorts were.
	chunks := splitChunks(items, workers)

	var wg sync.WaitGroup
	for _, c := range chunks {
		wg.Add(1)
		go func(c []T) {
			defer wg.Done()
			sortChunk(c, cmp, stable)
		}(c)
	}
	wg.Wait()

	mergeAll(items, chunks, cmp)
}

func sortChunk[T any](c []T, cmp func(a, b T) int, stable bool) {
	if stable {
		slices.SortStableFunc(c, cmp)
		return
	}
	slices.SortFunc(c, cmp)
}

// splitChunks slices items into at most n contiguous, non-empty chunks.
func splitChunks[T any](items []T, n int) [][]T {
	size := (len(items) + n - 1) / n
	chunks := make([][]T, 0, n)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}

// mergeAll repeatedly merges adjacent chunk pairs until one remains, then
// copies the result back into items. Each round merges its pairs
// concurrently.
func mergeAll[T any](items []T, chunks [][]T, cmp func(a, b T) int) {
	orig := items
	buf := make([]T, len(items))
	for len(chunks) > 1 {
		next := make([][]T, 0, (len(chunks)+1)/2)
		var wg sync.WaitGroup
		off := 0
		for i := 0; i < len(chunks); i += 2 {
			if i+1 == len(chunks) {
				// Odd chunk out: carry it to the next round unmerged.
				dst := buf[off : off+len(chunks[i])]
				copy(dst, chunks[i])
				next = append(next, dst)
				break
			}
			left, right := chunks[i], chunks[i+1]
			dst := buf[off : off+len(left)+len(right)]
			off += len(dst)
			next = append(next, dst)
			wg.Add(1)
			go func(dst, left, right []T) {
				defer wg.Done()
				merge(dst, left, right, cmp)
			}(dst, left, right)
		}
		wg.Wait()
		items, buf = buf, items
		chunks = next
	}
	if len(chunks) == 1 && len(chunks[0]) > 0 && &chunks[0][0] != &orig[0] {
		copy(orig, chunks[0])
	}
}

// merge combines two sorted runs into dst, preferring the left run on equal
// elements. That preference is what preserves stability across rounds.
func merge[T any](dst, left, right []T, cmp func(a, b T) int) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if cmp(left[i], right[j]) <= 0 {
			dst[k] = left[i]
			i++
		} else {
			dst[k] = right[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], left[i:])
	copy(dst[k:], right[j:])
}
