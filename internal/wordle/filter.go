// internal/wordle/filter.go
//
// Filter: narrows a dictionary to the words that could still be the secret
// after a guess scored a given mask. A candidate survives exactly when
// scoring the guess against it reproduces the mask.

package wordle

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Consistent reports whether candidate could be the secret given that word
// scored mask. It replays the scorer's reservation order against the
// candidate's own letter budget, so a candidate survives exactly when
// Compute(candidate, word) would reproduce mask.
//
// Candidates whose length differs from word are never consistent.
func Consistent(word string, mask Mask, candidate string) bool {
	n := len(word)
	if len(candidate) != n || len(mask) != n {
		return false
	}
	left := newBudget(candidate)

	// Confirmed positions first; any other position must not repeat the
	// guessed letter, or the scorer would have reported it Correct.
	for i := 0; i < n; i++ {
		same := candidate[i] == word[i]
		if mask[i] == Correct {
			if !same {
				return false
			}
			left[word[i]]--
			continue
		}
		if same {
			return false
		}
	}

	// Then the left-to-right scan over the remaining budget.
	for i := 0; i < n; i++ {
		c := word[i]
		switch mask[i] {
		case Misplaced:
			if left[c] <= 0 {
				return false
			}
			left[c]--
		case Wrong:
			if left[c] > 0 {
				return false
			}
		}
	}
	return true
}

// Filter returns the words of dict that remain possible secrets after word
// scored mask. The input is never modified; the result keeps dict's order.
// Entries whose length differs from word are skipped.
//
// Returns ErrInvalidInput if mask and word differ in length.
func Filter(word string, mask Mask, dict []string) ([]string, error) {
	if len(mask) != len(word) {
		return nil, fmt.Errorf("filter: mask has %d positions, word has %d letters: %w",
			len(mask), len(word), ErrInvalidInput)
	}
	out := make([]string, 0, len(dict)/4+1)
	for _, w := range dict {
		if Consistent(word, mask, w) {
			out = append(out, w)
		}
	}
	return out, nil
}

// minChunk keeps tiny dictionaries on a single goroutine.
const minChunk = 512

// FilterParallel computes the same result as Filter, splitting dict into
// contiguous chunks evaluated concurrently. Chunk results are concatenated
// in order, so the output is identical to Filter's.
// workers <= 0 means runtime.GOMAXPROCS(0).
func FilterParallel(ctx context.Context, word string, mask Mask, dict []string, workers int) ([]string, error) {
	if len(mask) != len(word) {
		return nil, fmt.Errorf("filter: mask has %d positions, word has %d letters: %w",
			len(mask), len(word), ErrInvalidInput)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := (len(dict) + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}
	if len(dict) <= chunk {
		return Filter(word, mask, dict)
	}

	parts := make([][]string, (len(dict)+chunk-1)/chunk)
	g, ctx := errgroup.WithContext(ctx)
	for p := range parts {
		p := p
		lo := p * chunk
		hi := min(lo+chunk, len(dict))
		g.Go(func() error {
			var kept []string
			for _, w := range dict[lo:hi] {
				if Consistent(word, mask, w) {
					kept = append(kept, w)
				}
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			parts[p] = kept
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]string, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out, nil
}

// Narrow applies every guess in h to dict in order, feeding each result
// into the next call. With no guesses it returns a copy of dict.
func Narrow(h *History, dict []string) ([]string, error) {
	out := append([]string(nil), dict...)
	for _, g := range h.Guesses() {
		var err error
		if out, err = Filter(g.Word, g.Mask, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}
