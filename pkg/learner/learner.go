// Package learner implements the cartesian-enumeration algorithm that,
// given a word and its token decomposition, persists the word and the
// bounded cartesian product of its alternative romanizations (spec
// §4.2, §9).
package learner

import (
	"context"
	"log/slog"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/google/uuid"

	"github.com/varnam/knownwords/pkg/config"
	"github.com/varnam/knownwords/pkg/store"
	"github.com/varnam/knownwords/pkg/token"
)

// Learner persists words and their alternative romanizations into a
// store.Store. It is not safe for concurrent use — it owns the same
// per-handle scratch pools the store's handle does.
type Learner struct {
	store    store.Store
	renderer token.Renderer
	log      *slog.Logger

	offsets *store.Pool[[]int]
	tuples  *store.Pool[[]token.Token]
}

// New creates a Learner over store s, rendering prefix completions
// through renderer r.
func New(s store.Store, r token.Renderer, log *slog.Logger) *Learner {
	if log == nil {
		log = slog.Default()
	}
	return &Learner{
		store:    s,
		renderer: r,
		log:      log,
		offsets: store.NewPool(
			func() []int { return nil },
			func(o []int) []int { return o[:0] },
		),
		tuples: store.NewPool(
			func() []token.Token { return nil },
			func(t []token.Token) []token.Token { return t[:0] },
		),
	}
}

// Learn persists word into the store, then walks the cartesian product
// of alt, persisting each full pattern (learned=true) and its proper
// prefixes (learned=false) up to config.MaxPatternsPerWord full
// patterns, per spec §4.2.
//
// alt must be non-empty; each inner slice must be non-empty. confidence
// is used only when word is being inserted for the first time.
func (l *Learner) Learn(ctx context.Context, word string, alt [][]token.Token, confidence int) error {
	if word == "" {
		return EmptyWordError()
	}
	if len(alt) == 0 {
		return EmptyDecompositionError()
	}
	for _, li := range alt {
		if len(li) == 0 {
			return EmptyDecompositionError()
		}
	}
	if confidence < 1 {
		confidence = 1
	}

	sessionID := uuid.NewString()
	log := l.log.With("session", sessionID, "word", word)
	start := time.Now()

	wordID, inserted, err := l.store.LearnWord(ctx, word, confidence)
	if err != nil {
		return err
	}
	log.Debug("learned word row", "id", wordID, "inserted", inserted)

	k := len(alt)
	offsets := l.offsets.Borrow()
	defer func() { l.offsets.Return(offsets) }()
	for len(offsets) < k {
		offsets = append(offsets, 0)
	}

	tuple := l.tuples.Borrow()
	defer func() { l.tuples.Return(tuple) }()

	// Gates whether learnPrefixes inserts a new word row: false only for
	// the first tuple of the whole walk, true for every tuple after
	// (spec §4.2's word_already_learned, threaded across the entire
	// cartesian enumeration, not reset per tuple).
	wordAlreadyLearned := false

	fullCount := 0
	for fullCount < config.MaxPatternsPerWord {
		tuple = tuple[:0]
		for i, li := range alt {
			tuple = append(tuple, li[offsets[i]])
		}

		pattern := token.Pattern(tuple)
		if err := l.store.InsertPattern(ctx, pattern, wordID, false); err != nil {
			return err
		}
		fullCount++

		if err := l.learnPrefixes(ctx, tuple, wordAlreadyLearned); err != nil {
			return err
		}
		wordAlreadyLearned = true

		if !advance(offsets, alt) {
			break
		}
	}

	log.Info("learn complete",
		"full_patterns", fullCount,
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return nil
}

// advance increments the rightmost offset, carrying left on wraparound
// (spec §4.2, §9: "a single offset vector + carry"). It reports
// whether another tuple remains.
func advance(offsets []int, alt [][]token.Token) bool {
	for i := len(offsets) - 1; i >= 0; i-- {
		offsets[i]++
		if offsets[i] < len(alt[i]) {
			return true
		}
		offsets[i] = 0
	}
	return false
}

// learnPrefixes implements spec §4.2's learn_prefixes: for every
// length m in [2, k-1], resolve tok[0:m] to a rendered word-text and
// record the concatenation of its patterns as a prefix pattern
// (learned=false) against that word. wordAlreadyLearned, threaded in
// from the outer cartesian walk, gates whether the rendered word is
// inserted here at all — once it is true for the walk, every
// subsequent tuple only looks its prefix words up by id. Single-token
// prefixes (m=1) are never learned (too ambiguous), hence m starts
// at 2.
func (l *Learner) learnPrefixes(ctx context.Context, tuple []token.Token, wordAlreadyLearned bool) error {
	k := len(tuple)
	if k < 3 {
		// No m in [2, k-1] exists for k < 3.
		return nil
	}

	for m := 2; m < k; m++ {
		prefixTokens := tuple[:m]

		rendered, err := l.renderer.Render(ctx, prefixTokens)
		if err != nil {
			return err
		}

		if !wordAlreadyLearned {
			if _, _, err := l.store.LearnWord(ctx, rendered.Text, 1); err != nil {
				return err
			}
		}

		prefixWordID, err := l.store.WordIDOf(ctx, rendered.Text)
		if err != nil {
			return err
		}

		pattern := token.Pattern(prefixTokens)
		if err := l.store.InsertPattern(ctx, pattern, prefixWordID, true); err != nil {
			return err
		}
	}
	return nil
}
