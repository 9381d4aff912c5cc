package quiz

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"persona-matcher/internal/domain"
)

// Engine drives the adaptive questionnaire: never asks the same question
// twice, branches on the single most recent answer, and signals completion
// by returning a nil question once the bank is exhausted. The branching is
// deliberately memoryless beyond the last answer — it keeps selection O(bank)
// per turn instead of searching the whole answer history.
type Engine struct {
	store SessionStore
	bank  []domain.QuizQuestion

	// rng is injectable so tests can assert exact selection for a fixed
	// seed. rand.Rand is not goroutine safe, hence the guard.
	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewEngine builds an engine over a session store and question bank. A nil
// rng falls back to a time-seeded source.
func NewEngine(store SessionStore, bank []domain.QuizQuestion, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		store: store,
		bank:  bank,
		rng:   rng,
	}
}

// CreateSession registers a fresh session and returns it. The caller follows
// up with NextQuestion to bootstrap the first turn.
func (e *Engine) CreateSession(ctx context.Context, productType string) (domain.QuizSession, error) {
	session := domain.QuizSession{
		ID:          uuid.NewString(),
		ProductType: productType,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	if err := e.store.Create(ctx, session); err != nil {
		return domain.QuizSession{}, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

// NextQuestion picks any not-yet-asked question with no trait constraint (the
// bootstrap turn has no answer history to branch on). Returns nil when the
// bank is exhausted; that is the normal termination signal, not an error.
func (e *Engine) NextQuestion(ctx context.Context, sessionID string) (*domain.QuizQuestion, error) {
	var picked *domain.QuizQuestion
	err := e.store.Update(ctx, sessionID, func(s *domain.QuizSession) error {
		picked = e.pick(candidates(e.bank, s.AskedQuestions, ""))
		if picked != nil {
			s.AskedQuestions = append(s.AskedQuestions, picked.Text)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return picked, nil
}

// RecordAnswerAndAdvance appends the selected trait, then selects the next
// question: an unasked question offering the just-chosen trait when one
// exists, otherwise any unasked question, otherwise nil (quiz complete).
// The whole turn runs inside the store's per-session update.
//
// Answer n is attributed to asked question n when scoring, so an answer is
// only recorded while a question is outstanding (NextQuestion issues the
// first one). An answer with nothing outstanding, including any answer after
// completion, records nothing and reports the quiz as complete.
func (e *Engine) RecordAnswerAndAdvance(ctx context.Context, sessionID, selectedTrait string) (*domain.QuizQuestion, error) {
	var picked *domain.QuizQuestion
	err := e.store.Update(ctx, sessionID, func(s *domain.QuizSession) error {
		if len(s.SelectedTraits) >= len(s.AskedQuestions) {
			return nil
		}
		s.SelectedTraits = append(s.SelectedTraits, selectedTrait)

		picked = e.pick(candidates(e.bank, s.AskedQuestions, selectedTrait))
		if picked == nil {
			picked = e.pick(candidates(e.bank, s.AskedQuestions, ""))
		}
		if picked != nil {
			s.AskedQuestions = append(s.AskedQuestions, picked.Text)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return picked, nil
}

// GenerateResult scores the session. Valid once at least one answer has been
// recorded; idempotent — the session is read, never mutated.
func (e *Engine) GenerateResult(ctx context.Context, sessionID string) (domain.QuizResult, error) {
	session, err := e.store.Get(ctx, sessionID)
	if err != nil {
		return domain.QuizResult{}, err
	}
	if len(session.SelectedTraits) == 0 {
		return domain.QuizResult{}, domain.ErrNoAnswers
	}
	return scoreSession(session, e.bank), nil
}

// EndSession drops the session explicitly (TTL expiry covers the rest).
func (e *Engine) EndSession(ctx context.Context, sessionID string) error {
	return e.store.Delete(ctx, sessionID)
}

// Sweep evicts sessions older than maxAge.
func (e *Engine) Sweep(ctx context.Context, maxAge time.Duration) int {
	return e.store.Sweep(ctx, maxAge)
}

// candidates filters the bank to unasked questions; with a non-empty trait it
// additionally requires the trait to appear among the question's options.
func candidates(bank []domain.QuizQuestion, asked []string, trait string) []domain.QuizQuestion {
	out := make([]domain.QuizQuestion, 0, len(bank))
	for _, q := range bank {
		if containsString(asked, q.Text) {
			continue
		}
		if trait != "" && !q.HasTrait(trait) {
			continue
		}
		out = append(out, q)
	}
	return out
}

// pick chooses uniformly at random from the candidate set.
func (e *Engine) pick(set []domain.QuizQuestion) *domain.QuizQuestion {
	if len(set) == 0 {
		return nil
	}
	e.rngMu.Lock()
	idx := e.rng.Intn(len(set))
	e.rngMu.Unlock()
	q := set[idx]
	return &q
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
