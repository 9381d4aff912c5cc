package quiz

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"persona-matcher/internal/domain"
)

func testEngine(bank []domain.QuizQuestion, seed int64) *Engine {
	return NewEngine(NewMemorySessionStore(0), bank, rand.New(rand.NewSource(seed)))
}

func twoQuestionBank() []domain.QuizQuestion {
	return []domain.QuizQuestion{
		{
			Text: "first question",
			Options: []domain.QuizOption{
				{Label: "a", Trait: domain.TraitBoldness, Weights: map[string]int{domain.TraitBoldness: 80}},
				{Label: "b", Trait: domain.TraitElegance, Weights: map[string]int{domain.TraitElegance: 80}},
			},
		},
		{
			Text: "second question",
			Options: []domain.QuizOption{
				{Label: "a", Trait: domain.TraitBoldness, Weights: map[string]int{domain.TraitBoldness: 70}},
				{Label: "b", Trait: domain.TraitWhimsy, Weights: map[string]int{domain.TraitWhimsy: 70}},
			},
		},
	}
}

func TestEngine_NoRepeatAndTermination(t *testing.T) {
	ctx := context.Background()
	engine := testEngine(twoQuestionBank(), 1)

	session, err := engine.CreateSession(ctx, "")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	first, err := engine.NextQuestion(ctx, session.ID)
	if err != nil {
		t.Fatalf("next question: %v", err)
	}
	if first == nil {
		t.Fatalf("expected a bootstrap question")
	}

	second, err := engine.RecordAnswerAndAdvance(ctx, session.ID, domain.TraitBoldness)
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if second == nil {
		t.Fatalf("expected a second question, bank not exhausted yet")
	}
	if second.Text == first.Text {
		t.Fatalf("engine repeated question %q", first.Text)
	}

	done, err := engine.RecordAnswerAndAdvance(ctx, session.ID, domain.TraitBoldness)
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if done != nil {
		t.Fatalf("expected nil after exhausting the bank, got %q", done.Text)
	}
}

func TestEngine_TraitFilterPrefersMatchingQuestions(t *testing.T) {
	ctx := context.Background()
	bank := []domain.QuizQuestion{
		{
			Text: "boldness question",
			Options: []domain.QuizOption{
				{Label: "a", Trait: domain.TraitBoldness},
				{Label: "b", Trait: domain.TraitElegance},
			},
		},
		{
			Text: "whimsy-only question",
			Options: []domain.QuizOption{
				{Label: "a", Trait: domain.TraitWhimsy},
				{Label: "b", Trait: TraitRomance},
			},
		},
		{
			Text: "another boldness question",
			Options: []domain.QuizOption{
				{Label: "a", Trait: domain.TraitBoldness},
				{Label: "b", Trait: TraitConfidence},
			},
		},
	}

	// Run the same flow across many seeds: after answering boldness the
	// engine must never jump to the whimsy-only question while a boldness
	// question remains unasked.
	for seed := int64(0); seed < 20; seed++ {
		engine := testEngine(bank, seed)
		session, err := engine.CreateSession(ctx, "")
		if err != nil {
			t.Fatalf("create session: %v", err)
		}
		next, err := engine.RecordAnswerAndAdvance(ctx, session.ID, domain.TraitBoldness)
		if err != nil {
			t.Fatalf("record answer: %v", err)
		}
		if next == nil {
			t.Fatalf("expected a follow-up question")
		}
		if next.Text == "whimsy-only question" {
			t.Fatalf("seed %d: engine ignored the trait filter", seed)
		}
	}
}

func TestEngine_FallsBackWhenNoTraitMatch(t *testing.T) {
	ctx := context.Background()
	bank := []domain.QuizQuestion{
		{
			Text: "whimsy-only question",
			Options: []domain.QuizOption{
				{Label: "a", Trait: domain.TraitWhimsy},
			},
		},
	}
	engine := testEngine(bank, 3)

	session, err := engine.CreateSession(ctx, "")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	// No question offers boldness; the engine must fall back to any
	// unasked question rather than terminating early.
	next, err := engine.RecordAnswerAndAdvance(ctx, session.ID, domain.TraitBoldness)
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if next == nil || next.Text != "whimsy-only question" {
		t.Fatalf("expected fallback to the remaining question, got %v", next)
	}
}

func TestEngine_DeterministicForFixedSeed(t *testing.T) {
	ctx := context.Background()

	run := func() []string {
		engine := testEngine(DefaultBank(), 42)
		session, err := engine.CreateSession(ctx, "")
		if err != nil {
			t.Fatalf("create session: %v", err)
		}
		var asked []string
		q, err := engine.NextQuestion(ctx, session.ID)
		if err != nil {
			t.Fatalf("next question: %v", err)
		}
		for q != nil {
			asked = append(asked, q.Text)
			q, err = engine.RecordAnswerAndAdvance(ctx, session.ID, q.Options[0].Trait)
			if err != nil {
				t.Fatalf("record answer: %v", err)
			}
		}
		return asked
	}

	first := run()
	second := run()
	if len(first) != len(DefaultBank()) {
		t.Fatalf("expected every question asked once, got %d of %d", len(first), len(DefaultBank()))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("fixed seed produced different order at turn %d: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestEngine_SessionInvariantLockstep(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore(0)
	engine := NewEngine(store, DefaultBank(), rand.New(rand.NewSource(7)))

	session, err := engine.CreateSession(ctx, "crossbody")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if _, err := engine.NextQuestion(ctx, session.ID); err != nil {
		t.Fatalf("next question: %v", err)
	}

	for turn := 0; turn < 5; turn++ {
		if _, err := engine.RecordAnswerAndAdvance(ctx, session.ID, domain.TraitBoldness); err != nil {
			t.Fatalf("record answer: %v", err)
		}
		current, err := store.Get(ctx, session.ID)
		if err != nil {
			t.Fatalf("get session: %v", err)
		}
		asked, answered := len(current.AskedQuestions), len(current.SelectedTraits)
		if asked != answered && asked != answered+1 {
			t.Fatalf("asked/answer lists out of lockstep: %d asked, %d answered", asked, answered)
		}
		seen := make(map[string]bool)
		for _, text := range current.AskedQuestions {
			if seen[text] {
				t.Fatalf("duplicate question in asked list: %q", text)
			}
			seen[text] = true
		}
	}
}

func TestEngine_UnknownSessionIsHardError(t *testing.T) {
	ctx := context.Background()
	engine := testEngine(DefaultBank(), 1)

	if _, err := engine.RecordAnswerAndAdvance(ctx, "missing", domain.TraitBoldness); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
	if _, err := engine.NextQuestion(ctx, "missing"); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
	if _, err := engine.GenerateResult(ctx, "missing"); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
}

func TestEngine_GenerateResultRequiresAnswers(t *testing.T) {
	ctx := context.Background()
	engine := testEngine(DefaultBank(), 1)

	session, err := engine.CreateSession(ctx, "")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if _, err := engine.GenerateResult(ctx, session.ID); !errors.Is(err, domain.ErrNoAnswers) {
		t.Fatalf("expected ErrNoAnswers on empty session, got %v", err)
	}
}

func TestEngine_GenerateResultIsIdempotent(t *testing.T) {
	ctx := context.Background()
	engine := testEngine(twoQuestionBank(), 5)

	session, err := engine.CreateSession(ctx, "")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if _, err := engine.NextQuestion(ctx, session.ID); err != nil {
		t.Fatalf("next question: %v", err)
	}
	if _, err := engine.RecordAnswerAndAdvance(ctx, session.ID, domain.TraitBoldness); err != nil {
		t.Fatalf("record answer: %v", err)
	}

	first, err := engine.GenerateResult(ctx, session.ID)
	if err != nil {
		t.Fatalf("generate result: %v", err)
	}
	second, err := engine.GenerateResult(ctx, session.ID)
	if err != nil {
		t.Fatalf("generate result again: %v", err)
	}
	if first.PersonalityLabel != second.PersonalityLabel || first.Confidence != second.Confidence {
		t.Fatalf("expected idempotent results, got %+v then %+v", first, second)
	}
}

func TestEngine_AnswerWithoutOutstandingQuestionRecordsNothing(t *testing.T) {
	ctx := context.Background()
	engine := testEngine(twoQuestionBank(), 7)

	session, err := engine.CreateSession(ctx, "")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	// No bootstrap NextQuestion: the answer has no question to pair with.
	q, err := engine.RecordAnswerAndAdvance(ctx, session.ID, domain.TraitBoldness)
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if q != nil {
		t.Fatalf("expected no question without a bootstrap, got %q", q.Text)
	}
	if _, err := engine.GenerateResult(ctx, session.ID); !errors.Is(err, domain.ErrNoAnswers) {
		t.Fatalf("unpaired answer must not be recorded, got %v", err)
	}
}

func TestEngine_AnswerAfterCompletionKeepsPairing(t *testing.T) {
	ctx := context.Background()
	engine := testEngine(twoQuestionBank(), 8)

	session, err := engine.CreateSession(ctx, "")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if _, err := engine.NextQuestion(ctx, session.ID); err != nil {
		t.Fatalf("next question: %v", err)
	}
	for i := 0; i < len(twoQuestionBank()); i++ {
		if _, err := engine.RecordAnswerAndAdvance(ctx, session.ID, domain.TraitBoldness); err != nil {
			t.Fatalf("record answer %d: %v", i, err)
		}
	}

	before, err := engine.GenerateResult(ctx, session.ID)
	if err != nil {
		t.Fatalf("generate result: %v", err)
	}

	q, err := engine.RecordAnswerAndAdvance(ctx, session.ID, domain.TraitWhimsy)
	if err != nil {
		t.Fatalf("record answer after completion: %v", err)
	}
	if q != nil {
		t.Fatalf("completed quiz must not resume, got %q", q.Text)
	}

	after, err := engine.GenerateResult(ctx, session.ID)
	if err != nil {
		t.Fatalf("generate result again: %v", err)
	}
	if len(after.TraitScores) != len(before.TraitScores) || after.Confidence != before.Confidence {
		t.Fatalf("late answer leaked into the result: %+v then %+v", before, after)
	}
}
