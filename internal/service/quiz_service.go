package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"persona-matcher/internal/domain"
	"persona-matcher/internal/quiz"
)

// QuizService wraps the quiz engine with session lifetime management: it owns
// the TTL sweep loop and is the only layer that touches the engine from HTTP.
type QuizService struct {
	logger        *zap.Logger
	engine        *quiz.Engine
	sessionTTL    time.Duration
	sweepInterval time.Duration
}

func NewQuizService(logger *zap.Logger, engine *quiz.Engine, sessionTTL, sweepInterval time.Duration) *QuizService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	if sweepInterval <= 0 {
		sweepInterval = time.Hour
	}
	return &QuizService{
		logger:        logger,
		engine:        engine,
		sessionTTL:    sessionTTL,
		sweepInterval: sweepInterval,
	}
}

// Start creates a session and hands back the first question. A nil question
// here means an empty bank, which is a deployment mistake, not a user error;
// it still flows back as a completed quiz rather than panicking.
func (s *QuizService) Start(ctx context.Context, productType string) (domain.QuizSession, *domain.QuizQuestion, error) {
	session, err := s.engine.CreateSession(ctx, productType)
	if err != nil {
		return domain.QuizSession{}, nil, err
	}
	question, err := s.engine.NextQuestion(ctx, session.ID)
	if err != nil {
		return domain.QuizSession{}, nil, err
	}
	s.logger.Info("quiz session started", zap.String("session_id", session.ID))
	return session, question, nil
}

// Answer records a trait choice and advances. The returned question is nil
// once the bank is exhausted.
func (s *QuizService) Answer(ctx context.Context, sessionID, trait string) (*domain.QuizQuestion, error) {
	return s.engine.RecordAnswerAndAdvance(ctx, sessionID, trait)
}

// Result scores the session.
func (s *QuizService) Result(ctx context.Context, sessionID string) (domain.QuizResult, error) {
	result, err := s.engine.GenerateResult(ctx, sessionID)
	if err != nil {
		return domain.QuizResult{}, err
	}
	s.logger.Info("quiz result generated",
		zap.String("session_id", sessionID),
		zap.String("label", result.PersonalityLabel),
		zap.Int("confidence", result.Confidence),
	)
	return result, nil
}

// StartSweeper runs the periodic TTL eviction until ctx is cancelled.
func (s *QuizService) StartSweeper(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if evicted := s.engine.Sweep(ctx, s.sessionTTL); evicted > 0 {
					s.logger.Info("quiz sessions evicted", zap.Int("count", evicted))
				}
			}
		}
	}()
}
