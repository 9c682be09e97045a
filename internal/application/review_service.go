package application

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/openkraft/kraftreview/internal/domain"
	"github.com/openkraft/kraftreview/internal/domain/review"
)

// ReviewService orchestrates a review:
// load source → run the rule pipeline → record metrics → log.
type ReviewService struct {
	reviewer *review.Reviewer
	recorder domain.ReviewRecorder
	logger   *zap.Logger
}

// Option customizes a ReviewService.
type Option func(*ReviewService)

// WithRecorder attaches a metrics recorder.
func WithRecorder(r domain.ReviewRecorder) Option {
	return func(s *ReviewService) { s.recorder = r }
}

// WithLogger attaches a logger. The default discards output.
func WithLogger(l *zap.Logger) Option {
	return func(s *ReviewService) { s.logger = l }
}

// WithEngine replaces the default rule engine.
func WithEngine(e *review.Engine) Option {
	return func(s *ReviewService) { s.reviewer = review.NewReviewer(e) }
}

func NewReviewService(opts ...Option) *ReviewService {
	s := &ReviewService{
		reviewer: review.NewReviewer(nil),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReviewCode reviews a block of source text. The only error is a done
// context; the pipeline itself cannot fail.
func (s *ReviewService) ReviewCode(ctx context.Context, code string) (*domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("review canceled: %w", err)
	}

	start := time.Now()
	report := s.reviewer.Review(code)
	elapsed := time.Since(start)

	if s.recorder != nil {
		s.recorder.RecordReview(report, elapsed)
	}
	s.logger.Debug("code reviewed",
		zap.Int("bytes", len(code)),
		zap.Int("issues", len(report.Issues)),
		zap.Int("suggestions", len(report.Suggestions)),
		zap.Int("score", report.Scores.Overall),
		zap.Duration("elapsed", elapsed),
	)
	return &report, nil
}

// ReviewSource loads the referenced text and reviews it.
func (s *ReviewService) ReviewSource(ctx context.Context, loader domain.SourceLoader, ref domain.SourceRef) (*domain.Report, error) {
	code, err := loader.Load(ref)
	if err != nil {
		return nil, fmt.Errorf("loading source: %w", err)
	}
	return s.ReviewCode(ctx, code)
}

// Rules lists the installed rules in evaluation order.
func (s *ReviewService) Rules() []domain.RuleInfo {
	return s.reviewer.Rules()
}
