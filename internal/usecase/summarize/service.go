package summarize

import (
	"context"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/turtlefinance/meeting-sync/errors"
)

// Generator is the generative-model collaborator: one prompt in, one text
// reply out.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Service produces a summary and action items for one transcript segment.
type Service interface {
	Summarize(ctx context.Context, transcriptText, formattedDate string) (*Result, error)
}

type service struct {
	generator Generator
	parser    *Parser
	logger    *zap.Logger
}

// NewService constructs a summarization service backed by a generative model.
func NewService(generator Generator, logger *zap.Logger) Service {
	return &service{
		generator: generator,
		parser:    NewParser(),
		logger:    logger,
	}
}

// Summarize sends the formatted transcript text and date to the model and
// parses the constrained JSON reply. The model call is retried with
// exponential backoff; a parse failure is not retried, the reply is already
// in hand and will not change.
func (s *service) Summarize(ctx context.Context, transcriptText, formattedDate string) (*Result, error) {
	prompt := BuildPrompt(transcriptText, formattedDate)

	var raw string
	callFn := func() error {
		var err error
		raw, err = s.generator.GenerateContent(ctx, prompt)
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 15 * time.Second
	bo.MaxElapsedTime = 60 * time.Second

	if err := backoff.Retry(callFn, backoff.WithContext(bo, ctx)); err != nil {
		if s.logger != nil {
			s.logger.Error("model call failed after retries", zap.Error(err))
		}
		return nil, err
	}

	result, err := s.parser.Parse(raw)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("failed to parse model response",
				zap.String("raw_response", raw),
				zap.Error(err),
			)
		}
		return nil, errors.ErrModelResponseInvalid(err)
	}

	// Backstop for action items the model returned without a deadline.
	for i := range result.ActionItems {
		if result.ActionItems[i].Deadline == "" {
			result.ActionItems[i].Deadline = SynthesizeDeadline(formattedDate)
		}
	}

	return result, nil
}
