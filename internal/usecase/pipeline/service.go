package pipeline

import (
	"context"
	"encoding/json"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/turtlefinance/meeting-sync/errors"
	"github.com/turtlefinance/meeting-sync/internal/domain/entities"
	"github.com/turtlefinance/meeting-sync/internal/infrastructure/cache"
	"github.com/turtlefinance/meeting-sync/internal/usecase/summarize"
	syncengine "github.com/turtlefinance/meeting-sync/internal/usecase/sync"
	"github.com/turtlefinance/meeting-sync/internal/usecase/transcript"
	"github.com/turtlefinance/meeting-sync/pkg/webhook"
)

// TranscriptionCompletedEvent is the provider event type that triggers
// processing; every other event type is acknowledged and ignored.
const TranscriptionCompletedEvent = "Transcription completed"

// claimTTL bounds how long a meeting id stays claimed while its background
// processing runs. Webhook providers redeliver aggressively; a claim keeps
// the duplicate from racing the first delivery through the pipeline.
const claimTTL = 10 * time.Minute

// Fetcher retrieves the transcripts recorded for one meeting.
type Fetcher interface {
	FetchTranscript(ctx context.Context, transcriptID string) ([]entities.Transcript, error)
}

// Service defines the webhook-to-destinations orchestration methods.
type Service interface {
	HandleFirefliesWebhook(ctx context.Context, payload []byte, signature string) error
	ProcessMeeting(ctx context.Context, meetingID string) error
}

type pipelineService struct {
	fetcher       Fetcher
	summarizer    summarize.Service
	engine        *syncengine.Engine
	guard         *cache.ProcessingGuard
	webhookSecret string
	callDelay     time.Duration
	logger        *zap.Logger
}

// webhookPayload is the provider notification body.
type webhookPayload struct {
	MeetingID string `json:"meetingId" validate:"required"`
	EventType string `json:"eventType"`
}

var payloadValidator = validatorv10.New()

// NewService constructs the meeting processing pipeline.
func NewService(
	fetcher Fetcher,
	summarizer summarize.Service,
	engine *syncengine.Engine,
	webhookSecret string,
	callDelay time.Duration,
	logger *zap.Logger,
) Service {
	return &pipelineService{
		fetcher:       fetcher,
		summarizer:    summarizer,
		engine:        engine,
		guard:         cache.NewProcessingGuard(),
		webhookSecret: webhookSecret,
		callDelay:     callDelay,
		logger:        logger,
	}
}

// HandleFirefliesWebhook authenticates and parses a provider notification.
// Processing runs in the background so the provider gets its acknowledgement
// before the transcript fetch and model calls begin.
func (s *pipelineService) HandleFirefliesWebhook(ctx context.Context, payload []byte, signature string) error {
	if signature == "" {
		return errors.ErrMissingSignature()
	}
	if !webhook.VerifyHMAC(s.webhookSecret, payload, signature) {
		s.logger.Warn("webhook signature rejected")
		return errors.ErrInvalidSignature()
	}

	var body webhookPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return errors.ErrInvalidPayload().WithDetail("error", err.Error())
	}
	if err := payloadValidator.Struct(body); err != nil {
		return errors.ErrInvalidPayload().WithDetail("error", err.Error())
	}

	s.logger.Info("📥 Received Fireflies webhook",
		zap.String("meeting_id", body.MeetingID),
		zap.String("event_type", body.EventType),
	)

	if body.EventType != TranscriptionCompletedEvent {
		s.logger.Info("ignoring webhook event type",
			zap.String("event_type", body.EventType),
		)
		return nil
	}

	if !s.guard.TryClaim(body.MeetingID, claimTTL) {
		s.logger.Info("meeting already being processed, ignoring redelivery",
			zap.String("meeting_id", body.MeetingID),
		)
		return nil
	}

	runID := uuid.New()
	go func() {
		bg := context.Background()
		if err := s.ProcessMeeting(bg, body.MeetingID); err != nil {
			// Release so the provider's redelivery can retry the meeting.
			s.guard.Release(body.MeetingID)
			s.logger.Error("❌ Meeting processing failed",
				zap.String("run_id", runID.String()),
				zap.String("meeting_id", body.MeetingID),
				zap.Error(err),
			)
			return
		}
		s.logger.Info("✅ Meeting processing complete",
			zap.String("run_id", runID.String()),
			zap.String("meeting_id", body.MeetingID),
		)
	}()

	return nil
}

// ProcessMeeting fetches, summarizes and syncs every transcript recorded for
// the meeting. Transcripts are processed sequentially with a fixed pause
// between them to stay under provider rate limits.
func (s *pipelineService) ProcessMeeting(ctx context.Context, meetingID string) error {
	transcripts, err := s.fetcher.FetchTranscript(ctx, meetingID)
	if err != nil {
		return errors.ErrTranscriptFetchFailed(meetingID, err)
	}
	if len(transcripts) == 0 {
		s.logger.Warn("no transcripts returned for meeting",
			zap.String("meeting_id", meetingID),
		)
		return nil
	}

	s.logger.Info("🔄 Processing meeting transcripts",
		zap.String("meeting_id", meetingID),
		zap.Int("transcripts", len(transcripts)),
	)

	for i := range transcripts {
		s.processTranscript(ctx, &transcripts[i])

		if i < len(transcripts)-1 {
			select {
			case <-time.After(s.callDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return nil
}

// processTranscript enriches and syncs one transcript. A summarization
// failure is logged and the transcript still reaches the destinations
// without enrichment.
func (s *pipelineService) processTranscript(ctx context.Context, t *entities.Transcript) {
	text := transcript.Format([]entities.Transcript{*t})
	formattedDate := transcript.FormatMeetingDate(t.Date)

	result, err := s.summarizer.Summarize(ctx, text, formattedDate)
	if err != nil {
		s.logger.Error("summarization failed, syncing without enrichment",
			zap.String("transcript_id", t.ID),
			zap.Error(errors.ErrSummarizationFailed(t.ID, err)),
		)
	} else {
		t.Summary = result.MeetingSummary
		t.ActionItems = result.ActionItems
	}

	s.engine.Sync(ctx, t)
}
