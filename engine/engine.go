package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/fusionkit/diarization"
	"github.com/kbukum/fusionkit/errors"
	"github.com/kbukum/fusionkit/fusion"
	"github.com/kbukum/fusionkit/logger"
	"github.com/kbukum/fusionkit/observability"
	"github.com/kbukum/fusionkit/speakers"
	"github.com/kbukum/fusionkit/transcription"
	"github.com/kbukum/fusionkit/version"
)

// Engine runs recordings through transcription, diarization, and fusion.
type Engine struct {
	transcriber transcription.Provider
	diarizer    diarization.Provider // nil when diarization is disabled
	metrics     *observability.Metrics
	log         *logger.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithMetrics attaches fusion metric instruments to the engine.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithLogger overrides the engine's component logger.
func WithLogger(l *logger.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New creates an Engine around the given collaborators. A nil diarizer
// disables diarization: every recording takes the single-speaker fallback.
func New(transcriber transcription.Provider, diarizer diarization.Provider, opts ...Option) *Engine {
	e := &Engine{
		transcriber: transcriber,
		diarizer:    diarizer,
		log:         logger.Get("engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log.Debug("engine ready", logger.Fields(
		"version", version.Short(),
		"diarization", diarizer != nil,
	))
	return e
}

// ProcessRequest identifies one recording and its model parameters.
type ProcessRequest struct {
	// AudioPath is the path to the recording to process.
	AudioPath string `json:"audio_path"`
	// Language is the expected language of the audio (e.g. "en").
	Language string `json:"language,omitempty"`
	// NumSpeakers is the exact expected speaker count (0 = auto-detect).
	NumSpeakers int `json:"num_speakers,omitempty"`
}

// Result is the speaker-attributed outcome for one recording.
type Result struct {
	// RecordingID correlates logs and metrics for this invocation.
	RecordingID uuid.UUID `json:"recording_id"`
	// Transcript is the fused, speaker-attributed transcript.
	Transcript *fusion.DiarizedTranscript `json:"transcript"`
	// Speakers maps the transcript's speaker indices to assignable profiles.
	Speakers *speakers.Registry `json:"-"`
	// Language is the detected or requested language.
	Language string `json:"language,omitempty"`
}

// Process transcribes, diarizes, and fuses one recording.
//
// Transcription errors are fatal. Diarization unavailability (no diarizer
// configured, health check failing, or DIARIZATION_UNAVAILABLE from the
// backend) substitutes the single-speaker fallback and marks the transcript
// degraded. Any other diarization error is fatal: silently degrading on a
// genuine failure would hide a model defect behind confident-looking output.
func (e *Engine) Process(ctx context.Context, req ProcessRequest) (*Result, error) {
	recordingID := uuid.New()
	log := e.log.WithFields(logger.Fields(logger.FieldRecordingID, recordingID.String()))
	log.Info("processing recording", logger.Fields("audio_path", req.AudioPath))

	tresp, err := e.transcriber.Transcribe(ctx, transcription.TranscriptionRequest{
		AudioPath: req.AudioPath,
		Language:  req.Language,
	})
	if err != nil {
		log.Error("transcription failed", logger.ErrorFields("transcribe", err))
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.TranscriptionFailed(err)
	}

	segments, dropped := tresp.FusionSegments()
	if dropped > 0 {
		log.Warn("dropped zero-duration segments", logger.Fields(logger.FieldSegmentCount, dropped))
	}

	turns, degraded, err := e.collectTurns(ctx, req, log)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	transcript, err := e.fuse(segments, turns, degraded, tresp.Duration)
	if err != nil {
		log.Error("fusion failed", logger.ErrorFields("fuse", err))
		return nil, err
	}

	stats := speakers.Aggregate(transcript)
	e.metrics.RecordRecording(ctx, transcript.Degraded, len(transcript.Segments),
		stats.UnattributedCount, time.Since(started))

	log.Info("recording fused", logger.Fields(
		logger.FieldSegmentCount, len(transcript.Segments),
		logger.FieldSpeakerCount, transcript.SpeakerCount,
		logger.FieldDegraded, transcript.Degraded,
	))

	return &Result{
		RecordingID: recordingID,
		Transcript:  transcript,
		Speakers:    speakers.NewRegistry(transcript),
		Language:    tresp.Language,
	}, nil
}

// collectTurns asks the diarizer for speaker turns, reporting degraded=true
// for any flavor of unavailability. A nil turn slice with degraded=false
// means diarization ran and legitimately found no turns.
func (e *Engine) collectTurns(ctx context.Context, req ProcessRequest, log *logger.Logger) ([]fusion.SpeakerTurn, bool, error) {
	if e.diarizer == nil {
		log.Info("diarization disabled, using single-speaker fallback")
		return nil, true, nil
	}
	if !e.diarizer.IsAvailable(ctx) {
		log.Warn("diarizer unavailable, using single-speaker fallback",
			logger.Fields(logger.FieldProvider, e.diarizer.Name()))
		return nil, true, nil
	}

	dresp, err := e.diarizer.Diarize(ctx, diarization.DiarizationRequest{
		AudioPath:   req.AudioPath,
		NumSpeakers: req.NumSpeakers,
	})
	if err != nil {
		if errors.IsCode(err, errors.ErrCodeDiarizationUnavailable) {
			log.Warn("diarization unavailable, using single-speaker fallback",
				logger.ErrorFields("diarize", err))
			return nil, true, nil
		}
		log.Error("diarization failed", logger.ErrorFields("diarize", err))
		if errors.IsAppError(err) {
			return nil, false, err
		}
		return nil, false, errors.DiarizationFailed(err)
	}

	log.Debug("diarization complete", logger.Fields(
		logger.FieldTurnCount, len(dresp.Segments),
		logger.FieldSpeakerCount, dresp.NumSpeakers,
	))
	return diarization.TurnsFromSegments(dresp.Segments), false, nil
}

func (e *Engine) fuse(segments []fusion.TranscriptSegment, turns []fusion.SpeakerTurn, degraded bool, duration float64) (*fusion.DiarizedTranscript, error) {
	if degraded {
		return fusion.FuseDegraded(segments, duration)
	}
	index, err := fusion.NewTurnIndex(turns)
	if err != nil {
		return nil, err
	}
	return fusion.Fuse(segments, index)
}
