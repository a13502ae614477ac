package engine

import (
	"github.com/kbukum/fusionkit/config"
	"github.com/kbukum/fusionkit/diarization"
	"github.com/kbukum/fusionkit/diarization/pyannote"
	"github.com/kbukum/fusionkit/transcription"
	"github.com/kbukum/fusionkit/transcription/whisper"
)

// NewFromConfig builds an Engine from configuration, wiring the configured
// backends through their provider managers. Built-in backends are
// pre-registered; callers needing custom backends construct the Engine
// with New directly.
func NewFromConfig(cfg *config.Config, opts ...Option) (*Engine, error) {
	tmgr := transcription.NewManager()
	tmgr.Register(whisper.ProviderName, whisper.Factory())
	if err := tmgr.Initialize(cfg.Transcription.Provider, cfg.Transcription.Settings); err != nil {
		return nil, err
	}
	transcriber, err := tmgr.GetByName(cfg.Transcription.Provider)
	if err != nil {
		return nil, err
	}

	var diarizer diarization.Provider
	if cfg.Diarization.Enabled {
		dmgr := diarization.NewManager()
		dmgr.Register(pyannote.ProviderName, pyannote.Factory())
		if err := dmgr.Initialize(cfg.Diarization.Provider, cfg.Diarization.Settings); err != nil {
			return nil, err
		}
		diarizer, err = dmgr.GetByName(cfg.Diarization.Provider)
		if err != nil {
			return nil, err
		}
	}

	return New(transcriber, diarizer, opts...), nil
}
