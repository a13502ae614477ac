package speakers

import (
	"fmt"
	"sort"
	"sync"

	"github.com/kbukum/fusionkit/errors"
	"github.com/kbukum/fusionkit/fusion"
	"github.com/kbukum/fusionkit/validation"
)

// SpeakerProfile is a human-assigned identity for one speaker index.
type SpeakerProfile struct {
	// SpeakerIndex is the opaque speaker identity the profile names.
	SpeakerIndex int `json:"speaker_index"`
	// DisplayName is the human-assigned name, never empty once assigned.
	DisplayName string `json:"display_name"`
	// Email is an optional contact address.
	Email string `json:"email,omitempty"`
	// Title is an optional job title or role.
	Title string `json:"title,omitempty"`
}

// Registry maps speaker indices to human-assigned profiles for one
// transcript. Assignment validates against the transcript's speaker set and
// never touches the fused segments. Safe for concurrent use; updates are
// whole-profile replacements, last write wins, no history kept.
type Registry struct {
	mu       sync.RWMutex
	valid    map[int]struct{}
	profiles map[int]SpeakerProfile
}

// NewRegistry builds a Registry whose valid speaker set is the distinct
// attributed speaker indices of the transcript.
func NewRegistry(t *fusion.DiarizedTranscript) *Registry {
	valid := make(map[int]struct{})
	for _, idx := range t.SpeakerIndices() {
		valid[idx] = struct{}{}
	}
	return &Registry{
		valid:    valid,
		profiles: make(map[int]SpeakerProfile),
	}
}

// Assign creates or replaces the profile for a speaker index. It fails with
// UNKNOWN_SPEAKER if the index does not appear among the transcript's fused
// segments (a negative index never does), and with INVALID_INPUT if the
// profile fields do not validate. Existing profiles are untouched on failure.
func (r *Registry) Assign(speakerIndex int, displayName, email, title string) error {
	v := validation.New().
		Required("display_name", displayName).
		MaxLength("display_name", displayName, 256).
		OptionalEmail("email", email)
	if err := v.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.valid[speakerIndex]; !ok {
		return errors.UnknownSpeaker(speakerIndex)
	}
	r.profiles[speakerIndex] = SpeakerProfile{
		SpeakerIndex: speakerIndex,
		DisplayName:  displayName,
		Email:        email,
		Title:        title,
	}
	return nil
}

// Resolve returns the assigned profile for a speaker index, or a positional
// default ("Speaker {index+1}") so rendering is always complete. Never fails.
func (r *Registry) Resolve(speakerIndex int) SpeakerProfile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if profile, ok := r.profiles[speakerIndex]; ok {
		return profile
	}
	return SpeakerProfile{
		SpeakerIndex: speakerIndex,
		DisplayName:  fmt.Sprintf("Speaker %d", speakerIndex+1),
	}
}

// Assigned returns all explicitly assigned profiles, ascending by index.
func (r *Registry) Assigned() []SpeakerProfile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	profiles := make([]SpeakerProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		profiles = append(profiles, p)
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].SpeakerIndex < profiles[j].SpeakerIndex
	})
	return profiles
}
