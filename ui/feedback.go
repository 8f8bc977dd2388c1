package ui

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const feedbackRate = beep.SampleRate(44100)

// Feedback plays the short tone heard when navigation hits the edge
// of the focusable area. Audio is optional: if the speaker cannot be
// initialized the session runs silent.
type Feedback struct {
	ready bool
	muted bool
}

// NewFeedback initializes the speaker. Initialization failure is not
// an error, headless environments simply get no tone.
func NewFeedback() *Feedback {
	if err := speaker.Init(feedbackRate, feedbackRate.N(time.Millisecond*20)); err != nil {
		return &Feedback{}
	}
	return &Feedback{ready: true}
}

// Edge plays a short tone signalling that focus stayed put
func (f *Feedback) Edge() {
	if !f.ready || f.muted {
		return
	}
	tone, err := generators.SineTone(feedbackRate, 880)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(feedbackRate.N(time.Millisecond*60), tone))
}

// SetMuted silences the tone without touching the audio device
func (f *Feedback) SetMuted(muted bool) {
	f.muted = muted
}

// Muted reports the mute state
func (f *Feedback) Muted() bool {
	return f.muted
}
