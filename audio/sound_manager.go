package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/base-ten/engine"
)

const (
	sampleRate = beep.SampleRate(48000)

	snapDuration  = 90 * time.Millisecond
	crackDuration = 220 * time.Millisecond
)

// SoundManager plays short cues for structural changes
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	initialized bool
	muted       bool
}

// NewSoundManager creates a sound manager at level in [0,1]
func NewSoundManager(level float64) *SoundManager {
	sm := &SoundManager{
		mixer: &beep.Mixer{},
	}
	sm.volume = &effects.Volume{Streamer: sm.mixer, Base: 2}
	sm.setLevel(level)
	return sm
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.volume)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Initialized reports whether a device is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetLevel sets output volume in [0,1]; 0 is silent
func (sm *SoundManager) SetLevel(level float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.setLevel(level)
}

func (sm *SoundManager) setLevel(level float64) {
	level = math.Min(math.Max(level, 0), 1)
	sm.volume.Silent = level == 0
	if level > 0 {
		// Base 2: -1 halves amplitude
		sm.volume.Volume = math.Log2(level)
	}
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// SetMuted sets mute
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Muted reports whether cues are suppressed
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlaySnap plays the click of pieces bundling together
func (sm *SoundManager) PlaySnap() {
	sm.play(beep.Take(sampleRate.N(snapDuration), NewSnapGenerator(sampleRate)))
}

// PlayCrack plays the sound of a container breaking apart
func (sm *SoundManager) PlayCrack() {
	sm.play(beep.Take(sampleRate.N(crackDuration), NewCrackGenerator(sampleRate)))
}

// HandleEvent implements engine.EventHandler
// Only committed structure changes are heard; dropped requests stay silent
func (sm *SoundManager) HandleEvent(ev engine.Event) {
	if ev.Type != engine.EventTransitionCommitted {
		return
	}
	if ev.Transition.IsCompose() {
		sm.PlaySnap()
	} else {
		sm.PlayCrack()
	}
}

// EventTypes implements engine.EventHandler
func (sm *SoundManager) EventTypes() []engine.EventType {
	return []engine.EventType{engine.EventTransitionCommitted}
}

// SnapGenerator generates a short bright click with a falling pitch
type SnapGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewSnapGenerator creates a snap sound generator
func NewSnapGenerator(sr beep.SampleRate) *SnapGenerator {
	return &SnapGenerator{sr: sr}
}

func (g *SnapGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Pitch drops from 1.8kHz to 900Hz, amplitude decays fast
		freq := 900 + 900*math.Exp(-t*40)
		envelope := math.Exp(-t * 45)
		sample := 0.35 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SnapGenerator) Err() error {
	return nil
}

// CrackGenerator generates a breaking/crackling sound
type CrackGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewCrackGenerator creates a crack sound generator
func NewCrackGenerator(sr beep.SampleRate) *CrackGenerator {
	return &CrackGenerator{
		sr:   sr,
		seed: time.Now().UnixNano() & 0x7fffffff,
	}
}

func (g *CrackGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Envelope - quick attack, slower decay
		envelope := math.Exp(-t * 14)

		// LCG noise for the crackle
		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		// Mix with low rumble
		rumble := 0.3 * math.Sin(2*math.Pi*140*t)

		sample := envelope * (0.25*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrackGenerator) Err() error {
	return nil
}
