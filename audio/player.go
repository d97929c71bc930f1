// Package audio plays the one-shot sounds named by willowui transition
// specs, synthesized with beep.
package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/willowui"
)

const sampleRate = beep.SampleRate(48000)

// maxVoices bounds the sounds mixed at once; more are dropped.
const maxVoices = 16

// Player implements willowui.SoundSink. Sounds are registered by name as
// short tone sequences and mixed into one beep.Mixer that the speaker
// streams from its own goroutine, so the mixer is guarded by a mutex.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	sounds  map[string][]Tone
	warned  map[string]bool
	volume  float64
	started bool
}

var _ willowui.SoundSink = (*Player)(nil)

// NewPlayer creates a player with the built-in sounds: "click", "hover",
// "toggle", "open", "close" and "error".
func NewPlayer() *Player {
	p := &Player{
		mixer:  &beep.Mixer{},
		sounds: make(map[string][]Tone),
		warned: make(map[string]bool),
		volume: 1,
	}
	for name, tones := range builtinSounds {
		p.sounds[name] = tones
	}
	return p
}

var builtinSounds = map[string][]Tone{
	"click": {{Freq: 1200, Duration: 25 * time.Millisecond, Wave: WaveSquare, Volume: 0.15, Release: 15 * time.Millisecond}},
	"hover": {{Freq: 660, Duration: 30 * time.Millisecond, Wave: WaveSine, Volume: 0.1, Attack: 5 * time.Millisecond, Release: 20 * time.Millisecond}},
	"toggle": {
		{Freq: 880, Duration: 40 * time.Millisecond, Wave: WaveSine, Volume: 0.2, Release: 20 * time.Millisecond},
		{Freq: 1320, Duration: 60 * time.Millisecond, Wave: WaveSine, Volume: 0.2, Release: 40 * time.Millisecond},
	},
	"open":  {{Freq: 440, Duration: 120 * time.Millisecond, Wave: WaveSaw, Volume: 0.1, Attack: 40 * time.Millisecond, Release: 60 * time.Millisecond}},
	"close": {{Freq: 330, Duration: 120 * time.Millisecond, Wave: WaveSaw, Volume: 0.1, Attack: 20 * time.Millisecond, Release: 80 * time.Millisecond}},
	"error": {{Freq: 100, Duration: 150 * time.Millisecond, Wave: WaveSaw, Volume: 0.25, Attack: 5 * time.Millisecond, Release: 50 * time.Millisecond}},
}

// Register adds or replaces the sound called name.
func (p *Player) Register(name string, tones ...Tone) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sounds[name] = tones
	delete(p.warned, name)
}

// SetVolume sets the master volume in [0, 1].
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = max(0, min(1, v))
}

// Start initializes the speaker and starts streaming the mixer.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// Close silences every playing sound and stops the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		p.mixer.Clear()
		return
	}
	speaker.Clear()
	p.mixer.Clear()
	speaker.Close()
	p.started = false
}

// PlaySound mixes in the sound called name. Unknown names are logged once.
func (p *Player) PlaySound(name string) {
	p.mu.Lock()
	tones, ok := p.sounds[name]
	if !ok {
		if !p.warned[name] {
			p.warned[name] = true
			log.Printf("willowui/audio: unknown sound %q", name)
		}
		p.mu.Unlock()
		return
	}
	s := render(tones, p.volume, sampleRate)
	started := p.started
	p.mu.Unlock()

	if started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	if p.mixer.Len() >= maxVoices {
		return
	}
	p.mixer.Add(s)
}

// Voices returns the number of sounds still in the mixer.
func (p *Player) Voices() int {
	p.mu.Lock()
	started := p.started
	p.mu.Unlock()
	if started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return p.mixer.Len()
}

// Stream reads mixed samples into buf without a speaker. It exists for
// offline rendering and must not be used after Start.
func (p *Player) Stream(buf [][2]float64) int {
	n, _ := p.mixer.Stream(buf)
	return n
}
