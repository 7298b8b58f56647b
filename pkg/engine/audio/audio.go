// Package audio plays the looping background music and short sound cues.
// When no audio device is available the manager stays disabled and every
// call becomes a no-op, so the game runs silently instead of failing.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"github.com/rs/zerolog"

	"loopescape/pkg/engine/assets"
	"loopescape/pkg/engine/logging"
)

const (
	sampleRate = beep.SampleRate(44100)
	bufferSize = 100 * time.Millisecond
)

// Settings is the initial audio state.
type Settings struct {
	MusicOn     bool
	MusicVolume float64
	SFXVolume   float64
}

// Manager owns the speaker mixer, the music track and the sound cache.
type Manager struct {
	mu     sync.Mutex
	assets *assets.Cache
	log    zerolog.Logger

	ready bool
	mixer *beep.Mixer

	music       *beep.Ctrl
	musicVolume *effects.Volume
	musicOn     bool
	suspended   int
	volume      float64
	sfxVolume   float64

	sounds map[string]*beep.Buffer
}

// NewManager creates a manager that reads sound files from cache. It makes
// no sound until Init succeeds.
func NewManager(cache *assets.Cache, s Settings) *Manager {
	return &Manager{
		assets:    cache,
		log:       logging.New("audio"),
		mixer:     &beep.Mixer{},
		musicOn:   s.MusicOn,
		volume:    clampUnit(s.MusicVolume),
		sfxVolume: clampUnit(s.SFXVolume),
		sounds:    make(map[string]*beep.Buffer),
	}
}

// Init opens the audio device. Failure leaves the manager disabled and is
// only logged.
func (m *Manager) Init() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ready {
		return
	}
	if err := speaker.Init(sampleRate, sampleRate.N(bufferSize)); err != nil {
		m.log.Warn().Err(err).Msg("audio device unavailable, running silent")
		return
	}
	speaker.Play(m.mixer)
	m.ready = true
}

// Enabled reports whether sound actually reaches a device.
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ready
}

// Close stops everything that is playing.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.ready {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.music = nil
	m.ready = false
}

// StartMusic loads a wav track and loops it forever. The track honours the
// current music toggle and volume.
func (m *Manager) StartMusic(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.ready || m.music != nil {
		return
	}
	buf, err := m.load(name)
	if err != nil {
		m.log.Warn().Err(err).Str("track", name).Msg("music unavailable")
		return
	}
	m.musicVolume = &effects.Volume{
		Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len())),
		Base:     2,
	}
	applyVolume(m.musicVolume, m.volume)
	m.music = &beep.Ctrl{Streamer: m.musicVolume, Paused: !m.musicPlayingLocked()}

	speaker.Lock()
	m.mixer.Add(m.music)
	speaker.Unlock()
	m.log.Info().Str("track", name).Msg("music started")
}

// MusicEnabled reports the user's music toggle.
func (m *Manager) MusicEnabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.musicOn
}

// SetMusicEnabled turns background music on or off.
func (m *Manager) SetMusicEnabled(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.musicOn = on
	m.syncMusicLocked()
}

// MusicVolume returns the music volume in [0, 1].
func (m *Manager) MusicVolume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

// SetMusicVolume sets the music volume, clamped to [0, 1].
func (m *Manager) SetMusicVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = clampUnit(v)
	if m.musicVolume == nil {
		return
	}
	speaker.Lock()
	applyVolume(m.musicVolume, m.volume)
	speaker.Unlock()
}

// SuspendMusic pauses the music until a matching ResumeMusic, independent of
// the user's toggle. Calls nest.
func (m *Manager) SuspendMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suspended++
	m.syncMusicLocked()
}

// ResumeMusic undoes one SuspendMusic.
func (m *Manager) ResumeMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.suspended > 0 {
		m.suspended--
	}
	m.syncMusicLocked()
}

// MusicPlaying reports whether the music would currently be audible.
func (m *Manager) MusicPlaying() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.musicPlayingLocked()
}

func (m *Manager) musicPlayingLocked() bool {
	return m.musicOn && m.suspended == 0
}

func (m *Manager) syncMusicLocked() {
	if m.music == nil {
		return
	}
	speaker.Lock()
	m.music.Paused = !m.musicPlayingLocked()
	speaker.Unlock()
}

// PlaySound plays a short cue. sounds/<name>.wav is used when present,
// otherwise a generated tone.
func (m *Manager) PlaySound(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.ready {
		return
	}
	var s beep.Streamer
	if buf, err := m.load("sounds/" + name + ".wav"); err == nil {
		s = buf.Streamer(0, buf.Len())
	} else {
		s = cueTone(name)
	}
	vol := &effects.Volume{Streamer: s, Base: 2}
	applyVolume(vol, m.sfxVolume)

	speaker.Lock()
	m.mixer.Add(vol)
	speaker.Unlock()
}

// PlayTrack plays a wav file once and returns a function that stops it.
// A missing file yields a no-op stop.
func (m *Manager) PlayTrack(name string) (stop func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.ready {
		return func() {}
	}
	buf, err := m.load(name)
	if err != nil {
		m.log.Debug().Err(err).Str("track", name).Msg("no track")
		return func() {}
	}
	ctrl := &beep.Ctrl{Streamer: buf.Streamer(0, buf.Len())}
	speaker.Lock()
	m.mixer.Add(ctrl)
	speaker.Unlock()
	return func() {
		speaker.Lock()
		ctrl.Paused = true
		ctrl.Streamer = nil
		speaker.Unlock()
	}
}

// load decodes a wav file into memory at the mixer's sample rate.
func (m *Manager) load(name string) (*beep.Buffer, error) {
	if buf, ok := m.sounds[name]; ok {
		return buf, nil
	}
	if m.assets == nil {
		return nil, fmt.Errorf("load %s: no asset cache", name)
	}
	rc, err := m.assets.Open(name)
	if err != nil {
		return nil, err
	}
	streamer, format, err := wav.Decode(rc)
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, s)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	m.sounds[name] = buf
	return buf, nil
}

// applyVolume maps a linear [0, 1] level onto the exponential volume effect.
func applyVolume(v *effects.Volume, level float64) {
	if level <= 0 {
		v.Silent = true
		return
	}
	v.Silent = false
	v.Volume = gain(level)
}

// gain converts a linear level to the base-2 exponent effects.Volume uses.
func gain(level float64) float64 {
	return math.Log2(level)
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
