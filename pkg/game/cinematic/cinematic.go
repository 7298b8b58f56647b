// Package cinematic plays one-shot narrative interludes. While one plays the
// caller routes all input here and freezes the world.
//
// A cinematic is a slideshow of images with an optional soundtrack. Each name
// plays at most once per Manager.
package cinematic

import (
	"path"
	"time"

	"github.com/rs/zerolog"
	"github.com/zyedidia/generic/mapset"

	"loopescape/pkg/engine/assets"
	"loopescape/pkg/engine/input"
	"loopescape/pkg/engine/logging"
)

// Standard cinematic names.
const (
	Intro    = "intro"
	FirstKey = "first_key"
	Power    = "power"
	Ending   = "ending"
)

// DefaultFrameDuration is how long each slide stays on screen.
const DefaultFrameDuration = 2 * time.Second

const ticksPerSecond = 60

// Audio is the part of the audio service cinematics need.
type Audio interface {
	SuspendMusic()
	ResumeMusic()
	PlayTrack(name string) (stop func())
}

// Cinematic describes one interlude.
type Cinematic struct {
	Name          string
	Frames        []string // asset paths, shown in order
	Sound         string   // asset path, may be empty
	FrameDuration time.Duration
}

func (c Cinematic) frameTicks() int {
	d := c.FrameDuration
	if d <= 0 {
		d = DefaultFrameDuration
	}
	n := int(d * ticksPerSecond / time.Second)
	if n < 1 {
		n = 1
	}
	return n
}

func (c Cinematic) totalTicks() int {
	return len(c.Frames) * c.frameTicks()
}

type playback struct {
	c     Cinematic
	ticks int
	stop  func()
}

// Manager owns the catalog and the played set.
type Manager struct {
	catalog map[string]Cinematic
	played  mapset.Set[string]
	current *playback
	audio   Audio
	log     zerolog.Logger
}

// NewManager creates a manager with an empty catalog. audio may be nil.
func NewManager(audio Audio) *Manager {
	return &Manager{
		catalog: make(map[string]Cinematic),
		played:  mapset.New[string](),
		audio:   audio,
		log:     logging.New("cinematic"),
	}
}

// NewStandard creates a manager with the four story cinematics, taking
// their slides and soundtrack from cinematics/<name>/ in the asset cache.
// Missing slides are not an error: such a cinematic ends on its first tick.
func NewStandard(cache *assets.Cache, audio Audio) *Manager {
	m := NewManager(audio)
	for _, name := range []string{Intro, FirstKey, Power, Ending} {
		dir := path.Join("cinematics", name)
		c := Cinematic{Name: name, Frames: cache.List(dir, "*.png")}
		if sound := path.Join(dir, "sound.wav"); cache.Exists(sound) {
			c.Sound = sound
		}
		if len(c.Frames) == 0 {
			m.log.Debug().Str("cinematic", name).Msg("no slides found")
		}
		m.Register(c)
	}
	return m
}

// Register adds or replaces a cinematic.
func (m *Manager) Register(c Cinematic) {
	m.catalog[c.Name] = c
}

// Play starts the named cinematic. It returns false if the name is unknown,
// was already played, or another cinematic is running.
func (m *Manager) Play(name string) bool {
	c, ok := m.catalog[name]
	if !ok || m.played.Has(name) || m.current != nil {
		return false
	}
	m.played.Put(name)
	m.current = &playback{c: c, stop: func() {}}
	if m.audio != nil {
		m.audio.SuspendMusic()
		if c.Sound != "" {
			m.current.stop = m.audio.PlayTrack(c.Sound)
		}
	}
	m.log.Info().Str("cinematic", name).Int("slides", len(c.Frames)).Msg("cinematic started")
	return true
}

// Update advances playback by one tick. It returns true exactly on the tick
// the cinematic finishes, whether it ran out or was skipped.
func (m *Manager) Update(in input.Snapshot) bool {
	if m.current == nil {
		return false
	}
	skipped := in.Pressed.Any(input.ActionSkip, input.ActionJump, input.ActionConfirm) || in.Clicked
	m.current.ticks++
	if !skipped && m.current.ticks < m.current.c.totalTicks() {
		return false
	}
	m.finish(skipped)
	return true
}

// Stop abandons the running cinematic, if any. It still counts as played.
func (m *Manager) Stop() {
	if m.current != nil {
		m.finish(true)
	}
}

func (m *Manager) finish(skipped bool) {
	p := m.current
	m.current = nil
	p.stop()
	if m.audio != nil {
		m.audio.ResumeMusic()
	}
	m.log.Info().Str("cinematic", p.c.Name).Bool("skipped", skipped).Msg("cinematic finished")
}

// IsPlaying reports whether a cinematic is running.
func (m *Manager) IsPlaying() bool {
	return m.current != nil
}

// Playing returns the running cinematic's name.
func (m *Manager) Playing() (string, bool) {
	if m.current == nil {
		return "", false
	}
	return m.current.c.Name, true
}

// Frame returns the asset path of the slide to show. ok is false when
// nothing is playing or the cinematic has no slides.
func (m *Manager) Frame() (string, bool) {
	if m.current == nil || len(m.current.c.Frames) == 0 {
		return "", false
	}
	i := m.current.ticks / m.current.c.frameTicks()
	if i >= len(m.current.c.Frames) {
		i = len(m.current.c.Frames) - 1
	}
	return m.current.c.Frames[i], true
}

// Played reports whether the name has already been played.
func (m *Manager) Played(name string) bool {
	return m.played.Has(name)
}
