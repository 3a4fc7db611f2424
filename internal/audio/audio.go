// Package audio plays the game's two sound cues: a looping background tune
// and a jump chirp. Samples are synthesized at runtime, so there are no
// asset files.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/oto/v2"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// Cue identifies a sound.
type Cue int

const (
	CueMusic Cue = iota
	CueJump
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueMusic:
		return "music"
	case CueJump:
		return "jump"
	default:
		return "unknown"
	}
}

// CueFor maps a game event to the cue it triggers.
func CueFor(kind core.EventKind) (Cue, bool) {
	switch kind {
	case core.EventStarted:
		return CueMusic, true
	case core.EventJump:
		return CueJump, true
	default:
		return 0, false
	}
}

// Player plays cues. Play never blocks the caller.
type Player interface {
	Play(cue Cue)
	Close() error
}

// Nop is a Player that stays silent.
type Nop struct{}

func (Nop) Play(Cue)     {}
func (Nop) Close() error { return nil }

// Options configures the audio backend.
type Options struct {
	Enabled     bool
	MusicVolume float64
	JumpVolume  float64
	Logger      *log.Logger
}

// New opens the audio device. When audio is disabled or the device cannot
// be opened it returns a Nop player; failures are logged, never returned.
func New(opts Options) Player {
	if !opts.Enabled {
		return Nop{}
	}
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		if opts.Logger != nil {
			opts.Logger.Warn("audio disabled", "error", err)
		}
		return Nop{}
	}
	return &otoPlayer{
		ctx:    ctx,
		ready:  ready,
		opts:   opts,
		logger: opts.Logger,
		jump:   genJump(),
	}
}

// otoPlayer plays through an oto context. The context finishes opening in
// the background; cues that arrive before it is ready are dropped.
type otoPlayer struct {
	ctx    *oto.Context
	ready  chan struct{}
	opts   Options
	logger *log.Logger

	mu     sync.Mutex
	music  oto.Player
	closed bool

	jump []byte
}

func (p *otoPlayer) isReady() bool {
	select {
	case <-p.ready:
		return true
	default:
		return false
	}
}

// Play starts a cue. A music cue while the tune is already looping is a
// no-op.
func (p *otoPlayer) Play(cue Cue) {
	if !p.isReady() {
		return
	}
	switch cue {
	case CueMusic:
		p.startMusic()
	case CueJump:
		p.playEffect(p.jump, p.opts.JumpVolume)
	}
}

func (p *otoPlayer) startMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	if p.music != nil && p.music.IsPlaying() {
		return
	}
	if p.music != nil {
		p.logErr("music", p.music.Err())
		p.music.Close()
	}
	player := p.ctx.NewPlayer(newMusicReader())
	player.SetVolume(p.opts.MusicVolume)
	player.Play()
	p.music = player
}

func (p *otoPlayer) playEffect(samples []byte, volume float64) {
	if len(samples) == 0 || volume <= 0 {
		return
	}
	go func() {
		player := p.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		p.logErr("effect", player.Err())
		player.Close()
	}()
}

func (p *otoPlayer) logErr(what string, err error) {
	if err != nil && p.logger != nil {
		p.logger.Warn("audio playback failed", "player", what, "error", err)
	}
}

// Close stops the music. The oto context itself lives for the process.
func (p *otoPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	if p.music == nil {
		return nil
	}
	err := p.music.Close()
	p.music = nil
	return err
}
