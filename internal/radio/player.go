package radio

import (
	"context"
	"os/exec"
	"sync"

	"go.uber.org/zap"
)

// Owner identifies what currently holds the audio output slot.
type Owner int

const (
	OwnerNone Owner = iota
	OwnerStation
	OwnerSpeech
)

// startFunc launches an external process and returns its wait function.
// Tests substitute this to avoid spawning real players.
type startFunc func(ctx context.Context, name string, args ...string) (func() error, error)

func execStart(ctx context.Context, name string, args ...string) (func() error, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmd.Wait, nil
}

// Player owns the single audio output slot. Streams play through an
// external player binary and read-aloud goes through a TTS binary; only
// one process is alive at a time.
type Player struct {
	mu    sync.Mutex
	log   *zap.Logger
	start startFunc

	playerBin  string
	playerArgs []string
	speechBin  string
	speechArgs []string

	owner   Owner
	station *Station
	cancel  context.CancelFunc
	gen     int
}

// NewPlayer wires the player to the configured binaries. Empty values
// fall back to mpv for streams and espeak-ng for read-aloud.
func NewPlayer(playerBin string, playerArgs []string, speechBin string, speechArgs []string, log *zap.Logger) *Player {
	if playerBin == "" {
		playerBin = "mpv"
		playerArgs = []string{"--no-video", "--really-quiet"}
	}
	if speechBin == "" {
		speechBin = "espeak-ng"
		speechArgs = []string{"-v", "pt-br"}
	}
	return &Player{
		log:        log,
		start:      execStart,
		playerBin:  playerBin,
		playerArgs: playerArgs,
		speechBin:  speechBin,
		speechArgs: speechArgs,
	}
}

// Play tunes to a station, stopping whatever holds the slot first.
// Playing the station that is already live stops it instead (toggle).
func (p *Player) Play(st Station) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.owner == OwnerStation && p.station != nil && p.station.ID == st.ID {
		p.stopLocked()
		return nil
	}
	p.stopLocked()

	args := append(append([]string{}, p.playerArgs...), st.URL)
	if err := p.startLocked(OwnerStation, p.playerBin, args); err != nil {
		return err
	}
	s := st
	p.station = &s
	p.log.Info("radio playing", zap.String("station", st.Name))
	return nil
}

// Speak reads text aloud, stopping whatever holds the slot first.
func (p *Player) Speak(text string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
	if text == "" {
		return nil
	}
	args := append(append([]string{}, p.speechArgs...), text)
	return p.startLocked(OwnerSpeech, p.speechBin, args)
}

// Stop releases the slot.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

// Current reports the slot owner and, when a station holds it, which one.
func (p *Player) Current() (Owner, *Station) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.owner, p.station
}

// Playing reports whether a station stream is live.
func (p *Player) Playing() bool {
	owner, _ := p.Current()
	return owner == OwnerStation
}

func (p *Player) startLocked(owner Owner, bin string, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	wait, err := p.start(ctx, bin, args...)
	if err != nil {
		cancel()
		return err
	}

	p.owner = owner
	p.cancel = cancel
	p.gen++
	gen := p.gen

	go func() {
		err := wait()
		p.mu.Lock()
		defer p.mu.Unlock()
		// A newer start or an explicit stop already owns the slot.
		if p.gen != gen {
			return
		}
		if err != nil && ctx.Err() == nil {
			p.log.Warn("audio process exited", zap.Error(err))
		}
		p.owner = OwnerNone
		p.station = nil
		p.cancel = nil
	}()
	return nil
}

func (p *Player) stopLocked() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.owner = OwnerNone
	p.station = nil
	p.gen++
}
