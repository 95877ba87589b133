package desktop

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/sinshu/go-meltysynth/meltysynth"

	"github.com/vovakirdan/tui-slide/internal/config"
	"github.com/vovakirdan/tui-slide/internal/core"
)

// SampleRate is the audio sample rate of every clip.
const SampleRate = 44100

// SoundID names one sound effect.
type SoundID int

const (
	SoundNone SoundID = iota
	SoundMove
	SoundSuccess
	SoundClick
	SoundHint
)

var soundFiles = map[SoundID]string{
	SoundMove:    "move.wav",
	SoundSuccess: "success.wav",
	SoundClick:   "click.wav",
	SoundHint:    "hint.wav",
}

// chime notes used when a file is missing and a SoundFont is available.
var chimeKeys = map[SoundID][]int32{
	SoundMove:    {72},
	SoundSuccess: {60, 64, 67, 72},
	SoundClick:   {84},
	SoundHint:    {76, 79},
}

// SoundForEvent returns the effect played for a game event.
func SoundForEvent(e core.Event) SoundID {
	switch e {
	case core.EventMove:
		return SoundMove
	case core.EventSolved:
		return SoundSuccess
	case core.EventClick:
		return SoundClick
	case core.EventHint:
		return SoundHint
	}
	return SoundNone
}

// Sounds plays decoded PCM clips. A missing clip is silent; a nil *Sounds
// is valid and plays nothing.
type Sounds struct {
	ctx    *audio.Context
	clips  map[SoundID][]byte
	volume float64
	logger *log.Logger
}

// NewSounds loads every clip described by cfg. ctx may be nil to decode
// without playing.
func NewSounds(ctx *audio.Context, cfg config.SoundConfig, logger *log.Logger) *Sounds {
	return &Sounds{
		ctx:    ctx,
		clips:  loadClips(cfg, logger),
		volume: cfg.Volume,
		logger: logger,
	}
}

// Has reports whether id has audio data.
func (s *Sounds) Has(id SoundID) bool {
	return s != nil && len(s.clips[id]) > 0
}

// Play starts id from the beginning. Overlapping plays mix.
func (s *Sounds) Play(id SoundID) {
	if s == nil || s.ctx == nil || !s.Has(id) {
		return
	}
	p := s.ctx.NewPlayerFromBytes(s.clips[id])
	p.SetVolume(s.volume)
	p.Play()
}

// PlayEvents plays the effect of each event in order.
func (s *Sounds) PlayEvents(events []core.Event) {
	for _, e := range events {
		s.Play(SoundForEvent(e))
	}
}

// loadClips reads each WAV file from cfg.Dir. Files that are missing or
// undecodable fall back to a synthesized chime when cfg.SoundFont loads,
// and to silence otherwise.
func loadClips(cfg config.SoundConfig, logger *log.Logger) map[SoundID][]byte {
	clips := make(map[SoundID][]byte, len(soundFiles))

	var missing []SoundID
	for id, name := range soundFiles {
		pcm, err := decodeWAVFile(filepath.Join(cfg.Dir, name))
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				logger.Warn("cannot load sound", "file", name, "error", err)
			}
			missing = append(missing, id)
			continue
		}
		clips[id] = pcm
	}
	if len(missing) == 0 || cfg.SoundFont == "" {
		return clips
	}

	sf, err := loadSoundFont(cfg.SoundFont)
	if err != nil {
		logger.Warn("cannot load soundfont, missing sounds stay silent", "path", cfg.SoundFont, "error", err)
		return clips
	}
	for _, id := range missing {
		pcm, err := synthChime(sf, chimeKeys[id])
		if err != nil {
			logger.Warn("cannot synthesize sound", "sound", soundFiles[id], "error", err)
			continue
		}
		clips[id] = pcm
	}
	return clips
}

func decodeWAVFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decodeWAV(data)
}

// decodeWAV converts a WAV file to 16-bit stereo little-endian PCM at
// SampleRate.
func decodeWAV(data []byte) ([]byte, error) {
	stream, err := wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read wav: %w", err)
	}
	return pcm, nil
}

func loadSoundFont(path string) (*meltysynth.SoundFont, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return meltysynth.NewSoundFont(f)
}

const (
	noteSamples = SampleRate / 8 // each chime note rings for 125ms
	tailSamples = SampleRate / 4 // release after the last note
)

// synthChime renders keys one after another on a piano preset and returns
// 16-bit stereo PCM.
func synthChime(sf *meltysynth.SoundFont, keys []int32) ([]byte, error) {
	settings := meltysynth.NewSynthesizerSettings(SampleRate)
	synth, err := meltysynth.NewSynthesizer(sf, settings)
	if err != nil {
		return nil, fmt.Errorf("create synthesizer: %w", err)
	}

	total := noteSamples*len(keys) + tailSamples
	left := make([]float32, total)
	right := make([]float32, total)

	pos := 0
	for _, k := range keys {
		synth.NoteOn(0, k, 100)
		synth.Render(left[pos:pos+noteSamples], right[pos:pos+noteSamples])
		synth.NoteOff(0, k)
		pos += noteSamples
	}
	synth.Render(left[pos:], right[pos:])

	return pcmFromFloat(left, right), nil
}

// pcmFromFloat interleaves two channels into 16-bit little-endian samples.
func pcmFromFloat(left, right []float32) []byte {
	out := make([]byte, len(left)*4)
	for i := range left {
		l := int16(clampSample(left[i]) * 32767)
		r := int16(clampSample(right[i]) * 32767)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(l))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(r))
	}
	return out
}

func clampSample(v float32) float32 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
