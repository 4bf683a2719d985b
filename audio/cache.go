package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"
)

// resampleQuality is the beep.Resample quality used for mismatched files
const resampleQuality = 4

// fileSource decodes a recorded effect once and replays it from memory
// A failed load is retried on the next play so a late-arriving file still works
type fileSource struct {
	path string

	mu     sync.Mutex
	buffer *beep.Buffer
	rate   beep.SampleRate
}

func newFileSource(path string) *fileSource {
	return &fileSource{path: path}
}

func (s *fileSource) stream(rate beep.SampleRate) (beep.Streamer, error) {
	buf, err := s.load(rate)
	if err != nil {
		return nil, err
	}
	return buf.Streamer(0, buf.Len()), nil
}

// load returns the cached buffer or decodes the file
func (s *fileSource) load(rate beep.SampleRate) (*beep.Buffer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buffer != nil && s.rate == rate {
		return s.buffer, nil
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}

	streamer, format, err := decode(f, s.path)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != rate {
		src = beep.Resample(resampleQuality, format.SampleRate, rate, streamer)
	}

	format.SampleRate = rate
	buf := beep.NewBuffer(format)
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	s.buffer = buf
	s.rate = rate
	return buf, nil
}

// decode selects a decoder by file extension
func decode(f *os.File, path string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return mp3.Decode(f)
	case ".wav":
		return wav.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("%q: %w", filepath.Ext(path), ErrUnsupportedFormat)
	}
}
