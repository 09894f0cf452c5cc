// Package media inspects uploaded media files.
package media

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Prober reports the playback length of a media file in seconds.
type Prober interface {
	Duration(ctx context.Context, path string) (float64, error)
}

type FFProbe struct {
	timeout time.Duration
}

func NewFFProbe(timeout time.Duration) *FFProbe {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &FFProbe{timeout: timeout}
}

func (p *FFProbe) Duration(ctx context.Context, path string) (float64, error) {
	timeout := p.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	out, err := ffmpeg.ProbeWithTimeout(path, timeout, ffmpeg.KwArgs{})
	if err != nil {
		return 0, errors.WithMessage(err, "failed to probe media")
	}
	return ParseDuration(out)
}

type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// ParseDuration extracts format.duration from ffprobe's JSON output.
func ParseDuration(out string) (float64, error) {
	var parsed probeOutput
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		return 0, errors.WithMessage(err, "failed to decode ffprobe output")
	}
	if parsed.Format.Duration == "" {
		return 0, errors.New("ffprobe output has no duration")
	}
	d, err := strconv.ParseFloat(parsed.Format.Duration, 64)
	if err != nil {
		return 0, errors.WithMessage(err, "invalid duration")
	}
	return d, nil
}
