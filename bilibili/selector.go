package bilibili

import (
	"context"
	"errors"
	"fmt"

	"github.com/bilihot/bilihot/log"
)

// Status is the terminal state of a Pick.
type Status int

const (
	NotFound Status = iota
	Found
	Failed
)

func (s Status) String() string {
	switch s {
	case NotFound:
		return "not found"
	case Found:
		return "found"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome is the result of a Pick. Video is set only when Status is Found,
// Err only when Status is Failed.
type Outcome struct {
	Status Status
	Video  Video
	Err    error
}

func found(v Video) Outcome    { return Outcome{Status: Found, Video: v} }
func failed(err error) Outcome { return Outcome{Status: Failed, Err: err} }

// Selector runs feeds according to a Mode.
type Selector struct {
	Fetcher Fetcher
	// OnFallback, if set, is called before auto mode queries Popular.
	// cause is nil when Ranking succeeded but was empty.
	OnFallback func(cause error)
}

// Pick returns the hottest video for mode. Each call is independent and
// performs at most two fetches.
func (s *Selector) Pick(ctx context.Context, mode Mode) Outcome {
	switch mode {
	case ModeRanking:
		return s.run(ctx, Ranking)
	case ModePopular:
		return s.run(ctx, Popular)
	case ModeAuto:
		first := s.run(ctx, Ranking)
		if first.Status == Found {
			return first
		}

		if first.Status == Failed {
			log.Warnf("ranking failed, falling back to popular: %v", first.Err)
		} else {
			log.Infof("ranking was empty, falling back to popular")
		}
		if s.OnFallback != nil {
			s.OnFallback(first.Err)
		}

		return s.run(ctx, Popular)
	default:
		return failed(fmt.Errorf("unsupported mode %s", mode))
	}
}

func (s *Selector) run(ctx context.Context, feed Feed) Outcome {
	video, err := feed.Top(ctx, s.Fetcher)
	switch {
	case err == nil:
		log.Infof("%s: picked %q (%s)", feed.Name, video.Title, video.BVID)
		return found(video)
	case errors.Is(err, ErrEmpty):
		return Outcome{Status: NotFound}
	default:
		log.Errorf("%s: %v", feed.Name, err)
		return failed(err)
	}
}

// Pick is a convenience wrapper for a Selector without a fallback hook.
func Pick(ctx context.Context, fetcher Fetcher, mode Mode) Outcome {
	s := Selector{Fetcher: fetcher}
	return s.Pick(ctx, mode)
}
