package bilibili

import (
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// Mode selects which feed(s) Pick consults.
type Mode int

const (
	// ModeAuto tries Ranking and falls back to Popular.
	ModeAuto Mode = iota
	ModeRanking
	ModePopular
)

// Modes lists every mode in display order.
func Modes() []Mode {
	return []Mode{ModeAuto, ModeRanking, ModePopular}
}

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeRanking:
		return "ranking"
	case ModePopular:
		return "popular"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ModeNames returns the accepted spellings of every mode.
func ModeNames() []string {
	return lo.Map(Modes(), func(m Mode, _ int) string { return m.String() })
}

// ParseMode is case-insensitive. Unknown names yield an error that
// suggests the closest valid mode.
func ParseMode(name string) (Mode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, m := range Modes() {
		if m.String() == name {
			return m, nil
		}
	}

	closest := lo.MinBy(ModeNames(), func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	return ModeAuto, fmt.Errorf("unknown source %q, did you mean %q? (choose from %s)", name, closest, strings.Join(ModeNames(), ", "))
}

// Feeds returns the feeds consulted by m, in the order Pick tries them.
func (m Mode) Feeds() []Feed {
	switch m {
	case ModeAuto:
		return []Feed{Ranking, Popular}
	case ModeRanking:
		return []Feed{Ranking}
	case ModePopular:
		return []Feed{Popular}
	default:
		return nil
	}
}
