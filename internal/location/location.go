package location

import (
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	// UnknownZone is used for empty or unusable location text.
	UnknownZone = "Unknown"

	// CommandSeparator joins several navigation commands in one cell.
	CommandSeparator = " | "

	emDash = "—"
)

var (
	coordPattern  = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*,\s*(\d+(?:\.\d+)?)\s*—.*\((\d+)\)\s*$`)
	mapIDSuffixRe = regexp.MustCompile(`\s*\(\d+\)\s*$`)
)

// Fragment is one `;` separated entry of a locations string.
type Fragment struct {
	Raw  string
	Zone string

	// Set only for coordinate form: `<x>, <y> — <text> (<mapID>)`.
	HasCoords bool
	X         string
	Y         string
	MapID     string
}

// Command renders the TomTom waypoint for the fragment, or "" when the
// fragment carries no coordinates.
func (f Fragment) Command(title string) string {
	if !f.HasCoords {
		return ""
	}
	return Waypoint(f.MapID, f.X, f.Y, title)
}

// Waypoint formats `/way #<mapID> <x> <y> <title>`.
func Waypoint(mapID, x, y, title string) string {
	return "/way #" + mapID + " " + x + " " + y + " " + title
}

// Split breaks a locations string on `;`, trimming and dropping empty parts.
func Split(locations string) []string {
	parts := strings.Split(locations, ";")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

func Parse(fragment string) Fragment {
	f := Fragment{Raw: fragment, Zone: Zone(fragment)}
	if m := coordPattern.FindStringSubmatch(fragment); m != nil {
		f.HasCoords = true
		f.X, f.Y, f.MapID = m[1], m[2], m[3]
	} else if strings.Contains(fragment, emDash) {
		log.Debugf("location %q has a zone separator but no usable coordinates", fragment)
	}
	return f
}

func ParseAll(locations string) []Fragment {
	parts := Split(locations)
	fragments := make([]Fragment, 0, len(parts))
	for _, part := range parts {
		fragments = append(fragments, Parse(part))
	}
	return fragments
}

// Zone canonicalizes a fragment: the text after the first em-dash (or the
// whole fragment) without a trailing `(<digits>)`. Names with neither part
// come back unchanged.
func Zone(fragment string) string {
	right := fragment
	if _, after, found := strings.Cut(fragment, emDash); found {
		right = after
	}
	right = strings.TrimSpace(mapIDSuffixRe.ReplaceAllString(right, ""))
	if right == "" {
		return UnknownZone
	}
	return right
}

// Commands returns the waypoint commands for every coordinate-form fragment,
// in text order.
func Commands(locations, title string) []string {
	cmds := make([]string, 0)
	for _, f := range ParseAll(locations) {
		if cmd := f.Command(title); cmd != "" {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func JoinCommands(cmds []string) string {
	return strings.Join(cmds, CommandSeparator)
}

// ZoneFragments is ParseAll for the zone reports: an empty locations string
// stands for a single Unknown fragment.
func ZoneFragments(locations string) []Fragment {
	fragments := ParseAll(locations)
	if len(fragments) == 0 {
		return []Fragment{{Raw: UnknownZone, Zone: UnknownZone}}
	}
	return fragments
}
