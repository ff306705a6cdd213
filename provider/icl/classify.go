package icl

import "strings"

// Kind tags what a member-site URL denotes, derived solely from its path.
type Kind int

const (
	// KindNone marks URLs that match no known content path.
	KindNone Kind = iota

	// KindCourse is a course page whose body is an ordered lesson list.
	KindCourse

	// KindWatch is a redirect page embedding a link to the actual episode.
	KindWatch

	// KindLesson is a directly playable course lesson.
	KindLesson

	// KindEpisode is a directly playable series episode.
	KindEpisode
)

func (k Kind) String() string {
	switch k {
	case KindCourse:
		return "course"
	case KindWatch:
		return "watch"
	case KindLesson:
		return "lesson"
	case KindEpisode:
		return "episode"
	default:
		return "none"
	}
}

// IsLesson reports whether the kind denotes a directly playable page.
func (k Kind) IsLesson() bool {
	return k == KindLesson || k == KindEpisode
}

// kindMarkers is the ordered list of path substrings; first match wins.
var kindMarkers = []struct {
	marker string
	kind   Kind
}{
	{"/curso/", KindCourse},
	{"/watch/", KindWatch},
	{"/aula/", KindLesson},
	{"/episodio/", KindEpisode},
}

// Classify maps a URL to its content kind by path substring.
// It is pure and total; unknown URLs map to KindNone.
func Classify(url string) Kind {
	for _, m := range kindMarkers {
		if strings.Contains(url, m.marker) {
			return m.kind
		}
	}

	return KindNone
}
