package tui

import (
	"github.com/liberta-cli/liberta/icon"
	"github.com/liberta-cli/liberta/provider/icl"
	"github.com/liberta-cli/liberta/source"
)

// listItem adapts a content summary to the bubbles list item contract.
type listItem struct {
	summary *source.VideoSummary
}

func (l listItem) Title() string {
	return l.summary.Title
}

func (l listItem) Description() string {
	kind := icl.Classify(l.summary.URL)

	switch {
	case kind == icl.KindCourse:
		return icon.Get(icon.Course) + " curso"
	case kind.IsLesson():
		return icon.Get(icon.Video) + " " + kind.String()
	default:
		return l.summary.URL
	}
}

func (l listItem) FilterValue() string {
	return l.summary.Title
}
