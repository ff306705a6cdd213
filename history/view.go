package history

import (
	"fmt"
	"time"

	"github.com/liberta-cli/liberta/source"
)

// SavedView is a single viewed content item preserved in the user's history.
type SavedView struct {
	SourceID string    `json:"source_id"`
	Title    string    `json:"title"`
	URL      string    `json:"url"`
	IsSeries bool      `json:"is_series"`
	Episodes int       `json:"episodes"`
	Views    int       `json:"views"`
	ViewedAt time.Time `json:"viewed_at"`
}

func (s *SavedView) String() string {
	if s.IsSeries {
		return fmt.Sprintf("%s (%d aulas)", s.Title, s.Episodes)
	}

	return s.Title
}

func newSavedView(details *source.VideoDetails) *SavedView {
	return &SavedView{
		SourceID: details.ID.Platform,
		Title:    details.Title,
		URL:      details.URL,
		IsSeries: details.IsSeries(),
		Episodes: len(details.Episodes),
		Views:    1,
		ViewedAt: time.Now(),
	}
}
