// Package history tracks and persists the content items the user has viewed.
package history

import (
	"github.com/liberta-cli/liberta/filesystem"
	"github.com/liberta-cli/liberta/source"
	"github.com/liberta-cli/liberta/where"
	"github.com/metafates/gache"
)

// cacher is the disk-backed registry of view records, keyed by content URL.
var cacher = gache.New[map[string]*SavedView](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns all view records from the persistent store.
func Get() (map[string]*SavedView, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}

	if expired || cached == nil {
		return make(map[string]*SavedView), nil
	}

	return cached, nil
}

// Save records that a content item was viewed. Re-viewing an item refreshes
// its timestamp and bumps its view count.
func Save(details *source.VideoDetails) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	record := newSavedView(details)
	if existing, ok := saved[record.URL]; ok {
		record.Views = existing.Views + 1
	}

	saved[record.URL] = record

	return cacher.Set(saved)
}

// Remove permanently deletes a view record.
func Remove(view *SavedView) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, view.URL)
	return cacher.Set(saved)
}
