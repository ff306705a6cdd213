// Package version tracks the application version and discovers updates.
package version

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"github.com/liberta-cli/liberta/filesystem"
	"github.com/liberta-cli/liberta/util"
	"github.com/liberta-cli/liberta/where"
	"github.com/metafates/gache"
)

var versionCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest returns the most recent stable release version. The GitHub Releases
// API response is cached to stay clear of rate limits.
func Latest() (version string, err error) {
	ver, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && ver != "" {
		return ver, nil
	}

	resp, err := http.Get("https://api.github.com/repos/liberta-cli/liberta/releases/latest")
	if err != nil {
		return
	}

	defer util.Ignore(resp.Body.Close)

	var release struct {
		TagName string `json:"tag_name"`
	}

	err = json.NewDecoder(resp.Body).Decode(&release)
	if err != nil {
		return
	}

	if release.TagName == "" {
		err = errors.New("empty tag name")
		return
	}

	// Release tags carry a leading "v".
	version = release.TagName[1:]
	_ = versionCacher.Set(version)
	return
}
