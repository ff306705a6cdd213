package icl

import (
	"fmt"
	"io"
	"net/http"

	"github.com/liberta-cli/liberta/auth"
	"github.com/liberta-cli/liberta/constant"
	"github.com/liberta-cli/liberta/key"
	"github.com/liberta-cli/liberta/network"
	"github.com/liberta-cli/liberta/source"
	"github.com/spf13/viper"
)

// Fetcher retrieves the raw HTML of a member-site page. It is the seam
// between page parsing and the network: operations are tested against a stub
// and run in production against httpFetcher.
type Fetcher interface {
	Fetch(url string) (string, error)
}

// httpFetcher fetches member pages over HTTP with the stored session cookie.
type httpFetcher struct{}

func (httpFetcher) Fetch(url string) (string, error) {
	cookie, err := auth.SessionCookie()
	if err != nil || cookie == "" {
		return "", source.ErrNotAuthenticated
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Cookie", cookie)

	resp, err := client().Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: status %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

func client() *http.Client {
	if viper.GetBool(key.NetworkTLSFingerprint) {
		return network.FingerprintedClient()
	}

	return network.Client
}
