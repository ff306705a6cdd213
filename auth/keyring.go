// Package auth provides a high-level API for persisting and retrieving the member-site session from the system keyring.
package auth

import (
	"github.com/zalando/go-keyring"
)

const (
	service = "liberta-cli"
	user    = "icl-session-cookie"
)

// SetSessionCookie persists the WordPress login cookie to the system keyring.
// The expected value is the full "name=value" pair of a wordpress_logged_in cookie.
func SetSessionCookie(cookie string) error {
	return keyring.Set(service, user, cookie)
}

// SessionCookie retrieves the stored WordPress login cookie from the system keyring.
func SessionCookie() (string, error) {
	return keyring.Get(service, user)
}

// DeleteSessionCookie removes the stored WordPress login cookie from the system keyring.
func DeleteSessionCookie() error {
	return keyring.Delete(service, user)
}

// IsLoggedIn reports whether a session cookie is currently stored.
// It does not validate the cookie against the member site.
func IsLoggedIn() bool {
	cookie, err := SessionCookie()
	return err == nil && cookie != ""
}
