// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package remotesettings

import (
	"net/url"
	"strings"
)

// Base addresses of the fixed Remote Settings deployments.
const (
	ProdURL  = "https://firefox.settings.services.mozilla.com"
	StageURL = "https://firefox.settings.services.allizom.org"
	DevURL   = "https://remote-settings-dev.allizom.org"
)

var (
	prodURL  = mustParseURL(ProdURL)
	stageURL = mustParseURL(StageURL)
	devURL   = mustParseURL(DevURL)
)

// ServerKind enumerates the deployment targets a [Server] can point at.
type ServerKind int

const (
	KindProd ServerKind = iota
	KindStage
	KindDev
	KindCustom
)

func (k ServerKind) String() string {
	switch k {
	case KindProd:
		return "prod"
	case KindStage:
		return "stage"
	case KindDev:
		return "dev"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Server is the Remote Settings server a client should use.
//
// The zero value is the production server. Custom servers carry the raw,
// unvalidated address; validation happens in [Server.URL].
type Server struct {
	kind ServerKind
	url  string
}

var (
	ServerProd  = Server{kind: KindProd}
	ServerStage = Server{kind: KindStage}
	ServerDev   = Server{kind: KindDev}
)

// CustomServer returns a Server pointing at rawURL.
func CustomServer(rawURL string) Server {
	return Server{kind: KindCustom, url: rawURL}
}

// ParseServer maps a textual server selection to a Server.
//
// "prod"/"production", "stage"/"staging" and "dev"/"development" select the
// fixed deployments (case-insensitive). Any other value is treated as a
// custom address. ok is false for an empty or blank name.
func ParseServer(name string) (s Server, ok bool) {
	name = strings.TrimSpace(name)
	switch strings.ToLower(name) {
	case "":
		return Server{}, false
	case "prod", "production":
		return ServerProd, true
	case "stage", "staging":
		return ServerStage, true
	case "dev", "development":
		return ServerDev, true
	default:
		return CustomServer(name), true
	}
}

// Kind returns the deployment target of s.
func (s Server) Kind() ServerKind {
	return s.kind
}

// RawURL returns the caller-supplied address of a custom server, or the
// base address constant of a fixed one.
func (s Server) RawURL() string {
	switch s.kind {
	case KindStage:
		return StageURL
	case KindDev:
		return DevURL
	case KindCustom:
		return s.url
	default:
		return ProdURL
	}
}

// String returns the server name for fixed servers and the raw address for
// custom ones.
func (s Server) String() string {
	if s.kind == KindCustom {
		return s.url
	}
	return s.kind.String()
}

// URL resolves s to an absolute URL.
//
// Fixed servers never fail. A custom address that is not a valid absolute
// URL yields a [*URLError]. Every call returns a new *url.URL that the
// caller may modify.
func (s Server) URL() (*url.URL, error) {
	switch s.kind {
	case KindStage:
		return cloneURL(stageURL), nil
	case KindDev:
		return cloneURL(devURL), nil
	case KindCustom:
		u, err := parseAbsoluteURL(s.url)
		if err != nil {
			return nil, &URLError{URL: s.url, Err: err}
		}
		return u, nil
	default:
		return cloneURL(prodURL), nil
	}
}

// ServerURLString returns the resolved URL of s in its textual form.
func ServerURLString(s Server) (string, error) {
	u, err := s.URL()
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func mustParseURL(raw string) *url.URL {
	u, err := parseAbsoluteURL(raw)
	if err != nil {
		panic("remotesettings: invalid built-in server url " + raw + ": " + err.Error())
	}
	return u
}

func cloneURL(u *url.URL) *url.URL {
	c := *u
	if u.User != nil {
		user := *u.User
		c.User = &user
	}
	return &c
}
