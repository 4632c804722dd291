// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package remotesettings

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidURL is matched (via errors.Is) by every [*URLError].
	ErrInvalidURL = errors.New("invalid url")

	// ErrMissingCollection indicates a [Config] without a collection name.
	ErrMissingCollection = errors.New("collection name is required")
	// ErrAmbiguousServer indicates a [Config] where both Server and the
	// deprecated ServerURL are set.
	ErrAmbiguousServer = errors.New("server and server url are both set")

	errMissingScheme     = errors.New("missing scheme")
	errMissingHost       = errors.New("missing host")
	errInvalidIPv4       = errors.New("invalid ipv4 address")
	errInvalidIPv6       = errors.New("invalid ipv6 address")
	errInvalidPort       = errors.New("invalid port")
	errForbiddenHostRune = errors.New("forbidden host code point")
)

// URLError is returned when a custom server address cannot be parsed as an
// absolute URL.
type URLError struct {
	// URL is the raw string supplied by the caller.
	URL string
	// Err is the parser diagnostic.
	Err error
}

func (e *URLError) Error() string {
	return fmt.Sprintf("%s %q: %v", ErrInvalidURL, e.URL, e.Err)
}

func (e *URLError) Unwrap() error {
	return e.Err
}

// Is reports whether target is [ErrInvalidURL].
func (e *URLError) Is(target error) bool {
	return target == ErrInvalidURL
}
