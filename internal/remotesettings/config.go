// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package remotesettings

import (
	"net/url"
	"strings"
)

// DefaultBucketName is the bucket used when [Config.BucketName] is empty.
const DefaultBucketName = "main"

// Config is the client configuration handed to sync clients.
//
// It is built once when the client is created and only read afterwards.
// Construction performs no URL validation; the server address is checked
// on first resolution.
type Config struct {
	// Server selects the Remote Settings server. Nil means production.
	Server *Server

	// ServerURL is a raw server address override.
	//
	// Deprecated: use Server with [CustomServer] instead.
	ServerURL string

	// BucketName is the bucket containing the collection. Empty means
	// [DefaultBucketName].
	BucketName string

	// CollectionName is the collection to sync. Required.
	CollectionName string
}

// Validate checks that the required fields are present. It does not parse
// the server address.
func (c Config) Validate() error {
	if c.CollectionName == "" {
		return ErrMissingCollection
	}
	if c.Server != nil && c.ServerURL != "" {
		return ErrAmbiguousServer
	}
	return nil
}

// ResolveServer returns the effective server of c.
//
// Setting both Server and the deprecated ServerURL is rejected with
// [ErrAmbiguousServer]; neither takes priority over the other.
func (c Config) ResolveServer() (Server, error) {
	switch {
	case c.Server != nil && c.ServerURL != "":
		return Server{}, ErrAmbiguousServer
	case c.Server != nil:
		return *c.Server, nil
	case c.ServerURL != "":
		return CustomServer(c.ServerURL), nil
	default:
		return ServerProd, nil
	}
}

// BaseURL resolves the effective server to an absolute URL.
func (c Config) BaseURL() (*url.URL, error) {
	server, err := c.ResolveServer()
	if err != nil {
		return nil, err
	}
	return server.URL()
}

// Bucket returns the bucket name, falling back to [DefaultBucketName].
func (c Config) Bucket() string {
	if c.BucketName == "" {
		return DefaultBucketName
	}
	return c.BucketName
}

// RecordsURL returns the records endpoint of the configured collection:
// {base}v1/buckets/{bucket}/collections/{collection}/records.
//
// Bucket and collection names are escaped as single path segments. A base
// path without a trailing slash is treated as a directory.
func (c Config) RecordsURL() (*url.URL, error) {
	if c.CollectionName == "" {
		return nil, ErrMissingCollection
	}

	base, err := c.BaseURL()
	if err != nil {
		return nil, err
	}

	dir := base.EscapedPath()
	if !strings.HasSuffix(dir, "/") {
		dir += "/"
	}

	bucket, collection := c.Bucket(), c.CollectionName
	rawPath := dir + "v1/buckets/" + url.PathEscape(bucket) + "/collections/" + url.PathEscape(collection) + "/records"

	path, err := url.PathUnescape(rawPath)
	if err != nil {
		return nil, &URLError{URL: base.String(), Err: err}
	}

	base.Path, base.RawPath = path, rawPath
	base.RawQuery, base.Fragment, base.RawFragment = "", "", ""

	return base, nil
}
