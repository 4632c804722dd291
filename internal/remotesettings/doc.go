// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package remotesettings resolves which Remote Settings server a syncing
// client talks to.
//
// A [Server] is either one of the fixed deployment targets ([ServerProd],
// [ServerStage], [ServerDev]) or a custom address built with
// [CustomServer]. Fixed targets always resolve; a custom address is parsed
// as an absolute URL and fails with an error matching [ErrInvalidURL] when
// it is malformed.
//
// [Config] bundles the server choice with the bucket and collection names
// consumed by sync clients. All functions are pure and safe for concurrent
// use.
package remotesettings
