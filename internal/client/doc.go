// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It takes an already constructed server adapter and reports the resolved
// Remote Settings endpoints. Configuration errors never reach this package:
// they stop the process while the adapter is built.
package client
