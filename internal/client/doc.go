// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs the terminal UI under a signal-aware context and turns a deliberate
// quit into a clean exit.
package client
