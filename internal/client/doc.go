// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the notepad-sync command line application.
//
// It wires local storage, the remote adapter, the hashing pool and the
// client services into one process and exposes them as cobra commands.
package client
