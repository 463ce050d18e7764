// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BuildInfo carries the linker-injected build metadata shown on startup and
// in the TUI about box.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// WithDefaults returns a copy with every empty field replaced by "N/A".
func (b BuildInfo) WithDefaults() BuildInfo {
	if b.Version == "" {
		b.Version = "N/A"
	}
	if b.Date == "" {
		b.Date = "N/A"
	}
	if b.Commit == "" {
		b.Commit = "N/A"
	}
	return b
}
