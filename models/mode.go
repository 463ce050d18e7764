// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Mode selects whether create requests go straight to the server or are
// staged in the local store for a later sync.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// ParseMode converts a configuration string into a [Mode]. An empty string
// yields [ModeOffline].
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeOffline:
		return ModeOffline, nil
	case ModeOnline:
		return ModeOnline, nil
	default:
		return "", fmt.Errorf("unknown mode %q", s)
	}
}
