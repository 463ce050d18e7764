// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/fineract-offline-sync/models"
)

func renderBuildInfoWindow(info models.BuildInfo, mode models.Mode) string {
	info = info.WithDefaults()

	var b strings.Builder
	b.WriteString("Application: fineract-offline-sync\n")
	b.WriteString("Mode: ")
	b.WriteString(string(mode))
	b.WriteString("\n")
	b.WriteString("Version: ")
	b.WriteString(info.Version)
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(info.Date)
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(info.Commit)

	return renderPage("ABOUT", b.String(), "esc: back")
}
