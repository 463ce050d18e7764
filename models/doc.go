// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the domain and wire types shared by the store,
// adapter, service and tui packages: staged create payloads for Fineract
// clients and groups, the sync state reported to the UI, and the JSON
// shapes exchanged with the banking server.
package models
