// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the client's optional operational HTTP server
// (metrics, health, version) and shuts it down gracefully.
package server
