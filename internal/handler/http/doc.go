// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http serves the client's operational endpoints: Prometheus
// metrics, a queue health report and the build version. Requests are access
// logged and panics are recovered before they reach the handlers.
package http
