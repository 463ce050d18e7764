// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the client packages: the
// HTTP client used by the Fineract adapter and the external id generator.
package utils

import (
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(nil)
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance. When limiter
// is non-nil every request waits for a token before it is sent; the wait is
// abandoned when the request context is done.
func NewHTTPClient(limiter *rate.Limiter) *HTTPClient {
	client := resty.New()
	if limiter != nil {
		client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			return limiter.Wait(r.Context())
		})
	}
	return &HTTPClient{Client: client}
}
