// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	fErr := &FineractError{StatusCode: resp.StatusCode(), sentinel: sentinelFor(resp.StatusCode())}

	body := resp.Body()
	if err := json.Unmarshal(body, &fErr.Body); err != nil || fErr.Body.UserMessage() == "" {
		fErr.Raw = strings.TrimSpace(string(body))
		if fErr.Raw == "" {
			fErr.Raw = http.StatusText(resp.StatusCode())
		}
	}

	return fErr
}

func sentinelFor(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return ErrUnexpectedStatus
	}
}
