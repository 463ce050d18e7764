// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateResult is the body Fineract returns for a successful create command.
type CreateResult struct {
	OfficeID   int64 `json:"officeId"`
	ClientID   int64 `json:"clientId,omitempty"`
	GroupID    int64 `json:"groupId,omitempty"`
	ResourceID int64 `json:"resourceId"`
}

// AuthResult is the body of POST /authentication.
type AuthResult struct {
	Username      string `json:"username"`
	UserID        int64  `json:"userId"`
	AuthKey       string `json:"base64EncodedAuthenticationKey"`
	Authenticated bool   `json:"authenticated"`
	OfficeID      int64  `json:"officeId"`
	OfficeName    string `json:"officeName"`
}

// ErrorResponse is the error envelope Fineract uses for 4xx/5xx replies.
type ErrorResponse struct {
	DeveloperMessage   string          `json:"developerMessage"`
	HTTPStatusCode     string          `json:"httpStatusCode"`
	DefaultUserMessage string          `json:"defaultUserMessage"`
	GlobalisationCode  string          `json:"userMessageGlobalisationCode"`
	ParameterName      string          `json:"parameterName,omitempty"`
	Errors             []ErrorResponse `json:"errors,omitempty"`
}

// UserMessage picks the most specific human-readable message in the
// envelope: the first nested error if any, otherwise the top-level one.
func (e ErrorResponse) UserMessage() string {
	for _, nested := range e.Errors {
		if nested.DefaultUserMessage != "" {
			return nested.DefaultUserMessage
		}
	}
	if e.DefaultUserMessage != "" {
		return e.DefaultUserMessage
	}
	return e.DeveloperMessage
}
