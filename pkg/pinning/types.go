package pinning

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNotConfigured is returned when no pinning credentials are configured.
var ErrNotConfigured = errors.New("pinning service API key and secret are not configured")

// File is content uploaded with PinFile.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// PinResult is the pinning service's answer to a successful upload.
type PinResult struct {
	IpfsHash    string `json:"IpfsHash"`
	PinSize     int64  `json:"PinSize"`
	Timestamp   string `json:"Timestamp"`
	IsDuplicate bool   `json:"isDuplicate,omitempty"`
}

// URI returns the ipfs:// URI of the pinned content.
func (r *PinResult) URI() string {
	return "ipfs://" + r.IpfsHash
}

// APIError is a non-2xx answer from the pinning service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pinning service returned %d: %s", e.StatusCode, e.Message)
}

type pinOptions struct {
	Name string `json:"name,omitempty"`
}

type pinJSONRequest struct {
	Content  any        `json:"pinataContent"`
	Metadata pinOptions `json:"pinataMetadata"`
}

// errorMessage extracts a human readable message from an error body. The
// service answers either {"error": "msg"} or {"error": {"reason": ..., "details": ...}}.
func errorMessage(body []byte) string {
	var envelope struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if len(envelope.Error) > 0 {
			var s string
			if err := json.Unmarshal(envelope.Error, &s); err == nil && s != "" {
				return s
			}
			var obj struct {
				Reason  string `json:"reason"`
				Details string `json:"details"`
			}
			if err := json.Unmarshal(envelope.Error, &obj); err == nil && obj.Reason != "" {
				if obj.Details != "" {
					return obj.Reason + ": " + obj.Details
				}
				return obj.Reason
			}
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return "empty response"
	}
	const maxLen = 200
	if len(msg) > maxLen {
		msg = msg[:maxLen] + "..."
	}
	return msg
}
