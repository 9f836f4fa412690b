package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PatchNotFoundMarker prefixes launch failures that carry a structured
// diagnostic document.
const PatchNotFoundMarker = "PATCH_NOT_FOUND:"

type PatchDiagnostic struct {
	Game        GameID  `json:"gameId"`
	Version     Version `json:"version"`
	Channel     Channel `json:"channel"`
	Fingerprint string  `json:"md5"`
	URL         string  `json:"url"`
	StatusCode  int     `json:"statusCode"`
	ErrorType   string  `json:"errorType"`
}

// ParsePatchDiagnostic finds the marker in message and decodes the JSON
// document that follows it.
func ParsePatchDiagnostic(message string) (PatchDiagnostic, bool) {
	index := strings.Index(message, PatchNotFoundMarker)
	if index < 0 {
		return PatchDiagnostic{}, false
	}

	payload := strings.TrimSpace(message[index+len(PatchNotFoundMarker):])
	if payload == "" {
		return PatchDiagnostic{}, false
	}

	var diag PatchDiagnostic
	decoder := json.NewDecoder(strings.NewReader(payload))
	if err := decoder.Decode(&diag); err != nil {
		return PatchDiagnostic{}, false
	}
	if diag.Game == "" && diag.Fingerprint == "" && diag.URL == "" {
		return PatchDiagnostic{}, false
	}

	return diag, true
}

func (d PatchDiagnostic) Error() string {
	return fmt.Sprintf("no patch for %s %s (channel %d): %s", d.Game, d.Version, d.Channel, d.ErrorType)
}

// Text is the clipboard form of the diagnostic.
func (d PatchDiagnostic) Text() string {
	lines := []string{
		"game: " + string(d.Game),
		"version: " + string(d.Version),
		fmt.Sprintf("channel: %d", d.Channel),
		"md5: " + d.Fingerprint,
		"url: " + d.URL,
		fmt.Sprintf("status: %d", d.StatusCode),
		"error: " + d.ErrorType,
	}

	return strings.Join(lines, "\n")
}

func (d PatchDiagnostic) Encode() (string, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("encode patch diagnostic: %w", err)
	}

	return PatchNotFoundMarker + string(data), nil
}
