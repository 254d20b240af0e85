/* models.go
 * This file contain the structs and helper functions that are shared between sub packages
 */

package shared

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Model identifies a competitor in the benchmark. The ID has the form
// "<provider>:<name>" and the Name is the human readable label shown in the UI.
type Model struct {
	ID   string `json:"model_id"`
	Name string `json:"model_name"`
}

// ProviderPrefixes is the set of provider labels that get stripped from model
// display names. Models from providers not in this list pass through
// unshortened, so supporting a new provider is an append here.
var ProviderPrefixes = []string{
	"OpenAI",
	"Anthropic",
	"Mistral",
	"xAI",
	"Google",
}

// ShortenModelName strips a known provider prefix from a model display name,
// e.g. "xAI Grok-2" becomes "Grok-2". A name whose prefix is not in
// ProviderPrefixes is returned unchanged.
func ShortenModelName(name string) string {
	for _, prefix := range ProviderPrefixes {
		if strings.HasPrefix(name, prefix+" ") {
			return strings.TrimPrefix(name, prefix+" ")
		}
	}
	return name
}

// ModelSuffix returns the part of a model id after the provider tag,
// e.g. "openai:gpt-4o" -> "gpt-4o". Ids without a provider tag are returned as is.
func ModelSuffix(modelID string) string {
	if i := strings.Index(modelID, ":"); i >= 0 {
		return modelID[i+1:]
	}
	return modelID
}

// sessionTimestampPattern matches the YYYYMMDD_HHMMSS timestamp every session id embeds
var sessionTimestampPattern = regexp.MustCompile(`\d{8}_\d{6}`)

// SessionTimestamp extracts the timestamp substring from a session id.
// Preconditions: Receives a session id of any form
// Postconditions: Returns the first YYYYMMDD_HHMMSS substring, or an empty string if the id does not contain one
func SessionTimestamp(sessionID string) string {
	return sessionTimestampPattern.FindString(sessionID)
}

// ParseSessionTime parses the timestamp embedded in a session id into a time.Time.
// It returns an error if the id carries no timestamp or the timestamp is not a valid date.
func ParseSessionTime(sessionID string) (time.Time, error) {
	ts := SessionTimestamp(sessionID)
	if ts == "" {
		return time.Time{}, fmt.Errorf("session id %q contains no timestamp", sessionID)
	}
	t, err := time.Parse("20060102_150405", ts)
	if err != nil {
		return time.Time{}, fmt.Errorf("session id %q has invalid timestamp: %w", sessionID, err)
	}
	return t, nil
}
