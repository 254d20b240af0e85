/* main_test.go
 * Contains unit tests for the entry point helpers
 */

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// region parseGamesList tests

func TestParseGamesList(t *testing.T) {
	tags, err := parseGamesList("prisoners_dilemma poetry_slam debate_slam")
	require.NoError(t, err)
	assert.Equal(t, []string{"prisoners_dilemma", "poetry_slam", "debate_slam"}, tags)
}

func TestParseGamesList_SingleEntry(t *testing.T) {
	tags, err := parseGamesList("prisoners_dilemma")
	require.NoError(t, err)
	assert.Equal(t, []string{"prisoners_dilemma"}, tags)
}

func TestParseGamesList_CollapsesEmptyEntries(t *testing.T) {
	tags, err := parseGamesList("  prisoners_dilemma   poetry_slam ")
	require.NoError(t, err)
	assert.Equal(t, []string{"prisoners_dilemma", "poetry_slam"}, tags)
}

func TestParseGamesList_Empty(t *testing.T) {
	tags, err := parseGamesList("")
	require.NoError(t, err)
	assert.Empty(t, tags)
}

// endregion

// region envOr tests

func TestEnvOr(t *testing.T) {
	t.Setenv("DASHBOARD_TEST_KEY", "set")
	assert.Equal(t, "set", envOr("DASHBOARD_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", envOr("DASHBOARD_TEST_KEY_UNSET", "fallback"))
}

// endregion
