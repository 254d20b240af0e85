/* registry_test.go
 * Contains unit tests for the game definition registry and formatters
 */

package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parlour-dashboard/api/artifacts"
)

// region Lookup tests

func TestLookup_KnownGameTypes(t *testing.T) {
	for _, gameType := range []string{GamePrisonersDilemma, GamePoetrySlam, GameDebateSlam} {
		def, err := Lookup(gameType)
		require.NoError(t, err, gameType)
		assert.NotEmpty(t, def.Config.Name)
		assert.NotNil(t, def.TransformData)
		assert.NotNil(t, def.TransformGameDetail)
		assert.NotEmpty(t, def.Config.LeaderboardColumns)
	}
}

func TestLookup_UnknownGameType(t *testing.T) {
	_, err := Lookup("chess")
	assert.ErrorIs(t, err, ErrUnknownGameType)
}

// TestLookup_PlaceholderTypesAreNotRegistered checks that coming-soon game
// types stay out of the registry
func TestLookup_PlaceholderTypesAreNotRegistered(t *testing.T) {
	for _, gameType := range PlaceholderGameTypes {
		_, err := Lookup(gameType)
		assert.ErrorIs(t, err, ErrUnknownGameType, gameType)
	}
}

func TestGameTypes_Sorted(t *testing.T) {
	assert.Equal(t, []string{GameDebateSlam, GamePoetrySlam, GamePrisonersDilemma}, GameTypes())
}

// endregion

// region Config tests

func TestConfig_DataTypes(t *testing.T) {
	pd, err := Lookup(GamePrisonersDilemma)
	require.NoError(t, err)
	assert.Contains(t, pd.Config.DataTypes, artifacts.DataTypeMatchupMatrix)
	assert.Contains(t, pd.Config.DataTypes, artifacts.DataTypeRoundProgression)

	poetry, err := Lookup(GamePoetrySlam)
	require.NoError(t, err)
	assert.NotContains(t, poetry.Config.DataTypes, artifacts.DataTypeMatchupMatrix)

	debate, err := Lookup(GameDebateSlam)
	require.NoError(t, err)
	assert.Contains(t, debate.Config.DataTypes, artifacts.DataTypeMatchupMatrix)
}

func TestConfig_ColumnAlignments(t *testing.T) {
	pd, err := Lookup(GamePrisonersDilemma)
	require.NoError(t, err)
	for _, col := range pd.Config.LeaderboardColumns {
		assert.Contains(t, []string{AlignLeft, AlignRight}, col.Align, col.Key)
	}
}

// endregion

// region Formatter tests

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "66.7%", FormatPercent(0.667))
	assert.Equal(t, "0.0%", FormatPercent(0))
	assert.Equal(t, "100.0%", FormatPercent(1))
}

func TestFormatFixed2(t *testing.T) {
	assert.Equal(t, "12.67", FormatFixed2(12.67))
	assert.Equal(t, "3.00", FormatFixed2(3))
}

// endregion
