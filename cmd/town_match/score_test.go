package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scout2retire/town-match/internal/types"
)

func resetScoreFlags() {
	scorePrefsFile = ""
	scoreTownsFile = ""
	scoreTownName = ""
	scoreConfigPath = ""
	scoreOutput = ""
}

func TestRunScore_ByName(t *testing.T) {
	resetScoreFlags()
	dir := t.TempDir()
	scoreTownsFile = sampleTownsFile(t, dir)
	scorePrefsFile = writeJSONFile(t, dir, "prefs.json",
		types.UserPreferences{Countries: []string{"Spain"}})
	scoreTownName = "valencia"
	scoreOutput = filepath.Join(dir, "result.json")

	err := runScore(nil, nil)
	require.NoError(t, err)
}

func TestRunScore_TownNotInFile(t *testing.T) {
	resetScoreFlags()
	dir := t.TempDir()
	scoreTownsFile = sampleTownsFile(t, dir)
	scorePrefsFile = writeJSONFile(t, dir, "prefs.json", types.UserPreferences{})
	scoreTownName = "Atlantis"

	err := runScore(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestFindTown_MatchesByID(t *testing.T) {
	towns := []types.TownProfile{
		{ID: mustUUID(t, "00000000-0000-0000-0000-000000000001"), Name: "Valencia"},
		{ID: mustUUID(t, "00000000-0000-0000-0000-000000000002"), Name: "Porto"},
	}

	town := findTown(towns, "00000000-0000-0000-0000-000000000002")

	require.NotNil(t, town)
	assert.Equal(t, "Porto", town.Name)
}

func TestFindTown_NameIsCaseInsensitive(t *testing.T) {
	towns := []types.TownProfile{{Name: "Valencia"}}

	assert.NotNil(t, findTown(towns, "  VALENCIA "))
	assert.Nil(t, findTown(towns, "Madrid"))
}
