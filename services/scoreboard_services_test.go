package services_test

import (
	"context"
	"testing"

	"sportsday/services"
	"sportsday/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreboardRanksAndMedals(t *testing.T) {
	db := testutil.SetupTestDB(t)
	red := testutil.CreateColor(t, db, "Red")
	blue := testutil.CreateColor(t, db, "Blue")
	green := testutil.CreateColor(t, db, "Green")
	yellow := testutil.CreateColor(t, db, "Yellow")

	first := testutil.CreateEvent(t, db)
	second := testutil.CreateEvent(t, db)
	_, err := services.RecordEventResults(db, first.ID, []services.ResultInput{
		{ColorID: red.ID, Rank: 1, Points: 10},
		{ColorID: blue.ID, Rank: 2, Points: 6},
		{ColorID: green.ID, Rank: 3, Points: 4},
	})
	require.NoError(t, err)
	_, err = services.RecordEventResults(db, second.ID, []services.ResultInput{
		{ColorID: blue.ID, Rank: 1, Points: 4},
		{ColorID: yellow.ID, Rank: 4, Points: 1},
	})
	require.NoError(t, err)

	entries, err := services.Scoreboard(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	// Red and Blue tie on 10 and share first place, ordered by name
	assert.Equal(t, "Blue", entries[0].Name)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "Red", entries[1].Name)
	assert.Equal(t, 1, entries[1].Rank)
	assert.Equal(t, "Green", entries[2].Name)
	assert.Equal(t, 3, entries[2].Rank)
	assert.Equal(t, "Yellow", entries[3].Name)
	assert.Equal(t, 4, entries[3].Rank)

	assert.Equal(t, 1, entries[0].Gold)
	assert.Equal(t, 1, entries[0].Silver)
	assert.Equal(t, 1, entries[1].Gold)
	assert.Equal(t, 1, entries[2].Bronze)
	assert.Zero(t, entries[3].Gold+entries[3].Silver+entries[3].Bronze)
}

func TestScoreboardWithoutColors(t *testing.T) {
	db := testutil.SetupTestDB(t)
	entries, err := services.ComputeScoreboard(db)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
