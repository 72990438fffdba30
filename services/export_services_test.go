package services

import (
	"bytes"
	"image/png"
	"testing"

	"sportsday/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportEventResults(t *testing.T) {
	event := models.Event{Name: "Football"}
	results := []models.EventResult{
		{Rank: 1, Points: 10, Color: &models.Color{Name: "Red"}, Athlete: &models.Athlete{FirstName: "Somchai", LastName: "Dee"}},
		{Rank: 2, Points: 6, Color: &models.Color{Name: "Blue"}, Note: "photo finish"},
	}

	f, err := ExportEventResults(event, results)
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(resultsSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Football", title)

	rows, err := f.GetRows(resultsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"1", "Red", "Somchai Dee", "10"}, rows[3])
	assert.Equal(t, "photo finish", rows[4][4])
}

func TestExportScoreboard(t *testing.T) {
	f, err := ExportScoreboard([]ScoreboardEntry{
		{Rank: 1, Name: "Red", TotalScore: 20, Gold: 2},
		{Rank: 2, Name: "Blue", TotalScore: 12, Silver: 1},
	})
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(scoreboardSheet)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 3)
	assert.Contains(t, rows[len(rows)-2], "Red")
	assert.Contains(t, rows[len(rows)-1], "Blue")
}

func TestVoteQRCode(t *testing.T) {
	assert.Equal(t, "http://sportsday.test/vote/abc", VotePageURL("http://sportsday.test/", "abc"))

	data, err := GenerateVoteQRCode("http://sportsday.test", "abc", 0)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}
