package services

import (
	"context"
	"encoding/json"
	"time"

	"sportsday/config"
	"sportsday/database"
	"sportsday/metrics"
	"sportsday/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const ScoreboardCacheKey = "scoreboard:colors"

// ScoreboardEntry is one color's line on the overall scoreboard
type ScoreboardEntry struct {
	Rank       int    `json:"rank"`
	ColorID    string `json:"colorId"`
	Name       string `json:"name"`
	HexCode    string `json:"hexCode"`
	TotalScore int    `json:"totalScore"`
	Gold       int    `json:"gold"`
	Silver     int    `json:"silver"`
	Bronze     int    `json:"bronze"`
}

type medalCount struct {
	ColorID string
	Rank    int
	Count   int
}

// Scoreboard returns the overall standings, served from redis when a fresh copy is cached
func Scoreboard(ctx context.Context, db *gorm.DB) ([]ScoreboardEntry, error) {
	if database.REDIS != nil {
		cached, err := database.REDIS.Get(ctx, ScoreboardCacheKey).Result()
		if err == nil && cached != "" {
			var entries []ScoreboardEntry
			if err := json.Unmarshal([]byte(cached), &entries); err == nil {
				metrics.CacheHits.Inc()
				return entries, nil
			}
		}
		metrics.CacheMisses.Inc()
	}

	entries, err := ComputeScoreboard(db)
	if err != nil {
		return nil, err
	}

	if database.REDIS != nil {
		if payload, err := json.Marshal(entries); err == nil {
			if err := database.REDIS.Set(ctx, ScoreboardCacheKey, payload, config.Current.ScoreboardCacheTTL).Err(); err != nil {
				// Just log the error, don't fail the request
				log.WithError(err).Warn("failed to cache scoreboard")
			}
		}
	}
	return entries, nil
}

// ComputeScoreboard ranks colors by total score with competition ranking (1, 1, 3)
func ComputeScoreboard(db *gorm.DB) ([]ScoreboardEntry, error) {
	start := time.Now()
	defer metrics.RecordDBOperation("scoreboard", "colors", start)

	var colors []models.Color
	if err := db.Order("total_score DESC").Order("name ASC").Find(&colors).Error; err != nil {
		return nil, err
	}

	var medals []medalCount
	if err := db.Model(&models.EventResult{}).
		Select("color_id, rank, COUNT(*) AS count").
		Where("rank <= ?", 3).
		Group("color_id, rank").
		Scan(&medals).Error; err != nil {
		return nil, err
	}
	byColor := make(map[string][3]int)
	for _, m := range medals {
		counts := byColor[m.ColorID]
		counts[m.Rank-1] = m.Count
		byColor[m.ColorID] = counts
	}

	entries := make([]ScoreboardEntry, 0, len(colors))
	for i, color := range colors {
		rank := i + 1
		if i > 0 && color.TotalScore == colors[i-1].TotalScore {
			rank = entries[i-1].Rank
		}
		counts := byColor[color.ID]
		entries = append(entries, ScoreboardEntry{
			Rank:       rank,
			ColorID:    color.ID,
			Name:       color.Name,
			HexCode:    color.HexCode,
			TotalScore: color.TotalScore,
			Gold:       counts[0],
			Silver:     counts[1],
			Bronze:     counts[2],
		})
	}
	return entries, nil
}

// InvalidateScoreboard drops the cached standings
func InvalidateScoreboard(ctx context.Context) {
	if database.REDIS == nil {
		return
	}
	if err := database.REDIS.Del(ctx, ScoreboardCacheKey).Err(); err != nil {
		log.WithError(err).Warn("failed to invalidate scoreboard cache")
	}
}
