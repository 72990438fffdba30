package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"sportsday/metrics"
	"sportsday/models"
	"sportsday/realtime"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ResultInput is one ranked line of an event's results
type ResultInput struct {
	ColorID   string  `json:"colorId" binding:"required"`
	AthleteID *string `json:"athleteId"`
	Rank      int     `json:"rank" binding:"required,min=1"`
	Points    int     `json:"points" binding:"min=0"`
	Note      string  `json:"note" binding:"max=255"`
}

// RecordEventResults replaces every result of an event.
// Points of the previous results are taken back from their colors and the new points are granted,
// then the event is marked COMPLETED, all in one transaction.
func RecordEventResults(db *gorm.DB, eventID string, inputs []ResultInput) ([]models.EventResult, error) {
	if len(inputs) == 0 {
		return nil, ErrNoResults
	}
	for i, in := range inputs {
		if in.ColorID == "" || in.Rank < 1 || in.Points < 0 {
			return nil, fmt.Errorf("%w: line %d", ErrInvalidResult, i+1)
		}
	}

	start := time.Now()
	err := db.Transaction(func(tx *gorm.DB) error {
		event, err := loadEvent(tx, eventID)
		if err != nil {
			return err
		}
		if event.Status == models.EventCancelled {
			return ErrEventCancelled
		}

		if err := ensureColorsExist(tx, inputs); err != nil {
			return err
		}
		if err := ensureAthletesExist(tx, inputs); err != nil {
			return err
		}

		var previous []models.EventResult
		if err := tx.Where("event_id = ?", eventID).Find(&previous).Error; err != nil {
			return err
		}

		deltas := make(map[string]int)
		for _, r := range previous {
			deltas[r.ColorID] -= r.Points
		}
		if err := tx.Where("event_id = ?", eventID).Delete(&models.EventResult{}).Error; err != nil {
			return err
		}

		results := make([]models.EventResult, 0, len(inputs))
		for _, in := range inputs {
			results = append(results, models.EventResult{
				EventID:   eventID,
				ColorID:   in.ColorID,
				AthleteID: in.AthleteID,
				Rank:      in.Rank,
				Points:    in.Points,
				Note:      in.Note,
			})
			deltas[in.ColorID] += in.Points
		}
		if err := tx.Create(&results).Error; err != nil {
			return err
		}

		if err := applyScoreDeltas(tx, deltas); err != nil {
			return err
		}

		updates := map[string]interface{}{"status": models.EventCompleted}
		if event.EndTime == nil {
			updates["end_time"] = time.Now()
		}
		return tx.Model(&models.Event{}).Where("id = ?", eventID).Updates(updates).Error
	})
	metrics.RecordDBOperation("record_results", "event_results", start)
	if err != nil {
		return nil, err
	}

	metrics.ResultsRecorded.Inc()
	resultsChanged(db.Statement.Context, eventID)
	return ListEventResults(db, eventID)
}

// ClearEventResults removes every result of an event, takes the points back and reopens the event
func ClearEventResults(db *gorm.DB, eventID string) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := loadEvent(tx, eventID); err != nil {
			return err
		}
		if err := revokeEventPoints(tx, eventID); err != nil {
			return err
		}
		return tx.Model(&models.Event{}).Where("id = ?", eventID).
			Updates(map[string]interface{}{"status": models.EventOngoing, "end_time": nil}).Error
	})
	if err != nil {
		return err
	}

	resultsChanged(db.Statement.Context, eventID)
	return nil
}

// DeleteEvent removes an event with everything it owns.
// Points granted by its results are taken back from the colors first.
func DeleteEvent(db *gorm.DB, eventID string) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := loadEvent(tx, eventID); err != nil {
			return err
		}
		if err := revokeEventPoints(tx, eventID); err != nil {
			return err
		}

		matchIDs := tx.Model(&models.Match{}).Select("id").Where("event_id = ?", eventID)
		if err := tx.Where("match_id IN (?)", matchIDs).Delete(&models.MatchParticipant{}).Error; err != nil {
			return err
		}

		owned := []interface{}{
			&models.Vote{},
			&models.AthleteVoteSummary{},
			&models.VoteSetting{},
			&models.Match{},
			&models.EventRegistration{},
		}
		for _, model := range owned {
			if err := tx.Where("event_id = ?", eventID).Delete(model).Error; err != nil {
				return err
			}
		}

		// Awards outlive the event they were given at
		if err := tx.Model(&models.Award{}).Where("event_id = ?", eventID).Update("event_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Event{}, "id = ?", eventID).Error
	})
	if err != nil {
		return err
	}

	resultsChanged(db.Statement.Context, eventID)
	return nil
}

// ListEventResults returns the results of an event ordered by rank
func ListEventResults(db *gorm.DB, eventID string) ([]models.EventResult, error) {
	var results []models.EventResult
	err := db.Preload("Color").Preload("Athlete").
		Where("event_id = ?", eventID).
		Order("rank ASC").Order("points DESC").
		Find(&results).Error
	return results, err
}

func loadEvent(tx *gorm.DB, eventID string) (*models.Event, error) {
	var event models.Event
	if err := tx.First(&event, "id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

// revokeEventPoints deletes the results of an event and subtracts their points from the colors
func revokeEventPoints(tx *gorm.DB, eventID string) error {
	var previous []models.EventResult
	if err := tx.Where("event_id = ?", eventID).Find(&previous).Error; err != nil {
		return err
	}
	deltas := make(map[string]int)
	for _, r := range previous {
		deltas[r.ColorID] -= r.Points
	}
	if err := tx.Where("event_id = ?", eventID).Delete(&models.EventResult{}).Error; err != nil {
		return err
	}
	return applyScoreDeltas(tx, deltas)
}

// applyScoreDeltas adds each delta to its color's total score.
// Colors are updated in ID order so concurrent recordings lock rows in the same order.
func applyScoreDeltas(tx *gorm.DB, deltas map[string]int) error {
	colorIDs := make([]string, 0, len(deltas))
	for id, delta := range deltas {
		if delta != 0 {
			colorIDs = append(colorIDs, id)
		}
	}
	sort.Strings(colorIDs)

	for _, id := range colorIDs {
		res := tx.Model(&models.Color{}).Where("id = ?", id).
			UpdateColumn("total_score", gorm.Expr("total_score + ?", deltas[id]))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", ErrColorNotFound, id)
		}
	}
	return nil
}

func ensureColorsExist(tx *gorm.DB, inputs []ResultInput) error {
	ids := make(map[string]struct{})
	for _, in := range inputs {
		ids[in.ColorID] = struct{}{}
	}
	list := make([]string, 0, len(ids))
	for id := range ids {
		list = append(list, id)
	}

	var count int64
	if err := tx.Model(&models.Color{}).Where("id IN ?", list).Count(&count).Error; err != nil {
		return err
	}
	if int(count) != len(list) {
		return ErrColorNotFound
	}
	return nil
}

func ensureAthletesExist(tx *gorm.DB, inputs []ResultInput) error {
	ids := make(map[string]struct{})
	for _, in := range inputs {
		if in.AthleteID != nil && *in.AthleteID != "" {
			ids[*in.AthleteID] = struct{}{}
		}
	}
	if len(ids) == 0 {
		return nil
	}
	list := make([]string, 0, len(ids))
	for id := range ids {
		list = append(list, id)
	}

	var count int64
	if err := tx.Model(&models.Athlete{}).Where("id IN ?", list).Count(&count).Error; err != nil {
		return err
	}
	if int(count) != len(list) {
		return ErrAthleteNotFound
	}
	return nil
}

// resultsChanged refreshes whatever depends on color totals once a transaction committed
func resultsChanged(ctx context.Context, eventID string) {
	if ctx == nil {
		ctx = context.Background()
	}
	InvalidateScoreboard(ctx)

	realtime.Publish(realtime.Update{
		Channel:    realtime.EventChannel(eventID),
		UpdateType: realtime.UpdateResults,
		Payload:    map[string]string{"eventId": eventID},
	})
	realtime.Publish(realtime.Update{
		Channel:    realtime.ChannelScoreboard,
		UpdateType: realtime.UpdateScoreboard,
		Payload:    map[string]string{"eventId": eventID},
	})
	log.WithField("event_id", eventID).Debug("event results changed")
}
