// Package common holds helpers shared by the resource handlers.
package common

import (
	"errors"
	"net/http"
	"strings"

	"sportsday/database"
	"sportsday/middleware"
	"sportsday/services"
	"sportsday/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	ErrDuplicate  = "ข้อมูลซ้ำกับที่มีอยู่แล้ว"
	ErrReferenced = "ไม่สามารถลบได้ เนื่องจากข้อมูลนี้ถูกใช้งานอยู่"
)

type mappedError struct {
	status  int
	message string
}

var serviceErrors = []struct {
	err error
	mappedError
}{
	{services.ErrEventNotFound, mappedError{http.StatusNotFound, "ไม่พบรายการแข่งขัน"}},
	{services.ErrMatchNotFound, mappedError{http.StatusNotFound, "ไม่พบคู่การแข่งขัน"}},
	{services.ErrVoteNotFound, mappedError{http.StatusNotFound, "ไม่พบคะแนนโหวต"}},
	{services.ErrAthleteNotFound, mappedError{http.StatusNotFound, "ไม่พบนักกีฬา"}},
	{services.ErrColorNotFound, mappedError{http.StatusBadRequest, "ไม่พบสีที่ระบุ"}},
	{services.ErrEventCancelled, mappedError{http.StatusBadRequest, "รายการแข่งขันนี้ถูกยกเลิกแล้ว"}},
	{services.ErrNoResults, mappedError{http.StatusBadRequest, "กรุณาระบุผลการแข่งขันอย่างน้อยหนึ่งรายการ"}},
	{services.ErrInvalidResult, mappedError{http.StatusBadRequest, "ข้อมูลผลการแข่งขันไม่ถูกต้อง"}},
	{services.ErrVotingClosed, mappedError{http.StatusBadRequest, "รายการนี้ยังไม่เปิดให้โหวต"}},
	{services.ErrVotingNotStarted, mappedError{http.StatusBadRequest, "ยังไม่ถึงเวลาเปิดโหวต"}},
	{services.ErrVotingEnded, mappedError{http.StatusBadRequest, "หมดเวลาโหวตแล้ว"}},
	{services.ErrVoteLimitReached, mappedError{http.StatusConflict, "คุณใช้สิทธิ์โหวตครบแล้ว"}},
	{services.ErrAlreadyVoted, mappedError{http.StatusConflict, "คุณโหวตให้นักกีฬาคนนี้ไปแล้ว"}},
	{services.ErrAthleteNotRegistered, mappedError{http.StatusBadRequest, "นักกีฬาไม่ได้ลงทะเบียนในรายการนี้"}},
	{services.ErrVoteAlreadyInvalid, mappedError{http.StatusConflict, "คะแนนโหวตนี้ถูกยกเลิกไปแล้ว"}},
	{services.ErrInvalidVoteSetting, mappedError{http.StatusBadRequest, "การตั้งค่าการโหวตไม่ถูกต้อง"}},
	{services.ErrNoVoterIdentity, mappedError{http.StatusBadRequest, "ไม่สามารถระบุตัวตนผู้โหวตได้"}},
}

// RespondError answers with the status and message matching err, or a logged 500
func RespondError(c *gin.Context, err error) {
	for _, se := range serviceErrors {
		if errors.Is(err, se.err) {
			response.Error(c, se.status, se.message)
			return
		}
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, response.ErrNotFound)
	case IsDuplicate(err):
		response.Error(c, http.StatusConflict, ErrDuplicate)
	case IsForeignKeyViolation(err):
		response.Error(c, http.StatusConflict, ErrReferenced)
	default:
		response.ServerError(c, err)
	}
}

// IsDuplicate reports whether err is a unique constraint violation
func IsDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "duplicate key value")
}

// IsForeignKeyViolation reports whether err is a foreign key constraint violation
func IsForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "FOREIGN KEY constraint failed") || strings.Contains(msg, "violates foreign key constraint")
}

// DB returns the database bound to the request context
func DB(c *gin.Context) *gorm.DB {
	return database.DB.WithContext(c.Request.Context())
}

// Audit records an administrative action performed by the current user
func Audit(c *gin.Context, action, entityType, entityID, details string) {
	entry := services.ActivityEntry{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		IPAddress:  c.ClientIP(),
	}
	if user := middleware.GetOptionalUser(c); user != nil {
		entry.UserID = &user.ID
		entry.Username = user.Username
	}
	services.LogActivity(DB(c), entry)
}
