package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

// Messages shared by every handler package
const (
	ErrInvalidRequest = "รูปแบบข้อมูลไม่ถูกต้อง"
	ErrUnauthorized   = "กรุณาเข้าสู่ระบบ"
	ErrForbidden      = "คุณไม่มีสิทธิ์ดำเนินการนี้"
	ErrInternal       = "เกิดข้อผิดพลาดภายในระบบ"
	ErrNotFound       = "ไม่พบข้อมูล"
)

// ErrorResponse is the body of every error answer
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends a standardized error response
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

// Success sends a standardized success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Message sends a standardized message response
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// ServerError logs the error with the request context and answers a generic 500
func ServerError(c *gin.Context, err error) {
	log.WithFields(log.Fields{
		"method": c.Request.Method,
		"path":   c.FullPath(),
	}).WithError(err).Error("request failed")
	Error(c, http.StatusInternalServerError, ErrInternal)
}

// BindError answers 400 with the first validation message of a binding error
func BindError(c *gin.Context, err error) {
	Error(c, http.StatusBadRequest, ValidationMessage(err))
}

// ValidationMessage turns a binding error into a single user-facing message
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return ErrInvalidRequest
	}

	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("กรุณาระบุ %s", field)
	case "min", "gte":
		return fmt.Sprintf("%s ต้องมีค่าอย่างน้อย %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s ต้องมีค่าไม่เกิน %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s ต้องเป็นหนึ่งใน %s", field, fe.Param())
	case "hexcolor":
		return fmt.Sprintf("%s ต้องเป็นรหัสสีรูปแบบ #RRGGBB", field)
	case "uuid", "uuid4":
		return fmt.Sprintf("%s ต้องเป็นรหัสอ้างอิงที่ถูกต้อง", field)
	default:
		return fmt.Sprintf("ข้อมูล %s ไม่ถูกต้อง", field)
	}
}
