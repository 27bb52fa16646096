package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"brick_manager/internal/logger"
	"brick_manager/internal/repository"
	"brick_manager/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Message string        `json:"message"`
	Details []FieldDetail `json:"details,omitempty"`
}

type FieldDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// resource names an entity for response messages.
type resource struct {
	singular string
	plural   string
}

var (
	brickResource    = resource{"brick", "bricks"}
	tractorResource  = resource{"tractor", "tractors"}
	laborerResource  = resource{"laborer", "laborers"}
	orderResource    = resource{"order", "orders"}
	invoiceResource  = resource{"invoice", "invoices"}
	settingsResource = resource{"settings", "settings"}
)

func (r resource) invalidMessage() string {
	return "Invalid " + r.singular + " data"
}

func (r resource) notFoundMessage() string {
	return strings.ToUpper(r.singular[:1]) + r.singular[1:] + " not found"
}

// fail maps err onto the response: validation 400, missing 404, conflict
// 409, anything else 500 with only a generic message.
func (r resource) fail(c *gin.Context, err error, action string) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: r.invalidMessage(),
			Details: []FieldDetail{{Field: vErr.Field, Message: vErr.Message}},
		})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: r.notFoundMessage()})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Message: conflictMessage(err)})
	default:
		_ = c.Error(err)
		logger.FromContext(c).Error("Request failed", zap.String("action", action), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to " + action})
	}
}

// badRequest reports a body that could not be decoded or failed binding.
func (r resource) badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Message: r.invalidMessage(),
		Details: bindingDetails(err),
	})
}

func conflictMessage(err error) string {
	return strings.TrimSuffix(err.Error(), ": "+services.ErrConflict.Error())
}

func bindingDetails(err error) []FieldDetail {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldDetail, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldDetail{Field: fe.Field(), Message: describeTag(fe)})
		}
		return details
	}
	return []FieldDetail{{Message: err.Error()}}
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}

var registerTagNames sync.Once

// useJSONFieldNames makes validation errors report JSON keys instead of Go
// field names.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})
	})
}

// bindJSON decodes the request body into obj after date coercion and runs
// the binding validators.
func bindJSON(c *gin.Context, obj interface{}) error {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}
	return binding.JSON.BindBody(coerceDates(body), obj)
}
