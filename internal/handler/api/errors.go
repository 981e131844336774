package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/domain/user"
	"restaurant-reservations/internal/handler/httperr"
	"restaurant-reservations/internal/handler/middleware"
	"restaurant-reservations/internal/pkg/errs"
	"restaurant-reservations/internal/usecase/commands"
	"restaurant-reservations/internal/usecase/queries"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	KindInvalidInput         = "INVALID_INPUT"
	KindClosedDay            = "CLOSED_DAY"
	KindOutOfAdvanceWindow   = "OUT_OF_ADVANCE_WINDOW"
	KindZoneCapacityExceeded = "ZONE_CAPACITY_EXCEEDED"
	KindEditWindowExpired    = "EDIT_WINDOW_EXPIRED"
	KindAlreadyCancelled     = "ALREADY_CANCELLED"
	KindNotFound             = "NOT_FOUND"
	KindForbidden            = "FORBIDDEN"
	KindConfigMissing        = "CONFIG_MISSING"
	KindEmailTaken           = "EMAIL_TAKEN"
	KindUnauthorized         = "UNAUTHORIZED"
	KindInternal             = "INTERNAL"
)

var errNoActor = errs.New("authenticated user missing from request context")

var rejectionStatus = []struct {
	kind   error
	status int
	name   string
}{
	{reservation.ErrInvalidInput, http.StatusBadRequest, KindInvalidInput},
	{reservation.ErrClosedDay, http.StatusUnprocessableEntity, KindClosedDay},
	{reservation.ErrOutOfAdvanceWindow, http.StatusUnprocessableEntity, KindOutOfAdvanceWindow},
	{reservation.ErrZoneCapacityExceeded, http.StatusConflict, KindZoneCapacityExceeded},
	{reservation.ErrEditWindowExpired, http.StatusUnprocessableEntity, KindEditWindowExpired},
	{reservation.ErrAlreadyCancelled, http.StatusConflict, KindAlreadyCancelled},
	{reservation.ErrNotFound, http.StatusNotFound, KindNotFound},
	{reservation.ErrForbidden, http.StatusForbidden, KindForbidden},
	{reservation.ErrConfigMissing, http.StatusInternalServerError, KindConfigMissing},
}

var userFieldErrors = []struct {
	err   error
	field string
}{
	{user.ErrInvalidEmail, "email"},
	{commands.ErrNewPasswordTooWeak, "newPassword"},
	{commands.ErrCurrentPasswordMismatch, "currentPassword"},
	{user.ErrPasswordTooWeak, "password"},
	{user.ErrNameRequired, "firstName"},
	{user.ErrPhoneRequired, "phone"},
	{user.ErrFieldTooLong, ""},
}

// abortWithError maps use case errors onto the shared error body.
func abortWithError(c *gin.Context, err error) {
	var rej *reservation.Rejection
	if errors.As(err, &rej) {
		abortWithRejection(c, err, rej)
		return
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			"Invalid value for "+verrs[0].Field(), gin.H{"kind": KindInvalidInput, "field": verrs[0].Field()})
		return
	}

	for _, fe := range userFieldErrors {
		if errors.Is(err, fe.err) {
			detail := gin.H{"kind": KindInvalidInput}
			if fe.field != "" {
				detail["field"] = fe.field
			}
			httperr.AbortWithError(c, http.StatusBadRequest, err, fe.err.Error(), detail)
			return
		}
	}

	switch {
	case errors.Is(err, commands.ErrEmailAlreadyExists):
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			"A user with that email already exists", gin.H{"kind": KindEmailTaken, "field": "email"})
	case errors.Is(err, commands.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err,
			"Invalid email or password", gin.H{"kind": KindUnauthorized})
	case errors.Is(err, commands.ErrUserInactive), errors.Is(err, queries.ErrUserInactive):
		httperr.AbortWithError(c, http.StatusForbidden, err,
			"Account is inactive", gin.H{"kind": KindForbidden})
	case errors.Is(err, queries.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err,
			"User not found", gin.H{"kind": KindNotFound})
	default:
		slog.Error("unhandled error", "path", c.FullPath(), "request_id", middleware.GetRequestID(c),
			"error", err.Error(), "stack", errs.ExtractStackLines(err, 12))
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Internal server error", gin.H{"kind": KindInternal})
	}
}

func abortWithRejection(c *gin.Context, err error, rej *reservation.Rejection) {
	status, name := http.StatusInternalServerError, KindInternal
	for _, rs := range rejectionStatus {
		if errors.Is(rej, rs.kind) {
			status, name = rs.status, rs.name
			break
		}
	}

	detail := gin.H{"kind": name}
	switch {
	case rej.Field != "":
		detail["field"] = rej.Field
	case rej.Shortfall != nil:
		detail["zone"] = rej.Shortfall.Zone
		detail["requested"] = rej.Shortfall.Requested
		detail["alreadyReserved"] = rej.Shortfall.AlreadyReserved
		detail["available"] = rej.Shortfall.Available
	case rej.MaxAdvanceDays > 0:
		detail["maxAdvanceDays"] = rej.MaxAdvanceDays
	case rej.Status != "":
		detail["status"] = rej.Status
	}
	if errors.Is(rej, reservation.ErrClosedDay) {
		detail["weekday"] = int(rej.Weekday)
	}

	msg := rej.Message()
	if status == http.StatusInternalServerError {
		slog.Error("configuration error", "path", c.FullPath(), "request_id", middleware.GetRequestID(c), "error", err.Error())
		msg = "Internal server error"
	}
	httperr.AbortWithError(c, status, err, msg, detail)
}

func abortUnauthenticated(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", gin.H{"kind": KindUnauthorized})
}

// abortBinding reports gin binding failures as INVALID_INPUT.
func abortBinding(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		abortWithError(c, err)
		return
	}
	detail := gin.H{"kind": KindInvalidInput}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		detail["field"] = typeErr.Field
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Malformed request", detail)
}
