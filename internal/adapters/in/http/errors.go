package http

import (
	"errors"
	"net/http"

	"pickup/internal/core/domain/model/address"
	"pickup/internal/core/domain/model/challenge"
	"pickup/internal/core/domain/model/schedule"
	"pickup/internal/core/domain/model/wizard"
	"pickup/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrInternal hides unexpected failures from clients.
var ErrInternal = errors.New("internal error")

// fail maps a use case error to a response:
//
//	address validation         422 with per-field messages
//	wrong answer, date issues  422 with the message to show
//	action not on this screen  409
//	unknown carpet             404
//	anything else              500, logged
func (s *Server) fail(ctx echo.Context, err error) error {
	var fieldsErr *errs.FieldsAreInvalidError

	switch {
	case errors.As(err, &fieldsErr):
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorDTO{
			Code:    http.StatusUnprocessableEntity,
			Message: "Address is incomplete",
			Fields:  fieldsErr.Fields,
		})
	case errors.Is(err, challenge.ErrAnswerMismatch):
		return unprocessable(ctx, challenge.MismatchMessage)
	case errors.Is(err, schedule.ErrDateIsRequired):
		return unprocessable(ctx, schedule.DateRequiredMessage)
	case errors.Is(err, schedule.ErrDateIsBlocked), errors.Is(err, address.ErrSectorIsLocked):
		return unprocessable(ctx, err.Error())
	case errors.Is(err, wizard.ErrActionNotAllowed):
		return ctx.JSON(http.StatusConflict, ErrorDTO{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorDTO{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	default:
		ctx.Logger().Errorf("%s %s: %v", ctx.Request().Method, ctx.Path(), err)
		return ctx.JSON(http.StatusInternalServerError, ErrorDTO{
			Code:    http.StatusInternalServerError,
			Message: ErrInternal.Error(),
		})
	}
}

func unprocessable(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnprocessableEntity, ErrorDTO{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
	})
}
