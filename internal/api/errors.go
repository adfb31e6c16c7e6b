package api

import (
	"errors"
	"net/http"

	"github.com/ghanshyammann/seawar/internal/model"
	"github.com/ghanshyammann/seawar/internal/service"
	"github.com/labstack/echo/v4"
)

// httpError maps a domain error to the echo.HTTPError a handler should
// return. Errors the engine never raises fall back to 500.
func httpError(err error) error {
	switch {
	case errors.Is(err, model.ErrNotFound), errors.Is(err, service.ErrMatchNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrUnauthorized), errors.Is(err, model.ErrCannotJoinOwn):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, model.ErrWrongPhase),
		errors.Is(err, model.ErrNotYourTurn),
		errors.Is(err, model.ErrMalformedCoordinate),
		errors.Is(err, model.ErrOutOfBounds),
		errors.Is(err, model.ErrAlreadyShot),
		errors.Is(err, model.ErrOverlap),
		errors.Is(err, model.ErrGameFull),
		errors.Is(err, model.ErrAlreadyJoined),
		errors.Is(err, model.ErrInvalidFleet),
		errors.Is(err, model.ErrUnknownPlayer),
		errors.Is(err, model.ErrInvalidDimensions),
		errors.Is(err, model.ErrWrongShip):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
