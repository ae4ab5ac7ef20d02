package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mzoric/holidays-eval/internal/eval"
	"github.com/mzoric/holidays-eval/internal/eval/dataset"
)

// GlobalErrorHandler maps evaluation failures onto HTTP status codes: a
// results body that does not parse is the client's request problem (400),
// while a parseable submission that violates the ground truth is an
// unprocessable entity (422).
func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if kind, ok := evalKind(err); ok {
			status := http.StatusUnprocessableEntity
			if kind == "malformed_line" {
				status = http.StatusBadRequest
			}
			_ = c.JSON(status, map[string]string{"kind": kind, "error": err.Error()})
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Message, "title": "validation error"})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func evalKind(err error) (string, bool) {
	switch {
	case errors.Is(err, dataset.ErrMalformedLine):
		return "malformed_line", true
	case errors.Is(err, eval.ErrUnknownQuery):
		return "unknown_query", true
	case errors.Is(err, eval.ErrUnknownImage):
		return "unknown_image", true
	case errors.Is(err, eval.ErrMissingQueries):
		return "missing_queries", true
	case errors.Is(err, eval.ErrInvalidQuery):
		return "invalid_query", true
	}
	return "", false
}
