package router

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mzoric/holidays-eval/internal/apperr"
	"github.com/mzoric/holidays-eval/internal/eval"
	"github.com/mzoric/holidays-eval/internal/eval/dataset"
	"github.com/mzoric/holidays-eval/internal/report"
)

// EvalRouter exposes the evaluation pipeline over HTTP. The ground truth
// is loaded once at startup; each request carries a results file body and
// receives the full report back.
type EvalRouter struct {
	e         *echo.Echo
	evaluator *eval.Evaluator
	kValues   []int
	maxBody   int64
}

func NewEvalRouter(e *echo.Echo, evaluator *eval.Evaluator, kValues []int, maxBody int64) *EvalRouter {
	return &EvalRouter{
		e:         e,
		evaluator: evaluator,
		kValues:   kValues,
		maxBody:   maxBody,
	}
}

func (r *EvalRouter) Bind() {
	r.e.POST("/api/v1/evaluate", r.evaluateHandler)
}

func (r *EvalRouter) evaluateHandler(c echo.Context) error {
	body := http.MaxBytesReader(c.Response(), c.Request().Body, r.maxBody)
	defer body.Close()

	rs, err := dataset.ParseResults(body)
	if err != nil {
		return fmt.Errorf("parse submitted results: %w", err)
	}
	if len(rs.Order) == 0 {
		return apperr.NewValidation("results body is empty")
	}

	ev, err := r.evaluator.Evaluate(rs)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, report.Generate(ev, r.kValues, report.Source{}))
}
