// Package validationdelivery manages delivery layer of record transitions.
package validationdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/evermed/finvalid/internal/domain"
	"github.com/evermed/finvalid/internal/middleware"
	"github.com/evermed/finvalid/pkg/errorspkg"
	"github.com/evermed/finvalid/pkg/web"
)

// Service provides service layer interface needed by validation delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package validationdelivery
type Service interface {
	Transition(ctx context.Context, recordID string, action domain.Action, actor domain.Actor, note string) (domain.TransactionRecord, error)
}

// BulkService provides the bulk coordinator interface needed by validation
// delivery layer.
type BulkService interface {
	TransitionMany(ctx context.Context, recordIDs []string, action domain.Action, actor domain.Actor, note string) (domain.BulkResult, error)
}

// Handler facilitates validation delivery layer logic.
type Handler struct {
	service Service
	bulk    BulkService
}

// NewHandler returns validation handler.
func NewHandler(s Service, b BulkService) Handler {
	return Handler{service: s, bulk: b}
}

type transitionURI struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type transitionRequest struct {
	Action string `json:"action" binding:"required,transitionaction"`
	Note   string `json:"note"`
}

type data struct {
	Record domain.TransactionRecord `json:"record"`
}

func transitionStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, domain.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrValidationNoteRequired):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// Transition handles http request to transition a single record.
func (h *Handler) Transition(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri transitionURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	var req transitionRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	actor := middleware.Actor(gctx)

	record, err := h.service.Transition(ctx, uri.ID, domain.Action(req.Action), actor, req.Note)
	if err != nil {
		code := transitionStatusCode(err)
		if code == http.StatusInternalServerError {
			gctx.JSON(code, web.Error(errorspkg.ErrInternal))
			return
		}

		gctx.JSON(code, web.Error(err))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{record}})
}

type bulkTransitionRequest struct {
	RecordIDs []string `json:"record_ids" binding:"required,min=1,dive,uuid"`
	Action    string   `json:"action" binding:"required,transitionaction"`
	Note      string   `json:"note"`
}

type bulkData struct {
	Result domain.BulkResult `json:"result"`
}

// TransitionMany handles http request to transition a set of records.
//
// Per-record failures are part of the report, not of the http status: the
// batch itself succeeds as long as it was processed.
func (h *Handler) TransitionMany(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req bulkTransitionRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	actor := middleware.Actor(gctx)

	result, err := h.bulk.TransitionMany(ctx, req.RecordIDs, domain.Action(req.Action), actor, req.Note)
	if err != nil {
		if errors.Is(err, domain.ErrBulkRevertNotAllowed) {
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: bulkData{result}})
}
