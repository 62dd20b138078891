// Package auditdelivery manages delivery layer of audit history.
package auditdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/evermed/finvalid/internal/domain"
	"github.com/evermed/finvalid/pkg/errorspkg"
	"github.com/evermed/finvalid/pkg/web"
)

// Service provides service layer interface needed by audit delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package auditdelivery
type Service interface {
	History(ctx context.Context, recordID string) ([]domain.AuditEntry, error)
}

// Handler facilitates audit delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns audit handler.
func NewHandler(s Service) Handler {
	return Handler{service: s}
}

type historyURI struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type data struct {
	History []domain.AuditEntry `json:"history"`
}

// History handles http request for a record's transition history, oldest
// first. A record that never transitioned yields an empty history.
func (h *Handler) History(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri historyURI
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

	history, err := h.service.History(ctx, uri.ID)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{history}})
}
