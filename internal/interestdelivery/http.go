// Package interestdelivery manages delivery layer of interest accrual.
package interestdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-wallet/walletd/internal/domain"
	"github.com/go-wallet/walletd/pkg/errorspkg"
	"github.com/go-wallet/walletd/pkg/web"
)

// Service provides service layer interface needed by interest delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package interestdelivery
type Service interface {
	AccrueAll(ctx context.Context) (domain.InterestRunResult, error)
}

// Handler facilitates interest delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns interest handler.
func NewHandler(is Service) *Handler {
	return &Handler{service: is}
}

// Run handles the administrative http request to run interest accrual now.
func (h *Handler) Run(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	result, err := h.service.AccrueAll(ctx)
	if err != nil {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: result})
}
