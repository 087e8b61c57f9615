// Package transactiondelivery manages delivery layer of transaction queries.
package transactiondelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-wallet/walletd/internal/domain"
	"github.com/go-wallet/walletd/internal/transactionservice"
	"github.com/go-wallet/walletd/pkg/errorspkg"
	"github.com/go-wallet/walletd/pkg/web"
)

// Service provides service layer interface needed by transaction delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transactiondelivery
type Service interface {
	Get(ctx context.Context, id string) (domain.Transaction, error)
	History(ctx context.Context, walletID string, page, pageSize int32, txType domain.TransactionType) ([]domain.Transaction, transactionservice.Pagination, error)
	Stats(ctx context.Context, walletID string) (domain.TransactionStats, error)
}

// Handler facilitates transaction delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transaction handler.
func NewHandler(ts Service) *Handler {
	return &Handler{service: ts}
}

type uriRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type getData struct {
	Transaction domain.Transaction `json:"transaction"`
}

// Get handles http request to get one transaction by id.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	transaction, err := h.service.Get(ctx, req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: getData{transaction}})
}

type historyRequest struct {
	Page     int32  `form:"page,default=1" binding:"min=1"`
	PageSize int32  `form:"page_size,default=20" binding:"min=1,max=100"`
	Type     string `form:"type"`
}

type historyData struct {
	Transactions []domain.Transaction          `json:"transactions"`
	Pagination   transactionservice.Pagination `json:"pagination"`
}

// History handles http request to list a wallet's transactions.
func (h *Handler) History(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	var req historyRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	transactions, pagination, err := h.service.History(ctx, uri.ID, req.Page, req.PageSize, domain.TransactionType(req.Type))
	if err != nil {
		respondQueryError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: historyData{transactions, pagination}})
}

type statsData struct {
	Stats domain.TransactionStats `json:"stats"`
}

// Stats handles http request for a wallet's transaction aggregates.
func (h *Handler) Stats(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	stats, err := h.service.Stats(ctx, uri.ID)
	if err != nil {
		respondQueryError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: statsData{stats}})
}

func respondQueryError(gctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrWalletNotFound):
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case errors.Is(err, domain.ErrInvalidTransactionType):
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}

func bindingErrorMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		return field.Field() + web.GetErrorMsg(field)
	}

	return err.Error()
}
