// Package exchangeratedelivery manages delivery layer of exchange rates.
package exchangeratedelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-wallet/walletd/internal/domain"
	"github.com/go-wallet/walletd/internal/exchangerateservice"
	"github.com/go-wallet/walletd/pkg/errorspkg"
	"github.com/go-wallet/walletd/pkg/web"
)

// dateLayout is the wire format for backfill date bounds.
const dateLayout = "2006-01-02"

// Service provides service layer interface needed by exchange rate delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package exchangeratedelivery
type Service interface {
	Latest(ctx context.Context) (domain.ExchangeRate, error)
	List(ctx context.Context, limit int32) ([]domain.ExchangeRate, error)
	RefreshNow(ctx context.Context) (domain.ExchangeRate, error)
	Backfill(ctx context.Context, startDate, endDate time.Time) (domain.BackfillResult, error)
	PurgeBefore(ctx context.Context, t time.Time) (int64, error)
}

// Handler facilitates exchange rate delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns exchange rate handler.
func NewHandler(rs Service) *Handler {
	return &Handler{service: rs}
}

type rateData struct {
	Rate domain.ExchangeRate `json:"rate"`
}

// Latest handles http request for the most recent rate sample.
func (h *Handler) Latest(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	rate, err := h.service.Latest(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrRateNotFound) {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: rateData{rate}})
}

type listRequest struct {
	Limit int32 `form:"limit,default=100" binding:"min=1,max=1000"`
}

type listData struct {
	Rates []domain.ExchangeRate `json:"rates"`
}

// List handles http request for recent rate samples, newest first.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	rates, err := h.service.List(ctx, req.Limit)
	if err != nil {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: listData{rates}})
}

// Refresh handles http request to persist one fresh sample immediately.
func (h *Handler) Refresh(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	rate, err := h.service.RefreshNow(ctx)
	if err != nil {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: rateData{rate}})
}

type backfillRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type backfillData struct {
	Backfill domain.BackfillResult `json:"backfill"`
}

// Backfill handles http request to generate historical samples over a date range.
func (h *Handler) Backfill(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req backfillRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Response{Error: "start_date must be formatted as " + dateLayout})
		return
	}

	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Response{Error: "end_date must be formatted as " + dateLayout})
		return
	}

	result, err := h.service.Backfill(ctx, start, end)
	if err != nil {
		if errors.Is(err, exchangerateservice.ErrInvalidDateRange) {
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: backfillData{result}})
}

type purgeRequest struct {
	Before string `form:"before" binding:"required"`
}

type purgeData struct {
	Deleted int64 `json:"deleted"`
}

// Purge handles http request to delete samples older than the given date.
func (h *Handler) Purge(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req purgeRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	before, err := time.Parse(dateLayout, req.Before)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Response{Error: "before must be formatted as " + dateLayout})
		return
	}

	deleted, err := h.service.PurgeBefore(ctx, before)
	if err != nil {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: purgeData{deleted}})
}

func bindingErrorMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		return field.Field() + web.GetErrorMsg(field)
	}

	return err.Error()
}
