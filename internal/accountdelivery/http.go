// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-account/internal/domain"
	"github.com/go-petr/pet-account/pkg/errorspkg"
	"github.com/go-petr/pet-account/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	Create(ctx context.Context, email, startingBalance string) (domain.AccountView, error)
	Get(ctx context.Context, id uuid.UUID) (domain.AccountView, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Deposit(ctx context.Context, id uuid.UUID, amount string) (domain.AccountView, error)
	Withdraw(ctx context.Context, id uuid.UUID, amount string) (domain.AccountView, error)
	Validate(email, amount string) domain.ValidationResult
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) *Handler {
	return &Handler{service: as}
}

type data struct {
	Account domain.AccountView `json:"account"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

type createRequest struct {
	Email           string `json:"email" binding:"required,account_email"`
	StartingBalance string `json:"starting_balance" binding:"omitempty,amount"`
}

// Create handles http request to create account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingError(err)})

		return
	}

	acc, err := h.service.Create(ctx, req.Email, req.StartingBalance)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{acc}})
}

type uriRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

func bindID(gctx *gin.Context) (uuid.UUID, bool) {
	l := zerolog.Ctx(gctx.Request.Context())

	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingError(err)})

		return uuid.Nil, false
	}

	return uuid.MustParse(req.ID), true
}

// Get handles http request to get account.
func (h *Handler) Get(gctx *gin.Context) {
	id, ok := bindID(gctx)
	if !ok {
		return
	}

	acc, err := h.service.Get(gctx.Request.Context(), id)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{acc}})
}

// Delete handles http request to close account.
func (h *Handler) Delete(gctx *gin.Context) {
	id, ok := bindID(gctx)
	if !ok {
		return
	}

	if err := h.service.Delete(gctx.Request.Context(), id); err != nil {
		writeError(gctx, err)
		return
	}

	gctx.Status(http.StatusNoContent)
}

type amountRequest struct {
	Amount string `json:"amount" binding:"required,amount"`
}

// Deposit handles http request to deposit money into account.
func (h *Handler) Deposit(gctx *gin.Context) {
	h.changeBalance(gctx, h.service.Deposit)
}

// Withdraw handles http request to withdraw money from account.
func (h *Handler) Withdraw(gctx *gin.Context) {
	h.changeBalance(gctx, h.service.Withdraw)
}

func (h *Handler) changeBalance(gctx *gin.Context,
	op func(ctx context.Context, id uuid.UUID, amount string) (domain.AccountView, error),
) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	id, ok := bindID(gctx)
	if !ok {
		return
	}

	var req amountRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingError(err)})

		return
	}

	acc, err := op(ctx, id, req.Amount)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{acc}})
}

type validateRequest struct {
	Email  string `json:"email"`
	Amount string `json:"amount"`
}

type validationData struct {
	Validation domain.ValidationResult `json:"validation"`
}

// Validate handles http request to check an email and an amount without creating anything.
func (h *Handler) Validate(gctx *gin.Context) {
	l := zerolog.Ctx(gctx.Request.Context())

	var req validateRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingError(err)})

		return
	}

	gctx.JSON(http.StatusOK, web.Response{
		Data: validationData{h.service.Validate(req.Email, req.Amount)},
	})
}

func writeError(gctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case errors.Is(err, domain.ErrInsufficientFunds):
		gctx.JSON(http.StatusConflict, web.Error(err))
	case errors.Is(err, domain.ErrInvalidArgument):
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	default:
		zerolog.Ctx(gctx.Request.Context()).Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}
