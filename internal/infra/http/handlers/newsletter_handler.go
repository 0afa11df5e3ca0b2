package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/site-forms/internal/entity"
	"github.com/xavierca1/site-forms/internal/infra/http/middleware"
	"github.com/xavierca1/site-forms/internal/presenter"
	"github.com/xavierca1/site-forms/internal/usecase"
)

type NewsletterHandler struct {
	UC     *usecase.NewsletterUseCase
	Action string
	Logger *zap.Logger
}

func NewNewsletterHandler(uc *usecase.NewsletterUseCase, action string, logger *zap.Logger) *NewsletterHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NewsletterHandler{UC: uc, Action: action, Logger: logger}
}

func (h *NewsletterHandler) Show(w http.ResponseWriter, r *http.Request) {
	if err := writeHTML(w, http.StatusOK, presenter.NewNewsletterView(h.Action, nil)); err != nil {
		h.Logger.Error("render newsletter form", zap.Error(err))
	}
}

func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(w, r)
	if err != nil {
		h.Logger.Warn("invalid newsletter body", zap.Error(err))
		middleware.RecordSubmission("newsletter", middleware.OutcomeRejected)
		h.respond(w, r, http.StatusBadRequest, entity.NewsletterResult{Message: entity.MsgInvalidRequest})
		return
	}

	result, err := h.UC.Execute(r.Context(), fields["email"])
	middleware.RecordSubmission("newsletter", outcomeFor(err))

	var dispatchErr *usecase.DispatchError
	if errors.As(err, &dispatchErr) {
		middleware.RecordIntegrationError(dispatchErr.Channel)
	}

	h.respond(w, r, statusFor(err), result)
}

func (h *NewsletterHandler) respond(w http.ResponseWriter, r *http.Request, status int, result entity.NewsletterResult) {
	if !wantsHTML(r) {
		writeJSON(w, status, result)
		return
	}
	if err := writeHTML(w, status, presenter.NewNewsletterView(h.Action, &result)); err != nil {
		h.Logger.Error("render newsletter result", zap.Error(err))
	}
}
