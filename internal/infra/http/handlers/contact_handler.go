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

type ContactHandler struct {
	UC     *usecase.ContactUseCase
	Action string
	Logger *zap.Logger
}

func NewContactHandler(uc *usecase.ContactUseCase, action string, logger *zap.Logger) *ContactHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactHandler{UC: uc, Action: action, Logger: logger}
}

// Show renders an empty contact form (GET /contact).
func (h *ContactHandler) Show(w http.ResponseWriter, r *http.Request) {
	if err := writeHTML(w, http.StatusOK, presenter.NewContactView(h.Action, nil)); err != nil {
		h.Logger.Error("render contact form", zap.Error(err))
	}
}

// Submit handles POST /contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(w, r)
	if err != nil {
		h.Logger.Warn("invalid contact body", zap.Error(err))
		middleware.RecordSubmission("contact", middleware.OutcomeRejected)
		h.respond(w, r, http.StatusBadRequest, entity.Failed(entity.MsgInvalidRequest))
		return
	}

	result, err := h.UC.Execute(r.Context(), fields)
	status := statusFor(err)
	middleware.RecordSubmission("contact", outcomeFor(err))

	var dispatchErr *usecase.DispatchError
	if errors.As(err, &dispatchErr) {
		middleware.RecordIntegrationError(dispatchErr.Channel)
	}

	h.respond(w, r, status, result)
}

func (h *ContactHandler) respond(w http.ResponseWriter, r *http.Request, status int, result entity.Result) {
	if !wantsHTML(r) {
		writeJSON(w, status, result)
		return
	}
	if err := writeHTML(w, status, presenter.NewContactView(h.Action, &result)); err != nil {
		h.Logger.Error("render contact result", zap.Error(err))
	}
}

func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case usecase.IsValidationError(err):
		return http.StatusUnprocessableEntity
	case usecase.IsDispatchError(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func outcomeFor(err error) string {
	switch {
	case err == nil:
		return middleware.OutcomeSuccess
	case usecase.IsValidationError(err):
		return middleware.OutcomeInvalid
	default:
		return middleware.OutcomeFailed
	}
}
