package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"numconv/internal/domain"
	"numconv/internal/log"
)

type Handler struct {
	log       logrus.FieldLogger
	converter domain.Converter
}

func NewHandler(logger logrus.FieldLogger, converter domain.Converter) *Handler {
	return &Handler{log: logger, converter: converter}
}

// Register mounts the handler's routes on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/convert", h.Convert)
	r.Get("/healthz", h.Health)
}

// Convert handles POST /convert. Every outcome, including a malformed
// body, is reported through the result envelope with HTTP 200; HTTP status
// codes are not part of the conversion contract.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	reqLog := log.WithReqIDFromCtx(r.Context(), h.log)

	var req domain.ConversionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		reqLog.WithError(err).Debug("malformed conversion request")
		writeJSON(w, domain.Fail("invalid request body: "+err.Error()))
		return
	}

	res := h.converter.Convert(req.Input, req.InputType, req.OutputType)
	if res.Error != nil {
		reqLog.WithFields(logrus.Fields{
			"inputType":  req.InputType,
			"outputType": req.OutputType,
		}).Debugf("conversion failed: %s", *res.Error)
	}
	writeJSON(w, res)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
