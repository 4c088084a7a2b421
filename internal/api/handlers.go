package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/cloud-ru/firefly-go/internal/calculations"
	"github.com/cloud-ru/firefly-go/internal/logging"
	"github.com/cloud-ru/firefly-go/internal/models"
	"github.com/cloud-ru/firefly-go/internal/service"
)

const maxBodyBytes = 1 << 20

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Firefly compound interest calculator API",
		"endpoints": []string{
			"POST /api/calculate",
			"POST /api/projection",
			"POST /api/compare",
			"GET /api/health",
			"GET /metrics",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}
	res, err := s.svc.CalculateRequest(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.NewCalculateResponse(res))
}

func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}
	points, err := s.svc.ProjectRequest(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.NewProjectionResponse(points))
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}
	cmp, err := s.svc.CompareRequest(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cmp)
}

// decodeRequest читает тело запроса; неизвестные поля и данные после объекта считаются ошибкой
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (models.CalculateRequest, bool) {
	var req models.CalculateRequest

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Detail: fmt.Sprintf("invalid JSON body: %v", err)})
		return req, false
	}
	// после объекта допускаются только пробелы
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Detail: "invalid JSON body: unexpected data after the request object"})
		return req, false
	}
	return req, true
}

// writeError переводит ошибку сервиса в HTTP статус
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case service.IsValidationError(err):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Detail: err.Error()})
	case errors.Is(err, calculations.ErrBalanceCapExceeded):
		writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{Detail: err.Error()})
	default:
		logging.FromContextOr(r.Context(), s.logger).Error("calculation error", logging.FieldError, err.Error())
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Detail: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
