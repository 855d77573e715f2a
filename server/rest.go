package server

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"flowcalc/calculator"
	"flowcalc/model"
)

// 请求体上限
const maxBodyBytes = 1 << 20

func setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
}

// 请求体为 RawSpecification，模式由路径决定
func (s *Server) calculateHandler(mode model.Mode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setCORS(w)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		var raw model.RawSpecification
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&raw); err != nil {
			writeError(w, badRequest(err))
			return
		}
		entry, err := s.svc.Calculate(model.CalculateRequest{Mode: string(mode), Spec: raw})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, response(entry))
	}
}

func (s *Server) sweepHandler(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	var req model.SweepRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, badRequest(err))
		return
	}
	points, err := s.svc.Sweep(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, points)
}

func (s *Server) fluidsHandler(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	writeJSON(w, http.StatusOK, s.svc.Fluids())
}

type configResponse struct {
	ThermalConductivity   float64 `json:"thermal_conductivity"`
	Prandtl               float64 `json:"prandtl"`
	ProfileExponent       float64 `json:"profile_exponent"`
	LaminarLimit          float64 `json:"laminar_limit"`
	TurbulentLimit        float64 `json:"turbulent_limit"`
	TurbulenceCoefficient float64 `json:"turbulence_coefficient"`
	TurbulenceExponent    float64 `json:"turbulence_exponent"`
	Gravity               float64 `json:"gravity"`
}

func (s *Server) configHandler(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	c := s.svc.Config()
	writeJSON(w, http.StatusOK, configResponse{
		ThermalConductivity:   c.ThermalConductivity,
		Prandtl:               c.Prandtl,
		ProfileExponent:       c.ProfileExponent,
		LaminarLimit:          c.LaminarLimit,
		TurbulentLimit:        c.TurbulentLimit,
		TurbulenceCoefficient: c.TurbulenceCoefficient,
		TurbulenceExponent:    c.TurbulenceExponent,
		Gravity:               c.Gravity,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("写入响应失败")
	}
}

// 输入错误 400，计算过程中的物理或数值错误 422
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, calculator.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, calculator.ErrDomain), errors.Is(err, calculator.ErrArithmetic):
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, errorReply(err))
}
