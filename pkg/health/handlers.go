package health

import (
	"encoding/json"
	"net/http"
)

// LivenessHandler serves CheckLiveness. Only unhealthy yields 503.
func (c *Checker) LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, c.CheckLiveness(), false)
	}
}

// ReadinessHandler serves CheckReadiness. Anything but healthy yields 503.
func (c *Checker) ReadinessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, c.CheckReadiness(), true)
	}
}

func writeResponse(w http.ResponseWriter, response Response, strict bool) {
	w.Header().Set("Content-Type", "application/json")

	code := http.StatusOK
	if response.Status == StatusUnhealthy || (strict && response.Status != StatusHealthy) {
		code = http.StatusServiceUnavailable
	}
	w.WriteHeader(code)

	json.NewEncoder(w).Encode(response)
}
