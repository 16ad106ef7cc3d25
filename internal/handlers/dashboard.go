package handlers

import (
	"net/http"
	"time"

	"github.com/carbyo/trip-carbon/internal/carbon"
	"github.com/carbyo/trip-carbon/internal/middleware"
)

// DashboardHandler serves the cockpit KPI tiles.
type DashboardHandler struct {
	dashboard *carbon.Dashboard
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard *carbon.Dashboard) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// GetDashboard returns the KPI set for the authenticated user. An optional
// ?month=YYYY-MM query pins the reference month; it defaults to now.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	claims, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	ref := time.Now()
	if month := r.URL.Query().Get("month"); month != "" {
		parsed, err := time.Parse("2006-01", month)
		if err != nil {
			http.Error(w, "Invalid month, expected YYYY-MM", http.StatusBadRequest)
			return
		}
		ref = parsed
	}

	items, err := h.dashboard.Build(r.Context(), claims.UserID, ref)
	if err != nil {
		// Only context cancellation reaches here; fetch failures have
		// already been degraded into unavailable tiles.
		http.Error(w, "Request cancelled", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}
