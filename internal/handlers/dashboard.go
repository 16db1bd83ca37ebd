package handlers

import (
	"github.com/labstack/echo/v4"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	pages *Pages
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(pages *Pages) *DashboardHandler {
	return &DashboardHandler{pages: pages}
}

// Dashboard renders the dashboard page
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	return renderOK(h.pages, c, "dashboard.html", dashboardPage{}, map[string]any{
		"Title":     "Dashboard",
		"ActiveNav": "dashboard",
	})
}
