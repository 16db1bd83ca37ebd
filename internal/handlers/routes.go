package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"viewcrumbs_echo/internal/breadcrumbs"
	"viewcrumbs_echo/internal/models"
	"viewcrumbs_echo/internal/services"
)

// Deps are the shared dependencies of the page handlers
type Deps struct {
	DB          *gorm.DB
	Cache       *services.RedisCache
	Breadcrumbs *breadcrumbs.Config
	Log         *zap.Logger
}

// Register mounts every page on e and returns the page renderer. Page routes
// are named <app>_<model>_<suffix> so the breadcrumb helpers can reverse them.
func Register(e *echo.Echo, deps Deps) *Pages {
	pages := NewPages(deps.Breadcrumbs, e, deps.Log)

	dashboardHandler := NewDashboardHandler(pages)
	userHandler := NewUserHandler(deps.DB, deps.Cache, pages)
	planHandler := NewPlanHandler(deps.DB, deps.Cache, pages)

	e.GET("/dashboard", dashboardHandler.Dashboard).Name = "dashboard"

	user := &models.User{}
	e.GET("/users", userHandler.ListUsers).Name = viewName(user, breadcrumbs.ListSuffix)
	e.GET("/users/create", userHandler.CreateUserPage).Name = viewName(user, breadcrumbs.AddSuffix)
	e.POST("/users", userHandler.StoreUser)
	e.GET("/users/:id", userHandler.ShowUser).Name = viewName(user, breadcrumbs.DetailSuffix)
	e.GET("/users/:id/edit", userHandler.EditUserPage).Name = viewName(user, breadcrumbs.ChangeSuffix)
	e.POST("/users/:id/update", userHandler.UpdateUser)
	e.POST("/users/:id/delete", userHandler.DeleteUser)

	plan := &models.Plan{}
	e.GET("/plans", planHandler.ListPlans).Name = viewName(plan, breadcrumbs.ListSuffix)
	e.GET("/plans/create", planHandler.CreatePlanPage).Name = viewName(plan, breadcrumbs.AddSuffix)
	e.POST("/plans", planHandler.StorePlan)
	e.GET("/plans/:id", planHandler.ShowPlan).Name = viewName(plan, breadcrumbs.DetailSuffix)
	e.GET("/plans/:id/edit", planHandler.EditPlanPage).Name = viewName(plan, breadcrumbs.ChangeSuffix)
	e.POST("/plans/:id/update", planHandler.UpdatePlan)
	e.POST("/plans/:id/delete", planHandler.DeletePlan)

	// Redirect root to dashboard
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusTemporaryRedirect, "/dashboard")
	}).Name = "home"

	return pages
}

func viewName(model any, suffix string) string {
	name, err := breadcrumbs.ActionViewName(model, suffix)
	if err != nil {
		panic(fmt.Sprintf("route name for %T: %v", model, err))
	}
	return name
}
