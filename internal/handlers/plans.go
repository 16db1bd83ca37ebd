package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"viewcrumbs_echo/internal/breadcrumbs"
	"viewcrumbs_echo/internal/models"
	"viewcrumbs_echo/internal/services"
)

type PlanHandler struct {
	db    *gorm.DB
	cache *services.RedisCache
	pages *Pages
}

func NewPlanHandler(db *gorm.DB, cache *services.RedisCache, pages *Pages) *PlanHandler {
	return &PlanHandler{db: db, cache: cache, pages: pages}
}

func (h *PlanHandler) views() breadcrumbs.Views {
	return h.pages.Views(&models.Plan{})
}

func (h *PlanHandler) recordPage(plan *models.Plan, edit bool) *recordPage[*models.Plan] {
	return &recordPage[*models.Plan]{
		Views:  h.views(),
		record: plan,
		label:  func(p *models.Plan) string { return p.Name },
		edit:   edit,
	}
}

func (h *PlanHandler) findPlan(c echo.Context) (*models.Plan, error) {
	var plan models.Plan
	if err := h.db.Preload("Owner").First(&plan, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Plan not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch plan").SetInternal(err)
	}
	return &plan, nil
}

// ListPlans renders the list of plans
func (h *PlanHandler) ListPlans(c echo.Context) error {
	ctx := c.Request().Context()
	plans, err := services.GetOrSet(h.cache, ctx, planListCacheKey, planListCacheTTL, func() ([]models.Plan, error) {
		var plans []models.Plan
		err := h.db.Preload("Owner").Order("created_at desc").Find(&plans).Error
		return plans, err
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch plans").SetInternal(err)
	}

	return renderOK(h.pages, c, "plans_list.html", listPage{h.views()}, map[string]any{
		"Title":     "Plan Management",
		"ActiveNav": "plans",
		"Plans":     plans,
	})
}

// ShowPlan renders a single plan
func (h *PlanHandler) ShowPlan(c echo.Context) error {
	plan, err := h.findPlan(c)
	if err != nil {
		return err
	}

	return renderOK(h.pages, c, "plan_detail.html", h.recordPage(plan, false), map[string]any{
		"Title":     plan.Name,
		"ActiveNav": "plans",
		"Plan":      plan,
	})
}

// CreatePlanPage renders the create plan form
func (h *PlanHandler) CreatePlanPage(c echo.Context) error {
	users, err := h.allUsers()
	if err != nil {
		return err
	}

	return renderOK(h.pages, c, "plan_form.html", createPage{h.views()}, map[string]any{
		"Title":     "Create New Plan",
		"ActiveNav": "plans",
		"IsEdit":    false,
		"Plan":      &models.Plan{IsActive: true},
		"AllUsers":  users,
	})
}

// StorePlan handles the creation of a new plan
func (h *PlanHandler) StorePlan(c echo.Context) error {
	var plan models.Plan
	if err := bindPlanForm(c, &plan); err != nil {
		return err
	}

	if err := h.db.Create(&plan).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create plan").SetInternal(err)
	}
	invalidatePlanList(h.cache, c.Request().Context())

	url, err := h.views().DetailViewName(&plan)
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, url)
}

// EditPlanPage renders the edit plan form
func (h *PlanHandler) EditPlanPage(c echo.Context) error {
	plan, err := h.findPlan(c)
	if err != nil {
		return err
	}
	users, err := h.allUsers()
	if err != nil {
		return err
	}

	return renderOK(h.pages, c, "plan_form.html", h.recordPage(plan, true), map[string]any{
		"Title":     "Edit Plan",
		"ActiveNav": "plans",
		"IsEdit":    true,
		"Plan":      plan,
		"AllUsers":  users,
	})
}

// UpdatePlan handles updating an existing plan
func (h *PlanHandler) UpdatePlan(c echo.Context) error {
	plan, err := h.findPlan(c)
	if err != nil {
		return err
	}

	if err := bindPlanForm(c, plan); err != nil {
		return err
	}
	plan.Owner = nil

	if err := h.db.Save(plan).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update plan").SetInternal(err)
	}
	invalidatePlanList(h.cache, c.Request().Context())

	url, err := h.views().DetailViewName(plan)
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, url)
}

// DeletePlan handles deleting a plan
func (h *PlanHandler) DeletePlan(c echo.Context) error {
	if err := h.db.Delete(&models.Plan{}, c.Param("id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete plan").SetInternal(err)
	}
	invalidatePlanList(h.cache, c.Request().Context())

	url, err := h.views().ListViewName()
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, url)
}

func (h *PlanHandler) allUsers() ([]models.User, error) {
	var users []models.User
	if err := h.db.Order("name").Find(&users).Error; err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch users").SetInternal(err)
	}
	return users, nil
}

// bindPlanForm copies the plan form fields onto plan. An empty total price
// means zero.
func bindPlanForm(c echo.Context, plan *models.Plan) error {
	plan.TotalPrice = 0
	if raw := c.FormValue("total_price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid total price").SetInternal(err)
		}
		plan.TotalPrice = price
	}

	plan.Name = c.FormValue("name")
	plan.Description = c.FormValue("description")
	plan.IsActive = c.FormValue("is_active") == "on"

	plan.OwnerID = nil
	if id, err := strconv.ParseUint(c.FormValue("owner_id"), 10, 32); err == nil && id > 0 {
		ownerID := uint(id)
		plan.OwnerID = &ownerID
	}
	return nil
}
