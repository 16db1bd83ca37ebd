package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"viewcrumbs_echo/internal/breadcrumbs"
	"viewcrumbs_echo/internal/models"
	"viewcrumbs_echo/internal/services"
)

type UserHandler struct {
	db    *gorm.DB
	cache *services.RedisCache
	pages *Pages
}

func NewUserHandler(db *gorm.DB, cache *services.RedisCache, pages *Pages) *UserHandler {
	return &UserHandler{db: db, cache: cache, pages: pages}
}

func (h *UserHandler) views() breadcrumbs.Views {
	return h.pages.Views(&models.User{})
}

func (h *UserHandler) recordPage(user *models.User, edit bool) *recordPage[*models.User] {
	return &recordPage[*models.User]{
		Views:  h.views(),
		record: user,
		label:  func(u *models.User) string { return u.DisplayName() },
		edit:   edit,
	}
}

func (h *UserHandler) findUser(c echo.Context, preload ...string) (*models.User, error) {
	var user models.User
	q := h.db
	for _, p := range preload {
		q = q.Preload(p)
	}
	if err := q.First(&user, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch user").SetInternal(err)
	}
	return &user, nil
}

// ListUsers renders the list of users
func (h *UserHandler) ListUsers(c echo.Context) error {
	var users []models.User
	if err := h.db.Order("name").Find(&users).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch users").SetInternal(err)
	}

	return renderOK(h.pages, c, "users_list.html", listPage{h.views()}, map[string]any{
		"Title":     "User Management",
		"ActiveNav": "users",
		"Users":     users,
	})
}

// ShowUser renders a user and the plans they own
func (h *UserHandler) ShowUser(c echo.Context) error {
	user, err := h.findUser(c, "Plans")
	if err != nil {
		return err
	}

	return renderOK(h.pages, c, "user_detail.html", h.recordPage(user, false), map[string]any{
		"Title":     user.DisplayName(),
		"ActiveNav": "users",
		"User":      user,
	})
}

// CreateUserPage renders the create user form
func (h *UserHandler) CreateUserPage(c echo.Context) error {
	return renderOK(h.pages, c, "user_form.html", createPage{h.views()}, map[string]any{
		"Title":     "Create New User",
		"ActiveNav": "users",
		"IsEdit":    false,
		"User":      &models.User{UserType: models.UserTypeMember},
	})
}

// StoreUser handles the creation of a new user
func (h *UserHandler) StoreUser(c echo.Context) error {
	user := models.User{
		Name:     c.FormValue("name"),
		Email:    c.FormValue("email"),
		UserType: models.UserType(c.FormValue("user_type")),
	}
	if user.UserType == "" {
		user.UserType = models.UserTypeMember
	}

	if err := h.db.Create(&user).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create user").SetInternal(err)
	}
	return h.redirectToList(c)
}

// EditUserPage renders the edit user form
func (h *UserHandler) EditUserPage(c echo.Context) error {
	user, err := h.findUser(c)
	if err != nil {
		return err
	}

	return renderOK(h.pages, c, "user_form.html", h.recordPage(user, true), map[string]any{
		"Title":     "Edit User",
		"ActiveNav": "users",
		"IsEdit":    true,
		"User":      user,
	})
}

// UpdateUser handles updating an existing user
func (h *UserHandler) UpdateUser(c echo.Context) error {
	user, err := h.findUser(c)
	if err != nil {
		return err
	}

	user.Name = c.FormValue("name")
	user.Email = c.FormValue("email")
	if t := c.FormValue("user_type"); t != "" {
		user.UserType = models.UserType(t)
	}

	if err := h.db.Save(user).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update user").SetInternal(err)
	}
	invalidatePlanList(h.cache, c.Request().Context())

	url, err := h.views().DetailViewName(user)
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, url)
}

// DeleteUser handles deleting a user
func (h *UserHandler) DeleteUser(c echo.Context) error {
	err := h.db.Transaction(func(tx *gorm.DB) error {
		// Orphan the user's plans instead of deleting them
		if err := tx.Model(&models.Plan{}).Where("owner_id = ?", c.Param("id")).Update("owner_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, c.Param("id")).Error
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete user").SetInternal(err)
	}
	invalidatePlanList(h.cache, c.Request().Context())
	return h.redirectToList(c)
}

func (h *UserHandler) redirectToList(c echo.Context) error {
	url, err := h.views().ListViewName()
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, url)
}
