package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrsuite/personnel-system/internal/core/domain"
	"github.com/hrsuite/personnel-system/internal/core/ports"
)

// ResourceHandler serves the read endpoints sitting behind the resource
// access guard. The guard has already decided; these handlers only fetch.
type ResourceHandler struct {
	persons   ports.PersonDirectory
	directory ports.UserDirectory
}

func NewResourceHandler(persons ports.PersonDirectory, directory ports.UserDirectory) *ResourceHandler {
	return &ResourceHandler{persons: persons, directory: directory}
}

// GetPerson returns a person record.
//
// @Summary      Fetch a person
// @Tags         persons
// @Produce      json
// @Param        id  path      string  true  "Person id"
// @Success      200 {object}  domain.Person
// @Failure      404 {object}  map[string]string
// @Router       /persons/{id} [get]
func (h *ResourceHandler) GetPerson(c echo.Context) error {
	person, err := h.persons.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if person == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "person not found"})
	}
	return c.JSON(http.StatusOK, person)
}

// GetUser returns a user account with roles resolved.
//
// @Summary      Fetch a user
// @Tags         users
// @Produce      json
// @Param        id  path      string  true  "User id"
// @Success      200 {object}  domain.User
// @Failure      404 {object}  map[string]string
// @Router       /users/{id} [get]
func (h *ResourceHandler) GetUser(c echo.Context) error {
	user, err := h.directory.FindForAuthenticationByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if err == domain.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, user)
}
