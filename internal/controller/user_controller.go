package controller

import (
	"net/http"

	"github.com/KamrujjamanRony/sura-tools-serverside/internal/dto"
	"github.com/KamrujjamanRony/sura-tools-serverside/internal/service"
	"github.com/KamrujjamanRony/sura-tools-serverside/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

type UserController struct {
	service service.UserService
}

func CreateUserController(e *echo.Echo, service service.UserService, isLoggedIn echo.MiddlewareFunc) {
	c := UserController{
		service: service,
	}
	e.GET("/users", c.GetUsers)
	e.PUT("/users/:email", c.UpdateUserProfile)
	e.PUT("/create-user/:email", c.UpsertUser)
	e.GET("/admin/:email", c.CheckAdmin)
}

func (c *UserController) GetUsers(e echo.Context) error {
	users, err := c.service.GetUsers(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.JSON(http.StatusOK, users)
}

func (c *UserController) UpdateUserProfile(e echo.Context) error {
	email := e.Param("email")
	payload := dto.UserProfileRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateUserProfile").Msg("")
	}

	resp, err := c.service.UpdateUserProfile(e.Request().Context(), email, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.JSON(http.StatusOK, resp)
}

func (c *UserController) UpsertUser(e echo.Context) error {
	email := e.Param("email")
	payload := bson.M{}
	// body only; Bind would also copy the email path param into the map
	err := (&echo.DefaultBinder{}).BindBody(e, &payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpsertUser").Msg("")
	}

	resp, err := c.service.UpsertUser(e.Request().Context(), email, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.JSON(http.StatusOK, resp)
}

func (c *UserController) CheckAdmin(e echo.Context) error {
	email := e.Param("email")

	admin, err := c.service.IsAdmin(e.Request().Context(), email)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.JSON(http.StatusOK, map[string]bool{"admin": admin})
}
