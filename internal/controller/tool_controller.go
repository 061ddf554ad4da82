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

type ToolController struct {
	service service.ToolService
}

func CreateToolController(e *echo.Echo, service service.ToolService, isLoggedIn echo.MiddlewareFunc) {
	c := ToolController{
		service: service,
	}
	e.POST("/tool", c.AddTool)
	e.GET("/tool", c.GetTools)
	e.GET("/tool/:id", c.GetToolByID)
	e.PUT("/tool/:id", c.UpdateTool)
	e.DELETE("/tool/:id", c.DeleteTool)
}

func (c *ToolController) AddTool(e echo.Context) error {
	payload := bson.M{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddTool").Msg("")
	}

	result, err := c.service.AddTool(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.JSON(http.StatusOK, result)
}

func (c *ToolController) GetTools(e echo.Context) error {
	tools, err := c.service.GetTools(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.JSON(http.StatusOK, tools)
}

func (c *ToolController) GetToolByID(e echo.Context) error {
	id := e.Param("id")

	tool, err := c.service.GetToolByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.JSON(http.StatusOK, tool)
}

func (c *ToolController) UpdateTool(e echo.Context) error {
	id := e.Param("id")
	payload := dto.ToolRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateTool").Msg("")
	}

	result, err := c.service.UpdateTool(e.Request().Context(), id, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.JSON(http.StatusOK, result)
}

func (c *ToolController) DeleteTool(e echo.Context) error {
	id := e.Param("id")

	result, err := c.service.DeleteTool(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.JSON(http.StatusOK, result)
}
