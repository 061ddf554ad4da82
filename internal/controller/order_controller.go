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

type OrderController struct {
	service service.OrderService
}

func CreateOrderController(e *echo.Echo, service service.OrderService, isLoggedIn echo.MiddlewareFunc) {
	c := OrderController{
		service: service,
	}
	e.GET("/order", c.GetOrders)
	e.POST("/order", c.AddOrder)
	e.GET("/order/:id", c.GetOrderByID)
	e.PATCH("/order/:id", c.PayOrder)
	e.GET("/my-order", c.GetMyOrders)
	e.GET("/my-order/:id", c.GetMyOrderByID)
	e.DELETE("/my-order/:id", c.DeleteMyOrder)
	e.PATCH("/update-shipping/:id", c.UpdateShipping)
}

func (c *OrderController) GetOrders(e echo.Context) error {
	email := e.QueryParam("email")

	orders, err := c.service.GetOrders(e.Request().Context(), email)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.JSON(http.StatusOK, orders)
}

func (c *OrderController) AddOrder(e echo.Context) error {
	payload := bson.M{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrder").Msg("")
	}

	result, err := c.service.AddOrder(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.JSON(http.StatusOK, result)
}

func (c *OrderController) GetOrderByID(e echo.Context) error {
	id := e.Param("id")

	order, err := c.service.GetOrderByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.JSON(http.StatusOK, order)
}

func (c *OrderController) PayOrder(e echo.Context) error {
	id := e.Param("id")
	payload := bson.M{}
	// body only; Bind would also copy the id path param into the map
	err := (&echo.DefaultBinder{}).BindBody(e, &payload)
	if err != nil {
		log.Error().Err(err).Str("component", "PayOrder").Msg("")
	}

	result, err := c.service.PayOrder(e.Request().Context(), id, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.JSON(http.StatusOK, result)
}

func (c *OrderController) GetMyOrders(e echo.Context) error {
	email := e.QueryParam("email")

	orders, err := c.service.GetMyOrders(e.Request().Context(), email)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.JSON(http.StatusOK, orders)
}

func (c *OrderController) GetMyOrderByID(e echo.Context) error {
	id := e.Param("id")

	order, err := c.service.GetOrderByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.JSON(http.StatusOK, order)
}

func (c *OrderController) DeleteMyOrder(e echo.Context) error {
	id := e.Param("id")

	result, err := c.service.DeleteOrder(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.JSON(http.StatusOK, result)
}

func (c *OrderController) UpdateShipping(e echo.Context) error {
	id := e.Param("id")
	payload := dto.ShippingRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateShipping").Msg("")
	}

	result, err := c.service.UpdateShipping(e.Request().Context(), id, payload.Shipping)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.JSON(http.StatusOK, result)
}
