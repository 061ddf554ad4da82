package controller

import (
	"net/http"

	"github.com/KamrujjamanRony/sura-tools-serverside/internal/dto"
	"github.com/KamrujjamanRony/sura-tools-serverside/internal/service"
	"github.com/KamrujjamanRony/sura-tools-serverside/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type PaymentController struct {
	service service.PaymentService
}

func CreatePaymentController(e *echo.Echo, service service.PaymentService) {
	c := PaymentController{
		service: service,
	}
	e.POST("/create-payment-intent", c.CreatePaymentIntent)
}

func (c *PaymentController) CreatePaymentIntent(e echo.Context) error {
	payload := dto.PaymentIntentRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "CreatePaymentIntent").Msg("")
	}

	resp, err := c.service.CreatePaymentIntent(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.JSON(http.StatusOK, resp)
}
