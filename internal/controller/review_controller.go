package controller

import (
	"net/http"

	"github.com/KamrujjamanRony/sura-tools-serverside/internal/service"
	"github.com/KamrujjamanRony/sura-tools-serverside/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

type ReviewController struct {
	service service.ReviewService
}

func CreateReviewController(e *echo.Echo, service service.ReviewService) {
	c := ReviewController{
		service: service,
	}
	e.POST("/review", c.AddReview)
	e.GET("/review", c.GetReviews)
}

func (c *ReviewController) AddReview(e echo.Context) error {
	payload := bson.M{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddReview").Msg("")
	}

	result, err := c.service.AddReview(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.JSON(http.StatusOK, result)
}

func (c *ReviewController) GetReviews(e echo.Context) error {
	reviews, err := c.service.GetReviews(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.JSON(http.StatusOK, reviews)
}
