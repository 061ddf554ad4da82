package service

import (
	"context"

	"github.com/KamrujjamanRony/sura-tools-serverside/internal/dto"
)

const paymentCurrency = "usd"

type PaymentServiceImpl struct {
	gateway PaymentGateway
}

func CreatePaymentService(gateway PaymentGateway) PaymentService {
	return &PaymentServiceImpl{gateway: gateway}
}

func (s *PaymentServiceImpl) CreatePaymentIntent(ctx context.Context, data dto.PaymentIntentRequest) (resp dto.PaymentIntentResponse, err error) {
	amount := int64(data.Price * 100)

	clientSecret, err := s.gateway.CreatePaymentIntent(ctx, amount, paymentCurrency)
	if err != nil {
		return
	}

	resp.ClientSecret = clientSecret

	return
}
