package test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/KamrujjamanRony/sura-tools-serverside/internal/domain"
)

func (s *IntegrationTestSuite) TestOrderListFilteredByEmail() {
	email := fmt.Sprintf("it-%d@example.com", time.Now().UnixNano())

	for i := 0; i < 2; i++ {
		status, _ := s.doRequest(http.MethodPost, "/order", map[string]interface{}{
			"customerEmail": email,
			"toolName":      "Circular Saw",
			"price":         129.5,
		})
		s.Require().Equal(http.StatusOK, status)
	}
	status, _ := s.doRequest(http.MethodPost, "/order", map[string]interface{}{
		"customerEmail": "someone-else@example.com",
		"price":         10.0,
	})
	s.Require().Equal(http.StatusOK, status)

	status, body := s.doRequest(http.MethodGet, "/order?email="+email, nil)
	s.Require().Equal(http.StatusOK, status)

	var orders []map[string]interface{}
	s.Require().NoError(json.Unmarshal(body, &orders))
	s.Len(orders, 2)
	for _, order := range orders {
		s.Equal(email, order["customerEmail"])
	}
}

func (s *IntegrationTestSuite) TestOrderPaymentPatch() {
	status, body := s.doRequest(http.MethodPost, "/order", map[string]interface{}{
		"customerEmail": "payer@example.com",
		"price":         42.0,
	})
	s.Require().Equal(http.StatusOK, status)

	var insertResult struct {
		InsertedID string `json:"InsertedID"`
	}
	s.Require().NoError(json.Unmarshal(body, &insertResult))

	status, body = s.doRequest(http.MethodPatch, "/order/"+insertResult.InsertedID, map[string]interface{}{
		"transactionId": "txn_integration_1",
		"price":         42.0,
	})
	s.Require().Equal(http.StatusOK, status)

	var updateResult struct {
		ModifiedCount int64 `json:"ModifiedCount"`
	}
	s.Require().NoError(json.Unmarshal(body, &updateResult))
	s.Equal(int64(1), updateResult.ModifiedCount)

	status, body = s.doRequest(http.MethodGet, "/order/"+insertResult.InsertedID, nil)
	s.Require().Equal(http.StatusOK, status)

	var order domain.Order
	s.Require().NoError(json.Unmarshal(body, &order))
	s.True(order.Paid)
	s.Equal("txn_integration_1", order.TransactionID)
}

func (s *IntegrationTestSuite) TestOrderShippingUpdate() {
	status, body := s.doRequest(http.MethodPost, "/order", map[string]interface{}{
		"customerEmail": "shipping@example.com",
		"price":         15.0,
	})
	s.Require().Equal(http.StatusOK, status)

	var insertResult struct {
		InsertedID string `json:"InsertedID"`
	}
	s.Require().NoError(json.Unmarshal(body, &insertResult))

	status, _ = s.doRequest(http.MethodPatch, "/update-shipping/"+insertResult.InsertedID, map[string]interface{}{
		"shipping": "shipped",
	})
	s.Require().Equal(http.StatusOK, status)

	status, body = s.doRequest(http.MethodGet, "/order/"+insertResult.InsertedID, nil)
	s.Require().Equal(http.StatusOK, status)

	var order domain.Order
	s.Require().NoError(json.Unmarshal(body, &order))
	s.Equal("shipped", order.Shipment)
}
