package test

import (
	"encoding/json"
	"net/http"
)

func (s *IntegrationTestSuite) TestToolCreateAndFetchByID() {
	payload := map[string]interface{}{
		"name":               "Circular Saw",
		"image":              "https://example.com/saw.png",
		"description":        "185mm corded circular saw",
		"price":              129.5,
		"min_quantity":       2,
		"available_quantity": 40,
	}

	status, body := s.doRequest(http.MethodPost, "/tool", payload)
	s.Equal(http.StatusOK, status)

	var insertResult struct {
		InsertedID string `json:"InsertedID"`
	}
	s.Require().NoError(json.Unmarshal(body, &insertResult))
	s.Require().NotEmpty(insertResult.InsertedID)

	status, body = s.doRequest(http.MethodGet, "/tool/"+insertResult.InsertedID, nil)
	s.Equal(http.StatusOK, status)

	var tool map[string]interface{}
	s.Require().NoError(json.Unmarshal(body, &tool))
	s.Equal("Circular Saw", tool["name"])
	s.Equal(129.5, tool["price"])
	s.Equal(float64(40), tool["available_quantity"])
}

func (s *IntegrationTestSuite) TestToolUpdateUpsertsAndDelete() {
	payload := map[string]interface{}{"name": "Hand Drill", "price": 35.0}

	status, body := s.doRequest(http.MethodPost, "/tool", payload)
	s.Require().Equal(http.StatusOK, status)

	var insertResult struct {
		InsertedID string `json:"InsertedID"`
	}
	s.Require().NoError(json.Unmarshal(body, &insertResult))

	update := map[string]interface{}{
		"name":               "Hand Drill v2",
		"price":              39.0,
		"available_quantity": 10,
	}
	status, _ = s.doRequest(http.MethodPut, "/tool/"+insertResult.InsertedID, update)
	s.Equal(http.StatusOK, status)

	status, body = s.doRequest(http.MethodGet, "/tool/"+insertResult.InsertedID, nil)
	s.Require().Equal(http.StatusOK, status)

	var tool map[string]interface{}
	s.Require().NoError(json.Unmarshal(body, &tool))
	s.Equal("Hand Drill v2", tool["name"])

	status, body = s.doRequest(http.MethodDelete, "/tool/"+insertResult.InsertedID, nil)
	s.Equal(http.StatusOK, status)

	var deleteResult struct {
		DeletedCount int64 `json:"DeletedCount"`
	}
	s.Require().NoError(json.Unmarshal(body, &deleteResult))
	s.Equal(int64(1), deleteResult.DeletedCount)
}
