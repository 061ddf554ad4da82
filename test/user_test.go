package test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

func (s *IntegrationTestSuite) TestUpsertUserAndAdminCheck() {
	email := fmt.Sprintf("admin-%d@example.com", time.Now().UnixNano())

	status, body := s.doRequest(http.MethodPut, "/create-user/"+email, map[string]interface{}{
		"email": email,
		"role":  "admin",
		"phone": "01700000000",
	})
	s.Require().Equal(http.StatusOK, status)

	var resp struct {
		Result map[string]interface{} `json:"result"`
		Token  string                 `json:"token"`
	}
	s.Require().NoError(json.Unmarshal(body, &resp))
	s.NotEmpty(resp.Token)

	status, body = s.doRequest(http.MethodGet, "/admin/"+email, nil)
	s.Require().Equal(http.StatusOK, status)

	var adminResp struct {
		Admin bool `json:"admin"`
	}
	s.Require().NoError(json.Unmarshal(body, &adminResp))
	s.True(adminResp.Admin)

	status, body = s.doRequest(http.MethodGet, "/admin/nobody@example.com", nil)
	s.Require().Equal(http.StatusOK, status)
	s.Require().NoError(json.Unmarshal(body, &adminResp))
	s.False(adminResp.Admin)
}

// A second upsert with a different payload only overwrites the fields it
// carries; fields set by the first call survive.
func (s *IntegrationTestSuite) TestUpsertUserSetSemantics() {
	email := fmt.Sprintf("upsert-%d@example.com", time.Now().UnixNano())

	status, _ := s.doRequest(http.MethodPut, "/create-user/"+email, map[string]interface{}{
		"email": email,
		"role":  "admin",
		"phone": "01711111111",
	})
	s.Require().Equal(http.StatusOK, status)

	status, _ = s.doRequest(http.MethodPut, "/create-user/"+email, map[string]interface{}{
		"email":     email,
		"education": "BSc",
	})
	s.Require().Equal(http.StatusOK, status)

	status, body := s.doRequest(http.MethodGet, "/admin/"+email, nil)
	s.Require().Equal(http.StatusOK, status)

	var adminResp struct {
		Admin bool `json:"admin"`
	}
	s.Require().NoError(json.Unmarshal(body, &adminResp))
	s.True(adminResp.Admin)

	status, body = s.doRequest(http.MethodGet, "/users", nil)
	s.Require().Equal(http.StatusOK, status)

	var users []map[string]interface{}
	s.Require().NoError(json.Unmarshal(body, &users))

	var found map[string]interface{}
	for _, user := range users {
		if user["email"] == email {
			found = user
			break
		}
	}
	s.Require().NotNil(found)
	s.Equal("01711111111", found["phone"])
	s.Equal("BSc", found["education"])
}

func (s *IntegrationTestSuite) TestUpdateUserProfileReturnsToken() {
	email := fmt.Sprintf("profile-%d@example.com", time.Now().UnixNano())

	status, _ := s.doRequest(http.MethodPut, "/create-user/"+email, map[string]interface{}{
		"email": email,
	})
	s.Require().Equal(http.StatusOK, status)

	status, body := s.doRequest(http.MethodPut, "/users/"+email, map[string]interface{}{
		"username": "tester",
		"address":  "Dhaka",
	})
	s.Require().Equal(http.StatusOK, status)

	var resp struct {
		Result map[string]interface{} `json:"result"`
		Token  string                 `json:"token"`
	}
	s.Require().NoError(json.Unmarshal(body, &resp))
	s.NotEmpty(resp.Token)
}

func (s *IntegrationTestSuite) TestReviewCreateAndList() {
	status, _ := s.doRequest(http.MethodPost, "/review", map[string]interface{}{
		"name":    "Reviewer",
		"rating":  5,
		"comment": "great tools",
	})
	s.Require().Equal(http.StatusOK, status)

	status, body := s.doRequest(http.MethodGet, "/review", nil)
	s.Require().Equal(http.StatusOK, status)

	var reviews []map[string]interface{}
	s.Require().NoError(json.Unmarshal(body, &reviews))
	s.NotEmpty(reviews)
}
