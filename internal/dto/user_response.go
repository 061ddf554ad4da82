package dto

// UserTokenResponse mirrors the store's raw update result alongside a fresh
// bearer token for the affected email.
type UserTokenResponse struct {
	Result interface{} `json:"result"`
	Token  string      `json:"token"`
}
