package dto

type UserProfileRequest struct {
	Username  string `json:"username"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Education string `json:"education"`
	Linkedin  string `json:"linkedin"`
}
