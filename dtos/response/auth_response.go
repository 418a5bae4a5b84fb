package response

type AuthResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}
