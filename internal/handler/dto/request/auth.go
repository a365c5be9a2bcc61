package request

type LoginRequest struct {
	Username string `json:"username" binding:"required,max=120"`
	Password string `json:"password" binding:"required,max=128"`
}
