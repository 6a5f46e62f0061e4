package request

type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type VerifySessionRequest struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role" binding:"required"`
}
