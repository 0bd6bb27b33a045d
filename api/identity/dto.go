package identity

// AuthRequest is the body of the register and login requests.
type AuthRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned after a successful login.
type AuthResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	BestScore int    `json:"best_score"`
	Token     string `json:"token"`
}
