package dto

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AuthToken string `json:"authToken"`
}

// CreateRepRequest adds a sales rep account. It requires the master password.
type CreateRepRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	MasterPassword string `json:"masterPassword"`
}

type DeleteRepRequest struct {
	Username       string `json:"username"`
	MasterPassword string `json:"masterPassword"`
}
