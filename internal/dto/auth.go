package dto

type RegisterRequestDTO struct {
	Login    string `json:"login" example:"amina"`
	Password string `json:"password" example:"secret"`
	Name     string `json:"name" example:"Amina Rahman"`
	Email    string `json:"email" example:"amina@example.com"`
	Phone    string `json:"phone" example:"+60123456789"`
}

type RegisterResponseDTO struct {
	Message string `json:"message" example:"User successfully registered"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" example:"amina"`
	Password string `json:"password" example:"secret"`
}

type LoginResponseDTO struct {
	Message string `json:"message" example:"User successfully authenticated"`
}
