package dto

type CriarClienteRequest struct {
	Nome     string  `json:"nome"     validate:"required,min=2,max=120"`
	Telefone *string `json:"telefone" validate:"omitempty,min=8,max=20"`
}

type ClienteResponse struct {
	ID       string  `json:"id"`
	Nome     string  `json:"nome"`
	Telefone *string `json:"telefone"`
}
