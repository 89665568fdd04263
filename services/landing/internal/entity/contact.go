package entity

type ContactMessage struct {
	Name    string `json:"name" validate:"required,max=100"`
	Phone   string `json:"phone" validate:"max=20"`
	Message string `json:"message" validate:"required"`
}

type AdminUser struct {
	ID       string
	Email    string
	Password string
	Role     string
	IsActive bool
}
