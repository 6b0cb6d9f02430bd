package dto

type CreateContactReq struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type UpdateContactReq struct {
	Status string `json:"status" binding:"required,oneof=new read replied"`
}
