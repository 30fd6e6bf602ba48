package crmdto

// CustomerCreateInput đầu vào khi tạo khách hàng
type CustomerCreateInput struct {
	Name    string  `json:"name" validate:"required"`
	Phone   string  `json:"phone" validate:"required"`
	Address string  `json:"address" validate:"required"`
	Email   *string `json:"email"`
}
