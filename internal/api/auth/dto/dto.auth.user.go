package authdto

// UserLoginInput đầu vào đăng nhập demo: so khớp chính xác email + password.
// Không validate định dạng email để không chặn tài khoản demo đã tồn tại.
type UserLoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
