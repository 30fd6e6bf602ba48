package deliverydto

// DeliveryTaskCreateInput đầu vào khi tạo nhiệm vụ giao hàng
type DeliveryTaskCreateInput struct {
	OrderID    string   `json:"order_id" validate:"required"`
	DriverID   *string  `json:"driver_id"`
	Status     string   `json:"status" validate:"omitempty,oneof=assigned picked_up en_route delivered failed"`
	CurrentLat *float64 `json:"current_lat"`
	CurrentLng *float64 `json:"current_lng"`
	Note       *string  `json:"note"`
}
