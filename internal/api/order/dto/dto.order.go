package orderdto

// OrderItemInput một dòng hàng trong đơn
type OrderItemInput struct {
	GasType    string  `json:"gas_type" validate:"required"`
	CapacityKg float64 `json:"capacity_kg" validate:"required"`
	Quantity   int     `json:"quantity" validate:"required,gt=0"`
}

// OrderCreateInput đầu vào khi tạo đơn hàng.
// Validation liệt kê đủ mọi dòng hàng vi phạm, không dừng ở dòng đầu tiên.
type OrderCreateInput struct {
	CustomerID string           `json:"customer_id" validate:"required"`
	Items      []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	Status     string           `json:"status" validate:"omitempty,oneof=pending preparing out_for_delivery delivered cancelled"`
	AssignedTo *string          `json:"assigned_to"`
}
