package inventorydto

// CylinderCreateInput đầu vào khi nhập kho một bình gas.
// GasType và Status để trống sẽ nhận giá trị mặc định khi ghi vào store.
type CylinderCreateInput struct {
	Barcode    string  `json:"barcode" validate:"required"`
	GasType    string  `json:"gas_type" validate:"omitempty,oneof=LPG O2 CO2 N2 Ar Other"`
	CapacityKg float64 `json:"capacity_kg" validate:"required,gt=0"`
	Status     string  `json:"status" validate:"omitempty,oneof=in_stock reserved out_for_delivery delivered maintenance"`
	Location   *string `json:"location"`
	Notes      *string `json:"notes"`
}
