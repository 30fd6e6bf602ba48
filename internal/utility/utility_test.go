package utility

import (
	"testing"
)

type sourceInput struct {
	Barcode    string  `json:"barcode"`
	CapacityKg float64 `json:"capacity_kg"`
}

type targetModel struct {
	Barcode    string  `json:"barcode" bson:"barcode"`
	CapacityKg float64 `json:"capacity_kg" bson:"capacity_kg"`
	Status     string  `json:"status" bson:"status"`
}

func TestConvertStruct(t *testing.T) {
	src := sourceInput{Barcode: "GC-001", CapacityKg: 12.5}

	var dst targetModel
	if err := ConvertStruct(src, &dst); err != nil {
		t.Fatalf("ConvertStruct lỗi: %v", err)
	}
	if dst.Barcode != "GC-001" {
		t.Errorf("Barcode là %q, muốn GC-001", dst.Barcode)
	}
	if dst.CapacityKg != 12.5 {
		t.Errorf("CapacityKg là %v, muốn 12.5", dst.CapacityKg)
	}
	if dst.Status != "" {
		t.Errorf("Field không có trong source phải giữ zero value, nhận %q", dst.Status)
	}
}

func TestToMap_UsesBsonKeys(t *testing.T) {
	m, err := ToMap(targetModel{Barcode: "GC-002", CapacityKg: 45})
	if err != nil {
		t.Fatalf("ToMap lỗi: %v", err)
	}
	if m["barcode"] != "GC-002" {
		t.Errorf("Key barcode là %v, muốn GC-002", m["barcode"])
	}
	if _, ok := m["capacity_kg"]; !ok {
		t.Error("ToMap phải dùng bson tag làm key (capacity_kg)")
	}
	if _, ok := m["CapacityKg"]; ok {
		t.Error("ToMap không được dùng tên field Go làm key")
	}
}
