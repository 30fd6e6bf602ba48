// Package basesvc - test áp dụng default từ struct tag khi insert.
package basesvc

import (
	"reflect"
	"testing"
)

type defaultedModel struct {
	Status   string  `default:"in_stock"`
	GasType  string  `default:"LPG"`
	IsActive *bool   `default:"true"`
	Retries  int64   `default:"3"`
	Weight   float64 `default:"12.5"`
	NoTag    string
}

func TestApplyInsertDefaults_ZeroFields(t *testing.T) {
	m := defaultedModel{}
	applyInsertDefaultsToModel(&m)

	if m.Status != "in_stock" {
		t.Errorf("Status là %q, muốn in_stock", m.Status)
	}
	if m.GasType != "LPG" {
		t.Errorf("GasType là %q, muốn LPG", m.GasType)
	}
	if m.IsActive == nil || *m.IsActive != true {
		t.Error("IsActive nil phải được set default true")
	}
	if m.Retries != 3 {
		t.Errorf("Retries là %d, muốn 3", m.Retries)
	}
	if m.Weight != 12.5 {
		t.Errorf("Weight là %v, muốn 12.5", m.Weight)
	}
	if m.NoTag != "" {
		t.Errorf("Field không có tag default phải giữ nguyên, nhận %q", m.NoTag)
	}
}

func TestApplyInsertDefaults_KeepsClientValues(t *testing.T) {
	isActive := false
	m := defaultedModel{
		Status:   "maintenance",
		IsActive: &isActive,
		Retries:  7,
	}
	applyInsertDefaultsToModel(&m)

	if m.Status != "maintenance" {
		t.Errorf("Giá trị client gửi lên bị ghi đè: %q", m.Status)
	}
	if m.IsActive == nil || *m.IsActive != false {
		t.Error("Con trỏ đã set false không được ghi đè thành default true")
	}
	if m.Retries != 7 {
		t.Errorf("Retries là %d, muốn 7", m.Retries)
	}
}

func TestApplyInsertDefaults_NonStructSafe(t *testing.T) {
	// Không panic với đầu vào không hợp lệ
	applyInsertDefaultsToModel(nil)
	x := 5
	applyInsertDefaultsToModel(&x)
	applyInsertDefaultsToModel(defaultedModel{})
}

func TestParseDefaultValue(t *testing.T) {
	if v := parseDefaultValue("true", reflect.TypeOf(false)); v != true {
		t.Errorf("parseDefaultValue bool trả về %v", v)
	}
	if v := parseDefaultValue("42", reflect.TypeOf(int64(0))); v != int64(42) {
		t.Errorf("parseDefaultValue int64 trả về %v", v)
	}
	if v := parseDefaultValue("1.5", reflect.TypeOf(float64(0))); v != 1.5 {
		t.Errorf("parseDefaultValue float64 trả về %v", v)
	}
	if v := parseDefaultValue("pending", reflect.TypeOf("")); v != "pending" {
		t.Errorf("parseDefaultValue string trả về %v", v)
	}
	if v := parseDefaultValue("x", reflect.TypeOf(struct{}{})); v != nil {
		t.Errorf("Kiểu không hỗ trợ phải trả về nil, nhận %v", v)
	}
}
