// Package schema sinh tài liệu schema dạng máy-đọc-được cho các entity,
// phục vụ endpoint introspection (/schema) để tool bên ngoài tự cấu hình
// form và validation.
//
// Tài liệu được build bằng reflection trên struct tag của model:
//   - json: tên field hiển thị
//   - validate: required, gt (exclusiveMinimum), oneof (enum)
//   - default: giá trị mặc định
//   - description: mô tả field
//   - schema:"-": loại field khỏi tài liệu (ID, timestamps)
package schema

import (
	"reflect"
	"strconv"
	"strings"
)

// BuildDocument build tài liệu schema cho một model struct.
// Kết quả có dạng JSON-Schema rút gọn: title, type, properties, required.
func BuildDocument(model interface{}) map[string]interface{} {
	rt := reflect.TypeOf(model)
	if rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	return buildObject(rt)
}

func buildObject(rt reflect.Type) map[string]interface{} {
	properties := map[string]interface{}{}
	required := []string{}

	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if f.Tag.Get("schema") == "-" {
			continue
		}

		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}

		prop := buildProperty(f)
		properties[name] = prop

		if hasValidateRule(f, "required") {
			required = append(required, name)
		}
	}

	doc := map[string]interface{}{
		"title":      rt.Name(),
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		doc["required"] = required
	}
	return doc
}

// buildProperty build mô tả cho một field: type, enum, default, bound, description
func buildProperty(f reflect.StructField) map[string]interface{} {
	ft := f.Type
	optional := false
	if ft.Kind() == reflect.Ptr {
		ft = ft.Elem()
		optional = true
	}

	prop := map[string]interface{}{}

	switch ft.Kind() {
	case reflect.String:
		prop["type"] = "string"
	case reflect.Bool:
		prop["type"] = "boolean"
	case reflect.Int, reflect.Int32, reflect.Int64:
		prop["type"] = "integer"
	case reflect.Float32, reflect.Float64:
		prop["type"] = "number"
	case reflect.Slice:
		prop["type"] = "array"
		elem := ft.Elem()
		if elem.Kind() == reflect.Ptr {
			elem = elem.Elem()
		}
		if elem.Kind() == reflect.Struct {
			prop["items"] = buildObject(elem)
		} else {
			prop["items"] = map[string]interface{}{"type": scalarTypeName(elem.Kind())}
		}
	case reflect.Struct:
		return buildObject(ft)
	default:
		prop["type"] = "string"
	}

	if optional {
		prop["nullable"] = true
	}

	// Enum từ rule oneof
	if oneof := validateRuleValue(f, "oneof"); oneof != "" {
		values := strings.Fields(oneof)
		enum := make([]interface{}, 0, len(values))
		for _, v := range values {
			enum = append(enum, v)
		}
		prop["enum"] = enum
	}

	// Cận dưới mở từ rule gt (ví dụ capacity_kg > 0)
	if gt := validateRuleValue(f, "gt"); gt != "" {
		if n, err := strconv.ParseFloat(gt, 64); err == nil {
			prop["exclusiveMinimum"] = n
		}
	}

	// Giá trị mặc định từ tag default
	if def := f.Tag.Get("default"); def != "" {
		prop["default"] = parseDefault(def, ft.Kind())
	}

	if desc := f.Tag.Get("description"); desc != "" {
		prop["description"] = desc
	}

	return prop
}

func scalarTypeName(k reflect.Kind) string {
	switch k {
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int32, reflect.Int64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	default:
		return "string"
	}
}

func parseDefault(s string, k reflect.Kind) interface{} {
	switch k {
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return s
		}
		return b
	case reflect.Int, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return s
		}
		return n
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return s
		}
		return n
	default:
		return s
	}
}

// hasValidateRule kiểm tra field có rule validate cụ thể không
func hasValidateRule(f reflect.StructField, rule string) bool {
	for _, part := range strings.Split(f.Tag.Get("validate"), ",") {
		if strings.TrimSpace(part) == rule {
			return true
		}
	}
	return false
}

// validateRuleValue trả về giá trị của rule dạng key=value trong tag validate.
// Với oneof, giá trị có thể chứa khoảng trắng (oneof=LPG O2 CO2).
func validateRuleValue(f reflect.StructField, rule string) string {
	for _, part := range strings.Split(f.Tag.Get("validate"), ",") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, rule+"=") {
			return strings.TrimPrefix(part, rule+"=")
		}
	}
	return ""
}
