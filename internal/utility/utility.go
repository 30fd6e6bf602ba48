package utility

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ConvertStruct chuyển đổi một struct sang struct khác qua JSON
// (các field trùng tên tag json sẽ được copy).
// Parameters:
//   - source: Struct nguồn cần chuyển đổi
//   - target: Con trỏ đến struct đích
//
// Returns:
//   - error: Lỗi nếu có
func ConvertStruct(source interface{}, target interface{}) error {
	jsonData, err := json.Marshal(source)
	if err != nil {
		return err
	}
	return json.Unmarshal(jsonData, target)
}

// ToMap chuyển đổi struct thành map qua bson marshal/unmarshal.
// Key của map là tên tag bson của field.
func ToMap(s interface{}) (map[string]interface{}, error) {
	var stringInterfaceMap map[string]interface{}
	raw, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}
	if err := bson.Unmarshal(raw, &stringInterfaceMap); err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return stringInterfaceMap, nil
}
