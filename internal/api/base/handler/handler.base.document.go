package basehdl

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"gas_manager/internal/utility"
)

// DocumentWithStringID chuyển model thành map theo bson tag, với _id đổi
// thành chuỗi hex. Document chưa có identity thì _id là nil.
func DocumentWithStringID(model interface{}) (map[string]interface{}, error) {
	m, err := utility.ToMap(model)
	if err != nil {
		return nil, err
	}
	if oid, ok := m["_id"].(primitive.ObjectID); ok && !oid.IsZero() {
		m["_id"] = oid.Hex()
	} else {
		m["_id"] = nil
	}
	return m, nil
}

// DocumentWithoutID chuyển model thành map theo bson tag và loại bỏ _id
func DocumentWithoutID(model interface{}) (map[string]interface{}, error) {
	m, err := utility.ToMap(model)
	if err != nil {
		return nil, err
	}
	delete(m, "_id")
	return m, nil
}
