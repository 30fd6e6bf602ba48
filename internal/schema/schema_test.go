package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authmodels "gas_manager/internal/api/auth/models"
	crmmodels "gas_manager/internal/api/crm/models"
	deliverymodels "gas_manager/internal/api/delivery/models"
	inventorymodels "gas_manager/internal/api/inventory/models"
	ordermodels "gas_manager/internal/api/order/models"
)

func TestBuildDocument_Cylinder(t *testing.T) {
	doc := BuildDocument(inventorymodels.Cylinder{})

	assert.Equal(t, "Cylinder", doc["title"], "title phải là tên struct")
	assert.Equal(t, "object", doc["type"])

	required, ok := doc["required"].([]string)
	require.True(t, ok, "doc phải có danh sách required")
	assert.ElementsMatch(t, []string{"barcode", "capacity_kg"}, required,
		"chỉ barcode và capacity_kg là bắt buộc, field có default không bắt buộc")

	props, ok := doc["properties"].(map[string]interface{})
	require.True(t, ok)

	// Identity và timestamps không xuất hiện trong schema
	assert.NotContains(t, props, "_id")
	assert.NotContains(t, props, "createdAt")
	assert.NotContains(t, props, "updatedAt")

	capacity, ok := props["capacity_kg"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "number", capacity["type"])
	assert.Equal(t, float64(0), capacity["exclusiveMinimum"], "capacity_kg phải có cận dưới mở 0")

	gasType, ok := props["gas_type"].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, gasType["enum"], 6)
	assert.Equal(t, "LPG", gasType["default"])

	status, ok := props["status"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "in_stock", status["default"])

	location, ok := props["location"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, location["nullable"], "field con trỏ phải nullable")
}

func TestBuildDocument_User(t *testing.T) {
	doc := BuildDocument(authmodels.User{})

	required, ok := doc["required"].([]string)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"email", "name"}, required)

	props := doc["properties"].(map[string]interface{})

	role := props["role"].(map[string]interface{})
	assert.ElementsMatch(t, []interface{}{"admin", "staff", "driver"}, role["enum"])
	assert.Equal(t, "admin", role["default"])

	isActive := props["is_active"].(map[string]interface{})
	assert.Equal(t, "boolean", isActive["type"])
	assert.Equal(t, true, isActive["default"])
}

func TestBuildDocument_OrderNestedItems(t *testing.T) {
	doc := BuildDocument(ordermodels.Order{})
	props := doc["properties"].(map[string]interface{})

	items, ok := props["items"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "array", items["type"])

	itemSchema, ok := items["items"].(map[string]interface{})
	require.True(t, ok, "items phải có schema object lồng bên trong")
	assert.Equal(t, "OrderItem", itemSchema["title"])

	itemProps := itemSchema["properties"].(map[string]interface{})
	quantity := itemProps["quantity"].(map[string]interface{})
	assert.Equal(t, "integer", quantity["type"])
	assert.Equal(t, float64(0), quantity["exclusiveMinimum"])
}

func TestBuildDocument_AllEntities(t *testing.T) {
	titles := map[string]interface{}{
		"User":         authmodels.User{},
		"Cylinder":     inventorymodels.Cylinder{},
		"Customer":     crmmodels.Customer{},
		"Order":        ordermodels.Order{},
		"DeliveryTask": deliverymodels.DeliveryTask{},
	}
	for want, model := range titles {
		doc := BuildDocument(model)
		assert.Equal(t, want, doc["title"])
		assert.NotEmpty(t, doc["properties"], "entity %s phải có properties", want)
	}
}
