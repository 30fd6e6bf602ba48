package ordersvc

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	models "gas_manager/internal/api/order/models"
	"gas_manager/internal/common"
)

// fakeOrderStore giả lập collection order trong bộ nhớ, Find áp filter
// exact match trên field status như store thật.
type fakeOrderStore struct {
	orders []models.Order
}

func (f *fakeOrderStore) InsertOne(ctx context.Context, data models.Order) (models.Order, error) {
	data.ID = primitive.NewObjectID()
	if data.Status == "" {
		data.Status = "pending"
	}
	f.orders = append(f.orders, data)
	return data, nil
}

func (f *fakeOrderStore) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (models.Order, error) {
	return models.Order{}, common.ErrNotFound
}

func (f *fakeOrderStore) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.Order, error) {
	status := ""
	if m, ok := filter.(bson.M); ok {
		if s, ok := m["status"].(string); ok {
			status = s
		}
	}
	results := []models.Order{}
	for _, o := range f.orders {
		if status == "" || o.Status == status {
			results = append(results, o)
		}
	}
	return results, nil
}

func (f *fakeOrderStore) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return int64(len(f.orders)), nil
}

func (f *fakeOrderStore) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	return len(f.orders) > 0, nil
}

func seedOrders(t *testing.T, store *fakeOrderStore) {
	t.Helper()
	ctx := context.Background()
	items := []models.OrderItem{{GasType: "LPG", CapacityKg: 12, Quantity: 1}}
	for _, status := range []string{"pending", "delivered", "pending"} {
		if _, err := store.InsertOne(ctx, models.Order{
			CustomerID: "665f0a1b2c3d4e5f60718293",
			Items:      items,
			Status:     status,
		}); err != nil {
			t.Fatalf("Seed order lỗi: %v", err)
		}
	}
}

func TestListOrders_StatusFilterExactMatch(t *testing.T) {
	store := &fakeOrderStore{}
	seedOrders(t, store)
	svc := NewOrderServiceWithStore(store)
	ctx := context.Background()

	pending, err := svc.ListOrders(ctx, "pending")
	if err != nil {
		t.Fatalf("ListOrders lỗi: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("Lọc status=pending phải trả về 2 đơn, nhận %d", len(pending))
	}
	for _, o := range pending {
		if o.Status != "pending" {
			t.Errorf("Đơn %s có status %q lọt qua filter pending", o.ID.Hex(), o.Status)
		}
	}
}

func TestListOrders_EmptyStatusReturnsAll(t *testing.T) {
	store := &fakeOrderStore{}
	seedOrders(t, store)
	svc := NewOrderServiceWithStore(store)

	all, err := svc.ListOrders(context.Background(), "")
	if err != nil {
		t.Fatalf("ListOrders lỗi: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Không có filter phải trả về cả 3 đơn, nhận %d", len(all))
	}
}

func TestListOrders_UnknownStatusReturnsEmptyArray(t *testing.T) {
	store := &fakeOrderStore{}
	seedOrders(t, store)
	svc := NewOrderServiceWithStore(store)

	got, err := svc.ListOrders(context.Background(), "shipped")
	if err != nil {
		t.Fatalf("ListOrders lỗi: %v", err)
	}
	if got == nil {
		t.Fatal("Kết quả phải là mảng rỗng, không phải nil")
	}
	if len(got) != 0 {
		t.Errorf("Status ngoài vòng đời phải trả về mảng rỗng, nhận %d đơn", len(got))
	}
}
