package crmsvc

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	models "gas_manager/internal/api/crm/models"
	"gas_manager/internal/common"
)

// fakeCustomerStore giả lập collection customer trong bộ nhớ
type fakeCustomerStore struct {
	customers []models.Customer
}

func (f *fakeCustomerStore) InsertOne(ctx context.Context, data models.Customer) (models.Customer, error) {
	data.ID = primitive.NewObjectID()
	f.customers = append(f.customers, data)
	return data, nil
}

func (f *fakeCustomerStore) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (models.Customer, error) {
	return models.Customer{}, common.ErrNotFound
}

func (f *fakeCustomerStore) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.Customer, error) {
	out := make([]models.Customer, len(f.customers))
	copy(out, f.customers)
	return out, nil
}

func (f *fakeCustomerStore) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return int64(len(f.customers)), nil
}

func (f *fakeCustomerStore) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	return len(f.customers) > 0, nil
}

func TestCreateCustomer_RoundTripThroughList(t *testing.T) {
	store := &fakeCustomerStore{}
	svc := NewCustomerServiceWithStore(store)
	ctx := context.Background()

	created, err := svc.CreateCustomer(ctx, models.Customer{
		Name:    "Nguyễn Văn A",
		Phone:   "0901234567",
		Address: "12 Lý Thường Kiệt, Hà Nội",
	})
	if err != nil {
		t.Fatalf("CreateCustomer lỗi: %v", err)
	}
	if created.ID.IsZero() {
		t.Fatal("Khách hàng vừa tạo phải có identity do store cấp")
	}

	list, err := svc.ListCustomers(ctx)
	if err != nil {
		t.Fatalf("ListCustomers lỗi: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("Danh sách phải có đúng 1 khách hàng, nhận %d", len(list))
	}
	got := list[0]
	if got.ID != created.ID {
		t.Errorf("Identity trong danh sách là %s, muốn %s", got.ID.Hex(), created.ID.Hex())
	}
	if got.Name != "Nguyễn Văn A" || got.Phone != "0901234567" {
		t.Errorf("Khách hàng trong danh sách không khớp bản ghi đã tạo: %+v", got)
	}
}

func TestCreateCustomer_DuplicateAllowedWithDistinctIdentity(t *testing.T) {
	store := &fakeCustomerStore{}
	svc := NewCustomerServiceWithStore(store)
	ctx := context.Background()

	input := models.Customer{Name: "Trần Thị B", Phone: "0987654321", Address: "45 Hai Bà Trưng"}
	first, err := svc.CreateCustomer(ctx, input)
	if err != nil {
		t.Fatalf("CreateCustomer lần 1 lỗi: %v", err)
	}
	second, err := svc.CreateCustomer(ctx, input)
	if err != nil {
		t.Fatalf("CreateCustomer lần 2 lỗi: %v", err)
	}
	if first.ID == second.ID {
		t.Error("Hai lần tạo cùng một khách phải nhận hai identity khác nhau")
	}
}
