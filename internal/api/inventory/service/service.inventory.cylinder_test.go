package inventorysvc

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	models "gas_manager/internal/api/inventory/models"
	"gas_manager/internal/common"
)

// fakeCylinderStore giả lập collection cylinder trong bộ nhớ với unique
// index trên barcode. blindExists mô phỏng kiểm tra tồn tại bị trễ so với
// một insert song song: DocumentExists luôn báo chưa có, chỉ unique index
// ở InsertOne bắt được trùng.
type fakeCylinderStore struct {
	docs        []models.Cylinder
	blindExists bool
}

func (f *fakeCylinderStore) InsertOne(ctx context.Context, data models.Cylinder) (models.Cylinder, error) {
	for _, d := range f.docs {
		if d.Barcode == data.Barcode {
			return models.Cylinder{}, common.ErrMongoDuplicate
		}
	}
	data.ID = primitive.NewObjectID()
	f.docs = append(f.docs, data)
	return data, nil
}

func (f *fakeCylinderStore) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (models.Cylinder, error) {
	return models.Cylinder{}, common.ErrNotFound
}

func (f *fakeCylinderStore) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.Cylinder, error) {
	out := make([]models.Cylinder, len(f.docs))
	copy(out, f.docs)
	return out, nil
}

func (f *fakeCylinderStore) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return int64(len(f.docs)), nil
}

func (f *fakeCylinderStore) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	if f.blindExists {
		return false, nil
	}
	m, ok := filter.(bson.M)
	if !ok {
		return false, nil
	}
	for _, d := range f.docs {
		if d.Barcode == m["barcode"] {
			return true, nil
		}
	}
	return false, nil
}

func TestCreateCylinder_DuplicateBarcodeRejected(t *testing.T) {
	store := &fakeCylinderStore{}
	svc := NewCylinderServiceWithStore(store)
	ctx := context.Background()

	first, err := svc.CreateCylinder(ctx, models.Cylinder{Barcode: "GC-001", CapacityKg: 12})
	if err != nil {
		t.Fatalf("Insert đầu tiên phải thành công: %v", err)
	}
	if first.ID.IsZero() {
		t.Error("Bình gas vừa tạo phải có identity do store cấp")
	}

	_, err = svc.CreateCylinder(ctx, models.Cylinder{Barcode: "GC-001", CapacityKg: 45})
	if !errors.Is(err, errBarcodeExists) {
		t.Fatalf("Insert trùng barcode phải trả về lỗi barcode exists, nhận %v", err)
	}

	// Sau lần insert trùng, kho vẫn chỉ có đúng một document
	if len(store.docs) != 1 {
		t.Errorf("Kho phải có đúng 1 document, nhận %d", len(store.docs))
	}
	if store.docs[0].CapacityKg != 12 {
		t.Errorf("Document gốc không được bị ghi đè, CapacityKg là %v", store.docs[0].CapacityKg)
	}
}

func TestCreateCylinder_DuplicateCaughtByUniqueIndexOnRace(t *testing.T) {
	// Pre-check không thấy trùng nhưng unique index từ chối khi ghi
	store := &fakeCylinderStore{blindExists: true}
	svc := NewCylinderServiceWithStore(store)
	ctx := context.Background()

	if _, err := svc.CreateCylinder(ctx, models.Cylinder{Barcode: "GC-002", CapacityKg: 12}); err != nil {
		t.Fatalf("Insert đầu tiên phải thành công: %v", err)
	}

	_, err := svc.CreateCylinder(ctx, models.Cylinder{Barcode: "GC-002", CapacityKg: 12})
	if !errors.Is(err, errBarcodeExists) {
		t.Fatalf("Lỗi duplicate từ store phải được dịch thành barcode exists, nhận %v", err)
	}
	if len(store.docs) != 1 {
		t.Errorf("Kho phải có đúng 1 document, nhận %d", len(store.docs))
	}
}

func TestErrBarcodeExistsShape(t *testing.T) {
	var customErr *common.Error
	if !errors.As(errBarcodeExists, &customErr) {
		t.Fatal("errBarcodeExists phải là *common.Error")
	}
	if customErr.Message != "Barcode already exists" {
		t.Errorf("Message là %q, muốn %q", customErr.Message, "Barcode already exists")
	}
	if customErr.StatusCode != common.StatusBadRequest {
		t.Errorf("StatusCode là %d, muốn 400 (xung đột nghiệp vụ, không phải 409 của store)", customErr.StatusCode)
	}
	if customErr.Code.Code != common.ErrCodeBusinessOperation.Code {
		t.Errorf("Mã lỗi là %s, muốn %s", customErr.Code.Code, common.ErrCodeBusinessOperation.Code)
	}
}
