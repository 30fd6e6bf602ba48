package authsvc

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	authdto "gas_manager/internal/api/auth/dto"
	models "gas_manager/internal/api/auth/models"
	"gas_manager/internal/common"
)

// fakeUserStore giả lập collection user trong bộ nhớ. FindOne so khớp
// chính xác email + password như filter mà Login gửi xuống store.
type fakeUserStore struct {
	users []models.User
}

func (f *fakeUserStore) InsertOne(ctx context.Context, data models.User) (models.User, error) {
	data.ID = primitive.NewObjectID()
	f.users = append(f.users, data)
	return data, nil
}

func (f *fakeUserStore) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (models.User, error) {
	m, ok := filter.(bson.M)
	if !ok {
		return models.User{}, common.ErrNotFound
	}
	for _, u := range f.users {
		if u.Email == m["email"] && u.Password != nil && *u.Password == m["password"] {
			return u, nil
		}
	}
	return models.User{}, common.ErrNotFound
}

func (f *fakeUserStore) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.User, error) {
	out := make([]models.User, len(f.users))
	copy(out, f.users)
	return out, nil
}

func (f *fakeUserStore) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserStore) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	count, err := f.CountDocuments(ctx, filter)
	return count > 0, err
}

func seedUser(t *testing.T, store *fakeUserStore, email, password string) models.User {
	t.Helper()
	user, err := store.InsertOne(context.Background(), models.User{
		Email:    email,
		Name:     "Người dùng test",
		Role:     "admin",
		Password: &password,
	})
	if err != nil {
		t.Fatalf("Seed user lỗi: %v", err)
	}
	return user
}

func TestLogin_TokenEqualsRecordIdentity(t *testing.T) {
	store := &fakeUserStore{}
	seeded := seedUser(t, store, "admin@example.com", "admin123")
	svc := NewUserServiceWithStore(store)

	user, err := svc.Login(context.Background(), &authdto.UserLoginInput{
		Email:    "admin@example.com",
		Password: "admin123",
	})
	if err != nil {
		t.Fatalf("Login với credentials đúng phải thành công: %v", err)
	}

	// Token phát cho client là hex của _id, phải trùng identity bản ghi trong store
	if user.ID.Hex() != seeded.ID.Hex() {
		t.Errorf("Token identity là %s, muốn %s", user.ID.Hex(), seeded.ID.Hex())
	}
	if user.Email != "admin@example.com" {
		t.Errorf("Email là %q, muốn admin@example.com", user.Email)
	}
}

func TestLogin_WrongPasswordAndUnknownEmailIndistinguishable(t *testing.T) {
	store := &fakeUserStore{}
	seedUser(t, store, "admin@example.com", "admin123")
	svc := NewUserServiceWithStore(store)
	ctx := context.Background()

	_, errWrongPassword := svc.Login(ctx, &authdto.UserLoginInput{
		Email:    "admin@example.com",
		Password: "sai-mat-khau",
	})
	_, errUnknownEmail := svc.Login(ctx, &authdto.UserLoginInput{
		Email:    "khong-ton-tai@example.com",
		Password: "admin123",
	})

	for name, err := range map[string]error{
		"sai password":      errWrongPassword,
		"email không tồn tại": errUnknownEmail,
	} {
		if !errors.Is(err, common.ErrInvalidCredentials) {
			t.Fatalf("Login %s phải trả về ErrInvalidCredentials, nhận %v", name, err)
		}
		var customErr *common.Error
		if !errors.As(err, &customErr) {
			t.Fatalf("Lỗi login phải là *common.Error, nhận %T", err)
		}
		if customErr.Message != "Invalid credentials" {
			t.Errorf("Message cho %s là %q, muốn %q", name, customErr.Message, "Invalid credentials")
		}
		if customErr.StatusCode != common.StatusUnauthorized {
			t.Errorf("StatusCode cho %s là %d, muốn 401", name, customErr.StatusCode)
		}
	}

	// Hai trường hợp cho cùng một lỗi, client không phân biệt được
	if !errors.Is(errWrongPassword, errUnknownEmail) {
		t.Error("Sai password và email không tồn tại phải trả về cùng một lỗi")
	}
}
