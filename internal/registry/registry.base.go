package registry

import (
	"fmt"
	"sync"
)

// Registry là một generic registry an toàn với goroutine, dùng để lưu trữ
// và truy xuất các item theo tên (ví dụ: các *mongo.Collection của từng entity).
//
// Example:
//
//	reg := registry.NewRegistry[*mongo.Collection]()
//	reg.Register("cylinder", db.Collection("cylinder"))
//	col, err := reg.Get("cylinder")
type Registry[T any] struct {
	items map[string]T
	mu    sync.RWMutex
}

// NewRegistry tạo mới một Registry rỗng
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register đăng ký một item theo tên.
// Trả về true nếu đăng ký mới, false nếu tên đã tồn tại (item cũ được giữ nguyên).
func (r *Registry[T]) Register(name string, item T) (bool, error) {
	if name == "" {
		return false, fmt.Errorf("tên đăng ký không được rỗng")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; exists {
		return false, nil
	}
	r.items[name] = item
	return true, nil
}

// Get trả về item theo tên, lỗi nếu chưa được đăng ký
func (r *Registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[name]
	if !exists {
		var zero T
		return zero, fmt.Errorf("chưa đăng ký item với tên: %s", name)
	}
	return item, nil
}

// Has kiểm tra xem tên đã được đăng ký chưa
func (r *Registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[name]
	return exists
}

// Names trả về danh sách tên đã đăng ký
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	return names
}

// Clear xóa một item khỏi registry
func (r *Registry[T]) Clear(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, name)
}

// ClearAll xóa toàn bộ registry
func (r *Registry[T]) ClearAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make(map[string]T)
}
