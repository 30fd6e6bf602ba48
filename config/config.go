package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng.
// Lưu ý: MONGODB_CONNECTION_URI không bắt buộc — khi thiếu, server vẫn chạy
// ở chế độ suy giảm và các endpoint dữ liệu trả về lỗi store-unavailable.
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Địa chỉ server
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI"`                    // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"gas_cylinder"`  // Tên cơ sở dữ liệu
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials; bắt buộc CORS_ORIGINS cụ thể, không dùng được với *
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"0"`             // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"false"`     // Bật/tắt rate limiting
	// Tài khoản admin mặc định (seed khi collection user rỗng, mật khẩu plaintext - chỉ cho demo)
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@example.com"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin123"`
	AdminName     string `env:"ADMIN_NAME" envDefault:"Administrator"`
	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn đến file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn đến file private key (.key)
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env bằng cách đi lên từ thư mục hiện tại
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env được cung cấp
func NewConfig(files ...string) *Configuration {
	envPath := getEnvPath()
	if len(files) > 0 {
		files = append(files, envPath)
	} else if envPath != "" {
		files = []string{envPath}
	}

	// Load file env nếu tồn tại; thiếu file thì dùng environment variables có sẵn
	for _, f := range files {
		if f == "" {
			continue
		}
		if _, err := os.Stat(f); err == nil {
			if err := godotenv.Load(f); err != nil {
				fmt.Printf("Không thể load file env %s: %v\n", f, err)
			}
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Không thể parse cấu hình từ environment: %v\n", err)
		return nil
	}

	// CORS middleware từ chối wildcard origin kèm credentials ngay khi khởi động,
	// chặn tổ hợp này từ lúc parse cấu hình để báo lỗi rõ ràng hơn
	if cfg.CORS_AllowCredentials && cfg.CORS_Origins == "*" {
		fmt.Println("CORS_ALLOW_CREDENTIALS=true yêu cầu CORS_ORIGINS liệt kê origin cụ thể, không dùng được với *")
		return nil
	}

	return &cfg
}
