package database

import (
	"context"
	"reflect"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gas_manager/internal/global"
	"gas_manager/internal/logger"
)

// EnsureDatabaseAndCollections tạo các collection còn thiếu trong database.
// Tên collection lấy từ các field của global.MongoDB_ColNames bằng reflection.
func EnsureDatabaseAndCollections(client *mongo.Client) {
	log := logger.GetAppLogger()
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := client.Database(dbName)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		log.WithError(err).Error("Không thể liệt kê collections")
		return
	}
	existingSet := make(map[string]bool, len(existing))
	for _, name := range existing {
		existingSet[name] = true
	}

	v := reflect.ValueOf(global.MongoDB_ColNames)
	for i := 0; i < v.NumField(); i++ {
		name, ok := v.Field(i).Interface().(string)
		if !ok || name == "" || existingSet[name] {
			continue
		}
		if err := db.CreateCollection(ctx, name); err != nil {
			log.WithError(err).Errorf("Không thể tạo collection %s", name)
			continue
		}
		log.Infof("Đã tạo collection %s", name)
	}
}

// CreateIndexes tạo các index cho collection dựa trên struct tag `index` của model.
// Tag hỗ trợ các giá trị phân cách bằng dấu phẩy: "unique", "sparse", "text".
// Key của index lấy từ tag bson của field.
//
// Ví dụ:
//
//	Barcode string `bson:"barcode" index:"unique"`
//	Email   string `bson:"email" index:"unique,sparse"`
func CreateIndexes(ctx context.Context, collection *mongo.Collection, model interface{}) {
	log := logger.GetAppLogger()

	rt := reflect.TypeOf(model)
	if rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return
	}

	var models []mongo.IndexModel
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		indexTag := f.Tag.Get("index")
		if indexTag == "" {
			continue
		}
		bsonTag := f.Tag.Get("bson")
		if bsonTag == "" || bsonTag == "-" {
			continue
		}
		bsonKey := strings.TrimSpace(strings.Split(bsonTag, ",")[0])
		if bsonKey == "" {
			continue
		}

		opts := options.Index()
		keyValue := interface{}(1)
		for _, part := range strings.Split(indexTag, ",") {
			switch strings.TrimSpace(part) {
			case "unique":
				opts.SetUnique(true)
			case "sparse":
				opts.SetSparse(true)
			case "text":
				keyValue = "text"
			}
		}

		models = append(models, mongo.IndexModel{
			Keys:    bson.D{{Key: bsonKey, Value: keyValue}},
			Options: opts,
		})
	}

	if len(models) == 0 {
		return
	}

	names, err := collection.Indexes().CreateMany(ctx, models)
	if err != nil {
		log.WithError(err).Errorf("Không thể tạo index cho collection %s", collection.Name())
		return
	}
	log.WithFields(map[string]interface{}{
		"collection": collection.Name(),
		"indexes":    names,
	}).Info("Đã tạo index cho collection")
}
