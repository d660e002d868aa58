package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	storage_go "github.com/supabase-community/storage-go"
)

// SupabaseKV lưu mỗi key thành một object <key>.json trong bucket.
type SupabaseKV struct {
	client *storage_go.Client
	bucket string
}

func NewSupabaseKV(supabaseURL, supabaseKey, bucket string) *SupabaseKV {
	return &SupabaseKV{
		client: storage_go.NewClient(strings.TrimRight(supabaseURL, "/")+"/storage/v1", supabaseKey, nil),
		bucket: bucket,
	}
}

func objectPath(key string) string {
	return "state/" + key + ".json"
}

func (kv *SupabaseKV) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := kv.client.DownloadFile(kv.bucket, objectPath(key))
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("download %s: %w", objectPath(key), err)
	}
	return data, nil
}

func (kv *SupabaseKV) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	contentType := "application/json"
	upsert := true
	options := storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	}
	if _, err := kv.client.UploadFile(kv.bucket, objectPath(key), bytes.NewReader(value), options); err != nil {
		return fmt.Errorf("upload %s: %w", objectPath(key), err)
	}
	return nil
}

func (kv *SupabaseKV) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := kv.client.GetBucket(kv.bucket)
	return err
}

// storage-go không có lỗi kiểu hoá cho 404, chỉ có message từ API.
func isNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not found") || strings.Contains(msg, "404")
}
