package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vnkhanh/survey-engine/models"
	"github.com/vnkhanh/survey-engine/storage"
)

// ErrCorruptState: blob đã lưu không đọc được; Store sẽ bắt đầu từ state rỗng.
var ErrCorruptState = errors.New("corrupt state blob")

// Persister nạp và lưu toàn bộ State.
type Persister interface {
	Load(ctx context.Context) (models.State, error)
	Save(ctx context.Context, st models.State) error
}

// BlobPersister mã hoá State thành JSON và ghi dưới một key duy nhất.
type BlobPersister struct {
	KV  storage.KV
	Key string
}

func NewBlobPersister(kv storage.KV, key string) *BlobPersister {
	return &BlobPersister{KV: kv, Key: key}
}

// Load trả về state rỗng khi chưa có blob; blob hỏng trả về ErrCorruptState.
func (p *BlobPersister) Load(ctx context.Context) (models.State, error) {
	data, err := p.KV.Get(ctx, p.Key)
	if errors.Is(err, storage.ErrNotFound) {
		return models.EmptyState(), nil
	}
	if err != nil {
		return models.EmptyState(), err
	}
	return Decode(data)
}

func (p *BlobPersister) Save(ctx context.Context, st models.State) error {
	data, err := Encode(st)
	if err != nil {
		return err
	}
	return p.KV.Put(ctx, p.Key, data)
}

func Encode(st models.State) ([]byte, error) {
	data, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

func Decode(data []byte) (models.State, error) {
	var st models.State
	if err := json.Unmarshal(data, &st); err != nil {
		return models.EmptyState(), fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	if st.Surveys == nil {
		st.Surveys = []models.Survey{}
	}
	if st.Responses == nil {
		st.Responses = map[string][]models.Response{}
	}
	seen := make(map[string]bool, len(st.Surveys))
	for i := range st.Surveys {
		sv := &st.Surveys[i]
		if sv.ID == "" || seen[sv.ID] {
			return models.EmptyState(), fmt.Errorf("%w: duplicate or empty survey id %q", ErrCorruptState, sv.ID)
		}
		seen[sv.ID] = true
		if sv.Questions == nil {
			sv.Questions = []models.Question{}
		}
		for j := range sv.Questions {
			if sv.Questions[j].Options == nil {
				sv.Questions[j].Options = []string{}
			}
		}
	}
	if st.CurrentSurveyID != "" && !seen[st.CurrentSurveyID] {
		st.CurrentSurveyID = ""
	}
	return st, nil
}
