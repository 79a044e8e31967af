package todo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/Joseda-hg/lazypocket/internal/db"
	"github.com/Joseda-hg/lazypocket/internal/model"
)

// StorageKey is the KV entry holding the whole task collection.
const StorageKey = "todoTasks"

var ErrDecode = errors.New("stored tasks have an unexpected shape")

type Storage interface {
	// Read returns (nil, nil) when nothing has been stored yet.
	Read(ctx context.Context) ([]model.Task, error)
	Write(ctx context.Context, tasks []model.Task) error
	// Clear drops the stored entry so the next Read reports nothing stored.
	Clear(ctx context.Context) error
}

type KVStorage struct {
	kv  db.KV
	key string
}

func NewKVStorage(kv db.KV) *KVStorage {
	return &KVStorage{kv: kv, key: StorageKey}
}

func (s *KVStorage) Read(ctx context.Context) ([]model.Task, error) {
	data, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, db.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}
	return DecodeTasks(data)
}

func (s *KVStorage) Write(ctx context.Context, tasks []model.Task) error {
	data, err := EncodeTasks(tasks)
	if err != nil {
		return err
	}
	if err := s.kv.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("write tasks: %w", err)
	}
	return nil
}

func (s *KVStorage) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}
	return nil
}

func EncodeTasks(tasks []model.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []model.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("encode tasks: %w", err)
	}
	return data, nil
}

type storedTask struct {
	ID        json.RawMessage `json:"id"`
	Text      *string         `json:"text"`
	Completed *bool           `json:"completed"`
	CreatedAt *string         `json:"createdAt"`
}

// DecodeTasks parses a stored collection. Anything other than an array of
// objects carrying all four task fields with the right types fails with
// ErrDecode.
func DecodeTasks(data []byte) ([]model.Task, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: not a JSON array", ErrDecode)
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))

	var stored []storedTask
	if err := decoder.Decode(&stored); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if decoder.More() {
		return nil, fmt.Errorf("%w: trailing data", ErrDecode)
	}

	tasks := make([]model.Task, 0, len(stored))
	for i, entry := range stored {
		if len(entry.ID) == 0 || entry.Text == nil || entry.Completed == nil || entry.CreatedAt == nil {
			return nil, fmt.Errorf("%w: entry %d is missing fields", ErrDecode, i)
		}
		id, err := decodeID(entry.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d id %s: %v", ErrDecode, i, entry.ID, err)
		}
		tasks = append(tasks, model.Task{
			ID:        id,
			Text:      *entry.Text,
			Completed: *entry.Completed,
			CreatedAt: *entry.CreatedAt,
		})
	}
	return tasks, nil
}

// decodeID accepts only a bare JSON integer; quoted numbers are rejected.
func decodeID(raw json.RawMessage) (int64, error) {
	value := bytes.TrimSpace(raw)
	if len(value) == 0 || (value[0] != '-' && (value[0] < '0' || value[0] > '9')) {
		return 0, errors.New("not a number")
	}
	id, err := strconv.ParseInt(string(value), 10, 64)
	if err != nil {
		return 0, errors.New("not an integer")
	}
	return id, nil
}
