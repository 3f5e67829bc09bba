package mock

import (
	"fmt"
	"sync"

	"github.com/voyagecli/voyage"
)

// Interface compliance checks.
var (
	_ voyage.IDGenerator = (*IDGenerator)(nil)
	_ voyage.KV          = (*KV)(nil)
)

// IDGenerator is a deterministic test double for voyage.IDGenerator.
// It returns "id-1", "id-2", ... unless NewIDFn is set.
type IDGenerator struct {
	NewIDFn func() string

	mu sync.Mutex
	n  int
}

// NewID delegates to NewIDFn when set, otherwise returns sequential ids.
func (g *IDGenerator) NewID() string {
	if g.NewIDFn != nil {
		return g.NewIDFn()
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// KV is an in-memory test double for voyage.KV. It behaves as a real
// store unless the function fields are set, and optionally fails every
// operation with Err.
type KV struct {
	GetFn    func(key string) (string, bool, error)
	SetFn    func(key, value string) error
	DeleteFn func(key string) error

	// Err, when set, is returned by every default operation. Simulates
	// an unavailable backing store.
	Err error

	mu     sync.Mutex
	values map[string]string
}

// Get delegates to GetFn when set, otherwise reads the in-memory map.
func (kv *KV) Get(key string) (string, bool, error) {
	if kv.GetFn != nil {
		return kv.GetFn(key)
	}
	if kv.Err != nil {
		return "", false, kv.Err
	}
	kv.mu.Lock()
	defer kv.mu.Unlock()
	v, ok := kv.values[key]
	return v, ok, nil
}

// Set delegates to SetFn when set, otherwise writes the in-memory map.
func (kv *KV) Set(key, value string) error {
	if kv.SetFn != nil {
		return kv.SetFn(key, value)
	}
	if kv.Err != nil {
		return kv.Err
	}
	kv.mu.Lock()
	defer kv.mu.Unlock()
	if kv.values == nil {
		kv.values = make(map[string]string)
	}
	kv.values[key] = value
	return nil
}

// Delete delegates to DeleteFn when set, otherwise removes from the
// in-memory map.
func (kv *KV) Delete(key string) error {
	if kv.DeleteFn != nil {
		return kv.DeleteFn(key)
	}
	if kv.Err != nil {
		return kv.Err
	}
	kv.mu.Lock()
	defer kv.mu.Unlock()
	delete(kv.values, key)
	return nil
}
