package service

import (
	"sync"

	"github.com/MKhiriev/go-loyalty-keeper/models"
)

type inflightKey struct {
	class models.OperationClass
	key   string
}

// inflightRegistry rejects a second operation with the same class and key
// while the first one runs.
type inflightRegistry struct {
	mu      sync.Mutex
	running map[inflightKey]struct{}
}

func newInflightRegistry() *inflightRegistry {
	return &inflightRegistry{running: make(map[inflightKey]struct{})}
}

// acquire marks (class, key) as running. The returned release must be called
// once the operation ends. ok is false if the pair is already running.
func (r *inflightRegistry) acquire(class models.OperationClass, key string) (release func(), ok bool) {
	k := inflightKey{class: class, key: key}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, busy := r.running[k]; busy {
		return nil, false
	}
	r.running[k] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.running, k)
			r.mu.Unlock()
		})
	}, true
}
