// Package memory provides the in-process implementation of the repository
// and unit-of-work ports.
//
// Repositories hold the stored instances themselves: Get returns the pointer
// that was added, so mutating it mutates the stored entity. GetAll returns a
// fresh slice in insertion order. Nothing here is safe for concurrent use;
// callers serialize access.
package memory

import (
	"orgchart/internal/pkg/errs"
)

// Repository is a generic keyed store that keeps insertion order.
type Repository[K comparable, V any] struct {
	entity   string
	key      func(V) K
	validate func(V) error
	items    map[K]V
	order    []K
}

// NewRepository creates an empty repository.
//
// Parameters:
//   - entity: name used in not-found and already-exists errors
//   - key: extracts the key from a value
//   - validate: optional check run before Add and Update
func NewRepository[K comparable, V any](entity string, key func(V) K, validate func(V) error) *Repository[K, V] {
	return &Repository[K, V]{
		entity:   entity,
		key:      key,
		validate: validate,
		items:    make(map[K]V),
	}
}

func (r *Repository[K, V]) check(v V) error {
	if r.validate == nil {
		return nil
	}
	return r.validate(v)
}

// Add stores v. Returns ObjectAlreadyExistsError if the key is taken.
func (r *Repository[K, V]) Add(v V) error {
	if err := r.check(v); err != nil {
		return err
	}
	k := r.key(v)
	if _, ok := r.items[k]; ok {
		return errs.NewObjectAlreadyExistsError(r.entity, k)
	}
	r.items[k] = v
	r.order = append(r.order, k)
	return nil
}

// Get returns the value stored under k.
func (r *Repository[K, V]) Get(k K) (V, bool) {
	v, ok := r.items[k]
	return v, ok
}

// GetAll returns every value in insertion order.
func (r *Repository[K, V]) GetAll() []V {
	out := make([]V, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.items[k])
	}
	return out
}

// Update replaces the value stored under v's key, keeping its position.
// Returns ObjectNotFoundError if the key is absent.
func (r *Repository[K, V]) Update(v V) error {
	if err := r.check(v); err != nil {
		return err
	}
	k := r.key(v)
	if _, ok := r.items[k]; !ok {
		return errs.NewObjectNotFoundError(r.entity, k)
	}
	r.items[k] = v
	return nil
}

// Delete removes the value stored under k.
// Returns ObjectNotFoundError if the key is absent.
func (r *Repository[K, V]) Delete(k K) error {
	if _, ok := r.items[k]; !ok {
		return errs.NewObjectNotFoundError(r.entity, k)
	}
	delete(r.items, k)
	for i, key := range r.order {
		if key == k {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of stored values.
func (r *Repository[K, V]) Len() int {
	return len(r.items)
}
