package view

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrNotMounted is returned when a persistent store is used before the
// component's wrapper node has been materialized.
var ErrNotMounted = errors.New("view: component is not mounted")

// UseStore returns the current value of the named local state cell and a
// setter for it. The first call for a given name initializes the cell to
// def; later calls return the stored value.
//
// The setter writes the new value synchronously and schedules one full
// update cascade to run after the current synchronous unit of work. Calling
// the setter N times before the scheduler drains schedules N independent
// cascades.
func UseStore[T any](b *Base, name string, def T) (T, func(T)) {
	current := def
	if v, ok := b.stores[name]; ok {
		if tv, ok := v.(T); ok {
			current = tv
		}
	} else {
		b.stores[name] = def
	}

	setter := func(v T) {
		b.stores[name] = v
		if b.emitter != nil {
			b.emitter.Emit(StoreChangedEvent(b.FullPath(), name))
		}
		b.scheduleUpdate()
	}
	return current, setter
}

// UsePersistentStore is UseStore backed by durable storage. The cell is
// keyed by the instance's full ancestry path plus the store name, so the
// value survives instance recreation across reloads.
//
// If the durable store has no entry for the key it is initialized to the
// serialized default; a later instantiation at the same path with a
// different default still reads back the stored value. The setter writes
// through to durable storage and schedules an update cascade like UseStore.
func UsePersistentStore[T any](b *Base, name string, def T) (T, func(T) error, error) {
	if b.storage == nil {
		return def, nil, ErrNotMounted
	}
	key := b.FullPath() + PathSeparator + name

	current := def
	if raw, ok := b.storage.Get(key); ok {
		if err := decodeValue(raw, &current); err != nil {
			return def, nil, fmt.Errorf("persistent store %q: %w", key, err)
		}
	} else {
		raw, err := encodeValue(def)
		if err != nil {
			return def, nil, fmt.Errorf("persistent store %q: %w", key, err)
		}
		b.storage.Set(key, raw)
	}

	setter := func(v T) error {
		raw, err := encodeValue(v)
		if err != nil {
			return fmt.Errorf("persistent store %q: %w", key, err)
		}
		b.storage.Set(key, raw)
		if b.emitter != nil {
			b.emitter.Emit(StoreChangedEvent(b.FullPath(), name))
		}
		b.scheduleUpdate()
		return nil
	}
	return current, setter, nil
}

// encodeValue serializes a store value to the string form durable storage
// holds: msgpack wrapped in base64.
func encodeValue(v any) (string, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// decodeValue deserializes a durable storage string written by encodeValue.
func decodeValue(raw string, out any) error {
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return err
	}
	return msgpack.Unmarshal(data, out)
}
