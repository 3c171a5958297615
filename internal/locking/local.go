// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package locking

import (
	"context"
	"sync"
)

var _ LockerInterface = (*LocalLocker)(nil)

type entry struct {
	ch   chan struct{}
	refs int
}

// LocalLocker serializes callers of the same key inside one process.
type LocalLocker struct {
	mu    sync.Mutex
	locks map[string]*entry
}

func (l *LocalLocker) acquire(key string) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.locks[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		l.locks[key] = e
	}
	e.refs++

	return e
}

func (l *LocalLocker) release(key string, e *entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(l.locks, key)
	}
}

func (l *LocalLocker) unlocker(key string, e *entry) Unlock {
	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.ch
			l.release(key, e)
		})
	}
}

func (l *LocalLocker) Lock(ctx context.Context, key string) (Unlock, error) {
	e := l.acquire(key)

	select {
	case e.ch <- struct{}{}:
		return l.unlocker(key, e), nil
	case <-ctx.Done():
		l.release(key, e)
		return nil, ctx.Err()
	}
}

func (l *LocalLocker) TryLock(_ context.Context, key string) (Unlock, bool, error) {
	e := l.acquire(key)

	select {
	case e.ch <- struct{}{}:
		return l.unlocker(key, e), true, nil
	default:
		l.release(key, e)
		return nil, false, nil
	}
}

func NewLocalLocker() *LocalLocker {
	l := new(LocalLocker)
	l.locks = make(map[string]*entry)

	return l
}
