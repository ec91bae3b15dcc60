package user

import (
	"context"
	"sync"
)

var _ passwordHasher = &passwordHasherMock{}

type passwordHasherMock struct {
	HashFunc func(plain string) (string, error)

	calls struct {
		Hash []struct {
			Plain string
		}
	}
	lockHash sync.RWMutex
}

func (mock *passwordHasherMock) Hash(plain string) (string, error) {
	if mock.HashFunc == nil {
		panic("passwordHasherMock.HashFunc: method is nil but passwordHasher.Hash was just called")
	}
	callInfo := struct{ Plain string }{Plain: plain}
	mock.lockHash.Lock()
	mock.calls.Hash = append(mock.calls.Hash, callInfo)
	mock.lockHash.Unlock()
	return mock.HashFunc(plain)
}

func (mock *passwordHasherMock) HashCalls() []struct {
	Plain string
} {
	mock.lockHash.RLock()
	calls := mock.calls.Hash
	mock.lockHash.RUnlock()
	return calls
}

var _ auditLogger = &auditLoggerMock{}

type auditLoggerMock struct {
	LogFunc func(ctx context.Context, action, entity string, entityID int64, payload map[string]any)

	calls struct {
		Log []struct {
			Action   string
			Entity   string
			EntityID int64
			Payload  map[string]any
		}
	}
	lockLog sync.RWMutex
}

func (mock *auditLoggerMock) Log(ctx context.Context, action, entity string, entityID int64, payload map[string]any) {
	callInfo := struct {
		Action   string
		Entity   string
		EntityID int64
		Payload  map[string]any
	}{Action: action, Entity: entity, EntityID: entityID, Payload: payload}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	if mock.LogFunc != nil {
		mock.LogFunc(ctx, action, entity, entityID, payload)
	}
}

func (mock *auditLoggerMock) LogCalls() []struct {
	Action   string
	Entity   string
	EntityID int64
	Payload  map[string]any
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}
