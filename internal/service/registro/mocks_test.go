package registro

import (
	"context"
	"sync"
)

var _ txRunner = &txRunnerMock{}

// txRunnerMock runs the callback directly; transactional behavior itself is
// covered by the repository integration tests.
type txRunnerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txRunnerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}

func (mock *txRunnerMock) RunInTxCalls() []struct {
	Ctx context.Context
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
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
