package persona

import (
	"context"
	"sync"

	"github.com/sima-app/sima-backend/internal/domain"
)

var _ registroRepo = &registroRepoMock{}

type registroRepoMock struct {
	ListByPersonaFunc func(ctx context.Context, personaID int64) ([]domain.Registro, error)

	calls struct {
		ListByPersona []struct {
			PersonaID int64
		}
	}
	lockListByPersona sync.RWMutex
}

func (mock *registroRepoMock) ListByPersona(ctx context.Context, personaID int64) ([]domain.Registro, error) {
	if mock.ListByPersonaFunc == nil {
		panic("registroRepoMock.ListByPersonaFunc: method is nil but registroRepo.ListByPersona was just called")
	}
	callInfo := struct{ PersonaID int64 }{PersonaID: personaID}
	mock.lockListByPersona.Lock()
	mock.calls.ListByPersona = append(mock.calls.ListByPersona, callInfo)
	mock.lockListByPersona.Unlock()
	return mock.ListByPersonaFunc(ctx, personaID)
}

func (mock *registroRepoMock) ListByPersonaCalls() []struct {
	PersonaID int64
} {
	mock.lockListByPersona.RLock()
	calls := mock.calls.ListByPersona
	mock.lockListByPersona.RUnlock()
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
