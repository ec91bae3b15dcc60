package registro

import (
	"context"
	"sync"

	"github.com/sima-app/sima-backend/internal/domain"
)

var _ registroRepo = &registroRepoMock{}

type registroRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id int64) (*domain.Registro, error)
	CreateFunc     func(ctx context.Context, row map[string]any, actor *int64) (int64, error)
	UpdateFunc     func(ctx context.Context, id int64, row map[string]any, actor *int64) (bool, error)
	SoftDeleteFunc func(ctx context.Context, id int64, actor *int64) (bool, error)
	SearchPageFunc func(ctx context.Context, f domain.RegistroFilter, opts domain.ListOptions) (*domain.Page[domain.Registro], error)

	calls struct {
		GetByID []struct {
			ID int64
		}
		Create []struct {
			Row   map[string]any
			Actor *int64
		}
		Update []struct {
			ID    int64
			Row   map[string]any
			Actor *int64
		}
		SoftDelete []struct {
			ID    int64
			Actor *int64
		}
		SearchPage []struct {
			Filter domain.RegistroFilter
			Opts   domain.ListOptions
		}
	}
	lockGetByID    sync.RWMutex
	lockCreate     sync.RWMutex
	lockUpdate     sync.RWMutex
	lockSoftDelete sync.RWMutex
	lockSearchPage sync.RWMutex
}

func (mock *registroRepoMock) GetByID(ctx context.Context, id int64) (*domain.Registro, error) {
	if mock.GetByIDFunc == nil {
		panic("registroRepoMock.GetByIDFunc: method is nil but registroRepo.GetByID was just called")
	}
	callInfo := struct{ ID int64 }{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *registroRepoMock) GetByIDCalls() []struct {
	ID int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *registroRepoMock) Create(ctx context.Context, row map[string]any, actor *int64) (int64, error) {
	if mock.CreateFunc == nil {
		panic("registroRepoMock.CreateFunc: method is nil but registroRepo.Create was just called")
	}
	callInfo := struct {
		Row   map[string]any
		Actor *int64
	}{Row: row, Actor: actor}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, row, actor)
}

func (mock *registroRepoMock) CreateCalls() []struct {
	Row   map[string]any
	Actor *int64
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *registroRepoMock) Update(ctx context.Context, id int64, row map[string]any, actor *int64) (bool, error) {
	if mock.UpdateFunc == nil {
		panic("registroRepoMock.UpdateFunc: method is nil but registroRepo.Update was just called")
	}
	callInfo := struct {
		ID    int64
		Row   map[string]any
		Actor *int64
	}{ID: id, Row: row, Actor: actor}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, row, actor)
}

func (mock *registroRepoMock) UpdateCalls() []struct {
	ID    int64
	Row   map[string]any
	Actor *int64
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *registroRepoMock) SoftDelete(ctx context.Context, id int64, actor *int64) (bool, error) {
	if mock.SoftDeleteFunc == nil {
		panic("registroRepoMock.SoftDeleteFunc: method is nil but registroRepo.SoftDelete was just called")
	}
	callInfo := struct {
		ID    int64
		Actor *int64
	}{ID: id, Actor: actor}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, id, actor)
}

func (mock *registroRepoMock) SoftDeleteCalls() []struct {
	ID    int64
	Actor *int64
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

func (mock *registroRepoMock) SearchPage(ctx context.Context, f domain.RegistroFilter, opts domain.ListOptions) (*domain.Page[domain.Registro], error) {
	if mock.SearchPageFunc == nil {
		panic("registroRepoMock.SearchPageFunc: method is nil but registroRepo.SearchPage was just called")
	}
	callInfo := struct {
		Filter domain.RegistroFilter
		Opts   domain.ListOptions
	}{Filter: f, Opts: opts}
	mock.lockSearchPage.Lock()
	mock.calls.SearchPage = append(mock.calls.SearchPage, callInfo)
	mock.lockSearchPage.Unlock()
	return mock.SearchPageFunc(ctx, f, opts)
}

func (mock *registroRepoMock) SearchPageCalls() []struct {
	Filter domain.RegistroFilter
	Opts   domain.ListOptions
} {
	mock.lockSearchPage.RLock()
	calls := mock.calls.SearchPage
	mock.lockSearchPage.RUnlock()
	return calls
}

var _ personaRepo = &personaRepoMock{}

type personaRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id int64) (*domain.Persona, error)
	GetAnyByIDFunc func(ctx context.Context, id int64) (*domain.Persona, error)

	calls struct {
		GetByID []struct {
			ID int64
		}
		GetAnyByID []struct {
			ID int64
		}
	}
	lockGetByID    sync.RWMutex
	lockGetAnyByID sync.RWMutex
}

func (mock *personaRepoMock) GetByID(ctx context.Context, id int64) (*domain.Persona, error) {
	if mock.GetByIDFunc == nil {
		panic("personaRepoMock.GetByIDFunc: method is nil but personaRepo.GetByID was just called")
	}
	callInfo := struct{ ID int64 }{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *personaRepoMock) GetByIDCalls() []struct {
	ID int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *personaRepoMock) GetAnyByID(ctx context.Context, id int64) (*domain.Persona, error) {
	if mock.GetAnyByIDFunc == nil {
		panic("personaRepoMock.GetAnyByIDFunc: method is nil but personaRepo.GetAnyByID was just called")
	}
	callInfo := struct{ ID int64 }{ID: id}
	mock.lockGetAnyByID.Lock()
	mock.calls.GetAnyByID = append(mock.calls.GetAnyByID, callInfo)
	mock.lockGetAnyByID.Unlock()
	return mock.GetAnyByIDFunc(ctx, id)
}

func (mock *personaRepoMock) GetAnyByIDCalls() []struct {
	ID int64
} {
	mock.lockGetAnyByID.RLock()
	calls := mock.calls.GetAnyByID
	mock.lockGetAnyByID.RUnlock()
	return calls
}
