package user

import (
	"context"
	"sync"

	"github.com/sima-app/sima-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc               func(ctx context.Context, id int64) (*domain.User, error)
	GetByUsuarioFunc          func(ctx context.Context, usuario string) (*domain.User, error)
	CreateFunc                func(ctx context.Context, row map[string]any, actor *int64) (int64, error)
	UpdateFunc                func(ctx context.Context, id int64, row map[string]any, actor *int64) (bool, error)
	ListFunc                  func(ctx context.Context, opts domain.ListOptions) (*domain.Page[domain.User], error)
	IncrementTokenVersionFunc func(ctx context.Context, id int64) (bool, error)
	HardDeleteFunc            func(ctx context.Context, id int64) (bool, error)

	calls struct {
		GetByID []struct {
			ID int64
		}
		GetByUsuario []struct {
			Usuario string
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
		List []struct {
			Opts domain.ListOptions
		}
		IncrementTokenVersion []struct {
			ID int64
		}
		HardDelete []struct {
			ID int64
		}
	}
	lockGetByID               sync.RWMutex
	lockGetByUsuario          sync.RWMutex
	lockCreate                sync.RWMutex
	lockUpdate                sync.RWMutex
	lockList                  sync.RWMutex
	lockIncrementTokenVersion sync.RWMutex
	lockHardDelete            sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct{ ID int64 }{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	ID int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByUsuario(ctx context.Context, usuario string) (*domain.User, error) {
	if mock.GetByUsuarioFunc == nil {
		panic("userRepoMock.GetByUsuarioFunc: method is nil but userRepo.GetByUsuario was just called")
	}
	callInfo := struct{ Usuario string }{Usuario: usuario}
	mock.lockGetByUsuario.Lock()
	mock.calls.GetByUsuario = append(mock.calls.GetByUsuario, callInfo)
	mock.lockGetByUsuario.Unlock()
	return mock.GetByUsuarioFunc(ctx, usuario)
}

func (mock *userRepoMock) GetByUsuarioCalls() []struct {
	Usuario string
} {
	mock.lockGetByUsuario.RLock()
	calls := mock.calls.GetByUsuario
	mock.lockGetByUsuario.RUnlock()
	return calls
}

func (mock *userRepoMock) Create(ctx context.Context, row map[string]any, actor *int64) (int64, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
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

func (mock *userRepoMock) CreateCalls() []struct {
	Row   map[string]any
	Actor *int64
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) Update(ctx context.Context, id int64, row map[string]any, actor *int64) (bool, error) {
	if mock.UpdateFunc == nil {
		panic("userRepoMock.UpdateFunc: method is nil but userRepo.Update was just called")
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

func (mock *userRepoMock) UpdateCalls() []struct {
	ID    int64
	Row   map[string]any
	Actor *int64
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *userRepoMock) List(ctx context.Context, opts domain.ListOptions) (*domain.Page[domain.User], error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	callInfo := struct{ Opts domain.ListOptions }{Opts: opts}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, opts)
}

func (mock *userRepoMock) ListCalls() []struct {
	Opts domain.ListOptions
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *userRepoMock) IncrementTokenVersion(ctx context.Context, id int64) (bool, error) {
	if mock.IncrementTokenVersionFunc == nil {
		panic("userRepoMock.IncrementTokenVersionFunc: method is nil but userRepo.IncrementTokenVersion was just called")
	}
	callInfo := struct{ ID int64 }{ID: id}
	mock.lockIncrementTokenVersion.Lock()
	mock.calls.IncrementTokenVersion = append(mock.calls.IncrementTokenVersion, callInfo)
	mock.lockIncrementTokenVersion.Unlock()
	return mock.IncrementTokenVersionFunc(ctx, id)
}

func (mock *userRepoMock) IncrementTokenVersionCalls() []struct {
	ID int64
} {
	mock.lockIncrementTokenVersion.RLock()
	calls := mock.calls.IncrementTokenVersion
	mock.lockIncrementTokenVersion.RUnlock()
	return calls
}

func (mock *userRepoMock) HardDelete(ctx context.Context, id int64) (bool, error) {
	if mock.HardDeleteFunc == nil {
		panic("userRepoMock.HardDeleteFunc: method is nil but userRepo.HardDelete was just called")
	}
	callInfo := struct{ ID int64 }{ID: id}
	mock.lockHardDelete.Lock()
	mock.calls.HardDelete = append(mock.calls.HardDelete, callInfo)
	mock.lockHardDelete.Unlock()
	return mock.HardDeleteFunc(ctx, id)
}

func (mock *userRepoMock) HardDeleteCalls() []struct {
	ID int64
} {
	mock.lockHardDelete.RLock()
	calls := mock.calls.HardDelete
	mock.lockHardDelete.RUnlock()
	return calls
}
