package auth

import (
	"context"
	"sync"

	"github.com/sima-app/sima-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc            func(ctx context.Context, id int64) (*domain.User, error)
	GetActiveByUsuarioFunc func(ctx context.Context, usuario string) (*domain.User, error)
	UpdatePasswordFunc     func(ctx context.Context, id int64, passwordHash string, actor *int64) (bool, error)

	calls struct {
		GetByID []struct {
			ID int64
		}
		GetActiveByUsuario []struct {
			Usuario string
		}
		UpdatePassword []struct {
			ID           int64
			PasswordHash string
			Actor        *int64
		}
	}
	lockGetByID            sync.RWMutex
	lockGetActiveByUsuario sync.RWMutex
	lockUpdatePassword     sync.RWMutex
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

func (mock *userRepoMock) GetActiveByUsuario(ctx context.Context, usuario string) (*domain.User, error) {
	if mock.GetActiveByUsuarioFunc == nil {
		panic("userRepoMock.GetActiveByUsuarioFunc: method is nil but userRepo.GetActiveByUsuario was just called")
	}
	callInfo := struct{ Usuario string }{Usuario: usuario}
	mock.lockGetActiveByUsuario.Lock()
	mock.calls.GetActiveByUsuario = append(mock.calls.GetActiveByUsuario, callInfo)
	mock.lockGetActiveByUsuario.Unlock()
	return mock.GetActiveByUsuarioFunc(ctx, usuario)
}

func (mock *userRepoMock) GetActiveByUsuarioCalls() []struct {
	Usuario string
} {
	mock.lockGetActiveByUsuario.RLock()
	calls := mock.calls.GetActiveByUsuario
	mock.lockGetActiveByUsuario.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdatePassword(ctx context.Context, id int64, passwordHash string, actor *int64) (bool, error) {
	if mock.UpdatePasswordFunc == nil {
		panic("userRepoMock.UpdatePasswordFunc: method is nil but userRepo.UpdatePassword was just called")
	}
	callInfo := struct {
		ID           int64
		PasswordHash string
		Actor        *int64
	}{ID: id, PasswordHash: passwordHash, Actor: actor}
	mock.lockUpdatePassword.Lock()
	mock.calls.UpdatePassword = append(mock.calls.UpdatePassword, callInfo)
	mock.lockUpdatePassword.Unlock()
	return mock.UpdatePasswordFunc(ctx, id, passwordHash, actor)
}

func (mock *userRepoMock) UpdatePasswordCalls() []struct {
	ID           int64
	PasswordHash string
	Actor        *int64
} {
	mock.lockUpdatePassword.RLock()
	calls := mock.calls.UpdatePassword
	mock.lockUpdatePassword.RUnlock()
	return calls
}
