package auth

import (
	"sync"

	authpkg "github.com/sima-app/sima-backend/internal/auth"
	"github.com/sima-app/sima-backend/internal/domain"
)

var _ tokenManager = &tokenManagerMock{}

type tokenManagerMock struct {
	SignPairFunc      func(id domain.Identity) (authpkg.TokenPair, error)
	VerifyRefreshFunc func(token string) (*authpkg.Claims, error)

	calls struct {
		SignPair []struct {
			ID domain.Identity
		}
		VerifyRefresh []struct {
			Token string
		}
	}
	lockSignPair      sync.RWMutex
	lockVerifyRefresh sync.RWMutex
}

func (mock *tokenManagerMock) SignPair(id domain.Identity) (authpkg.TokenPair, error) {
	if mock.SignPairFunc == nil {
		panic("tokenManagerMock.SignPairFunc: method is nil but tokenManager.SignPair was just called")
	}
	callInfo := struct{ ID domain.Identity }{ID: id}
	mock.lockSignPair.Lock()
	mock.calls.SignPair = append(mock.calls.SignPair, callInfo)
	mock.lockSignPair.Unlock()
	return mock.SignPairFunc(id)
}

func (mock *tokenManagerMock) SignPairCalls() []struct {
	ID domain.Identity
} {
	mock.lockSignPair.RLock()
	calls := mock.calls.SignPair
	mock.lockSignPair.RUnlock()
	return calls
}

func (mock *tokenManagerMock) VerifyRefresh(token string) (*authpkg.Claims, error) {
	if mock.VerifyRefreshFunc == nil {
		panic("tokenManagerMock.VerifyRefreshFunc: method is nil but tokenManager.VerifyRefresh was just called")
	}
	callInfo := struct{ Token string }{Token: token}
	mock.lockVerifyRefresh.Lock()
	mock.calls.VerifyRefresh = append(mock.calls.VerifyRefresh, callInfo)
	mock.lockVerifyRefresh.Unlock()
	return mock.VerifyRefreshFunc(token)
}

func (mock *tokenManagerMock) VerifyRefreshCalls() []struct {
	Token string
} {
	mock.lockVerifyRefresh.RLock()
	calls := mock.calls.VerifyRefresh
	mock.lockVerifyRefresh.RUnlock()
	return calls
}
