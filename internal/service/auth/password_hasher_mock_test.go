package auth

import (
	"sync"
)

var _ passwordHasher = &passwordHasherMock{}

type passwordHasherMock struct {
	HashFunc   func(plain string) (string, error)
	VerifyFunc func(plain, hashed string) bool

	calls struct {
		Hash []struct {
			Plain string
		}
		Verify []struct {
			Plain  string
			Hashed string
		}
	}
	lockHash   sync.RWMutex
	lockVerify sync.RWMutex
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

func (mock *passwordHasherMock) Verify(plain, hashed string) bool {
	if mock.VerifyFunc == nil {
		panic("passwordHasherMock.VerifyFunc: method is nil but passwordHasher.Verify was just called")
	}
	callInfo := struct {
		Plain  string
		Hashed string
	}{Plain: plain, Hashed: hashed}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(plain, hashed)
}

func (mock *passwordHasherMock) VerifyCalls() []struct {
	Plain  string
	Hashed string
} {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
