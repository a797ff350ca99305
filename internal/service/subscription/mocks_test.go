package subscription

import (
	"context"
	"sync"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ subscriptionRepo = &subscriptionRepoMock{}

type subscriptionRepoMock struct {
	AddFunc         func(ctx context.Context, userID int64, authorID int64) (*domain.Subscription, error)
	RemoveFunc      func(ctx context.Context, userID int64, authorID int64) error
	ExistsFunc      func(ctx context.Context, userID int64, authorID int64) (bool, error)
	ListAuthorsFunc func(ctx context.Context, userID int64, page domain.Page) ([]domain.User, int, error)

	calls struct {
		Add []struct {
			Ctx      context.Context
			UserID   int64
			AuthorID int64
		}
		Remove []struct {
			Ctx      context.Context
			UserID   int64
			AuthorID int64
		}
		Exists []struct {
			Ctx      context.Context
			UserID   int64
			AuthorID int64
		}
		ListAuthors []struct {
			Ctx    context.Context
			UserID int64
			Page   domain.Page
		}
	}
	lockAdd         sync.RWMutex
	lockRemove      sync.RWMutex
	lockExists      sync.RWMutex
	lockListAuthors sync.RWMutex
}

func (mock *subscriptionRepoMock) Add(ctx context.Context, userID int64, authorID int64) (*domain.Subscription, error) {
	if mock.AddFunc == nil {
		panic("subscriptionRepoMock.AddFunc: method is nil but subscriptionRepo.Add was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   int64
		AuthorID int64
	}{
		Ctx:      ctx,
		UserID:   userID,
		AuthorID: authorID,
	}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, userID, authorID)
}

func (mock *subscriptionRepoMock) AddCalls() []struct {
	Ctx      context.Context
	UserID   int64
	AuthorID int64
} {
	var calls []struct {
		Ctx      context.Context
		UserID   int64
		AuthorID int64
	}
	mock.lockAdd.RLock()
	calls = mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *subscriptionRepoMock) Remove(ctx context.Context, userID int64, authorID int64) error {
	if mock.RemoveFunc == nil {
		panic("subscriptionRepoMock.RemoveFunc: method is nil but subscriptionRepo.Remove was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   int64
		AuthorID int64
	}{
		Ctx:      ctx,
		UserID:   userID,
		AuthorID: authorID,
	}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, userID, authorID)
}

func (mock *subscriptionRepoMock) RemoveCalls() []struct {
	Ctx      context.Context
	UserID   int64
	AuthorID int64
} {
	var calls []struct {
		Ctx      context.Context
		UserID   int64
		AuthorID int64
	}
	mock.lockRemove.RLock()
	calls = mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

func (mock *subscriptionRepoMock) Exists(ctx context.Context, userID int64, authorID int64) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("subscriptionRepoMock.ExistsFunc: method is nil but subscriptionRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   int64
		AuthorID int64
	}{
		Ctx:      ctx,
		UserID:   userID,
		AuthorID: authorID,
	}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, userID, authorID)
}

func (mock *subscriptionRepoMock) ExistsCalls() []struct {
	Ctx      context.Context
	UserID   int64
	AuthorID int64
} {
	var calls []struct {
		Ctx      context.Context
		UserID   int64
		AuthorID int64
	}
	mock.lockExists.RLock()
	calls = mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *subscriptionRepoMock) ListAuthors(ctx context.Context, userID int64, page domain.Page) ([]domain.User, int, error) {
	if mock.ListAuthorsFunc == nil {
		panic("subscriptionRepoMock.ListAuthorsFunc: method is nil but subscriptionRepo.ListAuthors was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
		Page   domain.Page
	}{
		Ctx:    ctx,
		UserID: userID,
		Page:   page,
	}
	mock.lockListAuthors.Lock()
	mock.calls.ListAuthors = append(mock.calls.ListAuthors, callInfo)
	mock.lockListAuthors.Unlock()
	return mock.ListAuthorsFunc(ctx, userID, page)
}

func (mock *subscriptionRepoMock) ListAuthorsCalls() []struct {
	Ctx    context.Context
	UserID int64
	Page   domain.Page
} {
	var calls []struct {
		Ctx    context.Context
		UserID int64
		Page   domain.Page
	}
	mock.lockListAuthors.RLock()
	calls = mock.calls.ListAuthors
	mock.lockListAuthors.RUnlock()
	return calls
}

var _ recipeRepo = &recipeRepoMock{}

type recipeRepoMock struct {
	ListByAuthorIDsFunc  func(ctx context.Context, authorIDs []int64, limit int) (map[int64][]domain.Recipe, error)
	CountByAuthorIDsFunc func(ctx context.Context, authorIDs []int64) (map[int64]int, error)

	calls struct {
		ListByAuthorIDs []struct {
			Ctx       context.Context
			AuthorIDs []int64
			Limit     int
		}
		CountByAuthorIDs []struct {
			Ctx       context.Context
			AuthorIDs []int64
		}
	}
	lockListByAuthorIDs  sync.RWMutex
	lockCountByAuthorIDs sync.RWMutex
}

func (mock *recipeRepoMock) ListByAuthorIDs(ctx context.Context, authorIDs []int64, limit int) (map[int64][]domain.Recipe, error) {
	if mock.ListByAuthorIDsFunc == nil {
		panic("recipeRepoMock.ListByAuthorIDsFunc: method is nil but recipeRepo.ListByAuthorIDs was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AuthorIDs []int64
		Limit     int
	}{
		Ctx:       ctx,
		AuthorIDs: authorIDs,
		Limit:     limit,
	}
	mock.lockListByAuthorIDs.Lock()
	mock.calls.ListByAuthorIDs = append(mock.calls.ListByAuthorIDs, callInfo)
	mock.lockListByAuthorIDs.Unlock()
	return mock.ListByAuthorIDsFunc(ctx, authorIDs, limit)
}

func (mock *recipeRepoMock) ListByAuthorIDsCalls() []struct {
	Ctx       context.Context
	AuthorIDs []int64
	Limit     int
} {
	var calls []struct {
		Ctx       context.Context
		AuthorIDs []int64
		Limit     int
	}
	mock.lockListByAuthorIDs.RLock()
	calls = mock.calls.ListByAuthorIDs
	mock.lockListByAuthorIDs.RUnlock()
	return calls
}

func (mock *recipeRepoMock) CountByAuthorIDs(ctx context.Context, authorIDs []int64) (map[int64]int, error) {
	if mock.CountByAuthorIDsFunc == nil {
		panic("recipeRepoMock.CountByAuthorIDsFunc: method is nil but recipeRepo.CountByAuthorIDs was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AuthorIDs []int64
	}{
		Ctx:       ctx,
		AuthorIDs: authorIDs,
	}
	mock.lockCountByAuthorIDs.Lock()
	mock.calls.CountByAuthorIDs = append(mock.calls.CountByAuthorIDs, callInfo)
	mock.lockCountByAuthorIDs.Unlock()
	return mock.CountByAuthorIDsFunc(ctx, authorIDs)
}

func (mock *recipeRepoMock) CountByAuthorIDsCalls() []struct {
	Ctx       context.Context
	AuthorIDs []int64
} {
	var calls []struct {
		Ctx       context.Context
		AuthorIDs []int64
	}
	mock.lockCountByAuthorIDs.RLock()
	calls = mock.calls.CountByAuthorIDs
	mock.lockCountByAuthorIDs.RUnlock()
	return calls
}
