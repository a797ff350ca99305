package favorite

import (
	"context"
	"sync"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

var _ recipeRepo = &recipeRepoMock{}

type recipeRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Recipe, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *recipeRepoMock) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	if mock.GetByIDFunc == nil {
		panic("recipeRepoMock.GetByIDFunc: method is nil but recipeRepo.GetByID was just called")
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

func (mock *recipeRepoMock) GetByIDCalls() []struct {
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

var _ favoriteRepo = &favoriteRepoMock{}

type favoriteRepoMock struct {
	AddFunc    func(ctx context.Context, userID int64, recipeID int64) (*domain.Favorite, error)
	RemoveFunc func(ctx context.Context, userID int64, recipeID int64) error
	ExistsFunc func(ctx context.Context, userID int64, recipeID int64) (bool, error)

	calls struct {
		Add []struct {
			Ctx      context.Context
			UserID   int64
			RecipeID int64
		}
		Remove []struct {
			Ctx      context.Context
			UserID   int64
			RecipeID int64
		}
		Exists []struct {
			Ctx      context.Context
			UserID   int64
			RecipeID int64
		}
	}
	lockAdd    sync.RWMutex
	lockRemove sync.RWMutex
	lockExists sync.RWMutex
}

func (mock *favoriteRepoMock) Add(ctx context.Context, userID int64, recipeID int64) (*domain.Favorite, error) {
	if mock.AddFunc == nil {
		panic("favoriteRepoMock.AddFunc: method is nil but favoriteRepo.Add was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   int64
		RecipeID int64
	}{
		Ctx:      ctx,
		UserID:   userID,
		RecipeID: recipeID,
	}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, userID, recipeID)
}

func (mock *favoriteRepoMock) AddCalls() []struct {
	Ctx      context.Context
	UserID   int64
	RecipeID int64
} {
	var calls []struct {
		Ctx      context.Context
		UserID   int64
		RecipeID int64
	}
	mock.lockAdd.RLock()
	calls = mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *favoriteRepoMock) Remove(ctx context.Context, userID int64, recipeID int64) error {
	if mock.RemoveFunc == nil {
		panic("favoriteRepoMock.RemoveFunc: method is nil but favoriteRepo.Remove was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   int64
		RecipeID int64
	}{
		Ctx:      ctx,
		UserID:   userID,
		RecipeID: recipeID,
	}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, userID, recipeID)
}

func (mock *favoriteRepoMock) RemoveCalls() []struct {
	Ctx      context.Context
	UserID   int64
	RecipeID int64
} {
	var calls []struct {
		Ctx      context.Context
		UserID   int64
		RecipeID int64
	}
	mock.lockRemove.RLock()
	calls = mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

func (mock *favoriteRepoMock) Exists(ctx context.Context, userID int64, recipeID int64) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("favoriteRepoMock.ExistsFunc: method is nil but favoriteRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   int64
		RecipeID int64
	}{
		Ctx:      ctx,
		UserID:   userID,
		RecipeID: recipeID,
	}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, userID, recipeID)
}

func (mock *favoriteRepoMock) ExistsCalls() []struct {
	Ctx      context.Context
	UserID   int64
	RecipeID int64
} {
	var calls []struct {
		Ctx      context.Context
		UserID   int64
		RecipeID int64
	}
	mock.lockExists.RLock()
	calls = mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}
