package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/internal/service/auth"
	"github.com/heartmarshall/foodgram-backend/internal/service/cart"
	"github.com/heartmarshall/foodgram-backend/internal/service/recipe"
	"github.com/heartmarshall/foodgram-backend/internal/service/user"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	LoginFunc  func(ctx context.Context, input auth.LoginInput) (string, error)
	LogoutFunc func(ctx context.Context, token string) error

	calls struct {
		Login []struct {
			Ctx   context.Context
			Input auth.LoginInput
		}
		Logout []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockLogin  sync.RWMutex
	lockLogout sync.RWMutex
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (string, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input auth.LoginInput
} {
	var calls []struct {
		Ctx   context.Context
		Input auth.LoginInput
	}
	mock.lockLogin.RLock()
	calls = mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *authServiceMock) Logout(ctx context.Context, token string) error {
	if mock.LogoutFunc == nil {
		panic("authServiceMock.LogoutFunc: method is nil but authService.Logout was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{
		Ctx:   ctx,
		Token: token,
	}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx, token)
}

func (mock *authServiceMock) LogoutCalls() []struct {
	Ctx   context.Context
	Token string
} {
	var calls []struct {
		Ctx   context.Context
		Token string
	}
	mock.lockLogout.RLock()
	calls = mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}

var _ registrar = &registrarMock{}

type registrarMock struct {
	RegisterFunc func(ctx context.Context, input auth.RegisterInput) (*domain.User, error)

	calls struct {
		Register []struct {
			Ctx   context.Context
			Input auth.RegisterInput
		}
	}
	lockRegister sync.RWMutex
}

func (mock *registrarMock) Register(ctx context.Context, input auth.RegisterInput) (*domain.User, error) {
	if mock.RegisterFunc == nil {
		panic("registrarMock.RegisterFunc: method is nil but registrar.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *registrarMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input auth.RegisterInput
} {
	var calls []struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}
	mock.lockRegister.RLock()
	calls = mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

var _ userService = &userServiceMock{}

type userServiceMock struct {
	GetMeFunc       func(ctx context.Context) (*domain.User, error)
	UpdateMeFunc    func(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	SetPasswordFunc func(ctx context.Context, input user.SetPasswordInput) error
	GetByIDFunc     func(ctx context.Context, id int64) (*domain.User, error)
	ListFunc        func(ctx context.Context, page domain.Page) ([]domain.User, int, error)

	calls struct {
		GetMe []struct {
			Ctx context.Context
		}
		UpdateMe []struct {
			Ctx   context.Context
			Input user.UpdateProfileInput
		}
		SetPassword []struct {
			Ctx   context.Context
			Input user.SetPasswordInput
		}
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		List []struct {
			Ctx  context.Context
			Page domain.Page
		}
	}
	lockGetMe       sync.RWMutex
	lockUpdateMe    sync.RWMutex
	lockSetPassword sync.RWMutex
	lockGetByID     sync.RWMutex
	lockList        sync.RWMutex
}

func (mock *userServiceMock) GetMe(ctx context.Context) (*domain.User, error) {
	if mock.GetMeFunc == nil {
		panic("userServiceMock.GetMeFunc: method is nil but userService.GetMe was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetMe.Lock()
	mock.calls.GetMe = append(mock.calls.GetMe, callInfo)
	mock.lockGetMe.Unlock()
	return mock.GetMeFunc(ctx)
}

func (mock *userServiceMock) GetMeCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetMe.RLock()
	calls = mock.calls.GetMe
	mock.lockGetMe.RUnlock()
	return calls
}

func (mock *userServiceMock) UpdateMe(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error) {
	if mock.UpdateMeFunc == nil {
		panic("userServiceMock.UpdateMeFunc: method is nil but userService.UpdateMe was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.UpdateProfileInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateMe.Lock()
	mock.calls.UpdateMe = append(mock.calls.UpdateMe, callInfo)
	mock.lockUpdateMe.Unlock()
	return mock.UpdateMeFunc(ctx, input)
}

func (mock *userServiceMock) UpdateMeCalls() []struct {
	Ctx   context.Context
	Input user.UpdateProfileInput
} {
	var calls []struct {
		Ctx   context.Context
		Input user.UpdateProfileInput
	}
	mock.lockUpdateMe.RLock()
	calls = mock.calls.UpdateMe
	mock.lockUpdateMe.RUnlock()
	return calls
}

func (mock *userServiceMock) SetPassword(ctx context.Context, input user.SetPasswordInput) error {
	if mock.SetPasswordFunc == nil {
		panic("userServiceMock.SetPasswordFunc: method is nil but userService.SetPassword was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.SetPasswordInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSetPassword.Lock()
	mock.calls.SetPassword = append(mock.calls.SetPassword, callInfo)
	mock.lockSetPassword.Unlock()
	return mock.SetPasswordFunc(ctx, input)
}

func (mock *userServiceMock) SetPasswordCalls() []struct {
	Ctx   context.Context
	Input user.SetPasswordInput
} {
	var calls []struct {
		Ctx   context.Context
		Input user.SetPasswordInput
	}
	mock.lockSetPassword.RLock()
	calls = mock.calls.SetPassword
	mock.lockSetPassword.RUnlock()
	return calls
}

func (mock *userServiceMock) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userServiceMock.GetByIDFunc: method is nil but userService.GetByID was just called")
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

func (mock *userServiceMock) GetByIDCalls() []struct {
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

func (mock *userServiceMock) List(ctx context.Context, page domain.Page) ([]domain.User, int, error) {
	if mock.ListFunc == nil {
		panic("userServiceMock.ListFunc: method is nil but userService.List was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Page domain.Page
	}{
		Ctx:  ctx,
		Page: page,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, page)
}

func (mock *userServiceMock) ListCalls() []struct {
	Ctx  context.Context
	Page domain.Page
} {
	var calls []struct {
		Ctx  context.Context
		Page domain.Page
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ subscriptionService = &subscriptionServiceMock{}

type subscriptionServiceMock struct {
	SubscribeFunc   func(ctx context.Context, authorID int64, recipesLimit int) (*domain.Author, error)
	UnsubscribeFunc func(ctx context.Context, authorID int64) error
	ListFunc        func(ctx context.Context, page domain.Page, recipesLimit int) ([]domain.Author, int, error)

	calls struct {
		Subscribe []struct {
			Ctx          context.Context
			AuthorID     int64
			RecipesLimit int
		}
		Unsubscribe []struct {
			Ctx      context.Context
			AuthorID int64
		}
		List []struct {
			Ctx          context.Context
			Page         domain.Page
			RecipesLimit int
		}
	}
	lockSubscribe   sync.RWMutex
	lockUnsubscribe sync.RWMutex
	lockList        sync.RWMutex
}

func (mock *subscriptionServiceMock) Subscribe(ctx context.Context, authorID int64, recipesLimit int) (*domain.Author, error) {
	if mock.SubscribeFunc == nil {
		panic("subscriptionServiceMock.SubscribeFunc: method is nil but subscriptionService.Subscribe was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		AuthorID     int64
		RecipesLimit int
	}{
		Ctx:          ctx,
		AuthorID:     authorID,
		RecipesLimit: recipesLimit,
	}
	mock.lockSubscribe.Lock()
	mock.calls.Subscribe = append(mock.calls.Subscribe, callInfo)
	mock.lockSubscribe.Unlock()
	return mock.SubscribeFunc(ctx, authorID, recipesLimit)
}

func (mock *subscriptionServiceMock) SubscribeCalls() []struct {
	Ctx          context.Context
	AuthorID     int64
	RecipesLimit int
} {
	var calls []struct {
		Ctx          context.Context
		AuthorID     int64
		RecipesLimit int
	}
	mock.lockSubscribe.RLock()
	calls = mock.calls.Subscribe
	mock.lockSubscribe.RUnlock()
	return calls
}

func (mock *subscriptionServiceMock) Unsubscribe(ctx context.Context, authorID int64) error {
	if mock.UnsubscribeFunc == nil {
		panic("subscriptionServiceMock.UnsubscribeFunc: method is nil but subscriptionService.Unsubscribe was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AuthorID int64
	}{
		Ctx:      ctx,
		AuthorID: authorID,
	}
	mock.lockUnsubscribe.Lock()
	mock.calls.Unsubscribe = append(mock.calls.Unsubscribe, callInfo)
	mock.lockUnsubscribe.Unlock()
	return mock.UnsubscribeFunc(ctx, authorID)
}

func (mock *subscriptionServiceMock) UnsubscribeCalls() []struct {
	Ctx      context.Context
	AuthorID int64
} {
	var calls []struct {
		Ctx      context.Context
		AuthorID int64
	}
	mock.lockUnsubscribe.RLock()
	calls = mock.calls.Unsubscribe
	mock.lockUnsubscribe.RUnlock()
	return calls
}

func (mock *subscriptionServiceMock) List(ctx context.Context, page domain.Page, recipesLimit int) ([]domain.Author, int, error) {
	if mock.ListFunc == nil {
		panic("subscriptionServiceMock.ListFunc: method is nil but subscriptionService.List was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		Page         domain.Page
		RecipesLimit int
	}{
		Ctx:          ctx,
		Page:         page,
		RecipesLimit: recipesLimit,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, page, recipesLimit)
}

func (mock *subscriptionServiceMock) ListCalls() []struct {
	Ctx          context.Context
	Page         domain.Page
	RecipesLimit int
} {
	var calls []struct {
		Ctx          context.Context
		Page         domain.Page
		RecipesLimit int
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ catalogService = &catalogServiceMock{}

type catalogServiceMock struct {
	ListTagsFunc          func(ctx context.Context) ([]domain.Tag, error)
	GetTagFunc            func(ctx context.Context, id int64) (*domain.Tag, error)
	SearchIngredientsFunc func(ctx context.Context, prefix string) ([]domain.Ingredient, error)
	GetIngredientFunc     func(ctx context.Context, id int64) (*domain.Ingredient, error)

	calls struct {
		ListTags []struct {
			Ctx context.Context
		}
		GetTag []struct {
			Ctx context.Context
			Id  int64
		}
		SearchIngredients []struct {
			Ctx    context.Context
			Prefix string
		}
		GetIngredient []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockListTags          sync.RWMutex
	lockGetTag            sync.RWMutex
	lockSearchIngredients sync.RWMutex
	lockGetIngredient     sync.RWMutex
}

func (mock *catalogServiceMock) ListTags(ctx context.Context) ([]domain.Tag, error) {
	if mock.ListTagsFunc == nil {
		panic("catalogServiceMock.ListTagsFunc: method is nil but catalogService.ListTags was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListTags.Lock()
	mock.calls.ListTags = append(mock.calls.ListTags, callInfo)
	mock.lockListTags.Unlock()
	return mock.ListTagsFunc(ctx)
}

func (mock *catalogServiceMock) ListTagsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListTags.RLock()
	calls = mock.calls.ListTags
	mock.lockListTags.RUnlock()
	return calls
}

func (mock *catalogServiceMock) GetTag(ctx context.Context, id int64) (*domain.Tag, error) {
	if mock.GetTagFunc == nil {
		panic("catalogServiceMock.GetTagFunc: method is nil but catalogService.GetTag was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetTag.Lock()
	mock.calls.GetTag = append(mock.calls.GetTag, callInfo)
	mock.lockGetTag.Unlock()
	return mock.GetTagFunc(ctx, id)
}

func (mock *catalogServiceMock) GetTagCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockGetTag.RLock()
	calls = mock.calls.GetTag
	mock.lockGetTag.RUnlock()
	return calls
}

func (mock *catalogServiceMock) SearchIngredients(ctx context.Context, prefix string) ([]domain.Ingredient, error) {
	if mock.SearchIngredientsFunc == nil {
		panic("catalogServiceMock.SearchIngredientsFunc: method is nil but catalogService.SearchIngredients was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prefix string
	}{
		Ctx:    ctx,
		Prefix: prefix,
	}
	mock.lockSearchIngredients.Lock()
	mock.calls.SearchIngredients = append(mock.calls.SearchIngredients, callInfo)
	mock.lockSearchIngredients.Unlock()
	return mock.SearchIngredientsFunc(ctx, prefix)
}

func (mock *catalogServiceMock) SearchIngredientsCalls() []struct {
	Ctx    context.Context
	Prefix string
} {
	var calls []struct {
		Ctx    context.Context
		Prefix string
	}
	mock.lockSearchIngredients.RLock()
	calls = mock.calls.SearchIngredients
	mock.lockSearchIngredients.RUnlock()
	return calls
}

func (mock *catalogServiceMock) GetIngredient(ctx context.Context, id int64) (*domain.Ingredient, error) {
	if mock.GetIngredientFunc == nil {
		panic("catalogServiceMock.GetIngredientFunc: method is nil but catalogService.GetIngredient was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetIngredient.Lock()
	mock.calls.GetIngredient = append(mock.calls.GetIngredient, callInfo)
	mock.lockGetIngredient.Unlock()
	return mock.GetIngredientFunc(ctx, id)
}

func (mock *catalogServiceMock) GetIngredientCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockGetIngredient.RLock()
	calls = mock.calls.GetIngredient
	mock.lockGetIngredient.RUnlock()
	return calls
}

var _ recipeService = &recipeServiceMock{}

type recipeServiceMock struct {
	CreateFunc func(ctx context.Context, input recipe.CreateInput) (*domain.Recipe, error)
	UpdateFunc func(ctx context.Context, id int64, input recipe.UpdateInput) (*domain.Recipe, error)
	DeleteFunc func(ctx context.Context, id int64) error
	GetFunc    func(ctx context.Context, id int64) (*domain.Recipe, error)
	ListFunc   func(ctx context.Context, input recipe.ListInput) ([]domain.Recipe, int, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input recipe.CreateInput
		}
		Update []struct {
			Ctx   context.Context
			Id    int64
			Input recipe.UpdateInput
		}
		Delete []struct {
			Ctx context.Context
			Id  int64
		}
		Get []struct {
			Ctx context.Context
			Id  int64
		}
		List []struct {
			Ctx   context.Context
			Input recipe.ListInput
		}
	}
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
	lockGet    sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *recipeServiceMock) Create(ctx context.Context, input recipe.CreateInput) (*domain.Recipe, error) {
	if mock.CreateFunc == nil {
		panic("recipeServiceMock.CreateFunc: method is nil but recipeService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input recipe.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *recipeServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input recipe.CreateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input recipe.CreateInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *recipeServiceMock) Update(ctx context.Context, id int64, input recipe.UpdateInput) (*domain.Recipe, error) {
	if mock.UpdateFunc == nil {
		panic("recipeServiceMock.UpdateFunc: method is nil but recipeService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    int64
		Input recipe.UpdateInput
	}{
		Ctx:   ctx,
		Id:    id,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *recipeServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Id    int64
	Input recipe.UpdateInput
} {
	var calls []struct {
		Ctx   context.Context
		Id    int64
		Input recipe.UpdateInput
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *recipeServiceMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("recipeServiceMock.DeleteFunc: method is nil but recipeService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *recipeServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *recipeServiceMock) Get(ctx context.Context, id int64) (*domain.Recipe, error) {
	if mock.GetFunc == nil {
		panic("recipeServiceMock.GetFunc: method is nil but recipeService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *recipeServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *recipeServiceMock) List(ctx context.Context, input recipe.ListInput) ([]domain.Recipe, int, error) {
	if mock.ListFunc == nil {
		panic("recipeServiceMock.ListFunc: method is nil but recipeService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input recipe.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *recipeServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input recipe.ListInput
} {
	var calls []struct {
		Ctx   context.Context
		Input recipe.ListInput
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ membershipService = &membershipServiceMock{}

type membershipServiceMock struct {
	AddFunc    func(ctx context.Context, recipeID int64) (*domain.Recipe, error)
	RemoveFunc func(ctx context.Context, recipeID int64) error

	calls struct {
		Add []struct {
			Ctx      context.Context
			RecipeID int64
		}
		Remove []struct {
			Ctx      context.Context
			RecipeID int64
		}
	}
	lockAdd    sync.RWMutex
	lockRemove sync.RWMutex
}

func (mock *membershipServiceMock) Add(ctx context.Context, recipeID int64) (*domain.Recipe, error) {
	if mock.AddFunc == nil {
		panic("membershipServiceMock.AddFunc: method is nil but membershipService.Add was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RecipeID int64
	}{
		Ctx:      ctx,
		RecipeID: recipeID,
	}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, recipeID)
}

func (mock *membershipServiceMock) AddCalls() []struct {
	Ctx      context.Context
	RecipeID int64
} {
	var calls []struct {
		Ctx      context.Context
		RecipeID int64
	}
	mock.lockAdd.RLock()
	calls = mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *membershipServiceMock) Remove(ctx context.Context, recipeID int64) error {
	if mock.RemoveFunc == nil {
		panic("membershipServiceMock.RemoveFunc: method is nil but membershipService.Remove was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RecipeID int64
	}{
		Ctx:      ctx,
		RecipeID: recipeID,
	}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, recipeID)
}

func (mock *membershipServiceMock) RemoveCalls() []struct {
	Ctx      context.Context
	RecipeID int64
} {
	var calls []struct {
		Ctx      context.Context
		RecipeID int64
	}
	mock.lockRemove.RLock()
	calls = mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

var _ cartService = &cartServiceMock{}

type cartServiceMock struct {
	AddFunc                  func(ctx context.Context, recipeID int64) (*domain.Recipe, error)
	RemoveFunc               func(ctx context.Context, recipeID int64) error
	DownloadShoppingListFunc func(ctx context.Context) (*cart.ShoppingList, error)

	calls struct {
		Add []struct {
			Ctx      context.Context
			RecipeID int64
		}
		Remove []struct {
			Ctx      context.Context
			RecipeID int64
		}
		DownloadShoppingList []struct {
			Ctx context.Context
		}
	}
	lockAdd                  sync.RWMutex
	lockRemove               sync.RWMutex
	lockDownloadShoppingList sync.RWMutex
}

func (mock *cartServiceMock) Add(ctx context.Context, recipeID int64) (*domain.Recipe, error) {
	if mock.AddFunc == nil {
		panic("cartServiceMock.AddFunc: method is nil but cartService.Add was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RecipeID int64
	}{
		Ctx:      ctx,
		RecipeID: recipeID,
	}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, recipeID)
}

func (mock *cartServiceMock) AddCalls() []struct {
	Ctx      context.Context
	RecipeID int64
} {
	var calls []struct {
		Ctx      context.Context
		RecipeID int64
	}
	mock.lockAdd.RLock()
	calls = mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *cartServiceMock) Remove(ctx context.Context, recipeID int64) error {
	if mock.RemoveFunc == nil {
		panic("cartServiceMock.RemoveFunc: method is nil but cartService.Remove was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RecipeID int64
	}{
		Ctx:      ctx,
		RecipeID: recipeID,
	}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, recipeID)
}

func (mock *cartServiceMock) RemoveCalls() []struct {
	Ctx      context.Context
	RecipeID int64
} {
	var calls []struct {
		Ctx      context.Context
		RecipeID int64
	}
	mock.lockRemove.RLock()
	calls = mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

func (mock *cartServiceMock) DownloadShoppingList(ctx context.Context) (*cart.ShoppingList, error) {
	if mock.DownloadShoppingListFunc == nil {
		panic("cartServiceMock.DownloadShoppingListFunc: method is nil but cartService.DownloadShoppingList was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockDownloadShoppingList.Lock()
	mock.calls.DownloadShoppingList = append(mock.calls.DownloadShoppingList, callInfo)
	mock.lockDownloadShoppingList.Unlock()
	return mock.DownloadShoppingListFunc(ctx)
}

func (mock *cartServiceMock) DownloadShoppingListCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockDownloadShoppingList.RLock()
	calls = mock.calls.DownloadShoppingList
	mock.lockDownloadShoppingList.RUnlock()
	return calls
}
