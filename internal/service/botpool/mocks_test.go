package botpool

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/community-bots/internal/domain"
)

// ---------------------------------------------------------------------------
// profileRepoMock
// ---------------------------------------------------------------------------

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	ListBotsFunc  func(ctx context.Context) ([]domain.BotProfile, error)
	UpdateBotFunc func(ctx context.Context, bot domain.BotProfile) error

	calls struct {
		ListBots  []struct{ Ctx context.Context }
		UpdateBot []struct {
			Ctx context.Context
			Bot domain.BotProfile
		}
	}
	lockListBots  sync.RWMutex
	lockUpdateBot sync.RWMutex
}

func (mock *profileRepoMock) ListBots(ctx context.Context) ([]domain.BotProfile, error) {
	if mock.ListBotsFunc == nil {
		panic("profileRepoMock.ListBotsFunc: method is nil but profileRepo.ListBots was just called")
	}
	mock.lockListBots.Lock()
	mock.calls.ListBots = append(mock.calls.ListBots, struct{ Ctx context.Context }{ctx})
	mock.lockListBots.Unlock()
	return mock.ListBotsFunc(ctx)
}

func (mock *profileRepoMock) UpdateBot(ctx context.Context, bot domain.BotProfile) error {
	if mock.UpdateBotFunc == nil {
		panic("profileRepoMock.UpdateBotFunc: method is nil but profileRepo.UpdateBot was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Bot domain.BotProfile
	}{Ctx: ctx, Bot: bot}
	mock.lockUpdateBot.Lock()
	mock.calls.UpdateBot = append(mock.calls.UpdateBot, callInfo)
	mock.lockUpdateBot.Unlock()
	return mock.UpdateBotFunc(ctx, bot)
}

func (mock *profileRepoMock) UpdateBotCalls() []struct {
	Ctx context.Context
	Bot domain.BotProfile
} {
	mock.lockUpdateBot.RLock()
	calls := mock.calls.UpdateBot
	mock.lockUpdateBot.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// identityProviderMock
// ---------------------------------------------------------------------------

var _ identityProvider = &identityProviderMock{}

type identityProviderMock struct {
	CreateUserFunc func(ctx context.Context, in domain.CreateUserInput) (uuid.UUID, error)

	calls struct {
		CreateUser []struct {
			Ctx context.Context
			In  domain.CreateUserInput
		}
	}
	lockCreateUser sync.RWMutex
}

func (mock *identityProviderMock) CreateUser(ctx context.Context, in domain.CreateUserInput) (uuid.UUID, error) {
	if mock.CreateUserFunc == nil {
		panic("identityProviderMock.CreateUserFunc: method is nil but identityProvider.CreateUser was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  domain.CreateUserInput
	}{Ctx: ctx, In: in}
	mock.lockCreateUser.Lock()
	mock.calls.CreateUser = append(mock.calls.CreateUser, callInfo)
	mock.lockCreateUser.Unlock()
	return mock.CreateUserFunc(ctx, in)
}

func (mock *identityProviderMock) CreateUserCalls() []struct {
	Ctx context.Context
	In  domain.CreateUserInput
} {
	mock.lockCreateUser.RLock()
	calls := mock.calls.CreateUser
	mock.lockCreateUser.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// txManagerMock
// ---------------------------------------------------------------------------

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{ Ctx context.Context }
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{ Ctx context.Context }{ctx})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{ Ctx context.Context } {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
