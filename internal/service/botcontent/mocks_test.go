package botcontent

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/community-bots/internal/adapter/lock"
	"github.com/heartmarshall/community-bots/internal/domain"
)

// ---------------------------------------------------------------------------
// settingsRepoMock
// ---------------------------------------------------------------------------

var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	GetBoolFunc func(ctx context.Context, key string) (bool, error)
	GetJSONFunc func(ctx context.Context, key string, dst any) error

	calls struct {
		GetBool []struct {
			Ctx context.Context
			Key string
		}
		GetJSON []struct {
			Ctx context.Context
			Key string
			Dst any
		}
	}
	lockGetBool sync.RWMutex
	lockGetJSON sync.RWMutex
}

func (mock *settingsRepoMock) GetBool(ctx context.Context, key string) (bool, error) {
	if mock.GetBoolFunc == nil {
		panic("settingsRepoMock.GetBoolFunc: method is nil but settingsRepo.GetBool was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockGetBool.Lock()
	mock.calls.GetBool = append(mock.calls.GetBool, callInfo)
	mock.lockGetBool.Unlock()
	return mock.GetBoolFunc(ctx, key)
}

func (mock *settingsRepoMock) GetBoolCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockGetBool.RLock()
	calls := mock.calls.GetBool
	mock.lockGetBool.RUnlock()
	return calls
}

func (mock *settingsRepoMock) GetJSON(ctx context.Context, key string, dst any) error {
	if mock.GetJSONFunc == nil {
		panic("settingsRepoMock.GetJSONFunc: method is nil but settingsRepo.GetJSON was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
		Dst any
	}{Ctx: ctx, Key: key, Dst: dst}
	mock.lockGetJSON.Lock()
	mock.calls.GetJSON = append(mock.calls.GetJSON, callInfo)
	mock.lockGetJSON.Unlock()
	return mock.GetJSONFunc(ctx, key, dst)
}

func (mock *settingsRepoMock) GetJSONCalls() []struct {
	Ctx context.Context
	Key string
	Dst any
} {
	mock.lockGetJSON.RLock()
	calls := mock.calls.GetJSON
	mock.lockGetJSON.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// botPoolMock
// ---------------------------------------------------------------------------

var _ botPool = &botPoolMock{}

type botPoolMock struct {
	EnsurePoolFunc func(ctx context.Context, n int) ([]domain.BotProfile, error)

	calls struct {
		EnsurePool []struct {
			Ctx context.Context
			N   int
		}
	}
	lockEnsurePool sync.RWMutex
}

func (mock *botPoolMock) EnsurePool(ctx context.Context, n int) ([]domain.BotProfile, error) {
	if mock.EnsurePoolFunc == nil {
		panic("botPoolMock.EnsurePoolFunc: method is nil but botPool.EnsurePool was just called")
	}
	callInfo := struct {
		Ctx context.Context
		N   int
	}{Ctx: ctx, N: n}
	mock.lockEnsurePool.Lock()
	mock.calls.EnsurePool = append(mock.calls.EnsurePool, callInfo)
	mock.lockEnsurePool.Unlock()
	return mock.EnsurePoolFunc(ctx, n)
}

func (mock *botPoolMock) EnsurePoolCalls() []struct {
	Ctx context.Context
	N   int
} {
	mock.lockEnsurePool.RLock()
	calls := mock.calls.EnsurePool
	mock.lockEnsurePool.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// templateRepoMock
// ---------------------------------------------------------------------------

var _ templateRepo = &templateRepoMock{}

type templateRepoMock struct {
	ListActiveFunc     func(ctx context.Context) ([]domain.ContentTemplate, error)
	IncrementUsageFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		ListActive []struct {
			Ctx context.Context
		}
		IncrementUsage []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockListActive sync.RWMutex
	lockIncrementUsage sync.RWMutex
}

func (mock *templateRepoMock) ListActive(ctx context.Context) ([]domain.ContentTemplate, error) {
	if mock.ListActiveFunc == nil {
		panic("templateRepoMock.ListActiveFunc: method is nil but templateRepo.ListActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx)
}

func (mock *templateRepoMock) ListActiveCalls() []struct {
	Ctx context.Context
} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}

func (mock *templateRepoMock) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	if mock.IncrementUsageFunc == nil {
		panic("templateRepoMock.IncrementUsageFunc: method is nil but templateRepo.IncrementUsage was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockIncrementUsage.Lock()
	mock.calls.IncrementUsage = append(mock.calls.IncrementUsage, callInfo)
	mock.lockIncrementUsage.Unlock()
	return mock.IncrementUsageFunc(ctx, id)
}

func (mock *templateRepoMock) IncrementUsageCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockIncrementUsage.RLock()
	calls := mock.calls.IncrementUsage
	mock.lockIncrementUsage.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// feedRepoMock
// ---------------------------------------------------------------------------

var _ feedRepo = &feedRepoMock{}

type feedRepoMock struct {
	CreatePostFunc      func(ctx context.Context, p domain.FeedPost) (domain.FeedPost, error)
	ListRecentPostsFunc func(ctx context.Context, limit int) ([]domain.FeedPost, error)
	CreateCommentFunc   func(ctx context.Context, c domain.FeedComment) (domain.FeedComment, error)

	calls struct {
		CreatePost []struct {
			Ctx context.Context
			P   domain.FeedPost
		}
		ListRecentPosts []struct {
			Ctx   context.Context
			Limit int
		}
		CreateComment []struct {
			Ctx context.Context
			C   domain.FeedComment
		}
	}
	lockCreatePost sync.RWMutex
	lockListRecentPosts sync.RWMutex
	lockCreateComment sync.RWMutex
}

func (mock *feedRepoMock) CreatePost(ctx context.Context, p domain.FeedPost) (domain.FeedPost, error) {
	if mock.CreatePostFunc == nil {
		panic("feedRepoMock.CreatePostFunc: method is nil but feedRepo.CreatePost was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.FeedPost
	}{Ctx: ctx, P: p}
	mock.lockCreatePost.Lock()
	mock.calls.CreatePost = append(mock.calls.CreatePost, callInfo)
	mock.lockCreatePost.Unlock()
	return mock.CreatePostFunc(ctx, p)
}

func (mock *feedRepoMock) CreatePostCalls() []struct {
	Ctx context.Context
	P   domain.FeedPost
} {
	mock.lockCreatePost.RLock()
	calls := mock.calls.CreatePost
	mock.lockCreatePost.RUnlock()
	return calls
}

func (mock *feedRepoMock) ListRecentPosts(ctx context.Context, limit int) ([]domain.FeedPost, error) {
	if mock.ListRecentPostsFunc == nil {
		panic("feedRepoMock.ListRecentPostsFunc: method is nil but feedRepo.ListRecentPosts was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockListRecentPosts.Lock()
	mock.calls.ListRecentPosts = append(mock.calls.ListRecentPosts, callInfo)
	mock.lockListRecentPosts.Unlock()
	return mock.ListRecentPostsFunc(ctx, limit)
}

func (mock *feedRepoMock) ListRecentPostsCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockListRecentPosts.RLock()
	calls := mock.calls.ListRecentPosts
	mock.lockListRecentPosts.RUnlock()
	return calls
}

func (mock *feedRepoMock) CreateComment(ctx context.Context, c domain.FeedComment) (domain.FeedComment, error) {
	if mock.CreateCommentFunc == nil {
		panic("feedRepoMock.CreateCommentFunc: method is nil but feedRepo.CreateComment was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.FeedComment
	}{Ctx: ctx, C: c}
	mock.lockCreateComment.Lock()
	mock.calls.CreateComment = append(mock.calls.CreateComment, callInfo)
	mock.lockCreateComment.Unlock()
	return mock.CreateCommentFunc(ctx, c)
}

func (mock *feedRepoMock) CreateCommentCalls() []struct {
	Ctx context.Context
	C   domain.FeedComment
} {
	mock.lockCreateComment.RLock()
	calls := mock.calls.CreateComment
	mock.lockCreateComment.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// forumRepoMock
// ---------------------------------------------------------------------------

var _ forumRepo = &forumRepoMock{}

type forumRepoMock struct {
	ListActiveCategoriesFunc func(ctx context.Context) ([]domain.ForumCategory, error)
	CreatePostFunc           func(ctx context.Context, p domain.ForumPost) (domain.ForumPost, error)
	ListRecentPostsFunc      func(ctx context.Context, limit int) ([]domain.ForumPost, error)
	CreateReplyFunc          func(ctx context.Context, r domain.ForumReply) (domain.ForumReply, error)

	calls struct {
		ListActiveCategories []struct {
			Ctx context.Context
		}
		CreatePost []struct {
			Ctx context.Context
			P   domain.ForumPost
		}
		ListRecentPosts []struct {
			Ctx   context.Context
			Limit int
		}
		CreateReply []struct {
			Ctx context.Context
			R   domain.ForumReply
		}
	}
	lockListActiveCategories sync.RWMutex
	lockCreatePost sync.RWMutex
	lockListRecentPosts sync.RWMutex
	lockCreateReply sync.RWMutex
}

func (mock *forumRepoMock) ListActiveCategories(ctx context.Context) ([]domain.ForumCategory, error) {
	if mock.ListActiveCategoriesFunc == nil {
		panic("forumRepoMock.ListActiveCategoriesFunc: method is nil but forumRepo.ListActiveCategories was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListActiveCategories.Lock()
	mock.calls.ListActiveCategories = append(mock.calls.ListActiveCategories, callInfo)
	mock.lockListActiveCategories.Unlock()
	return mock.ListActiveCategoriesFunc(ctx)
}

func (mock *forumRepoMock) ListActiveCategoriesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListActiveCategories.RLock()
	calls := mock.calls.ListActiveCategories
	mock.lockListActiveCategories.RUnlock()
	return calls
}

func (mock *forumRepoMock) CreatePost(ctx context.Context, p domain.ForumPost) (domain.ForumPost, error) {
	if mock.CreatePostFunc == nil {
		panic("forumRepoMock.CreatePostFunc: method is nil but forumRepo.CreatePost was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.ForumPost
	}{Ctx: ctx, P: p}
	mock.lockCreatePost.Lock()
	mock.calls.CreatePost = append(mock.calls.CreatePost, callInfo)
	mock.lockCreatePost.Unlock()
	return mock.CreatePostFunc(ctx, p)
}

func (mock *forumRepoMock) CreatePostCalls() []struct {
	Ctx context.Context
	P   domain.ForumPost
} {
	mock.lockCreatePost.RLock()
	calls := mock.calls.CreatePost
	mock.lockCreatePost.RUnlock()
	return calls
}

func (mock *forumRepoMock) ListRecentPosts(ctx context.Context, limit int) ([]domain.ForumPost, error) {
	if mock.ListRecentPostsFunc == nil {
		panic("forumRepoMock.ListRecentPostsFunc: method is nil but forumRepo.ListRecentPosts was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockListRecentPosts.Lock()
	mock.calls.ListRecentPosts = append(mock.calls.ListRecentPosts, callInfo)
	mock.lockListRecentPosts.Unlock()
	return mock.ListRecentPostsFunc(ctx, limit)
}

func (mock *forumRepoMock) ListRecentPostsCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockListRecentPosts.RLock()
	calls := mock.calls.ListRecentPosts
	mock.lockListRecentPosts.RUnlock()
	return calls
}

func (mock *forumRepoMock) CreateReply(ctx context.Context, r domain.ForumReply) (domain.ForumReply, error) {
	if mock.CreateReplyFunc == nil {
		panic("forumRepoMock.CreateReplyFunc: method is nil but forumRepo.CreateReply was just called")
	}
	callInfo := struct {
		Ctx context.Context
		R   domain.ForumReply
	}{Ctx: ctx, R: r}
	mock.lockCreateReply.Lock()
	mock.calls.CreateReply = append(mock.calls.CreateReply, callInfo)
	mock.lockCreateReply.Unlock()
	return mock.CreateReplyFunc(ctx, r)
}

func (mock *forumRepoMock) CreateReplyCalls() []struct {
	Ctx context.Context
	R   domain.ForumReply
} {
	mock.lockCreateReply.RLock()
	calls := mock.calls.CreateReply
	mock.lockCreateReply.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// activityLoggerMock
// ---------------------------------------------------------------------------

var _ activityLogger = &activityLoggerMock{}

type activityLoggerMock struct {
	LogFunc func(ctx context.Context, e domain.ActivityLogEntry) error

	calls struct {
		Log []struct {
			Ctx context.Context
			E   domain.ActivityLogEntry
		}
	}
	lockLog sync.RWMutex
}

func (mock *activityLoggerMock) Log(ctx context.Context, e domain.ActivityLogEntry) error {
	if mock.LogFunc == nil {
		panic("activityLoggerMock.LogFunc: method is nil but activityLogger.Log was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.ActivityLogEntry
	}{Ctx: ctx, E: e}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, e)
}

func (mock *activityLoggerMock) LogCalls() []struct {
	Ctx context.Context
	E   domain.ActivityLogEntry
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// contentGeneratorMock
// ---------------------------------------------------------------------------

var _ contentGenerator = &contentGeneratorMock{}

type contentGeneratorMock struct {
	GenerateFunc func(ctx context.Context, prompt string) string

	calls struct {
		Generate []struct {
			Ctx    context.Context
			Prompt string
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *contentGeneratorMock) Generate(ctx context.Context, prompt string) string {
	if mock.GenerateFunc == nil {
		panic("contentGeneratorMock.GenerateFunc: method is nil but contentGenerator.Generate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prompt string
	}{Ctx: ctx, Prompt: prompt}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, prompt)
}

func (mock *contentGeneratorMock) GenerateCalls() []struct {
	Ctx    context.Context
	Prompt string
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// txManagerMock
// ---------------------------------------------------------------------------

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// runLockerMock
// ---------------------------------------------------------------------------

var _ runLocker = &runLockerMock{}

type runLockerMock struct {
	TryLockFunc func(ctx context.Context) (lock.Release, error)

	calls struct {
		TryLock []struct {
			Ctx context.Context
		}
	}
	lockTryLock sync.RWMutex
}

func (mock *runLockerMock) TryLock(ctx context.Context) (lock.Release, error) {
	if mock.TryLockFunc == nil {
		panic("runLockerMock.TryLockFunc: method is nil but runLocker.TryLock was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockTryLock.Lock()
	mock.calls.TryLock = append(mock.calls.TryLock, callInfo)
	mock.lockTryLock.Unlock()
	return mock.TryLockFunc(ctx)
}

func (mock *runLockerMock) TryLockCalls() []struct {
	Ctx context.Context
} {
	mock.lockTryLock.RLock()
	calls := mock.calls.TryLock
	mock.lockTryLock.RUnlock()
	return calls
}
