package impl

import (
	"context"
	"testing"

	"counterhub/internal/domain/entity"
	domainerrors "counterhub/internal/domain/errors"
	"counterhub/internal/domain/repository"
	"counterhub/internal/domain/tenant"
	mockRepo "counterhub/internal/mocks/repository"
	"counterhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type counterServiceFixtures struct {
	service   usecase.CounterUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestCounterService(t *testing.T) counterServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	service, err := NewCounterService(CounterServiceParams{
		TxManager: txManager,
		Clock:     fixedClock{now: testNow},
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})
	require.NoError(t, err)

	return counterServiceFixtures{service: service, txManager: txManager}
}

func (f counterServiceFixtures) onExecute(t *testing.T, ctx context.Context, returnErr error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	expectExecute(t, f.txManager, ctx, returnErr, setup)
}

var counterScope = tenant.Scope{UserID: "u1", AppID: "ram-bank"}

func TestCounterService_AddCount_ContinuesStreak(t *testing.T) {
	fx := createTestCounterService(t)
	ctx := context.Background()
	updated := &entity.User{ID: "u1", AppID: "ram-bank", TotalCount: 108}
	summary := &entity.DailySummary{UserID: "u1", AppID: "ram-bank", Date: "2024-03-15", DailyCount: 3, TotalCount: 108, Streak: 5}

	fx.onExecute(t, ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		activityRepo := mockRepo.NewMockActivityRepository(t)
		summaryRepo := mockRepo.NewMockDailySummaryRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().ActivityRepo().Return(activityRepo)
		factory.EXPECT().DailySummaryRepo().Return(summaryRepo)

		userRepo.EXPECT().IncrementTotal(ctx, counterScope, int64(3), testNow).Return(updated, nil)
		activityRepo.EXPECT().Log(ctx, mock.MatchedBy(func(a *entity.Activity) bool {
			return a.Kind == entity.ActivityCountIncrement && a.Count == 3 && a.AppID == "ram-bank"
		})).Return(nil)
		summaryRepo.EXPECT().FindByDate(ctx, counterScope, "2024-03-15").Return(nil, repository.ErrSummaryNotFound)
		summaryRepo.EXPECT().FindByDate(ctx, counterScope, "2024-03-14").
			Return(&entity.DailySummary{Date: "2024-03-14", Streak: 4}, nil)
		summaryRepo.EXPECT().Upsert(ctx, repository.SummaryDelta{
			UserID:        "u1",
			AppID:         "ram-bank",
			Date:          "2024-03-15",
			Delta:         3,
			TotalSnapshot: 108,
			Streak:        5,
		}).Return(summary, nil)
	})

	out, err := fx.service.AddCount(ctx, counterScope, 3)

	require.NoError(t, err)
	assert.Equal(t, int64(108), out.TotalCount)
	assert.Same(t, summary, out.Summary)
}

func TestCounterService_AddCount_StartsStreakAfterGap(t *testing.T) {
	fx := createTestCounterService(t)
	ctx := context.Background()

	fx.onExecute(t, ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		activityRepo := mockRepo.NewMockActivityRepository(t)
		summaryRepo := mockRepo.NewMockDailySummaryRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().ActivityRepo().Return(activityRepo)
		factory.EXPECT().DailySummaryRepo().Return(summaryRepo)

		userRepo.EXPECT().IncrementTotal(ctx, counterScope, int64(1), testNow).
			Return(&entity.User{ID: "u1", AppID: "ram-bank", TotalCount: 1}, nil)
		activityRepo.EXPECT().Log(ctx, mock.AnythingOfType("*entity.Activity")).Return(nil)
		summaryRepo.EXPECT().FindByDate(ctx, counterScope, "2024-03-15").Return(nil, repository.ErrSummaryNotFound)
		summaryRepo.EXPECT().FindByDate(ctx, counterScope, "2024-03-15").Return(nil, repository.ErrSummaryNotFound)
		summaryRepo.EXPECT().FindByDate(ctx, counterScope, "2024-03-14").Return(nil, repository.ErrSummaryNotFound)
		summaryRepo.EXPECT().Upsert(ctx, mock.MatchedBy(func(d repository.SummaryDelta) bool {
			return d.Streak == 1 && d.Delta == 1 && d.Date == "2024-03-15"
		})).Return(&entity.DailySummary{Streak: 1, DailyCount: 1}, nil)
	})

	out, err := fx.service.AddCount(ctx, counterScope, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, out.Summary.Streak)
}

func TestCounterService_AddCount_SameDaySkipsYesterday(t *testing.T) {
	fx := createTestCounterService(t)
	ctx := context.Background()

	fx.onExecute(t, ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		activityRepo := mockRepo.NewMockActivityRepository(t)
		summaryRepo := mockRepo.NewMockDailySummaryRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().ActivityRepo().Return(activityRepo)
		factory.EXPECT().DailySummaryRepo().Return(summaryRepo)

		userRepo.EXPECT().IncrementTotal(ctx, counterScope, int64(1), testNow).
			Return(&entity.User{ID: "u1", AppID: "ram-bank", TotalCount: 9}, nil)
		activityRepo.EXPECT().Log(ctx, mock.AnythingOfType("*entity.Activity")).Return(nil)
		summaryRepo.EXPECT().FindByDate(ctx, counterScope, "2024-03-15").
			Return(&entity.DailySummary{Date: "2024-03-15", DailyCount: 8, Streak: 6}, nil).Once()
		summaryRepo.EXPECT().Upsert(ctx, mock.MatchedBy(func(d repository.SummaryDelta) bool {
			return d.Streak == 6 && d.Date == "2024-03-15"
		})).Return(&entity.DailySummary{DailyCount: 9, Streak: 6}, nil)
	})

	out, err := fx.service.AddCount(ctx, counterScope, 1)

	require.NoError(t, err)
	assert.Equal(t, int64(9), out.Summary.DailyCount)
	assert.Equal(t, 6, out.Summary.Streak)
}

func TestCounterService_AddCount_RejectsNonPositiveDelta(t *testing.T) {
	fx := createTestCounterService(t)

	for _, delta := range []int64{0, -5} {
		out, err := fx.service.AddCount(context.Background(), counterScope, delta)

		assert.Nil(t, out)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	}
}

func TestCounterService_AddCount_UserNotFound(t *testing.T) {
	fx := createTestCounterService(t)
	ctx := context.Background()

	fx.onExecute(t, ctx, errors.Wrap(domainerrors.ErrUserNotFound, "user not found"), func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().IncrementTotal(ctx, counterScope, int64(1), testNow).Return(nil, repository.ErrUserNotFound)
	})

	out, err := fx.service.AddCount(ctx, counterScope, 1)

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestCounterService_AddCount_SummaryFailureSurfaces(t *testing.T) {
	fx := createTestCounterService(t)
	ctx := context.Background()
	upsertErr := errors.New("deadlock detected")

	fx.onExecute(t, ctx, errors.Wrap(upsertErr, "failed to upsert daily summary"), func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		activityRepo := mockRepo.NewMockActivityRepository(t)
		summaryRepo := mockRepo.NewMockDailySummaryRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().ActivityRepo().Return(activityRepo)
		factory.EXPECT().DailySummaryRepo().Return(summaryRepo)

		userRepo.EXPECT().IncrementTotal(ctx, counterScope, int64(2), testNow).
			Return(&entity.User{ID: "u1", AppID: "ram-bank", TotalCount: 2}, nil)
		activityRepo.EXPECT().Log(ctx, mock.AnythingOfType("*entity.Activity")).Return(nil)
		summaryRepo.EXPECT().FindByDate(ctx, counterScope, "2024-03-15").Return(nil, repository.ErrSummaryNotFound)
		summaryRepo.EXPECT().FindByDate(ctx, counterScope, "2024-03-15").Return(nil, repository.ErrSummaryNotFound)
		summaryRepo.EXPECT().FindByDate(ctx, counterScope, "2024-03-14").Return(nil, repository.ErrSummaryNotFound)
		summaryRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("repository.SummaryDelta")).Return(nil, upsertErr)
	})

	out, err := fx.service.AddCount(ctx, counterScope, 2)

	assert.Nil(t, out)
	assert.ErrorIs(t, err, upsertErr)
	assert.Contains(t, err.Error(), "failed to execute add count transaction")
}

func TestCounterService_MyActivities_NormalizesPage(t *testing.T) {
	fx := createTestCounterService(t)
	ctx := context.Background()
	activities := []*entity.Activity{{ID: "a1"}}

	fx.onExecute(t, ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		activityRepo := mockRepo.NewMockActivityRepository(t)
		factory.EXPECT().ActivityRepo().Return(activityRepo)
		activityRepo.EXPECT().ListByUser(ctx, counterScope, repository.Page{Limit: 50, Offset: 50, Order: repository.SortDesc}).
			Return(activities, nil)
	})

	got, err := fx.service.MyActivities(ctx, counterScope, repository.PageFromNumber(2, 0))

	require.NoError(t, err)
	assert.Equal(t, activities, got)
}

func TestCounterService_DailySummaries_DefaultsToSevenDays(t *testing.T) {
	fx := createTestCounterService(t)
	ctx := context.Background()

	fx.onExecute(t, ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		summaryRepo := mockRepo.NewMockDailySummaryRepository(t)
		factory.EXPECT().DailySummaryRepo().Return(summaryRepo)
		summaryRepo.EXPECT().ListByUser(ctx, counterScope, repository.Page{Limit: usecase.DefaultSummaryDays, Order: repository.SortDesc}).
			Return([]*entity.DailySummary{}, nil)
	})

	got, err := fx.service.DailySummaries(ctx, counterScope, 0)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCounterService_RejectsMalformedScope(t *testing.T) {
	fx := createTestCounterService(t)

	_, err := fx.service.MyActivities(context.Background(), tenant.Scope{UserID: "u1", AppID: "NOT VALID"}, repository.Page{})

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}
