package actor_test

import (
	"context"
	"testing"

	"github.com/raedalharbi/muqawil/internal/domain/activity"
	"github.com/raedalharbi/muqawil/internal/domain/actor"
	"github.com/raedalharbi/muqawil/internal/repository"
	"github.com/raedalharbi/muqawil/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActorService_Register(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ActorRepository{}
	repo.On("Create", ctx, mock.Anything).Return(nil)

	svc := actor.NewService(repo, nil, nil)
	act, err := svc.Register(ctx, actor.RegisterRequest{
		Name:       "مؤسسة النور",
		Role:       actor.RoleSubcontractor,
		Email:      "noor@ex.com",
		Trade:      actor.TradeElectrical,
		Experience: actor.ExperienceExpert,
	})
	require.NoError(t, err)
	require.NotEmpty(t, act.ID)
	require.Equal(t, actor.RoleSubcontractor, act.Role)
	require.Equal(t, actor.TradeElectrical, act.Trade)
}

func TestActorService_RegisterDefaultName(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ActorRepository{}
	repo.On("Create", ctx, mock.Anything).Return(nil)

	svc := actor.NewService(repo, nil, nil)

	main, err := svc.Register(ctx, actor.RegisterRequest{Role: actor.RoleMainContractor, Email: "a@ex.com"})
	require.NoError(t, err)
	require.Equal(t, "شركة الإعمار", main.Name)

	sub, err := svc.Register(ctx, actor.RegisterRequest{Role: actor.RoleSubcontractor, Email: "b@ex.com"})
	require.NoError(t, err)
	require.Equal(t, "مؤسسة السباكة الفنية", sub.Name)
}

func TestActorService_RegisterValidation(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ActorRepository{}
	svc := actor.NewService(repo, nil, nil)

	_, err := svc.Register(ctx, actor.RegisterRequest{Role: "ADMIN", Email: "a@ex.com"})
	require.ErrorIs(t, err, actor.ErrInvalidInput)

	_, err = svc.Register(ctx, actor.RegisterRequest{Role: actor.RoleSubcontractor})
	require.ErrorIs(t, err, actor.ErrInvalidInput)

	_, err = svc.Register(ctx, actor.RegisterRequest{
		Role: actor.RoleSubcontractor, Email: "a@ex.com", Trade: "دهانات",
	})
	require.ErrorIs(t, err, actor.ErrInvalidInput)
}

func TestActorService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	stored := &actor.Actor{
		ID:    "sub1",
		Name:  "الاسم القديم",
		Role:  actor.RoleSubcontractor,
		Email: "old@ex.com",
	}

	repo := &mocks.ActorRepository{}
	repo.On("Get", ctx, "sub1").Return(stored, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	svc := actor.NewService(repo, nil, nil)
	act, err := svc.UpdateProfile(ctx, "sub1", actor.UpdateRequest{
		Name:           "الاسم الجديد",
		Email:          "new@ex.com",
		Bio:            "مقاول باطن متخصص",
		Trade:          actor.TradePlumbing,
		Experience:     actor.ExperienceIntermediate,
		Certifications: []string{"بلدي المعتمدة"},
		Location:       "جدة",
	})
	require.NoError(t, err)

	// Mutable fields are replaced wholesale; identity and role never
	// change.
	require.Equal(t, "sub1", act.ID)
	require.Equal(t, actor.RoleSubcontractor, act.Role)
	require.Equal(t, "الاسم الجديد", act.Name)
	require.Equal(t, "new@ex.com", act.Email)
	require.Equal(t, actor.TradePlumbing, act.Trade)
}

func TestActorService_UpdateProfileLogsActivity(t *testing.T) {
	ctx := context.Background()

	stored := &actor.Actor{
		ID:    "sub1",
		Name:  "اسم",
		Role:  actor.RoleSubcontractor,
		Email: "a@ex.com",
	}

	repo := &mocks.ActorRepository{}
	repo.On("Get", ctx, "sub1").Return(stored, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)
	activities := &mocks.ActivityRepository{}
	activities.On("Log", ctx, mock.MatchedBy(func(entry *activity.Entry) bool {
		return entry.Type == activity.TypeProfileUpdated && entry.ActorID != nil && *entry.ActorID == "sub1"
	})).Return(nil)

	svc := actor.NewService(repo, activities, nil)
	_, err := svc.UpdateProfile(ctx, "sub1", actor.UpdateRequest{Name: "اسم جديد", Email: "a@ex.com"})
	require.NoError(t, err)
	activities.AssertExpectations(t)
}

func TestActorService_UpdateProfileValidation(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ActorRepository{}
	svc := actor.NewService(repo, nil, nil)

	_, err := svc.UpdateProfile(ctx, "sub1", actor.UpdateRequest{Name: "", Email: "a@ex.com"})
	require.ErrorIs(t, err, actor.ErrInvalidInput)

	_, err = svc.UpdateProfile(ctx, "sub1", actor.UpdateRequest{Name: "اسم", Email: "  "})
	require.ErrorIs(t, err, actor.ErrInvalidInput)

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestActorService_UpdateProfileNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ActorRepository{}
	repo.On("Get", ctx, "missing").Return((*actor.Actor)(nil), repository.ErrNotFound)

	svc := actor.NewService(repo, nil, nil)
	_, err := svc.UpdateProfile(ctx, "missing", actor.UpdateRequest{Name: "اسم", Email: "a@ex.com"})
	require.ErrorIs(t, err, actor.ErrActorNotFound)
}

func TestActorService_SearchDirectoryInvalidTrade(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ActorRepository{}
	svc := actor.NewService(repo, nil, nil)

	_, err := svc.SearchDirectory(ctx, actor.DirectoryFilter{Trade: "دهانات"})
	require.ErrorIs(t, err, actor.ErrInvalidInput)
}
