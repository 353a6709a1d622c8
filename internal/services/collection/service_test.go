package collection_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/brainmon-api/internal/entities/brainmon"
	"github.com/KirkDiggler/brainmon-api/internal/errors"
	"github.com/KirkDiggler/brainmon-api/internal/pkg/clock"
	"github.com/KirkDiggler/brainmon-api/internal/repositories/monsters"
	monstersmock "github.com/KirkDiggler/brainmon-api/internal/repositories/monsters/mock"
	"github.com/KirkDiggler/brainmon-api/internal/services/collection"
	"github.com/KirkDiggler/brainmon-api/internal/testutils"
	"github.com/KirkDiggler/brainmon-api/internal/testutils/builders"
)

var now = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed")
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for snapshot")
	}
	var zero T
	return zero
}

type CollectionTestSuite struct {
	suite.Suite
	ctx     context.Context
	cancel  context.CancelFunc
	service collection.Service
}

func (s *CollectionTestSuite) SetupTest() {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	client, _ := testutils.CreateTestRedisClient(s.T())
	repo, err := monsters.NewRedis(&monsters.RedisConfig{Client: client})
	s.Require().NoError(err)

	s.service, err = collection.NewService(&collection.Config{
		Repository: repo,
		Clock:      clock.NewFixed(now),
	})
	s.Require().NoError(err)
}

func (s *CollectionTestSuite) TearDownTest() {
	s.cancel()
}

func (s *CollectionTestSuite) add(species string) *brainmon.Monster {
	out, err := s.service.Add(s.ctx, &collection.AddInput{
		Monster: builders.NewMonsterBuilder().WithSpecies(species).WithCaughtAt(time.Time{}).Build(),
	})
	s.Require().NoError(err)
	return out.Monster
}

func names(list []*brainmon.Monster) []string {
	out := make([]string, 0, len(list))
	for _, m := range list {
		out = append(out, m.Name)
	}
	return out
}

func (s *CollectionTestSuite) TestWatchAllPushesAfterWrites() {
	ch, err := s.service.WatchAll(s.ctx)
	s.Require().NoError(err)

	s.Empty(receive(s.T(), ch))

	s.add("squirtle")
	s.Equal([]string{"Squirtle"}, names(receive(s.T(), ch)))

	s.add("abra")
	s.Equal([]string{"Abra", "Squirtle"}, names(receive(s.T(), ch)))
}

func (s *CollectionTestSuite) TestAddStampsCaughtAt() {
	m := s.add("abra")
	s.True(m.CaughtAt.Equal(now))
	s.Positive(m.ID)
}

func (s *CollectionTestSuite) TestAddStampsCaughtAtInUTC() {
	client, _ := testutils.CreateTestRedisClient(s.T())
	repo, err := monsters.NewRedis(&monsters.RedisConfig{Client: client})
	s.Require().NoError(err)

	tokyo := time.FixedZone("JST", 9*60*60)
	clk := clock.NewFixed(time.Date(2024, 6, 1, 18, 30, 0, 0, tokyo))
	svc, err := collection.NewService(&collection.Config{Repository: repo, Clock: clk})
	s.Require().NoError(err)

	first, err := svc.Add(s.ctx, &collection.AddInput{
		Monster: builders.NewMonsterBuilder().WithSpecies("abra").WithCaughtAt(time.Time{}).Build(),
	})
	s.Require().NoError(err)

	clk.Advance(90 * time.Second)
	second, err := svc.Add(s.ctx, &collection.AddInput{
		Monster: builders.NewMonsterBuilder().WithSpecies("snorlax").WithCaughtAt(time.Time{}).Build(),
	})
	s.Require().NoError(err)

	s.Equal(time.UTC, first.Monster.CaughtAt.Location())
	s.True(first.Monster.CaughtAt.Equal(now))
	s.Equal(90*time.Second, second.Monster.CaughtAt.Sub(first.Monster.CaughtAt))

	got, err := svc.Get(s.ctx, &collection.GetInput{ID: second.Monster.ID})
	s.Require().NoError(err)
	s.Equal(*second.Monster, *got.Monster)
}

func (s *CollectionTestSuite) TestWatchOneMatchesInsertedFields() {
	added := s.add("snorlax")

	ch, err := s.service.WatchOne(s.ctx, added.ID)
	s.Require().NoError(err)

	got := receive(s.T(), ch)
	s.Require().NotNil(got)
	s.Equal(added.ID, got.ID)
	s.Equal(added.Name, got.Name)
	s.Equal(added.Species, got.Species)
	s.Equal(added.Type, got.Type)
	s.Equal(added.CombatPower, got.CombatPower)
	s.Equal(added.ImageURL, got.ImageURL)
}

func (s *CollectionTestSuite) TestWatchOneFollowsRenameAndRemove() {
	added := s.add("pidgey")

	ch, err := s.service.WatchOne(s.ctx, added.ID)
	s.Require().NoError(err)
	s.Equal("Pidgey", receive(s.T(), ch).Name)

	_, err = s.service.Rename(s.ctx, &collection.RenameInput{ID: added.ID, Name: "  Birdie "})
	s.Require().NoError(err)
	s.Equal("Birdie", receive(s.T(), ch).Name)

	_, err = s.service.Remove(s.ctx, &collection.RemoveInput{ID: added.ID})
	s.Require().NoError(err)
	s.Nil(receive(s.T(), ch))
}

func (s *CollectionTestSuite) TestWatchOneAbsent() {
	ch, err := s.service.WatchOne(s.ctx, 404)
	s.Require().NoError(err)
	s.Nil(receive(s.T(), ch))
}

func (s *CollectionTestSuite) TestRepeatedRemoveLeavesListUnchanged() {
	gone := s.add("psyduck")
	s.add("golduck")

	ch, err := s.service.WatchAll(s.ctx)
	s.Require().NoError(err)
	s.Len(receive(s.T(), ch), 2)

	out, err := s.service.Remove(s.ctx, &collection.RemoveInput{ID: gone.ID})
	s.Require().NoError(err)
	s.True(out.Removed)
	s.Equal([]string{"Golduck"}, names(receive(s.T(), ch)))

	out, err = s.service.Remove(s.ctx, &collection.RemoveInput{ID: gone.ID})
	s.Require().NoError(err)
	s.False(out.Removed)
	s.Equal([]string{"Golduck"}, names(receive(s.T(), ch)))
}

func (s *CollectionTestSuite) TestRenameValidation() {
	added := s.add("onix")

	_, err := s.service.Rename(s.ctx, &collection.RenameInput{ID: added.ID, Name: "   "})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.service.Rename(s.ctx, &collection.RenameInput{ID: 999, Name: "Rocky"})
	s.True(errors.IsNotFound(err))
}

func (s *CollectionTestSuite) TestCancelClosesChannel() {
	ctx, cancel := context.WithCancel(s.ctx)
	ch, err := s.service.WatchAll(ctx)
	s.Require().NoError(err)
	receive(s.T(), ch)

	cancel()

	s.Eventually(func() bool {
		select {
		case _, ok := <-ch:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)

	// writes after the watcher left must not block
	s.add("mew")
}

func (s *CollectionTestSuite) TestGetAndList() {
	added := s.add("eevee")

	got, err := s.service.Get(s.ctx, &collection.GetInput{ID: added.ID})
	s.Require().NoError(err)
	s.Equal("Eevee", got.Monster.Name)

	list, err := s.service.List(s.ctx, &collection.ListInput{})
	s.Require().NoError(err)
	s.Len(list.Monsters, 1)

	_, err = s.service.Get(s.ctx, &collection.GetInput{ID: 0})
	s.True(errors.IsInvalidArgument(err))
}

func TestCollectionTestSuite(t *testing.T) {
	suite.Run(t, new(CollectionTestSuite))
}

type CollectionMockTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *monstersmock.MockRepository
	service  collection.Service
}

func (s *CollectionMockTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = monstersmock.NewMockRepository(s.ctrl)

	var err error
	s.service, err = collection.NewService(&collection.Config{Repository: s.mockRepo})
	s.Require().NoError(err)
}

func (s *CollectionMockTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CollectionMockTestSuite) TestWriteErrorIsReturned() {
	ctx := context.Background()
	s.mockRepo.EXPECT().
		Insert(ctx, gomock.Any()).
		Return(nil, errors.Unavailable("disk on fire"))

	_, err := s.service.Add(ctx, &collection.AddInput{Monster: builders.NewMonsterBuilder().Build()})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *CollectionMockTestSuite) TestRefreshFailureKeepsWriteResult() {
	ctx := context.Background()
	stored := builders.NewMonsterBuilder().WithID(7).Build()

	s.mockRepo.EXPECT().
		Insert(ctx, gomock.Any()).
		Return(&monsters.InsertOutput{Monster: stored}, nil)
	s.mockRepo.EXPECT().
		List(ctx, monsters.ListInput{}).
		Return(nil, errors.Unavailable("list failed"))

	out, err := s.service.Add(ctx, &collection.AddInput{Monster: builders.NewMonsterBuilder().Build()})
	s.Require().NoError(err)
	s.Equal(int64(7), out.Monster.ID)
}

func (s *CollectionMockTestSuite) TestWatchAllListError() {
	ctx := context.Background()
	s.mockRepo.EXPECT().
		List(ctx, monsters.ListInput{}).
		Return(nil, errors.Unavailable("list failed"))

	_, err := s.service.WatchAll(ctx)
	s.True(errors.IsUnavailable(err))
}

func (s *CollectionMockTestSuite) TestNilConfig() {
	_, err := collection.NewService(nil)
	s.True(errors.IsInvalidArgument(err))
}

func TestCollectionMockTestSuite(t *testing.T) {
	suite.Run(t, new(CollectionMockTestSuite))
}
