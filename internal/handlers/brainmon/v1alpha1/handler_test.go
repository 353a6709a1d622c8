package v1alpha1_test

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/brainmon-api/internal/entities/brainmon"
	"github.com/KirkDiggler/brainmon-api/internal/errors"
	"github.com/KirkDiggler/brainmon-api/internal/handlers/brainmon/v1alpha1"
	v1alpha1mock "github.com/KirkDiggler/brainmon-api/internal/handlers/brainmon/v1alpha1/mock"
	"github.com/KirkDiggler/brainmon-api/internal/orchestrators/encounter"
	encountermock "github.com/KirkDiggler/brainmon-api/internal/orchestrators/encounter/mock"
	"github.com/KirkDiggler/brainmon-api/internal/pkg/task"
	"github.com/KirkDiggler/brainmon-api/internal/services/collection"
	collectionmock "github.com/KirkDiggler/brainmon-api/internal/services/collection/mock"
	"github.com/KirkDiggler/brainmon-api/internal/services/progress"
	"github.com/KirkDiggler/brainmon-api/internal/testutils/builders"
)

const bufSize = 1024 * 1024

type HandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockEncounter  *encountermock.MockService
	mockCollection *collectionmock.MockService
	mockProgress   *v1alpha1mock.MockProgressSource

	server *grpc.Server
	conn   *grpc.ClientConn
	client *v1alpha1.Client
	ctx    context.Context
	cancel context.CancelFunc
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockEncounter = encountermock.NewMockService(s.ctrl)
	s.mockCollection = collectionmock.NewMockService(s.ctrl)
	s.mockProgress = v1alpha1mock.NewMockProgressSource(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		EncounterService:  s.mockEncounter,
		CollectionService: s.mockCollection,
		Progress:          s.mockProgress,
	})
	s.Require().NoError(err)

	lis := bufconn.Listen(bufSize)
	s.server = grpc.NewServer()
	v1alpha1.RegisterBrainmonServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(lis)
	}()

	s.conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)

	s.client = v1alpha1.NewClient(s.conn)
	s.ctx, s.cancel = context.WithTimeout(context.Background(), 5*time.Second)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.cancel()
	s.Require().NoError(s.conn.Close())
	s.server.Stop()
}

func (s *HandlerTestSuite) request(fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) requireCode(err error, code codes.Code) {
	s.Require().Error(err)
	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(code, st.Code())
}

func (s *HandlerTestSuite) battleState() *encounter.BattleState {
	exp := 112
	return &encounter.BattleState{
		EncounterID: "enc_1",
		BiomeID:     "plains",
		Species:     "eevee",
		Category:    "General",
		CategoryID:  9,
		Difficulty:  brainmon.DifficultyEasy,
		CombatPower: 260,
		Encounter: &brainmon.Encounter{
			PokedexID:      133,
			Species:        "eevee",
			BaseExperience: &exp,
			Stats:          []brainmon.Stat{{Name: brainmon.StatHP, Base: 55}},
			Types:          []string{"normal"},
			SpriteURL:      "https://img.example/eevee.png",
		},
		Question: &brainmon.Question{
			Text:          "What is the capital of France?",
			Answers:       []string{"Lyon", "Paris"},
			CorrectAnswer: "Paris",
			Category:      "General Knowledge",
			Difficulty:    brainmon.DifficultyEasy,
		},
	}
}

func (s *HandlerTestSuite) TestNewHandlerRequiresDependencies() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))

	_, err = v1alpha1.NewHandler(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestStartEncounter() {
	s.mockEncounter.EXPECT().
		StartEncounter(gomock.Any(), &encounter.StartEncounterInput{BiomeID: "forest"}).
		Return(&encounter.StartEncounterOutput{
			EncounterID: "enc_1",
			Species:     "tangela",
			Category:    "General",
			CategoryID:  9,
			Result:      task.Completed(nil),
		}, nil)

	resp, err := s.client.Call(s.ctx, v1alpha1.MethodStartEncounter, s.request(map[string]any{"biome_id": " forest "}))
	s.Require().NoError(err)

	fields := resp.GetFields()
	s.Equal("enc_1", fields["encounter_id"].GetStringValue())
	s.Equal("tangela", fields["species"].GetStringValue())
	s.Equal(float64(9), fields["category_id"].GetNumberValue())
	s.NotContains(fields, "state")
}

func (s *HandlerTestSuite) TestStartEncounterWaitReturnsState() {
	s.mockEncounter.EXPECT().
		StartEncounter(gomock.Any(), &encounter.StartEncounterInput{BiomeID: "plains"}).
		Return(&encounter.StartEncounterOutput{
			EncounterID: "enc_1",
			Species:     "eevee",
			Result:      task.Completed(nil),
		}, nil)
	s.mockEncounter.EXPECT().
		GetBattleState(gomock.Any(), gomock.Any()).
		Return(&encounter.GetBattleStateOutput{State: s.battleState()}, nil)

	resp, err := s.client.Call(s.ctx, v1alpha1.MethodStartEncounter, s.request(map[string]any{
		"biome_id": "plains",
		"wait":     true,
	}))
	s.Require().NoError(err)

	state := resp.GetFields()["state"].GetStructValue().GetFields()
	s.Require().NotNil(state)
	s.Equal("easy", state["difficulty"].GetStringValue())
	s.Equal(float64(260), state["combat_power"].GetNumberValue())

	enc := state["encounter"].GetStructValue().GetFields()
	s.Equal("Eevee", enc["display_name"].GetStringValue())
	s.Equal(float64(112), enc["base_experience"].GetNumberValue())
	s.Equal(float64(55), enc["stats"].GetStructValue().GetFields()["hp"].GetNumberValue())

	question := state["question"].GetStructValue().GetFields()
	s.Equal("What is the capital of France?", question["text"].GetStringValue())
	s.Len(question["answers"].GetListValue().GetValues(), 2)
	s.NotContains(question, "correct_answer")
}

func (s *HandlerTestSuite) TestStartEncounterWaitReportsFetchFailureInState() {
	failed := &encounter.BattleState{
		EncounterID: "enc_1",
		Species:     "eevee",
		Difficulty:  encounter.DifficultyLoading,
		SearchError: true,
	}
	s.mockEncounter.EXPECT().
		StartEncounter(gomock.Any(), gomock.Any()).
		Return(&encounter.StartEncounterOutput{
			EncounterID: "enc_1",
			Species:     "eevee",
			Result:      task.Completed(errors.Unavailable("pokeapi down")),
		}, nil)
	s.mockEncounter.EXPECT().
		GetBattleState(gomock.Any(), gomock.Any()).
		Return(&encounter.GetBattleStateOutput{State: failed}, nil)

	resp, err := s.client.Call(s.ctx, v1alpha1.MethodStartEncounter, s.request(map[string]any{"wait": true}))
	s.Require().NoError(err)

	state := resp.GetFields()["state"].GetStructValue().GetFields()
	s.True(state["search_error"].GetBoolValue())
	s.IsType(&structpb.Value_NullValue{}, state["encounter"].GetKind())
}

func (s *HandlerTestSuite) TestCheckAnswer() {
	s.mockEncounter.EXPECT().
		CheckAnswer(gomock.Any(), &encounter.CheckAnswerInput{Answer: "Paris"}).
		Return(&encounter.CheckAnswerOutput{Outcome: encounter.OutcomeCorrect}, nil)

	resp, err := s.client.Call(s.ctx, v1alpha1.MethodCheckAnswer, s.request(map[string]any{"answer": "Paris"}))
	s.Require().NoError(err)
	s.Equal("correct", resp.GetFields()["outcome"].GetStringValue())
	s.True(resp.GetFields()["correct"].GetBoolValue())
}

func (s *HandlerTestSuite) TestCheckAnswerRequiresAnswer() {
	_, err := s.client.Call(s.ctx, v1alpha1.MethodCheckAnswer, nil)
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestCheckAnswerWithoutQuestion() {
	s.mockEncounter.EXPECT().
		CheckAnswer(gomock.Any(), gomock.Any()).
		Return(nil, errors.FailedPrecondition("no active question"))

	_, err := s.client.Call(s.ctx, v1alpha1.MethodCheckAnswer, s.request(map[string]any{"answer": "Paris"}))
	s.requireCode(err, codes.FailedPrecondition)
}

func (s *HandlerTestSuite) TestCaptureMonster() {
	monster := builders.NewMonsterBuilder().WithID(0).Build()
	s.mockEncounter.EXPECT().
		CaptureCurrentMonster(gomock.Any(), gomock.Any()).
		Return(&encounter.CaptureCurrentMonsterOutput{
			Captured: true,
			Monster:  monster,
			Result:   task.Completed(nil),
		}, nil)

	resp, err := s.client.Call(s.ctx, v1alpha1.MethodCaptureMonster, nil)
	s.Require().NoError(err)

	s.True(resp.GetFields()["captured"].GetBoolValue())
	got := resp.GetFields()["monster"].GetStructValue().GetFields()
	s.Equal("pikachu", got["species"].GetStringValue())
	s.Equal(float64(25), got["pokedex_id"].GetNumberValue())
}

func (s *HandlerTestSuite) TestCaptureMonsterWithoutEncounter() {
	s.mockEncounter.EXPECT().
		CaptureCurrentMonster(gomock.Any(), gomock.Any()).
		Return(&encounter.CaptureCurrentMonsterOutput{Result: task.Completed(nil)}, nil)

	resp, err := s.client.Call(s.ctx, v1alpha1.MethodCaptureMonster, nil)
	s.Require().NoError(err)
	s.False(resp.GetFields()["captured"].GetBoolValue())
	s.IsType(&structpb.Value_NullValue{}, resp.GetFields()["monster"].GetKind())
}

func (s *HandlerTestSuite) TestCaptureMonsterWriteFailure() {
	s.mockEncounter.EXPECT().
		CaptureCurrentMonster(gomock.Any(), gomock.Any()).
		Return(&encounter.CaptureCurrentMonsterOutput{
			Captured: true,
			Monster:  builders.NewMonsterBuilder().Build(),
			Result:   task.Completed(errors.Unavailable("store offline")),
		}, nil)

	_, err := s.client.Call(s.ctx, v1alpha1.MethodCaptureMonster, nil)
	s.requireCode(err, codes.Unavailable)
}

func (s *HandlerTestSuite) TestAbandonEncounter() {
	s.mockEncounter.EXPECT().
		AbandonEncounter(gomock.Any(), gomock.Any()).
		Return(&encounter.AbandonEncounterOutput{}, nil)

	_, err := s.client.Call(s.ctx, v1alpha1.MethodAbandonEncounter, nil)
	s.NoError(err)
}

func (s *HandlerTestSuite) TestListMonsters() {
	s.mockCollection.EXPECT().
		List(gomock.Any(), &collection.ListInput{}).
		Return(&collection.ListOutput{Monsters: []*brainmon.Monster{
			builders.NewMonsterBuilder().WithID(1).WithSpecies("bulbasaur").Build(),
			builders.NewMonsterBuilder().WithID(2).Build(),
		}}, nil)

	resp, err := s.client.Call(s.ctx, v1alpha1.MethodListMonsters, nil)
	s.Require().NoError(err)

	list := resp.GetFields()["monsters"].GetListValue().GetValues()
	s.Require().Len(list, 2)
	first := list[0].GetStructValue().GetFields()
	s.Equal(float64(1), first["id"].GetNumberValue())
	s.Equal("Bulbasaur", first["name"].GetStringValue())
	s.Equal("2024-01-01T00:00:00Z", first["caught_at"].GetStringValue())
}

func (s *HandlerTestSuite) TestListMonstersPokedexOrder() {
	s.mockCollection.EXPECT().
		List(gomock.Any(), &collection.ListInput{}).
		Return(&collection.ListOutput{Monsters: []*brainmon.Monster{
			builders.NewMonsterBuilder().WithID(1).WithSpecies("pikachu").Build(),
			builders.NewMonsterBuilder().WithID(2).WithSpecies("bulbasaur").Build(),
		}}, nil)

	resp, err := s.client.Call(s.ctx, v1alpha1.MethodListMonsters, s.request(map[string]any{"sort": "pokedex"}))
	s.Require().NoError(err)

	list := resp.GetFields()["monsters"].GetListValue().GetValues()
	s.Require().Len(list, 2)
	s.Equal("bulbasaur", list[0].GetStructValue().GetFields()["species"].GetStringValue())
	s.Equal(float64(1), list[0].GetStructValue().GetFields()["pokedex_id"].GetNumberValue())
	s.Equal("pikachu", list[1].GetStructValue().GetFields()["species"].GetStringValue())
}

func (s *HandlerTestSuite) TestListMonstersRejectsUnknownSort() {
	_, err := s.client.Call(s.ctx, v1alpha1.MethodListMonsters, s.request(map[string]any{"sort": "power"}))
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestGetMonsterNotFound() {
	s.mockCollection.EXPECT().
		Get(gomock.Any(), &collection.GetInput{ID: 42}).
		Return(nil, errors.NotFound("monster not found"))

	_, err := s.client.Call(s.ctx, v1alpha1.MethodGetMonster, s.request(map[string]any{"monster_id": 42}))
	s.requireCode(err, codes.NotFound)
}

func (s *HandlerTestSuite) TestGetMonsterRejectsBadID() {
	testCases := []struct {
		name string
		req  map[string]any
	}{
		{name: "missing", req: map[string]any{}},
		{name: "zero", req: map[string]any{"monster_id": 0}},
		{name: "fractional", req: map[string]any{"monster_id": 1.5}},
		{name: "string", req: map[string]any{"monster_id": "7"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.client.Call(s.ctx, v1alpha1.MethodGetMonster, s.request(tc.req))
			s.requireCode(err, codes.InvalidArgument)
		})
	}
}

func (s *HandlerTestSuite) TestRenameMonster() {
	s.mockEncounter.EXPECT().
		UpdateMonsterName(gomock.Any(), &encounter.UpdateMonsterNameInput{MonsterID: 7, Name: " Sparky "}).
		Return(&encounter.UpdateMonsterNameOutput{Result: task.Completed(nil)}, nil)
	s.mockCollection.EXPECT().
		Get(gomock.Any(), &collection.GetInput{ID: 7}).
		Return(&collection.GetOutput{Monster: builders.NewMonsterBuilder().WithID(7).WithName("Sparky").Build()}, nil)

	resp, err := s.client.Call(s.ctx, v1alpha1.MethodRenameMonster, s.request(map[string]any{
		"monster_id": 7,
		"name":       " Sparky ",
	}))
	s.Require().NoError(err)
	s.Equal("Sparky", resp.GetFields()["name"].GetStringValue())
}

func (s *HandlerTestSuite) TestRenameMonsterBlankName() {
	s.mockEncounter.EXPECT().
		UpdateMonsterName(gomock.Any(), gomock.Any()).
		Return(nil, errors.InvalidArgument("validation failed: Name: failed required"))

	_, err := s.client.Call(s.ctx, v1alpha1.MethodRenameMonster, s.request(map[string]any{
		"monster_id": 7,
		"name":       "   ",
	}))
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestDeleteMonster() {
	s.mockEncounter.EXPECT().
		DeleteMonster(gomock.Any(), &encounter.DeleteMonsterInput{MonsterID: 3}).
		Return(&encounter.DeleteMonsterOutput{Result: task.Completed(nil)}, nil)

	resp, err := s.client.Call(s.ctx, v1alpha1.MethodDeleteMonster, s.request(map[string]any{"monster_id": 3}))
	s.Require().NoError(err)
	s.Equal(float64(3), resp.GetFields()["monster_id"].GetNumberValue())
}

func (s *HandlerTestSuite) TestGetWorldMap() {
	plains, ok := brainmon.BiomeByID("plains")
	s.Require().True(ok)
	s.mockProgress.EXPECT().WorldMap().Return([]progress.BiomeProgress{
		{Biome: plains, Capacity: 21, Caught: 3, Unlocked: true},
	})

	resp, err := s.client.Call(s.ctx, v1alpha1.MethodGetWorldMap, nil)
	s.Require().NoError(err)

	biomes := resp.GetFields()["biomes"].GetListValue().GetValues()
	s.Require().Len(biomes, 1)
	entry := biomes[0].GetStructValue().GetFields()
	s.Equal("plains", entry["id"].GetStringValue())
	s.Equal(float64(21), entry["capacity"].GetNumberValue())
	s.Equal(float64(3), entry["caught"].GetNumberValue())
	s.True(entry["unlocked"].GetBoolValue())
	s.False(entry["complete"].GetBoolValue())
}

func (s *HandlerTestSuite) TestGetTrainerStats() {
	strongest := builders.NewMonsterBuilder().WithID(9).WithCombatPower(555).Build()
	s.mockProgress.EXPECT().Stats().Return(progress.Stats{
		TotalCaught:       5,
		UniqueSpecies:     4,
		CompletionPercent: 4.0 / 151 * 100,
		TotalCP:           1200,
		FavouriteType:     "electric",
		Strongest:         strongest,
	})

	resp, err := s.client.Call(s.ctx, v1alpha1.MethodGetTrainerStats, nil)
	s.Require().NoError(err)

	fields := resp.GetFields()
	s.Equal(float64(5), fields["total_caught"].GetNumberValue())
	s.Equal("electric", fields["favourite_type"].GetStringValue())
	s.True(fields["milestone"].GetBoolValue())
	s.Equal(float64(555), fields["strongest"].GetStructValue().GetFields()["combat_power"].GetNumberValue())
}

func (s *HandlerTestSuite) TestWatchMonsters() {
	ch := make(chan []*brainmon.Monster, 2)
	ch <- nil
	ch <- []*brainmon.Monster{builders.NewMonsterBuilder().WithID(1).Build()}
	close(ch)

	var recv <-chan []*brainmon.Monster = ch
	s.mockCollection.EXPECT().WatchAll(gomock.Any()).Return(recv, nil)

	stream, err := s.client.Watch(s.ctx, v1alpha1.MethodWatchMonsters, nil)
	s.Require().NoError(err)

	first, err := stream.Recv()
	s.Require().NoError(err)
	s.Empty(first.GetFields()["monsters"].GetListValue().GetValues())

	second, err := stream.Recv()
	s.Require().NoError(err)
	s.Len(second.GetFields()["monsters"].GetListValue().GetValues(), 1)

	_, err = stream.Recv()
	s.Equal(io.EOF, err)
}

func (s *HandlerTestSuite) TestWatchMonstersPokedexOrder() {
	ch := make(chan []*brainmon.Monster, 1)
	ch <- []*brainmon.Monster{
		builders.NewMonsterBuilder().WithID(1).WithSpecies("pikachu").Build(),
		builders.NewMonsterBuilder().WithID(2).WithSpecies("bulbasaur").Build(),
	}
	close(ch)

	var recv <-chan []*brainmon.Monster = ch
	s.mockCollection.EXPECT().WatchAll(gomock.Any()).Return(recv, nil)

	stream, err := s.client.Watch(s.ctx, v1alpha1.MethodWatchMonsters, s.request(map[string]any{"sort": "pokedex"}))
	s.Require().NoError(err)

	msg, err := stream.Recv()
	s.Require().NoError(err)
	list := msg.GetFields()["monsters"].GetListValue().GetValues()
	s.Require().Len(list, 2)
	s.Equal("bulbasaur", list[0].GetStructValue().GetFields()["species"].GetStringValue())

	_, err = stream.Recv()
	s.Equal(io.EOF, err)
}

func (s *HandlerTestSuite) TestWatchMonstersRejectsUnknownSort() {
	stream, err := s.client.Watch(s.ctx, v1alpha1.MethodWatchMonsters, s.request(map[string]any{"sort": "power"}))
	s.Require().NoError(err)

	_, err = stream.Recv()
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestWatchBattle() {
	ch := make(chan *encounter.BattleState, 1)
	ch <- s.battleState()
	close(ch)

	var recv <-chan *encounter.BattleState = ch
	s.mockEncounter.EXPECT().WatchBattleState(gomock.Any()).Return(recv, nil)

	stream, err := s.client.Watch(s.ctx, v1alpha1.MethodWatchBattle, nil)
	s.Require().NoError(err)

	msg, err := stream.Recv()
	s.Require().NoError(err)
	s.Equal("enc_1", msg.GetFields()["encounter_id"].GetStringValue())

	_, err = stream.Recv()
	s.Equal(io.EOF, err)
}

func (s *HandlerTestSuite) TestWatchWorldMap() {
	ch := make(chan []progress.BiomeProgress, 1)
	ch <- []progress.BiomeProgress{{Capacity: 21}}
	close(ch)

	var recv <-chan []progress.BiomeProgress = ch
	s.mockProgress.EXPECT().WatchWorldMap(gomock.Any()).Return(recv)

	stream, err := s.client.Watch(s.ctx, v1alpha1.MethodWatchWorldMap, nil)
	s.Require().NoError(err)

	msg, err := stream.Recv()
	s.Require().NoError(err)
	s.Len(msg.GetFields()["biomes"].GetListValue().GetValues(), 1)

	_, err = stream.Recv()
	s.Equal(io.EOF, err)
}

func (s *HandlerTestSuite) TestWatchUnknownStream() {
	_, err := s.client.Watch(s.ctx, "WatchNothing", nil)
	s.requireCode(err, codes.Unimplemented)
}
