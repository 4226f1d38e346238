package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour-console/internal/apperror"
	"github.com/rocketscienceinc/connectfour-console/internal/config"
	"github.com/rocketscienceinc/connectfour-console/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-console/internal/entity"
	mockedUseCase "github.com/rocketscienceinc/connectfour-console/mocks/usecase"
)

var errTerminalGone = errors.New("terminal gone")

var bounds = config.Board{MinDimension: 4, MaxDimension: 15}

type mocks struct {
	prompter      *mockedUseCase.MockprompterDep
	renderer      *mockedUseCase.MockrendererDep
	reporter      *mockedUseCase.MockreporterDep
	playerService *mockedUseCase.MockplayerServiceDep

	playerA *entity.Player
	playerB *entity.Player
}

func newMocks(t *testing.T) *mocks {
	t.Helper()

	return &mocks{
		prompter:      mockedUseCase.NewMockprompterDep(t),
		renderer:      mockedUseCase.NewMockrendererDep(t),
		reporter:      mockedUseCase.NewMockreporterDep(t),
		playerService: mockedUseCase.NewMockplayerServiceDep(t),

		playerA: &entity.Player{ID: "a", Name: "Ann", Chip: entity.ChipX},
		playerB: &entity.Player{ID: "b", Name: "Bob", Chip: entity.ChipO},
	}
}

func (that *mocks) useCase() GameUseCase {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewGameUseCase(logger, bounds, that.prompter, that.renderer, that.reporter, that.playerService)
}

// expectSetup wires the answers of a successful setup.
func (that *mocks) expectSetup(rows, columns int) {
	that.prompter.EXPECT().ReadPlayerName(mock.Anything, 1).Return("Ann", nil).Once()
	that.prompter.EXPECT().ReadPlayerName(mock.Anything, 2).Return("Bob", nil).Once()
	that.prompter.EXPECT().ReadChip(mock.Anything, "Ann").Return(entity.ChipX, nil).Once()
	that.playerService.EXPECT().CreatePlayers("Ann", "Bob", entity.ChipX).Return(that.playerA, that.playerB, nil).Once()
	that.reporter.EXPECT().AnnounceChips(that.playerA, that.playerB).Return(nil).Once()
	that.prompter.EXPECT().ReadDimension(mock.Anything, "rows", 4, 15).Return(rows, nil).Once()
	that.prompter.EXPECT().ReadDimension(mock.Anything, "columns", 4, 15).Return(columns, nil).Once()
	that.renderer.EXPECT().Render(mock.AnythingOfType("*connectfour.Board")).Return(nil)
}

// expectColumns answers column prompts in order and records who was asked.
func (that *mocks) expectColumns(columns []int, askedBy *[]string) {
	that.prompter.EXPECT().
		ReadColumn(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, player *entity.Player, _ *connectfour.Board) (int, error) {
			if len(columns) == 0 {
				return 0, apperror.ErrInputClosed
			}
			next := columns[0]
			columns = columns[1:]
			*askedBy = append(*askedBy, player.Name)
			return next, nil
		})
}

func TestGameUseCase_Setup(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates players and an empty board", func(t *testing.T) {
		// Given: answers for a 6x7 game
		m := newMocks(t)
		m.expectSetup(6, 7)
		useCase := m.useCase()

		// When: the game is set up
		err := useCase.Setup(ctx)

		// Then: the board has the chosen size and the first player starts
		require.NoError(t, err)
		assert.Equal(t, entity.Dimensions{Rows: 6, Columns: 7}, useCase.Board().Dimensions())
		assert.False(t, useCase.Board().IsFull())
		assert.Equal(t, m.playerA, useCase.CurrentPlayer())
	})

	t.Run("Returns error if the chip can not be read", func(t *testing.T) {
		// Given: the console closes while asking for the chip
		m := newMocks(t)
		m.prompter.EXPECT().ReadPlayerName(mock.Anything, 1).Return("Ann", nil).Once()
		m.prompter.EXPECT().ReadPlayerName(mock.Anything, 2).Return("Bob", nil).Once()
		m.prompter.EXPECT().ReadChip(mock.Anything, "Ann").Return(entity.ChipNone, apperror.ErrInputClosed).Once()
		useCase := m.useCase()

		// When: the game is set up
		err := useCase.Setup(ctx)

		// Then: the error is passed on and no board exists
		require.ErrorIs(t, err, apperror.ErrInputClosed)
		assert.Nil(t, useCase.Board())
	})

	t.Run("Returns error if players can not be created", func(t *testing.T) {
		// Given: the player service rejects the names
		m := newMocks(t)
		m.prompter.EXPECT().ReadPlayerName(mock.Anything, 1).Return("Ann", nil).Once()
		m.prompter.EXPECT().ReadPlayerName(mock.Anything, 2).Return("Bob", nil).Once()
		m.prompter.EXPECT().ReadChip(mock.Anything, "Ann").Return(entity.ChipX, nil).Once()
		m.playerService.EXPECT().CreatePlayers("Ann", "Bob", entity.ChipX).Return(nil, nil, apperror.ErrInvalidPlayer).Once()
		useCase := m.useCase()

		// When: the game is set up
		err := useCase.Setup(ctx)

		// Then: ErrInvalidPlayer should be returned
		require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
	})

	t.Run("Returns ErrConfiguration for dimensions outside the bounds", func(t *testing.T) {
		// Given: a prompter that lets an oversized board through
		m := newMocks(t)
		m.prompter.EXPECT().ReadPlayerName(mock.Anything, 1).Return("Ann", nil).Once()
		m.prompter.EXPECT().ReadPlayerName(mock.Anything, 2).Return("Bob", nil).Once()
		m.prompter.EXPECT().ReadChip(mock.Anything, "Ann").Return(entity.ChipX, nil).Once()
		m.playerService.EXPECT().CreatePlayers("Ann", "Bob", entity.ChipX).Return(m.playerA, m.playerB, nil).Once()
		m.reporter.EXPECT().AnnounceChips(m.playerA, m.playerB).Return(nil).Once()
		m.prompter.EXPECT().ReadDimension(mock.Anything, "rows", 4, 15).Return(6, nil).Once()
		m.prompter.EXPECT().ReadDimension(mock.Anything, "columns", 4, 15).Return(20, nil).Once()
		useCase := m.useCase()

		// When: the game is set up
		err := useCase.Setup(ctx)

		// Then: ErrConfiguration should be returned
		require.ErrorIs(t, err, apperror.ErrConfiguration)
		assert.Nil(t, useCase.Board())
	})
}

func TestGameUseCase_PlayRound(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns ErrGameNotSetUp before setup", func(t *testing.T) {
		// Given: a game that was never set up
		useCase := newMocks(t).useCase()

		// When: a round is played
		_, err := useCase.PlayRound(ctx)

		// Then: ErrGameNotSetUp should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotSetUp)
	})

	t.Run("Players alternate while the game goes on", func(t *testing.T) {
		// Given: a set up 6x7 game
		m := newMocks(t)
		m.expectSetup(6, 7)

		var askedBy []string
		m.expectColumns([]int{3, 3, 4}, &askedBy)

		useCase := m.useCase()
		require.NoError(t, useCase.Setup(ctx))

		for i := 0; i < 3; i++ {
			// When: a round is played
			outcome, err := useCase.PlayRound(ctx)

			// Then: the game continues
			require.NoError(t, err)
			assert.Equal(t, entity.OutcomeContinue, outcome)
		}

		// Then: Ann and Bob took turns and the chips landed where expected
		assert.Equal(t, []string{"Ann", "Bob", "Ann"}, askedBy)
		assert.Equal(t, m.playerB, useCase.CurrentPlayer())

		tile, err := useCase.Board().TileAt(3, 1)
		require.NoError(t, err)
		assert.Equal(t, entity.TileO, tile)
	})

	t.Run("Returns error if the column is rejected by the board", func(t *testing.T) {
		// Given: a prompter that skips validation
		m := newMocks(t)
		m.expectSetup(4, 4)

		var askedBy []string
		m.expectColumns([]int{9}, &askedBy)

		useCase := m.useCase()
		require.NoError(t, useCase.Setup(ctx))

		// When: a round is played
		_, err := useCase.PlayRound(ctx)

		// Then: ErrInvalidMove should be returned and the turn stays
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, m.playerA, useCase.CurrentPlayer())
	})
}

func TestGameUseCase_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("Vertical win ends the game", func(t *testing.T) {
		// Given: Ann stacks column 0 while Bob plays column 1
		m := newMocks(t)
		m.expectSetup(6, 7)

		var askedBy []string
		m.expectColumns([]int{0, 1, 0, 1, 0, 1, 0}, &askedBy)
		m.reporter.EXPECT().AnnounceOutcome(entity.OutcomeWin, m.playerA).Return(nil).Once()

		useCase := m.useCase()

		// When: the game is run
		outcome, winner, err := useCase.Run(ctx)

		// Then: Ann wins on her fourth chip
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeWin, outcome)
		assert.Equal(t, m.playerA, winner)
		assert.Len(t, askedBy, 7)

		// Then: further rounds are refused
		outcome, err = useCase.PlayRound(ctx)
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, entity.OutcomeWin, outcome)
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: a 4x4 game played so no four line up
		m := newMocks(t)
		m.expectSetup(4, 4)

		var askedBy []string
		m.expectColumns([]int{
			0, 1, 2, 3,
			0, 1, 2, 3,
			1, 0, 3, 2,
			1, 0, 3, 2,
		}, &askedBy)
		m.reporter.EXPECT().AnnounceOutcome(entity.OutcomeDraw, m.playerB).Return(nil).Once()

		useCase := m.useCase()

		// When: the game is run
		outcome, winner, err := useCase.Run(ctx)

		// Then: the game is drawn with no winner
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeDraw, outcome)
		assert.Nil(t, winner)
		assert.True(t, useCase.Board().IsFull())
	})

	t.Run("Returns error if the console closes mid game", func(t *testing.T) {
		// Given: the console runs out after two moves
		m := newMocks(t)
		m.expectSetup(6, 7)

		var askedBy []string
		m.expectColumns([]int{0, 1}, &askedBy)

		useCase := m.useCase()

		// When: the game is run
		_, winner, err := useCase.Run(ctx)

		// Then: ErrInputClosed is passed on
		require.ErrorIs(t, err, apperror.ErrInputClosed)
		assert.Nil(t, winner)
	})

	t.Run("Returns error if rendering fails", func(t *testing.T) {
		// Given: a terminal that can not be written to
		m := newMocks(t)
		m.prompter.EXPECT().ReadPlayerName(mock.Anything, 1).Return("Ann", nil).Once()
		m.prompter.EXPECT().ReadPlayerName(mock.Anything, 2).Return("Bob", nil).Once()
		m.prompter.EXPECT().ReadChip(mock.Anything, "Ann").Return(entity.ChipX, nil).Once()
		m.playerService.EXPECT().CreatePlayers("Ann", "Bob", entity.ChipX).Return(m.playerA, m.playerB, nil).Once()
		m.reporter.EXPECT().AnnounceChips(m.playerA, m.playerB).Return(nil).Once()
		m.prompter.EXPECT().ReadDimension(mock.Anything, "rows", 4, 15).Return(6, nil).Once()
		m.prompter.EXPECT().ReadDimension(mock.Anything, "columns", 4, 15).Return(7, nil).Once()
		m.renderer.EXPECT().Render(mock.Anything).Return(errTerminalGone).Once()

		useCase := m.useCase()

		// When: the game is run
		_, _, err := useCase.Run(ctx)

		// Then: the render error is passed on
		require.ErrorIs(t, err, errTerminalGone)
	})

	t.Run("Stops when the context is canceled", func(t *testing.T) {
		// Given: a context canceled right after setup
		m := newMocks(t)
		cancelCtx, cancel := context.WithCancel(ctx)

		m.prompter.EXPECT().ReadPlayerName(mock.Anything, 1).Return("Ann", nil).Once()
		m.prompter.EXPECT().ReadPlayerName(mock.Anything, 2).Return("Bob", nil).Once()
		m.prompter.EXPECT().ReadChip(mock.Anything, "Ann").Return(entity.ChipX, nil).Once()
		m.playerService.EXPECT().CreatePlayers("Ann", "Bob", entity.ChipX).Return(m.playerA, m.playerB, nil).Once()
		m.reporter.EXPECT().AnnounceChips(m.playerA, m.playerB).Return(nil).Once()
		m.prompter.EXPECT().ReadDimension(mock.Anything, "rows", 4, 15).Return(6, nil).Once()
		m.prompter.EXPECT().ReadDimension(mock.Anything, "columns", 4, 15).Return(7, nil).Once()
		m.renderer.EXPECT().Render(mock.Anything).
			RunAndReturn(func(_ *connectfour.Board) error {
				cancel()
				return nil
			}).Once()

		useCase := m.useCase()

		// When: the game is run
		_, winner, err := useCase.Run(cancelCtx)

		// Then: the context error is returned
		require.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, winner)
	})
}
