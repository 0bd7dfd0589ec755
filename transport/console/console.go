package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

const clearScreen = "\033[H\033[2J"

type gameManager interface {
	StartGame() (*tictactoe.GameController, error)
	PlayTurn(ctx context.Context, reader usecase.MoveReader) (entity.State, error)
	Rematch() (*tictactoe.GameController, error)
	Game() *tictactoe.GameController
	Players() [2]*entity.Player
	Score() usecase.Score
}

// Settings - answers known before the session starts, zero values are asked for.
type Settings struct {
	Players    int
	PlayerOne  string
	PlayerTwo  string
	Difficulty string
}

// Console - terminal front end. It collects input, draws the board and drives
// the replay loop, all game rules stay in the game manager.
type Console struct {
	logger *slog.Logger
	out    io.Writer
	clear  bool

	in      io.Reader
	once    sync.Once
	lines   chan string
	readErr error
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, clear bool) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		in:     in,
		out:    out,
		clear:  clear,
		lines:  make(chan string),
	}
}

// Setup - builds the two players from settings, asking for whatever is missing.
func (that *Console) Setup(ctx context.Context, settings Settings) (*entity.Player, *entity.Player, error) {
	players := settings.Players
	for players != 1 && players != 2 {
		answer, err := that.ask(ctx, "How many players? (1/2): ")
		if err != nil {
			return nil, nil, err
		}
		players, _ = strconv.Atoi(strings.TrimSpace(answer))
	}

	name, err := that.askName(ctx, settings.PlayerOne, 1)
	if err != nil {
		return nil, nil, err
	}
	first := entity.NewPlayer(name, entity.PlayerX)

	if players == 1 {
		difficulty, err := that.askDifficulty(ctx, settings.Difficulty)
		if err != nil {
			return nil, nil, err
		}

		return first, entity.NewBotPlayer(entity.PlayerO, difficulty), nil
	}

	name, err = that.askName(ctx, settings.PlayerTwo, 2)
	if err != nil {
		return nil, nil, err
	}

	return first, entity.NewPlayer(name, entity.PlayerO), nil
}

func (that *Console) askName(ctx context.Context, configured string, number int) (string, error) {
	if name := strings.TrimSpace(configured); name != "" {
		return name, nil
	}

	answer, err := that.ask(ctx, fmt.Sprintf("Player %d (name): ", number))
	if err != nil {
		return "", err
	}

	if name := strings.TrimSpace(answer); name != "" {
		return name, nil
	}

	return fmt.Sprintf("Player %d", number), nil
}

func (that *Console) askDifficulty(ctx context.Context, configured string) (entity.Difficulty, error) {
	if configured != "" {
		difficulty, err := entity.ParseDifficulty(configured)
		if err == nil {
			return difficulty, nil
		}
		that.logger.Warn("ignoring configured difficulty", "error", err)
	}

	var menu strings.Builder
	menu.WriteString("Game difficulty: \n")
	for i, difficulty := range entity.Difficulties {
		fmt.Fprintf(&menu, "%d - %s\n", i+1, strings.ToUpper(string(difficulty[:1]))+string(difficulty[1:]))
	}
	menu.WriteString("\nSelect Number: ")

	for {
		answer, err := that.ask(ctx, menu.String())
		if err != nil {
			return "", err
		}

		if number, err := strconv.Atoi(strings.TrimSpace(answer)); err == nil {
			if number >= 1 && number <= len(entity.Difficulties) {
				return entity.Difficulties[number-1], nil
			}
			continue
		}

		if difficulty, err := entity.ParseDifficulty(answer); err == nil {
			return difficulty, nil
		}
	}
}

// Run - plays games until the players stop asking for a rematch or the input ends.
func (that *Console) Run(ctx context.Context, manager gameManager) error {
	if _, err := manager.StartGame(); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	for {
		if err := that.playGame(ctx, manager); err != nil {
			return ignoreShutdown(err)
		}

		again, err := that.askReplay(ctx)
		if err != nil {
			return ignoreShutdown(err)
		}

		if !again {
			that.printScore(manager)
			return nil
		}

		if _, err = manager.Rematch(); err != nil {
			return fmt.Errorf("failed to start rematch: %w", err)
		}
	}
}

func (that *Console) playGame(ctx context.Context, manager gameManager) error {
	retry := false

	for {
		if that.clear {
			fmt.Fprint(that.out, clearScreen)
		}

		if retry {
			fmt.Fprintln(that.out, "Select a valid number")
		}

		fmt.Fprintf(that.out, "\n\n%s\n", Render(manager.Game().Snapshot()))

		state, err := manager.PlayTurn(ctx, that)
		if err != nil {
			if apperror.IsRecoverable(err) {
				retry = true
				continue
			}

			return err
		}
		retry = false

		if state.IsFinished() {
			fmt.Fprintf(that.out, "\n\n%s\n", Render(manager.Game().Snapshot()))
			fmt.Fprintf(that.out, "\n\n%s\n", ResultMessage(state))
			return nil
		}
	}
}

// ReadMove - asks a human player for the number of a cell.
func (that *Console) ReadMove(
	ctx context.Context, player *entity.Player, _ [entity.BoardSize][entity.BoardSize]entity.Mark,
) (entity.Cell, error) {
	answer, err := that.ask(ctx, fmt.Sprintf("\n%s: ", player.Name))
	if err != nil {
		return entity.Cell{}, err
	}

	return ParseCell(answer)
}

func (that *Console) askReplay(ctx context.Context) (bool, error) {
	answer, err := that.ask(ctx, "\nDo you wanna play again? 'yes' to continue\n")
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes", "y":
		return true, nil
	default:
		return false, nil
	}
}

func (that *Console) printScore(manager gameManager) {
	score := manager.Score()
	players := manager.Players()

	fmt.Fprintf(that.out, "\nScore after %d game(s): %s %d - %d %s, draws %d\n",
		score.Games,
		players[0].Name, score.Wins[players[0].ID],
		score.Wins[players[1].ID], players[1].Name,
		score.Draws,
	)
}

func (that *Console) ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(that.out, prompt)
	return that.readLine(ctx)
}

// readLine - waits for the next input line or for ctx to be done.
func (that *Console) readLine(ctx context.Context) (string, error) {
	that.once.Do(func() {
		go that.scan()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			return "", that.readErr
		}
		return line, nil
	}
}

func (that *Console) scan() {
	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		that.lines <- scanner.Text()
	}

	that.readErr = io.EOF
	if err := scanner.Err(); err != nil {
		that.readErr = fmt.Errorf("failed to read input: %w", err)
	}

	close(that.lines)
}

// ignoreShutdown - closed input and cancellation end the session normally.
func ignoreShutdown(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}
