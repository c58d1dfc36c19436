package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/block-breaker/internal/audio"
	"github.com/vovakirdan/block-breaker/internal/core"
	"github.com/vovakirdan/block-breaker/internal/platform/tui"
	"github.com/vovakirdan/block-breaker/internal/registry"
)

var (
	flagStage  string
	flagSounds string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play [stage]",
	Short: "Play a stage",
	Long: `Start playing the given stage (default: classic).

Controls:
  A/D, Left/Right  - Move paddle
  Space            - Launch the ball, fire lasers
  P                - Pause
  R                - Restart (after game over)
  B/Esc            - Back to stage menu (paused or finished)
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More hearts, wider paddle, slower ball
  normal - Default tuning
  hard   - Fewer hearts, narrow paddle, faster ball
  fixed  - No speed progression

Examples:
  blockbreaker play
  blockbreaker play pyramid --difficulty easy
  blockbreaker play --stage wall --sounds ./sounds
  blockbreaker play fortress --mute --log-file bb.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagStage, "stage", "classic", "Stage to play")
	addAudioFlags(playCmd)
}

func addAudioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagSounds, "sounds", "", "Directory with laser.wav, laser_hit.wav, powerup.wav and music.wav")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, args []string) {
	stageID := flagStage
	if len(args) == 1 {
		stageID = args[0]
	}

	if !registry.Exists(stageID) {
		fmt.Fprintf(os.Stderr, "Error: unknown stage %q\n", stageID)
		fmt.Fprintln(os.Stderr, "Run 'blockbreaker list' to see available stages.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(nil)
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	player := openAudio(logger)
	defer player.Close()

	game, err := registry.Create(stageID)
	if err != nil {
		fatal("creating stage: %v", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	_, runErr := tui.Run(game, runtimeConfig(), tui.Options{
		Store:  store,
		Audio:  player,
		Logger: logger,
	})
	if runErr != nil {
		logger.Error("game failed", "error", runErr)
		fatal("running game: %v", runErr)
	}
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// openAudio opens the speaker. Unreadable sound files are fatal; a missing
// audio device only disables sound.
func openAudio(logger *log.Logger) audio.Player {
	player, err := audio.Open(audio.Options{Mute: flagMute, SoundsDir: flagSounds})
	switch {
	case errors.Is(err, audio.ErrNoDevice):
		logger.Warn("audio disabled", "error", err)
	case err != nil:
		fatal("loading sounds: %v", err)
	}
	return player
}
