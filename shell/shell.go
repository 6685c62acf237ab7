package shell

import (
	"errors"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/grabbag/config"
	"github.com/domino14/grabbag/game"
	"github.com/domino14/grabbag/lexicon"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need a value")
	errQuit              = errors.New("sent quit signal")
)

// A ShellController owns the readline instance and the current game
// session. One controller per process.
type ShellController struct {
	l          *readline.Instance
	config     *config.Config
	execPath   string
	gitVersion string

	dict    *lexicon.Dictionary
	session *game.Session
}

type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

// extractFields tokenizes a command line into the command, its bare
// arguments, and -option value pairs.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := map[string]string{}

	lastWasOption := false
	lastOption := ""
	for _, field := range fields[1:] {
		if strings.HasPrefix(field, "-") {
			lastWasOption = true
			lastOption = field[1:]
			continue
		}
		if lastWasOption {
			options[lastOption] = field
			lastWasOption = false
		} else {
			args = append(args, field)
		}
	}
	if lastWasOption {
		return nil, errWrongOptionSyntax
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stderr())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// NewShellController loads the configured lexicon and starts the first
// game. A missing or empty lexicon is fatal; there is nothing to play
// without one.
func NewShellController(cfg *config.Config, execPath string, gitVersion string) *ShellController {
	sc := &ShellController{
		config:     cfg,
		execPath:   execPath,
		gitVersion: gitVersion,
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mgrabbag>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
		AutoComplete:        NewShellCompleter(),
	})
	if err != nil {
		panic(err)
	}
	sc.l = l

	lexName := cfg.GetString(config.Lexicon)
	sc.dict, err = lexicon.Load(lexName, cfg.LexiconPath())
	if err != nil {
		log.Fatal().Err(err).Str("lexicon", lexName).
			Msg("could not load the lexicon")
	}

	sc.startGame(lexicon.RandomPool(cfg.GetInt(config.PoolSize)))
	sc.showMessage(sc.session.ToDisplayText())
	sc.showMessage("Type any word to play it, or `help` for commands.")
	return sc
}

func (sc *ShellController) startGame(pool *lexicon.LetterPool) {
	sc.session = game.NewSession(pool, sc.dict, sc.config.GetInt(config.TableSize))
	log.Debug().Str("pool", pool.String()).Msg("started new game")
}

func (sc *ShellController) commandSwitch(line string, sig chan os.Signal) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "new":
		return sc.newGame(cmd)
	case "show":
		return sc.show(cmd)
	case "scores":
		return sc.scores(cmd)
	case "setconfig":
		return sc.setConfig(cmd)
	case "help":
		return sc.help(cmd)
	case "exit", "bye", "quit!":
		sig <- syscall.SIGINT
		return nil, errQuit
	default:
		// Anything that isn't a command is a word submission.
		return sc.submit(cmd.cmd)
	}
}

// Loop reads commands until the player quits or interrupts. It is a
// plain iterative loop; termination is signalled through sig.
func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.ToLower(strings.TrimSpace(line))
		if line == "" {
			continue
		}
		resp, err := sc.commandSwitch(line, sig)
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			sc.showError(err)
			continue
		}
		if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msg("Exiting readline loop...")
}

// Execute runs a single command line, for non-interactive invocations.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	line = strings.ToLower(strings.TrimSpace(line))
	resp, err := sc.commandSwitch(line, sig)
	if err != nil {
		if !errors.Is(err, errQuit) {
			sc.showError(err)
		}
		return
	}
	if resp != nil {
		sc.showMessage(resp.message)
	}
}

func (sc *ShellController) Cleanup() {
	log.Debug().Msg("shell cleanup")
}
