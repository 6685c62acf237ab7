package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domino14/grabbag/config"
	"github.com/domino14/grabbag/lexicon"
)

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	poolSize := sc.config.GetInt(config.PoolSize)
	var pool *lexicon.LetterPool
	if letters, ok := cmd.options["pool"]; ok {
		letters = strings.ToLower(letters)
		if len(letters) != poolSize {
			return nil, fmt.Errorf("the pool must have exactly %d letters, got %d",
				poolSize, len(letters))
		}
		pool = lexicon.PoolFromString(letters)
	} else {
		pool = lexicon.RandomPool(poolSize)
	}
	sc.startGame(pool)
	return msg(sc.session.ToDisplayText()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.session == nil {
		return nil, errors.New("no game in progress; start one with `new`")
	}
	return msg(sc.session.ToDisplayText()), nil
}

func (sc *ShellController) scores(cmd *shellcmd) (*Response, error) {
	if sc.session == nil {
		return nil, errors.New("no game in progress; start one with `new`")
	}
	return msg(sc.session.Scores().ToDisplayText()), nil
}

func (sc *ShellController) setConfig(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil || len(cmd.args) < 2 {
		return nil, errors.New("usage: setconfig <key> <value>")
	}

	key := cmd.args[0]
	value := cmd.args[1]
	sc.config.Set(key, value)

	err := sc.config.Write()
	if err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}
	return msg(fmt.Sprintf("set config %s to %s and saved to file", key, value)), nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return usage("standard")
	}
	return usageTopic(cmd.args[0])
}

// submit plays a single word. A rejection of any kind scores zero and
// the game continues.
func (sc *ShellController) submit(word string) (*Response, error) {
	if sc.session == nil {
		return nil, errors.New("no game in progress; start one with `new`")
	}
	score := sc.session.SubmitWord(word)
	if score == 0 {
		return msg(fmt.Sprintf("%v doesn't score here. Try another word!", word)), nil
	}
	return msg(fmt.Sprintf("%v scores %d!\n\n%s", word, score,
		sc.session.Scores().ToDisplayText())), nil
}
