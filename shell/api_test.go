package shell

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/grabbag/config"
	"github.com/domino14/grabbag/lexicon"
)

func testController(t *testing.T) *ShellController {
	t.Helper()
	cfg := &config.Config{}
	err := cfg.Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	dict, err := lexicon.FromReader("test", strings.NewReader("pot\ntap\ntattoo\n"))
	if err != nil {
		t.Fatal(err)
	}
	sc := &ShellController{config: cfg, dict: dict}
	sc.startGame(lexicon.PoolFromString("eatpotato"))
	return sc
}

func TestSubmitCommand(t *testing.T) {
	is := is.New(t)
	sc := testController(t)

	resp, err := sc.submit("pot")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "pot scores 3"))

	resp, err = sc.submit("zzz")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "doesn't score"))
}

func TestSubmitWithoutSession(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	sc.session = nil

	_, err := sc.submit("pot")
	is.True(err != nil)
}

func TestNewGameFixedPool(t *testing.T) {
	is := is.New(t)
	sc := testController(t)

	resp, err := sc.newGame(&shellcmd{
		cmd:     "new",
		options: map[string]string{"pool": "eatpotatoe"},
	})
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "eatpotatoe"))
	is.Equal(sc.session.Pool().String(), "eatpotatoe")
}

func TestNewGameWrongPoolLength(t *testing.T) {
	is := is.New(t)
	sc := testController(t)

	_, err := sc.newGame(&shellcmd{
		cmd:     "new",
		options: map[string]string{"pool": "abc"},
	})
	is.True(err != nil)
}

func TestNewGameClearsScores(t *testing.T) {
	is := is.New(t)
	sc := testController(t)

	_, err := sc.submit("pot")
	is.NoErr(err)
	is.Equal(sc.session.Scores().Len(), 1)

	_, err = sc.newGame(&shellcmd{cmd: "new", options: map[string]string{}})
	is.NoErr(err)
	is.Equal(sc.session.Scores().Len(), 0)
}
