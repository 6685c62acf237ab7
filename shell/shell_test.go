package shell

import (
	"testing"

	"github.com/matryer/is"
)

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"new -pool eatpotatoes",
			&shellcmd{"new", nil, map[string]string{"pool": "eatpotatoes"}},
			nil},
		{"help scores",
			&shellcmd{"help", []string{"scores"}, map[string]string{}},
			nil},
		{"setconfig lexicon csw21 ",
			&shellcmd{"setconfig",
				[]string{"lexicon", "csw21"},
				map[string]string{}},
			nil,
		},
		{"new -pool",
			nil, errWrongOptionSyntax},
		{"potato",
			&shellcmd{"potato", nil, map[string]string{}},
			nil},
	}
	for _, tc := range cases {
		cmd, err := extractFields(tc.line)
		is.Equal(cmd, tc.expCmd)
		is.Equal(err, tc.expErr)
	}
}
