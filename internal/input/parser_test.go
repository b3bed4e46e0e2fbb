package input

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/trellis/pkg/types"
)

func strPtr(s string) *string { return &s }

func TestParse_EmptyVector(t *testing.T) {
	_, err := Parse(nil, false, false)
	require.ErrorIs(t, err, types.ErrEmptyArgumentVector)
	assert.Equal(t, types.KindEmptyArgumentVector, types.KindOf(err))
}

func TestParse_OptionTokens(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want types.Options
	}{
		{"single short", []string{"app", "-v"}, types.Options{"v": true}},
		{"short twice in cluster", []string{"app", "-vv"}, types.Options{"v": 2}},
		{"short three times in cluster", []string{"app", "-vvv"}, types.Options{"v": 3}},
		{"short repeated across tokens", []string{"app", "-v", "-v"}, types.Options{"v": 2}},
		{"cluster", []string{"app", "-abc"}, types.Options{"a": true, "b": true, "c": true}},
		{"long flag", []string{"app", "--foo"}, types.Options{"foo": true}},
		{"long value", []string{"app", "--foo=bar,baz"}, types.Options{"foo": "bar,baz"}},
		{"long value keeps later equals", []string{"app", "--foo=a=b=c"}, types.Options{"foo": "a=b=c"}},
		{"long empty value", []string{"app", "--foo="}, types.Options{"foo": ""}},
		{"long last wins", []string{"app", "--foo=1", "--foo=2"}, types.Options{"foo": "2"}},
		{"multibyte short names", []string{"app", "-éé"}, types.Options{"é": 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.argv, false, false)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, p.ApplicationOptions); diff != "" {
				t.Errorf("application options mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_ApplicationNameNeverAnOption(t *testing.T) {
	p, err := Parse([]string{"-app", "-x"}, false, false)
	require.NoError(t, err)
	assert.Equal(t, "-app", p.ApplicationName)
	assert.Equal(t, types.Options{"x": true}, p.ApplicationOptions)
}

func TestParse_NonOptionTokens(t *testing.T) {
	tests := []struct {
		name       string
		argv       []string
		command    bool
		subcommand bool
		want       types.ParsedArguments
	}{
		{
			name: "no recognition keeps everything positional",
			argv: []string{"app", "stash", "save", "msg"},
			want: types.ParsedArguments{
				ApplicationName: "app",
				Arguments:       []string{"stash", "save", "msg"},
			},
		},
		{
			name:    "command recognition",
			argv:    []string{"app", "--debug", "stash", "-m", "save"},
			command: true,
			want: types.ParsedArguments{
				ApplicationName:    "app",
				ApplicationOptions: types.Options{"debug": true},
				CommandName:        strPtr("stash"),
				CommandOptions:     types.Options{"m": true},
				Arguments:          []string{"save"},
			},
		},
		{
			name:       "subcommand recognition",
			argv:       []string{"app", "-q", "stash", "--all", "save", "-m", "msg", "more"},
			subcommand: true,
			want: types.ParsedArguments{
				ApplicationName:    "app",
				ApplicationOptions: types.Options{"q": true},
				CommandName:        strPtr("stash"),
				CommandOptions:     types.Options{"all": true},
				SubcommandName:     strPtr("save"),
				SubcommandOptions:  types.Options{"m": true},
				Arguments:          []string{"msg", "more"},
			},
		},
		{
			name:    "empty tokens are dropped",
			argv:    []string{"app", "", "greet", "", "World", ""},
			command: true,
			want: types.ParsedArguments{
				ApplicationName: "app",
				CommandName:     strPtr("greet"),
				Arguments:       []string{"World"},
			},
		},
		{
			name: "single dash is positional",
			argv: []string{"app", "-"},
			want: types.ParsedArguments{
				ApplicationName: "app",
				Arguments:       []string{"-"},
			},
		},
		{
			name:    "double dash ends option parsing",
			argv:    []string{"app", "-a", "--", "-b", "--c=d"},
			command: true,
			want: types.ParsedArguments{
				ApplicationName:    "app",
				ApplicationOptions: types.Options{"a": true},
				CommandName:        strPtr("-b"),
				Arguments:          []string{"--c=d"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.argv, tt.command, tt.subcommand)
			require.NoError(t, err)

			want := tt.want
			if want.ApplicationOptions == nil {
				want.ApplicationOptions = types.Options{}
			}
			if want.CommandOptions == nil {
				want.CommandOptions = types.Options{}
			}
			if want.SubcommandOptions == nil {
				want.SubcommandOptions = types.Options{}
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("parse mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClone_IsDeep(t *testing.T) {
	p, err := Parse([]string{"app", "-a", "cmd", "x"}, true, false)
	require.NoError(t, err)

	c := clone(p)
	c.ApplicationOptions["a"] = false
	*c.CommandName = "other"
	c.Arguments[0] = "y"

	assert.Equal(t, true, p.ApplicationOptions["a"])
	assert.Equal(t, "cmd", *p.CommandName)
	assert.Equal(t, "x", p.Arguments[0])
}
