package grouper

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsFlag(t *testing.T) {
	testCases := []struct {
		token string
		want  bool
	}{
		{token: "--battery", want: true},
		{token: "--", want: true},
		{token: "---triple", want: true},
		{token: "-b", want: false},
		{token: "time", want: false},
		{token: "/home/user/.porpoiseful/config_file.conf", want: false},
		{token: "", want: false},
		{token: "x--battery", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.token, func(t *testing.T) {
			assert.Equal(t, tc.want, IsFlag(tc.token))
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		tokens    []string
		expected  []Group
		expectErr bool
	}{
		{
			name:     "single flag with argument",
			tokens:   []string{"--battery", "time"},
			expected: []Group{{Flag: "--battery", Args: []string{"time"}}},
		},
		{
			name:     "flag without arguments",
			tokens:   []string{"--battery"},
			expected: []Group{{Flag: "--battery", Args: []string{}}},
		},
		{
			name:   "unknown flags are still grouped",
			tokens: []string{"--noot", "--battery", "time"},
			expected: []Group{
				{Flag: "--noot", Args: []string{}},
				{Flag: "--battery", Args: []string{"time"}},
			},
		},
		{
			name:   "several groups keep their order",
			tokens: []string{"--battery", "arg1", "--cpu_temp", "arg2"},
			expected: []Group{
				{Flag: "--battery", Args: []string{"arg1"}},
				{Flag: "--cpu_temp", Args: []string{"arg2"}},
			},
		},
		{
			name:   "arguments keep their order inside a group",
			tokens: []string{"--date", "year-long", "day-short", "month-long", "--time", "24-hour"},
			expected: []Group{
				{Flag: "--date", Args: []string{"year-long", "day-short", "month-long"}},
				{Flag: "--time", Args: []string{"24-hour"}},
			},
		},
		{
			name:   "repeated flag opens a second group",
			tokens: []string{"--cpu_load", "--cpu_load", "each"},
			expected: []Group{
				{Flag: "--cpu_load", Args: []string{}},
				{Flag: "--cpu_load", Args: []string{"each"}},
			},
		},
		{
			name:     "single dash tokens are data",
			tokens:   []string{"--disk_usage", "-1"},
			expected: []Group{{Flag: "--disk_usage", Args: []string{"-1"}}},
		},
		{
			name:      "error - first token is not a flag",
			tokens:    []string{"battery", "--time", "12-hour"},
			expectErr: true,
		},
		{
			name:      "error - program name left in the input",
			tokens:    []string{"/usr/bin/porpoiseful", "--battery"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			groups, err := Parse(tc.tokens)

			// --- Assert ---
			if tc.expectErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, ErrNotAFlag))
				var notAFlag *NotAFlagError
				require.True(t, errors.As(err, &notAFlag))
				assert.Equal(t, tc.tokens[0], notAFlag.Token)
				assert.Nil(t, groups)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, groups); diff != "" {
				t.Errorf("groups mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_EmptyInput(t *testing.T) {
	groups, err := Parse(nil)
	require.NoError(t, err)
	require.NotNil(t, groups)
	assert.Empty(t, groups)

	groups, err = Parse([]string{})
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestParse_DoesNotAliasInput(t *testing.T) {
	tokens := []string{"--battery", "time", "percentage"}

	groups, err := Parse(tokens)
	require.NoError(t, err)

	tokens[1] = "changed"
	groups[0].Args[1] = "mutated"

	assert.Equal(t, []string{"time", "mutated"}, groups[0].Args)
	assert.Equal(t, []string{"--battery", "changed", "percentage"}, tokens)
}

func TestParse_IsDeterministic(t *testing.T) {
	tokens := []string{"--battery", "time", "--ram_usage", "--noot", "x"}

	first, err1 := Parse(tokens)
	second, err2 := Parse(tokens)

	require.NoError(t, err1)
	require.NoError(t, err2)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated Parse differs (-first +second):\n%s", diff)
	}
}

func TestGroup_Tokens(t *testing.T) {
	g := Group{Flag: "--battery", Args: []string{"time"}}
	assert.Equal(t, []string{"--battery", "time"}, g.Tokens())

	bare := Group{Flag: "--battery"}
	assert.Equal(t, []string{"--battery"}, bare.Tokens())
}

func TestNotAFlagError_Message(t *testing.T) {
	err := &NotAFlagError{Token: "battery"}
	assert.Equal(t, `"battery" is not a flag: arguments must start with a flag beginning with "--"`, err.Error())
}
