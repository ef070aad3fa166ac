package flagschema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		src       string
		expected  []Entry
		expectErr string
	}{
		{
			name: "full flag block",
			src: `
				flag "--disk_usage" {
				  values       = ["percentage", "bytes"]
				  min_args     = 1
				  max_args     = 2
				  command_path = true
				  file_path    = true
				}
			`,
			expected: []Entry{
				{Name: "--disk_usage", Values: []string{"percentage", "bytes"}, MinArgs: 1, MaxArgs: 2, CommandPath: true, FilePath: true},
			},
		},
		{
			name: "values omitted accepts anything",
			src: `
				flag "--config" {
				  min_args    = 1
				  max_args    = 1
				  config_path = true
				}
			`,
			expected: []Entry{
				{Name: "--config", Values: nil, MinArgs: 1, MaxArgs: 1, ConfigPath: true},
			},
		},
		{
			name: "explicit null values accepts anything",
			src: `
				flag "--config" {
				  values   = null
				  min_args = 0
				  max_args = 1
				}
			`,
			expected: []Entry{
				{Name: "--config", Values: nil, MinArgs: 0, MaxArgs: 1},
			},
		},
		{
			name: "empty values accepts nothing",
			src: `
				flag "--quiet" {
				  values   = []
				  min_args = 0
				  max_args = 0
				}
			`,
			expected: []Entry{
				{Name: "--quiet", Values: []string{}, MinArgs: 0, MaxArgs: 0},
			},
		},
		{
			name: "several blocks keep their order",
			src: `
				flag "--time" {
				  values   = ["12-hour", "24-hour"]
				  min_args = 1
				  max_args = 1
				}
				flag "--cpu_load" {
				  values   = ["average", "each"]
				  min_args = 0
				  max_args = 1
				}
			`,
			expected: []Entry{
				{Name: "--time", Values: []string{"12-hour", "24-hour"}, MinArgs: 1, MaxArgs: 1},
				{Name: "--cpu_load", Values: []string{"average", "each"}, MinArgs: 0, MaxArgs: 1},
			},
		},
		{
			name:     "empty manifest",
			src:      ``,
			expected: []Entry{},
		},
		{
			name:      "error - syntax",
			src:       `flag "--battery" {`,
			expectErr: "failed to parse schema manifest",
		},
		{
			name: "error - missing max_args",
			src: `
				flag "--battery" {
				  min_args = 1
				}
			`,
			expectErr: "failed to decode schema manifest",
		},
		{
			name: "error - unknown attribute",
			src: `
				flag "--battery" {
				  min_args = 1
				  max_args = 2
				  colour   = "blue"
				}
			`,
			expectErr: "failed to decode schema manifest",
		},
		{
			name: "error - values is not a list",
			src: `
				flag "--battery" {
				  values   = "time"
				  min_args = 1
				  max_args = 2
				}
			`,
			expectErr: "must be a list of strings",
		},
		{
			name: "error - values holds nested lists",
			src: `
				flag "--battery" {
				  values   = [["time"]]
				  min_args = 1
				  max_args = 2
				}
			`,
			expectErr: "must be a list of strings",
		},
		{
			name: "error - bounds inverted",
			src: `
				flag "--battery" {
				  min_args = 3
				  max_args = 2
				}
			`,
			expectErr: "invalid schema manifest",
		},
		{
			name: "error - duplicate flag blocks",
			src: `
				flag "--battery" {
				  min_args = 1
				  max_args = 2
				}
				flag "--battery" {
				  min_args = 1
				  max_args = 2
				}
			`,
			expectErr: "declared more than once",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			schema, err := Decode([]byte(tc.src), "test.hcl")

			if tc.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectErr)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, schema.Entries()); diff != "" {
				t.Errorf("entries mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
