package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	// Test cases
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd", "-a", "http://api.local:9090", "-t", "30"}, expectPanic: false,
			expected: &Config{APIBaseURL: "http://api.local:9090", RequestTimeout: 30 * time.Second}},
		{name: "Test2 username and bucket", args: []string{"cmd", "-u", "agronomist@test.com", "-b", "farm-reports", "-e", "out"}, expectPanic: false,
			expected: &Config{Username: "agronomist@test.com", S3Bucket: "farm-reports", ExportDir: "out"}},
		{name: "Test3 incorrect timeout", args: []string{"cmd", "-a", "http://api.local:9090", "-t", "abc"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {

				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
