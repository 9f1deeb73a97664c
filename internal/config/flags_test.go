package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T, args ...string) {
	t.Helper()

	oldArgs := os.Args
	oldCommandLine := flag.CommandLine
	t.Cleanup(func() {
		os.Args = oldArgs
		flag.CommandLine = oldCommandLine
	})

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	os.Args = append([]string{"relay"}, args...)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want *StructuredConfig
	}{
		{
			name: "no flags",
			args: nil,
			want: &StructuredConfig{},
		},
		{
			name: "server flags",
			args: []string{
				"-a", "127.0.0.1:9000",
				"-request-timeout", "20s",
				"-log-level", "info",
				"-rate-limit", "10",
				"-rate-burst", "20",
				"-metrics",
			},
			want: &StructuredConfig{
				App: App{LogLevel: "info"},
				Server: Server{
					HTTPAddress:    "127.0.0.1:9000",
					RequestTimeout: 20 * time.Second,
					RateLimit:      10,
					RateBurst:      20,
					MetricsEnabled: true,
				},
				Adapter: Adapter{RequestTimeout: 20 * time.Second},
			},
		},
		{
			name: "storage flags",
			args: []string{"-storage", "sqlite", "-sqlite", "relay.db", "-config", "cfg.json"},
			want: &StructuredConfig{
				Storage:      Storage{Driver: DriverSQLite, SQLite: SQLite{Path: "relay.db"}},
				JSONFilePath: "cfg.json",
			},
		},
		{
			name: "client flags stop at subcommand",
			args: []string{"-server-url", "http://relay:8080", "push", "-uuid", "abc"},
			want: &StructuredConfig{
				Adapter: Adapter{HTTPAddress: "http://relay:8080"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t, tt.args...)

			got := ParseFlags()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: "localhost:8080"},
		{name: "ip", input: "10.0.0.1:443", want: "10.0.0.1:443"},
		{name: "empty host", input: ":8080", want: ":8080"},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "port not a number", input: "localhost:http", wantErr: true},
		{name: "port out of range", input: "localhost:70000", wantErr: true},
		{name: "bad ip", input: "example:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Empty(t, addr.String())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, addr.String())
		})
	}
}
