package launch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{goos: "darwin", wantName: "open", wantArgs: []string{"r.xlsx"}},
		{goos: "linux", wantName: "xdg-open", wantArgs: []string{"r.xlsx"}},
		{goos: "windows", wantName: "rundll32", wantArgs: []string{"url.dll,FileProtocolHandler", "r.xlsx"}},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args, err := command(tt.goos, "r.xlsx")
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestOpenUnsupportedPlatform(t *testing.T) {
	err := System{GOOS: "plan9"}.Open(context.Background(), "r.xlsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plan9")
}

func TestNop(t *testing.T) {
	var opener Opener = Nop{}
	assert.NoError(t, opener.Open(context.Background(), "r.xlsx"))
}
