package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "short flag with separate value",
			args:    []string{"-c", "conf.json", "-a", "http://localhost:5000"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "double dash form matches single dash listing",
			args:    []string{"--config=alt.json", "-a", "x"},
			allowed: []string{"-config"},
			want:    []string{"--config=alt.json"},
		},
		{
			name:    "unknown flags and positionals ignored",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "flag without value at end is kept",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "dash-starting token is not consumed as a value",
			args:    []string{"-c", "-t", "5"},
			allowed: []string{"-c", "-t"},
			want:    []string{"-c", "-t", "5"},
		},
		{
			name:    "equals value that looks like a flag",
			args:    []string{"-a=--weird"},
			allowed: []string{"-a"},
			want:    []string{"-a=--weird"},
		},
		{
			name:    "repeated flag preserved in order",
			args:    []string{"-l", "debug", "-l", "warn"},
			allowed: []string{"-l"},
			want:    []string{"-l", "debug", "-l", "warn"},
		},
		{
			name:    "empty args",
			args:    nil,
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "/etc/short.json", ConfigPath([]string{"-c", "/etc/short.json"}))
	assert.Equal(t, "/etc/long.json", ConfigPath([]string{"-a", "x", "-config", "/etc/long.json"}))
	assert.Equal(t, "/etc/2.json", ConfigPath([]string{"-c", "/etc/1.json", "--config=/etc/2.json"}))
	assert.Empty(t, ConfigPath([]string{"-a", "http://localhost:5000"}))
	assert.Empty(t, ConfigPath(nil))
}
