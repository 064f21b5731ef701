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
			name:    "separate value",
			args:    []string{"-a", "http://api.local", "-x", "1"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://api.local"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=alt.json", "-a", "http://api.local"},
			allowed: []string{"--config"},
			want:    []string{"--config=alt.json"},
		},
		{
			name:    "order preserved",
			args:    []string{"-t", "5", "-a", "http://api.local", "--other", "x"},
			allowed: []string{"-a", "-t"},
			want:    []string{"-t", "5", "-a", "http://api.local"},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-s"},
			allowed: []string{"-s"},
			want:    []string{"-s"},
		},
		{
			name:    "next dash token is not a value",
			args:    []string{"-s", "-k", "cookies.json"},
			allowed: []string{"-s"},
			want:    []string{"-s"},
		},
		{
			name:    "positional arguments dropped",
			args:    []string{"feed", "-l", "debug", "extra"},
			allowed: []string{"-l"},
			want:    []string{"-l", "debug"},
		},
		{
			name:    "empty",
			args:    nil,
			allowed: []string{"-a"},
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
	assert.Equal(t, "inkwell.json", ConfigPath([]string{"-a", "x", "-c", "inkwell.json"}))
	assert.Equal(t, "long.json", ConfigPath([]string{"-config", "long.json"}))
	assert.Equal(t, "eq.json", ConfigPath([]string{"--config=eq.json"}))
	assert.Equal(t, "", ConfigPath([]string{"-a", "x"}))
}
