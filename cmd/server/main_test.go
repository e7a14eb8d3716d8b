package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    options
		wantErr bool
	}{
		{name: "no flags serves http", args: nil, want: options{}},
		{name: "migrate up", args: []string{"-migrate=up"}, want: options{migrate: "up"}},
		{
			name: "create with name and verbose",
			args: []string{"-migrate", "create", "-name", "add_tags", "-verbose"},
			want: options{migrate: "create", migrationName: "add_tags", verbose: true},
		},
		{name: "unknown flag", args: []string{"-port=8080"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := parseFlags(tt.args, &out)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, out.String(), "Usage")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
