package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRun_PrintsVerifiableHashes(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run([]string{"-cost", "4", "password123", "short"}, &stdout, &stderr)

	require.NoError(t, err)
	var hashes []string
	for _, line := range strings.Split(stdout.String(), "\n") {
		if h, ok := strings.CutPrefix(line, "Hash: "); ok {
			hashes = append(hashes, h)
		}
	}
	require.Len(t, hashes, 2)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashes[0]), []byte("password123")))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashes[1]), []byte("short")))
	assert.Contains(t, stderr.String(), "shorter than 8 characters")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "no passwords", args: nil, wantErr: "at least one password"},
		{name: "cost too low", args: []string{"-cost", "2", "password123"}, wantErr: "cost must be between"},
		{name: "bad flag", args: []string{"-rounds", "4"}, wantErr: "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(tt.args, &stdout, &stderr)
			assert.ErrorContains(t, err, tt.wantErr)
			assert.Empty(t, stdout.String())
		})
	}
}
