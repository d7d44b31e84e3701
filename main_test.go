// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/nmlctl/nmlctl/internal/command"
)

func TestHandleVersion(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{
			name: "no version flag",
			args: []string{"nmlctl", "ice_in", "ocean_in"},
			want: false,
		},
		{
			name: "long flag",
			args: []string{"nmlctl", "--version"},
			want: true,
		},
		{
			name: "short flag",
			args: []string{"nmlctl", "-v"},
			want: true,
		},
		{
			name: "flag after files",
			args: []string{"nmlctl", "ice_in", "--version"},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := handleVersion(tt.args); got != tt.want {
				t.Errorf("handleVersion(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestHandleNakedCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "bare invocation gets help",
			args:     []string{"nmlctl"},
			expected: []string{"nmlctl", "--help"},
		},
		{
			name:     "files left alone",
			args:     []string{"nmlctl", "ice_in"},
			expected: []string{"nmlctl", "ice_in"},
		},
		{
			name:     "flags left alone",
			args:     []string{"nmlctl", "--diff", "ice_in", "ocean_in"},
			expected: []string{"nmlctl", "--diff", "ice_in", "ocean_in"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := handleNakedCommand(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("handleNakedCommand(%v) = %v, want %v", tt.args, result, tt.expected)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "differences found",
			err:  command.ErrDifferencesFound,
			want: 1,
		},
		{
			name: "wrapped differences found",
			err:  fmt.Errorf("run: %w", command.ErrDifferencesFound),
			want: 1,
		},
		{
			name: "other error",
			err:  errors.New("boom"),
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
