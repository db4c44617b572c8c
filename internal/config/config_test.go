package config

import (
	"os"
	"reflect"
	"testing"
	"time"
)

func TestRequireEnv(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		shouldSet bool
		wantPanic bool
	}{
		{
			name:      "variable set",
			key:       "TEST_VAR",
			value:     "test_value",
			shouldSet: true,
			wantPanic: false,
		},
		{
			name:      "variable not set",
			key:       "TEST_VAR_MISSING",
			shouldSet: false,
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.shouldSet {
				if err := os.Setenv(tt.key, tt.value); err != nil {
					t.Fatalf("failed to set env var: %v", err)
				}
				defer func() {
					if err := os.Unsetenv(tt.key); err != nil {
						t.Errorf("failed to unset env var: %v", err)
					}
				}()
			}

			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("requireEnv() should have panicked")
					}
				}()
			}

			result := requireEnv(tt.key)
			if !tt.wantPanic && result != tt.value {
				t.Errorf("requireEnv() = %v, want %v", result, tt.value)
			}
		})
	}
}

func TestGetenvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		set   bool
		def   int
		want  int
	}{
		{"valid integer", "42", true, 7, 42},
		{"invalid integer", "abc", true, 7, 7},
		{"not set", "", false, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "TEST_INT_VAR"
			if tt.set {
				t.Setenv(key, tt.value)
			}
			if got := getenvInt(key, tt.def); got != tt.want {
				t.Errorf("getenvInt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		set   bool
		def   time.Duration
		want  time.Duration
	}{
		{"valid duration", "30s", true, time.Minute, 30 * time.Second},
		{"invalid duration", "soon", true, time.Minute, time.Minute},
		{"not set", "", false, time.Minute, time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "TEST_DURATION_VAR"
			if tt.set {
				t.Setenv(key, tt.value)
			}
			if got := mustDuration(key, tt.def); got != tt.want {
				t.Errorf("mustDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "simple list",
			in:   "a.example.com, b.example.com",
			want: []string{"a.example.com", "b.example.com"},
		},
		{
			name: "quoted entries",
			in:   `"a.example.com", 'b.example.com'`,
			want: []string{"a.example.com", "b.example.com"},
		},
		{
			name: "empty entries dropped",
			in:   "a.example.com,, ,b.example.com",
			want: []string{"a.example.com", "b.example.com"},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitAndTrim(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitAndTrim(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
