package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid head only",
			cfg:  Config{Head: 10},
		},
		{
			name: "valid skip only",
			cfg:  Config{Skip: 5},
		},
		{
			name: "valid head and skip",
			cfg:  Config{Head: 10, Skip: 5},
		},
		{
			name: "valid tail only",
			cfg:  Config{Tail: 10},
		},
		{
			name: "tail ignores skip",
			cfg:  Config{Tail: 10, Skip: 5},
		},
		{
			name:    "head and tail mutually exclusive",
			cfg:     Config{Head: 10, Tail: 5},
			wantErr: true,
			errMsg:  "mutually exclusive",
		},
		{
			name:    "negative head invalid",
			cfg:     Config{Head: -1},
			wantErr: true,
			errMsg:  "non-negative",
		},
		{
			name:    "negative tail invalid",
			cfg:     Config{Tail: -3},
			wantErr: true,
			errMsg:  "non-negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestIsActive(t *testing.T) {
	assert.False(t, Config{}.IsActive())
	assert.True(t, Config{Head: 1}.IsActive())
	assert.True(t, Config{Skip: 1}.IsActive())
	assert.True(t, Config{Tail: 1}.IsActive())
}

func TestApply(t *testing.T) {
	rows := []string{"r1", "r2", "r3", "r4", "r5"}

	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "inactive returns everything",
			cfg:  Config{},
			want: rows,
		},
		{
			name: "head keeps the first rows",
			cfg:  Config{Head: 2},
			want: []string{"r1", "r2"},
		},
		{
			name: "skip drops the first rows",
			cfg:  Config{Skip: 3},
			want: []string{"r4", "r5"},
		},
		{
			name: "head after skip",
			cfg:  Config{Head: 2, Skip: 1},
			want: []string{"r2", "r3"},
		},
		{
			name: "tail keeps the last rows",
			cfg:  Config{Tail: 2},
			want: []string{"r4", "r5"},
		},
		{
			name: "tail wins over skip",
			cfg:  Config{Tail: 2, Skip: 4},
			want: []string{"r4", "r5"},
		},
		{
			name: "tail larger than input",
			cfg:  Config{Tail: 99},
			want: rows,
		},
		{
			name: "skip past the end",
			cfg:  Config{Skip: 99},
			want: []string{},
		},
		{
			name: "head larger than input",
			cfg:  Config{Head: 99},
			want: rows,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.cfg, rows))
		})
	}
}
