package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIsRecordNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"bare", gorm.ErrRecordNotFound, true},
		{"wrapped", fmt.Errorf("loading provider: %w", gorm.ErrRecordNotFound), true},
		{"other error", errors.New("connection refused"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, isRecordNotFound(tt.err))
		})
	}
}
