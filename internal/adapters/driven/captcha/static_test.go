package captcha

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic_Solve(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   string
	}{
		{name: "default", answer: "", want: DefaultAnswer},
		{name: "override", answer: "abcde", want: "abcde"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewStatic(tt.answer).Solve(context.Background(), nil, "#captcha_image")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatic_Solve_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStatic("").Solve(ctx, nil, "#captcha_image")
	assert.ErrorIs(t, err, context.Canceled)
}
