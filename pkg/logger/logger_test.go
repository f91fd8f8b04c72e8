package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContextRoundTrip(t *testing.T) {
	l := New(Config{Env: "development", Level: "debug"})
	ctx := IntoContext(context.Background(), l)
	assert.Same(t, l, FromContext(ctx))
}

func TestFromContextWithoutLoggerReturnsNop(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
	// No debe entrar en pánico al loguear.
	l.Info().Str("k", "v").Msg("descartado")
}

func TestWithRequestProducesIndependentSublogger(t *testing.T) {
	base := Nop()
	sub := base.WithRequest("abc-123")
	require.NotNil(t, sub)
	assert.NotSame(t, base, sub)
}
