package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/avarich/internal/logging"
)

func TestSetup_NoEndpointIsNoop(t *testing.T) {
	shutdown := Setup(context.Background(), Config{ServiceName: "avarich-test"}, logging.Discard())
	require.NotNil(t, shutdown)
	require.NoError(t, shutdown(context.Background()))
}

func TestTracer_StartsSpanWithoutProvider(t *testing.T) {
	ctx, span := Tracer("avarich/test").Start(context.Background(), "op")
	defer span.End()
	require.NotNil(t, ctx)
}
