package contextutil_test

import (
	"context"
	"testing"

	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMetadataRoundTrip(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "rid-1")
	ctx = contextutil.WithUserID(ctx, "user-1")

	meta := contextutil.ExtractMetadata(ctx)

	assert.Equal(t, "rid-1", meta.RequestID)
	assert.Equal(t, "user-1", meta.UserID)
}

func TestGetLogger_Fallbacks(t *testing.T) {
	scoped := zap.NewNop().Named("scoped")
	ctx := contextutil.WithLogger(context.Background(), scoped)

	assert.Same(t, scoped, contextutil.GetLogger(ctx, nil))
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))
}
