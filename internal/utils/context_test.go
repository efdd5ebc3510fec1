// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog-records/internal/logger"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestTraceIDCtxKey(t *testing.T) {
	if TraceIDCtxKey.String() != "traceID" {
		t.Errorf("expected 'traceID', got '%s'", TraceIDCtxKey.String())
	}
}

func TestGetTraceIDFromContext_Missing(t *testing.T) {
	traceID, ok := GetTraceIDFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, traceID)
}

func TestGetTraceIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, 42)

	_, ok := GetTraceIDFromContext(ctx)
	assert.False(t, ok)
}

func TestWithTraceID_GeneratesUUID(t *testing.T) {
	ctx := WithTraceID(context.Background(), logger.Nop())

	traceID, ok := GetTraceIDFromContext(ctx)
	require.True(t, ok)
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err)
}

func TestWithTraceID_KeepsExistingID(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, "existing")

	got := WithTraceID(ctx, logger.Nop())

	traceID, ok := GetTraceIDFromContext(got)
	require.True(t, ok)
	assert.Equal(t, "existing", traceID)
	assert.Equal(t, ctx, got)
}

func TestWithTraceID_AttachesTaggedLogger(t *testing.T) {
	var buf bytes.Buffer
	base := &logger.Logger{Logger: zerolog.New(&buf)}

	ctx := WithTraceID(context.Background(), base)
	logger.FromContext(ctx).Info().Msg("traced")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	traceID, _ := GetTraceIDFromContext(ctx)
	assert.Equal(t, traceID, entry["trace_id"])
}
