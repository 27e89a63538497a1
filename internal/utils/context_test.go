// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestSessionIDCtxKey(t *testing.T) {
	if SessionIDCtxKey.String() != "sessionID" {
		t.Errorf("expected 'sessionID', got '%s'", SessionIDCtxKey.String())
	}
}

func TestGetSessionIDFromContext_Success(t *testing.T) {
	id := uuid.New()
	ctx := WithSessionID(context.Background(), id)

	got, ok := GetSessionIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got != id {
		t.Errorf("expected %s, got %s", id, got)
	}
}

func TestGetSessionIDFromContext_Missing(t *testing.T) {
	got, ok := GetSessionIDFromContext(context.Background())

	if ok {
		t.Error("expected ok=false for missing session id")
	}
	if got != uuid.Nil {
		t.Errorf("expected nil uuid, got %s", got)
	}
}

func TestGetSessionIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionIDCtxKey, "not-a-uuid")

	if _, ok := GetSessionIDFromContext(ctx); ok {
		t.Error("expected ok=false for string value")
	}
}

func TestGetSessionIDFromContext_NilUUID(t *testing.T) {
	ctx := WithSessionID(context.Background(), uuid.Nil)

	if _, ok := GetSessionIDFromContext(ctx); ok {
		t.Error("expected ok=false for nil uuid")
	}
}

func TestGetTraceIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, "trace-1")

	traceID, ok := GetTraceIDFromContext(ctx)
	if !ok || traceID != "trace-1" {
		t.Errorf("expected trace-1, got %q (ok=%v)", traceID, ok)
	}

	if _, ok = GetTraceIDFromContext(context.Background()); ok {
		t.Error("expected ok=false without trace id")
	}
}

func TestUUIDGenerator(t *testing.T) {
	g := NewUUIDGenerator()

	a := g.NewID()
	b := g.NewID()
	if a == b {
		t.Error("expected distinct ids")
	}
	if a.Version() != 7 {
		t.Errorf("expected v7 uuid, got v%d", a.Version())
	}
	if _, err := uuid.Parse(g.Generate()); err != nil {
		t.Errorf("Generate returned unparsable id: %v", err)
	}
}
