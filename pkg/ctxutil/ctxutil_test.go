package ctxutil

import (
	"context"
	"testing"
)

func TestWithUserID_And_UserIDFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithUserID(context.Background(), "user-123")

	got, ok := UserIDFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true for valid user id")
	}
	if got != "user-123" {
		t.Fatalf("expected user-123, got %s", got)
	}
}

func TestUserIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got, ok := UserIDFromCtx(context.Background())
	if ok {
		t.Fatal("expected ok=false for empty context")
	}
	if got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}

func TestUserIDFromCtx_EmptyID(t *testing.T) {
	t.Parallel()

	ctx := WithUserID(context.Background(), "")

	_, ok := UserIDFromCtx(ctx)
	if ok {
		t.Fatal("expected ok=false for empty user id")
	}
}

func TestUserIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("user_id"), 12345)

	got, ok := UserIDFromCtx(ctx)
	if ok {
		t.Fatal("expected ok=false for wrong type")
	}
	if got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}

func TestWithRequestID_And_RequestIDFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")

	if got := RequestIDFromCtx(ctx); got != "req-123" {
		t.Fatalf("expected req-123, got %s", got)
	}
}

func TestRequestIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}
