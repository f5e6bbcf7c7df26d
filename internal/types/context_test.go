package types

import (
	"context"
	"testing"
)

func TestProfileNameContextRoundTrip(t *testing.T) {
	ctx := WithProfileName(context.Background(), "android")
	got, ok := ProfileNameFromContext(ctx)
	if !ok || got != "android" {
		t.Fatalf("ProfileNameFromContext=(%q,%v), want (android,true)", got, ok)
	}
	if _, ok := ProfileNameFromContext(context.Background()); ok {
		t.Fatal("empty context must not carry a profile name")
	}
}
