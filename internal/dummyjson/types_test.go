package dummyjson

import (
	"errors"
	"fmt"
	"testing"
)

func TestDifficulty_ValidAndNormalized(t *testing.T) {
	tests := []struct {
		in        Difficulty
		wantNorm  Difficulty
		wantValid bool
	}{
		{"Easy", DifficultyEasy, true},
		{" medium ", DifficultyMedium, false},
		{"HARD", DifficultyHard, false},
		{"Expert", "Expert", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			if got := tt.in.Valid(); got != tt.wantValid {
				t.Fatalf("%q.Valid() = %v, want %v", tt.in, got, tt.wantValid)
			}
			if got := tt.in.Normalized(); got != tt.wantNorm {
				t.Fatalf("%q.Normalized() = %q, want %q", tt.in, got, tt.wantNorm)
			}
		})
	}
}

func TestRecipe_TotalMinutes(t *testing.T) {
	r := Recipe{PrepTimeMinutes: 20, CookTimeMinutes: 25}
	if got := r.TotalMinutes(); got != 45 {
		t.Fatalf("TotalMinutes = %d, want 45", got)
	}
}

func TestError_MessageAndClassification(t *testing.T) {
	cause := errors.New("connection refused")
	err := transportError(0, "execute request", cause)
	if err.Error() != "execute request: connection refused" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is(err, cause) = false, want true")
	}

	wrapped := fmt.Errorf("load page: %w", shapeError("invalid response format", nil))
	if !errors.Is(wrapped, ErrShape) || errors.Is(wrapped, ErrTransport) {
		t.Fatalf("wrapped shape error misclassified: %v", wrapped)
	}
	if wrapped.Error() != "load page: invalid response format" {
		t.Fatalf("wrapped.Error() = %q", wrapped.Error())
	}
	if StatusOf(errors.New("plain")) != 0 {
		t.Fatalf("StatusOf(plain) != 0")
	}
}

func TestKind_String(t *testing.T) {
	if KindTransport.String() != "transport" || KindShape.String() != "shape" || Kind(0).String() != "unknown" {
		t.Fatalf("unexpected Kind strings: %s %s %s", KindTransport, KindShape, Kind(0))
	}
}
