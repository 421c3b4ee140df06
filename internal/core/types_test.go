package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
)

func TestFlexibleInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      FlexibleInt
		wantError bool
	}{
		{"number", `7`, 7, false},
		{"zero", `0`, 0, false},
		{"negative", `-3`, -3, false},
		{"float truncates", `5.9`, 5, false},
		{"numeric string", `"8"`, 8, false},
		{"padded string", `" 4 "`, 4, false},
		{"huge number clamps", `1e30`, FlexibleInt(2147483647), false},
		{"null keeps value", `null`, 0, false},
		{"word string", `"high"`, 0, true},
		{"empty string", `""`, 0, true},
		{"bool", `true`, 0, true},
		{"object", `{"v":1}`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got FlexibleInt
			err := sonic.Unmarshal([]byte(tt.input), &got)
			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error, got %d", got)
				}
				if !errors.Is(err, ErrInvalidInsanity) {
					t.Errorf("expected ErrInvalidInsanity, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFlexibleInt_InStruct(t *testing.T) {
	type body struct {
		Insanity *FlexibleInt `json:"insanity"`
	}

	var missing body
	if err := sonic.Unmarshal([]byte(`{}`), &missing); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing.Insanity != nil {
		t.Errorf("missing field should stay nil, got %d", *missing.Insanity)
	}

	var present body
	if err := sonic.Unmarshal([]byte(`{"insanity":"10"}`), &present); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if present.Insanity == nil || *present.Insanity != 10 {
		t.Errorf("expected 10, got %v", present.Insanity)
	}
}

func TestBatchEntry_MarshalJSON(t *testing.T) {
	ok := BatchEntry{Result: &GenerationResult{ID: "x", Prompt: "a cat", NegativePrompt: "blurry", Model: ModelFlux}}
	data, err := sonic.Marshal(ok)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"prompt":"a cat"`) {
		t.Errorf("successful entry should render the result, got %s", data)
	}
	if strings.Contains(string(data), `"error"`) {
		t.Errorf("successful entry should not carry an error, got %s", data)
	}

	failed := BatchEntry{Err: errors.New("boom")}
	data, err = sonic.Marshal(failed)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"error":"boom"}` {
		t.Errorf("failed entry rendered as %s", data)
	}
}

func TestDefaultGenerationRequest(t *testing.T) {
	req := DefaultGenerationRequest()
	if req.Model != ModelSDXL {
		t.Errorf("default model = %q", req.Model)
	}
	if req.SubjectType != SelectorRandom || req.ArtistStyle != SelectorRandom || req.ImageType != SelectorRandom {
		t.Errorf("default selectors should be random: %+v", req)
	}
	if req.Insanity != DefaultInsanity {
		t.Errorf("default insanity = %d", req.Insanity)
	}
	if req.Seed != nil {
		t.Error("default request should not be seeded")
	}
}
