package domain

import (
	"errors"
	"testing"
)

func TestParseEnvelope_Full(t *testing.T) {
	raw := "TITLE: My Video\n" +
		"URL: https://www.youtube.com/watch?v=dQw4w9WgXcQ\n" +
		"\n" +
		"[00:00] Hello\n" +
		"[00:15] World"

	env, err := ParseEnvelope(raw)
	if err != nil {
		t.Fatalf("ParseEnvelope() error = %v", err)
	}

	if env.Title != "My Video" {
		t.Errorf("Title = %q, want My Video", env.Title)
	}
	if env.URL != "https://www.youtube.com/watch?v=dQw4w9WgXcQ" {
		t.Errorf("URL = %q", env.URL)
	}
	if env.Body != "[00:00] Hello\n[00:15] World" {
		t.Errorf("Body = %q", env.Body)
	}
}

func TestParseEnvelope_IDLine(t *testing.T) {
	env, err := ParseEnvelope("ID: dQw4w9WgXcQ\n\nsome text")
	if err != nil {
		t.Fatalf("ParseEnvelope() error = %v", err)
	}

	if env.ID != "dQw4w9WgXcQ" {
		t.Errorf("ID = %q, want dQw4w9WgXcQ", env.ID)
	}
	if env.Body != "some text" {
		t.Errorf("Body = %q, want some text", env.Body)
	}
}

func TestParseEnvelope_NoHeaders(t *testing.T) {
	_, err := ParseEnvelope("just a transcript\nwith no headers")
	if !errors.Is(err, ErrMalformedEnvelope) {
		t.Errorf("error = %v, want ErrMalformedEnvelope", err)
	}
}

func TestParseEnvelope_TitleWithoutIdentifier(t *testing.T) {
	_, err := ParseEnvelope("TITLE: Orphan\n\nbody text")
	if !errors.Is(err, ErrMalformedEnvelope) {
		t.Errorf("error = %v, want ErrMalformedEnvelope", err)
	}
}

func TestParseEnvelope_NoBlankSeparator(t *testing.T) {
	env, err := ParseEnvelope("URL: https://youtu.be/dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("ParseEnvelope() error = %v", err)
	}
	if env.Body != "" {
		t.Errorf("Body = %q, want empty", env.Body)
	}
}

func TestEnvelope_Resolve(t *testing.T) {
	tests := []struct {
		name    string
		env     Envelope
		wantID  string
		wantErr bool
	}{
		{"url only", Envelope{URL: "https://youtu.be/dQw4w9WgXcQ"}, "dQw4w9WgXcQ", false},
		{"id only", Envelope{ID: "dQw4w9WgXcQ"}, "dQw4w9WgXcQ", false},
		{"url wins over id", Envelope{URL: "https://youtu.be/AAAAAAAAAAA", ID: "dQw4w9WgXcQ"}, "AAAAAAAAAAA", false},
		{"bad url falls back to id", Envelope{URL: "https://example.com/nope", ID: "dQw4w9WgXcQ"}, "dQw4w9WgXcQ", false},
		{"bad url, no id", Envelope{URL: "https://example.com/nope"}, "", true},
		{"bad url, bad id", Envelope{URL: "https://example.com/nope", ID: "x"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			video, err := tt.env.Resolve()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrUnresolvableID) {
					t.Errorf("error = %v, want ErrUnresolvableID", err)
				}
				return
			}
			if video.ID != tt.wantID {
				t.Errorf("Resolve() ID = %q, want %q", video.ID, tt.wantID)
			}
		})
	}
}
