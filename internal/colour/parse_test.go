package colour

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGBA
		wantErr bool
	}{
		{"short", "#fff", NewRGBA(255, 255, 255, 1), false},
		{"short with alpha", "#0f08", NewRGBA(0, 255, 0, 136.0/255), false},
		{"long uppercase", "#FF8000", NewRGBA(255, 128, 0, 1), false},
		{"long with alpha", "#11223344", NewRGBA(17, 34, 51, 68.0/255), false},
		{"no hash", "abcdef", NewRGBA(171, 205, 239, 1), false},
		{"too short", "#ff", RGBA{}, true},
		{"five digits", "#12345", RGBA{}, true},
		{"bad digit short", "#ggg", RGBA{}, true},
		{"bad digit long", "#12345z", RGBA{}, true},
		{"signed", "#+12345", RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidHex) {
					t.Fatalf("ParseHex(%q) error = %v, want ErrInvalidHex", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) unexpected error: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseHex(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

type stubResolver struct {
	data  []uint8
	err   error
	calls []string
}

func (s *stubResolver) ResolveName(name string) ([]uint8, error) {
	s.calls = append(s.calls, name)
	return s.data, s.err
}

func TestParseCSS(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name     string
		input    string
		resolver NameResolver
		want     RGBA
		wantErr  error
	}{
		{"hex with whitespace", "  #0000ff\n", nil, NewRGBA(0, 0, 255, 1), nil},
		{"empty", "", nil, RGBA{}, ErrEmpty},
		{"blank", "   ", nil, RGBA{}, ErrEmpty},
		{"name without resolver", "red", nil, RGBA{}, ErrNoResolver},
		{"resolved name", "red", &stubResolver{data: []uint8{255, 0, 0, 255}}, NewRGBA(255, 0, 0, 1), nil},
		{"half transparent", "ghost", &stubResolver{data: []uint8{1, 2, 3, 51}}, NewRGBA(1, 2, 3, 0.2), nil},
		{"wrong component count", "red", &stubResolver{data: []uint8{255, 0, 0}}, RGBA{}, ErrUnresolvable},
		{"resolver failure", "red", &stubResolver{err: errBoom}, RGBA{}, errBoom},
		{"bad hex", "#zz", nil, RGBA{}, ErrInvalidHex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCSS(tt.input, tt.resolver)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseCSS(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCSS(%q) unexpected error: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseCSS(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseCSSTrimsBeforeResolving(t *testing.T) {
	stub := &stubResolver{data: []uint8{0, 0, 0, 255}}
	if _, err := ParseCSS("  navy ", stub); err != nil {
		t.Fatalf("ParseCSS error = %v", err)
	}
	if diff := cmp.Diff([]string{"navy"}, stub.calls); diff != "" {
		t.Errorf("resolver calls mismatch (-want +got):\n%s", diff)
	}
}

func TestNameResolverFunc(t *testing.T) {
	fn := NameResolverFunc(func(name string) ([]uint8, error) {
		return []uint8{uint8(len(name)), 0, 0, 255}, nil
	})

	got, err := RGBAFromName("abc", fn)
	if err != nil {
		t.Fatalf("RGBAFromName error = %v", err)
	}
	if got.R != 3 || got.A != 1 {
		t.Errorf("RGBAFromName = %+v", got)
	}
}
