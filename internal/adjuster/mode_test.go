package adjuster

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"disabled", ModeDisabled, false},
		{"passthrough", ModePassthrough, false},
		{"hsl-luma", ModeHSLLuma, false},
		{" LUV ", ModeLUV, false},
		{"hsl-loop", ModeHSLLoop, false},
		{"rgb-loop", ModeRGBLoop, false},
		{"-1", ModeDisabled, false},
		{"4", ModeRGBLoop, false},
		{"9", Mode(9), false},
		{"bogus", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	for _, name := range ModeNames() {
		m, err := ParseMode(name)
		if err != nil {
			t.Fatalf("ParseMode(%q) error = %v", name, err)
		}
		if m.String() != name {
			t.Errorf("Mode(%d).String() = %q, want %q", int(m), m.String(), name)
		}
	}

	if got := Mode(12).String(); got != "12" {
		t.Errorf("Mode(12).String() = %q, want %q", got, "12")
	}
}

func TestModeAsFlag(t *testing.T) {
	var m Mode
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(&m, "mode", "adjustment mode")

	if err := fs.Parse([]string{"--mode", "luv"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if m != ModeLUV {
		t.Errorf("mode = %v, want %v", m, ModeLUV)
	}
	if got := fs.Lookup("mode").Value.Type(); got != "mode" {
		t.Errorf("Type() = %q, want %q", got, "mode")
	}

	if err := fs.Parse([]string{"--mode", "sideways"}); err == nil {
		t.Error("Parse() with bad mode error = nil")
	}
}

func TestModeText(t *testing.T) {
	text, err := ModeHSLLoop.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}

	var m Mode
	if err := m.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText(%q) error = %v", text, err)
	}
	if m != ModeHSLLoop {
		t.Errorf("round trip = %v, want %v", m, ModeHSLLoop)
	}
}
