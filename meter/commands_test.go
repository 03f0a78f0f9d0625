package meter

import (
	"bytes"
	"testing"

	"github.com/benchlab/benchlink/apperr"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		opcode  Opcode
		wantErr bool
	}{
		{name: "measure", token: "Measure", opcode: OpMeasure},
		{name: "minmax", token: "MinMax", opcode: OpMinMax},
		{name: "not minmax", token: "NotMinMax", opcode: OpNotMinMax},
		{name: "range", token: "Range", opcode: OpRange},
		{name: "auto", token: "Auto", opcode: OpAuto},
		{name: "rel", token: "Rel", opcode: OpRel},
		{name: "select2", token: "Select2", opcode: OpSelect2},
		{name: "hold", token: "Hold", opcode: OpHold},
		{name: "lamp", token: "Lamp", opcode: OpLamp},
		{name: "select1", token: "Select1", opcode: OpSelect1},
		{name: "pminmax", token: "PMinMax", opcode: OpPMinMax},
		{name: "not peak", token: "NotPeak", opcode: OpNotPeak},
		{name: "unknown token", token: "Bogus", wantErr: true},
		{name: "case sensitive", token: "measure", wantErr: true},
		{name: "empty token", token: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.token)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !apperr.Is(err, apperr.KindCommand) {
					t.Errorf("error kind = %v, want command", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cmd.Opcode != tt.opcode {
				t.Errorf("Opcode = %d, want %d", cmd.Opcode, tt.opcode)
			}
			if cmd.Name != tt.token {
				t.Errorf("Name = %q, want %q", cmd.Name, tt.token)
			}
		})
	}
}

func TestExpectsResponse(t *testing.T) {
	for token := range commandOpcodes {
		cmd, err := ParseCommand(token)
		if err != nil {
			t.Fatalf("ParseCommand(%q): %v", token, err)
		}
		want := token == "Measure"
		if got := cmd.ExpectsResponse(); got != want {
			t.Errorf("ExpectsResponse(%q) = %t, want %t", token, got, want)
		}
	}
}

func TestCommandFrame(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  []byte
	}{
		{
			// 94 + 379 = 473 = 0x01D9
			name:  "measure",
			token: "Measure",
			want:  []byte{0xAB, 0xCD, 0x03, 0x5E, 0x01, 0xD9},
		},
		{
			// 65 + 379 = 444 = 0x01BC
			name:  "minmax",
			token: "MinMax",
			want:  []byte{0xAB, 0xCD, 0x03, 0x41, 0x01, 0xBC},
		},
		{
			// 78 + 379 = 457 = 0x01C9
			name:  "not peak",
			token: "NotPeak",
			want:  []byte{0xAB, 0xCD, 0x03, 0x4E, 0x01, 0xC9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.token)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := cmd.Frame(); !bytes.Equal(got, tt.want) {
				t.Errorf("Frame() = % X, want % X", got, tt.want)
			}
		})
	}
}

func TestWithLengthPrefix(t *testing.T) {
	cmd, err := ParseCommand("Measure")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := WithLengthPrefix(cmd.Frame())
	want := []byte{0x06, 0xAB, 0xCD, 0x03, 0x5E, 0x01, 0xD9}
	if !bytes.Equal(got, want) {
		t.Errorf("WithLengthPrefix() = % X, want % X", got, want)
	}
}
