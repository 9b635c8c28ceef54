package model

import (
	"errors"
	"testing"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		token string
		want  Position
		ok    bool
	}{
		{"a1", Position{0, 0}, true},
		{"h8", Position{7, 7}, true},
		{"e2", Position{1, 4}, true},
		{"d5", Position{4, 3}, true},
		{"i1", Position{}, false},
		{"a9", Position{}, false},
		{"a0", Position{}, false},
		{"A1", Position{}, false},
		{"e", Position{}, false},
		{"e22", Position{}, false},
		{"", Position{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseSquare(tt.token)
			if tt.ok {
				if err != nil {
					t.Fatalf("ParseSquare(%q) error: %v", tt.token, err)
				}
				if got != tt.want {
					t.Fatalf("ParseSquare(%q) = %v, want %v", tt.token, got, tt.want)
				}
				return
			}
			if !errors.Is(err, ErrInvalidSquare) {
				t.Fatalf("ParseSquare(%q) error = %v, want ErrInvalidSquare", tt.token, err)
			}
			if !IsInvalidInput(err) {
				t.Fatalf("ParseSquare(%q) error not classified as invalid input", tt.token)
			}
		})
	}
}

func TestNotationRoundTrip(t *testing.T) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			pos := Position{row, col}
			got, err := ParseSquare(pos.Notation())
			if err != nil {
				t.Fatalf("ParseSquare(%q): %v", pos.Notation(), err)
			}
			if got != pos {
				t.Fatalf("round trip %v -> %q -> %v", pos, pos.Notation(), got)
			}
		}
	}
}

func TestParseFairyPiece(t *testing.T) {
	tests := []struct {
		symbol string
		want   PieceType
		ok     bool
	}{
		{"F", Falcon, true},
		{"f", Falcon, true},
		{"falcon", Falcon, true},
		{"H", Hunter, true},
		{"h", Hunter, true},
		{"hunter", Hunter, true},
		{"Q", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, err := ParseFairyPiece(tt.symbol)
		if tt.ok {
			if err != nil || got != tt.want {
				t.Fatalf("ParseFairyPiece(%q) = %v, %v, want %v", tt.symbol, got, err, tt.want)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidPiece) {
			t.Fatalf("ParseFairyPiece(%q) error = %v, want ErrInvalidPiece", tt.symbol, err)
		}
	}
}
