package parse

import "testing"

func TestPosition(t *testing.T) {
	code := NewCode([]byte("ab\ncd\n\nef"))

	tests := []struct {
		pointer int
		line    int
		column  int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3},
		{3, 2, 1},
		{4, 2, 2},
		{5, 2, 3},
		{6, 3, 1},
		{7, 4, 1},
		{8, 4, 2},
		{9, 4, 3},
	}
	for _, tt := range tests {
		got := code.Position(tt.pointer)
		if got.Line != tt.line || got.Column != tt.column {
			t.Errorf("Position(%d) = %v, want line %d column %d", tt.pointer, got, tt.line, tt.column)
		}
	}
}

func TestPositionEmptyInput(t *testing.T) {
	code := NewCode(nil)
	got := code.Position(0)
	if got.Line != 1 || got.Column != 1 {
		t.Errorf("Position(0) = %v, want line 1 column 1", got)
	}
}
