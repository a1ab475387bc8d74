package parse

import "testing"

func testLexes() []Lex[testToken] {
	// "a b,c" with spaces as non-structural filler.
	return []Lex[testToken]{
		{Token: tokID, Start: 0, End: 1},
		{Token: tokSpace, Start: 1, End: 2},
		{Token: tokID, Start: 2, End: 3},
		{Token: tokComma, Start: 3, End: 4},
		{Token: tokID, Start: 4, End: 5},
		{Token: tokEOF, Start: 5, End: 5},
	}
}

func TestTokenStreamFiltering(t *testing.T) {
	stream := NewTokenStream(testLexes())

	if got := stream.RawLen(); got != 6 {
		t.Fatalf("RawLen() = %d, want 6", got)
	}
	if got := stream.Len(); got != 5 {
		t.Fatalf("Len() = %d, want 5", got)
	}

	wantStarts := []int{0, 2, 3, 4, 5}
	for i, want := range wantStarts {
		if got := stream.At(FltrPtr(i)).Start; got != want {
			t.Errorf("At(%d).Start = %d, want %d", i, got, want)
		}
	}
}

func TestTokenStreamTranslation(t *testing.T) {
	stream := NewTokenStream(testLexes())

	if got := stream.StreamPtr(1); got != 2 {
		t.Errorf("StreamPtr(1) = %d, want 2", got)
	}
	// Raw index 1 is the space; the next structural token is raw 2,
	// filtered 1.
	if got := stream.FltrPtrAtOrAfter(1); got != 1 {
		t.Errorf("FltrPtrAtOrAfter(1) = %d, want 1", got)
	}
	if got := stream.FltrPtrAtOrAfter(2); got != 1 {
		t.Errorf("FltrPtrAtOrAfter(2) = %d, want 1", got)
	}
	if got := stream.FltrPtrAtPointer(2); got != 1 {
		t.Errorf("FltrPtrAtPointer(2) = %d, want 1", got)
	}
	if got := stream.FltrPtrAtPointer(1); got != 1 {
		t.Errorf("FltrPtrAtPointer(1) = %d, want 1", got)
	}
}

func TestTokenStreamEOF(t *testing.T) {
	stream := NewTokenStream(testLexes())

	if stream.IsEOF(0) {
		t.Error("IsEOF(0) = true, want false")
	}
	if !stream.IsEOF(4) {
		t.Error("IsEOF(4) = false, want true")
	}
	// Out-of-range indices clamp to the EOF lex.
	if !stream.IsEOF(99) {
		t.Error("IsEOF(99) = false, want true")
	}
	if got := stream.EOSPointer(); got != 5 {
		t.Errorf("EOSPointer() = %d, want 5", got)
	}
}
