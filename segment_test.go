package tweetvec

import "testing"

func TestPunktSegmenter(t *testing.T) {
	seg, err := NewPunktSegmenter()
	if err != nil {
		t.Fatalf("NewPunktSegmenter: %v", err)
	}
	got := seg.Segment("I love it. I hate it.")
	if len(got) != 2 {
		t.Fatalf("Expected 2 sentences, got %v", got)
	}
	if got[0].Text != "I love it." || got[1].Text != "I hate it." {
		t.Errorf("Unexpected sentences %q and %q", got[0], got[1])
	}
	if got := seg.Segment("   "); len(got) != 0 {
		t.Errorf("Expected no sentences, got %v", got)
	}
}

func TestWholeTextSegmenter(t *testing.T) {
	got := wholeText{}.Segment("one. two.")
	if len(got) != 1 || got[0].String() != "one. two." || got[0].End != 9 {
		t.Errorf("Unexpected sentences %+v", got)
	}
	if (wholeText{}).Segment(" ") != nil {
		t.Error("Blank text must give no sentences")
	}
}
