package theme

import "testing"

func TestByNameFallsBackToDefault(t *testing.T) {
	if got := ByName("paper").Name; got != "paper" {
		t.Fatalf("ByName(paper) = %q", got)
	}
	if got := ByName("no-such-theme").Name; got != Ledger.Name {
		t.Fatalf("ByName(unknown) = %q, want %q", got, Ledger.Name)
	}
}

func TestSeriesColorWraps(t *testing.T) {
	th := Ledger
	n := len(th.Series())
	if th.SeriesColor(0) != th.SeriesColor(n) {
		t.Fatal("SeriesColor should wrap at len(Series())")
	}
	if th.SeriesColor(-1) != th.SeriesColor(1) {
		t.Fatal("SeriesColor should accept negative indexes")
	}
}

func TestNamesMatchesAll(t *testing.T) {
	names := Names()
	if len(names) != len(All) {
		t.Fatalf("len(Names()) = %d, want %d", len(names), len(All))
	}
	for i, n := range names {
		if ByName(n).Name != All[i].Name {
			t.Fatalf("Names()[%d] = %q does not resolve", i, n)
		}
	}
}
