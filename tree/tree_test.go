package tree

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type recordSink struct {
	lines *[]string
	depth int
}

func (r recordSink) AddField(offset, length int, label string, value any) Sink {
	*r.lines = append(*r.lines, strings.Repeat(">", r.depth)+label)
	return recordSink{lines: r.lines, depth: r.depth + 1}
}

func buildTree() *Tree {
	t := New("ANSI MAP", 0, 12)
	p := t.Root.Add(0, 0, "Billing ID")
	p.Add(0, 1, "Parameter ID")
	p.AddValue(2, 2, "Originating Market ID 1", uint64(1))
	p.AddMarker(ShortData, 4, 2)
	p.Close(6, " - short")
	t.Root.AddMarker(ExtraneousData, 6, 6)
	return t
}

func TestEmitOrder(t *testing.T) {
	var lines []string
	buildTree().Emit(recordSink{lines: &lines})

	want := []string{
		"ANSI MAP",
		">Billing ID - short",
		">>Parameter ID",
		">>Originating Market ID 1",
		">>Short Data (?)",
		">Extraneous Data",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Fatalf("emit order mismatch (-want +got):\n%s", diff)
	}
}

func TestMarkersAndFind(t *testing.T) {
	tr := buildTree()
	if n := tr.Root.Find("Billing ID - short"); n == nil || n.Length != 6 {
		t.Fatalf("closed node not found or wrong length: %+v", n)
	}
	if got := len(tr.Root.Markers(ShortData)); got != 1 {
		t.Fatalf("Should have one short data marker %v\n", got)
	}
	if tr.Root.Find("nothing") != nil {
		t.Fatalf("Find should return nil")
	}
}

func TestFormat(t *testing.T) {
	tr := buildTree()
	tr.Handoffs = append(tr.Handoffs, Handoff{Protocol: "ansi_637_tele", Selector: 4098, Offset: 3, Length: 4})

	var sb strings.Builder
	if err := Format(&sb, tr); err != nil {
		t.Fatalf("format: %v", err)
	}
	want := "[0:12] ANSI MAP\n" +
		"  [0:6] Billing ID - short\n" +
		"    [0:1] Parameter ID\n" +
		"    [2:2] Originating Market ID 1\n" +
		"    [4:2] Short Data (?)\n" +
		"  [6:6] Extraneous Data\n" +
		"handoff ansi_637_tele selector 4098 [3:4] dissected=false\n"
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Fatalf("format mismatch (-want +got):\n%s", diff)
	}
}
