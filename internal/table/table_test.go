package table

import (
	"reflect"
	"testing"
)

func sample() *Table {
	t := New("a", "b")
	t.Append(0, map[string]string{"a": "1", "b": "x"})
	t.Append(1, map[string]string{"a": "2", "b": "y"})
	t.Append(2, map[string]string{"a": "3", "b": ""})
	return t
}

func TestColumnAndSetColumn(t *testing.T) {
	tab := sample()
	if got := tab.Column("a"); !reflect.DeepEqual(got, []string{"1", "2", "3"}) {
		t.Fatalf("Column(a) = %v", got)
	}
	tab.SetColumn("b", []string{"p", "q", "r"})
	if got := tab.Rows[2].Get("b"); got != "r" {
		t.Fatalf("after SetColumn, b[2] = %q", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	tab := sample()
	cp := tab.Clone()
	cp.Rows[0].Cells["a"] = "changed"
	if tab.Rows[0].Get("a") != "1" {
		t.Fatal("clone mutation leaked into the original")
	}
}

func TestRemovePreservesOrder(t *testing.T) {
	tab := sample()
	out := tab.Remove(map[int]bool{1: true})
	if out.Len() != 2 {
		t.Fatalf("Len = %d, want 2", out.Len())
	}
	if out.Rows[0].Source != 0 || out.Rows[1].Source != 2 {
		t.Fatalf("sources = %d,%d, want 0,2", out.Rows[0].Source, out.Rows[1].Source)
	}
}

func TestRowBySource(t *testing.T) {
	tab := sample()
	r, ok := tab.RowBySource(2)
	if !ok || r.Get("a") != "3" {
		t.Fatalf("RowBySource(2) = %v, %v", r, ok)
	}
	if _, ok := tab.RowBySource(99); ok {
		t.Fatal("RowBySource(99) unexpectedly found a row")
	}
}

func TestEmpty(t *testing.T) {
	tab := sample()
	if !tab.Rows[2].Empty("b") {
		t.Fatal("blank cell should be empty")
	}
	if tab.Rows[0].Empty("b") {
		t.Fatal("filled cell should not be empty")
	}
}
