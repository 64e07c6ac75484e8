package list

import (
	"slices"
	"testing"
)

type item struct {
	link Node[*item]
	v    int
}

func newItem(v int) *item {
	it := &item{v: v}
	it.link.Init(it)
	return it
}

func values(l *List[*item]) []int {
	var out []int
	for it := range l.All() {
		out = append(out, it.v)
	}
	return out
}

func TestPushBackOrder(t *testing.T) {
	var l List[*item]
	for i := 1; i <= 3; i++ {
		l.PushBack(&newItem(i).link)
	}
	if got := values(&l); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("values = %v, want [1 2 3]", got)
	}
	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3", l.Len())
	}
	if l.Front().Value.v != 1 || l.Back().Value.v != 3 {
		t.Errorf("Front/Back = %d/%d, want 1/3", l.Front().Value.v, l.Back().Value.v)
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name   string
		remove []int
		want   []int
	}{
		{"Head", []int{0}, []int{2, 3}},
		{"Middle", []int{1}, []int{1, 3}},
		{"Tail", []int{2}, []int{1, 2}},
		{"All", []int{0, 1, 2}, nil},
		{"Twice", []int{1, 1}, []int{1, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l List[*item]
			items := []*item{newItem(1), newItem(2), newItem(3)}
			for _, it := range items {
				l.PushBack(&it.link)
			}
			for _, idx := range tt.remove {
				l.Remove(&items[idx].link)
			}
			if got := values(&l); !slices.Equal(got, tt.want) {
				t.Errorf("values = %v, want %v", got, tt.want)
			}
			for _, idx := range tt.remove {
				n := &items[idx].link
				if n.Linked() || n.Next() != n || n.Prev() != n {
					t.Errorf("removed node %d is not self-linked", idx)
				}
			}
		})
	}
}

func TestEmptyListSentinel(t *testing.T) {
	var l List[*item]
	if l.Front() != l.End() {
		t.Error("Front() of empty list should be End()")
	}
	if l.Back() != l.End() {
		t.Error("Back() of empty list should be End()")
	}
}

func TestRemoveForeignNode(t *testing.T) {
	var a, b List[*item]
	it := newItem(1)
	a.PushBack(&it.link)
	b.Remove(&it.link)
	if a.Len() != 1 || !it.link.Linked() {
		t.Error("removing through another list must not unlink the node")
	}
}

func TestPushLinkedPanics(t *testing.T) {
	var l List[*item]
	it := newItem(1)
	l.PushBack(&it.link)
	defer func() {
		if recover() == nil {
			t.Error("expected panic pushing a linked node")
		}
	}()
	l.PushBack(&it.link)
}

func TestAllStopsEarly(t *testing.T) {
	var l List[*item]
	for i := 1; i <= 5; i++ {
		l.PushBack(&newItem(i).link)
	}
	var seen []int
	for it := range l.All() {
		seen = append(seen, it.v)
		if it.v == 2 {
			break
		}
	}
	if !slices.Equal(seen, []int{1, 2}) {
		t.Errorf("seen = %v, want [1 2]", seen)
	}
}
