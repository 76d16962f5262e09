package iterator

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kbukum/seqkit/option"
	"github.com/kbukum/seqkit/ordering"
	"github.com/kbukum/seqkit/tuple"
)

func add(a, b int) int { return a + b }

func TestCountAndForEach(t *testing.T) {
	if n := Range(0, 4).Count(); n != 4 {
		t.Errorf("expected 4, got %d", n)
	}
	sum := 0
	FromSlice([]int{1, 2, 3}).ForEach(func(n int) { sum += n })
	if sum != 6 {
		t.Errorf("expected 6, got %d", sum)
	}
}

func TestReduce(t *testing.T) {
	if got := Empty[int]().Reduce(add); got.IsSome() {
		t.Errorf("expected None for empty, got %v", got)
	}
	if got := FromSlice([]int{1, 2, 3}).Reduce(add); !option.Equal(got, option.Some(6)) {
		t.Errorf("expected Some(6), got %v", got)
	}
}

func TestFold(t *testing.T) {
	got := Fold(FromSlice([]string{"a", "b", "c"}), "", func(acc, s string) string { return acc + s })
	if got != "abc" {
		t.Errorf("expected abc, got %q", got)
	}
}

func TestAllAnyLeavePosition(t *testing.T) {
	it := FromSlice([]int{2, 4, 5, 6, 7})
	if it.All(func(n int) bool { return n%2 == 0 }) {
		t.Fatal("All should fail at 5")
	}
	if v, _ := it.Next(); v != 6 {
		t.Errorf("expected All to stop just after 5, next is %d", v)
	}

	it = FromSlice([]int{1, 3, 4, 5})
	if !it.Any(func(n int) bool { return n%2 == 0 }) {
		t.Fatal("Any should match 4")
	}
	if v, _ := it.Next(); v != 5 {
		t.Errorf("expected Any to stop just after 4, next is %d", v)
	}

	if !Empty[int]().All(func(int) bool { return false }) {
		t.Error("All over empty is true")
	}
	if Empty[int]().Any(func(int) bool { return true }) {
		t.Error("Any over empty is false")
	}
}

func TestFindAndFindMap(t *testing.T) {
	it := FromSlice([]int{1, 4, 6})
	if got := it.Find(func(n int) bool { return n > 3 }); !option.Equal(got, option.Some(4)) {
		t.Errorf("expected Some(4), got %v", got)
	}
	if v, _ := it.Next(); v != 6 {
		t.Errorf("Find should consume through the match, next is %d", v)
	}

	upper := func(s string) option.Option[string] {
		if s == strings.ToUpper(s) {
			return option.Some(s)
		}
		return option.None[string]()
	}
	if got := FindMap(FromSlice([]string{"a", "B", "C"}), upper); !option.Equal(got, option.Some("B")) {
		t.Errorf("expected Some(B), got %v", got)
	}
	if got := FindMap(FromSlice([]string{"a"}), upper); got.IsSome() {
		t.Errorf("expected None, got %v", got)
	}
}

func TestNthLastPosition(t *testing.T) {
	it := FromSlice([]int{10, 20, 30, 40})
	if got := it.Nth(1); !option.Equal(got, option.Some(20)) {
		t.Errorf("expected Some(20), got %v", got)
	}
	if v, _ := it.Next(); v != 30 {
		t.Errorf("Nth should consume through the value, next is %d", v)
	}
	if got := FromSlice([]int{1}).Nth(3); got.IsSome() {
		t.Errorf("expected None past the end, got %v", got)
	}
	if got := FromSlice([]int{1}).Nth(-1); got.IsSome() {
		t.Errorf("expected None for negative offset, got %v", got)
	}

	if got := FromSlice([]int{1, 2, 3}).Last(); !option.Equal(got, option.Some(3)) {
		t.Errorf("expected Some(3), got %v", got)
	}
	if got := Empty[int]().Last(); got.IsSome() {
		t.Errorf("expected None, got %v", got)
	}

	if got := FromSlice([]string{"a", "b"}).Position(func(s string) bool { return s == "b" }); !option.Equal(got, option.Some(1)) {
		t.Errorf("expected Some(1), got %v", got)
	}
}

func TestPartition(t *testing.T) {
	even, odd := FromSlice([]int{1, 2, 3, 4}).Partition(func(n int) bool { return n%2 == 0 })
	if diff := cmp.Diff([]int{2, 4}, even); diff != "" {
		t.Errorf("matched mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 3}, odd); diff != "" {
		t.Errorf("rest mismatch (-want +got):\n%s", diff)
	}
}

func TestUnzip(t *testing.T) {
	pairs := FromSlice([]tuple.Pair[int, string]{tuple.New(1, "a"), tuple.New(2, "b")})
	nums, strs := Unzip(pairs)
	if diff := cmp.Diff([]int{1, 2}, nums); diff != "" {
		t.Errorf("first mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b"}, strs); diff != "" {
		t.Errorf("second mismatch (-want +got):\n%s", diff)
	}
}

func TestEqNe(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want bool
	}{
		{"equal", []int{1, 2, 3}, []int{1, 2, 3}, true},
		{"both empty", []int{}, []int{}, true},
		{"different value", []int{1, 2, 3}, []int{1, 9, 3}, false},
		{"left shorter", []int{1, 2}, []int{1, 2, 3}, false},
		{"left longer", []int{1, 2, 3}, []int{1, 2}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Eq(FromSlice(tc.a), FromSlice(tc.b)); got != tc.want {
				t.Errorf("Eq = %v, want %v", got, tc.want)
			}
			if got := Ne(FromSlice(tc.a), FromSlice(tc.b)); got == tc.want {
				t.Errorf("Ne = %v, want %v", got, !tc.want)
			}
		})
	}
}

func TestEqBy(t *testing.T) {
	fold := func(a, b string) bool { return strings.EqualFold(a, b) }
	if !FromSlice([]string{"a", "B"}).EqBy(FromSlice([]string{"A", "b"}), fold) {
		t.Error("expected case-insensitive equality")
	}
}

func TestSumProduct(t *testing.T) {
	if got := Sum(FromSlice([]int{1, 2, 3})); got != 6 {
		t.Errorf("expected 6, got %d", got)
	}
	if got := Sum(Empty[float64]()); got != 0 {
		t.Errorf("expected 0 for empty sum, got %v", got)
	}
	if got := Product(FromSlice([]int{2, 3, 4})); got != 24 {
		t.Errorf("expected 24, got %d", got)
	}
	if got := Product(Empty[int]()); got != 1 {
		t.Errorf("expected 1 for empty product, got %d", got)
	}
}

type ranked struct {
	rank int
	id   string
}

func byRank(a, b ranked) ordering.Ordering { return ordering.Compare(a.rank, b.rank) }

func TestMaxMin(t *testing.T) {
	if got := Max(FromSlice([]int{1, 1, 3, 2, 3, 4})); !option.Equal(got, option.Some(4)) {
		t.Errorf("expected Some(4), got %v", got)
	}
	if got := Max(Empty[int]()); got.IsSome() {
		t.Errorf("expected None, got %v", got)
	}
	if got := Min(FromSlice([]int{3, 1, 2})); !option.Equal(got, option.Some(1)) {
		t.Errorf("expected Some(1), got %v", got)
	}
	if got := Min(Empty[int]()); got.IsSome() {
		t.Errorf("expected None, got %v", got)
	}
}

func TestMaxMinTies(t *testing.T) {
	items := []ranked{{1, "a"}, {3, "b"}, {3, "c"}, {1, "d"}}

	if got := FromSlice(items).MaxBy(byRank).Unwrap(); got.id != "c" {
		t.Errorf("MaxBy should keep the later tie, got %s", got.id)
	}
	if got := FromSlice(items).MinBy(byRank).Unwrap(); got.id != "a" {
		t.Errorf("MinBy should keep the earlier tie, got %s", got.id)
	}

	key := func(r ranked) int { return r.rank }
	if got := MaxByKey(FromSlice(items), key).Unwrap(); got.id != "c" {
		t.Errorf("MaxByKey should keep the later tie, got %s", got.id)
	}
	if got := MinByKey(FromSlice(items), key).Unwrap(); got.id != "a" {
		t.Errorf("MinByKey should keep the earlier tie, got %s", got.id)
	}
}
