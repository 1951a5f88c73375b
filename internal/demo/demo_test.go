package demo

import (
	"bytes"
	"io"
	"slices"
	"strings"
	"testing"

	"lang_demo/internal/console"
)

type countingReader struct {
	io.Reader
	closes int
}

func (c *countingReader) Close() error {
	c.closes++
	return nil
}

func newTestRunner(input string) (*Runner, *bytes.Buffer, *bytes.Buffer, *countingReader) {
	var out, errOut bytes.Buffer
	src := &countingReader{Reader: strings.NewReader(input)}
	c := console.New(src, &out, &errOut, console.Options{NoColor: true})
	return NewRunner(c, "Go Demonstration System"), &out, &errOut, src
}

func TestDayType(t *testing.T) {
	cases := map[string]string{
		"Monday":    "Weekday",
		"Tuesday":   "Weekday",
		"Wednesday": "Weekday",
		"Thursday":  "Weekday",
		"Friday":    "Weekday",
		"Saturday":  "Weekend",
		"Sunday":    "Weekend",
		"Zzyzx":     "Invalid day",
		"monday":    "Invalid day",
	}
	for day, want := range cases {
		if got := DayType(day); got != want {
			t.Fatalf("DayType(%q) = %q, want %q", day, got, want)
		}
	}
}

func TestCompare(t *testing.T) {
	if got := Compare(10); got != "10 is exactly 10." {
		t.Fatalf("Compare(10) = %q", got)
	}
	if got := Compare(11); got != "11 is greater than 10." {
		t.Fatalf("Compare(11) = %q", got)
	}
	if got := Compare(9); got != "9 is less than 10." {
		t.Fatalf("Compare(9) = %q", got)
	}
}

func TestDoWhileRunsOnceWhenConditionFalse(t *testing.T) {
	printed, final := DoWhile(5, 5)
	if !slices.Equal(printed, []int{5}) {
		t.Fatalf("printed = %v, want [5]", printed)
	}
	if final != 6 {
		t.Fatalf("final = %d, want 6", final)
	}
}

func TestDoWhileLoopsWhileConditionTrue(t *testing.T) {
	printed, final := DoWhile(0, 3)
	if !slices.Equal(printed, []int{0, 1, 2}) || final != 3 {
		t.Fatalf("printed = %v final = %d", printed, final)
	}
}

func TestLoops(t *testing.T) {
	if got := joinInts(CountUp(5), " "); got != "0 1 2 3 4" {
		t.Fatalf("CountUp = %q", got)
	}
	if got := RangeOver([]int{10, 20, 30}); !slices.Equal(got, []int{10, 20, 30}) {
		t.Fatalf("RangeOver = %v", got)
	}
	if got := Countdown(3); got != "3... 2... 1... " {
		t.Fatalf("Countdown = %q", got)
	}
	if got := Countdown(0); got != "" {
		t.Fatalf("Countdown(0) = %q", got)
	}
}

func TestBuildFruitList(t *testing.T) {
	got := BuildFruitList()
	if !slices.Equal(got, []string{"Apple", "Blueberry", "Cherry"}) {
		t.Fatalf("fruit list = %v", got)
	}
	if len(got) != 3 || got[0] != "Apple" {
		t.Fatalf("size/index: %d %q", len(got), got[0])
	}
	if FormatList(got) != "[Apple, Blueberry, Cherry]" {
		t.Fatalf("FormatList = %q", FormatList(got))
	}
}

func TestRemoveValueFirstMatchOnly(t *testing.T) {
	got := RemoveValue([]string{"a", "b", "a"}, "a")
	if !slices.Equal(got, []string{"b", "a"}) {
		t.Fatalf("RemoveValue = %v", got)
	}
	got = RemoveValue([]string{"a"}, "z")
	if !slices.Equal(got, []string{"a"}) {
		t.Fatalf("RemoveValue absent = %v", got)
	}
}

func TestBuildInventory(t *testing.T) {
	inv := BuildInventory()
	if len(inv) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(inv))
	}
	if inv["Apples"] != 50 {
		t.Fatalf("Apples = %d", inv["Apples"])
	}
	for _, k := range []string{"Apples", "Oranges", "Bananas"} {
		if _, ok := inv[k]; !ok {
			t.Fatalf("missing key %q", k)
		}
	}
}

func TestFormatInventory(t *testing.T) {
	if got := FormatInventory(BuildInventory()); got != "{Apples=50, Bananas=40, Oranges=25}" {
		t.Fatalf("FormatInventory = %q", got)
	}
	if got := FormatInventory(map[string]int{}); got != "{}" {
		t.Fatalf("FormatInventory empty = %q", got)
	}
}

func TestNewDemoAnnouncesItself(t *testing.T) {
	var out bytes.Buffer
	c := console.New(strings.NewReader(""), &out, io.Discard, console.Options{NoColor: true})

	d := NewDemo(c, "Test Data")

	if d.instanceData != "Test Data" {
		t.Fatalf("instanceData = %q", d.instanceData)
	}
	if out.String() != "A Demo object was created with data: Test Data\n" {
		t.Fatalf("stdout = %q", out.String())
	}
}

func TestGreet(t *testing.T) {
	if Greet("") != "Hello, !" || Greet("Alice") != "Hello, Alice!" {
		t.Fatal("Greet mismatch")
	}
}
