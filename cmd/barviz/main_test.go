package main

import (
	"testing"
	"time"
)

func TestParseIndices(t *testing.T) {
	tests := []struct {
		in      string
		n       int
		want    []int
		wantErr bool
	}{
		{"", 64, []int{0, 32, 63}, false},
		{"1, 5,9", 10, []int{1, 5, 9}, false},
		{"10", 10, nil, true},
		{"-1", 10, nil, true},
		{"a", 10, nil, true},
	}

	for _, tt := range tests {
		got, err := parseIndices(tt.in, tt.n)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: expected error %v, got %v", tt.in, tt.wantErr, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.want, got)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%q: expected %v, got %v", tt.in, tt.want, got)
			}
		}
	}
}

func TestStepClock(t *testing.T) {
	start := time.Unix(100, 0)
	c := &stepClock{now: start, step: 20 * time.Millisecond}

	if got := c.Now(); !got.Equal(start) {
		t.Errorf("expected first read at start, got %v", got)
	}
	c.Now()
	if got := c.Now(); got.Sub(start) != 40*time.Millisecond {
		t.Errorf("expected 40ms after two steps, got %v", got.Sub(start))
	}
}

func TestTicksFlagsIndependent(t *testing.T) {
	root := newRootCmd()

	tests := []struct {
		name string
		want string
	}{
		{"trace", "200"},
		{"snapshot", "100"},
	}
	for _, tt := range tests {
		cmd, _, err := root.Find([]string{tt.name})
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		f := cmd.Flags().Lookup("ticks")
		if f == nil {
			t.Fatalf("%s: missing ticks flag", tt.name)
		}
		if f.DefValue != tt.want {
			t.Errorf("%s: expected default %s, got %s", tt.name, tt.want, f.DefValue)
		}
	}
	if traceTicks != 200 {
		t.Errorf("expected trace ticks 200, got %d", traceTicks)
	}
	if snapshotTicks != 100 {
		t.Errorf("expected snapshot ticks 100, got %d", snapshotTicks)
	}

	snap, _, _ := root.Find([]string{"snapshot"})
	if err := snap.Flags().Set("ticks", "7"); err != nil {
		t.Fatal(err)
	}
	if traceTicks != 200 || snapshotTicks != 7 {
		t.Errorf("expected trace 200 and snapshot 7, got %d and %d", traceTicks, snapshotTicks)
	}
}
