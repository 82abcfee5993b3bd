package model

import (
	"reflect"
	"testing"
)

// TestCounter tests the insertion-ordered frequency table.
func TestCounter(t *testing.T) {
	t.Parallel()

	t.Run("counts and key order", func(t *testing.T) {
		t.Parallel()

		c := NewCounter()
		c.Inc("https")
		c.Inc("http")
		c.Inc("https")

		if got := c.Count("https"); got != 2 {
			t.Errorf("Count(https) = %d, expected 2", got)
		}
		if got := c.Count("http"); got != 1 {
			t.Errorf("Count(http) = %d, expected 1", got)
		}
		if got := c.Count("ftp"); got != 0 {
			t.Errorf("Count(ftp) = %d, expected 0", got)
		}
		if got := c.Len(); got != 2 {
			t.Errorf("Len() = %d, expected 2", got)
		}
		if got := c.Keys(); !reflect.DeepEqual(got, []string{"https", "http"}) {
			t.Errorf("Keys() = %v, expected [https http]", got)
		}
	})

	t.Run("TopN sorts descending with insertion-order ties", func(t *testing.T) {
		t.Parallel()

		c := NewCounter()
		c.Inc("b.com")
		c.Inc("a.com")
		c.Inc("a.com")
		c.Inc("c.com")

		got := c.TopN(-1)
		want := []CountEntry{
			{Key: "a.com", Count: 2},
			{Key: "b.com", Count: 1},
			{Key: "c.com", Count: 1},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("TopN(-1) = %v, expected %v", got, want)
		}
	})

	t.Run("TopN truncates to n entries", func(t *testing.T) {
		t.Parallel()

		c := NewCounter()
		c.Inc("a")
		c.Inc("b")
		c.Inc("c")

		got := c.TopN(2)
		if len(got) != 2 {
			t.Fatalf("len(TopN(2)) = %d, expected 2", len(got))
		}
		if got[0].Key != "a" || got[1].Key != "b" {
			t.Errorf("TopN(2) = %v, expected [a b] in insertion order", got)
		}
	})

	t.Run("TopN on empty counter is empty", func(t *testing.T) {
		t.Parallel()

		c := NewCounter()
		if got := c.TopN(10); len(got) != 0 {
			t.Errorf("TopN(10) = %v, expected empty", got)
		}
	})
}

// TestStatisticsPercent tests whole-percentage conversion.
func TestStatisticsPercent(t *testing.T) {
	t.Parallel()

	t.Run("rounds to nearest whole percent", func(t *testing.T) {
		t.Parallel()

		s := NewStatistics()
		s.UniqueLinks = 3

		if got := s.Percent(1); got != 33 {
			t.Errorf("Percent(1) = %d, expected 33", got)
		}
		if got := s.Percent(2); got != 67 {
			t.Errorf("Percent(2) = %d, expected 67", got)
		}
		if got := s.Percent(3); got != 100 {
			t.Errorf("Percent(3) = %d, expected 100", got)
		}
	})

	t.Run("zero unique links yields zero", func(t *testing.T) {
		t.Parallel()

		s := NewStatistics()
		if got := s.Percent(5); got != 0 {
			t.Errorf("Percent(5) with no unique links = %d, expected 0", got)
		}
	})
}
