package order

import (
	"reflect"
	"testing"

	"github.com/linktidy/linktidy/internal/model"
)

func buildExtraction(urls ...string) *model.Extraction {
	ex := model.NewExtraction()
	for _, u := range urls {
		ex.Add(model.LinkLine{RawURL: u, CanonicalLine: "* " + u})
	}
	return ex
}

// TestLinesFlat tests flat alphabetical ordering.
func TestLinesFlat(t *testing.T) {
	t.Parallel()

	t.Run("sorts unique URLs ascending", func(t *testing.T) {
		t.Parallel()

		ex := buildExtraction(
			"https://z.com/last",
			"https://a.com/first",
			"https://m.org/middle",
		)

		got := Lines(ex, false)
		want := []string{
			"* https://a.com/first",
			"* https://m.org/middle",
			"* https://z.com/last",
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Lines() = %v, expected %v", got, want)
		}
	})

	t.Run("comparison is case-insensitive", func(t *testing.T) {
		t.Parallel()

		ex := buildExtraction(
			"https://B.com/1",
			"https://a.com/2",
		)

		got := Lines(ex, false)
		want := []string{
			"* https://a.com/2",
			"* https://B.com/1",
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Lines() = %v, expected %v", got, want)
		}
	})

	t.Run("duplicates appear once", func(t *testing.T) {
		t.Parallel()

		ex := buildExtraction(
			"https://a.com/1",
			"https://a.com/1",
			"https://b.com/2",
		)

		if got := Lines(ex, false); len(got) != 2 {
			t.Errorf("len(Lines()) = %d, expected 2", len(got))
		}
	})

	t.Run("empty extraction yields no lines", func(t *testing.T) {
		t.Parallel()

		if got := Lines(model.NewExtraction(), false); len(got) != 0 {
			t.Errorf("Lines() = %v, expected empty", got)
		}
	})
}

// TestLinesGrouped tests domain-grouped ordering.
func TestLinesGrouped(t *testing.T) {
	t.Parallel()

	t.Run("groups by registrable domain in ascending key order", func(t *testing.T) {
		t.Parallel()

		ex := buildExtraction(
			"https://sub.a.com/x",
			"https://b.com/y",
			"https://www.a.com/z",
			"https://a.com/w",
		)

		got := Lines(ex, true)
		want := []string{
			"* https://a.com/w",
			"* https://sub.a.com/x",
			"* https://www.a.com/z",
			"* https://b.com/y",
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Lines() = %v, expected %v", got, want)
		}
	})

	t.Run("subdomains and www variants share one group", func(t *testing.T) {
		t.Parallel()

		ex := buildExtraction(
			"https://sub.a.com/1",
			"https://www.a.com/2",
			"https://b.com/3",
		)

		got := Lines(ex, true)
		want := []string{
			"* https://sub.a.com/1",
			"* https://www.a.com/2",
			"* https://b.com/3",
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Lines() = %v, expected %v", got, want)
		}
	})

	t.Run("alphabetizes within a group", func(t *testing.T) {
		t.Parallel()

		ex := buildExtraction(
			"https://a.com/zeta",
			"https://a.com/alpha",
		)

		got := Lines(ex, true)
		want := []string{
			"* https://a.com/alpha",
			"* https://a.com/zeta",
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Lines() = %v, expected %v", got, want)
		}
	})

	t.Run("malformed URLs group under their fallback key", func(t *testing.T) {
		t.Parallel()

		ex := buildExtraction(
			"https://z.com/ok",
			"http://bad::url",
		)

		got := Lines(ex, true)
		want := []string{
			"* http://bad::url",
			"* https://z.com/ok",
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Lines() = %v, expected %v", got, want)
		}
	})
}
