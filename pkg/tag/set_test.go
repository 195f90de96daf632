package tag_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/uranusjr/pythonup/pkg/tag"
)

func TestSet(t *testing.T) {
	t.Parallel()

	s := tag.NewSet()

	for _, str := range []string{"3.7", "3.6-32", "2.7", "3.6-32"} {
		s.Add(tag.MustParse(str))
	}

	if s.Add(tag.MustParse("3.7")) {
		t.Error("Add should report false for an already present tag")
	}
	if !s.Add(tag.MustParse("3.7-64")) {
		t.Error("Add should report true for a new tag")
	}

	if !s.Has(tag.MustParse("2.7")) {
		t.Error("Has should find an added tag")
	}
	if s.Has(tag.MustParse("3.6-64")) {
		t.Error("Has should not find a tag that was never added")
	}

	want := []string{"2.7", "3.6-32", "3.7", "3.7-64"}

	got := make([]string, 0, len(want))
	for _, tg := range s.Sorted() {
		got = append(got, tg.String())
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sorted() mismatch (-want +got):\n%s", diff)
	}
}
