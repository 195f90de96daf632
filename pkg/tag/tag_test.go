package tag_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/uranusjr/pythonup/pkg/tag"
)

func TestTag_Compare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "equal", a: "3.7", b: "3.7", want: 0},
		{name: "major ascending", a: "2.7", b: "3.0", want: -1},
		{name: "minor ascending", a: "3.6", b: "3.7", want: -1},
		{name: "absent minor orders before zero", a: "3", b: "3.0", want: -1},
		{name: "minor outweighs arch", a: "3.6-64", b: "3.7-32", want: -1},
		{name: "absent arch orders before 32-bit", a: "3.7", b: "3.7-32", want: -1},
		{name: "32-bit orders before 64-bit", a: "3.7-32", b: "3.7-64", want: -1},
		{name: "minor compares numerically", a: "3.9", b: "3.10", want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a, b := tag.MustParse(tt.a), tag.MustParse(tt.b)

			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", a, b, got, tt.want)
			}
			if got := b.Compare(a); got != -tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", b, a, got, -tt.want)
			}
			if got := a.Less(b); got != (tt.want < 0) {
				t.Errorf("Less(%v, %v) = %t, want %t", a, b, got, tt.want < 0)
			}
		})
	}
}

func TestTag_Compare_SortOrder(t *testing.T) {
	t.Parallel()

	want := []string{"2.7-32", "3", "3-64", "3.6", "3.6-32", "3.6-64", "3.7", "3.10"}

	tags := make([]tag.Tag, 0, len(want))
	for _, str := range want {
		tags = append(tags, tag.MustParse(str))
	}

	// sort a reversed copy and expect the original order back
	slices.Reverse(tags)
	slices.SortFunc(tags, tag.Tag.Compare)

	got := make([]string, 0, len(tags))
	for _, tg := range tags {
		got = append(got, tg.String())
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sorted tags mismatch (-want +got):\n%s", diff)
	}
}

func TestTag_Compare_OrderLaws(t *testing.T) {
	t.Parallel()

	corpus := []tag.Tag{
		{},
		tag.MustParse("2"),
		tag.MustParse("2.7"),
		tag.MustParse("3"),
		tag.MustParse("3-32"),
		tag.MustParse("3-64"),
		tag.MustParse("3.6"),
		tag.MustParse("3.6-32"),
		tag.MustParse("3.7"),
		tag.MustParse("3.7-64"),
		tag.MustParse("3.10"),
	}

	for _, a := range corpus {
		for _, b := range corpus {
			if a.Compare(b) != -b.Compare(a) {
				t.Errorf("Compare not antisymmetric for %q and %q", a, b)
			}
			if (a.Compare(b) == 0) != (a == b) {
				t.Errorf("Compare(%q, %q) = 0 should mean equality", a, b)
			}

			for _, c := range corpus {
				if a.Compare(b) <= 0 && b.Compare(c) <= 0 && a.Compare(c) > 0 {
					t.Errorf("Compare not transitive across %q, %q, %q", a, b, c)
				}
			}
		}
	}
}

func TestTag_Contains(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		pattern   string
		candidate string
		want      bool
	}{
		{name: "fully specified contains itself", pattern: "3.7-64", candidate: "3.7-64", want: true},
		{name: "major only is a wildcard", pattern: "3", candidate: "3.7-64", want: true},
		{name: "not symmetric", pattern: "3.7-64", candidate: "3", want: false},
		{name: "arch pin carries through wildcard minor", pattern: "3-32", candidate: "3.7-32", want: true},
		{name: "arch pin rejects other arch", pattern: "3-32", candidate: "3.7-64", want: false},
		{name: "arch pin rejects unspecified arch", pattern: "3.7-32", candidate: "3.7", want: false},
		{name: "unpinned arch matches any", pattern: "3.7", candidate: "3.7-32", want: true},
		{name: "major mismatch", pattern: "2", candidate: "3.7", want: false},
		{name: "minor mismatch", pattern: "3.6", candidate: "3.7", want: false},
		{name: "pattern more specific than candidate", pattern: "3.7", candidate: "3", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pattern, candidate := tag.MustParse(tt.pattern), tag.MustParse(tt.candidate)

			if got := pattern.Contains(candidate); got != tt.want {
				t.Errorf("Contains(%v, %v) = %t, want %t", pattern, candidate, got, tt.want)
			}
		})
	}
}

func TestTag_Contains_ZeroTag(t *testing.T) {
	t.Parallel()

	var zero tag.Tag

	for _, str := range []string{"2", "3.7", "3.7-32", "3.10-64"} {
		if !zero.Contains(tag.MustParse(str)) {
			t.Errorf("zero tag should contain %q", str)
		}
	}

	if !zero.Contains(zero) {
		t.Error("zero tag should contain itself")
	}
}

func TestTag_Contains_ArchOnlyPattern(t *testing.T) {
	t.Parallel()

	pattern := tag.Tag{}.WithArchitecture(tag.Arch32)

	for str, want := range map[string]bool{
		"3.7-32": true,
		"2.6-32": true,
		"3.7-64": false,
		"3.7":    false,
	} {
		if got := pattern.Contains(tag.MustParse(str)); got != want {
			t.Errorf("Contains(%v, %q) = %t, want %t", pattern, str, got, want)
		}
	}
}

func TestTag_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tag  tag.Tag
		want string
	}{
		{name: "zero", tag: tag.Tag{}, want: ""},
		{name: "major only", tag: tag.New(3), want: "3"},
		{name: "major and minor", tag: tag.NewWithMinor(3, 7), want: "3.7"},
		{name: "fully specified", tag: tag.NewWithMinor(3, 10).WithArchitecture(tag.Arch32), want: "3.10-32"},
		{name: "arch only", tag: tag.Tag{}.WithArchitecture(tag.Arch64), want: "-64"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.tag.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTag_Components(t *testing.T) {
	t.Parallel()

	full := tag.MustParse("3.7-32")

	if major, ok := full.Major(); !ok || major != 3 {
		t.Errorf("Major() = %d, %t, want 3, true", major, ok)
	}
	if minor, ok := full.Minor(); !ok || minor != 7 {
		t.Errorf("Minor() = %d, %t, want 7, true", minor, ok)
	}
	if arch := full.Architecture(); arch != tag.Arch32 {
		t.Errorf("Architecture() = %v, want Arch32", arch)
	}

	bare := tag.MustParse("3")

	if _, ok := bare.Minor(); ok {
		t.Error("Minor() should report absence for a major-only tag")
	}
	if arch := bare.Architecture(); arch != tag.ArchUnspecified {
		t.Errorf("Architecture() = %v, want ArchUnspecified", arch)
	}

	if full.IsZero() {
		t.Error("IsZero() should be false for a parsed tag")
	}
	if !(tag.Tag{}).IsZero() {
		t.Error("IsZero() should be true for the zero tag")
	}
}
