package service

import "testing"

func TestLookupCategory_Known(t *testing.T) {
	for _, key := range []string{"3c", "lifestyle", "food", "parenting", "finance", "travel", "fitness"} {
		seeds := LookupCategory(key)
		if seeds.Key != key {
			t.Errorf("LookupCategory(%q).Key = %q", key, seeds.Key)
		}
		if len(seeds.Queries) == 0 || len(seeds.Keywords) == 0 {
			t.Errorf("category %q has empty queries or keywords", key)
		}
		if seeds.MinMatchRatio < 0.20 || seeds.MinMatchRatio > 0.26 {
			t.Errorf("category %q minMatchRatio = %.2f, want within [0.20, 0.26]", key, seeds.MinMatchRatio)
		}
	}
}

func TestLookupCategory_UnknownFallsBackTo3C(t *testing.T) {
	seeds := LookupCategory("does-not-exist")
	if seeds.Key != DefaultCategory {
		t.Errorf("fallback Key = %q, want %q", seeds.Key, DefaultCategory)
	}
	if seeds.MinMatchRatio != 0.22 {
		t.Errorf("fallback minMatchRatio = %.2f, want 0.22", seeds.MinMatchRatio)
	}
}
