package match

import "testing"

func TestMatchExactFilename(t *testing.T) {
	exts := []string{".DS_Store"}

	ok, reason := Match(".DS_Store", exts, nil)
	if !ok || reason != "exact match: .DS_Store" {
		t.Fatalf("expected exact match for bare key, got ok=%v reason=%q", ok, reason)
	}

	ok, reason = Match("notes/.DS_Store", exts, nil)
	if !ok || reason != "exact match: .DS_Store" {
		t.Fatalf("expected exact match for nested key, got ok=%v reason=%q", ok, reason)
	}
}

func TestMatchExactIsCaseSensitive(t *testing.T) {
	ok, reason := Match("dir/Makefile", []string{"makefile"}, nil)
	if ok {
		t.Fatalf("exact match must be case sensitive, got reason=%q", reason)
	}
}

func TestMatchExactRequiresFullSegment(t *testing.T) {
	// "old" as a non-dot extension token must not match a key that merely
	// ends with it inside the last segment.
	if ok, _ := Match("reports/threshold", []string{"old"}, nil); ok {
		t.Fatalf("expected no match for partial last segment")
	}
	if ok, _ := Match("reports/old", []string{"old"}, nil); !ok {
		t.Fatalf("expected match for full last segment")
	}
}

func TestMatchExtensionSuffix(t *testing.T) {
	ok, reason := Match("archive.DOCX", []string{".docx"}, nil)
	if !ok || reason != "extension: .docx" {
		t.Fatalf("expected case-insensitive suffix match, got ok=%v reason=%q", ok, reason)
	}

	// non-dot tokens never participate in suffix matching
	if ok, _ := Match("file.tmp", []string{"tmp"}, nil); ok {
		t.Fatalf("expected no suffix match for token without leading dot")
	}
}

func TestMatchPatternSubstring(t *testing.T) {
	ok, reason := Match("report_BACKUP_final.pdf", nil, []string{"backup"})
	if !ok || reason != "contains: backup" {
		t.Fatalf("expected substring match, got ok=%v reason=%q", ok, reason)
	}

	if ok, _ := Match("report_final.pdf", nil, []string{"backup"}); ok {
		t.Fatalf("expected no substring match")
	}
}

func TestMatchRulePriority(t *testing.T) {
	// key satisfies both the exact rule and the substring rule; the exact
	// reason must win.
	ok, reason := Match("notes/.DS_Store", []string{".DS_Store"}, []string{"ds_store"})
	if !ok || reason != "exact match: .DS_Store" {
		t.Fatalf("expected exact-match priority, got ok=%v reason=%q", ok, reason)
	}

	// suffix beats substring
	ok, reason = Match("archive.docx", []string{".docx"}, []string{"archive"})
	if !ok || reason != "extension: .docx" {
		t.Fatalf("expected extension priority over pattern, got ok=%v reason=%q", ok, reason)
	}
}

func TestMatchFirstTokenWins(t *testing.T) {
	ok, reason := Match("cache/file.tmp.bak", nil, []string{"tmp", "bak"})
	if !ok || reason != "contains: tmp" {
		t.Fatalf("expected first configured pattern to win, got ok=%v reason=%q", ok, reason)
	}
}

func TestMatchNothingConfiguredNothingMatches(t *testing.T) {
	ok, reason := Match("any/key.txt", nil, nil)
	if ok || reason != "" {
		t.Fatalf("expected no match with empty criteria, got ok=%v reason=%q", ok, reason)
	}
}

func TestMatchBucketScenario(t *testing.T) {
	exts := []string{".DS_Store", ".docx"}

	cases := []struct {
		key    string
		ok     bool
		reason string
	}{
		{"a.txt", false, ""},
		{"b.DS_Store", true, "extension: .DS_Store"},
		{"notes/.DS_Store", true, "exact match: .DS_Store"},
		{"archive.docx", true, "extension: .docx"},
	}

	for _, c := range cases {
		ok, reason := Match(c.key, exts, nil)
		if ok != c.ok || reason != c.reason {
			t.Fatalf("key %s: got ok=%v reason=%q, want ok=%v reason=%q", c.key, ok, reason, c.ok, c.reason)
		}
	}
}
