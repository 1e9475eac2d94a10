package gitsim

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/rclogistics/rc-dwgen/internal/datagen"
)

func TestBuildPlan(t *testing.T) {
	commits := BuildPlan(datagen.NewFakerWithSeed(1))

	if len(commits) != len(plan) {
		t.Fatalf("BuildPlan() returned %d commits, want %d", len(commits), len(plan))
	}

	team := make(map[string]string, len(Authors))
	for _, a := range Authors {
		team[a.Name] = a.Email
	}

	for i, c := range commits {
		if c.Date == "" || c.Message == "" || len(c.Files) == 0 {
			t.Errorf("commit %d is incomplete: %+v", i, c)
		}
		email, ok := team[c.AuthorName]
		if !ok {
			t.Errorf("commit %d: author %q is not on the team", i, c.AuthorName)
		} else if email != c.AuthorEmail {
			t.Errorf("commit %d: email %q does not match author %q", i, c.AuthorEmail, c.AuthorName)
		}
	}
}

func TestBuildPlanChronological(t *testing.T) {
	commits := BuildPlan(datagen.NewFakerWithSeed(2))

	dates := make([]string, len(commits))
	for i, c := range commits {
		dates[i] = c.Date
	}
	if !sort.StringsAreSorted(dates) {
		t.Error("commit dates are not chronological")
	}
	if !strings.HasPrefix(dates[0], "2022-") {
		t.Errorf("history starts at %s, want 2022", dates[0])
	}
	if !strings.HasPrefix(dates[len(dates)-1], "2026-") {
		t.Errorf("history ends at %s, want 2026", dates[len(dates)-1])
	}
}

func TestBuildPlanSeedDeterminism(t *testing.T) {
	a := BuildPlan(datagen.NewFakerWithSeed(42))
	b := BuildPlan(datagen.NewFakerWithSeed(42))

	for i := range a {
		if a[i].AuthorName != b[i].AuthorName {
			t.Fatalf("commit %d: author differs between identically seeded runs", i)
		}
	}
}

func TestScript(t *testing.T) {
	commits := BuildPlan(datagen.NewFakerWithSeed(3))
	script := Script(commits)

	if !strings.HasPrefix(script, "#!/bin/bash") {
		t.Error("script lacks shebang")
	}
	if !strings.Contains(script, "git init") {
		t.Error("script never initializes a repository")
	}
	if got := strings.Count(script, "git commit -m"); got != len(commits) {
		t.Errorf("script has %d commits, want %d", got, len(commits))
	}
	if got := strings.Count(script, "GIT_AUTHOR_DATE="); got != len(commits) {
		t.Errorf("script backdates %d commits, want %d", got, len(commits))
	}
	for _, c := range commits {
		if !strings.Contains(script, c.Message) {
			t.Errorf("script is missing commit %q", c.Message)
		}
	}
}

func TestChangelog(t *testing.T) {
	commits := BuildPlan(datagen.NewFakerWithSeed(5))
	changelog := Changelog(commits)

	if !strings.HasPrefix(changelog, "# Changelog") {
		t.Error("changelog lacks title")
	}

	// Newest year first
	idx2026 := strings.Index(changelog, "## 2026")
	idx2022 := strings.Index(changelog, "## 2022")
	if idx2026 < 0 || idx2022 < 0 {
		t.Fatal("changelog is missing year sections")
	}
	if idx2026 > idx2022 {
		t.Error("changelog years are not newest-first")
	}

	for _, c := range commits {
		if !strings.Contains(changelog, c.Message) {
			t.Errorf("changelog is missing %q", c.Message)
		}
	}
}

func TestWriteScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup_git_history.sh")
	commits := BuildPlan(datagen.NewFakerWithSeed(4))

	if err := WriteScript(path, commits); err != nil {
		t.Fatalf("WriteScript() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("script missing: %v", err)
	}
	if info.Mode().Perm()&0o100 == 0 {
		t.Error("script is not executable")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read script: %v", err)
	}
	if string(data) != Script(commits) {
		t.Error("written script differs from rendered script")
	}
}
