//-------------------------------------------------------------------------
//
// RC Logistics Warehouse Generator
//
// Copyright (c) 2022 - 2026, RC Cargo & Logistics
// Released under the MIT License
//
//-------------------------------------------------------------------------

// Package gitsim fabricates a plausible multi-year commit history for
// presentation purposes. It only emits a shell script of backdated git
// commands; it never runs git itself and has no coupling to the data
// model.
package gitsim

import (
	"fmt"
	"os"
	"strings"

	"github.com/rclogistics/rc-dwgen/internal/datagen"
	"github.com/rclogistics/rc-dwgen/internal/logging"
)

// Commit is one fabricated commit: a date, a message, the files it
// touches and its author.
type Commit struct {
	Date        string // YYYY-MM-DD
	Message     string
	Files       []string
	AuthorName  string
	AuthorEmail string
}

// Author is a fictional team member.
type Author struct {
	Name  string
	Email string
}

// Authors is the fictional team rotating through the history.
var Authors = []Author{
	{"Ahmed Khan", "ahmed.khan@rclogistics.ae"},
	{"Sarah Ali", "sarah.ali@rclogistics.ae"},
	{"Muhammad Hassan", "m.hassan@rclogistics.ae"},
	{"Fatima Sheikh", "f.sheikh@rclogistics.ae"},
	{"Omar Malik", "omar.malik@rclogistics.ae"},
	{"Aisha Rahman", "aisha.rahman@rclogistics.ae"},
}

// plannedCommit is a commit before author assignment.
type plannedCommit struct {
	date    string
	message string
	files   []string
}

// plan is the project evolution storyline, 2022 through 2026.
var plan = []plannedCommit{
	// Phase 1: initial setup
	{"2022-04-15", "Initial project setup for RC Pakistan Cargo logistics", []string{"README.md", "go.mod", ".gitignore"}},
	{"2022-04-20", "Implement basic customer and booking models", []string{"internal/model/model.go"}},
	{"2022-05-02", "Add flat dataset generator", []string{"internal/datagen/generator.go", "internal/datagen/faker.go"}},
	{"2022-05-15", "Implement SQLite warehouse schema v1", []string{"internal/sink/sqlite.go"}},
	{"2022-06-01", "Add CSV export for generated data", []string{"internal/flatfile/flatfile.go"}},
	// Phase 2: warehouse model
	{"2022-07-10", "Add date and customer dimensions", []string{"internal/warehouse/dimensions.go"}},
	{"2022-08-05", "Add shipment and revenue fact tables", []string{"internal/warehouse/facts.go"}},
	{"2022-09-12", "Wire end-to-end star schema build", []string{"internal/warehouse/star.go", "internal/cli/build.go"}},
	{"2022-10-08", "Add structured logging", []string{"internal/logging/logger.go"}},
	{"2022-12-20", "First stable release of the warehouse generator", []string{"CHANGELOG.md"}},
	// Phase 3: hardening
	{"2023-02-14", "Fail fast on dangling foreign keys", []string{"internal/warehouse/errors.go", "internal/warehouse/facts.go"}},
	{"2023-04-22", "Add config file support", []string{"internal/config/config.go"}},
	{"2023-09-18", "Add PostgreSQL load target", []string{"internal/sink/postgres.go"}},
	// Phase 4: modernization
	{"2024-01-25", "Upgrade toolchain and dependencies", []string{"go.mod", "go.sum"}},
	{"2024-05-08", "Switch CLI to subcommands", []string{"internal/cli/cli.go", "internal/cli/generate.go"}},
	{"2024-09-30", "Add comprehensive test suite", []string{"internal/warehouse/facts_test.go", "internal/warehouse/dimensions_test.go"}},
	// Phase 5: recent work
	{"2025-02-14", "Make dataset generation reproducible with seeds", []string{"internal/datagen/faker.go"}},
	{"2025-06-15", "Validate transit days and revenue ratios", []string{"internal/warehouse/facts.go"}},
	{"2026-01-15", "Upgrade dependencies for 2026", []string{"go.mod", "go.sum"}},
	{"2026-01-29", "Complete analytics-ready star schema pipeline", []string{"internal/warehouse/star.go", "README.md"}},
}

// BuildPlan returns the full commit plan with authors assigned from the
// fictional team.
func BuildPlan(f *datagen.Faker) []Commit {
	commits := make([]Commit, 0, len(plan))
	for _, p := range plan {
		author := datagen.Choose(f, Authors)
		commits = append(commits, Commit{
			Date:        p.date,
			Message:     p.message,
			Files:       p.files,
			AuthorName:  author.Name,
			AuthorEmail: author.Email,
		})
	}
	return commits
}

// Script renders the commit plan as an executable bash script that
// fabricates the history with backdated commits.
func Script(commits []Commit) string {
	var b strings.Builder

	b.WriteString("#!/bin/bash\n\n")
	b.WriteString("# RC Cargo & Logistics - Git history setup\n")
	b.WriteString("# Fabricates a presentation commit history from 2022 to 2026\n\n")
	b.WriteString("git init\n")
	b.WriteString("git config user.name 'RC Logistics Team'\n")
	b.WriteString("git config user.email 'dev@rclogistics.ae'\n\n")

	for _, c := range commits {
		for _, file := range c.Files {
			if dir := dirOf(file); dir != "" {
				fmt.Fprintf(&b, "mkdir -p %s\n", dir)
			}
			fmt.Fprintf(&b, "touch %s\n", file)
		}
		b.WriteString("git add .\n")
		fmt.Fprintf(&b,
			"GIT_AUTHOR_DATE=%q GIT_COMMITTER_DATE=%q git commit -m %q --author=%q\n\n",
			c.Date+"T12:00:00", c.Date+"T12:00:00", c.Message,
			fmt.Sprintf("%s <%s>", c.AuthorName, c.AuthorEmail))
	}

	b.WriteString("echo 'Git history created successfully!'\n")
	b.WriteString("git log --oneline --graph --all\n")

	return b.String()
}

// WriteScript writes the rendered script to path with execute
// permissions.
func WriteScript(path string, commits []Commit) error {
	if err := os.WriteFile(path, []byte(Script(commits)), 0o755); err != nil {
		return fmt.Errorf("failed to write history script: %w", err)
	}
	logging.Info().
		Str("path", path).
		Int("commits", len(commits)).
		Msg("Wrote git history script")
	return nil
}

// Changelog renders the commit plan as a markdown changelog, newest
// year first.
func Changelog(commits []Commit) string {
	var b strings.Builder

	b.WriteString("# Changelog\n\n")
	b.WriteString("RC Cargo & Logistics data warehouse generator.\n")

	lastYear := ""
	for i := len(commits) - 1; i >= 0; i-- {
		c := commits[i]
		year := c.Date[:4]
		if year != lastYear {
			fmt.Fprintf(&b, "\n## %s\n\n", year)
			lastYear = year
		}
		fmt.Fprintf(&b, "- %s: %s (%s)\n", c.Date, c.Message, c.AuthorName)
	}

	return b.String()
}

// WriteChangelog writes the rendered changelog to path.
func WriteChangelog(path string, commits []Commit) error {
	if err := os.WriteFile(path, []byte(Changelog(commits)), 0o644); err != nil {
		return fmt.Errorf("failed to write changelog: %w", err)
	}
	logging.Info().Str("path", path).Msg("Wrote changelog")
	return nil
}

func dirOf(path string) string {
	if i := strings.LastIndex(path, "/"); i > 0 {
		return path[:i]
	}
	return ""
}
