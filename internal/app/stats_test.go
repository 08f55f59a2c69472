package app

import (
	"testing"

	"github.com/aferrant/notestats/internal/config"
)

func TestStatsSummaryEmpty(t *testing.T) {
	m := &Model{}
	if got := m.statsSummary(); got != "" {
		t.Fatalf("expected empty summary, got %q", got)
	}
}

func TestStatsSummaryFormat(t *testing.T) {
	m := &Model{
		content:  "One. Two words here.",
		settings: config.Settings{ShowWordCount: true, StatsPosition: config.PositionFooter},
	}
	m.recomputeStats()
	if got := m.statsSummary(); got != "S:2 W:4 C:20 L:1" {
		t.Fatalf("unexpected summary: %q", got)
	}
}

func TestStatsSummaryHidesWordCount(t *testing.T) {
	m := &Model{
		content:  "One. Two words here.",
		settings: config.Settings{ShowWordCount: false},
	}
	m.recomputeStats()
	if got := m.statsSummary(); got != "S:2 C:20 L:1" {
		t.Fatalf("unexpected summary: %q", got)
	}
}

func TestStatsModeSuffix(t *testing.T) {
	m := &Model{settings: config.Settings{IgnoreCallouts: true, StripMarkdownChars: true}}
	if got := m.statsModeSuffix(); got != " (no callouts, md-stripped chars)" {
		t.Fatalf("unexpected suffix: %q", got)
	}
	m.settings = config.Settings{}
	if got := m.statsModeSuffix(); got != "" {
		t.Fatalf("expected empty suffix, got %q", got)
	}
}

func TestStaleStatsTickIgnored(t *testing.T) {
	m := &Model{content: "One."}
	m.recomputeStats()

	_ = m.scheduleStatsRefresh() // generation 1, superseded below
	_ = m.scheduleStatsRefresh() // generation 2

	m.content = "One. Two."
	m.Update(statsTickMsg{generation: 1})
	if m.stats.Sentences != 1 {
		t.Fatalf("stale tick must not recompute, got %d sentences", m.stats.Sentences)
	}

	m.Update(statsTickMsg{generation: 2})
	if m.stats.Sentences != 2 {
		t.Fatalf("latest tick must recompute, got %d sentences", m.stats.Sentences)
	}
}
