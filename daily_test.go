package main

import (
	"testing"
	"time"
)

func TestDailyIndexFor(t *testing.T) {
	if got := dailyIndexFor(dailyEpoch); got != 0 {
		t.Errorf("dailyIndexFor(epoch) = %d, want 0", got)
	}
	if got := dailyIndexFor(dailyEpoch.AddDate(0, 0, 3)); got != 3 {
		t.Errorf("dailyIndexFor(epoch+3d) = %d, want 3", got)
	}
	// Times within the same UTC day map to the same index.
	morning := dailyEpoch.AddDate(0, 0, 10).Add(2 * time.Hour)
	evening := dailyEpoch.AddDate(0, 0, 10).Add(23 * time.Hour)
	if dailyIndexFor(morning) != dailyIndexFor(evening) {
		t.Error("dailyIndexFor differs within the same day")
	}
	// Dates before the epoch clamp instead of going negative.
	if got := dailyIndexFor(dailyEpoch.AddDate(0, 0, -5)); got != 0 {
		t.Errorf("dailyIndexFor(before epoch) = %d, want 0", got)
	}
}

func TestCurrentDailyWordIsStable(t *testing.T) {
	app := newTestApp(t)

	word1, date1, err := app.currentDailyWord()
	if err != nil {
		t.Fatalf("currentDailyWord returned error: %v", err)
	}
	word2, date2, err := app.currentDailyWord()
	if err != nil {
		t.Fatalf("currentDailyWord returned error: %v", err)
	}

	if word1 != word2 || date1 != date2 {
		t.Errorf("currentDailyWord not stable: (%q, %q) vs (%q, %q)", word1, date1, word2, date2)
	}

	expected, err := app.Catalog.SecretAt(dailyIndexFor(time.Now().UTC()))
	if err != nil {
		t.Fatalf("SecretAt returned error: %v", err)
	}
	if word1 != expected {
		t.Errorf("daily word = %q, want SecretAt index word %q", word1, expected)
	}
}

func TestDailyWordRollsOnNewDate(t *testing.T) {
	app := newTestApp(t)
	app.Daily.Set("STALE", "1999-12-31")

	word, date, err := app.currentDailyWord()
	if err != nil {
		t.Fatalf("currentDailyWord returned error: %v", err)
	}
	if word == "STALE" {
		t.Error("currentDailyWord kept the stale word after the date changed")
	}
	if date != time.Now().UTC().Format("2006-01-02") {
		t.Errorf("daily date = %q, want today", date)
	}
}
