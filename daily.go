package main

import (
	"sync"
	"time"
)

// dailyEpoch anchors the daily word sequence. The same date always maps to
// the same answer index, so restarts keep the day's word stable.
var dailyEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// DailyWord holds the current daily word with thread-safe access.
type DailyWord struct {
	word string
	date string
	mu   sync.RWMutex
}

// Get returns the cached word and its date.
func (dw *DailyWord) Get() (word, date string) {
	dw.mu.RLock()
	defer dw.mu.RUnlock()
	return dw.word, dw.date
}

// Set replaces the cached word and date.
func (dw *DailyWord) Set(word, date string) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	dw.word = word
	dw.date = date
}

// dailyIndexFor maps a point in time to the answer index for that UTC day.
func dailyIndexFor(t time.Time) int {
	days := int(t.UTC().Sub(dailyEpoch).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return days
}

// currentDailyWord returns today's shared secret, rolling it over when the
// UTC date changes.
func (app *App) currentDailyWord() (word, date string, err error) {
	now := time.Now().UTC()
	date = now.Format("2006-01-02")

	if w, d := app.Daily.Get(); d == date {
		return w, d, nil
	}

	word, err = app.Catalog.SecretAt(dailyIndexFor(now))
	if err != nil {
		return "", "", err
	}
	app.Daily.Set(word, date)
	logInfo("Daily word rolled over for %s", date)
	return word, date, nil
}
