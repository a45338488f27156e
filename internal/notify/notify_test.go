// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pay-trial/internal/logger"
	"github.com/MKhiriev/go-pay-trial/models"
)

func note(title string) models.Notification {
	return models.Notification{Title: title, Body: "body", Severity: models.SeverityInfo}
}

func TestFeed_RecentNewestFirst(t *testing.T) {
	f := NewFeed(3)
	ctx := context.Background()

	assert.Empty(t, f.Recent(10))

	f.Notify(ctx, note("a"))
	f.Notify(ctx, note("b"))

	got := f.Recent(0)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Title)
	assert.Equal(t, "a", got[1].Title)
}

func TestFeed_DropsOldest(t *testing.T) {
	f := NewFeed(3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		f.Notify(ctx, note(fmt.Sprint(i)))
	}

	got := f.Recent(0)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"4", "3", "2"}, []string{got[0].Title, got[1].Title, got[2].Title})

	assert.Len(t, f.Recent(1), 1)
	assert.Equal(t, "4", f.Recent(1)[0].Title)
}

func TestNewFeed_DefaultSize(t *testing.T) {
	f := NewFeed(0)
	ctx := context.Background()

	for i := 0; i < DefaultFeedSize+10; i++ {
		f.Notify(ctx, note(fmt.Sprint(i)))
	}
	assert.Len(t, f.Recent(0), DefaultFeedSize)
}

type panicSink struct{}

func (panicSink) Notify(context.Context, models.Notification) { panic("sink is broken") }

func TestFanout_PanicIsolated(t *testing.T) {
	first := NewFeed(5)
	second := NewFeed(5)
	fan := NewFanout(logger.Nop(), first, panicSink{}, second)

	assert.NotPanics(t, func() {
		fan.Notify(context.Background(), note("hello"))
	})

	assert.Len(t, first.Recent(0), 1)
	assert.Len(t, second.Recent(0), 1)
}

func TestLogNotifier_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	l := &logger.Logger{Logger: zerolog.New(&buf)}

	NewLogNotifier(l).Notify(context.Background(), models.Notification{
		Title:    "Login failed",
		Body:     "Invalid email or password",
		Severity: models.SeverityError,
	})

	out := buf.String()
	assert.Contains(t, out, `"title":"Login failed"`)
	assert.Contains(t, out, `"severity":"error"`)
	assert.Contains(t, out, `"level":"warn"`)
}
