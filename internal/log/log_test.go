// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		name string
		want log.Level
	}{
		{"trace", log.DebugLevel},
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"fatal", log.FatalLevel},
		{"bogus", log.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, levelFor(tt.name))
		})
	}
}

// TestCustomHandler_Format verifies the single-letter level and trailing
// fields.
func TestCustomHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	h := &CustomHandler{Writer: &buf}

	logger := &log.Logger{Handler: h, Level: log.DebugLevel}
	logger.WithError(errors.New("boom")).Warn("cache write failed")

	out := buf.String()
	assert.Contains(t, out, " W cache write failed")
	assert.Contains(t, out, "error=boom")
}

// TestCustomHandler_Trace verifies TRACE-prefixed messages render as T.
func TestCustomHandler_Trace(t *testing.T) {
	var buf bytes.Buffer
	h := &CustomHandler{Writer: &buf}

	logger := &log.Logger{Handler: h, Level: log.DebugLevel}
	logger.Debug("TRACE: deep detail")

	assert.Contains(t, buf.String(), " T deep detail")
}
