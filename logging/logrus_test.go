// SPDX-License-Identifier: MIT
package logging_test

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tbrpa/logging"
	"github.com/katalvlaran/tbrpa/rpa"
)

var _ rpa.Logger = (*logging.Logrus)(nil)

func TestFields(t *testing.T) {
	cases := []struct {
		name string
		args []any
		want logrus.Fields
	}{
		{"empty", nil, logrus.Fields{}},
		{"pairs", []any{"a", 1, "b", "x"}, logrus.Fields{"a": 1, "b": "x"}},
		{"dangling", []any{"a", 1, "b"}, logrus.Fields{"a": 1, "!BADKEY": "b"}},
		{"nonString", []any{7, true}, logrus.Fields{"7": true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, logging.Fields(tc.args...))
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, logging.ParseLevel("DEBUG"))
	assert.Equal(t, logrus.WarnLevel, logging.ParseLevel(" warn "))
	assert.Equal(t, logrus.WarnLevel, logging.ParseLevel("warning"))
	assert.Equal(t, logrus.ErrorLevel, logging.ParseLevel("error"))
	assert.Equal(t, logrus.InfoLevel, logging.ParseLevel("loud"))
}

func TestLogrus_WritesFieldsAndFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewLogrus("info", &buf)

	l.Debug("hidden", "k", 1)
	l.Info("run started", "tuples", 12, "threads", 3)
	l.Warn("diagonalization did not converge", "sweeps", 30)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `msg="[tbrpa] run started"`)
	assert.Contains(t, out, "tuples=12")
	assert.Contains(t, out, "threads=3")
	assert.Contains(t, out, "level=warning")
	assert.Contains(t, out, "sweeps=30")
}

func TestWrap(t *testing.T) {
	base := logrus.New()
	var buf bytes.Buffer
	base.SetOutput(&buf)
	base.SetLevel(logrus.ErrorLevel)
	l := logging.Wrap(base)
	require.Same(t, base, l.Logger())

	l.Info("skipped")
	l.Error("dyson failed", "q", "0.5")
	assert.NotContains(t, buf.String(), "skipped")
	assert.Contains(t, buf.String(), "q=0.5")
}
