package log

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	l := New()

	lr, ok := l.(*logrus.Logger)
	require.True(t, ok, "expected a logrus logger, got %T", l)
	assert.Equal(t, logrus.DebugLevel, lr.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, lr.Formatter)
}

func TestNullLogger(t *testing.T) {
	l := NewNullLogger()

	lr, ok := l.(*logrus.Logger)
	require.True(t, ok, "expected a logrus logger, got %T", l)
	assert.False(t, lr.IsLevelEnabled(logrus.ErrorLevel))
	assert.NotPanics(t, func() {
		l.Infof("%d", 1)
		l.Errorf("%s", "x")
		l.Debugf("")
	})
}
