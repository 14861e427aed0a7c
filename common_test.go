package slist_test

import (
	"flag"
	"fmt"
	"os"
	"testing"

	"github.com/ddirect/slist"
	"github.com/stretchr/testify/assert"
)

type LogFunc func(t *testing.T, data []byte)

var logFile string

func init() {
	flag.StringVar(&logFile, "logfile", "", "logfile to use")
}

func makeLogFunc(logFile string) LogFunc {
	if logFile == "" {
		return func(t *testing.T, data []byte) {
			t.Logf("%s\n", data)
		}
	}

	logout, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		panic(fmt.Errorf("open: %w", err))
	}

	return func(t *testing.T, data []byte) {
		if _, err := logout.Write(append(data, '\n')); err != nil {
			panic(fmt.Errorf("write: %w", err))
		}
	}
}

type int32B int32

func (a int32B) Before(b int32B) bool {
	return a < b
}

func assertPanicsWith(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		err, _ := recover().(error)
		assert.ErrorIs(t, err, target)
	}()
	f()
}

// collect returns the content of l, checking that the stored size matches the chain length.
func collect[T any](t *testing.T, l *slist.List[T]) []T {
	t.Helper()
	s := l.Slice()
	assert.Equal(t, len(s), l.Len())
	assert.Equal(t, len(s) == 0, l.IsEmpty())
	return s
}
