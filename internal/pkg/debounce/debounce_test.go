package debounce_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/echosheet/internal/pkg/debounce"
)

type DebounceTestSuite struct {
	suite.Suite
	mu    sync.Mutex
	errs  []error
	d     *debounce.Debouncer
	ctx   context.Context
	delay time.Duration
}

func TestDebounceSuite(t *testing.T) {
	suite.Run(t, new(DebounceTestSuite))
}

func (s *DebounceTestSuite) SetupTest() {
	s.errs = nil
	s.delay = 30 * time.Millisecond
	s.ctx = context.Background()
	s.d = debounce.New(&debounce.Config{
		Delay: s.delay,
		OnError: func(_ string, err error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.errs = append(s.errs, err)
		},
	})
}

func (s *DebounceTestSuite) TearDownTest() {
	s.d.Stop()
}

func (s *DebounceTestSuite) TestBurstRunsOnce() {
	var calls atomic.Int32
	var last atomic.Int32

	for i := 1; i <= 5; i++ {
		v := int32(i)
		s.d.Schedule("inventory:1", func(context.Context) error {
			calls.Add(1)
			last.Store(v)
			return nil
		})
		time.Sleep(s.delay / 5)
	}

	s.Require().Eventually(func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(2 * s.delay)
	s.Assert().Equal(int32(1), calls.Load())
	s.Assert().Equal(int32(5), last.Load(), "the trailing call wins")
	s.Assert().Equal(0, s.d.Pending())
}

func (s *DebounceTestSuite) TestKeysAreIndependent() {
	var a, b atomic.Int32
	s.d.Schedule("a", func(context.Context) error { a.Add(1); return nil })
	s.d.Schedule("b", func(context.Context) error { b.Add(1); return nil })
	s.Assert().Equal(2, s.d.Pending())

	s.Require().Eventually(func() bool { return a.Load() == 1 && b.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func (s *DebounceTestSuite) TestTimerErrorsReported() {
	boom := errors.New("boom")
	s.d.Schedule("a", func(context.Context) error { return boom })

	s.Require().Eventually(func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		return len(s.errs) == 1
	}, time.Second, 5*time.Millisecond)
}

func (s *DebounceTestSuite) TestFlushRunsPendingNow() {
	var calls atomic.Int32
	slow := debounce.New(&debounce.Config{Delay: time.Hour})
	slow.Schedule("a", func(context.Context) error { calls.Add(1); return nil })
	slow.Schedule("b", func(context.Context) error { calls.Add(1); return nil })

	s.Require().NoError(slow.Flush(s.ctx))
	s.Assert().Equal(int32(2), calls.Load())
	s.Assert().Equal(0, slow.Pending())

	s.Require().NoError(slow.Flush(s.ctx), "empty flush")
}

func (s *DebounceTestSuite) TestFlushReturnsError() {
	boom := errors.New("boom")
	slow := debounce.New(&debounce.Config{Delay: time.Hour})
	slow.Schedule("a", func(context.Context) error { return boom })
	slow.Schedule("b", func(context.Context) error { return nil })

	s.Assert().ErrorIs(slow.Flush(s.ctx), boom)
}

func (s *DebounceTestSuite) TestStopDrops() {
	var calls atomic.Int32
	s.d.Schedule("a", func(context.Context) error { calls.Add(1); return nil })
	s.d.Stop()

	time.Sleep(3 * s.delay)
	s.Assert().Equal(int32(0), calls.Load())
}

func (s *DebounceTestSuite) TestDefaults() {
	cfg := &debounce.Config{}
	s.Require().NoError(cfg.Validate())
	s.Assert().Equal(debounce.DefaultDelay, cfg.Delay)
	s.Assert().NotNil(cfg.OnError)
}

func (s *DebounceTestSuite) TestCancelDropsOneKey() {
	var a, b atomic.Int32
	s.d.Schedule("a", func(context.Context) error { a.Add(1); return nil })
	s.d.Schedule("b", func(context.Context) error { b.Add(1); return nil })

	s.Assert().True(s.d.Cancel("a"))
	s.Assert().False(s.d.Cancel("a"))
	s.Assert().Equal(1, s.d.Pending())

	s.Require().NoError(s.d.Flush(s.ctx))
	s.Assert().Equal(int32(0), a.Load())
	s.Assert().Equal(int32(1), b.Load())
}
