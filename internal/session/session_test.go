package session_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/teleprompter/internal/chunk"
	"github.com/san-kum/teleprompter/internal/pace"
	"github.com/san-kum/teleprompter/internal/session"
	"github.com/zoobzio/clockz"
)

type fakeClock interface {
	clockz.Clock
	Advance(time.Duration)
	BlockUntilReady()
}

type recordingClock struct {
	fakeClock
	waits chan time.Duration
}

func (c *recordingClock) After(d time.Duration) <-chan time.Time {
	ch := c.fakeClock.After(d)
	c.waits <- d
	return ch
}

// advance moves the fake time forward and delivers the timers that fired.
func (c *recordingClock) advance(d time.Duration) {
	c.Advance(d)
	c.BlockUntilReady()
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type outcome struct {
	res session.Result
	err error
}

var _ = Describe("Session", func() {
	var (
		dir    string
		out    *syncBuffer
		keys   *os.File
		typist *os.File
		p      *pace.Config
		clock  *recordingClock
	)

	writeSource := func(text string) string {
		path := filepath.Join(dir, "sampleQuotes.txt")
		Expect(os.WriteFile(path, []byte(text), 0644)).To(Succeed())
		return path
	}

	start := func(ctx context.Context, path string) <-chan outcome {
		done := make(chan outcome, 1)
		s := session.New(path, out, keys, p).WithClock(clock)
		go func() {
			res, err := s.Run(ctx)
			done <- outcome{res, err}
		}()
		return done
	}

	nextWait := func() time.Duration {
		var d time.Duration
		Eventually(clock.waits).Should(Receive(&d))
		return d
	}

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		out = &syncBuffer{}
		p = pace.New()
		clock = &recordingClock{fakeClock: clockz.NewFakeClock(), waits: make(chan time.Duration, 16)}

		var err error
		keys, typist, err = os.Pipe()
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(keys.Close)
		DeferCleanup(typist.Close)
	})

	It("shows the whole text at the default pace and releases the keyboard", func() {
		done := start(context.Background(), writeSource("hello world"))

		Expect(nextWait()).To(Equal(200 * time.Millisecond))
		Expect(out.String()).To(Equal("hello "))
		clock.advance(200 * time.Millisecond)

		Expect(nextWait()).To(Equal(200 * time.Millisecond))
		Expect(out.String()).To(Equal("hello world "))
		clock.advance(200 * time.Millisecond)

		var o outcome
		Eventually(done).Should(Receive(&o))
		Expect(o.err).NotTo(HaveOccurred())
		Expect(o.res).To(Equal(session.Result{Finished: true, DelayMs: 200}))
		Expect(out.String()).To(Equal("hello world " + chunk.Newline))
		Expect(p.IsDone()).To(BeTrue())
		Consistently(clock.waits).ShouldNot(Receive())
	})

	It("finishes an empty text without writing or waiting", func() {
		done := start(context.Background(), writeSource(""))

		var o outcome
		Eventually(done).Should(Receive(&o))
		Expect(o.err).NotTo(HaveOccurred())
		Expect(o.res.Finished).To(BeTrue())
		Expect(out.String()).To(BeEmpty())
		Expect(clock.waits).To(BeEmpty())
	})

	It("applies speed keys from the next word on", func() {
		done := start(context.Background(), writeSource("one two three"))

		Expect(nextWait()).To(Equal(200 * time.Millisecond))
		_, err := typist.WriteString("<")
		Expect(err).NotTo(HaveOccurred())
		Eventually(p.CurrentDelay).Should(Equal(210))
		clock.advance(200 * time.Millisecond)

		Expect(nextWait()).To(Equal(210 * time.Millisecond))
		_, err = typist.WriteString(">>")
		Expect(err).NotTo(HaveOccurred())
		Eventually(p.CurrentDelay).Should(Equal(190))
		clock.advance(210 * time.Millisecond)

		Expect(nextWait()).To(Equal(190 * time.Millisecond))
		clock.advance(190 * time.Millisecond)

		var o outcome
		Eventually(done).Should(Receive(&o))
		Expect(o.res).To(Equal(session.Result{Finished: true, DelayMs: 190}))
	})

	It("stops the display when the quit key is pressed", func() {
		done := start(context.Background(), writeSource("hello world"))

		nextWait()
		_, err := typist.WriteString("x")
		Expect(err).NotTo(HaveOccurred())

		var o outcome
		Eventually(done).Should(Receive(&o))
		Expect(o.err).NotTo(HaveOccurred())
		Expect(o.res.Finished).To(BeFalse())
		Expect(out.String()).To(Equal("hello "))
		Expect(p.IsDone()).To(BeTrue())
	})

	It("ends both loops when the context is canceled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		done := start(ctx, writeSource("hello world"))

		nextWait()
		cancel()

		var o outcome
		Eventually(done).Should(Receive(&o))
		Expect(o.err).NotTo(HaveOccurred())
		Expect(o.res.Finished).To(BeFalse())
		Expect(p.IsDone()).To(BeFalse())
	})

	It("fails when the source cannot be opened", func() {
		done := start(context.Background(), filepath.Join(dir, "missing.txt"))

		var o outcome
		Eventually(done).Should(Receive(&o))
		Expect(o.err).To(MatchError(chunk.ErrSourceUnavailable))
		Expect(o.res.Finished).To(BeFalse())
		Expect(out.String()).To(BeEmpty())
		Expect(p.IsDone()).To(BeFalse())
	})
})
