package engine

import (
	"context"
	"errors"
	"time"

	"github.com/benbjohnson/clock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"
	"go.uber.org/goleak"

	"github.com/san-kum/portfolio/internal/bubble"
	"github.com/san-kum/portfolio/internal/sequence"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.StepDelay = 0
	cfg.Pause = 0
	cfg.Source = sequence.NewSource(11)
	cfg.Logger = zerolog.Nop()
	return cfg
}

func receive(h *Handle) Frame {
	select {
	case f, ok := <-h.Frames():
		ExpectWithOffset(1, ok).To(BeTrue(), "frames closed")
		return f
	case <-time.After(time.Second):
		Fail("no frame within 1s", 1)
		return Frame{}
	}
}

// readCycle consumes frames up to and including the next paused frame.
func readCycle(h *Handle) []Frame {
	var frames []Frame
	for {
		f := receive(h)
		frames = append(frames, f)
		if f.State == Paused {
			return frames
		}
	}
}

var _ = Describe("Engine", func() {
	var leakOpts goleak.Option

	BeforeEach(func() {
		leakOpts = goleak.IgnoreCurrent()
	})

	AfterEach(func() {
		goleak.VerifyNone(GinkgoT(), leakOpts)
	})

	Describe("New", func() {
		It("rejects inverted bounds", func() {
			cfg := testConfig()
			cfg.MinValue, cfg.MaxValue = 90, 10
			_, err := New(cfg)
			Expect(errors.Is(err, sequence.ErrInvalidArgument)).To(BeTrue())
		})

		It("rejects a negative count", func() {
			cfg := testConfig()
			cfg.Count = -1
			_, err := New(cfg)
			Expect(errors.Is(err, sequence.ErrInvalidArgument)).To(BeTrue())
		})

		It("rejects negative delays", func() {
			cfg := testConfig()
			cfg.StepDelay = -time.Millisecond
			_, err := New(cfg)
			Expect(errors.Is(err, sequence.ErrInvalidArgument)).To(BeTrue())

			cfg = testConfig()
			cfg.Pause = -time.Second
			_, err = New(cfg)
			Expect(errors.Is(err, sequence.ErrInvalidArgument)).To(BeTrue())
		})

		It("fills in a clock and a source", func() {
			cfg := testConfig()
			cfg.Clock, cfg.Source = nil, nil
			e, err := New(cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(e.Config().Clock).NotTo(BeNil())
			Expect(e.Config().Source).NotTo(BeNil())
			Expect(e.State()).To(Equal(Idle))
		})
	})

	Describe("a sort cycle", func() {
		It("publishes adjacent swaps ending in a sorted permutation", func() {
			e, err := New(testConfig())
			Expect(err).NotTo(HaveOccurred())
			h := e.Start(context.Background())
			defer h.Stop()

			frames := readCycle(h)
			initial := frames[0]
			Expect(initial.State).To(Equal(Sorting))
			Expect(initial.Swapped).To(Equal(-1))
			Expect(initial.Sequence).To(HaveLen(sequence.DefaultCount))
			for _, v := range initial.Sequence {
				Expect(v).To(BeNumerically(">=", sequence.DefaultMin))
				Expect(v).To(BeNumerically("<=", sequence.DefaultMax))
			}

			swaps := frames[1 : len(frames)-1]
			Expect(swaps).To(HaveLen(bubble.CountSwaps(initial.Sequence)))

			prev := initial.Sequence
			for i, f := range swaps {
				Expect(f.State).To(Equal(Sorting))
				Expect(f.Swaps).To(Equal(i + 1))
				j := f.Swapped
				Expect(f.Sequence.IsPermutationOf(prev)).To(BeTrue())
				Expect(f.Sequence[j]).To(Equal(prev[j+1]))
				Expect(f.Sequence[j+1]).To(Equal(prev[j]))
				Expect(prev[j]).To(BeNumerically(">", prev[j+1]))
				prev = f.Sequence
			}

			paused := frames[len(frames)-1]
			Expect(paused.Swapped).To(Equal(-1))
			Expect(paused.Sequence.IsSorted()).To(BeTrue())
			Expect(paused.Sequence.IsPermutationOf(initial.Sequence)).To(BeTrue())
			Expect(paused.Sequence.Equal(prev)).To(BeTrue())
		})

		It("regenerates a fresh sequence after every pause", func() {
			e, err := New(testConfig())
			Expect(err).NotTo(HaveOccurred())
			h := e.Start(context.Background())
			defer h.Stop()

			first := readCycle(h)
			second := readCycle(h)
			Expect(first[0].Cycle).To(Equal(1))
			Expect(second[0].Cycle).To(Equal(2))
			Expect(second[0].State).To(Equal(Sorting))
			Expect(second[0].Sequence.Equal(first[0].Sequence)).To(BeFalse())
			Expect(e.Cycles()).To(BeNumerically(">=", 2))
		})

		DescribeTable("trivial sequences pause straight away",
			func(count int) {
				cfg := testConfig()
				cfg.Count = count
				e, err := New(cfg)
				Expect(err).NotTo(HaveOccurred())
				h := e.Start(context.Background())
				defer h.Stop()

				frames := readCycle(h)
				Expect(frames).To(HaveLen(2))
				Expect(frames[0].State).To(Equal(Sorting))
				Expect(frames[1].State).To(Equal(Paused))
				Expect(frames[1].Swaps).To(BeZero())
				Expect(frames[1].Sequence).To(HaveLen(count))
			},
			Entry("empty", 0),
			Entry("single", 1),
		)

		It("hands out snapshots the engine no longer touches", func() {
			e, err := New(testConfig())
			Expect(err).NotTo(HaveOccurred())
			h := e.Start(context.Background())
			defer h.Stop()

			frames := readCycle(h)
			snapshot := frames[0].Sequence.Clone()
			frames[0].Sequence[0] = -1
			Expect(frames[len(frames)-1].Sequence.IsPermutationOf(snapshot)).To(BeTrue())
		})
	})

	Describe("pacing", func() {
		var mock *clock.Mock

		BeforeEach(func() {
			mock = clock.NewMock()
		})

		It("waits one step delay after each swap", func() {
			cfg := testConfig()
			cfg.Clock = mock
			cfg.StepDelay = 50 * time.Millisecond
			cfg.Pause = 2 * time.Second
			cfg.Count = 2
			cfg.MinValue, cfg.MaxValue = 1, 1000
			// pick a seed whose first pair is out of order
			for seed := int64(1); ; seed++ {
				s, _ := sequence.Generate(sequence.NewSource(seed), 2, 1, 1000)
				if s[0] > s[1] {
					cfg.Source = sequence.NewSource(seed)
					break
				}
			}

			e, err := New(cfg)
			Expect(err).NotTo(HaveOccurred())
			h := e.Start(context.Background())
			defer h.Stop()

			Expect(receive(h).Swapped).To(Equal(-1))
			Expect(receive(h).Swapped).To(Equal(0))
			Consistently(h.Frames(), 100*time.Millisecond).ShouldNot(Receive())

			mock.Add(50 * time.Millisecond)
			paused := receive(h)
			Expect(paused.State).To(Equal(Paused))
			Expect(e.State()).To(Equal(Paused))

			Consistently(h.Frames(), 100*time.Millisecond).ShouldNot(Receive())
			mock.Add(2 * time.Second)
			next := receive(h)
			Expect(next.Cycle).To(Equal(2))
			Expect(next.State).To(Equal(Sorting))
		})
	})

	Describe("stopping", func() {
		It("is safe before start and when repeated", func() {
			e, err := New(testConfig())
			Expect(err).NotTo(HaveOccurred())
			Expect(e.Stop).NotTo(Panic())
			Expect(e.Stop).NotTo(Panic())

			var h *Handle
			Expect(h.Stop).NotTo(Panic())
		})

		It("cancels a pending delay and closes the feed", func() {
			cfg := testConfig()
			cfg.Clock = clock.NewMock()
			cfg.StepDelay = time.Hour
			cfg.Pause = time.Hour
			e, err := New(cfg)
			Expect(err).NotTo(HaveOccurred())
			h := e.Start(context.Background())

			receive(h)
			receive(h)

			h.Stop()
			h.Stop()
			e.Stop()

			Eventually(h.Done()).Should(BeClosed())
			Eventually(h.Frames()).Should(BeClosed())
			Expect(e.State()).To(Equal(Idle))
		})

		It("unblocks a driver that nobody is reading from", func() {
			e, err := New(testConfig())
			Expect(err).NotTo(HaveOccurred())
			h := e.Start(context.Background())

			done := make(chan struct{})
			go func() {
				defer close(done)
				h.Stop()
			}()
			Eventually(done, time.Second).Should(BeClosed())
		})

		It("follows the parent context", func() {
			ctx, cancel := context.WithCancel(context.Background())
			e, err := New(testConfig())
			Expect(err).NotTo(HaveOccurred())
			h := e.Start(ctx)
			receive(h)

			cancel()
			Eventually(h.Done(), time.Second).Should(BeClosed())
		})

		It("returns the live handle while running and a new one after stop", func() {
			e, err := New(testConfig())
			Expect(err).NotTo(HaveOccurred())

			first := e.Start(context.Background())
			Expect(e.Start(context.Background())).To(BeIdenticalTo(first))

			first.Stop()
			second := e.Start(context.Background())
			Expect(second).NotTo(BeIdenticalTo(first))
			receive(second)
			second.Stop()
		})
	})
})
