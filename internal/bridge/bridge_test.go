package bridge_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/hanoisim/internal/bridge"
	"github.com/san-kum/hanoisim/internal/hanoi"
)

// await runs AwaitMoveOrFinish on its own goroutine.
func await(b *bridge.Bridge) <-chan bridge.Update {
	ch := make(chan bridge.Update, 1)
	go func() { ch <- b.AwaitMoveOrFinish() }()
	return ch
}

var _ = Describe("Bridge", func() {
	var b *bridge.Bridge

	Context("in sleep mode", func() {
		BeforeEach(func() {
			b = bridge.New(bridge.ModeSleep)
		})

		It("blocks the presenter until something is published", func() {
			updates := await(b)
			Consistently(updates, 50*time.Millisecond).ShouldNot(Receive())

			b.PublishMove(hanoi.Move{From: 0, To: 2}, hanoi.Snapshot{})

			var u bridge.Update
			Eventually(updates).Should(Receive(&u))
			Expect(u.Signal).To(Equal(bridge.SignalMove))
			Expect(u.Iteration).To(Equal(1))
			Expect(u.Move).To(Equal(hanoi.Move{From: 0, To: 2}))
		})

		It("does not block the publisher", func() {
			done := make(chan int)
			go func() {
				b.PublishMove(hanoi.Move{}, hanoi.Snapshot{})
				done <- b.PublishMove(hanoi.Move{}, hanoi.Snapshot{})
			}()
			Eventually(done).Should(Receive(Equal(2)))
		})

		It("keeps reporting a pending move until it is acknowledged", func() {
			b.PublishMove(hanoi.Move{From: 1, To: 0}, hanoi.Snapshot{})
			Expect(b.AwaitMoveOrFinish().Signal).To(Equal(bridge.SignalMove))
			Expect(b.AwaitMoveOrFinish().Signal).To(Equal(bridge.SignalMove))

			b.Acknowledge()
			updates := await(b)
			Consistently(updates, 50*time.Millisecond).ShouldNot(Receive())
			b.PublishFinished()
			Eventually(updates).Should(Receive(HaveField("Signal", bridge.SignalFinished)))
		})

		It("reports a pending move before completion", func() {
			b.PublishMove(hanoi.Move{From: 0, To: 1}, hanoi.Snapshot{})
			b.PublishFinished()

			Expect(b.AwaitMoveOrFinish().Signal).To(Equal(bridge.SignalMove))
			b.Acknowledge()
			Expect(b.AwaitMoveOrFinish().Signal).To(Equal(bridge.SignalFinished))
			Expect(b.Finished()).To(BeTrue())
		})

		It("carries the published board snapshot", func() {
			snap := hanoi.Snapshot{Towers: [hanoi.NumTowers][]hanoi.Placed{nil, nil, {{Disk: hanoi.Disk{Rank: 1}}}}}
			b.PublishMove(hanoi.Move{From: 0, To: 2}, snap)
			Expect(b.AwaitMoveOrFinish().Board.Ranks(2)).To(Equal([]int{1}))
		})
	})

	Context("in handshake mode", func() {
		BeforeEach(func() {
			b = bridge.New(bridge.ModeHandshake)
		})

		It("holds the publisher until the move is acknowledged", func() {
			published := make(chan int, 1)
			go func() { published <- b.PublishMove(hanoi.Move{}, hanoi.Snapshot{}) }()

			Eventually(b.Iteration).Should(Equal(1))
			Consistently(published, 50*time.Millisecond).ShouldNot(Receive())

			Expect(b.AwaitMoveOrFinish().Signal).To(Equal(bridge.SignalMove))
			b.Acknowledge()
			Eventually(published).Should(Receive(Equal(1)))
		})

		It("delivers every iteration exactly once", func() {
			const moves = 63
			go func() {
				for i := 0; i < moves; i++ {
					b.PublishMove(hanoi.Move{}, hanoi.Snapshot{})
				}
				b.PublishFinished()
			}()

			var seen []int
			for {
				u := b.AwaitMoveOrFinish()
				if u.Signal != bridge.SignalMove {
					break
				}
				seen = append(seen, u.Iteration)
				b.Acknowledge()
			}

			Expect(seen).To(HaveLen(moves))
			for i, it := range seen {
				Expect(it).To(Equal(i + 1))
			}
		})

		It("releases a waiting publisher on close", func() {
			published := make(chan int, 1)
			go func() { published <- b.PublishMove(hanoi.Move{}, hanoi.Snapshot{}) }()
			Eventually(b.Iteration).Should(Equal(1))

			b.Close()
			Eventually(published).Should(Receive())
			Expect(b.PublishMove(hanoi.Move{}, hanoi.Snapshot{})).To(Equal(2))
		})
	})

	Describe("Close", func() {
		It("wakes a blocked presenter", func() {
			b = bridge.New(bridge.ModeSleep)
			updates := await(b)
			b.Close()
			Eventually(updates).Should(Receive(HaveField("Signal", bridge.SignalClosed)))
			Expect(b.Closed()).To(BeTrue())
		})
	})

	Describe("AwaitTimeout", func() {
		BeforeEach(func() {
			b = bridge.New(bridge.ModeSleep)
		})

		It("gives up when nothing is published", func() {
			start := time.Now()
			u, ok := b.AwaitTimeout(20 * time.Millisecond)
			Expect(ok).To(BeFalse())
			Expect(u.Signal).To(Equal(bridge.SignalNone))
			Expect(time.Since(start)).To(BeNumerically(">=", 20*time.Millisecond))
		})

		It("returns early on a move", func() {
			go func() {
				time.Sleep(10 * time.Millisecond)
				b.PublishMove(hanoi.Move{From: 2, To: 1}, hanoi.Snapshot{})
			}()
			u, ok := b.AwaitTimeout(5 * time.Second)
			Expect(ok).To(BeTrue())
			Expect(u.Move).To(Equal(hanoi.Move{From: 2, To: 1}))
		})
	})

	DescribeTable("ParseMode",
		func(in string, want bridge.Mode, fails bool) {
			got, err := bridge.ParseMode(in)
			if fails {
				Expect(err).To(HaveOccurred())
				return
			}
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("default", "", bridge.ModeSleep, false),
		Entry("sleep", "sleep", bridge.ModeSleep, false),
		Entry("handshake", "handshake", bridge.ModeHandshake, false),
		Entry("unknown", "rendezvous", bridge.Mode(0), true),
	)
})
