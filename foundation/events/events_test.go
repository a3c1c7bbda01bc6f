package events_test

import (
	"fmt"
	"testing"

	"github.com/ardanlabs/memochain/foundation/events"
)

func Test_SendReceive(t *testing.T) {
	evts := events.New()

	ch1 := evts.Acquire("one")
	ch2 := evts.Acquire("two")

	if evts.Acquire("one") != ch1 {
		t.Fatalf("Should get back the same channel for the same id.")
	}

	if evts.Subscribers() != 2 {
		t.Logf("got: %d", evts.Subscribers())
		t.Logf("exp: %d", 2)
		t.Fatalf("Should have two subscribers.")
	}

	evts.Send("chain: Append: blk[0]")

	for i, ch := range []<-chan string{ch1, ch2} {
		if msg := <-ch; msg != "chain: Append: blk[0]" {
			t.Logf("got: %s", msg)
			t.Fatalf("Should receive the message on subscriber %d.", i)
		}
	}

	if err := evts.Release("one"); err != nil {
		t.Fatalf("Should be able to release a subscriber: %s", err)
	}

	if _, open := <-ch1; open {
		t.Fatalf("Should close the channel on release.")
	}

	if err := evts.Release("one"); err == nil {
		t.Fatalf("Should not be able to release an unknown subscriber.")
	}

	evts.Shutdown()

	if _, open := <-ch2; open {
		t.Fatalf("Should close the channel on shutdown.")
	}

	if evts.Subscribers() != 0 {
		t.Fatalf("Should have no subscribers after shutdown.")
	}
}

func Test_SendDoesNotBlock(t *testing.T) {
	evts := events.New()
	ch := evts.Acquire("slow")

	for i := range 1000 {
		evts.Send(fmt.Sprintf("msg %d", i))
	}

	if msg := <-ch; msg != "msg 0" {
		t.Logf("got: %s", msg)
		t.Logf("exp: %s", "msg 0")
		t.Fatalf("Should keep the oldest buffered messages.")
	}
}
