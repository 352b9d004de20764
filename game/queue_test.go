package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Unix(1700000000, 0)

func TestIntentQueue_DrainFIFO(t *testing.T) {
	q := NewIntentQueue(2)
	q.Push(Intent{Kind: IntentBulletHit, Other: 1})
	q.Push(Intent{Kind: IntentPlayerContact, Other: 2})
	q.Push(Intent{Kind: IntentKillingFloor, Other: 3})

	var seen []uint64
	n := q.Drain(func(in Intent) {
		seen = append(seen, uint64(in.Other))
		// Intents pushed while draining run in the same drain
		if in.Other == 1 {
			q.Push(Intent{Kind: IntentBulletHit, Other: 4})
		}
	})
	assert.Equal(t, 4, n)
	assert.Equal(t, []uint64{1, 2, 3, 4}, seen)
	assert.Zero(t, q.Len())
	assert.Zero(t, q.Drain(func(Intent) { t.Fatal("queue should be empty") }))
}

func TestTimerQueue_RunsDueInOrder(t *testing.T) {
	var q TimerQueue
	var order []string
	q.After(testNow, 2*time.Second, func() { order = append(order, "b") })
	q.After(testNow, time.Second, func() { order = append(order, "a") })
	q.After(testNow, 2*time.Second, func() { order = append(order, "c") })

	assert.Zero(t, q.RunDue(testNow.Add(999*time.Millisecond)))
	assert.Equal(t, 1, q.RunDue(testNow.Add(time.Second)))
	assert.Equal(t, 2, q.RunDue(testNow.Add(5*time.Second)))
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Zero(t, q.Len())
}
