package market

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testSnapshot(symbol string) Snapshot {
	return Snapshot{
		Symbol: symbol,
		Market: "KOSPI",
		Close:  decimal.NewFromInt(70000),
	}
}

func TestSnapshotCache_GetFresh(t *testing.T) {
	c := NewSnapshotCache(time.Minute)
	c.Update("005930", testSnapshot("005930"))

	snap, ok := c.Get("005930")
	assert.True(t, ok)
	assert.Equal(t, "005930", snap.Symbol)

	_, ok = c.Get("000660")
	assert.False(t, ok)
}

func TestSnapshotCache_ExpiredEntryEvictedOnGet(t *testing.T) {
	c := NewSnapshotCache(20 * time.Millisecond)
	c.Update("005930", testSnapshot("005930"))
	c.Update("000660", testSnapshot("000660"))
	assert.Equal(t, 2, c.Len())

	time.Sleep(40 * time.Millisecond)

	_, ok := c.Get("005930")
	assert.False(t, ok)
	// only the queried entry is removed lazily
	assert.Equal(t, 1, c.Len())
}

func TestSnapshotCache_UpdateRefreshesTimestamp(t *testing.T) {
	c := NewSnapshotCache(30 * time.Millisecond)
	c.Update("005930", testSnapshot("005930"))

	time.Sleep(20 * time.Millisecond)
	c.Update("005930", testSnapshot("005930"))
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("005930")
	assert.True(t, ok)
}

func TestSnapshotCache_GetAllSweeps(t *testing.T) {
	c := NewSnapshotCache(20 * time.Millisecond)
	c.Update("005930", testSnapshot("005930"))
	time.Sleep(40 * time.Millisecond)
	c.Update("000660", testSnapshot("000660"))

	all := c.GetAll()
	assert.Len(t, all, 1)
	assert.Contains(t, all, "000660")
	assert.Equal(t, 1, c.Len())

	syms := c.Symbols()
	assert.Equal(t, []string{"000660"}, syms)
}

func TestSnapshotCache_IsFreshHasNoSideEffect(t *testing.T) {
	c := NewSnapshotCache(20 * time.Millisecond)
	c.Update("005930", testSnapshot("005930"))
	time.Sleep(40 * time.Millisecond)

	assert.False(t, c.IsFresh("005930"))
	assert.Equal(t, 1, c.Len())

	age, ok := c.Age("005930")
	assert.True(t, ok)
	assert.Greater(t, age, 20*time.Millisecond)
}

func TestSnapshotCache_RemoveAndClear(t *testing.T) {
	c := NewSnapshotCache(time.Minute)
	c.Update("005930", testSnapshot("005930"))
	c.Update("000660", testSnapshot("000660"))

	c.Remove("005930")
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	_, ok := c.Age("005930")
	assert.False(t, ok)
}

func TestSnapshotCache_SetTTL(t *testing.T) {
	c := NewSnapshotCache(time.Hour)
	c.Update("005930", testSnapshot("005930"))
	c.SetTTL(time.Nanosecond)
	assert.Equal(t, time.Nanosecond, c.TTL())

	time.Sleep(time.Millisecond)
	_, ok := c.Get("005930")
	assert.False(t, ok)
}
