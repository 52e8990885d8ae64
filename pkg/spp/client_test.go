// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

package spp

import (
	"errors"
	"testing"
	"time"
)

var errTimedOut = errors.New("read timed out")
var errRefused = errors.New("connection refused")

// fakeConn scripts a speaker session. Reads answer the most recently
// written query; ids in failReads time out instead.
type fakeConn struct {
	writes    [][]byte
	responses map[uint8][]byte // keyed by command id of the last write
	failReads map[uint8]bool
	writeErr  error
	closed    int
	timeouts  []time.Duration
}

func (f *fakeConn) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	cp := make([]byte, len(p))
	copy(cp, p)
	f.writes = append(f.writes, cp)
	return len(p), nil
}

func (f *fakeConn) Read(p []byte) (int, error) {
	if len(f.writes) == 0 {
		return 0, errTimedOut
	}
	last := f.writes[len(f.writes)-1]
	if len(last) < 3 {
		return 0, errTimedOut
	}
	id := last[2]
	if f.failReads[id] {
		return 0, errTimedOut
	}
	resp, ok := f.responses[id]
	if !ok {
		return 0, errTimedOut
	}
	return copy(p, resp), nil
}

func (f *fakeConn) Close() error {
	f.closed++
	return nil
}

func (f *fakeConn) SetReadTimeout(d time.Duration) error {
	f.timeouts = append(f.timeouts, d)
	return nil
}

type fakeDialer struct {
	conn  *fakeConn
	err   error
	dials int
}

func (f *fakeDialer) Dial(address string, channel uint8) (Conn, error) {
	f.dials++
	if f.err != nil {
		return nil, f.err
	}
	return f.conn, nil
}

// newTestClient wires a client to a fake dialer with a fixed channel and
// no real sleeping.
func newTestClient(d Dialer) (*Client, *[]time.Duration) {
	var slept []time.Duration
	c := NewClient("88:C6:26:11:22:33")
	c.Dialer = d
	c.resolve = func(string) (uint8, bool) { return DefaultChannel, false }
	c.sleep = func(dur time.Duration) { slept = append(slept, dur) }
	return c, &slept
}

// envelope builds the response frame observed in real traffic.
func envelope(id, value uint8) []byte {
	return []byte{0x05, 0x00, 0x00, 0x01, id, value}
}

func TestSend(t *testing.T) {
	t.Run("write success with silent speaker is still success", func(t *testing.T) {
		conn := &fakeConn{} // every read times out
		d := &fakeDialer{conn: conn}
		c, _ := newTestClient(d)

		if !c.Send([]byte{0x02, 0x01, 0x6B}) {
			t.Error("Send returned false although the write succeeded")
		}
		if len(conn.writes) != 1 {
			t.Fatalf("writes = %d, want 1", len(conn.writes))
		}
		if conn.closed != 1 {
			t.Errorf("connection closed %d times, want 1", conn.closed)
		}
	})

	t.Run("connect failure returns false", func(t *testing.T) {
		d := &fakeDialer{err: errRefused}
		c, _ := newTestClient(d)

		if c.Send([]byte{0x02, 0x01, 0x6B}) {
			t.Error("Send returned true despite connect failure")
		}
	})

	t.Run("write failure returns false and closes", func(t *testing.T) {
		conn := &fakeConn{writeErr: errors.New("broken pipe")}
		d := &fakeDialer{conn: conn}
		c, _ := newTestClient(d)

		if c.Send([]byte{0x02, 0x01, 0x6B}) {
			t.Error("Send returned true despite write failure")
		}
		if conn.closed != 1 {
			t.Errorf("connection closed %d times, want 1", conn.closed)
		}
	})

	t.Run("settle delay before the response read", func(t *testing.T) {
		conn := &fakeConn{}
		d := &fakeDialer{conn: conn}
		c, slept := newTestClient(d)

		c.Send([]byte{0x02, 0x01, 0x6B})
		if len(*slept) != 1 || (*slept)[0] != settleDelay {
			t.Errorf("slept %v, want [%v]", *slept, settleDelay)
		}
	})
}

func TestQueryOne(t *testing.T) {
	t.Run("value extracted from response", func(t *testing.T) {
		conn := &fakeConn{responses: map[uint8][]byte{0x64: envelope(0x64, 0x02)}}
		d := &fakeDialer{conn: conn}
		c, _ := newTestClient(d)

		v, ok := c.QueryOne(0x64)
		if !ok || v != 0x02 {
			t.Errorf("QueryOne = (0x%02X, %v), want (0x02, true)", v, ok)
		}
		if conn.closed != 1 {
			t.Errorf("connection closed %d times, want 1", conn.closed)
		}
	})

	t.Run("read timeout is absent", func(t *testing.T) {
		conn := &fakeConn{failReads: map[uint8]bool{0x64: true}}
		d := &fakeDialer{conn: conn}
		c, _ := newTestClient(d)

		if _, ok := c.QueryOne(0x64); ok {
			t.Error("QueryOne reported a value after a read timeout")
		}
		if conn.closed != 1 {
			t.Errorf("connection closed %d times, want 1", conn.closed)
		}
	})

	t.Run("connect failure is absent", func(t *testing.T) {
		d := &fakeDialer{err: errRefused}
		c, _ := newTestClient(d)

		if _, ok := c.QueryOne(0x64); ok {
			t.Error("QueryOne reported a value despite connect failure")
		}
	})

	t.Run("paces transmit and read", func(t *testing.T) {
		conn := &fakeConn{responses: map[uint8][]byte{0x64: envelope(0x64, 0x00)}}
		d := &fakeDialer{conn: conn}
		c, slept := newTestClient(d)

		c.QueryOne(0x64)
		want := []time.Duration{settleDelay, queryDelay}
		if len(*slept) != len(want) || (*slept)[0] != want[0] || (*slept)[1] != want[1] {
			t.Errorf("slept %v, want %v", *slept, want)
		}
	})
}

func TestQueryMany(t *testing.T) {
	t.Run("one connection, every id answered or absent", func(t *testing.T) {
		conn := &fakeConn{
			responses: map[uint8][]byte{
				0x64: envelope(0x64, 0x01),
				0xB9: envelope(0xB9, 0x01),
			},
			failReads: map[uint8]bool{0x69: true},
		}
		d := &fakeDialer{conn: conn}
		c, _ := newTestClient(d)

		results := c.QueryMany([]uint8{0x64, 0x69, 0xB9})

		if d.dials != 1 {
			t.Errorf("dials = %d, want 1 (batch must share a connection)", d.dials)
		}
		if len(conn.writes) != 3 {
			t.Errorf("query transmissions = %d, want 3", len(conn.writes))
		}
		if len(results) != 3 {
			t.Fatalf("result entries = %d, want 3", len(results))
		}
		if v := results[0x64]; !v.Valid || v.Data != 0x01 {
			t.Errorf("results[0x64] = %+v, want valid 0x01", v)
		}
		if v := results[0x69]; v.Valid {
			t.Errorf("results[0x69] = %+v, want absent", v)
		}
		// The failure on 0x69 must not stop 0xB9 from being answered.
		if v := results[0xB9]; !v.Valid || v.Data != 0x01 {
			t.Errorf("results[0xB9] = %+v, want valid 0x01", v)
		}
		if conn.closed != 1 {
			t.Errorf("connection closed %d times, want 1", conn.closed)
		}
	})

	t.Run("connect failure yields all-absent map", func(t *testing.T) {
		d := &fakeDialer{err: errRefused}
		c, _ := newTestClient(d)

		results := c.QueryMany([]uint8{0x64, 0x69})
		if len(results) != 2 {
			t.Fatalf("result entries = %d, want 2", len(results))
		}
		for id, v := range results {
			if v.Valid {
				t.Errorf("results[0x%02X] valid after connect failure", id)
			}
		}
	})

	t.Run("empty batch does not dial", func(t *testing.T) {
		d := &fakeDialer{conn: &fakeConn{}}
		c, _ := newTestClient(d)

		results := c.QueryMany(nil)
		if len(results) != 0 {
			t.Errorf("result entries = %d, want 0", len(results))
		}
		if d.dials != 0 {
			t.Errorf("dials = %d, want 0", d.dials)
		}
	})

	t.Run("batch pacing is one second per query", func(t *testing.T) {
		conn := &fakeConn{responses: map[uint8][]byte{0x64: envelope(0x64, 0x00)}}
		d := &fakeDialer{conn: conn}
		c, slept := newTestClient(d)

		c.QueryMany([]uint8{0x64, 0x69})
		want := []time.Duration{settleDelay, batchPace, batchPace}
		if len(*slept) != len(want) {
			t.Fatalf("slept %v, want %v", *slept, want)
		}
		for i := range want {
			if (*slept)[i] != want[i] {
				t.Errorf("sleep[%d] = %v, want %v", i, (*slept)[i], want[i])
			}
		}
	})

	t.Run("queries go out in the given order", func(t *testing.T) {
		conn := &fakeConn{}
		d := &fakeDialer{conn: conn}
		c, _ := newTestClient(d)

		c.QueryMany([]uint8{0xB9, 0x64, 0x69})
		ids := make([]uint8, len(conn.writes))
		for i, w := range conn.writes {
			if len(w) != 3 || w[0] != 0x02 || w[1] != 0x01 {
				t.Fatalf("write %d = % X, not a 3-byte query probe", i, w)
			}
			ids[i] = w[2]
		}
		want := []uint8{0xB9, 0x64, 0x69}
		for i := range want {
			if ids[i] != want[i] {
				t.Errorf("query order %v, want %v", ids, want)
				break
			}
		}
	})
}

func TestDialUsesResolvedChannel(t *testing.T) {
	var gotChannel uint8
	d := dialerFunc(func(address string, channel uint8) (Conn, error) {
		gotChannel = channel
		return &fakeConn{}, nil
	})

	c := NewClient("88:C6:26:11:22:33")
	c.Dialer = d
	c.resolve = func(string) (uint8, bool) { return 17, false }
	c.sleep = func(time.Duration) {}

	c.Send([]byte{0x02, 0x01, 0x6B})
	if gotChannel != 17 {
		t.Errorf("dialed channel %d, want 17", gotChannel)
	}
}

type dialerFunc func(address string, channel uint8) (Conn, error)

func (f dialerFunc) Dial(address string, channel uint8) (Conn, error) {
	return f(address, channel)
}
