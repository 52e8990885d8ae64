// SPDX-License-Identifier: MIT
// Copyright (c) 2026 carreolivierwork

package spp

import (
	"time"

	"github.com/carreolivierwork/ue-mini-boom-manager/pkg/lwacp"
)

// Pacing and timeout constants. The speaker's command processor is slow;
// reading too early yields empty or partial responses, and back-to-back
// queries without delay make it stop answering entirely.
const (
	// settleDelay sits between connect/transmit and the next action.
	settleDelay = 300 * time.Millisecond

	// sendReadTimeout bounds the best-effort response read after a command.
	sendReadTimeout = 1 * time.Second

	// queryDelay is the transmit-to-read gap for a single query.
	queryDelay = 500 * time.Millisecond

	// queryReadTimeout bounds the response read for queries.
	queryReadTimeout = 2 * time.Second

	// batchPace is the per-query delay when several queries share one
	// connection.
	batchPace = 1 * time.Second

	// responseBufSize bounds how much of a response is read.
	responseBufSize = 1024
)

// Value is one queried parameter reading. Valid is false when the speaker
// did not answer or the answer did not contain the queried command id.
type Value struct {
	Data  uint8
	Valid bool
}

// Client talks to one speaker. The zero value is not usable; use NewClient.
//
// Each operation opens its own connection and closes it before returning,
// so a Client carries no connection state and is cheap to recreate per CLI
// invocation. Client is not safe for concurrent use; the speaker does not
// guarantee command ordering across parallel sessions anyway.
type Client struct {
	// Addr is the speaker's Bluetooth address.
	Addr string

	// Dialer overrides transport selection. When nil, a transport is
	// picked by capability at the start of each operation.
	Dialer Dialer

	// Logf receives progress and fallback notices. Nil disables logging.
	Logf func(format string, args ...interface{})

	// Test seams.
	resolve func(address string) (uint8, bool)
	sleep   func(d time.Duration)
}

// NewClient creates a client for the speaker at the given address.
func NewClient(addr string) *Client {
	return &Client{
		Addr:    addr,
		resolve: ResolveChannel,
		sleep:   time.Sleep,
	}
}

func (c *Client) logf(format string, args ...interface{}) {
	if c.Logf != nil {
		c.Logf(format, args...)
	}
}

func (c *Client) pause(d time.Duration) {
	if c.sleep != nil {
		c.sleep(d)
		return
	}
	time.Sleep(d)
}

// dial resolves the channel and opens a connection over whichever
// transport is available.
func (c *Client) dial() (Conn, error) {
	resolve := c.resolve
	if resolve == nil {
		resolve = ResolveChannel
	}
	channel, fellBack := resolve(c.Addr)
	if fellBack {
		c.logf("channel lookup failed, using default channel %d", channel)
	}

	dialer := c.Dialer
	if dialer == nil {
		var err error
		dialer, err = systemDialer()
		if err != nil {
			return nil, err
		}
	}

	c.logf("connecting to %s on RFCOMM channel %d...", c.Addr, channel)
	return dialer.Dial(c.Addr, channel)
}

// Send transmits one encoded command packet. Returns true once the write
// succeeded; the speaker frequently stays silent after a command, so a
// missing or timed-out response does not flip the result. Connect and
// write failures return false without retry.
func (c *Client) Send(packet []byte) bool {
	conn, err := c.dial()
	if err != nil {
		c.logf("ERROR: could not connect: %v", err)
		return false
	}
	defer conn.Close()

	c.logf("sending: %s", lwacp.FormatPacket(packet))
	if _, err := conn.Write(packet); err != nil {
		c.logf("ERROR: write failed: %v", err)
		return false
	}

	c.pause(settleDelay)

	// Best-effort response read, for the log only.
	if err := conn.SetReadTimeout(sendReadTimeout); err == nil {
		buf := make([]byte, responseBufSize)
		if n, err := conn.Read(buf); err == nil && n > 0 {
			c.logf("response: %s", lwacp.FormatBytes(buf[:n]))
		}
	}

	return true
}

// QueryOne reads the current value of a single parameter. Any transport
// failure anywhere in the sequence collapses to "absent".
func (c *Client) QueryOne(commandID uint8) (uint8, bool) {
	conn, err := c.dial()
	if err != nil {
		c.logf("ERROR: could not connect: %v", err)
		return 0, false
	}
	defer conn.Close()

	c.pause(settleDelay)
	if _, err := conn.Write(lwacp.QueryPacket(commandID)); err != nil {
		return 0, false
	}
	c.pause(queryDelay)

	if err := conn.SetReadTimeout(queryReadTimeout); err != nil {
		return 0, false
	}
	buf := make([]byte, responseBufSize)
	n, err := conn.Read(buf)
	if err != nil || n == 0 {
		return 0, false
	}

	return lwacp.ExtractValue(buf[:n], commandID)
}

// QueryMany reads several parameters over a single connection, paced at
// batchPace per query so the speaker is not overwhelmed. The result maps
// every requested command id, in absent state until answered; a failed
// query leaves its entry absent and the batch continues. A connect
// failure returns the map with whatever was filled so far (all absent).
func (c *Client) QueryMany(commandIDs []uint8) map[uint8]Value {
	results := make(map[uint8]Value, len(commandIDs))
	for _, id := range commandIDs {
		results[id] = Value{}
	}
	if len(commandIDs) == 0 {
		return results
	}

	conn, err := c.dial()
	if err != nil {
		c.logf("ERROR: could not connect: %v", err)
		return results
	}
	defer conn.Close()

	c.pause(settleDelay)

	buf := make([]byte, responseBufSize)
	for _, id := range commandIDs {
		if _, err := conn.Write(lwacp.QueryPacket(id)); err != nil {
			continue
		}
		c.pause(batchPace)

		if err := conn.SetReadTimeout(queryReadTimeout); err != nil {
			continue
		}
		n, err := conn.Read(buf)
		if err != nil || n == 0 {
			continue
		}

		if v, ok := lwacp.ExtractValue(buf[:n], id); ok {
			results[id] = Value{Data: v, Valid: true}
		}
	}

	return results
}
