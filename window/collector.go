// Package window assembles consecutive pose frames of tracked persons
// into fixed length sliding windows for descriptor construction.
package window

import (
	"sync"

	"github.com/swdee/go-posemotion/pose"
)

// track represents the frame history for a single tracked person
type track struct {
	frames []pose.Frame
}

// Collector is the struct to keep a sliding window of the most recent
// pose frames for each track ID
type Collector struct {
	// size is the window length, the maximum number of most recent frames
	// kept per track
	size int
	// history of frames per track id
	history map[int]*track
	sync.Mutex
}

// NewCollector returns a new frame collector instance.  Size is the
// window length, the number of most recent frames to keep for each track.
func NewCollector(size int) *Collector {
	return &Collector{
		size:    size,
		history: make(map[int]*track),
	}
}

// Size returns the window length
func (c *Collector) Size() int {
	return c.size
}

// Reset clears all track history
func (c *Collector) Reset() {
	c.Lock()
	defer c.Unlock()

	c.history = make(map[int]*track)
}

// Push adds a frame to the history for the given track id, dropping the
// oldest frame once the window length is exceeded
func (c *Collector) Push(trackID int, frame pose.Frame) {
	c.Lock()
	defer c.Unlock()

	// init map if no history exists yet for track id
	if _, exists := c.history[trackID]; !exists {
		c.history[trackID] = &track{}
	}

	tr := c.history[trackID]
	tr.frames = append(tr.frames, frame)

	// check if window is exceeded and drop oldest frame
	if len(tr.frames) > c.size {
		tr.frames = tr.frames[1:]
	}
}

// Len returns the number of frames currently held for a specific track id
func (c *Collector) Len(trackID int) int {
	c.Lock()
	defer c.Unlock()

	if tr, exists := c.history[trackID]; exists {
		return len(tr.frames)
	}

	return 0
}

// Full returns whether the window for the given track id holds a complete
// window length of frames
func (c *Collector) Full(trackID int) bool {
	return c.Len(trackID) >= c.size
}

// Frames returns a copy of the frame window for a specific track id,
// oldest frame first, or nil if the track has no history yet
func (c *Collector) Frames(trackID int) []pose.Frame {
	c.Lock()
	defer c.Unlock()

	tr, exists := c.history[trackID]

	if !exists {
		return nil
	}

	cp := make([]pose.Frame, len(tr.frames))
	copy(cp, tr.frames)

	return cp
}

// Drop removes all history for a specific track id, for use when the
// upstream tracker reports the track as lost or removed
func (c *Collector) Drop(trackID int) {
	c.Lock()
	defer c.Unlock()

	delete(c.history, trackID)
}
