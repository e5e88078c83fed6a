/*
DESCRIPTION
  state.go wraps a Region as the typed STATE shared-memory contract: a raw
  grayscale frame plus a monotonic frame_id.

LICENSE
  See LICENSE at the repository root.
*/

package shm

import "encoding/binary"

// State wraps the STATE region: {frame: u8[W*H], frame_id: u32}, per
// spec.md §6. The frame_id occupies the four bytes immediately following
// the frame bytes.
type State struct {
	region *Region
	w, h   int
}

// OpenState opens (creating if necessary) the STATE region sized for a
// w*h frame, in the given Mode.
func OpenState(name, semName string, w, h int, mode Mode) (*State, error) {
	r, err := Open(name, semName, w*h+4, mode)
	if err != nil {
		return nil, err
	}
	return &State{region: r, w: w, h: h}, nil
}

// Write copies frame into the region and bumps frame_id, both inside one
// critical section, with the frame bytes written before frame_id per
// spec.md §5's ordering guarantee.
func (s *State) Write(frame []byte) error {
	return s.region.Do(func(mem []byte) {
		copy(mem[:s.w*s.h], frame)
		id := binary.LittleEndian.Uint32(mem[s.w*s.h:]) + 1
		binary.LittleEndian.PutUint32(mem[s.w*s.h:], id)
	})
}

// FrameID reads the current frame_id without entering a full critical
// section copy of the frame — only the four id bytes are read, under the
// semaphore, so a poller can cheaply detect a change before paying for the
// full-frame copy in Read.
func (s *State) FrameID() (uint32, error) {
	var id uint32
	err := s.region.Do(func(mem []byte) {
		id = binary.LittleEndian.Uint32(mem[s.w*s.h:])
	})
	return id, err
}

// Read copies the frame and the authoritative frame_id observed in the same
// critical section into dst, per spec.md §5's re-read-inside-the-section
// requirement.
func (s *State) Read(dst []byte) (uint32, error) {
	var id uint32
	err := s.region.Do(func(mem []byte) {
		copy(dst, mem[:s.w*s.h])
		id = binary.LittleEndian.Uint32(mem[s.w*s.h:])
	})
	return id, err
}

// Close detaches the region.
func (s *State) Close() error { return s.region.Close() }

// Region exposes the underlying Region, for cleanup code that needs
// IsOpen/Release without a full Read/Write.
func (s *State) Region() *Region { return s.region }
