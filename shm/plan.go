/*
DESCRIPTION
  plan.go wraps a Region as the typed PLAN shared-memory contract.

LICENSE
  See LICENSE at the repository root.
*/

package shm

import (
	"encoding/binary"
	"math"
)

const planSize = 4 + 4 + 1 + 4 // target_pos, target_speed, lap_of_honor, frame_id

// Plan wraps the PLAN region: {target_pos: f32, target_speed: f32,
// lap_of_honor: u8, frame_id: u32}, per spec.md §6.
type Plan struct {
	region *Region
}

// OpenPlan opens (creating if necessary) the PLAN region.
func OpenPlan(name, semName string, mode Mode) (*Plan, error) {
	r, err := Open(name, semName, planSize, mode)
	if err != nil {
		return nil, err
	}
	return &Plan{region: r}, nil
}

// Write publishes targetPos, targetSpeed and lapOfHonor and increments
// frame_id, all inside one critical section, per spec.md §4.4 step 9.
func (p *Plan) Write(targetPos, targetSpeed float32, lapOfHonor uint8) error {
	return p.region.Do(func(mem []byte) {
		binary.LittleEndian.PutUint32(mem[0:4], math.Float32bits(targetPos))
		binary.LittleEndian.PutUint32(mem[4:8], math.Float32bits(targetSpeed))
		mem[8] = lapOfHonor
		id := binary.LittleEndian.Uint32(mem[9:13]) + 1
		binary.LittleEndian.PutUint32(mem[9:13], id)
	})
}

// Read copies out the current plan fields.
func (p *Plan) Read() (targetPos, targetSpeed float32, lapOfHonor uint8, frameID uint32, err error) {
	err = p.region.Do(func(mem []byte) {
		targetPos = math.Float32frombits(binary.LittleEndian.Uint32(mem[0:4]))
		targetSpeed = math.Float32frombits(binary.LittleEndian.Uint32(mem[4:8]))
		lapOfHonor = mem[8]
		frameID = binary.LittleEndian.Uint32(mem[9:13])
	})
	return
}

// Close detaches the region.
func (p *Plan) Close() error { return p.region.Close() }

// Region exposes the underlying Region, for cleanup code.
func (p *Plan) Region() *Region { return p.region }
