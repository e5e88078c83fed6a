/*
DESCRIPTION
  shm.go wraps a single SysV shared-memory region and its guarding binary
  semaphore behind a scoped critical-section API.

LICENSE
  See LICENSE at the repository root.
*/

// Package shm provides the two named shared-memory regions (STATE and
// PLAN) spec.md §6 specifies, each a SysV shared-memory segment guarded by
// one named binary semaphore. Grounded on golang.org/x/sys/unix's Sysv*/Sem*
// wrappers (a dependency the example pack carries in
// IntuitionAmiga-IntuitionEngine and user-none-eMkIII, though neither
// exercises the shm/semaphore syscalls directly — this package is the
// first call site for that part of the package's surface in this module).
package shm

import (
	"fmt"
	"hash/fnv"

	"golang.org/x/sys/unix"
)

// Mode selects whether a Region is mapped for the producer (read-write) or
// a consumer (read-only), per spec.md §6.
type Mode int

const (
	ReadWrite Mode = iota
	ReadOnly
)

// Region wraps one SysV shared-memory segment and the binary semaphore
// guarding it. The zero value is not usable; construct with Open.
type Region struct {
	name   string
	semID  int
	shmID  int
	mem    []byte
	mode   Mode
	isOpen bool // true only while a critical section is held
}

// Open maps a size-byte shared-memory region under name, guarded by a
// binary semaphore under semName, creating both if they do not already
// exist. The producer (mode ReadWrite) initializes the semaphore to 1;
// consumers (mode ReadOnly) assume a producer has already done so.
func Open(name, semName string, size int, mode Mode) (*Region, error) {
	shmKey := keyFor(name)
	semKey := keyFor(semName)

	shmFlags := 0o600
	if mode == ReadWrite {
		shmFlags |= unix.IPC_CREAT
	}
	shmID, err := unix.SysvShmGet(shmKey, size, shmFlags)
	if err != nil {
		return nil, fmt.Errorf("shm: SysvShmGet(%s): %w", name, err)
	}

	attachFlags := 0
	if mode == ReadOnly {
		attachFlags = unix.SHM_RDONLY
	}
	mem, err := unix.SysvShmAttach(shmID, 0, attachFlags)
	if err != nil {
		return nil, fmt.Errorf("shm: SysvShmAttach(%s): %w", name, err)
	}

	semFlags := 0o600
	if mode == ReadWrite {
		semFlags |= unix.IPC_CREAT
	}
	semID, err := unix.Semget(semKey, 1, semFlags)
	if err != nil {
		return nil, fmt.Errorf("shm: Semget(%s): %w", semName, err)
	}

	r := &Region{name: name, semID: semID, shmID: shmID, mem: mem, mode: mode}

	if mode == ReadWrite {
		if err := r.initSem(); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Region) initSem() error {
	op := []unix.Sembuf{{SemNum: 0, SemOp: 1, SemFlg: 0}}
	if err := unix.Semop(r.semID, op, nil); err != nil {
		return fmt.Errorf("shm: init semaphore for %s: %w", r.name, err)
	}
	return nil
}

// keyFor derives a stable SysV IPC key from a name string, since this
// module addresses regions by name rather than by filesystem path (the
// usual ftok input).
func keyFor(name string) int {
	h := fnv.New32a()
	h.Write([]byte(name))
	return int(h.Sum32() & 0x7fffffff)
}

// Do runs fn while holding the region's semaphore, per spec.md §4.6's
// scoped-critical-section contract. IsOpen reports true for the duration of
// fn so a fatal-signal handler can detect and release a section left open
// by a terminated thread.
func (r *Region) Do(fn func(mem []byte)) error {
	wait := []unix.Sembuf{{SemNum: 0, SemOp: -1, SemFlg: 0}}
	if err := unix.Semop(r.semID, wait, nil); err != nil {
		return fmt.Errorf("shm: sem_wait on %s: %w", r.name, err)
	}
	r.isOpen = true

	fn(r.mem)

	r.isOpen = false
	post := []unix.Sembuf{{SemNum: 0, SemOp: 1, SemFlg: 0}}
	if err := unix.Semop(r.semID, post, nil); err != nil {
		return fmt.Errorf("shm: sem_post on %s: %w", r.name, err)
	}
	return nil
}

// IsOpen reports whether this region's critical section is currently held.
func (r *Region) IsOpen() bool { return r.isOpen }

// Release posts the semaphore unconditionally if IsOpen is true, used by
// cleanup to recover from a section left open by a thread that exited
// mid-critical-section.
func (r *Region) Release() error {
	if !r.isOpen {
		return nil
	}
	r.isOpen = false
	post := []unix.Sembuf{{SemNum: 0, SemOp: 1, SemFlg: 0}}
	return unix.Semop(r.semID, post, nil)
}

// Close detaches the shared-memory mapping. It does not remove the
// underlying SysV segment or semaphore set, so a consumer detaching does
// not disturb the producer.
func (r *Region) Close() error {
	if err := unix.SysvShmDetach(r.mem); err != nil {
		return fmt.Errorf("shm: SysvShmDetach(%s): %w", r.name, err)
	}
	return nil
}
