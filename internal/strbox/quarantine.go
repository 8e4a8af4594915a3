package strbox

/*
#cgo CFLAGS: -I${SRCDIR}/../../include
#include <stdlib.h>
#include "mdffi.h"
*/
import "C"

import (
	"sync"
	"unsafe"
)

// PoisonByte overwrites the data of quarantined boxes.
const PoisonByte = 0xDD

type quarantined struct {
	box  unsafe.Pointer
	data unsafe.Pointer
}

// quarantine delays frees so released memory stays mapped and poisoned
// while a debugging caller inspects it.
type quarantine struct {
	mu       sync.Mutex
	capacity int
	entries  []quarantined
}

var held quarantine

// SetQuarantine keeps the n most recently released boxes allocated and
// poisoned. n <= 0 turns quarantine off and frees anything still held.
func SetQuarantine(n int) {
	held.mu.Lock()
	defer held.mu.Unlock()
	if n < 0 {
		n = 0
	}
	held.capacity = n
	held.evict()
}

// Quarantined reports how many released boxes are still held.
func Quarantined() int {
	held.mu.Lock()
	defer held.mu.Unlock()
	return len(held.entries)
}

func (q *quarantine) hold(box *C.mdffi_str, data unsafe.Pointer, n int) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.capacity == 0 {
		return false
	}

	poison := unsafe.Slice((*byte)(data), n+1)
	for i := range poison {
		poison[i] = PoisonByte
	}
	box.data = nil
	box.len = 0

	q.entries = append(q.entries, quarantined{box: unsafe.Pointer(box), data: data})
	q.evict()
	return true
}

func (q *quarantine) evict() {
	for len(q.entries) > q.capacity {
		e := q.entries[0]
		q.entries = q.entries[1:]
		C.free(e.data)
		C.free(e.box)
	}
	if len(q.entries) == 0 {
		q.entries = nil
	}
}
