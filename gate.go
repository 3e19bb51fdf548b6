// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounded

// gate admits producers and consumers into the slot store.
//
// free counts slots a producer may fill, filled counts slots a consumer
// may drain. free+filled equals the capacity whenever no caller sits
// between claiming a unit on one side and signalling the other.
type gate struct {
	free   Semaphore
	filled Semaphore
}

func (g *gate) setup(capacity int) {
	g.free.setup(int64(capacity))
	g.filled.setup(0)
}

// admitProducer blocks until a free slot is available and claims it.
func (g *gate) admitProducer() { g.free.Acquire() }

// admitConsumer blocks until a filled slot is available and claims it.
func (g *gate) admitConsumer() { g.filled.Acquire() }

func (g *gate) tryAdmitProducer() bool { return g.free.TryAcquire() }

func (g *gate) tryAdmitConsumer() bool { return g.filled.TryAcquire() }

// signalFilled hands one filled slot to the consumers.
func (g *gate) signalFilled() { g.filled.Release() }

// signalFree hands one vacated slot back to the producers.
func (g *gate) signalFree() { g.free.Release() }
