package core

// Frame is a marshaled outbound message, ready to write to the wire.
type Frame []byte

// SignalConnection abstracts a client's messaging transport.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	// TrySend queues a frame without blocking. It returns an error when the
	// connection is closed or its send buffer is full.
	TrySend(Frame) error
	Close()
}
