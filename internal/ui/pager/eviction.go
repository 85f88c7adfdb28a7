package pager

// EvictionPolicy decides which cached chunks survive a window move. The pager
// never asks about the current chunk or the one after it.
type EvictionPolicy interface {
	Retain(current, index int) bool
}

type keepAll struct{}

func (keepAll) Retain(int, int) bool { return true }

// KeepAll never evicts, so memory grows with the farthest chunk reached.
func KeepAll() EvictionPolicy {
	return keepAll{}
}

// KeepWindow keeps chunks at most n positions before the current chunk or
// n positions after the next one. Dropped chunks are re-read on demand.
type KeepWindow int

func (w KeepWindow) Retain(current, index int) bool {
	n := int(w)
	return index >= current-n && index <= current+1+n
}
