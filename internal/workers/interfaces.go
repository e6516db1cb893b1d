// Package workers groups the background components of the client so they
// can be started and stopped together.
package workers

// Worker is a background component. Run must not block: implementations
// start their goroutines and return.
//
// Example implementation:
//
//	type Pool struct{}
//
//	func (p *Pool) Run() {
//	    go p.loop()
//	}
type Worker interface {
	Run()
}

// Stopper is implemented by workers that hold goroutines or resources.
// Stop blocks until the worker has fully terminated.
type Stopper interface {
	Stop()
}
