package workers

// Workers runs a fixed set of workers in registration order and stops them
// in reverse order.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops every worker implementing [Stopper], last registered first.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		if s, ok := w.workers[i].(Stopper); ok {
			s.Stop()
		}
	}
}

// Funcs adapts a pair of functions to [Worker] and [Stopper]. Nil functions
// are skipped.
type Funcs struct {
	RunFunc  func()
	StopFunc func()
}

func (f Funcs) Run() {
	if f.RunFunc != nil {
		f.RunFunc()
	}
}

func (f Funcs) Stop() {
	if f.StopFunc != nil {
		f.StopFunc()
	}
}
