// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingWorker appends its events to a shared log.
type recordingWorker struct {
	id  string
	log *[]string
}

func (w *recordingWorker) Run()  { *w.log = append(*w.log, "run "+w.id) }
func (w *recordingWorker) Stop() { *w.log = append(*w.log, "stop "+w.id) }

// runOnlyWorker has no Stop method.
type runOnlyWorker struct {
	runCount int
}

func (w *runOnlyWorker) Run() { w.runCount++ }

func TestWorkers_RunAndStopOrder(t *testing.T) {
	var log []string
	ws := NewWorkers(
		&recordingWorker{id: "hasher", log: &log},
		&recordingWorker{id: "sync", log: &log},
	)

	ws.Run()
	ws.Stop()

	assert.Equal(t, []string{"run hasher", "run sync", "stop sync", "stop hasher"}, log)
}

func TestWorkers_StopSkipsRunOnly(t *testing.T) {
	var log []string
	plain := &runOnlyWorker{}
	ws := NewWorkers(plain, &recordingWorker{id: "pool", log: &log})

	ws.Run()
	assert.NotPanics(t, ws.Stop)

	assert.Equal(t, 1, plain.runCount)
	assert.Equal(t, []string{"run pool", "stop pool"}, log)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	assert.NotPanics(t, ws.Run)
	assert.NotPanics(t, ws.Stop)
	assert.NotPanics(t, (&Workers{}).Run)
}

func TestWorkers_MultipleRuns(t *testing.T) {
	w := &runOnlyWorker{}
	ws := NewWorkers(w)

	ws.Run()
	ws.Run()
	ws.Run()

	assert.Equal(t, 3, w.runCount)
}

func TestFuncs(t *testing.T) {
	var ran, stopped bool
	f := Funcs{
		RunFunc:  func() { ran = true },
		StopFunc: func() { stopped = true },
	}

	var _ Stopper = f
	NewWorkers(f).Run()
	NewWorkers(f).Stop()

	assert.True(t, ran)
	assert.True(t, stopped)
	assert.NotPanics(t, Funcs{}.Run)
	assert.NotPanics(t, Funcs{}.Stop)
}
