/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package lifecycle

import (
	"errors"
	"sync/atomic"

	"github.com/trustbloc/did-verifier/internal/pkg/log"
)

var logger = log.New("lifecycle")

// ErrNotStarted is returned by services that are invoked before Start or after Stop.
var ErrNotStarted = errors.New("service has not started")

// State is the state of a background service.
type State = uint32

const (
	// StateNotStarted indicates that the service has not been started.
	StateNotStarted State = 0
	// StateStarting indicates that the service is in the process of starting.
	StateStarting State = 1
	// StateStarted indicates that the service has been started.
	StateStarted State = 2
	// StateStopped indicates that the service has been stopped.
	StateStopped State = 3
)

// Opt sets a Lifecycle option.
type Opt func(lc *Lifecycle)

// WithStart sets the function invoked by the first Start.
func WithStart(start func()) Opt {
	return func(lc *Lifecycle) {
		lc.start = start
	}
}

// WithStop sets the function invoked by the first Stop after a Start.
func WithStop(stop func()) Opt {
	return func(lc *Lifecycle) {
		lc.stop = stop
	}
}

// Lifecycle runs the start and stop hooks of a background service at most once each.
type Lifecycle struct {
	name  string
	start func()
	stop  func()
	state uint32
}

// New returns a Lifecycle for the named service.
func New(name string, opts ...Opt) *Lifecycle {
	lc := &Lifecycle{
		name:  name,
		start: func() {},
		stop:  func() {},
	}

	for _, opt := range opts {
		opt(lc)
	}

	return lc
}

// Start runs the start hook unless the service was already started.
func (lc *Lifecycle) Start() {
	if !atomic.CompareAndSwapUint32(&lc.state, StateNotStarted, StateStarting) {
		logger.Debug("Service already started", log.WithStep(lc.name))

		return
	}

	lc.start()

	atomic.StoreUint32(&lc.state, StateStarted)

	logger.Debug("Service started", log.WithStep(lc.name))
}

// Stop runs the stop hook if the service is running.
func (lc *Lifecycle) Stop() {
	if !atomic.CompareAndSwapUint32(&lc.state, StateStarted, StateStopped) {
		logger.Debug("Service not running", log.WithStep(lc.name))

		return
	}

	lc.stop()

	logger.Debug("Service stopped", log.WithStep(lc.name))
}

// State returns the state of the service.
func (lc *Lifecycle) State() State {
	return atomic.LoadUint32(&lc.state)
}

// Running returns ErrNotStarted unless the service is started.
func (lc *Lifecycle) Running() error {
	if lc.State() != StateStarted {
		return ErrNotStarted
	}

	return nil
}
