// Copyright (c) 2019 The AXEL developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
)

// Selector holds the parameters of the single network a process serves.
//
// Select must happen before any other goroutine calls Active.  Once selection
// is complete the parameters are shared read-only data and Active may be called
// concurrently without further synchronization.  Select itself and all use of
// MutableParams must not race with readers.
type Selector struct {
	active *Params
}

// NewSelector returns a selector with no network selected.
func NewSelector() *Selector {
	return &Selector{}
}

// Select builds the parameters for the passed network and makes them active.
// Selecting the already active network again is a no-op, except for the unit
// test network which is rebuilt so every test run starts from pristine
// parameters.  MutableParams handed out before the rebuild apply to the
// rebuilt parameters.
//
// It panics with an AssertError when a different network is already active or
// the network is not known.  A process serves exactly one network for its
// whole lifetime.
func (s *Selector) Select(id NetworkID) {
	if s.active != nil {
		if s.active.ID != id {
			panic(AssertError(fmt.Sprintf("network %v is already "+
				"selected, unable to select %v", s.active.ID, id)))
		}
		if id != UnitTestID {
			return
		}
	}

	s.active = ParamsForNetwork(id)
	log.Infof("Using %s network parameters (magic %x, port %s)",
		s.active.Name, s.active.MessageStart(), s.active.DefaultPort)
}

// Active returns the parameters of the selected network.  It panics with an
// AssertError when no network has been selected yet.
func (s *Selector) Active() *Params {
	if s.active == nil {
		panic(AssertError("no network parameters selected"))
	}
	return s.active
}

// Modifiable returns the capability to change the active parameters.  It
// returns ErrNotModifiable unless the unit test network is active, and panics
// with an AssertError when no network has been selected yet.
func (s *Selector) Modifiable() (*MutableParams, error) {
	params := s.Active()
	if params.ID != UnitTestID {
		return nil, fmt.Errorf("%w: %s", ErrNotModifiable, params.Name)
	}
	return &MutableParams{selector: s}, nil
}

// defaultSelector holds the network of the running process.
var defaultSelector = NewSelector()

// SelectParams selects the network the process serves.  It must be called
// exactly once on the startup path before any other subsystem runs.  See
// Selector.Select.
func SelectParams(id NetworkID) {
	defaultSelector.Select(id)
}

// ActiveParams returns the parameters of the network the process serves.  See
// Selector.Active.
func ActiveParams() *Params {
	return defaultSelector.Active()
}

// ModifiableParams returns the capability to change the parameters of the unit
// test network.  See Selector.Modifiable.
func ModifiableParams() (*MutableParams, error) {
	return defaultSelector.Modifiable()
}
