// Copyright (c) 2019 The AXEL developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"net"
	"testing"
	"time"

	"github.com/btcsuite/btcd/wire"
)

func TestConvertSeeds(t *testing.T) {
	specs := []seedSpec6{
		{
			addr: [16]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xff, 0xff,
				0x5e, 0x17, 0x46, 0x2a},
			port: 15319,
		},
		{
			addr: [16]byte{0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0, 0, 0, 0,
				0, 0, 0, 0, 0x01},
			port: 25319,
		},
	}

	now := time.Unix(1553254838, 0)
	addrs := convertSeeds(specs, now)
	if len(addrs) != len(specs) {
		t.Fatalf("convertSeeds: got %d addresses, want %d", len(addrs),
			len(specs))
	}

	wantIPs := []net.IP{net.ParseIP("94.23.70.42"), net.ParseIP("2001:db8::1")}
	for i, addr := range addrs {
		if !addr.IP.Equal(wantIPs[i]) || addr.Port != specs[i].port {
			t.Errorf("seed %d: got %v:%d, want %v:%d", i, addr.IP,
				addr.Port, wantIPs[i], specs[i].port)
		}
		if addr.Services != wire.SFNodeNetwork {
			t.Errorf("seed %d: unexpected services %v", i, addr.Services)
		}

		age := now.Sub(addr.Timestamp)
		if age < seedLastSeenWindow || age > 2*seedLastSeenWindow+time.Second {
			t.Errorf("seed %d: last seen %v is outside the window", i,
				addr.Timestamp)
		}
	}

	if convertSeeds(nil, now) != nil {
		t.Errorf("convertSeeds: expected no addresses for no specs")
	}
}
