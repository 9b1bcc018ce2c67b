// This file is part of CoalOS.
//
// CoalOS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// CoalOS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with CoalOS.  If not, see <https://www.gnu.org/licenses/>.

package network_test

import (
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/coalos/coalos/network"
	"github.com/coalos/coalos/random"
	"github.com/coalos/coalos/test"
)

func TestGenerateIP(t *testing.T) {
	rnd := random.NewSeeded(10)
	for range 500 {
		ip := network.GenerateIP(rnd)
		parts := strings.Split(ip, ".")
		test.ExpectSuccess(t, len(parts) >= 3 && len(parts) <= 5, ip)
		for _, p := range parts {
			v, err := strconv.Atoi(p)
			test.ExpectSuccess(t, err, ip)
			test.ExpectSuccess(t, v >= 1 && v <= 255, ip)
		}
	}
}

func TestGeneratePassword(t *testing.T) {
	rnd := random.NewSeeded(20)
	for range 500 {
		pw := network.GeneratePassword(rnd)
		test.ExpectSuccess(t, len(pw) >= 8 && len(pw) <= 20, pw)
		test.ExpectSuccess(t, strings.ContainsAny(pw[0:1], "ABCDEFGHIJKLMNOPQRSTUVWXYZ"), pw)
		test.ExpectSuccess(t, strings.ContainsAny(pw[1:2], "abcdefghijklmnopqrstuvwxyz"), pw)
		test.ExpectSuccess(t, strings.ContainsAny(pw[2:3], "0123456789"), pw)
		test.ExpectSuccess(t, strings.ContainsAny(pw[3:4], "!@#$%^&*()_+-=[]{}|;:,.<>?"), pw)
	}
}

func TestGenerateDevice(t *testing.T) {
	rnd := random.NewSeeded(30)
	for range 100 {
		d := network.GenerateDevice(rnd)
		test.ExpectSuccess(t, slices.Contains(network.OperatingSystems, d.OS), d.OS)
		test.ExpectInequality(t, d.ESSID, "")
	}
}

func TestDeterministic(t *testing.T) {
	a := network.NewRegistry()
	b := network.NewRegistry()
	a.Populate(random.NewSeeded(99), 7)
	b.Populate(random.NewSeeded(99), 7)

	test.DemandEquality(t, a.Len(), 7)
	test.DemandEquality(t, b.Len(), 7)
	da := a.All()
	db := b.All()
	for i := range da {
		test.ExpectEquality(t, da[i], db[i], i)
	}
}

func TestRegistry(t *testing.T) {
	d1 := network.Device{IP: "10.0.0", ESSID: "HOME-5G", Password: "Aa1!aaaa", OS: "Debian 11"}
	d2 := network.Device{IP: "9.1.1", ESSID: "NET42", Password: "Bb2@bbbb", OS: "iOS 16"}
	reg := network.NewRegistry(d2, d1)

	test.ExpectEquality(t, reg.Len(), 2)
	test.ExpectSuccess(t, reg.Exists("9.1.1"))
	d, ok := reg.Get("10.0.0")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d, d1)
	test.ExpectEquality(t, d.String(), "HOME-5G (10.0.0)")

	// sorted by ip address
	all := reg.All()
	test.ExpectEquality(t, all[0].IP, "10.0.0")

	// same ip is replaced
	d1.OS = "CentOS 7"
	reg.Add(d1)
	test.ExpectEquality(t, reg.Len(), 2)
	d, _ = reg.Get("10.0.0")
	test.ExpectEquality(t, d.OS, "CentOS 7")

	reg.Load(nil)
	test.ExpectEquality(t, reg.Len(), 0)
	_, ok = reg.Get("10.0.0")
	test.ExpectFailure(t, ok)
}
