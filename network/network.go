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

// Package network contains the pretend network devices that can be found with
// the iwlist command. Devices are generated at random on first use and are
// then kept in the save file.
package network

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/coalos/coalos/random"
)

// Device is a single device on the pretend network.
type Device struct {
	IP       string
	ESSID    string
	Password string
	OS       string
}

func (d Device) String() string {
	return fmt.Sprintf("%s (%s)", d.ESSID, d.IP)
}

// Registry is the list of network devices, keyed by IP address.
type Registry struct {
	devices map[string]Device
}

// NewRegistry is the preferred method of initialisation for the Registry
// type.
func NewRegistry(devices ...Device) *Registry {
	reg := &Registry{devices: make(map[string]Device)}
	reg.Load(devices)
	return reg
}

// Add a device to the registry. A device with the same IP address is
// replaced.
func (reg *Registry) Add(d Device) {
	reg.devices[d.IP] = d
}

// Get the device with the IP address.
func (reg *Registry) Get(ip string) (Device, bool) {
	d, ok := reg.devices[ip]
	return d, ok
}

// Exists returns true if there is a device with the IP address.
func (reg *Registry) Exists(ip string) bool {
	_, ok := reg.devices[ip]
	return ok
}

// Len returns the number of devices.
func (reg *Registry) Len() int {
	return len(reg.devices)
}

// All returns every device, sorted by IP address.
func (reg *Registry) All() []Device {
	ips := make([]string, 0, len(reg.devices))
	for ip := range reg.devices {
		ips = append(ips, ip)
	}
	slices.Sort(ips)

	all := make([]Device, 0, len(ips))
	for _, ip := range ips {
		all = append(all, reg.devices[ip])
	}
	return all
}

// Load replaces the contents of the registry.
func (reg *Registry) Load(devices []Device) {
	clear(reg.devices)
	for _, d := range devices {
		reg.Add(d)
	}
}

// Populate adds randomly generated devices to the registry until it contains
// count devices.
func (reg *Registry) Populate(rnd *random.Random, count int) {
	for reg.Len() < count {
		reg.Add(GenerateDevice(rnd))
	}
}

var essidPrefixes = []string{
	"NETGEAR", "LINKSYS", "TP-LINK", "ASUS", "DLINK",
	"HOME", "OFFICE", "WIFI", "NET", "ROUTER",
	"CORP", "GUEST", "SECURE", "PUBLIC", "PRIVATE",
}

var essidSuffixes = []string{
	"5G", "2.4G", "FAST", "PRO", "PLUS",
	"MAX", "ULTRA", "SECURE", "GUEST", "ADMIN",
}

// OperatingSystems is the list of operating systems a device might run.
var OperatingSystems = []string{
	"Windows 7",
	"Windows 10",
	"Windows 11",
	"Windows XP",
	"macOS Monterey",
	"macOS Ventura",
	"macOS Catalina",
	"Ubuntu 20.04",
	"Ubuntu 22.04",
	"Debian 11",
	"CentOS 7",
	"Red Hat Enterprise Linux 8",
	"FreeBSD 13",
	"Android 12",
	"iOS 16",
}

// character classes used in passwords
const (
	alphaLower = "abcdefghijklmnopqrstuvwxyz"
	alphaUpper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits     = "0123456789"
	special    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// GenerateDevice creates a new device with random values.
func GenerateDevice(rnd *random.Random) Device {
	return Device{
		IP:       GenerateIP(rnd),
		ESSID:    GenerateESSID(rnd),
		Password: GeneratePassword(rnd),
		OS:       random.Choose(rnd, OperatingSystems),
	}
}

// GenerateIP creates an address of between three and five parts. The
// addresses are not valid IPv4 addresses, on purpose.
func GenerateIP(rnd *random.Random) string {
	n := rnd.Range(3, 5)
	parts := make([]string, n)
	for i := range parts {
		parts[i] = strconv.Itoa(rnd.Range(1, 255))
	}
	return strings.Join(parts, ".")
}

// GenerateESSID creates a network name in one of four styles.
func GenerateESSID(rnd *random.Random) string {
	prefix := random.Choose(rnd, essidPrefixes)
	switch rnd.Intn(4) {
	case 0:
		return fmt.Sprintf("%s_%d", prefix, rnd.Range(0, 9999))
	case 1:
		return fmt.Sprintf("%s-%s", prefix, random.Choose(rnd, essidSuffixes))
	case 2:
		return fmt.Sprintf("%s%d_%s", prefix, rnd.Range(0, 9999), random.Choose(rnd, essidSuffixes))
	default:
		return fmt.Sprintf("%s%d", prefix, rnd.Range(0, 9999)%100)
	}
}

// GeneratePassword creates a password of between 8 and 20 characters. The
// password contains at least one upper case letter, one lower case letter,
// one digit and one special character, in that order at the start of the
// password.
func GeneratePassword(rnd *random.Random) string {
	length := rnd.Range(8, 20)

	var b strings.Builder
	b.Grow(length)
	b.WriteByte(alphaUpper[rnd.Intn(len(alphaUpper))])
	b.WriteByte(alphaLower[rnd.Intn(len(alphaLower))])
	b.WriteByte(digits[rnd.Intn(len(digits))])
	b.WriteByte(special[rnd.Intn(len(special))])

	const all = alphaLower + alphaUpper + digits + special
	for b.Len() < length {
		b.WriteByte(all[rnd.Intn(len(all))])
	}
	return b.String()
}
