package psf

import (
	"fmt"
)

// Version is the PSF container version byte, naming the target console.
type Version uint8

const (
	VERSION_PSF1 = Version(0x01) // Playstation
	VERSION_PSF2 = Version(0x02) // Playstation 2
	VERSION_SSF  = Version(0x11) // Saturn
	VERSION_DSF  = Version(0x12) // Dreamcast
)

var versionNames = map[Version]([2]string){
	VERSION_PSF1: {"Playstation", "PSF1"},
	VERSION_PSF2: {"Playstation 2", "PSF2"},
	VERSION_SSF:  {"Saturn", "SSF"},
	VERSION_DSF:  {"Dreamcast", "DSF"},
}

// Known returns true if the version is one of the defined versions.
func (v Version) Known() (ok bool) {
	_, ok = versionNames[v]
	return
}

// String returns the console name.
func (v Version) String() string {
	names, ok := versionNames[v]
	if !ok {
		return fmt.Sprintf("Version(0x%02x)", uint8(v))
	}
	return names[0]
}

// ShortName returns the file type abbreviation, such as PSF1.
func (v Version) ShortName() string {
	names, ok := versionNames[v]
	if !ok {
		return fmt.Sprintf("0x%02x", uint8(v))
	}
	return names[1]
}
