// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package psf loads Playstation programs for disassembly.
//
// A PSF container holds a zlib compressed PS-X EXE, protected by a CRC-32.
// The executable carries a 0x800 byte header followed by the text segment,
// which is handed to the decoder as an Image.
package psf

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/klauspost/compress/zlib"
)

const (
	SIGNATURE      = "PSF"
	TAG_SIGNATURE  = "[TAG]"
	MAX_RESERVED   = 1 << 24          // Largest reserved area accepted.
	MAX_COMPRESSED = 1 << 24          // Largest compressed program accepted.
	MAX_PROGRAM    = 0x800 + 0x200000 // Header plus all of main RAM.
)

// MAX_FILE is the default Loader.Limit.
const MAX_FILE = MAX_RESERVED + MAX_COMPRESSED + MAX_PROGRAM

// header is the fixed part of a PSF container, little-endian on disk.
type header struct {
	Signature    [3]byte
	Version      Version
	ReservedSize uint32
	ProgramSize  uint32
	CRC          uint32
}

// Container is a decoded PSF file.
type Container struct {
	Version    Version
	Reserved   []byte // Reserved area, uninterpreted.
	CRC        uint32 // CRC-32 of Compressed, from the header.
	Compressed []byte // zlib compressed program.
	Program    []byte // Inflated program.
	Tags       []byte // Raw text following the [TAG] marker, if any.
}

// Loader reads PSF containers and PS-X EXE files.
type Loader struct {
	Verbose bool         // If set, logs the loader actions.
	Logger  hclog.Logger // Logger for verbose output. Discards if nil.
	SkipCRC bool         // If set, a CRC mismatch is logged instead of failing.
	Limit   int64        // Largest file ReadFile accepts. MAX_FILE if 0.
}

func (ld *Loader) logger() hclog.Logger {
	if ld.Logger == nil {
		return hclog.NewNullLogger()
	}
	return ld.Logger
}

func (ld *Loader) limit() int64 {
	if ld.Limit <= 0 {
		return MAX_FILE
	}
	return ld.Limit
}

func (ld *Loader) readSection(r io.Reader, field string, size uint32, limit uint32) (data []byte, err error) {
	if size > limit {
		err = ErrFormat{Field: field, Err: ErrSectionSize}
		return
	}

	data = make([]byte, size)
	_, err = io.ReadFull(r, data)
	if err != nil {
		data = nil
		err = ErrFormat{Field: field, Err: err}
		return
	}

	return
}

// Read decodes a PSF container.
func (ld *Loader) Read(r io.Reader) (ct *Container, err error) {
	var hdr header
	err = binary.Read(r, binary.LittleEndian, &hdr)
	if err != nil {
		err = ErrFormat{Field: "header", Err: err}
		return
	}

	if string(hdr.Signature[:]) != SIGNATURE {
		err = ErrFormat{Field: "signature", Err: ErrSignature}
		return
	}

	if ld.Verbose {
		ld.logger().Info("psf: header", "version", hdr.Version.ShortName(),
			"reserved", hdr.ReservedSize, "compressed", hdr.ProgramSize, "crc32", hdr.CRC)
	}

	if !hdr.Version.Known() {
		ld.logger().Warn("psf: unknown version", "version", uint8(hdr.Version))
	}

	ct = &Container{
		Version: hdr.Version,
		CRC:     hdr.CRC,
	}

	ct.Reserved, err = ld.readSection(r, "reserved", hdr.ReservedSize, MAX_RESERVED)
	if err != nil {
		ct = nil
		return
	}

	ct.Compressed, err = ld.readSection(r, "program", hdr.ProgramSize, MAX_COMPRESSED)
	if err != nil {
		ct = nil
		return
	}

	if len(ct.Compressed) != 0 {
		checksum := crc32.ChecksumIEEE(ct.Compressed)
		if checksum != ct.CRC {
			mismatch := ErrCRCMismatch{Expected: ct.CRC, Actual: checksum}
			if !ld.SkipCRC {
				ct = nil
				err = mismatch
				return
			}
			ld.logger().Warn("psf: " + mismatch.Error())
		}

		ct.Program, err = inflate(ct.Compressed)
		if err != nil {
			ct = nil
			return
		}
	}

	ct.Tags, err = readTags(r)
	if err != nil {
		ct = nil
		return
	}

	if ld.Verbose {
		ld.logger().Info("psf: loaded", "program", len(ct.Program), "tags", len(ct.Tags))
	}

	return
}

func inflate(compressed []byte) (program []byte, err error) {
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		err = ErrFormat{Field: "program", Err: ErrInflate}
		return
	}
	defer zr.Close()

	program, err = io.ReadAll(io.LimitReader(zr, MAX_PROGRAM+1))
	if err != nil {
		program = nil
		err = ErrFormat{Field: "program", Err: ErrInflate}
		return
	}

	if len(program) > MAX_PROGRAM {
		program = nil
		err = ErrFormat{Field: "program", Err: ErrSectionSize}
		return
	}

	return
}

// readTags returns the bytes after a [TAG] marker. Missing or foreign
// trailers are not an error.
func readTags(r io.Reader) (tags []byte, err error) {
	var mark [len(TAG_SIGNATURE)]byte
	_, err = io.ReadFull(r, mark[:])
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		err = nil
		return
	}
	if err != nil {
		err = ErrFormat{Field: "tags", Err: err}
		return
	}

	if string(mark[:]) != TAG_SIGNATURE {
		return
	}

	tags, err = io.ReadAll(r)
	if err != nil {
		tags = nil
		err = ErrFormat{Field: "tags", Err: err}
		return
	}

	return
}
