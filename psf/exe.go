package psf

import (
	"bytes"
	"encoding/binary"
	"io"
	"io/fs"
)

// PS-X EXE header layout.
const (
	EXE_SIGNATURE         = "PS-X EXE"
	EXE_HEADER_SIZE       = 0x800
	EXE_OFFSET_PC         = 0x010
	EXE_OFFSET_GP         = 0x014
	EXE_OFFSET_TEXT_START = 0x018
	EXE_OFFSET_TEXT_SIZE  = 0x01C
	EXE_OFFSET_SP         = 0x030
	EXE_OFFSET_MARKER     = 0x04C
)

// Executable is a PS-X EXE program.
type Executable struct {
	InitialPC uint32 // Entry point.
	InitialGP uint32 // Global pointer.
	TextStart uint32 // Load address of the text segment.
	TextSize  uint32 // Text segment size, from the header.
	InitialSP uint32 // Stack pointer.
	Marker    string // Region marker text.

	Program []byte // Header and text.
	Text    []byte // Text segment.
}

// ParseExecutable decodes a PS-X EXE held in memory. A text segment shorter
// than the header's TextSize is accepted as-is; a longer one is trimmed.
func ParseExecutable(program []byte) (exe *Executable, err error) {
	if len(program) < EXE_HEADER_SIZE {
		err = ErrExecutableShort
		return
	}

	if !bytes.HasPrefix(program, []byte(EXE_SIGNATURE)) {
		err = ErrExecutableSignature
		return
	}

	le := binary.LittleEndian

	exe = &Executable{
		InitialPC: le.Uint32(program[EXE_OFFSET_PC:]),
		InitialGP: le.Uint32(program[EXE_OFFSET_GP:]),
		TextStart: le.Uint32(program[EXE_OFFSET_TEXT_START:]),
		TextSize:  le.Uint32(program[EXE_OFFSET_TEXT_SIZE:]),
		InitialSP: le.Uint32(program[EXE_OFFSET_SP:]),
		Marker:    string(bytes.TrimRight(program[EXE_OFFSET_MARKER:EXE_HEADER_SIZE], "\x00")),
	}

	end := len(program)
	if exe.TextSize != 0 && uint64(exe.TextSize) < uint64(end-EXE_HEADER_SIZE) {
		end = EXE_HEADER_SIZE + int(exe.TextSize)
	}

	exe.Program = program[:end]
	exe.Text = program[EXE_HEADER_SIZE:end]

	return
}

// Image returns the text segment as a decoder image.
func (exe *Executable) Image() Image {
	return Image{
		Code:   exe.Program,
		Offset: EXE_HEADER_SIZE,
		Base:   exe.TextStart - EXE_HEADER_SIZE,
	}
}

// Executable decodes the container's program as a PS-X EXE.
func (ct *Container) Executable() (*Executable, error) {
	return ParseExecutable(ct.Program)
}

// ReadFile reads either a PSF container or a bare PS-X EXE, detected by
// signature. The container is nil for a bare executable.
func (ld *Loader) ReadFile(r io.Reader) (ct *Container, exe *Executable, err error) {
	limit := ld.limit()
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		err = ErrFormat{Field: "file", Err: err}
		return
	}

	if int64(len(data)) > limit {
		err = ErrFormat{Field: "file", Err: ErrSectionSize}
		return
	}

	if bytes.HasPrefix(data, []byte(EXE_SIGNATURE)) {
		if ld.Verbose {
			ld.logger().Info("psf: bare executable", "size", len(data))
		}
		exe, err = ParseExecutable(data)
		return
	}

	ct, err = ld.Read(bytes.NewReader(data))
	if err != nil {
		return
	}

	exe, err = ct.Executable()
	if err != nil {
		ct = nil
		return
	}

	return
}

// OpenFile is ReadFile for a file in a file system.
func (ld *Loader) OpenFile(filesys fs.FS, name string) (ct *Container, exe *Executable, err error) {
	inf, err := filesys.Open(name)
	if err != nil {
		return
	}
	defer inf.Close()

	return ld.ReadFile(inf)
}
