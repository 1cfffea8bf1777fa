// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package disasm

import (
	"context"
	"errors"
	"runtime"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/ezrec/psfdis/internal"
	"github.com/ezrec/psfdis/mips"
	"github.com/ezrec/psfdis/psf"
)

const (
	DEFAULT_CHUNK = 4096 // Words decoded per worker task.
)

// Disassembler produces listings of code images.
type Disassembler struct {
	Verbose bool          // If set, logs listing progress.
	Logger  hclog.Logger  // Logger for verbose output. Discards if nil.
	Decoder *mips.Decoder // Word decoder. Standard catalog if nil.
	Workers int           // Concurrent decode workers. GOMAXPROCS if 0.
	Chunk   int           // Words per worker task. DEFAULT_CHUNK if 0.
}

// NewDisassembler creates a disassembler using the decoder.
func NewDisassembler(dec *mips.Decoder) (dis *Disassembler) {
	dis = &Disassembler{
		Decoder: dec,
	}

	return
}

func (dis *Disassembler) logger() hclog.Logger {
	if dis.Logger == nil {
		return hclog.NewNullLogger()
	}
	return dis.Logger
}

func (dis *Disassembler) workers() int {
	if dis.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return dis.Workers
}

func (dis *Disassembler) chunk() int {
	if dis.Chunk <= 0 {
		return DEFAULT_CHUNK
	}
	return dis.Chunk
}

// Line decodes word n of the image.
func (dis *Disassembler) Line(img psf.Image, n int) (line Line) {
	line = dis.Decode(img.Address(n), img.Word(n))
	line.Offset = img.ByteOffset(n)
	return
}

// Decode decodes a single word loaded at address.
func (dis *Disassembler) Decode(address uint32, w mips.Word) (line Line) {
	line = Line{
		Address: address,
		Word:    w,
	}

	inst, err := dis.Decoder.Decode(w)
	if err != nil {
		var unknown mips.ErrUnrecognized
		if errors.As(err, &unknown) {
			line.Unknown = &unknown
		}
		return
	}

	line.Instruction = inst
	return
}

// Listing decodes every whole word of the image. Lines are in image order
// regardless of the number of workers.
func (dis *Disassembler) Listing(ctx context.Context, img psf.Image) (lines []Line, err error) {
	err = img.Validate()
	if err != nil {
		return
	}

	log := dis.logger()
	count := img.Len()
	lines = make([]Line, count)

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(dis.workers())

	for start, end := range internal.Chunks(count, dis.chunk()) {
		if gctx.Err() != nil {
			break
		}
		grp.Go(func() error {
			if dis.Verbose {
				log.Debug("decode", "start", hclog.Fmt("0x%08x", img.Address(start)), "words", end-start)
			}
			for n := start; n < end; n++ {
				if n%256 == 0 && gctx.Err() != nil {
					return gctx.Err()
				}
				lines[n] = dis.Line(img, n)
			}
			return nil
		})
	}

	err = grp.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		lines = nil
		return
	}

	if dis.Verbose {
		log.Info("listing", "words", count, "workers", dis.workers())
	}

	return
}
