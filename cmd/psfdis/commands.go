package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ezrec/psfdis/disasm"
	"github.com/ezrec/psfdis/mips"
	"github.com/ezrec/psfdis/psf"
	"github.com/ezrec/psfdis/translate"
)

// open loads a PSF container or a bare PS-X EXE. The container is nil for a
// bare executable.
func (a *app) open(name string) (ct *psf.Container, exe *psf.Executable, err error) {
	path, err := filepath.Abs(name)
	if err != nil {
		return
	}

	root := afero.NewIOFS(afero.NewBasePathFs(a.files, "/"))
	return a.loader().OpenFile(root, strings.TrimPrefix(filepath.ToSlash(path), "/"))
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Show the container and executable headers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ct, exe, err := a.open(args[0])
			if err != nil {
				return
			}

			writeInfo(cmd.OutOrStdout(), ct, exe)
			return
		},
	}
}

func writeInfo(w io.Writer, ct *psf.Container, exe *psf.Executable) {
	p := translate.Printer()

	if ct == nil {
		p.Fprintf(w, "format:     %v\n", psf.EXE_SIGNATURE)
	} else {
		p.Fprintf(w, "format:     %v (%v)\n", ct.Version.ShortName(), ct.Version)
		p.Fprintf(w, "reserved:   %d bytes\n", len(ct.Reserved))
		p.Fprintf(w, "compressed: %d bytes\n", len(ct.Compressed))
		p.Fprintf(w, "crc32:      0x%08x\n", ct.CRC)
		p.Fprintf(w, "tags:       %d bytes\n", len(ct.Tags))
	}

	img := exe.Image()
	p.Fprintf(w, "pc:         0x%08x\n", exe.InitialPC)
	p.Fprintf(w, "gp:         0x%08x\n", exe.InitialGP)
	p.Fprintf(w, "sp:         0x%08x\n", exe.InitialSP)
	p.Fprintf(w, "text:       0x%08x-0x%08x (%d words)\n",
		exe.TextStart, exe.TextStart+uint32(len(exe.Text)), img.Len())
	if len(exe.Marker) != 0 {
		p.Fprintf(w, "marker:     %v\n", exe.Marker)
	}
}

func (a *app) disasmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disasm FILE",
		Short: "Disassemble the executable text segment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			format, err := disasm.ParseFormat(a.config.GetString("format"))
			if err != nil {
				return
			}

			var flt *disasm.Filter
			if expr := a.config.GetString("filter"); expr != "" {
				flt, err = disasm.NewFilter(expr)
				if err != nil {
					return
				}
			}

			_, exe, err := a.open(args[0])
			if err != nil {
				return
			}

			dis := &disasm.Disassembler{
				Verbose: a.verbose(),
				Logger:  a.logger.Named("disasm"),
				Workers: a.config.GetInt("workers"),
			}

			lines, err := dis.Listing(cmd.Context(), exe.Image())
			if err != nil {
				return
			}

			lines, err = flt.Select(lines)
			if err != nil {
				return
			}

			out := cmd.OutOrStdout()
			if a.config.GetBool("stats") {
				disasm.NewStats(lines).WriteTable(out, a.config.GetInt("top"))
				return
			}

			return disasm.Encode(out, format, lines)
		},
	}

	flags := cmd.Flags()
	flags.StringP("format", "f", string(disasm.FORMAT_TEXT), "output format (text, json, yaml)")
	flags.IntP("workers", "j", 0, "decode workers (0 for one per CPU)")
	flags.String("filter", "", "starlark expression selecting lines")
	flags.Bool("stats", false, "print a summary instead of the listing")
	flags.Int("top", 10, "mnemonics shown in the summary (0 for all)")
	a.bind(flags)

	return cmd
}

// parseWord parses a hex word, with or without a 0x prefix.
func parseWord(text string) (w mips.Word, err error) {
	text = strings.TrimPrefix(strings.ToLower(text), "0x")
	value, err := strconv.ParseUint(text, 16, 32)
	if err != nil {
		return
	}

	w = mips.Word(value)
	return
}

func (a *app) decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode WORD...",
		Short: "Decode hex instruction words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			dis := disasm.NewDisassembler(nil)
			out := cmd.OutOrStdout()
			for _, arg := range args {
				var w mips.Word
				w, err = parseWord(arg)
				if err != nil {
					return
				}

				line := dis.Decode(0, w)
				if a.verbose() && line.Known() {
					fmt.Fprintf(out, "%v  %-40v ; %v\n", w, line.Text(), line.Instruction.Op.Description)
					continue
				}
				fmt.Fprintf(out, "%v  %v\n", w, line.Text())
			}
			return
		},
	}
}

func (a *app) catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the recognized operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			layout, _ := cmd.Flags().GetString("layout")

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Layout", "Primary", "Funct", "Mnemonic", "Description"})
			for op := range mips.Standard.Operations() {
				if layout != "" && !strings.EqualFold(layout, op.Layout.String()) {
					continue
				}
				funct := ""
				if op.Layout == mips.LAYOUT_REGISTER {
					funct = fmt.Sprintf("0x%02x", op.Secondary)
				}
				table.Append([]string{
					op.Layout.String(),
					fmt.Sprintf("0x%02x", op.Primary),
					funct,
					op.Mnemonic,
					op.Description,
				})
			}
			table.Render()
			return
		},
	}

	cmd.Flags().StringP("layout", "l", "", "only list operations of this layout (R, I, J)")

	return cmd
}
