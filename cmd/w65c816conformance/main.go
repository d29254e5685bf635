// Command w65c816conformance runs the community single-step JSON
// conformance fixtures against the w65c816 core and reports pass/fail
// counts per opcode file.
package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/user-none/go-chip65c816/internal/sstfixture"
	"github.com/user-none/go-chip65c816"
)

// flatBus is a 16MB byte-array bus with a flat bus speed, sufficient to
// drive conformance fixtures that only care about instruction semantics.
type flatBus struct {
	mem [16 * 1024 * 1024]byte
}

func (b *flatBus) GetByte(addr uint32) uint8 { return b.mem[addr&0xFFFFFF] }
func (b *flatBus) SetByte(val uint8, addr uint32) { b.mem[addr&0xFFFFFF] = val }

func (b *flatBus) GetWord(addr uint32, wrap w65c816.Wrap) uint16 {
	lo := b.GetByte(addr)
	hi := b.GetByte(w65c816.SecondByteAddr(addr, wrap))
	return uint16(hi)<<8 | uint16(lo)
}

func (b *flatBus) SetWord(val uint16, addr uint32, wrap w65c816.Wrap, order w65c816.Order) {
	second := w65c816.SecondByteAddr(addr, wrap)
	lo, hi := uint8(val), uint8(val>>8)
	if order == w65c816.OrderLowFirst {
		b.SetByte(lo, addr)
		b.SetByte(hi, second)
	} else {
		b.SetByte(hi, second)
		b.SetByte(lo, addr)
	}
}

func (b *flatBus) SetPCBase(addr uint32) {}

// Status register bit layout, fixed by the architecture (not an
// implementation detail of any particular core).
const (
	pC uint8 = 1 << 0
	pZ uint8 = 1 << 1
	pI uint8 = 1 << 2
	pD uint8 = 1 << 3
	pX uint8 = 1 << 4
	pM uint8 = 1 << 5
	pV uint8 = 1 << 6
	pN uint8 = 1 << 7
)

func stateToRegisters(s sstfixture.State) w65c816.Registers {
	e := s.E != 0
	var r w65c816.Registers
	r.A, r.X, r.Y, r.S, r.D, r.PC = s.A, s.X, s.Y, s.S, s.D, s.PC
	r.PB, r.DB = s.PBR, s.DBR
	r.FlagC = s.P&pC != 0
	r.FlagZ = s.P&pZ != 0
	r.FlagI = s.P&pI != 0
	r.FlagD = s.P&pD != 0
	r.FlagV = s.P&pV != 0
	r.FlagN = s.P&pN != 0
	r.E = e
	if e {
		r.FlagB = s.P&pX != 0
	} else {
		r.SetModeX(s.P&pX != 0)
		r.SetModeM(s.P&pM != 0)
	}
	return r
}

func loadRAM(bus *flatBus, ram [][2]int64) {
	for _, entry := range ram {
		bus.mem[uint32(entry[0])&0xFFFFFF] = byte(entry[1])
	}
}

func runCase(tc sstfixture.Case) (bool, string) {
	bus := &flatBus{}
	loadRAM(bus, tc.Initial.RAM)

	cpu := w65c816.New(bus, w65c816.Options{})
	cpu.SetState(stateToRegisters(tc.Initial))

	cpu.Step()

	reg := cpu.Registers()
	want := stateToRegisters(tc.Final)

	if reg.A != want.A || reg.X != want.X || reg.Y != want.Y || reg.S != want.S ||
		reg.D != want.D || reg.PC != want.PC || reg.PB != want.PB || reg.DB != want.DB ||
		reg.FlagC != want.FlagC || reg.FlagZ != want.FlagZ || reg.FlagI != want.FlagI ||
		reg.FlagD != want.FlagD || reg.FlagV != want.FlagV || reg.FlagN != want.FlagN {
		return false, spew.Sdump(map[string]any{"got": reg, "want": want})
	}

	for _, entry := range tc.Final.RAM {
		addr := uint32(entry[0]) & 0xFFFFFF
		if bus.mem[addr] != byte(entry[1]) {
			return false, fmt.Sprintf("RAM[%#06x] = %#02x, want %#02x", addr, bus.mem[addr], byte(entry[1]))
		}
	}

	return true, ""
}

func main() {
	var path string
	var strict bool
	var opcode string

	root := &cobra.Command{
		Use:   "w65c816conformance",
		Short: "Run single-step conformance fixtures against the w65c816 core",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				return fmt.Errorf("--path is required")
			}
			byFile, err := sstfixture.LoadDir(path)
			if err != nil {
				return err
			}

			var total, failed int
			for stem, cases := range byFile {
				if opcode != "" && stem != opcode {
					continue
				}
				var fileFailed int
				for _, tc := range cases {
					total++
					ok, detail := runCase(tc)
					if !ok {
						failed++
						fileFailed++
						if strict {
							fmt.Printf("FAIL %s/%s\n%s\n", stem, tc.Name, detail)
						}
					}
				}
				if fileFailed > 0 {
					fmt.Printf("%s: %d/%d failed\n", stem, fileFailed, len(cases))
				}
			}

			fmt.Printf("\n%d/%d cases passed\n", total-failed, total)
			if failed > 0 {
				os.Exit(1)
			}
			return nil
		},
	}
	root.Flags().StringVar(&path, "path", "", "directory of opcode JSON fixtures")
	root.Flags().BoolVar(&strict, "strict", false, "dump full state diff for every failing case")
	root.Flags().StringVar(&opcode, "opcode", "", "restrict the run to one opcode fixture file (by stem)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
