package asm

import "strings"

// opcodes lists the 6502 and 65C02 mnemonics recognized when classifying a
// "name opcode" line and when filtering operand identifiers.
var opcodes = map[string]bool{
	// 6502
	"adc": true, "and": true, "asl": true, "bcc": true, "bcs": true,
	"beq": true, "bit": true, "bmi": true, "bne": true, "bpl": true,
	"brk": true, "bvc": true, "bvs": true, "clc": true, "cld": true,
	"cli": true, "clv": true, "cmp": true, "cpx": true, "cpy": true,
	"dec": true, "dex": true, "dey": true, "eor": true, "inc": true,
	"inx": true, "iny": true, "jmp": true, "jsr": true, "lda": true,
	"ldx": true, "ldy": true, "lsr": true, "nop": true, "ora": true,
	"pha": true, "php": true, "pla": true, "plp": true, "rol": true,
	"ror": true, "rti": true, "rts": true, "sbc": true, "sec": true,
	"sed": true, "sei": true, "sta": true, "stx": true, "sty": true,
	"tax": true, "tay": true, "tsx": true, "txa": true, "txs": true,
	"tya": true,
	// 65C02 extensions
	"bra": true, "phx": true, "phy": true, "plx": true, "ply": true,
	"stz": true, "trb": true, "tsb": true,
	"bbr": true, "bbs": true, "rmb": true, "smb": true, "wai": true,
	"stp": true,
}

// IsOpcode reports whether the token is a recognized mnemonic.
func IsOpcode(name string) bool {
	return opcodes[strings.ToLower(name)]
}
