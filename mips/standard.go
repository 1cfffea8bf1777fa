package mips

// Register form secondary codes.
const (
	FUNCT_SLL     = 0x00
	FUNCT_SRL     = 0x02
	FUNCT_SRA     = 0x03
	FUNCT_SLLV    = 0x04
	FUNCT_SRLV    = 0x06
	FUNCT_SRAV    = 0x07
	FUNCT_JR      = 0x08
	FUNCT_JALR    = 0x09
	FUNCT_SYSCALL = 0x0C
	FUNCT_BREAK   = 0x0D
	FUNCT_MFHI    = 0x10
	FUNCT_MTHI    = 0x11
	FUNCT_MFLO    = 0x12
	FUNCT_MTLO    = 0x13
	FUNCT_MULT    = 0x18
	FUNCT_MULTU   = 0x19
	FUNCT_DIV     = 0x1A
	FUNCT_DIVU    = 0x1B
	FUNCT_ADD     = 0x20
	FUNCT_ADDU    = 0x21
	FUNCT_SUB     = 0x22
	FUNCT_SUBU    = 0x23
	FUNCT_AND     = 0x24
	FUNCT_OR      = 0x25
	FUNCT_XOR     = 0x26
	FUNCT_NOR     = 0x27
	FUNCT_SLT     = 0x2A
	FUNCT_SLTU    = 0x2B
)

// Immediate form primary codes.
const (
	PRIMARY_BEQ   = 0x04
	PRIMARY_BNE   = 0x05
	PRIMARY_BLEZ  = 0x06
	PRIMARY_BGTZ  = 0x07
	PRIMARY_ADDI  = 0x08
	PRIMARY_ADDIU = 0x09
	PRIMARY_SLTI  = 0x0A
	PRIMARY_SLTIU = 0x0B
	PRIMARY_ANDI  = 0x0C
	PRIMARY_ORI   = 0x0D
	PRIMARY_XORI  = 0x0E
	PRIMARY_LUI   = 0x0F
	PRIMARY_LB    = 0x20
	PRIMARY_LH    = 0x21
	PRIMARY_LWL   = 0x22
	PRIMARY_LW    = 0x23
	PRIMARY_LBU   = 0x24
	PRIMARY_LHU   = 0x25
	PRIMARY_LWR   = 0x26
	PRIMARY_SB    = 0x28
	PRIMARY_SH    = 0x29
	PRIMARY_SWL   = 0x2A
	PRIMARY_SW    = 0x2B
	PRIMARY_SWR   = 0x2E
)

func opR(mnemonic, desc string, funct uint8, syntax Syntax) Operation {
	return Operation{Mnemonic: mnemonic, Description: desc, Layout: LAYOUT_REGISTER,
		Primary: PRIMARY_SPECIAL, Secondary: funct, Syntax: syntax}
}

func opI(mnemonic, desc string, primary uint8, syntax Syntax) Operation {
	return Operation{Mnemonic: mnemonic, Description: desc, Layout: LAYOUT_IMMEDIATE,
		Primary: primary, Syntax: syntax}
}

func opJ(mnemonic, desc string, primary uint8) Operation {
	return Operation{Mnemonic: mnemonic, Description: desc, Layout: LAYOUT_JUMP,
		Primary: primary, Syntax: SYNTAX_TARGET}
}

// StandardOperations is the R3000A base instruction set.
var StandardOperations = []Operation{
	opR("sll", "Logical Shift Left", FUNCT_SLL, SYNTAX_RD_RT_SHAMT),
	opR("srl", "Logical Shift Right (0-extended)", FUNCT_SRL, SYNTAX_RD_RT_SHAMT),
	opR("sra", "Arithmetic Shift Right (sign-extended)", FUNCT_SRA, SYNTAX_RD_RT_SHAMT),
	opR("sllv", "Logical Shift Left Variable", FUNCT_SLLV, SYNTAX_RD_RT_RS),
	opR("srlv", "Logical Shift Right Variable", FUNCT_SRLV, SYNTAX_RD_RT_RS),
	opR("srav", "Arithmetic Shift Right Variable", FUNCT_SRAV, SYNTAX_RD_RT_RS),
	opR("jr", "Jump to Address in Register", FUNCT_JR, SYNTAX_RS),
	opR("jalr", "Jump and Link to Address in Register", FUNCT_JALR, SYNTAX_RD_RS),
	opR("syscall", "System Call", FUNCT_SYSCALL, SYNTAX_CODE),
	opR("break", "Breakpoint", FUNCT_BREAK, SYNTAX_CODE),
	opR("mfhi", "Move from HI Register", FUNCT_MFHI, SYNTAX_RD),
	opR("mthi", "Move to HI Register", FUNCT_MTHI, SYNTAX_RS),
	opR("mflo", "Move from LO Register", FUNCT_MFLO, SYNTAX_RD),
	opR("mtlo", "Move to LO Register", FUNCT_MTLO, SYNTAX_RS),
	opR("mult", "Multiply", FUNCT_MULT, SYNTAX_RS_RT),
	opR("multu", "Unsigned Multiply", FUNCT_MULTU, SYNTAX_RS_RT),
	opR("div", "Divide", FUNCT_DIV, SYNTAX_RS_RT),
	opR("divu", "Unsigned Divide", FUNCT_DIVU, SYNTAX_RS_RT),
	opR("add", "Add", FUNCT_ADD, SYNTAX_RD_RS_RT),
	opR("addu", "Add Unsigned", FUNCT_ADDU, SYNTAX_RD_RS_RT),
	opR("sub", "Subtract", FUNCT_SUB, SYNTAX_RD_RS_RT),
	opR("subu", "Unsigned Subtract", FUNCT_SUBU, SYNTAX_RD_RS_RT),
	opR("and", "Bitwise AND", FUNCT_AND, SYNTAX_RD_RS_RT),
	opR("or", "Bitwise OR", FUNCT_OR, SYNTAX_RD_RS_RT),
	opR("xor", "Bitwise XOR (Exclusive-OR)", FUNCT_XOR, SYNTAX_RD_RS_RT),
	opR("nor", "Bitwise NOR (NOT-OR)", FUNCT_NOR, SYNTAX_RD_RS_RT),
	opR("slt", "Set to 1 if Less Than", FUNCT_SLT, SYNTAX_RD_RS_RT),
	opR("sltu", "Set to 1 if Less Than Unsigned", FUNCT_SLTU, SYNTAX_RD_RS_RT),

	opI("beq", "Branch if Equal", PRIMARY_BEQ, SYNTAX_RS_RT_OFF),
	opI("bne", "Branch if Not Equal", PRIMARY_BNE, SYNTAX_RS_RT_OFF),
	opI("blez", "Branch if Less Than or Equal to Zero", PRIMARY_BLEZ, SYNTAX_RS_OFF),
	opI("bgtz", "Branch if Greater Than Zero", PRIMARY_BGTZ, SYNTAX_RS_OFF),
	opI("addi", "Add Immediate", PRIMARY_ADDI, SYNTAX_RT_RS_SIMM),
	opI("addiu", "Add Unsigned Immediate", PRIMARY_ADDIU, SYNTAX_RT_RS_SIMM),
	opI("slti", "Set to 1 if Less Than Immediate", PRIMARY_SLTI, SYNTAX_RT_RS_SIMM),
	opI("sltiu", "Set to 1 if Less Than Unsigned Immediate", PRIMARY_SLTIU, SYNTAX_RT_RS_SIMM),
	opI("andi", "Bitwise AND Immediate", PRIMARY_ANDI, SYNTAX_RT_RS_UIMM),
	opI("ori", "Bitwise OR Immediate", PRIMARY_ORI, SYNTAX_RT_RS_UIMM),
	opI("xori", "Bitwise XOR Immediate", PRIMARY_XORI, SYNTAX_RT_RS_UIMM),
	opI("lui", "Load Upper Immediate", PRIMARY_LUI, SYNTAX_RT_UIMM),
	opI("lb", "Load Byte", PRIMARY_LB, SYNTAX_RT_MEM),
	opI("lh", "Load Halfword", PRIMARY_LH, SYNTAX_RT_MEM),
	opI("lwl", "Load Word Left", PRIMARY_LWL, SYNTAX_RT_MEM),
	opI("lw", "Load Word", PRIMARY_LW, SYNTAX_RT_MEM),
	opI("lbu", "Load Byte Unsigned", PRIMARY_LBU, SYNTAX_RT_MEM),
	opI("lhu", "Load Halfword Unsigned", PRIMARY_LHU, SYNTAX_RT_MEM),
	opI("lwr", "Load Word Right", PRIMARY_LWR, SYNTAX_RT_MEM),
	opI("sb", "Store Byte", PRIMARY_SB, SYNTAX_RT_MEM),
	opI("sh", "Store Halfword", PRIMARY_SH, SYNTAX_RT_MEM),
	opI("swl", "Store Word Left", PRIMARY_SWL, SYNTAX_RT_MEM),
	opI("sw", "Store Word", PRIMARY_SW, SYNTAX_RT_MEM),
	opI("swr", "Store Word Right", PRIMARY_SWR, SYNTAX_RT_MEM),

	opJ("j", "Jump to Address", PRIMARY_J),
	opJ("jal", "Jump and Link", PRIMARY_JAL),
}

// Standard is the process wide catalog of StandardOperations.
var Standard = MustCatalog(StandardOperations...)
