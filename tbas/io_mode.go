package tbas

type IOMode uint8

const (
	ModeConsoleDecimalWrite IOMode = iota
	ModeConsoleDecimalRead
	ModeConsoleASCIIWrite
	ModeConsoleASCIIRead
	ModeModemASCIIWrite
	ModeModemASCIIRead
	ModeBufferProgram
	ModeExecuteTask
	ModeBufferEnqueue
	ModeBufferDequeueLIFO
	ModeBufferDequeueFIFO
	ModeBufferClear
	ModeConvertLowerCase
	ModeConvertUpperCase
	ModeConvertDecimal
	ModeConvertTBAS
	ModeALUAdd
	ModeALUSub
	ModeALUMul
	ModeALUDiv
	ModeALUAnd
	ModeALUOr
	ModeALUNot
	ModeALUXor
	ModeGetMPtr
	ModeGetEPtr
	ModeJumpLeft
	ModeJumpRight

	numIOModes
)

func (m IOMode) Valid() bool {
	return m < numIOModes
}

var ioModeNames = [numIOModes]string{
	ModeConsoleDecimalWrite: "console_decimal_write",
	ModeConsoleDecimalRead:  "console_decimal_read",
	ModeConsoleASCIIWrite:   "console_ascii_write",
	ModeConsoleASCIIRead:    "console_ascii_read",
	ModeModemASCIIWrite:     "modem_ascii_write",
	ModeModemASCIIRead:      "modem_ascii_read",
	ModeBufferProgram:       "buffer_program",
	ModeExecuteTask:         "execute_task",
	ModeBufferEnqueue:       "buffer_enqueue",
	ModeBufferDequeueLIFO:   "buffer_dequeue_filo",
	ModeBufferDequeueFIFO:   "buffer_dequeue_fifo",
	ModeBufferClear:         "buffer_clear",
	ModeConvertLowerCase:    "convert_lower_case",
	ModeConvertUpperCase:    "convert_upper_case",
	ModeConvertDecimal:      "convert_decimal",
	ModeConvertTBAS:         "convert_tbas",
	ModeALUAdd:              "alu_add",
	ModeALUSub:              "alu_sub",
	ModeALUMul:              "alu_mul",
	ModeALUDiv:              "alu_div",
	ModeALUAnd:              "alu_and",
	ModeALUOr:               "alu_or",
	ModeALUNot:              "alu_not",
	ModeALUXor:              "alu_xor",
	ModeGetMPtr:             "get_mptr",
	ModeGetEPtr:             "get_eptr",
	ModeJumpLeft:            "jump_left",
	ModeJumpRight:           "jump_right",
}

func (m IOMode) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return ioModeNames[m]
}
