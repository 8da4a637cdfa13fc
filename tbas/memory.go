package tbas

const DefaultMemorySize = 256

// Memory is the working cell array plus the variable length I/O buffer.
type Memory struct {
	Cells   []byte
	Pointer int
	Buffer  []byte
}

func NewMemory(size int) Memory {
	if size <= 0 {
		size = DefaultMemorySize
	}
	return Memory{
		Cells:  make([]byte, size),
		Buffer: []byte{},
	}
}

func (m *Memory) Cell() byte {
	return m.Cells[m.Pointer]
}

func (m *Memory) SetCell(v byte) {
	m.Cells[m.Pointer] = v
}

func (m *Memory) AtExtent() bool {
	return m.Pointer == len(m.Cells)-1
}

func (m *Memory) Enqueue(v byte) {
	m.Buffer = append(m.Buffer, v)
}

func (m *Memory) DequeueLIFO() (byte, bool) {
	if len(m.Buffer) == 0 {
		return 0, false
	}
	v := m.Buffer[len(m.Buffer)-1]
	m.Buffer = m.Buffer[:len(m.Buffer)-1]
	return v, true
}

func (m *Memory) DequeueFIFO() (byte, bool) {
	if len(m.Buffer) == 0 {
		return 0, false
	}
	v := m.Buffer[0]
	m.Buffer = m.Buffer[1:]
	return v, true
}

func (m *Memory) Clear() {
	m.Buffer = []byte{}
}

// Drain returns the buffer contents and leaves the buffer empty.
func (m *Memory) Drain() []byte {
	ret := m.Buffer
	m.Buffer = []byte{}
	return ret
}
