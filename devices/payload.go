package devices

// payload reads a task buffer front to back. Reads past the end yield 0.
type payload struct {
	data []byte
}

func (p *payload) byte() byte {
	if len(p.data) == 0 {
		return 0
	}
	b := p.data[0]
	p.data = p.data[1:]
	return b
}

func (p *payload) rest() string {
	s := string(p.data)
	p.data = nil
	return s
}

type Blinken struct {
	Part     byte
	Pos      byte
	Mask     byte
	Vel      byte
	VelDelay byte
	LFO      byte
	LFODelay byte
}

func ParseBlinken(data []byte) Blinken {
	p := &payload{data: data}
	return Blinken{
		Part:     p.byte(),
		Pos:      p.byte(),
		Mask:     p.byte(),
		Vel:      p.byte(),
		VelDelay: p.byte(),
		LFO:      p.byte(),
		LFODelay: p.byte(),
	}
}

type Scroller struct {
	PingPong byte
	Steps    byte
	Blanks   byte
	Message  string
}

func ParseScroller(data []byte) Scroller {
	p := &payload{data: data}
	return Scroller{
		PingPong: p.byte(),
		Steps:    p.byte(),
		Blanks:   p.byte(),
		Message:  p.rest(),
	}
}

type WarDialer struct {
	Number byte
	Speech string
}

func ParseWarDialer(data []byte) WarDialer {
	p := &payload{data: data}
	return WarDialer{
		Number: p.byte(),
		Speech: p.rest(),
	}
}
