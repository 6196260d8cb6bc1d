package streamradio

import (
	"fmt"
	"time"

	"go.bug.st/serial"
)

// Transceiver is the minimal CAT-dialect contract for a radio: set/read VFO
// frequency and push/pull raw duplex bytes; it has no mode control.
// KenwoodTransceiver, which wraps a Port, is the only implementation in this
// module; conventional CAT backends are a documented extension point.
type Transceiver interface {
	SetFrequency(hz int) error
	Frequency() (int, error)
	Write(b []byte) error
	Read() ([]byte, error)
	Close() error
}

type readResult struct {
	data []byte
	err  error
}

type writeResult struct {
	err error
}

// Port owns a go.bug.st/serial device handle behind a command channel so
// it has exactly one goroutine touching the OS handle (spec §5's "I/O task
// is the only mutator"). Reads block the caller until bytes are available
// or the timeout elapses; writes block until accepted by the device.
type Port struct {
	conn serial.Port

	readCmd    chan chan readResult
	writeCmd   chan writeRequest
	setLineCmd chan setLineRequest
	closeCmd   chan chan error

	demux *StreamDemux
}

type writeRequest struct {
	data []byte
	resp chan writeResult
}

type setLineRequest struct {
	dtr, rts bool
	resp     chan error
}

// OpenPort opens name at baud 8-N-1 and starts its owning I/O goroutine.
func OpenPort(name string, baud int) (*Port, error) {
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	conn, err := serial.Open(name, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", name, err)
	}
	if err := conn.SetReadTimeout(100 * time.Millisecond); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to set read timeout: %w", err)
	}

	p := &Port{
		conn:       conn,
		readCmd:    make(chan chan readResult),
		writeCmd:   make(chan writeRequest),
		setLineCmd: make(chan setLineRequest),
		closeCmd:   make(chan chan error),
		demux:      NewStreamDemux(),
	}
	go p.loop()
	return p, nil
}

func (p *Port) loop() {
	buf := make([]byte, 4096)
	for {
		select {
		case reply := <-p.readCmd:
			n, err := p.conn.Read(buf)
			if err != nil {
				reply <- readResult{err: err}
				continue
			}
			out := make([]byte, n)
			copy(out, buf[:n])
			reply <- readResult{data: out}

		case req := <-p.writeCmd:
			_, err := p.conn.Write(req.data)
			req.resp <- writeResult{err: err}

		case req := <-p.setLineCmd:
			err := p.conn.SetDTR(req.dtr)
			if err == nil {
				err = p.conn.SetRTS(req.rts)
			}
			req.resp <- err

		case reply := <-p.closeCmd:
			reply <- p.conn.Close()
			return
		}
	}
}

// ReadRaw reads the next available chunk of bytes from the device.
func (p *Port) ReadRaw() ([]byte, error) {
	reply := make(chan readResult)
	p.readCmd <- reply
	r := <-reply
	return r.data, r.err
}

// Write sends bytes to the device.
func (p *Port) Write(b []byte) error {
	resp := make(chan writeResult)
	p.writeCmd <- writeRequest{data: b, resp: resp}
	return (<-resp).err
}

// SetLines sets the DTR/RTS control lines.
func (p *Port) SetLines(dtr, rts bool) error {
	resp := make(chan error)
	p.setLineCmd <- setLineRequest{dtr: dtr, rts: rts, resp: resp}
	return <-resp
}

// Close stops the I/O goroutine and closes the device.
func (p *Port) Close() error {
	reply := make(chan error)
	p.closeCmd <- reply
	return <-reply
}

// Read pulls the next chunk from the device and feeds it through the
// demultiplexer, returning any CAT responses and audio samples it produced.
func (p *Port) Read() (cat []string, audio []float32, err error) {
	data, err := p.ReadRaw()
	if err != nil {
		return nil, nil, err
	}
	// The demux's internal state (and any partial CAT buffer) must persist
	// across reads: a CAT response or the ";US" prefix can straddle a read
	// boundary (spec §8 chunking invariance).
	p.demux.Feed(data)
	cat, audio = p.demux.CAT, p.demux.Audio
	p.demux.CAT, p.demux.Audio = nil, nil
	return cat, audio, nil
}

// WriteAudio encodes samples as an outbound audio block and writes it.
func (p *Port) WriteAudio(samples []float32) error {
	return p.Write(EncodeAudioBlock(samples))
}

// WriteCAT writes a raw CAT command, appending a trailing ';' if missing.
func (p *Port) WriteCAT(cmd string) error {
	if len(cmd) == 0 || cmd[len(cmd)-1] != ';' {
		cmd += ";"
	}
	return p.Write([]byte(cmd))
}
