package streamradio

import (
	"fmt"
	"strconv"
	"strings"
)

// KenwoodTransceiver speaks the Kenwood TS-480 CAT dialect (FA frequency
// commands, from the teacher's SerialCATServer command set) over a Port, and
// implements Transceiver.
type KenwoodTransceiver struct {
	port *Port
}

// NewKenwoodTransceiver wraps an open Port.
func NewKenwoodTransceiver(p *Port) *KenwoodTransceiver {
	return &KenwoodTransceiver{port: p}
}

// SetFrequency sets VFO A to hz via an "FA<11 digits>;" command.
func (t *KenwoodTransceiver) SetFrequency(hz int) error {
	return t.port.WriteCAT(fmt.Sprintf("FA%011d", hz))
}

// Frequency queries VFO A, sending "FA;" and parsing the "FA<11 digits>;"
// reply out of the next batch of CAT responses.
func (t *KenwoodTransceiver) Frequency() (int, error) {
	if err := t.port.WriteCAT("FA"); err != nil {
		return 0, err
	}
	cat, _, err := t.port.Read()
	if err != nil {
		return 0, err
	}
	for _, resp := range cat {
		if strings.HasPrefix(resp, "FA") {
			digits := strings.TrimSuffix(strings.TrimPrefix(resp, "FA"), ";")
			return strconv.Atoi(digits)
		}
	}
	return 0, fmt.Errorf("no FA response received")
}

// Write sends raw bytes to the device.
func (t *KenwoodTransceiver) Write(b []byte) error {
	return t.port.Write(b)
}

// Read pulls the next raw chunk from the device.
func (t *KenwoodTransceiver) Read() ([]byte, error) {
	return t.port.ReadRaw()
}

// Close closes the underlying port.
func (t *KenwoodTransceiver) Close() error {
	return t.port.Close()
}
