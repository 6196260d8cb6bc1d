// Command ftcored is the daemon that wires the FT8/JS8 codecs, the
// streaming-radio serial bridge, the cycle scheduler, and the optional JS8
// network bridge together.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cwsl/ftcore/config"
	"github.com/cwsl/ftcore/ft8"
	"github.com/cwsl/ftcore/internal/metrics"
	"github.com/cwsl/ftcore/internal/spectral"
	"github.com/cwsl/ftcore/js8"
	"github.com/cwsl/ftcore/jsbridge"
	"github.com/cwsl/ftcore/schedule"
	"github.com/cwsl/ftcore/streamradio"
)

func main() {
	configFile := flag.String("config", "station.yaml", "Path to station configuration file")
	bridgeAddr := flag.String("js8-bridge-addr", "", "Address to serve the JS8 TCP bridge on (disabled if empty)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("ftcored: failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("ftcored: invalid configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	controller := schedule.NewController(cfg.Callsign, cfg.Grid)
	go controller.Run(ctx.Done())

	audioBuf := schedule.NewAudioBuffer(spectral.SampleRate)
	waterfall := schedule.NewWaterfallHistory()

	var bridge *jsbridge.TCPBridge
	if *bridgeAddr != "" {
		bridge, err = jsbridge.ListenTCP(*bridgeAddr, func(m jsbridge.Message) {
			log.Printf("ftcored: js8 bridge received %s: %s", m.Type, m.Value)
		})
		if err != nil {
			log.Fatalf("ftcored: failed to start js8 bridge: %v", err)
		}
		defer bridge.Close()
	}

	wsBridge := jsbridge.NewWSBridge(func(m jsbridge.Message) {
		log.Printf("ftcored: js8 websocket bridge received %s: %s", m.Type, m.Value)
	})
	http.Handle("/js8", http.HandlerFunc(wsBridge.HandleWebSocket))
	http.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	port, err := streamradio.OpenPort(cfg.Transceiver.Port, cfg.Transceiver.Baud)
	if err != nil {
		log.Fatalf("ftcored: failed to open transceiver port %s: %v", cfg.Transceiver.Port, err)
	}
	defer port.Close()

	go ioLoop(ctx, port, audioBuf)

	sched := buildScheduler(cfg, controller, audioBuf, waterfall, port, bridge)
	go sched.Run(ctx)

	log.Printf("ftcored: running as %s on %s, mode=%s", cfg.Callsign, cfg.Transceiver.Port, cfg.Mode)

	// HTTP server for the /js8 websocket bridge and /metrics routes registered
	// above. It listens on ":0", a port chosen by the OS, which is not logged.
	go func() {
		if err := http.ListenAndServe(":0", nil); err != nil {
			log.Printf("ftcored: http server exited: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Println("ftcored: shutting down")
	cancel()
	time.Sleep(100 * time.Millisecond)
}

// ioLoop reads from the transceiver and appends decoded audio to the
// capture buffer; the I/O task is the only mutator of the serial port's
// demultiplexer state (spec §5).
func ioLoop(ctx context.Context, port *streamradio.Port, audioBuf *schedule.AudioBuffer) {
	for {
		if ctx.Err() != nil {
			return
		}
		_, audio, err := port.Read()
		if err != nil {
			log.Printf("ftcored: serial read error: %v", err)
			return
		}
		if len(audio) > 0 {
			audioBuf.Append(audio)
		}
	}
}

// txAudioFreqHz is the fixed baseband audio tone used for our own
// transmissions; the rig's dial frequency (cfg.DialFrequency) carries it to
// the actual RF channel.
const txAudioFreqHz = 1500.0

func buildScheduler(cfg *config.StationConfig, controller *schedule.Controller, audioBuf *schedule.AudioBuffer, waterfall *schedule.WaterfallHistory, port *streamradio.Port, bridge *jsbridge.TCPBridge) *schedule.CycleScheduler {
	var period time.Duration
	if cfg.Mode == "JS8" {
		period = time.Duration(cfg.JS8Speed().Profile().TXWindowSec * float64(time.Second))
	} else {
		period = time.Duration(ft8.SlotSeconds * float64(time.Second))
	}

	sched := schedule.NewCycleScheduler(period)
	sched.EvenSlot = cfg.EvenSlot
	sched.TXArmed = func() bool { return cfg.AutoSequence && controller.Snapshot().Armed }

	sched.RX = func(ctx context.Context, cycleStart time.Time) {
		samples := audioBuf.Snapshot()

		nsps := ft8.NSPS
		if cfg.Mode == "JS8" {
			nsps = cfg.JS8Speed().Profile().NSPS
		}
		if spec := spectral.Build(samples, nsps); len(spec.Rows) > 0 {
			waterfall.Append(schedule.WaterfallRow{Magnitudes: spec.Rows[0]})
		}

		if cfg.Mode == "JS8" {
			for _, d := range js8.Decode(samples, cfg.JS8Speed(), 200, 3000, 1.0, 50, 50) {
				if bridge != nil {
					bridge.Broadcast(jsbridge.Message{Type: jsbridge.TypeRXActivity, Value: d.Message.Text})
				}
			}
			return
		}
		for _, d := range ft8.Decode(samples, 200, 3000, 1.0, 50, 50) {
			controller.Deliver(schedule.DecodedRecord{
				Message:     d.Message,
				FrequencyHz: d.FrequencyHz,
				SNRdB:       d.SNRdB,
				Time:        cycleStart,
			})
			if bridge != nil {
				bridge.Broadcast(jsbridge.Message{Type: jsbridge.TypeRXDirected, Value: d.Message.Text()})
			}
		}
	}

	sched.TX = func(ctx context.Context, cycleStart time.Time) {
		if cfg.Mode == "JS8" {
			// The controller's auto-sequencer only tracks FT8 QSO state
			// (spec §4.10); JS8 transmission stays operator/command-driven.
			return
		}

		msg, ok := controller.NextTXMessage()
		if !ok {
			return
		}
		samples, err := ft8.Encode(msg, txAudioFreqHz)
		if err != nil {
			log.Printf("ftcored: failed to encode %q: %v", msg.Text(), err)
			return
		}
		if err := port.WriteAudio(samples); err != nil {
			log.Printf("ftcored: failed to transmit %q: %v", msg.Text(), err)
			return
		}
		if bridge != nil {
			bridge.Broadcast(jsbridge.Message{Type: jsbridge.TypeSendMessage, Value: msg.Text()})
		}
	}

	return sched
}
