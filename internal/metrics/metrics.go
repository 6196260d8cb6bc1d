// Package metrics exposes Prometheus counters for codec decode attempts,
// mirroring the teacher's decoder_metrics.go pattern of tracking per-stage
// decode health (candidates found, LDPC convergence, CRC outcome).
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CandidatesFound = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ftcore_candidates_found_total",
		Help: "Costas sync candidates found per protocol.",
	}, []string{"protocol"})

	LDPCResult = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ftcore_ldpc_result_total",
		Help: "LDPC decode outcomes per protocol.",
	}, []string{"protocol", "result"}) // result = "converged" | "failed"

	CRCResult = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ftcore_crc_result_total",
		Help: "CRC-14 validation outcomes per protocol.",
	}, []string{"protocol", "result"}) // result = "valid" | "invalid"

	MessagesDecoded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ftcore_messages_decoded_total",
		Help: "Fully decoded and unpacked messages per protocol.",
	}, []string{"protocol"})
)

// Registry is a dedicated Prometheus registry for the codec core, kept
// separate from a host application's default registry so importing this
// package never panics on duplicate registration.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(CandidatesFound, LDPCResult, CRCResult, MessagesDecoded)
}
