package api

import (
	"sync"

	"github.com/jasonlvhit/gocron"
	log "github.com/sirupsen/logrus"
)

// Stats counts requests per route between two reports.
type Stats struct {
	counts map[string]uint64
	lock   sync.Mutex
}

func NewStats() *Stats {
	return &Stats{counts: make(map[string]uint64)}
}

// InitStats returns Stats reported and reset every interval seconds.
func InitStats(interval uint64) *Stats {
	st := NewStats()
	if interval == 0 {
		return st
	}

	s := gocron.NewScheduler()
	job := s.Every(interval).Seconds()
	if err := job.Do(st.Report); err != nil {
		log.Fatalf("Scheduling request statistics: %v", err)
	}

	go s.Start()

	return st
}

func (st *Stats) Inc(route string) {
	st.lock.Lock()
	defer st.lock.Unlock()

	st.counts[route]++
}

func (st *Stats) Get(route string) uint64 {
	st.lock.Lock()
	defer st.lock.Unlock()

	return st.counts[route]
}

// Report logs the counters and resets them.
func (st *Stats) Report() {
	st.lock.Lock()
	counts := st.counts
	st.counts = make(map[string]uint64)
	st.lock.Unlock()

	if len(counts) == 0 {
		return
	}

	fields := log.Fields{}
	for r, c := range counts {
		fields[r] = c
	}
	log.WithFields(fields).Info("Requests")
}
