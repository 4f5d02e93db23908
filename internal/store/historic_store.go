package store

import (
	"exrates/internal/domain"
	"sort"
	"sync"
)

type series struct {
	dates   []domain.Date // ascending
	byDate  map[domain.Date]domain.RateRecord
	current *domain.RateRecord
}

func (s *series) put(r domain.RateRecord) {
	if r.Date.IsCurrent() {
		rec := r
		s.current = &rec
		return
	}
	if _, ok := s.byDate[r.Date]; !ok {
		i := sort.Search(len(s.dates), func(i int) bool { return !s.dates[i].Before(r.Date) })
		s.dates = append(s.dates, domain.Date{})
		copy(s.dates[i+1:], s.dates[i:])
		s.dates[i] = r.Date
	}
	s.byDate[r.Date] = r
}

func (s *series) latest() (domain.RateRecord, bool) {
	if s.current != nil {
		return *s.current, true
	}
	if len(s.dates) == 0 {
		return domain.RateRecord{}, false
	}
	return s.byDate[s.dates[len(s.dates)-1]], true
}

// HistoricStore keeps at most one record per (pair, date). Entries are never evicted.
type HistoricStore struct {
	mu        sync.RWMutex
	pairs     map[domain.CurrencyPair]*series
	size      int
	watermark domain.Date
	fetched   bool
}

// Get returns the exact-date record. For the current marker it returns the
// current record if one was stored, otherwise the record with the greatest date.
func (s *HistoricStore) Get(pair domain.CurrencyPair, date domain.Date) (domain.RateRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ser, ok := s.pairs[pair]
	if !ok {
		return domain.RateRecord{}, false
	}
	if date.IsCurrent() {
		return ser.latest()
	}
	r, ok := ser.byDate[date]
	return r, ok
}

// NearestOnOrBefore returns the record with the greatest date not after date.
// It never looks ahead.
func (s *HistoricStore) NearestOnOrBefore(pair domain.CurrencyPair, date domain.Date) (domain.RateRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ser, ok := s.pairs[pair]
	if !ok {
		return domain.RateRecord{}, false
	}
	if date.IsCurrent() {
		return ser.latest()
	}
	i := sort.Search(len(ser.dates), func(i int) bool { return ser.dates[i].After(date) })
	if i == 0 {
		return domain.RateRecord{}, false
	}
	return ser.byDate[ser.dates[i-1]], true
}

// Put inserts or overwrites a single record.
func (s *HistoricStore) Put(r domain.RateRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putLocked(r)
}

// PutAll stores one fetch result atomically and advances the coverage watermark to through.
// The current marker as through leaves coverage untouched.
func (s *HistoricStore) PutAll(records []domain.RateRecord, through domain.Date) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range records {
		s.putLocked(r)
	}
	if through.IsCurrent() {
		return
	}
	if !s.fetched || through.After(s.watermark) {
		s.watermark = through
	}
	s.fetched = true
}

func (s *HistoricStore) putLocked(r domain.RateRecord) {
	if !r.Valid() {
		return
	}
	ser, ok := s.pairs[r.Pair()]
	if !ok {
		ser = &series{byDate: make(map[domain.Date]domain.RateRecord)}
		s.pairs[r.Pair()] = ser
	}
	before := len(ser.byDate)
	hadCurrent := ser.current != nil
	ser.put(r)
	if len(ser.byDate) > before || (!hadCurrent && ser.current != nil) {
		s.size++
	}
}

// CoversRange reports whether a fetch already reached the end of [from, to].
// Every fetch returns the whole currency set of the source, so coverage is tracked per store.
func (s *HistoricStore) CoversRange(from, to domain.Date) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.fetched {
		return false
	}
	end := to
	if from.After(to) {
		end = from
	}
	return !end.After(s.watermark)
}

func (s *HistoricStore) Watermark() (domain.Date, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.watermark, s.fetched
}

// Len returns the number of stored records.
func (s *HistoricStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.size
}

func NewHistoricStore() *HistoricStore {
	return &HistoricStore{pairs: make(map[domain.CurrencyPair]*series)}
}
