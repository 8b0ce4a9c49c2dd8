package kv

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"
)

// Memory is the resilience shim: a process-local Store used when the Redis
// backend is unconfigured or unreachable. State is not persisted across
// restarts and not shared across instances. Construct one and pass it in;
// it is not a package singleton.
type Memory struct {
	mu       sync.RWMutex
	scalars  map[string]string
	hashes   map[string]map[string]string
	zsets    map[string]map[string]float64
	sets     map[string]map[string]struct{}
	expiries map[string]time.Time
}

func NewMemory() *Memory {
	return &Memory{
		scalars:  make(map[string]string),
		hashes:   make(map[string]map[string]string),
		zsets:    make(map[string]map[string]float64),
		sets:     make(map[string]map[string]struct{}),
		expiries: make(map[string]time.Time),
	}
}

// purgeExpired drops a scalar whose TTL has passed. Caller holds the write
// lock.
func (m *Memory) purgeExpired(key string) {
	if exp, ok := m.expiries[key]; ok && time.Now().After(exp) {
		delete(m.scalars, key)
		delete(m.expiries, key)
	}
}

func (m *Memory) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setLocked(key, value)
	return nil
}

func (m *Memory) setLocked(key, value string) {
	m.scalars[key] = value
	delete(m.expiries, key)
}

func (m *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.purgeExpired(key)
	val, ok := m.scalars[key]
	return val, ok, nil
}

func (m *Memory) HSet(ctx context.Context, key, field, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hsetLocked(key, field, value)
	return nil
}

func (m *Memory) hsetLocked(key, field, value string) {
	h, ok := m.hashes[key]
	if !ok {
		h = make(map[string]string)
		m.hashes[key] = h
	}
	h[field] = value
}

func (m *Memory) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(m.hashes[key]))
	for f, v := range m.hashes[key] {
		out[f] = v
	}
	return out, nil
}

func (m *Memory) ZAdd(ctx context.Context, key, member string, score float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.zaddLocked(key, member, score)
	return nil
}

func (m *Memory) zaddLocked(key, member string, score float64) {
	z, ok := m.zsets[key]
	if !ok {
		z = make(map[string]float64)
		m.zsets[key] = z
	}
	z[member] = score
}

// ZRevRangeWithScores mirrors Redis semantics: descending score, and equal
// scores in reverse lexical member order (the reverse of the ascending
// view's lexical tie order). Callers that need a different tie-break impose
// it themselves.
func (m *Memory) ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) ([]Member, error) {
	m.mu.RLock()
	members := make([]Member, 0, len(m.zsets[key]))
	for member, score := range m.zsets[key] {
		members = append(members, Member{Member: member, Score: score})
	}
	m.mu.RUnlock()

	sort.Slice(members, func(i, j int) bool {
		if members[i].Score != members[j].Score {
			return members[i].Score > members[j].Score
		}
		return members[i].Member > members[j].Member
	})

	n := int64(len(members))
	if start < 0 {
		start = n + start
	}
	if stop < 0 {
		stop = n + stop
	}
	if start < 0 {
		start = 0
	}
	if start >= n || stop < start {
		return []Member{}, nil
	}
	if stop >= n {
		stop = n - 1
	}
	return members[start : stop+1], nil
}

func (m *Memory) SAdd(ctx context.Context, key string, members ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, member := range members {
		m.saddLocked(key, member)
	}
	return nil
}

func (m *Memory) saddLocked(key, member string) {
	s, ok := m.sets[key]
	if !ok {
		s = make(map[string]struct{})
		m.sets[key] = s
	}
	s[member] = struct{}{}
}

func (m *Memory) Incr(ctx context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.purgeExpired(key)
	n, _ := strconv.ParseInt(m.scalars[key], 10, 64)
	n++
	m.scalars[key] = strconv.FormatInt(n, 10)
	return n, nil
}

func (m *Memory) Expire(ctx context.Context, key string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.scalars[key]; ok {
		m.expiries[key] = time.Now().Add(ttl)
	}
	return nil
}

// TTL follows Redis: -2 for a missing key, -1 for a key without expiry.
func (m *Memory) TTL(ctx context.Context, key string) (time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.purgeExpired(key)
	if exp, ok := m.expiries[key]; ok {
		return time.Until(exp), nil
	}
	if m.existsLocked(key) {
		return -1, nil
	}
	return -2, nil
}

func (m *Memory) existsLocked(key string) bool {
	if _, ok := m.scalars[key]; ok {
		return true
	}
	if _, ok := m.hashes[key]; ok {
		return true
	}
	if _, ok := m.zsets[key]; ok {
		return true
	}
	_, ok := m.sets[key]
	return ok
}

func (m *Memory) Pipeline() Pipeline {
	return &memoryPipeline{store: m}
}

func (m *Memory) Ping(ctx context.Context) error {
	return nil
}

// memoryPipeline queues commands and applies them under one lock on Exec.
// Like the real backend it makes no atomicity promise; it simply batches.
type memoryPipeline struct {
	store *Memory
	ops   []func()
}

func (p *memoryPipeline) Set(ctx context.Context, key, value string) {
	p.ops = append(p.ops, func() { p.store.setLocked(key, value) })
}

func (p *memoryPipeline) HSet(ctx context.Context, key, field, value string) {
	p.ops = append(p.ops, func() { p.store.hsetLocked(key, field, value) })
}

func (p *memoryPipeline) ZAdd(ctx context.Context, key, member string, score float64) {
	p.ops = append(p.ops, func() { p.store.zaddLocked(key, member, score) })
}

func (p *memoryPipeline) SAdd(ctx context.Context, key, member string) {
	p.ops = append(p.ops, func() { p.store.saddLocked(key, member) })
}

func (p *memoryPipeline) Exec(ctx context.Context) error {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()
	for _, op := range p.ops {
		op()
	}
	p.ops = nil
	return nil
}
