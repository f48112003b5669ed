package leave

import (
	"context"
	"fmt"
	"time"
)

// memStore is an in-memory StoreAPI for service tests. InTx snapshots
// the state and restores it when fn fails, mimicking a rollback.
type memStore struct {
	employees map[string]int // employee id -> remaining leave days
	requests  map[string]Request
	nextID    int

	failUpdateRequest error // returned by UpdateRequest when set
}

func newMemStore() *memStore {
	return &memStore{
		employees: map[string]int{},
		requests:  map[string]Request{},
	}
}

func (m *memStore) addEmployee(id string, remaining int) {
	m.employees[id] = remaining
}

func (m *memStore) InTx(_ context.Context, fn func(StoreAPI) error) error {
	employees := make(map[string]int, len(m.employees))
	for k, v := range m.employees {
		employees[k] = v
	}
	requests := make(map[string]Request, len(m.requests))
	for k, v := range m.requests {
		requests[k] = v
	}

	if err := fn(m); err != nil {
		m.employees = employees
		m.requests = requests
		return err
	}
	return nil
}

func (m *memStore) InsertRequest(_ context.Context, r Request) (string, error) {
	m.nextID++
	r.ID = fmt.Sprintf("req-%d", m.nextID)
	r.CreatedAt = time.Now()
	m.requests[r.ID] = r
	return r.ID, nil
}

func (m *memStore) GetRequest(_ context.Context, id string) (Request, error) {
	r, ok := m.requests[id]
	if !ok {
		return Request{}, ErrNotFound
	}
	return r, nil
}

func (m *memStore) UpdateRequest(_ context.Context, r Request) error {
	if m.failUpdateRequest != nil {
		return m.failUpdateRequest
	}
	if _, ok := m.requests[r.ID]; !ok {
		return ErrNotFound
	}
	m.requests[r.ID] = r
	return nil
}

func (m *memStore) DeleteRequest(_ context.Context, id string) error {
	if _, ok := m.requests[id]; !ok {
		return ErrNotFound
	}
	delete(m.requests, id)
	return nil
}

func (m *memStore) ListRequests(_ context.Context, f RequestFilter, limit, offset int) ([]Request, int, error) {
	var out []Request
	for _, r := range m.requests {
		if f.EmployeeID != "" && r.EmployeeID != f.EmployeeID {
			continue
		}
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		out = append(out, r)
	}
	total := len(out)
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (m *memStore) RemainingDays(_ context.Context, employeeID string) (int, error) {
	remaining, ok := m.employees[employeeID]
	if !ok {
		return 0, ErrEmployeeNotFound
	}
	return remaining, nil
}

func (m *memStore) ReserveDays(_ context.Context, employeeID string, days int) (bool, error) {
	remaining, ok := m.employees[employeeID]
	if !ok {
		return false, ErrEmployeeNotFound
	}
	if remaining < days {
		return false, nil
	}
	m.employees[employeeID] = remaining - days
	return true, nil
}

func (m *memStore) ReleaseDays(_ context.Context, employeeID string, days int) error {
	remaining, ok := m.employees[employeeID]
	if !ok {
		return ErrEmployeeNotFound
	}
	m.employees[employeeID] = remaining + days
	return nil
}
