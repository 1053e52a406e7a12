package client

import "sync"

// scopeSnapshot is an immutable copy of the session scope, taken once per
// dispatch so URL construction is a pure function of its inputs.
type scopeSnapshot struct {
	TenantID    string
	Environment string
	CompanyID   string
	CompanyName string
}

// scope is the layered session state a client dispatches inside: tenant →
// environment → company. It lives on the client instance, not in process
// globals, so concurrent sessions are just separate clients. The lock makes
// a single client safe to share anyway.
type scope struct {
	mutex       sync.RWMutex
	tenantID    string
	environment string
	companyID   string
	companyName string
}

func newScope(tenantID, environment string) *scope {
	return &scope{
		tenantID:    tenantID,
		environment: environment,
	}
}

func (s *scope) snapshot() scopeSnapshot {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return scopeSnapshot{
		TenantID:    s.tenantID,
		Environment: s.environment,
		CompanyID:   s.companyID,
		CompanyName: s.companyName,
	}
}

func (s *scope) setEnvironment(name string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.environment = name
}

func (s *scope) environmentName() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.environment
}

// setCompany sets id and name together. They are never set separately:
// company context is either fully present or fully absent.
func (s *scope) setCompany(id, name string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.companyID = id
	s.companyName = name
}

func (s *scope) company() (string, string) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.companyID, s.companyName
}
