package db

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/jinzhu/gorm"
	"github.com/labstack/gommon/log"
)

var ErrUnknownDatabase = errors.New("access to this database is not permitted")

// Registry holds one connection pool per allowed database. Requests pick a database by name
// instead of switching a shared connection.
type Registry struct {
	mu          sync.RWMutex
	conns       map[string]*gorm.DB
	defaultName string
}

func NewRegistry(defaultName string) *Registry {
	return &Registry{
		conns:       make(map[string]*gorm.DB),
		defaultName: defaultName,
	}
}

// Register adds an opened database under name.
func (r *Registry) Register(name string, conn *gorm.DB) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[name] = conn
	if r.defaultName == "" {
		r.defaultName = name
	}
}

// Get returns the pool for name; an empty name selects the default database.
func (r *Registry) Get(name string) (*gorm.DB, string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if name == "" {
		name = r.defaultName
	}
	conn, ok := r.conns[name]
	if !ok {
		return nil, name, fmt.Errorf("%w: %q", ErrUnknownDatabase, name)
	}
	return conn, name, nil
}

// DefaultName is the database used when a request does not pick one.
func (r *Registry) DefaultName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultName
}

// Names lists the registered databases in alphabetical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.conns))
	for name := range r.conns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close closes every pool.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, conn := range r.conns {
		if err := conn.Close(); err != nil {
			log.Errorf("[DB] Failed to close %s: %v", name, err)
		}
		delete(r.conns, name)
	}
}
