package service

import (
	"path/filepath"
	"time"

	"github.com/evilsocket/fastmath/backend"
	"github.com/evilsocket/fastmath/storage"
	"github.com/evilsocket/fastmath/wrapper"

	"github.com/evilsocket/islazy/log"
	"github.com/robertkrimen/otto"
)

// Service implements the pb.FastMathServer interface, giving access to
// the arrays store and evaluating scripts against it.
type Service struct {
	started  time.Time
	dataPath string
	config   Config
	arrays   *storage.Arrays
	pool     *ExecutionPool
}

// New loads the arrays stored in dataPath and creates a new service.
func New(dataPath string, config Config) (*Service, error) {
	if config.Backend != "" {
		if err := backend.Use(config.Backend); err != nil {
			return nil, err
		}
	}
	log.Debug("using %s compute backend", backend.Name())

	arrays, err := storage.LoadArrays(filepath.Join(dataPath, "arrays"))
	if err != nil {
		return nil, err
	}

	root := otto.New()
	if err := wrapper.Register(root); err != nil {
		return nil, err
	} else if err := wrapper.BindArrays(root, arrays); err != nil {
		return nil, err
	} else if err := wrapper.LoadReference(root); err != nil {
		return nil, err
	}

	return &Service{
		started:  time.Now(),
		dataPath: dataPath,
		config:   config,
		arrays:   arrays,
		pool:     CreateExecutionPool(root, config.PoolSize),
	}, nil
}

// NumArrays returns the number of arrays currently loaded by the service.
func (s *Service) NumArrays() int {
	return s.arrays.Size()
}

// Arrays returns the arrays store of the service.
func (s *Service) Arrays() *storage.Arrays {
	return s.arrays
}
