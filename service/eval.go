package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	pb "github.com/evilsocket/fastmath/proto"
	"github.com/evilsocket/fastmath/wrapper"

	"github.com/robertkrimen/otto"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// ErrHalted is returned when a script is interrupted because it exceeded
// the maximum execution time or the request has been canceled.
var ErrHalted = errors.New("script execution halted")

// ErrCrashed is returned when evaluating a script panics in native code.
var ErrCrashed = errors.New("script execution crashed")

func errEvalResponse(format string, args ...interface{}) *pb.EvalResponse {
	return &pb.EvalResponse{Success: false, Msg: fmt.Sprintf(format, args...)}
}

// run evaluates code in the vm, interrupting it when ctx is done.
func run(ctx context.Context, vm *otto.Otto, code string) (ret otto.Value, err error) {
	vm.Interrupt = make(chan func(), 1)
	done := make(chan struct{})
	watcher := make(chan struct{})

	go func() {
		defer close(watcher)
		select {
		case <-ctx.Done():
			vm.Interrupt <- func() {
				panic(ErrHalted)
			}
		case <-done:
		}
	}()

	defer func() {
		close(done)
		<-watcher
		vm.Interrupt = nil

		if caught := recover(); caught == ErrHalted {
			err = ErrHalted
		} else if caught != nil {
			log.WithField("size", len(code)).Errorf("script panic: %v", caught)
			err = fmt.Errorf("%w: %v", ErrCrashed, caught)
		}
	}()

	return vm.Run(code)
}

// Eval runs a script in one of the VMs of the pool, the script can access the
// fastmath module, the arrays store, the ctx object and its arguments as
// global variables. The value of the last evaluated expression is returned
// as JSON.
func (s *Service) Eval(ctx context.Context, script *pb.Script) (*pb.EvalResponse, error) {
	if max := s.config.MaxDuration(); max > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, max)
		defer cancel()
	}

	vm := s.pool.Get()
	defer vm.Release()

	started := time.Now()
	scriptCtx := wrapper.NewContext()
	if err := vm.Set("ctx", scriptCtx); err != nil {
		return errEvalResponse("error while creating context: %s", err), nil
	}

	for name, value := range script.Args {
		if err := vm.Set(name, value); err != nil {
			return errEvalResponse("error while setting argument %s: %s", name, err), nil
		}
	}
	defer func() {
		for name := range script.Args {
			vm.Set(name, otto.UndefinedValue())
		}
	}()

	var data []byte
	ret, err := run(ctx, vm.Otto, script.Code)

	fields := log.Fields{
		"vm":       vm.index,
		"size":     len(script.Code),
		"args":     len(script.Args),
		"duration": time.Since(started),
	}

	if err != nil {
		log.WithFields(fields).Debugf("eval failed: %v", err)
		return errEvalResponse("error while running script: %s", err), nil
	} else if err = scriptCtx.Err(); err != nil {
		log.WithFields(fields).Debugf("eval signaled error: %v", err)
		return errEvalResponse("error while running script: %s", err), nil
	} else if obj, err := wrapper.Export(ret); err != nil {
		return errEvalResponse("error while serializing return value: %s", err), nil
	} else if data, err = json.Marshal(obj); err != nil {
		return errEvalResponse("error while marshaling return value: %s", err), nil
	}

	log.WithFields(fields).Debug("eval")

	return &pb.EvalResponse{
		Success: true,
		Json:    string(data),
	}, nil
}
