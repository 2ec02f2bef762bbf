package service

import (
	"fmt"

	pb "github.com/evilsocket/fastmath/proto"

	log "github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func errArrayResponse(format string, args ...interface{}) *pb.ArrayResponse {
	return &pb.ArrayResponse{Success: false, Msg: fmt.Sprintf(format, args...)}
}

// CreateArray validates and stores a new *pb.Array object. If successful, the
// identifier of the array is returned as the response message.
func (s *Service) CreateArray(ctx context.Context, array *pb.Array) (*pb.ArrayResponse, error) {
	if err := s.arrays.Create(array); err != nil {
		log.WithFields(log.Fields{"name": array.Name, "shape": array.Shape}).Debugf("create failed: %v", err)
		return errArrayResponse("%s", err), nil
	}
	return &pb.ArrayResponse{Success: true, Msg: fmt.Sprintf("%d", array.Id)}, nil
}

// ReadArray returns a copy of a stored *pb.Array given its identifier.
func (s *Service) ReadArray(ctx context.Context, query *pb.ById) (*pb.ArrayResponse, error) {
	array := s.arrays.Find(query.Id)
	if array == nil {
		return errArrayResponse("array %d not found.", query.Id), nil
	}
	return &pb.ArrayResponse{Success: true, Arrays: []*pb.Array{array}}, nil
}

// FindArray returns a copy of the most recent array with the given name.
func (s *Service) FindArray(ctx context.Context, query *pb.ByName) (*pb.ArrayResponse, error) {
	array := s.arrays.FindByName(query.Name)
	if array == nil {
		return errArrayResponse("array '%s' not found.", query.Name), nil
	}
	return &pb.ArrayResponse{Success: true, Arrays: []*pb.Array{array}}, nil
}

// DeleteArray removes a stored array given its identifier.
func (s *Service) DeleteArray(ctx context.Context, query *pb.ById) (*pb.ArrayResponse, error) {
	if array := s.arrays.Delete(query.Id); array == nil {
		return errArrayResponse("array %d not found.", query.Id), nil
	}
	return &pb.ArrayResponse{Success: true}, nil
}

// ListArrays returns all the stored arrays sorted by identifier.
func (s *Service) ListArrays(ctx context.Context, dummy *pb.Empty) (*pb.ArrayResponse, error) {
	return &pb.ArrayResponse{Success: true, Arrays: s.arrays.List()}, nil
}
