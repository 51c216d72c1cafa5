package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/ecoscan/internal/common"
	pb "github.com/dmitrijs2005/ecoscan/internal/proto"
	"github.com/dmitrijs2005/ecoscan/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toPbUser(u *models.User) *pb.User {
	return &pb.User{
		Id:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

func toPbRecord(r *models.Record) *pb.Record {
	return &pb.Record{
		Id:                r.ID,
		OwnerId:           r.OwnerID,
		ImageRef:          r.ImageRef,
		ObjectName:        r.ObjectName,
		Category:          r.Category,
		HazardousElements: r.HazardousElements,
		Confidence:        r.Confidence,
		CreatedAt:         r.CreatedAt.Unix(),
	}
}

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.AuthResponse, error) {

	s.logger.Info(ctx, "Registration request")

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "name, email and password are required")
	}

	result, err := s.users.Register(ctx, req.Name, req.Email, []byte(req.Password))

	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, status.Error(codes.AlreadyExists, "email already registered")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Registered", "email", req.Email)
	return &pb.AuthResponse{AccessToken: result.AccessToken, User: toPbUser(result.User)}, nil

}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {

	result, err := s.users.Login(ctx, req.Email, []byte(req.Password))

	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.AuthResponse{AccessToken: result.AccessToken, User: toPbUser(result.User)}, nil

}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) GetUploadUrl(ctx context.Context, req *pb.GetUploadUrlRequest) (*pb.GetUploadUrlResponse, error) {

	key, url, err := s.classify.GetPresignedPutUrl(ctx, req.MediaType)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.GetUploadUrlResponse{StorageKey: key, UploadUrl: url}, nil

}

func (s *GRPCServer) Classify(ctx context.Context, req *pb.ClassifyRequest) (*pb.ClassifyResponse, error) {

	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok || userID == "" {
		return nil, status.Error(codes.Unauthenticated, "missing user")
	}

	if req.StorageKey == "" {
		return nil, status.Error(codes.InvalidArgument, "storage key is required")
	}

	record, err := s.classify.Classify(ctx, userID, req.StorageKey)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.ClassifyResponse{
		ObjectName:        record.ObjectName,
		Category:          record.Category,
		HazardousElements: record.HazardousElements,
		Confidence:        record.Confidence,
	}, nil

}

func (s *GRPCServer) ListRecords(ctx context.Context, req *pb.ListRecordsRequest) (*pb.ListRecordsResponse, error) {

	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok || userID == "" {
		return nil, status.Error(codes.Unauthenticated, "missing user")
	}

	if req.All {
		role, _ := ctx.Value(RoleKey).(string)
		if role != models.RoleAdmin {
			return nil, status.Error(codes.PermissionDenied, "admin role required")
		}
	}

	records, err := s.classify.ListRecords(ctx, userID, req.All)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	resp := &pb.ListRecordsResponse{}
	for _, r := range records {
		resp.Records = append(resp.Records, toPbRecord(r))
	}

	return resp, nil

}
