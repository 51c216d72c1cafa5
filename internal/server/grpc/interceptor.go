package grpc

import (
	"context"

	"github.com/dmitrijs2005/ecoscan/internal/common"
	pb "github.com/dmitrijs2005/ecoscan/internal/proto"
	"github.com/dmitrijs2005/ecoscan/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const (
	UserIDKey ctxKey = "userID"
	RoleKey   ctxKey = "role"
)

// protectedMethods require a valid access token in incoming metadata.
var protectedMethods = map[string]bool{
	pb.EcoScanService_GetUploadUrl_FullMethodName: true,
	pb.EcoScanService_Classify_FullMethodName:     true,
	pb.EcoScanService_ListRecords_FullMethodName:  true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if protectedMethods[info.FullMethod] {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		claims, err := auth.GetClaimsFromToken(accessToken, s.jwtSecret)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)

	}

	return handler(ctx, req)
}
