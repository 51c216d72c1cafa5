package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ecoscan/internal/client/models"
	"github.com/dmitrijs2005/ecoscan/internal/common"
	pb "github.com/dmitrijs2005/ecoscan/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// GRPCClient implements Client over a gRPC connection to the backend.
// The access token obtained on Register/Login is attached to every
// subsequent call via a unary interceptor.
type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.EcoScanServiceClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewEcoScanClient dials the backend at endpointURL. The connection is lazy;
// errors surface on the first call.
func NewEcoScanClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.initGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewEcoScanServiceClient(conn)
	return nil
}

func identityFromPb(u *pb.User) *models.Identity {
	if u == nil {
		return nil
	}
	return &models.Identity{
		ID:    u.Id,
		Name:  u.Name,
		Email: u.Email,
		Role:  models.Role(u.Role),
	}
}

func (s *GRPCClient) Register(ctx context.Context, name string, email string, password []byte) (string, *models.Identity, error) {
	req := &pb.RegisterUserRequest{Name: name, Email: email, Password: string(password)}

	resp, err := s.client.RegisterUser(ctx, req)
	if err != nil {
		return "", nil, s.mapError(err)
	}

	s.accessToken = resp.AccessToken
	return resp.AccessToken, identityFromPb(resp.User), nil
}

func (s *GRPCClient) Login(ctx context.Context, email string, password []byte) (string, *models.Identity, error) {
	req := &pb.LoginRequest{Email: email, Password: string(password)}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return "", nil, s.mapError(err)
	}

	s.accessToken = resp.AccessToken
	return resp.AccessToken, identityFromPb(resp.User), nil
}

// SetAccessToken installs a previously persisted token, e.g. after the
// session is restored at startup.
func (s *GRPCClient) SetAccessToken(token string) {
	s.accessToken = token
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if _, err := s.client.Ping(ctx, &pb.PingRequest{}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) GetUploadURL(ctx context.Context, mediaType string) (string, string, error) {
	req := &pb.GetUploadUrlRequest{MediaType: mediaType}

	resp, err := s.client.GetUploadUrl(ctx, req)
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.StorageKey, resp.UploadUrl, nil
}

func (s *GRPCClient) Classify(ctx context.Context, storageKey string) (*models.ClassificationResult, error) {
	req := &pb.ClassifyRequest{StorageKey: storageKey}

	resp, err := s.client.Classify(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &models.ClassificationResult{
		ObjectName:        resp.ObjectName,
		Category:          resp.Category,
		HazardousElements: resp.HazardousElements,
		Confidence:        resp.Confidence,
	}, nil
}

func (s *GRPCClient) ListRecords(ctx context.Context, all bool) ([]*models.ClassificationRecord, error) {
	resp, err := s.client.ListRecords(ctx, &pb.ListRecordsRequest{All: all})
	if err != nil {
		return nil, s.mapError(err)
	}

	records := make([]*models.ClassificationRecord, 0, len(resp.Records))
	for _, r := range resp.Records {
		records = append(records, &models.ClassificationRecord{
			ID:       r.Id,
			OwnerID:  r.OwnerId,
			ImageRef: r.ImageRef,
			Result: models.ClassificationResult{
				ObjectName:        r.ObjectName,
				Category:          r.Category,
				HazardousElements: r.HazardousElements,
				Confidence:        r.Confidence,
			},
			CreatedAt: time.Unix(r.CreatedAt, 0),
		})
	}
	return records, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.AlreadyExists:
		return ErrEmailTaken
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
