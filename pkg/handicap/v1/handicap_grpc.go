package handicapv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "handicap.v1.Handicap"

const (
	Handicap_GetHandicap_FullMethodName          = "/handicap.v1.Handicap/GetHandicap"
	Handicap_SearchPlayer_FullMethodName         = "/handicap.v1.Handicap/SearchPlayer"
	Handicap_GetCourse_FullMethodName            = "/handicap.v1.Handicap/GetCourse"
	Handicap_SearchCourse_FullMethodName         = "/handicap.v1.Handicap/SearchCourse"
	Handicap_GetTees_FullMethodName              = "/handicap.v1.Handicap/GetTees"
	Handicap_RequestProductAccess_FullMethodName = "/handicap.v1.Handicap/RequestProductAccess"
	Handicap_GetPlayingHandicaps_FullMethodName  = "/handicap.v1.Handicap/GetPlayingHandicaps"
)

// HandicapClient is the client API for the Handicap service.
type HandicapClient interface {
	GetHandicap(ctx context.Context, in *GetHandicapRequest, opts ...grpc.CallOption) (*PlayerResult, error)
	SearchPlayer(ctx context.Context, in *SearchPlayerRequest, opts ...grpc.CallOption) (*SearchPlayerResponse, error)
	GetCourse(ctx context.Context, in *GetCourseRequest, opts ...grpc.CallOption) (*Course, error)
	SearchCourse(ctx context.Context, in *SearchCourseRequest, opts ...grpc.CallOption) (*SearchCourseResponse, error)
	GetTees(ctx context.Context, in *GetTeesRequest, opts ...grpc.CallOption) (*GetTeesResponse, error)
	RequestProductAccess(ctx context.Context, in *GpaRequest, opts ...grpc.CallOption) (*GpaResponse, error)
	GetPlayingHandicaps(ctx context.Context, in *GetPlayingHandicapsRequest, opts ...grpc.CallOption) (*GetPlayingHandicapsResponse, error)
}

type handicapClient struct {
	cc grpc.ClientConnInterface
}

func NewHandicapClient(cc grpc.ClientConnInterface) HandicapClient {
	return &handicapClient{cc}
}

func (c *handicapClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *handicapClient) GetHandicap(ctx context.Context, in *GetHandicapRequest, opts ...grpc.CallOption) (*PlayerResult, error) {
	out := new(PlayerResult)
	if err := c.invoke(ctx, Handicap_GetHandicap_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *handicapClient) SearchPlayer(ctx context.Context, in *SearchPlayerRequest, opts ...grpc.CallOption) (*SearchPlayerResponse, error) {
	out := new(SearchPlayerResponse)
	if err := c.invoke(ctx, Handicap_SearchPlayer_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *handicapClient) GetCourse(ctx context.Context, in *GetCourseRequest, opts ...grpc.CallOption) (*Course, error) {
	out := new(Course)
	if err := c.invoke(ctx, Handicap_GetCourse_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *handicapClient) SearchCourse(ctx context.Context, in *SearchCourseRequest, opts ...grpc.CallOption) (*SearchCourseResponse, error) {
	out := new(SearchCourseResponse)
	if err := c.invoke(ctx, Handicap_SearchCourse_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *handicapClient) GetTees(ctx context.Context, in *GetTeesRequest, opts ...grpc.CallOption) (*GetTeesResponse, error) {
	out := new(GetTeesResponse)
	if err := c.invoke(ctx, Handicap_GetTees_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *handicapClient) RequestProductAccess(ctx context.Context, in *GpaRequest, opts ...grpc.CallOption) (*GpaResponse, error) {
	out := new(GpaResponse)
	if err := c.invoke(ctx, Handicap_RequestProductAccess_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *handicapClient) GetPlayingHandicaps(ctx context.Context, in *GetPlayingHandicapsRequest, opts ...grpc.CallOption) (*GetPlayingHandicapsResponse, error) {
	out := new(GetPlayingHandicapsResponse)
	if err := c.invoke(ctx, Handicap_GetPlayingHandicaps_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// HandicapServer is the server API for the Handicap service. Implementations
// must embed UnimplementedHandicapServer.
type HandicapServer interface {
	GetHandicap(context.Context, *GetHandicapRequest) (*PlayerResult, error)
	SearchPlayer(context.Context, *SearchPlayerRequest) (*SearchPlayerResponse, error)
	GetCourse(context.Context, *GetCourseRequest) (*Course, error)
	SearchCourse(context.Context, *SearchCourseRequest) (*SearchCourseResponse, error)
	GetTees(context.Context, *GetTeesRequest) (*GetTeesResponse, error)
	RequestProductAccess(context.Context, *GpaRequest) (*GpaResponse, error)
	GetPlayingHandicaps(context.Context, *GetPlayingHandicapsRequest) (*GetPlayingHandicapsResponse, error)
	mustEmbedUnimplementedHandicapServer()
}

type UnimplementedHandicapServer struct{}

func (UnimplementedHandicapServer) GetHandicap(context.Context, *GetHandicapRequest) (*PlayerResult, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetHandicap not implemented")
}
func (UnimplementedHandicapServer) SearchPlayer(context.Context, *SearchPlayerRequest) (*SearchPlayerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SearchPlayer not implemented")
}
func (UnimplementedHandicapServer) GetCourse(context.Context, *GetCourseRequest) (*Course, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCourse not implemented")
}
func (UnimplementedHandicapServer) SearchCourse(context.Context, *SearchCourseRequest) (*SearchCourseResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SearchCourse not implemented")
}
func (UnimplementedHandicapServer) GetTees(context.Context, *GetTeesRequest) (*GetTeesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTees not implemented")
}
func (UnimplementedHandicapServer) RequestProductAccess(context.Context, *GpaRequest) (*GpaResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RequestProductAccess not implemented")
}
func (UnimplementedHandicapServer) GetPlayingHandicaps(context.Context, *GetPlayingHandicapsRequest) (*GetPlayingHandicapsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPlayingHandicaps not implemented")
}
func (UnimplementedHandicapServer) mustEmbedUnimplementedHandicapServer() {}

func RegisterHandicapServer(s grpc.ServiceRegistrar, srv HandicapServer) {
	s.RegisterService(&Handicap_ServiceDesc, srv)
}

func _Handicap_GetHandicap_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetHandicapRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HandicapServer).GetHandicap(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Handicap_GetHandicap_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(HandicapServer).GetHandicap(ctx, req.(*GetHandicapRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Handicap_SearchPlayer_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SearchPlayerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HandicapServer).SearchPlayer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Handicap_SearchPlayer_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(HandicapServer).SearchPlayer(ctx, req.(*SearchPlayerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Handicap_GetCourse_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetCourseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HandicapServer).GetCourse(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Handicap_GetCourse_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(HandicapServer).GetCourse(ctx, req.(*GetCourseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Handicap_SearchCourse_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SearchCourseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HandicapServer).SearchCourse(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Handicap_SearchCourse_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(HandicapServer).SearchCourse(ctx, req.(*SearchCourseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Handicap_GetTees_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetTeesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HandicapServer).GetTees(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Handicap_GetTees_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(HandicapServer).GetTees(ctx, req.(*GetTeesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Handicap_RequestProductAccess_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GpaRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HandicapServer).RequestProductAccess(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Handicap_RequestProductAccess_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(HandicapServer).RequestProductAccess(ctx, req.(*GpaRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Handicap_GetPlayingHandicaps_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetPlayingHandicapsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HandicapServer).GetPlayingHandicaps(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Handicap_GetPlayingHandicaps_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(HandicapServer).GetPlayingHandicaps(ctx, req.(*GetPlayingHandicapsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Handicap_ServiceDesc is written by hand; there is no .proto behind it.
var Handicap_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*HandicapServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetHandicap", Handler: _Handicap_GetHandicap_Handler},
		{MethodName: "SearchPlayer", Handler: _Handicap_SearchPlayer_Handler},
		{MethodName: "GetCourse", Handler: _Handicap_GetCourse_Handler},
		{MethodName: "SearchCourse", Handler: _Handicap_SearchCourse_Handler},
		{MethodName: "GetTees", Handler: _Handicap_GetTees_Handler},
		{MethodName: "RequestProductAccess", Handler: _Handicap_RequestProductAccess_Handler},
		{MethodName: "GetPlayingHandicaps", Handler: _Handicap_GetPlayingHandicaps_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "handicap/v1",
}
