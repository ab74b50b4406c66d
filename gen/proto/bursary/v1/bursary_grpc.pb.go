// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: bursary/v1/bursary.proto

package bursarypb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	BursaryService_SubmitApplication_FullMethodName  = "/bursary.v1.BursaryService/SubmitApplication"
	BursaryService_GetApplication_FullMethodName     = "/bursary.v1.BursaryService/GetApplication"
	BursaryService_ListApplications_FullMethodName   = "/bursary.v1.BursaryService/ListApplications"
	BursaryService_RankApplications_FullMethodName   = "/bursary.v1.BursaryService/RankApplications"
	BursaryService_ComputeNeedScore_FullMethodName   = "/bursary.v1.BursaryService/ComputeNeedScore"
	BursaryService_VerifyDocument_FullMethodName     = "/bursary.v1.BursaryService/VerifyDocument"
	BursaryService_ReviewApplication_FullMethodName  = "/bursary.v1.BursaryService/ReviewApplication"
	BursaryService_ExportPriorityList_FullMethodName = "/bursary.v1.BursaryService/ExportPriorityList"
	BursaryService_GetStats_FullMethodName           = "/bursary.v1.BursaryService/GetStats"
)

// BursaryServiceClient is the client API for BursaryService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type BursaryServiceClient interface {
	SubmitApplication(ctx context.Context, in *SubmitApplicationRequest, opts ...grpc.CallOption) (*SubmitApplicationResponse, error)
	GetApplication(ctx context.Context, in *GetApplicationRequest, opts ...grpc.CallOption) (*GetApplicationResponse, error)
	ListApplications(ctx context.Context, in *ListApplicationsRequest, opts ...grpc.CallOption) (*ListApplicationsResponse, error)
	RankApplications(ctx context.Context, in *RankApplicationsRequest, opts ...grpc.CallOption) (*RankApplicationsResponse, error)
	ComputeNeedScore(ctx context.Context, in *ComputeNeedScoreRequest, opts ...grpc.CallOption) (*ComputeNeedScoreResponse, error)
	VerifyDocument(ctx context.Context, in *VerifyDocumentRequest, opts ...grpc.CallOption) (*VerifyDocumentResponse, error)
	ReviewApplication(ctx context.Context, in *ReviewApplicationRequest, opts ...grpc.CallOption) (*ReviewApplicationResponse, error)
	ExportPriorityList(ctx context.Context, in *ExportPriorityListRequest, opts ...grpc.CallOption) (*ExportPriorityListResponse, error)
	GetStats(ctx context.Context, in *GetStatsRequest, opts ...grpc.CallOption) (*GetStatsResponse, error)
}

type bursaryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBursaryServiceClient(cc grpc.ClientConnInterface) BursaryServiceClient {
	return &bursaryServiceClient{cc}
}

func (c *bursaryServiceClient) SubmitApplication(ctx context.Context, in *SubmitApplicationRequest, opts ...grpc.CallOption) (*SubmitApplicationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitApplicationResponse)
	err := c.cc.Invoke(ctx, BursaryService_SubmitApplication_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bursaryServiceClient) GetApplication(ctx context.Context, in *GetApplicationRequest, opts ...grpc.CallOption) (*GetApplicationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetApplicationResponse)
	err := c.cc.Invoke(ctx, BursaryService_GetApplication_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bursaryServiceClient) ListApplications(ctx context.Context, in *ListApplicationsRequest, opts ...grpc.CallOption) (*ListApplicationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListApplicationsResponse)
	err := c.cc.Invoke(ctx, BursaryService_ListApplications_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bursaryServiceClient) RankApplications(ctx context.Context, in *RankApplicationsRequest, opts ...grpc.CallOption) (*RankApplicationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RankApplicationsResponse)
	err := c.cc.Invoke(ctx, BursaryService_RankApplications_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bursaryServiceClient) ComputeNeedScore(ctx context.Context, in *ComputeNeedScoreRequest, opts ...grpc.CallOption) (*ComputeNeedScoreResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ComputeNeedScoreResponse)
	err := c.cc.Invoke(ctx, BursaryService_ComputeNeedScore_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bursaryServiceClient) VerifyDocument(ctx context.Context, in *VerifyDocumentRequest, opts ...grpc.CallOption) (*VerifyDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(VerifyDocumentResponse)
	err := c.cc.Invoke(ctx, BursaryService_VerifyDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bursaryServiceClient) ReviewApplication(ctx context.Context, in *ReviewApplicationRequest, opts ...grpc.CallOption) (*ReviewApplicationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReviewApplicationResponse)
	err := c.cc.Invoke(ctx, BursaryService_ReviewApplication_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bursaryServiceClient) ExportPriorityList(ctx context.Context, in *ExportPriorityListRequest, opts ...grpc.CallOption) (*ExportPriorityListResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportPriorityListResponse)
	err := c.cc.Invoke(ctx, BursaryService_ExportPriorityList_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bursaryServiceClient) GetStats(ctx context.Context, in *GetStatsRequest, opts ...grpc.CallOption) (*GetStatsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetStatsResponse)
	err := c.cc.Invoke(ctx, BursaryService_GetStats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BursaryServiceServer is the server API for BursaryService service.
// All implementations must embed UnimplementedBursaryServiceServer
// for forward compatibility.
type BursaryServiceServer interface {
	SubmitApplication(context.Context, *SubmitApplicationRequest) (*SubmitApplicationResponse, error)
	GetApplication(context.Context, *GetApplicationRequest) (*GetApplicationResponse, error)
	ListApplications(context.Context, *ListApplicationsRequest) (*ListApplicationsResponse, error)
	RankApplications(context.Context, *RankApplicationsRequest) (*RankApplicationsResponse, error)
	ComputeNeedScore(context.Context, *ComputeNeedScoreRequest) (*ComputeNeedScoreResponse, error)
	VerifyDocument(context.Context, *VerifyDocumentRequest) (*VerifyDocumentResponse, error)
	ReviewApplication(context.Context, *ReviewApplicationRequest) (*ReviewApplicationResponse, error)
	ExportPriorityList(context.Context, *ExportPriorityListRequest) (*ExportPriorityListResponse, error)
	GetStats(context.Context, *GetStatsRequest) (*GetStatsResponse, error)
	mustEmbedUnimplementedBursaryServiceServer()
}

// UnimplementedBursaryServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedBursaryServiceServer struct{}

func (UnimplementedBursaryServiceServer) SubmitApplication(context.Context, *SubmitApplicationRequest) (*SubmitApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitApplication not implemented")
}
func (UnimplementedBursaryServiceServer) GetApplication(context.Context, *GetApplicationRequest) (*GetApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetApplication not implemented")
}
func (UnimplementedBursaryServiceServer) ListApplications(context.Context, *ListApplicationsRequest) (*ListApplicationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListApplications not implemented")
}
func (UnimplementedBursaryServiceServer) RankApplications(context.Context, *RankApplicationsRequest) (*RankApplicationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RankApplications not implemented")
}
func (UnimplementedBursaryServiceServer) ComputeNeedScore(context.Context, *ComputeNeedScoreRequest) (*ComputeNeedScoreResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ComputeNeedScore not implemented")
}
func (UnimplementedBursaryServiceServer) VerifyDocument(context.Context, *VerifyDocumentRequest) (*VerifyDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method VerifyDocument not implemented")
}
func (UnimplementedBursaryServiceServer) ReviewApplication(context.Context, *ReviewApplicationRequest) (*ReviewApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReviewApplication not implemented")
}
func (UnimplementedBursaryServiceServer) ExportPriorityList(context.Context, *ExportPriorityListRequest) (*ExportPriorityListResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportPriorityList not implemented")
}
func (UnimplementedBursaryServiceServer) GetStats(context.Context, *GetStatsRequest) (*GetStatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStats not implemented")
}
func (UnimplementedBursaryServiceServer) mustEmbedUnimplementedBursaryServiceServer() {}
func (UnimplementedBursaryServiceServer) testEmbeddedByValue()                        {}

// UnsafeBursaryServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to BursaryServiceServer will
// result in compilation errors.
type UnsafeBursaryServiceServer interface {
	mustEmbedUnimplementedBursaryServiceServer()
}

func RegisterBursaryServiceServer(s grpc.ServiceRegistrar, srv BursaryServiceServer) {
	// If the following call pancis, it indicates UnimplementedBursaryServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&BursaryService_ServiceDesc, srv)
}

func _BursaryService_SubmitApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BursaryServiceServer).SubmitApplication(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BursaryService_SubmitApplication_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BursaryServiceServer).SubmitApplication(ctx, req.(*SubmitApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BursaryService_GetApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BursaryServiceServer).GetApplication(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BursaryService_GetApplication_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BursaryServiceServer).GetApplication(ctx, req.(*GetApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BursaryService_ListApplications_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListApplicationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BursaryServiceServer).ListApplications(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BursaryService_ListApplications_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BursaryServiceServer).ListApplications(ctx, req.(*ListApplicationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BursaryService_RankApplications_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RankApplicationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BursaryServiceServer).RankApplications(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BursaryService_RankApplications_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BursaryServiceServer).RankApplications(ctx, req.(*RankApplicationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BursaryService_ComputeNeedScore_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ComputeNeedScoreRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BursaryServiceServer).ComputeNeedScore(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BursaryService_ComputeNeedScore_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BursaryServiceServer).ComputeNeedScore(ctx, req.(*ComputeNeedScoreRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BursaryService_VerifyDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VerifyDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BursaryServiceServer).VerifyDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BursaryService_VerifyDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BursaryServiceServer).VerifyDocument(ctx, req.(*VerifyDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BursaryService_ReviewApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReviewApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BursaryServiceServer).ReviewApplication(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BursaryService_ReviewApplication_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BursaryServiceServer).ReviewApplication(ctx, req.(*ReviewApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BursaryService_ExportPriorityList_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportPriorityListRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BursaryServiceServer).ExportPriorityList(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BursaryService_ExportPriorityList_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BursaryServiceServer).ExportPriorityList(ctx, req.(*ExportPriorityListRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BursaryService_GetStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BursaryServiceServer).GetStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BursaryService_GetStats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BursaryServiceServer).GetStats(ctx, req.(*GetStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// BursaryService_ServiceDesc is the grpc.ServiceDesc for BursaryService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var BursaryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "bursary.v1.BursaryService",
	HandlerType: (*BursaryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitApplication",
			Handler:    _BursaryService_SubmitApplication_Handler,
		},
		{
			MethodName: "GetApplication",
			Handler:    _BursaryService_GetApplication_Handler,
		},
		{
			MethodName: "ListApplications",
			Handler:    _BursaryService_ListApplications_Handler,
		},
		{
			MethodName: "RankApplications",
			Handler:    _BursaryService_RankApplications_Handler,
		},
		{
			MethodName: "ComputeNeedScore",
			Handler:    _BursaryService_ComputeNeedScore_Handler,
		},
		{
			MethodName: "VerifyDocument",
			Handler:    _BursaryService_VerifyDocument_Handler,
		},
		{
			MethodName: "ReviewApplication",
			Handler:    _BursaryService_ReviewApplication_Handler,
		},
		{
			MethodName: "ExportPriorityList",
			Handler:    _BursaryService_ExportPriorityList_Handler,
		},
		{
			MethodName: "GetStats",
			Handler:    _BursaryService_GetStats_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "bursary/v1/bursary.proto",
}
