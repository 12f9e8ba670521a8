package grpc

// proto.go defines the gRPC server interface derived from
// lendcircle/repayment/v1/repayment.proto. This file serves as a stand-in for
// buf-generated code; the registered JSON codec carries the messages until
// `buf generate` replaces it.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lendcircle/repayment-service/internal/application/dto"
)

// Wire messages mirror the application DTOs one-to-one.
type (
	CreatePlanRequest    = dto.CreatePlanRequest
	CreatePlanResponse   = dto.PlanResponse
	GetPlanRequest       = dto.GetPlanRequest
	GetPlanResponse      = dto.PlanResponse
	SuggestTermsRequest  = dto.SuggestTermsRequest
	SuggestTermsResponse = dto.SuggestTermsResponse
	GetPresetsRequest    = dto.GetPresetsRequest
	GetPresetsResponse   = dto.GetPresetsResponse
	QuoteFeeRequest      = dto.QuoteFeeRequest
	QuoteFeeResponse     = dto.QuoteFeeResponse
)

// RepaymentServiceServer is the server API for RepaymentService.
// It mirrors the proto-generated interface from lendcircle.repayment.v1.RepaymentService.
type RepaymentServiceServer interface {
	CreatePlan(context.Context, *CreatePlanRequest) (*CreatePlanResponse, error)
	GetPlan(context.Context, *GetPlanRequest) (*GetPlanResponse, error)
	SuggestTerms(context.Context, *SuggestTermsRequest) (*SuggestTermsResponse, error)
	GetPresets(context.Context, *GetPresetsRequest) (*GetPresetsResponse, error)
	QuoteFee(context.Context, *QuoteFeeRequest) (*QuoteFeeResponse, error)
	mustEmbedUnimplementedRepaymentServiceServer()
}

// UnimplementedRepaymentServiceServer provides forward-compatible default implementations.
type UnimplementedRepaymentServiceServer struct{}

func (UnimplementedRepaymentServiceServer) CreatePlan(context.Context, *CreatePlanRequest) (*CreatePlanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreatePlan not implemented")
}
func (UnimplementedRepaymentServiceServer) GetPlan(context.Context, *GetPlanRequest) (*GetPlanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPlan not implemented")
}
func (UnimplementedRepaymentServiceServer) SuggestTerms(context.Context, *SuggestTermsRequest) (*SuggestTermsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SuggestTerms not implemented")
}
func (UnimplementedRepaymentServiceServer) GetPresets(context.Context, *GetPresetsRequest) (*GetPresetsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPresets not implemented")
}
func (UnimplementedRepaymentServiceServer) QuoteFee(context.Context, *QuoteFeeRequest) (*QuoteFeeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method QuoteFee not implemented")
}
func (UnimplementedRepaymentServiceServer) mustEmbedUnimplementedRepaymentServiceServer() {}

// RegisterRepaymentServiceServer registers the RepaymentServiceServer with the gRPC server.
func RegisterRepaymentServiceServer(s *grpclib.Server, srv RepaymentServiceServer) {
	s.RegisterService(&_RepaymentService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _RepaymentService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "lendcircle.repayment.v1.RepaymentService",
	HandlerType: (*RepaymentServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "CreatePlan", Handler: _RepaymentService_CreatePlan_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "GetPlan", Handler: _RepaymentService_GetPlan_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "SuggestTerms", Handler: _RepaymentService_SuggestTerms_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "GetPresets", Handler: _RepaymentService_GetPresets_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "QuoteFee", Handler: _RepaymentService_QuoteFee_Handler},         //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _RepaymentService_CreatePlan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreatePlanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RepaymentServiceServer).CreatePlan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/lendcircle.repayment.v1.RepaymentService/CreatePlan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RepaymentServiceServer).CreatePlan(ctx, req.(*CreatePlanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _RepaymentService_GetPlan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPlanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RepaymentServiceServer).GetPlan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/lendcircle.repayment.v1.RepaymentService/GetPlan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RepaymentServiceServer).GetPlan(ctx, req.(*GetPlanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _RepaymentService_SuggestTerms_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SuggestTermsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RepaymentServiceServer).SuggestTerms(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/lendcircle.repayment.v1.RepaymentService/SuggestTerms",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RepaymentServiceServer).SuggestTerms(ctx, req.(*SuggestTermsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _RepaymentService_GetPresets_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPresetsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RepaymentServiceServer).GetPresets(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/lendcircle.repayment.v1.RepaymentService/GetPresets",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RepaymentServiceServer).GetPresets(ctx, req.(*GetPresetsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _RepaymentService_QuoteFee_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(QuoteFeeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RepaymentServiceServer).QuoteFee(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/lendcircle.repayment.v1.RepaymentService/QuoteFee",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RepaymentServiceServer).QuoteFee(ctx, req.(*QuoteFeeRequest))
	}
	return interceptor(ctx, in, info, handler)
}
