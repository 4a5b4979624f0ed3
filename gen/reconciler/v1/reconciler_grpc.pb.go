// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: reconciler/v1/reconciler.proto

package reconcilerv1

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
	ReconcilerService_ProcessInvoice_FullMethodName       = "/reconciler.v1.ReconcilerService/ProcessInvoice"
	ReconcilerService_ReconcileItems_FullMethodName       = "/reconciler.v1.ReconcilerService/ReconcileItems"
	ReconcilerService_GetCacheStats_FullMethodName        = "/reconciler.v1.ReconcilerService/GetCacheStats"
	ReconcilerService_InvalidateCache_FullMethodName      = "/reconciler.v1.ReconcilerService/InvalidateCache"
	ReconcilerService_RefreshCatalog_FullMethodName       = "/reconciler.v1.ReconcilerService/RefreshCatalog"
	ReconcilerService_ExportReconciliation_FullMethodName = "/reconciler.v1.ReconcilerService/ExportReconciliation"
)

// ReconcilerServiceClient is the client API for ReconcilerService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ReconcilerService extracts invoice line items and resolves them against
// the product catalog.
type ReconcilerServiceClient interface {
	// ProcessInvoice runs the full flow: vision extraction, overlay lookup,
	// fuzzy matching, audit logging.
	ProcessInvoice(ctx context.Context, in *ProcessInvoiceRequest, opts ...grpc.CallOption) (*ProcessInvoiceResponse, error)
	// ReconcileItems matches already-extracted descriptions, no model call.
	ReconcileItems(ctx context.Context, in *ReconcileItemsRequest, opts ...grpc.CallOption) (*ReconcileItemsResponse, error)
	// GetCacheStats reports catalog cache status without touching the database.
	GetCacheStats(ctx context.Context, in *GetCacheStatsRequest, opts ...grpc.CallOption) (*GetCacheStatsResponse, error)
	// InvalidateCache marks the cached catalog expired; the next request reloads.
	InvalidateCache(ctx context.Context, in *InvalidateCacheRequest, opts ...grpc.CallOption) (*InvalidateCacheResponse, error)
	// RefreshCatalog forces a reload now and reports the resulting stats.
	RefreshCatalog(ctx context.Context, in *RefreshCatalogRequest, opts ...grpc.CallOption) (*GetCacheStatsResponse, error)
	// ExportReconciliation reconciles the given items and returns an XLSX
	// review workbook.
	ExportReconciliation(ctx context.Context, in *ExportReconciliationRequest, opts ...grpc.CallOption) (*ExportReconciliationResponse, error)
}

type reconcilerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReconcilerServiceClient(cc grpc.ClientConnInterface) ReconcilerServiceClient {
	return &reconcilerServiceClient{cc}
}

func (c *reconcilerServiceClient) ProcessInvoice(ctx context.Context, in *ProcessInvoiceRequest, opts ...grpc.CallOption) (*ProcessInvoiceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessInvoiceResponse)
	err := c.cc.Invoke(ctx, ReconcilerService_ProcessInvoice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reconcilerServiceClient) ReconcileItems(ctx context.Context, in *ReconcileItemsRequest, opts ...grpc.CallOption) (*ReconcileItemsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReconcileItemsResponse)
	err := c.cc.Invoke(ctx, ReconcilerService_ReconcileItems_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reconcilerServiceClient) GetCacheStats(ctx context.Context, in *GetCacheStatsRequest, opts ...grpc.CallOption) (*GetCacheStatsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetCacheStatsResponse)
	err := c.cc.Invoke(ctx, ReconcilerService_GetCacheStats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reconcilerServiceClient) InvalidateCache(ctx context.Context, in *InvalidateCacheRequest, opts ...grpc.CallOption) (*InvalidateCacheResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(InvalidateCacheResponse)
	err := c.cc.Invoke(ctx, ReconcilerService_InvalidateCache_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reconcilerServiceClient) RefreshCatalog(ctx context.Context, in *RefreshCatalogRequest, opts ...grpc.CallOption) (*GetCacheStatsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetCacheStatsResponse)
	err := c.cc.Invoke(ctx, ReconcilerService_RefreshCatalog_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reconcilerServiceClient) ExportReconciliation(ctx context.Context, in *ExportReconciliationRequest, opts ...grpc.CallOption) (*ExportReconciliationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportReconciliationResponse)
	err := c.cc.Invoke(ctx, ReconcilerService_ExportReconciliation_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReconcilerServiceServer is the server API for ReconcilerService service.
// All implementations must embed UnimplementedReconcilerServiceServer
// for forward compatibility.
//
// ReconcilerService extracts invoice line items and resolves them against
// the product catalog.
type ReconcilerServiceServer interface {
	// ProcessInvoice runs the full flow: vision extraction, overlay lookup,
	// fuzzy matching, audit logging.
	ProcessInvoice(context.Context, *ProcessInvoiceRequest) (*ProcessInvoiceResponse, error)
	// ReconcileItems matches already-extracted descriptions, no model call.
	ReconcileItems(context.Context, *ReconcileItemsRequest) (*ReconcileItemsResponse, error)
	// GetCacheStats reports catalog cache status without touching the database.
	GetCacheStats(context.Context, *GetCacheStatsRequest) (*GetCacheStatsResponse, error)
	// InvalidateCache marks the cached catalog expired; the next request reloads.
	InvalidateCache(context.Context, *InvalidateCacheRequest) (*InvalidateCacheResponse, error)
	// RefreshCatalog forces a reload now and reports the resulting stats.
	RefreshCatalog(context.Context, *RefreshCatalogRequest) (*GetCacheStatsResponse, error)
	// ExportReconciliation reconciles the given items and returns an XLSX
	// review workbook.
	ExportReconciliation(context.Context, *ExportReconciliationRequest) (*ExportReconciliationResponse, error)
	mustEmbedUnimplementedReconcilerServiceServer()
}

// UnimplementedReconcilerServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedReconcilerServiceServer struct{}

func (UnimplementedReconcilerServiceServer) ProcessInvoice(context.Context, *ProcessInvoiceRequest) (*ProcessInvoiceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessInvoice not implemented")
}
func (UnimplementedReconcilerServiceServer) ReconcileItems(context.Context, *ReconcileItemsRequest) (*ReconcileItemsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReconcileItems not implemented")
}
func (UnimplementedReconcilerServiceServer) GetCacheStats(context.Context, *GetCacheStatsRequest) (*GetCacheStatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCacheStats not implemented")
}
func (UnimplementedReconcilerServiceServer) InvalidateCache(context.Context, *InvalidateCacheRequest) (*InvalidateCacheResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method InvalidateCache not implemented")
}
func (UnimplementedReconcilerServiceServer) RefreshCatalog(context.Context, *RefreshCatalogRequest) (*GetCacheStatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RefreshCatalog not implemented")
}
func (UnimplementedReconcilerServiceServer) ExportReconciliation(context.Context, *ExportReconciliationRequest) (*ExportReconciliationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportReconciliation not implemented")
}
func (UnimplementedReconcilerServiceServer) mustEmbedUnimplementedReconcilerServiceServer() {}
func (UnimplementedReconcilerServiceServer) testEmbeddedByValue()                           {}

// UnsafeReconcilerServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ReconcilerServiceServer will
// result in compilation errors.
type UnsafeReconcilerServiceServer interface {
	mustEmbedUnimplementedReconcilerServiceServer()
}

func RegisterReconcilerServiceServer(s grpc.ServiceRegistrar, srv ReconcilerServiceServer) {
	// If the following call pancis, it indicates UnimplementedReconcilerServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ReconcilerService_ServiceDesc, srv)
}

func _ReconcilerService_ProcessInvoice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessInvoiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReconcilerServiceServer).ProcessInvoice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReconcilerService_ProcessInvoice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReconcilerServiceServer).ProcessInvoice(ctx, req.(*ProcessInvoiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReconcilerService_ReconcileItems_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReconcileItemsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReconcilerServiceServer).ReconcileItems(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReconcilerService_ReconcileItems_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReconcilerServiceServer).ReconcileItems(ctx, req.(*ReconcileItemsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReconcilerService_GetCacheStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCacheStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReconcilerServiceServer).GetCacheStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReconcilerService_GetCacheStats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReconcilerServiceServer).GetCacheStats(ctx, req.(*GetCacheStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReconcilerService_InvalidateCache_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InvalidateCacheRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReconcilerServiceServer).InvalidateCache(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReconcilerService_InvalidateCache_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReconcilerServiceServer).InvalidateCache(ctx, req.(*InvalidateCacheRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReconcilerService_RefreshCatalog_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RefreshCatalogRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReconcilerServiceServer).RefreshCatalog(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReconcilerService_RefreshCatalog_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReconcilerServiceServer).RefreshCatalog(ctx, req.(*RefreshCatalogRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReconcilerService_ExportReconciliation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportReconciliationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReconcilerServiceServer).ExportReconciliation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReconcilerService_ExportReconciliation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReconcilerServiceServer).ExportReconciliation(ctx, req.(*ExportReconciliationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ReconcilerService_ServiceDesc is the grpc.ServiceDesc for ReconcilerService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ReconcilerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "reconciler.v1.ReconcilerService",
	HandlerType: (*ReconcilerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ProcessInvoice",
			Handler:    _ReconcilerService_ProcessInvoice_Handler,
		},
		{
			MethodName: "ReconcileItems",
			Handler:    _ReconcilerService_ReconcileItems_Handler,
		},
		{
			MethodName: "GetCacheStats",
			Handler:    _ReconcilerService_GetCacheStats_Handler,
		},
		{
			MethodName: "InvalidateCache",
			Handler:    _ReconcilerService_InvalidateCache_Handler,
		},
		{
			MethodName: "RefreshCatalog",
			Handler:    _ReconcilerService_RefreshCatalog_Handler,
		},
		{
			MethodName: "ExportReconciliation",
			Handler:    _ReconcilerService_ExportReconciliation_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "reconciler/v1/reconciler.proto",
}
